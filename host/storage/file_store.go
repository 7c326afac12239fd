package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/reglet-dev/turing-sdk/domain/entities"
	hosterrors "github.com/reglet-dev/turing-sdk/domain/errors"
	"github.com/reglet-dev/turing-sdk/domain/ports"
)

// fileStoreConfig holds configuration for the FileStore.
type fileStoreConfig struct {
	path     string      // Path to the data file
	dirPerm  os.FileMode // Permission for created directories
	filePerm os.FileMode // Permission for the data file
}

func defaultFileStoreConfig() fileStoreConfig {
	return fileStoreConfig{
		path:     filepath.Join(os.Getenv("HOME"), ".turing", "data.yaml"),
		dirPerm:  0o755,
		filePerm: 0o600,
	}
}

// FileStoreOption configures a FileStore instance.
type FileStoreOption func(*fileStoreConfig)

// WithPath sets the path to the data file.
func WithPath(path string) FileStoreOption {
	return func(c *fileStoreConfig) {
		c.path = path
	}
}

// WithFilePermissions sets the permissions of the data file.
// Default is 0o600 (user-only).
func WithFilePermissions(perm os.FileMode) FileStoreOption {
	return func(c *fileStoreConfig) {
		c.filePerm = perm
	}
}

// WithDirPermissions sets the permissions of created parent directories.
// Default is 0o755.
func WithDirPermissions(perm os.FileMode) FileStoreOption {
	return func(c *fileStoreConfig) {
		c.dirPerm = perm
	}
}

// fileContents is the on-disk layout, one map per key space.
type fileContents struct {
	I32 map[string]int32   `yaml:"i32,omitempty"`
	F32 map[string]float32 `yaml:"f32,omitempty"`
	Str map[string]string  `yaml:"str,omitempty"`
}

// FileStore is a MemoryStore that writes itself to a YAML file after every
// mutation, so plugin data survives host restarts. A mutation whose save
// fails is undone, leaving memory in step with the file.
type FileStore struct {
	mem    *MemoryStore
	config fileStoreConfig
	// mu serializes mutations so each save sees a consistent store.
	mu sync.Mutex
}

var _ ports.PersistentStore = (*FileStore)(nil)

// NewFileStore opens the data file, loading any existing entries.
// A missing file starts an empty store; it is created on the first write.
func NewFileStore(opts ...FileStoreOption) (*FileStore, error) {
	cfg := defaultFileStoreConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &FileStore{mem: NewMemoryStore(), config: cfg}
	if err := s.load(); err != nil {
		return nil, &hosterrors.StoreError{Op: "load", Err: err}
	}
	return s, nil
}

func (s *FileStore) load() error {
	data, err := os.ReadFile(s.config.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read data file: %w", err)
	}

	var contents fileContents
	if err := yaml.Unmarshal(data, &contents); err != nil {
		return fmt.Errorf("failed to parse data file: %w", err)
	}
	for k, v := range contents.I32 {
		_ = s.mem.Put(k, entities.IntValue(v))
	}
	for k, v := range contents.F32 {
		_ = s.mem.Put(k, entities.FloatValue(v))
	}
	for k, v := range contents.Str {
		_ = s.mem.Put(k, entities.StringValue(v))
	}
	return nil
}

func (s *FileStore) save() error {
	contents := fileContents{
		I32: make(map[string]int32),
		F32: make(map[string]float32),
		Str: make(map[string]string),
	}
	for _, kind := range entities.StoreKinds() {
		for _, k := range s.mem.Keys(kind) {
			v, _ := s.mem.Lookup(kind, k)
			switch kind {
			case entities.StoreI32:
				contents.I32[k] = v.Int
			case entities.StoreF32:
				contents.F32[k] = v.Float
			case entities.StoreStr:
				contents.Str[k] = v.Str
			}
		}
	}

	data, err := yaml.Marshal(&contents)
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	dir := filepath.Dir(s.config.path)
	if err := os.MkdirAll(dir, s.config.dirPerm); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if err := os.WriteFile(s.config.path, data, s.config.filePerm); err != nil {
		return fmt.Errorf("failed to write data file: %w", err)
	}
	return nil
}

// Lookup implements ports.PersistentStore.
func (s *FileStore) Lookup(kind entities.StoreKind, key string) (entities.StoredValue, bool) {
	return s.mem.Lookup(kind, key)
}

// Put implements ports.PersistentStore.
func (s *FileStore) Put(key string, value entities.StoredValue) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, existed := s.mem.Lookup(value.Kind, key)
	if err := s.mem.Put(key, value); err != nil {
		return &hosterrors.StoreError{Op: "put", Key: key, Kind: value.Kind, Err: err}
	}
	if err := s.save(); err != nil {
		// Memory must not run ahead of the file.
		if existed {
			_ = s.mem.Put(key, prev)
		} else {
			_ = s.mem.Delete(value.Kind, key)
		}
		return &hosterrors.StoreError{Op: "put", Key: key, Kind: value.Kind, Err: err}
	}
	return nil
}

// Delete implements ports.PersistentStore.
func (s *FileStore) Delete(kind entities.StoreKind, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.mem.Lookup(kind, key)
	if !ok {
		return nil
	}
	_ = s.mem.Delete(kind, key)
	if err := s.save(); err != nil {
		_ = s.mem.Put(key, prev)
		return &hosterrors.StoreError{Op: "delete", Key: key, Kind: kind, Err: err}
	}
	return nil
}

// Keys implements ports.PersistentStore.
func (s *FileStore) Keys(kind entities.StoreKind) []string {
	return s.mem.Keys(kind)
}

// Path returns the path to the backing file.
func (s *FileStore) Path() string {
	return s.config.path
}
