// Package config loads and validates the reference host's configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	hosterrors "github.com/reglet-dev/turing-sdk/domain/errors"
	"github.com/reglet-dev/turing-sdk/host/world"
	"github.com/reglet-dev/turing-sdk/hostfuncs"
)

// Store backends.
const (
	StoreMemory = "memory"
	StoreFile   = "file"
)

// Config is the host configuration file.
type Config struct {
	Store  StoreConfig  `yaml:"store" json:"store"`
	Log    LogConfig    `yaml:"log" json:"log"`
	World  WorldConfig  `yaml:"world" json:"world"`
	Limits LimitsConfig `yaml:"limits" json:"limits"`
}

// StoreConfig selects the persistent store backend.
type StoreConfig struct {
	Kind string `yaml:"kind" json:"kind" validate:"required,oneof=memory file" jsonschema:"enum=memory,enum=file,default=memory"`
	// Path is the YAML data file of the file backend.
	Path string `yaml:"path,omitempty" json:"path,omitempty" validate:"required_if=Kind file"`
}

// LogConfig configures host logging.
type LogConfig struct {
	Level  string `yaml:"level" json:"level" validate:"required,oneof=debug info warn error" jsonschema:"enum=debug,enum=info,enum=warn,enum=error,default=info"`
	Format string `yaml:"format" json:"format" validate:"required,oneof=console json" jsonschema:"enum=console,enum=json,default=console"`
}

// WorldConfig configures the game world.
type WorldConfig struct {
	LeftSaberColor  []float32 `yaml:"left_saber_color,omitempty" json:"left_saber_color,omitempty" validate:"omitempty,len=4,dive,gte=0,lte=1" jsonschema:"minItems=4,maxItems=4"`
	RightSaberColor []float32 `yaml:"right_saber_color,omitempty" json:"right_saber_color,omitempty" validate:"omitempty,len=4,dive,gte=0,lte=1" jsonschema:"minItems=4,maxItems=4"`
	BeatTolerance   float32   `yaml:"beat_tolerance" json:"beat_tolerance" validate:"gte=0"`
	// MaxObjects caps live objects and values; zero keeps world.MaxObjects.
	MaxObjects int `yaml:"max_objects,omitempty" json:"max_objects,omitempty" validate:"omitempty,gte=2,lte=1048575" jsonschema:"minimum=2,maximum=1048575"`
}

// LimitsConfig bounds what plugins may pass to the host.
type LimitsConfig struct {
	MaxStringSize uint32 `yaml:"max_string_size" json:"max_string_size" validate:"gte=1"`
}

// validate is a package-level singleton; building a validator is expensive.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their YAML names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Store:  StoreConfig{Kind: StoreMemory},
		Log:    LogConfig{Level: "info", Format: "console"},
		World:  WorldConfig{BeatTolerance: world.DefaultBeatTolerance},
		Limits: LimitsConfig{MaxStringSize: hostfuncs.DefaultMaxStringSize},
	}
}

// Load reads the file at path over the defaults and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, &hosterrors.ConfigError{Err: fmt.Errorf("failed to parse config: %w", err)}
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cfg against its validation tags. The returned
// *errors.ConfigError names the first offending field, e.g. "store.path".
func Validate(cfg Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := strings.TrimPrefix(fe.Namespace(), "Config.")
		return &hosterrors.ConfigError{Field: field, Err: fmt.Errorf("failed on the %q rule", fe.Tag())}
	}
	return &hosterrors.ConfigError{Err: err}
}
