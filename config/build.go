package config

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/reglet-dev/turing-sdk/domain/ports"
	"github.com/reglet-dev/turing-sdk/host/storage"
	"github.com/reglet-dev/turing-sdk/host/world"
)

// Logger builds the host logger described by the log section.
func (c Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	zc := zap.NewDevelopmentConfig()
	if c.Log.Format == "json" {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}

// OpenStore opens the persistent store described by the store section.
func (c Config) OpenStore() (ports.PersistentStore, error) {
	if c.Store.Kind == StoreFile {
		return storage.NewFileStore(storage.WithPath(c.Store.Path))
	}
	return storage.NewMemoryStore(), nil
}

// WorldOptions returns the world options described by the world section.
func (c Config) WorldOptions() []world.Option {
	opts := []world.Option{world.WithBeatTolerance(c.World.BeatTolerance)}
	if len(c.World.LeftSaberColor) > 0 || len(c.World.RightSaberColor) > 0 {
		left := rgba(c.World.LeftSaberColor, world.DefaultLeftSaberColor)
		right := rgba(c.World.RightSaberColor, world.DefaultRightSaberColor)
		opts = append(opts, world.WithSaberColors(left, right))
	}
	if c.World.MaxObjects > 0 {
		opts = append(opts, world.WithMaxObjects(c.World.MaxObjects))
	}
	return opts
}

func rgba(c []float32, fallback [4]float32) [4]float32 {
	if len(c) != 4 {
		return fallback
	}
	return [4]float32{c[0], c[1], c[2], c[3]}
}
