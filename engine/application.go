package engine

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/geometria/engine/core"
)

type ApplicationConfig struct {
	// The application name used in log lines.
	Name     string        `toml:"name"`
	LogLevel core.LogLevel `toml:"log_level"`
	// Root of the watched asset tree. Relative scene paths resolve against it.
	AssetsDir string `toml:"assets_dir"`
	// Scene loaded at start up, if any.
	ScenePath string `toml:"scene"`
	// Reload the scene when it or one of its mesh files changes on disk.
	Watch bool `toml:"watch"`
	// Number of workers casting scene rays in parallel.
	Workers int `toml:"workers"`
	// How many cast results Engine.History keeps.
	HistorySize int `toml:"history_size"`

	// Height-map export of the simplex noise field. Empty output disables it.
	NoiseOutput string  `toml:"noise_output"`
	NoiseSize   int     `toml:"noise_size"`
	NoiseScale  float32 `toml:"noise_scale"`
	NoiseSeed   uint64  `toml:"noise_seed"`
}

func DefaultApplicationConfig() *ApplicationConfig {
	return &ApplicationConfig{
		Name:        "Geometria",
		LogLevel:    core.LogLevelInfo,
		AssetsDir:   "assets",
		Workers:     4,
		HistorySize: 64,
		NoiseSize:   256,
		NoiseScale:  0.02,
	}
}

// LoadApplicationConfig reads a TOML file on top of the defaults; keys missing
// from the file keep their default value.
func LoadApplicationConfig(path string) (*ApplicationConfig, error) {
	config := DefaultApplicationConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(data, config); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return nil, fmt.Errorf("%s:%d:%d: %s: %w", path, row, col, decodeErr.Error(), core.ErrInvalidConfig)
		}
		return nil, fmt.Errorf("%s: %s: %w", path, err.Error(), core.ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

func (c *ApplicationConfig) Validate() error {
	if err := core.ValidateLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level %q: %w", c.LogLevel, core.ErrInvalidConfig)
	}
	if c.AssetsDir == "" {
		return fmt.Errorf("assets_dir is empty: %w", core.ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", c.Workers, core.ErrInvalidConfig)
	}
	if c.HistorySize < 1 {
		return fmt.Errorf("history_size must be at least 1, got %d: %w", c.HistorySize, core.ErrInvalidConfig)
	}
	if c.NoiseOutput != "" {
		if c.NoiseSize < 1 {
			return fmt.Errorf("noise_size must be positive, got %d: %w", c.NoiseSize, core.ErrInvalidConfig)
		}
		if c.NoiseScale <= 0 {
			return fmt.Errorf("noise_scale must be positive, got %f: %w", c.NoiseScale, core.ErrInvalidConfig)
		}
	}
	return nil
}
