package loaders

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/geometria/engine/assets/metadata"
	"github.com/spaghettifunk/geometria/engine/core"
)

type SceneLoader struct{}

func (sl *SceneLoader) Load(path string, assetType metadata.ResourceType, params interface{}) (*metadata.Resource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}

	cfg, err := DecodeScene(file)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	if cfg.Name == "" {
		cfg.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return &metadata.Resource{
		Type:     metadata.ResourceTypeScene,
		Name:     cfg.Name,
		FullPath: path,
		DataSize: uint64(info.Size()),
		Data:     cfg,
	}, nil
}

func (sl *SceneLoader) Unload(resource *metadata.Resource) error {
	resource.Data = nil
	resource.DataSize = 0
	return nil
}

// DecodeScene reads a TOML scene description and validates it. Unknown keys
// are rejected so that typos do not silently drop colliders.
func DecodeScene(r io.Reader) (*metadata.SceneConfig, error) {
	cfg := &metadata.SceneConfig{}

	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("%s: %w", strict.String(), core.ErrInvalidConfig)
		}
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return nil, fmt.Errorf("line %d column %d: %s: %w", row, col, decodeErr.Error(), core.ErrInvalidConfig)
		}
		return nil, fmt.Errorf("%s: %w", err.Error(), core.ErrInvalidConfig)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
