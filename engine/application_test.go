package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/geometria/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "geometria.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultApplicationConfig(t *testing.T) {
	config := DefaultApplicationConfig()
	require.NoError(t, config.Validate())
	assert.Equal(t, "Geometria", config.Name)
	assert.Equal(t, core.LogLevelInfo, config.LogLevel)
	assert.Equal(t, 4, config.Workers)
	assert.Equal(t, 64, config.HistorySize)
	assert.Empty(t, config.NoiseOutput)
}

func TestLoadApplicationConfig(t *testing.T) {
	path := writeConfig(t, `
name = "yard"
log_level = "debug"
scene = "scene.toml"
watch = true
workers = 2
noise_output = "noise.bmp"
noise_scale = 0.5
noise_seed = 42
`)

	config, err := LoadApplicationConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "yard", config.Name)
	assert.Equal(t, core.LogLevelDebug, config.LogLevel)
	assert.Equal(t, "scene.toml", config.ScenePath)
	assert.True(t, config.Watch)
	assert.Equal(t, 2, config.Workers)
	assert.Equal(t, "noise.bmp", config.NoiseOutput)
	assert.InDelta(t, 0.5, config.NoiseScale, 1e-6)
	assert.Equal(t, uint64(42), config.NoiseSeed)

	// untouched keys keep their defaults
	assert.Equal(t, "assets", config.AssetsDir)
	assert.Equal(t, 64, config.HistorySize)
	assert.Equal(t, 256, config.NoiseSize)
}

func TestLoadApplicationConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "syntax error", content: "workers = = 3\n"},
		{name: "wrong type", content: "workers = \"many\"\n"},
		{name: "unknown log level", content: "log_level = \"chatty\"\n"},
		{name: "no workers", content: "workers = 0\n"},
		{name: "empty history", content: "history_size = 0\n"},
		{name: "bad noise size", content: "noise_output = \"n.bmp\"\nnoise_size = 0\n"},
		{name: "bad noise scale", content: "noise_output = \"n.bmp\"\nnoise_scale = -1.0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadApplicationConfig(writeConfig(t, tt.content))
			require.ErrorIs(t, err, core.ErrInvalidConfig)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadApplicationConfig(filepath.Join(t.TempDir(), "nope.toml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
