package testbed

import (
	"bytes"
	"context"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/geometria/engine"
	"github.com/spaghettifunk/geometria/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func TestSampleScene(t *testing.T) {
	config := engine.DefaultApplicationConfig()
	config.AssetsDir = filepath.Join("..", "assets")
	config.ScenePath = "scene.toml"
	config.LogLevel = core.LogLevelError
	t.Cleanup(func() { _ = core.SetLogLevel(core.LogLevelInfo) })

	tg := NewTestGame(config)
	e, err := engine.New(tg.Game)
	require.NoError(t, err)
	require.NoError(t, e.Initialize())
	require.NoError(t, e.Run(context.Background()))

	loads, casts, hits := tg.Stats()
	assert.Equal(t, 1, loads)
	assert.Equal(t, 1, casts)
	assert.Equal(t, 4, hits)

	expected := map[string]string{
		"down":  "crate",
		"east":  "barrel",
		"ramp":  "ramp",
		"apex":  "pyramid",
		"sky":   "",
		"short": "",
	}
	for ray, collider := range expected {
		result, err := e.CastNamedRay(ray)
		require.NoError(t, err)
		assert.Equal(t, collider, result.Collider, ray)
	}

	require.NoError(t, e.Shutdown())
}

func TestNoiseMap(t *testing.T) {
	a := NoiseMap(32, 0.1, 7)
	b := NoiseMap(32, 0.1, 7)
	c := NoiseMap(32, 0.1, 8)

	assert.Equal(t, image.Rect(0, 0, 32, 32), a.Bounds())
	assert.Equal(t, a.Pix, b.Pix, "same seed, same map")
	assert.NotEqual(t, a.Pix, c.Pix)

	distinct := map[uint8]struct{}{}
	for _, p := range a.Pix {
		distinct[p] = struct{}{}
	}
	assert.Greater(t, len(distinct), 10)
}

func TestWriteNoiseMap(t *testing.T) {
	dir := t.TempDir()

	t.Run("bmp", func(t *testing.T) {
		path := filepath.Join(dir, "out", "noise.bmp")
		require.NoError(t, WriteNoiseMap(path, 16, 0.05, 1))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		img, err := bmp.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, 16, img.Bounds().Dx())
		assert.Equal(t, 16, img.Bounds().Dy())
	})

	t.Run("png", func(t *testing.T) {
		path := filepath.Join(dir, "noise.png")
		require.NoError(t, WriteNoiseMap(path, 8, 0.05, 1))
		_, err := os.Stat(path)
		require.NoError(t, err)
	})

	t.Run("unknown format", func(t *testing.T) {
		path := filepath.Join(dir, "noise.tga")
		require.Error(t, WriteNoiseMap(path, 8, 0.05, 1))
		_, err := os.Stat(path)
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
