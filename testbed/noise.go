package testbed

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spaghettifunk/geometria/engine/core"
	"github.com/spaghettifunk/geometria/engine/noise"
	"golang.org/x/image/bmp"
)

// NoiseMap samples 2D simplex noise on a size x size grid, one sample per
// pixel every scale units, as an 8-bit height map.
func NoiseMap(size int, scale float32, seed uint64) *image.Gray {
	simplex := noise.NewSimplex(seed)
	img := image.NewGray(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := simplex.Noise2DUnit(float32(x)*scale, float32(y)*scale)
			v = min(max(v, 0), 1)
			img.SetGray(x, y, color.Gray{Y: uint8(v*255 + 0.5)})
		}
	}
	return img
}

// EncodeNoiseMap writes the map as BMP, or as PNG when format is "png".
func EncodeNoiseMap(w io.Writer, img image.Image, format string) error {
	switch strings.ToLower(format) {
	case "bmp", "":
		return bmp.Encode(w, img)
	case "png":
		return png.Encode(w, img)
	default:
		return fmt.Errorf("unsupported noise map format %q", format)
	}
}

// WriteNoiseMap renders the noise field to path; the extension picks the
// image format.
func WriteNoiseMap(path string, size int, scale float32, seed uint64) error {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	img := NoiseMap(size, scale, seed)

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeNoiseMap(file, img, format); err != nil {
		file.Close()
		_ = os.Remove(path)
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}

	core.LogWith("noise map written", "path", path, "size", size, "scale", scale, "seed", seed)
	return nil
}
