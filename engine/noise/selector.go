package noise

import "github.com/spaghettifunk/geometria/engine/math"

type Noise2DFn func(x, y float32) float32

type Noise3DFn func(x, y, z float32) float32

// SelectorNoise2D blends low and high at (x, y), using selector's value there
// as the interpolation position. A nil interp means linear. The position is
// clamped to [0, 1], so selector values outside it pick low or high outright.
func SelectorNoise2D(x, y float32, low, high, selector Noise2DFn, interp math.EaseFn) float32 {
	return blend(low(x, y), high(x, y), selector(x, y), interp)
}

// SelectorNoise3D is the 3D form of SelectorNoise2D.
func SelectorNoise3D(x, y, z float32, low, high, selector Noise3DFn, interp math.EaseFn) float32 {
	return blend(low(x, y, z), high(x, y, z), selector(x, y, z), interp)
}

func blend(low, high, position float32, interp math.EaseFn) float32 {
	if interp == nil {
		return float32(math.Lerp(math.Scalar(low), math.Scalar(high), position))
	}
	return float32(math.InterpByFn(math.Scalar(low), math.Scalar(high), position, interp))
}
