package math

import "golang.org/x/exp/constraints"

// Interpolatable is satisfied by any value that can be blended linearly:
// Scalar, Vec2, Vec3 and Vec4 all qualify.
type Interpolatable[T any] interface {
	Add(T) T
	Sub(T) T
	MulScalar(float32) T
}

// Scalar lets a plain float32 take part in the generic interpolators.
type Scalar float32

func (s Scalar) Add(other Scalar) Scalar { return s + other }
func (s Scalar) Sub(other Scalar) Scalar { return s - other }
func (s Scalar) MulScalar(scalar float32) Scalar { return s * Scalar(scalar) }

// EaseFn reshapes an interpolation position before it is used.
type EaseFn func(float32) float32

func clamp01(position float32) float32 {
	return Clamp(position, 0.0, 1.0)
}

// LerpFloat linearly interpolates between two raw floating point values.
// The position is clamped to [0, 1].
func LerpFloat[F constraints.Float](min, max, position F) F {
	pos := Clamp(position, 0.0, 1.0)
	return min*(1.0-pos) + max*pos
}

/**
 * @brief Linearly interpolates between min and max. The position is clamped
 * to [0, 1] so values outside the range return min or max.
 */
func Lerp[T Interpolatable[T]](min, max T, position float32) T {
	pos := clamp01(position)
	return min.MulScalar(1.0 - pos).Add(max.MulScalar(pos))
}

// InterpByFn runs the position through fn before calling Lerp.
func InterpByFn[T Interpolatable[T]](min, max T, position float32, fn EaseFn) T {
	return Lerp(min, max, fn(position))
}

// InverseLerp returns the position that Lerp would need to produce value,
// clamped to [0, 1].
func InverseLerp[F constraints.Float](min, max, value F) F {
	return Clamp((value-min)/(max-min), 0.0, 1.0)
}

/**
 * @brief Bilinear interpolation. Values are ordered
 * (x, y), (x+1, y), (x, y+1), (x+1, y+1); both position components are
 * clamped to [0, 1].
 */
func Bilerp[T Interpolatable[T]](values [4]T, position Vec2) T {
	x, y := clamp01(position.X), clamp01(position.Y)

	return values[0].MulScalar((1.0 - x) * (1.0 - y)).
		Add(values[1].MulScalar(x * (1.0 - y))).
		Add(values[2].MulScalar((1.0 - x) * y)).
		Add(values[3].MulScalar(x * y))
}

// BiInterpByFn applies fn to both clamped position components before Bilerp.
func BiInterpByFn[T Interpolatable[T]](values [4]T, position Vec2, fn EaseFn) T {
	return BiInterpByDoubleFn(values, position, fn, fn)
}

// BiInterpByDoubleFn applies xFn and yFn to their clamped position components before Bilerp.
func BiInterpByDoubleFn[T Interpolatable[T]](values [4]T, position Vec2, xFn, yFn EaseFn) T {
	return Bilerp(values, Vec2{xFn(clamp01(position.X)), yFn(clamp01(position.Y))})
}

/**
 * @brief Trilinear interpolation. Values are ordered
 * (x, y, z), (x+1, y, z), (x, y, z+1), (x+1, y, z+1),
 * (x, y+1, z), (x+1, y+1, z), (x, y+1, z+1), (x+1, y+1, z+1);
 * every position component is clamped to [0, 1].
 */
func Trilerp[T Interpolatable[T]](values [8]T, position Vec3) T {
	x, y, z := clamp01(position.X), clamp01(position.Y), clamp01(position.Z)

	return values[0].MulScalar((1.0 - x) * (1.0 - y) * (1.0 - z)).
		Add(values[1].MulScalar(x * (1.0 - y) * (1.0 - z))).
		Add(values[2].MulScalar((1.0 - x) * (1.0 - y) * z)).
		Add(values[3].MulScalar(x * (1.0 - y) * z)).
		Add(values[4].MulScalar((1.0 - x) * y * (1.0 - z))).
		Add(values[5].MulScalar(x * y * (1.0 - z))).
		Add(values[6].MulScalar((1.0 - x) * y * z)).
		Add(values[7].MulScalar(x * y * z))
}

// TriInterpByFn applies fn to every position component before Trilerp.
func TriInterpByFn[T Interpolatable[T]](values [8]T, position Vec3, fn EaseFn) T {
	return TriInterpByTripleFn(values, position, fn, fn, fn)
}

// TriInterpByTripleFn applies one function per axis before Trilerp.
func TriInterpByTripleFn[T Interpolatable[T]](values [8]T, position Vec3, xFn, yFn, zFn EaseFn) T {
	return Trilerp(values, Vec3{xFn(position.X), yFn(position.Y), zFn(position.Z)})
}

// SmoothStep is the cubic 3t^2 - 2t^3 ease, handy with the *ByFn helpers.
func SmoothStep(t float32) float32 {
	return t * t * (3.0 - 2.0*t)
}
