package math

import (
	"cmp"
	"slices"

	"github.com/chewxy/math32"
)

const (
	/** @brief An approximate representation of PI. */
	K_PI float32 = 3.14159265358979323846
	/** @brief An approximate representation of PI multiplied by 2. */
	K_PI_2 float32 = 2.0 * K_PI
	/** @brief An approximate representation of PI divided by 2. */
	K_HALF_PI float32 = 0.5 * K_PI
	/** @brief An approximate representation of PI divided by 4. */
	K_QUARTER_PI float32 = 0.25 * K_PI
	/** @brief One divided by an approximate representation of PI. */
	K_ONE_OVER_PI float32 = 1.0 / K_PI
	/** @brief One divided by half of an approximate representation of PI. */
	K_ONE_OVER_TWO_PI float32 = 1.0 / K_PI_2
	/** @brief Four thirds of PI, used for sphere volumes. */
	K_FOUR_THIRDS_PI float32 = (4.0 / 3.0) * K_PI
	/** @brief An approximation of the square root of 2. */
	K_SQRT_TWO float32 = 1.41421356237309504880
	/** @brief An approximation of the square root of 3. */
	K_SQRT_THREE float32 = 1.73205080756887729352
	/** @brief An approximation of the square root of 2*PI. */
	K_SQRT_TWO_PI float32 = 2.50662827463100050242
	/** @brief One divided by an approximation of the square root of 2. */
	K_SQRT_ONE_OVER_TWO float32 = 0.70710678118654752440
	/** @brief One divided by an approximation of the square root of 3. */
	K_SQRT_ONE_OVER_THREE float32 = 0.57735026918962576450
	/** @brief A multiplier used to convert degrees to radians. */
	K_DEG2RAD_MULTIPLIER float32 = K_PI / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	K_RAD2DEG_MULTIPLIER float32 = 180.0 / K_PI
	/** @brief A huge number that should be larger than any valid number used. */
	K_INFINITY float32 = 1e30
	/** @brief Smallest positive number where 1.0 + FLOAT_EPSILON != 0 */
	K_FLOAT_EPSILON float32 = 1.192092896e-07
	/** @brief Smallest positive normal float32, used as the equality threshold when ordering vectors. */
	K_FLOAT_MIN_POSITIVE float32 = 1.17549435e-38
)

// Abramowitz and Stegun 7.1.25 coefficients.
const (
	erfP  float32 = 0.47047
	erfA1 float32 = 0.3480242
	erfA2 float32 = -0.0958798
	erfA3 float32 = 0.7478556
)

func ksin(x float32) float32 {
	return math32.Sin(x)
}

func kcos(x float32) float32 {
	return math32.Cos(x)
}

func ktan(x float32) float32 {
	return math32.Tan(x)
}

func kacos(x float32) float32 {
	return math32.Acos(x)
}

func ksqrt(x float32) float32 {
	return math32.Sqrt(x)
}

func kabs(x float32) float32 {
	return math32.Abs(x)
}

/**
 * @brief Converts provided degrees to radians.
 *
 * @param degrees The degrees to be converted.
 * @return The amount in radians.
 */
func DegToRad(degrees float32) float32 {
	return degrees * K_DEG2RAD_MULTIPLIER
}

/**
 * @brief Converts provided radians to degrees.
 *
 * @param radians The radians to be converted.
 * @return The amount in degrees.
 */
func RadToDeg(radians float32) float32 {
	return radians * K_RAD2DEG_MULTIPLIER
}

// SolveQuadratic returns the real solutions of ax^2 + bx + c = 0.
// A zero discriminant yields a single root; two roots are ordered
// (-b + sqrt(d)) / 2a first, then (-b - sqrt(d)) / 2a.
func SolveQuadratic(a, b, c float32) []float32 {
	det := b*b - 4.0*a*c
	if det < 0.0 {
		return nil
	}
	if det == 0.0 {
		return []float32{-b / (2.0 * a)}
	}
	root := ksqrt(det)
	return []float32{(-b + root) / (2.0 * a), (-b - root) / (2.0 * a)}
}

// SortByKey returns a copy of pairs sorted by ascending key. Pairs with
// equal keys keep their input order.
func SortByKey[T any](pairs []KeyValue[T]) []KeyValue[T] {
	sorted := slices.Clone(pairs)
	slices.SortStableFunc(sorted, func(a, b KeyValue[T]) int {
		return cmp.Compare(a.Key, b.Key)
	})
	return sorted
}

// NormalProbabilityDensity evaluates the normal distribution density at value.
func NormalProbabilityDensity(value, mean, standardDeviation float32) float32 {
	d := value - mean
	return (1.0 / (standardDeviation * K_SQRT_TWO_PI)) *
		math32.Exp(-(d*d)/(2.0*standardDeviation*standardDeviation))
}

// errorFnApprox approximates erf(x) for x >= 0 with a maximum error of 2.5e-5.
func errorFnApprox(x float32) float32 {
	t := 1.0 / (1.0 + erfP*x)
	return 1.0 - (erfA1*t+erfA2*t*t+erfA3*t*t*t)*math32.Exp(-x*x)
}

// NormalCDF is the cumulative normal distribution, accurate to about 2.5e-5.
func NormalCDF(value, mean, standardDeviation float32) float32 {
	x := (value - mean) / (standardDeviation * K_SQRT_TWO)
	switch {
	case x == 0.0:
		return 0.5
	case x < 0.0:
		return 0.5 * (1.0 - errorFnApprox(-x))
	default:
		return 0.5 * (1.0 + errorFnApprox(x))
	}
}
