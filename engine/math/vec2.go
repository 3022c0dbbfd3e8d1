package math

import "github.com/chewxy/math32"

// ------------------------------------------
// Vector 2
// ------------------------------------------

/**
 * @brief Creates and returns a new 2-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @return A new 2-element vector.
 */
func NewVec2(x, y float32) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 0.0f.
 */
func NewVec2Zero() Vec2 {
	return Vec2{X: 0.0, Y: 0.0}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 1.0f.
 */
func NewVec2One() Vec2 {
	return Vec2{1.0, 1.0}
}

/**
 *  Adds other to v and returns a copy of the result.
 */
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

/**
 * Subtracts other from v and returns a copy of the result.
 */
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

/**
 *  Multiplies v by other component-wise and returns a copy of the result.
 */
func (v Vec2) Mul(other Vec2) Vec2 {
	return Vec2{v.X * other.X, v.Y * other.Y}
}

/**
 *  Multiplies all elements of v by scalar and returns a copy of the result.
 */
func (v Vec2) MulScalar(scalar float32) Vec2 {
	return Vec2{v.X * scalar, v.Y * scalar}
}

/**
 * Divides v by other component-wise and returns a copy of the result.
 */
func (v Vec2) Div(other Vec2) Vec2 {
	return Vec2{v.X / other.X, v.Y / other.Y}
}

/**
 * Divides all elements of v by scalar and returns a copy of the result.
 */
func (v Vec2) DivScalar(scalar float32) Vec2 {
	return Vec2{v.X / scalar, v.Y / scalar}
}

// Negate returns -v.
func (v Vec2) Negate() Vec2 {
	return Vec2{-v.X, -v.Y}
}

/**
 * Returns the squared length of the provided vector.
 */
func (v Vec2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

/**
 * @brief Returns the length of the provided vector.
 *
 * @param vector The vector to retrieve the length of.
 * @return The length.
 */
func (v Vec2) Length() float32 {
	return ksqrt(v.LengthSquared())
}

/**
 * Normalizes the provided vector in place to a unit vector.
 */
func (v *Vec2) Normalize() {
	length := v.Length()
	v.X /= length
	v.Y /= length
}

/**
 * @brief Returns a normalized copy of the supplied vector.
 *
 * @param vector The vector to be normalized.
 * @return A normalized copy of the supplied vector
 */
func (v Vec2) Normalized() Vec2 {
	v.Normalize()
	return v
}

// Dot returns the dot product of v and other.
func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Sum returns the sum of the components.
func (v Vec2) Sum() float32 {
	return v.X + v.Y
}

// Floor returns a copy with every component rounded down.
func (v Vec2) Floor() Vec2 {
	return Vec2{math32.Floor(v.X), math32.Floor(v.Y)}
}

// ToVec3 extends v with a zero z component.
func (v Vec2) ToVec3() Vec3 {
	return Vec3{v.X, v.Y, 0.0}
}

/**
 * @brief Compares all elements of vector_0 and vector_1 and ensures the difference
 * is less than tolerance.
 *
 * @param vector_0 The first vector.
 * @param vector_1 The second vector.
 * @param tolerance The difference tolerance. Typically K_FLOAT_EPSILON or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec2) Compare(other Vec2, tolerance float32) bool {
	if kabs(v.X-other.X) > tolerance {
		return false
	}
	if kabs(v.Y-other.Y) > tolerance {
		return false
	}
	return true
}

/**
 * @brief Returns the distance between vector_0 and vector_1.
 *
 * @param vector_0 The first vector.
 * @param vector_1 The second vector.
 * @return The distance between vector_0 and vector_1.
 */
func (v Vec2) Distance(other Vec2) float32 {
	d := Vec2{
		v.X - other.X,
		v.Y - other.Y}
	return d.Length()
}
