package math

import (
	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// ------------------------------------------
// Vector 3
// ------------------------------------------

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @return A new 3-element vector.
 */
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// NewVec3FromArray converts a 3-element integer or float array into a Vec3.
func NewVec3FromArray[T constraints.Integer | constraints.Float](values [3]T) Vec3 {
	return Vec3{float32(values[0]), float32(values[1]), float32(values[2])}
}

/**
 * @brief Returns a new vec3 containing the x, y and z components of the
 * supplied vec4, essentially dropping the w component.
 *
 * @param vector The 4-component vector to extract from.
 * @return A new vec3
 */
func NewVec3FromVec4(vector Vec4) Vec3 {
	return Vec3{vector.X, vector.Y, vector.Z}
}

/**
 * @brief Returns a new vec4 using v as the x, y and z components and w for w.
 */
func (v Vec3) ToVec4(w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 0.0f.
 */
func NewVec3Zero() Vec3 {
	return Vec3{0.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 1.0f.
 */
func NewVec3One() Vec3 {
	return Vec3{1.0, 1.0, 1.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing up (0, 1, 0).
 */
func NewVec3Up() Vec3 {
	return Vec3{0.0, 1.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing down (0, -1, 0).
 */
func NewVec3Down() Vec3 {
	return Vec3{0.0, -1.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing left (-1, 0, 0).
 */
func NewVec3Left() Vec3 {
	return Vec3{-1.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing right (1, 0, 0).
 */
func NewVec3Right() Vec3 {
	return Vec3{1.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing forward (0, 0, -1).
 */
func NewVec3Forward() Vec3 {
	return Vec3{0.0, 0.0, -1.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing backward (0, 0, 1).
 */
func NewVec3Back() Vec3 {
	return Vec3{0.0, 0.0, 1.0}
}

/**
 * @brief Adds other to v and returns a copy of the result.
 */
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		v.X + other.X,
		v.Y + other.Y,
		v.Z + other.Z}
}

/**
 * @brief Subtracts other from v and returns a copy of the result.
 */
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{
		v.X - other.X,
		v.Y - other.Y,
		v.Z - other.Z}
}

/**
 * @brief Multiplies v by other component-wise and returns a copy of the result.
 */
func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{
		v.X * other.X,
		v.Y * other.Y,
		v.Z * other.Z}
}

/**
 * @brief Multiplies all elements of v by scalar and returns a copy of the result.
 *
 * @param scalar The scalar value.
 * @return A copy of the resulting vector.
 */
func (v Vec3) MulScalar(scalar float32) Vec3 {
	return Vec3{
		v.X * scalar,
		v.Y * scalar,
		v.Z * scalar}
}

/**
 * @brief Divides v by other component-wise and returns a copy of the result.
 */
func (v Vec3) Div(other Vec3) Vec3 {
	return Vec3{
		v.X / other.X,
		v.Y / other.Y,
		v.Z / other.Z}
}

// DivScalar divides every component by scalar.
func (v Vec3) DivScalar(scalar float32) Vec3 {
	return Vec3{
		v.X / scalar,
		v.Y / scalar,
		v.Z / scalar}
}

// Negate returns -v.
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

/**
 * @brief Returns the squared length of the provided vector.
 */
func (v Vec3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

/**
 * @brief Returns the length of the provided vector.
 */
func (v Vec3) Length() float32 {
	return ksqrt(v.LengthSquared())
}

/**
 * @brief Normalizes the vector in place to a unit vector. A zero vector
 * produces NaN components.
 */
func (v *Vec3) Normalize() {
	length := v.Length()
	v.X /= length
	v.Y /= length
	v.Z /= length
}

/**
 * @brief Returns a normalized copy of the supplied vector.
 *
 * @return A normalized copy of the supplied vector
 */
func (v Vec3) Normalized() Vec3 {
	v.Normalize()
	return v
}

/**
 * @brief Returns the dot product between the provided vectors. Typically used
 * to calculate the difference in direction.
 *
 * @param other The second vector.
 * @return The dot product.
 */
func (v Vec3) Dot(other Vec3) float32 {
	p := float32(0)
	p += v.X * other.X
	p += v.Y * other.Y
	p += v.Z * other.Z
	return p
}

/**
 * @brief Calculates and returns the cross product of the supplied vectors.
 * The cross product is a new vector which is orthoganal to both provided vectors.
 *
 * @param other The second vector.
 * @return The cross product.
 */
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X}
}

// AngleTo returns the unsigned angle in radians between v and other.
func (v Vec3) AngleTo(other Vec3) float32 {
	cos := v.Dot(other) / (v.Length() * other.Length())
	return kacos(Clamp(cos, -1.0, 1.0))
}

func (v Vec3) XY() Vec2 { return Vec2{v.X, v.Y} }
func (v Vec3) XZ() Vec2 { return Vec2{v.X, v.Z} }
func (v Vec3) YZ() Vec2 { return Vec2{v.Y, v.Z} }

// Sum returns x + y + z.
func (v Vec3) Sum() float32 {
	return v.X + v.Y + v.Z
}

// Floor rounds every component down.
func (v Vec3) Floor() Vec3 {
	return Vec3{math32.Floor(v.X), math32.Floor(v.Y), math32.Floor(v.Z)}
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 *
 * @param other The second vector.
 * @param tolerance The difference tolerance. Typically K_FLOAT_EPSILON or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec3) Compare(other Vec3, tolerance float32) bool {
	if kabs(v.X-other.X) > tolerance {
		return false
	}

	if kabs(v.Y-other.Y) > tolerance {
		return false
	}

	if kabs(v.Z-other.Z) > tolerance {
		return false
	}

	return true
}

// Cmp orders vectors lexicographically by x, then y, then z. Components
// closer than K_FLOAT_MIN_POSITIVE count as equal. Returns -1, 0 or +1.
func (v Vec3) Cmp(other Vec3) int {
	if c := cmpComponent(v.X, other.X); c != 0 {
		return c
	}
	if c := cmpComponent(v.Y, other.Y); c != 0 {
		return c
	}
	return cmpComponent(v.Z, other.Z)
}

func cmpComponent(a, b float32) int {
	d := a - b
	switch {
	case kabs(d) < K_FLOAT_MIN_POSITIVE:
		return 0
	case d > 0:
		return 1
	case d < 0:
		return -1
	}
	return 0
}

/**
 * @brief Returns the distance between v and other.
 */
func (v Vec3) Distance(other Vec3) float32 {
	d := Vec3{
		v.X - other.X,
		v.Y - other.Y,
		v.Z - other.Z}
	return d.Length()
}

/**
 * @brief Transform v by m. NOTE: It is assumed by this function that the
 * vector v is a point, not a direction, and is calculated as if a w component
 * with a value of 1.0f is there.
 *
 * @param m The matrix to transform by.
 * @return A transformed copy of v.
 */
func (v Vec3) Transform(m Mat4) Vec3 {
	out := Vec3{}
	out.X = v.X*m.Data[0+0] + v.Y*m.Data[4+0] + v.Z*m.Data[8+0] + 1.0*m.Data[12+0]
	out.Y = v.X*m.Data[0+1] + v.Y*m.Data[4+1] + v.Z*m.Data[8+1] + 1.0*m.Data[12+1]
	out.Z = v.X*m.Data[0+2] + v.Y*m.Data[4+2] + v.Z*m.Data[8+2] + 1.0*m.Data[12+2]
	return out
}

// TransformDirection applies m to v ignoring translation.
func (v Vec3) TransformDirection(m Mat4) Vec3 {
	return v.ToVec4(0).Transform(m).ToVec3()
}
