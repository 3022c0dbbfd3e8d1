package math

// ------------------------------------------
// Vector 4
// ------------------------------------------

/**
 * @brief Creates and returns a new 4-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @param w The w value.
 * @return A new 4-element vector.
 */
func NewVec4(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

/**
 * @brief Returns a new vec3 containing the x, y and z components of the
 * supplied vec4, essentially dropping the w component.
 */
func (v Vec4) ToVec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
		W: v.W + other.W,
	}
}

func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
		W: v.W - other.W,
	}
}

func (v Vec4) Mul(other Vec4) Vec4 {
	return Vec4{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
		W: v.W * other.W,
	}
}

func (v Vec4) MulScalar(scalar float32) Vec4 {
	return Vec4{v.X * scalar, v.Y * scalar, v.Z * scalar, v.W * scalar}
}

func (v Vec4) Div(other Vec4) Vec4 {
	return Vec4{
		X: v.X / other.X,
		Y: v.Y / other.Y,
		Z: v.Z / other.Z,
		W: v.W / other.W,
	}
}

/**
 * @brief Returns the squared length of the provided vector.
 */
func (v Vec4) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

/**
 * @brief Returns the length of the provided vector.
 */
func (v Vec4) Length() float32 {
	return ksqrt(v.LengthSquared())
}

/**
 * @brief Normalizes the provided vector in place to a unit vector.
 */
func (v *Vec4) Normalize() {
	length := v.Length()
	v.X /= length
	v.Y /= length
	v.Z /= length
	v.W /= length
}

/**
 * @brief Returns a normalized copy of the supplied vector.
 */
func (v Vec4) Normalized() Vec4 {
	v.Normalize()
	return v
}

// Dot returns the four-component dot product.
func (v Vec4) Dot(other Vec4) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 *
 * @param other The second vector.
 * @param tolerance The difference tolerance. Typically K_FLOAT_EPSILON or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec4) Compare(other Vec4, tolerance float32) bool {
	if kabs(v.X-other.X) > tolerance {
		return false
	}

	if kabs(v.Y-other.Y) > tolerance {
		return false
	}

	if kabs(v.Z-other.Z) > tolerance {
		return false
	}

	if kabs(v.W-other.W) > tolerance {
		return false
	}

	return true
}

// Transform multiplies the row vector v by m.
func (v Vec4) Transform(m Mat4) Vec4 {
	out := Vec4{}
	out.X = v.X*m.Data[0] + v.Y*m.Data[4] + v.Z*m.Data[8] + v.W*m.Data[12]
	out.Y = v.X*m.Data[1] + v.Y*m.Data[5] + v.Z*m.Data[9] + v.W*m.Data[13]
	out.Z = v.X*m.Data[2] + v.Y*m.Data[6] + v.Z*m.Data[10] + v.W*m.Data[14]
	out.W = v.X*m.Data[3] + v.Y*m.Data[7] + v.Z*m.Data[11] + v.W*m.Data[15]
	return out
}
