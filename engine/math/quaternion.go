package math

// ------------------------------------------
// Quaternion
// ------------------------------------------

/**
 * @brief Creates an identity quaternion.
 *
 * @return An identity quaternion.
 */
func NewQuatIdentity() Quaternion {
	return Quaternion{0, 0, 0, 1.0}
}

/**
 * @brief Returns the normal of the provided quaternion.
 */
func (q Quaternion) Normal() float32 {
	return ksqrt(
		q.X*q.X +
			q.Y*q.Y +
			q.Z*q.Z +
			q.W*q.W)
}

/**
 * @brief Returns a normalized copy of the provided quaternion.
 */
func (q Quaternion) Normalize() Quaternion {
	normal := q.Normal()
	return Quaternion{
		q.X / normal,
		q.Y / normal,
		q.Z / normal,
		q.W / normal}
}

/**
 * @brief Returns the conjugate of the provided quaternion. That is,
 * The x, y and z elements are negated, but the w element is untouched.
 */
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, q.W}
}

/**
 * @brief Returns an inverse copy of the provided quaternion.
 */
func (q Quaternion) Inverse() Quaternion {
	return q.Conjugate().Normalize()
}

/**
 * @brief Multiplies the provided quaternions.
 *
 * @param other The second quaternion.
 * @return The multiplied quaternion.
 */
func (q Quaternion) Mul(other Quaternion) Quaternion {
	out_quaternion := Quaternion{}

	out_quaternion.X = q.X*other.W +
		q.Y*other.Z -
		q.Z*other.Y +
		q.W*other.X

	out_quaternion.Y = -q.X*other.Z +
		q.Y*other.W +
		q.Z*other.X +
		q.W*other.Y

	out_quaternion.Z = q.X*other.Y -
		q.Y*other.X +
		q.Z*other.W +
		q.W*other.Z

	out_quaternion.W = -q.X*other.X -
		q.Y*other.Y -
		q.Z*other.Z +
		q.W*other.W

	return out_quaternion
}

/**
 * @brief Calculates the dot product of the provided quaternions.
 */
func (q Quaternion) Dot(other Quaternion) float32 {
	return q.X*other.X +
		q.Y*other.Y +
		q.Z*other.Z +
		q.W*other.W
}

/**
 * @brief Creates a rotation matrix from the given quaternion, laid out for
 * row vectors so it can be passed straight to Vec3.Transform.
 *
 * @return A rotation matrix.
 */
func (q Quaternion) ToMat4() Mat4 {
	out_matrix := NewMat4Identity()

	n := q.Normalize()

	out_matrix.Data[0] = 1.0 - 2.0*n.Y*n.Y - 2.0*n.Z*n.Z
	out_matrix.Data[1] = 2.0*n.X*n.Y + 2.0*n.Z*n.W
	out_matrix.Data[2] = 2.0*n.X*n.Z - 2.0*n.Y*n.W

	out_matrix.Data[4] = 2.0*n.X*n.Y - 2.0*n.Z*n.W
	out_matrix.Data[5] = 1.0 - 2.0*n.X*n.X - 2.0*n.Z*n.Z
	out_matrix.Data[6] = 2.0*n.Y*n.Z + 2.0*n.X*n.W

	out_matrix.Data[8] = 2.0*n.X*n.Z + 2.0*n.Y*n.W
	out_matrix.Data[9] = 2.0*n.Y*n.Z - 2.0*n.X*n.W
	out_matrix.Data[10] = 1.0 - 2.0*n.X*n.X - 2.0*n.Y*n.Y

	return out_matrix
}

/**
 * @brief Calculates a rotation matrix based on the quaternion and the passed in center point.
 *
 * @param center The center point.
 * @return A matrix rotating points about center.
 */
func (q Quaternion) ToRotationMatrix(center Vec3) Mat4 {
	to_origin := NewMat4Translation(center.Negate())
	back := NewMat4Translation(center)
	return to_origin.Mul(q.ToMat4()).Mul(back)
}

/**
 * @brief Creates a quaternion from the given axis and angle.
 *
 * @param axis The axis of rotation.
 * @param angle The angle of rotation.
 * @param normalize Indicates if the quaternion should be normalized.
 * @return A new quaternion.
 */
func NewQuatFromAxisAngle(axis Vec3, angle float32, normalize bool) Quaternion {
	half_angle := 0.5 * angle
	s := ksin(half_angle)
	c := kcos(half_angle)

	q := Quaternion{s * axis.X, s * axis.Y, s * axis.Z, c}
	if normalize {
		q = q.Normalize()
	}
	return q
}

// NewQuatFromEuler builds the rotation x, then y, then z (radians).
func NewQuatFromEuler(angles Vec3) Quaternion {
	qx := NewQuatFromAxisAngle(NewVec3Right(), angles.X, false)
	qy := NewQuatFromAxisAngle(NewVec3Up(), angles.Y, false)
	qz := NewQuatFromAxisAngle(NewVec3Back(), angles.Z, false)
	return qz.Mul(qy).Mul(qx).Normalize()
}

/**
 * @brief Calculates spherical linear interpolation of a given percentage
 * between two quaternions.
 *
 * @param other The second quaternion.
 * @param percentage The percentage of interpolation, typically a value from 0.0f-1.0f.
 * @return An interpolated quaternion.
 */
func (q Quaternion) Slerp(other Quaternion, percentage float32) Quaternion {
	// Source: https://en.Wikipedia.org/wiki/Slerp
	v0 := q.Normalize()
	v1 := other.Normalize()

	dot := v0.Dot(v1)

	// v1 and -v1 are the same rotation; take the shorter arc.
	if dot < 0.0 {
		v1 = Quaternion{-v1.X, -v1.Y, -v1.Z, -v1.W}
		dot = -dot
	}

	const DOT_THRESHOLD float32 = 0.9995
	if dot > DOT_THRESHOLD {
		qt := Quaternion{
			v0.X + ((v1.X - v0.X) * percentage),
			v0.Y + ((v1.Y - v0.Y) * percentage),
			v0.Z + ((v1.Z - v0.Z) * percentage),
			v0.W + ((v1.W - v0.W) * percentage)}

		return qt.Normalize()
	}

	theta_0 := kacos(dot)
	theta := theta_0 * percentage
	sin_theta := ksin(theta)
	sin_theta_0 := ksin(theta_0)

	s0 := kcos(theta) - dot*sin_theta/sin_theta_0
	s1 := sin_theta / sin_theta_0

	return Quaternion{
		(v0.X * s0) + (v1.X * s1),
		(v0.Y * s0) + (v1.Y * s1),
		(v0.Z * s0) + (v1.Z * s1),
		(v0.W * s0) + (v1.W * s1)}
}
