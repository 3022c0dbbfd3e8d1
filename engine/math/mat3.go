package math

import "github.com/chewxy/math32"

// ------------------------------------------
// Matrix 3
// ------------------------------------------

/**
 * @brief Creates a 3x3 matrix from its elements, given row by row.
 * Mat3 multiplies column vectors: MulVec3 returns M * v.
 */
func NewMat3(
	r0c0, r0c1, r0c2,
	r1c0, r1c1, r1c2,
	r2c0, r2c1, r2c2 float32,
) Mat3 {
	return Mat3{Data: [9]float32{
		r0c0, r0c1, r0c2,
		r1c0, r1c1, r1c2,
		r2c0, r2c1, r2c2,
	}}
}

/**
 * @brief Creates and returns a 3x3 identity matrix.
 */
func NewMat3Identity() Mat3 {
	return NewMat3(
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	)
}

// NewMat3FromRows builds a matrix whose rows are r0, r1 and r2.
func NewMat3FromRows(r0, r1, r2 Vec3) Mat3 {
	return NewMat3(
		r0.X, r0.Y, r0.Z,
		r1.X, r1.Y, r1.Z,
		r2.X, r2.Y, r2.Z,
	)
}

// NewMat3FromColumns builds a matrix whose columns are c0, c1 and c2.
func NewMat3FromColumns(c0, c1, c2 Vec3) Mat3 {
	return NewMat3FromRows(c0, c1, c2).Transposed()
}

// NewMat3Scale returns a uniform scale matrix.
func NewMat3Scale(scale float32) Mat3 {
	return NewMat3(
		scale, 0, 0,
		0, scale, 0,
		0, 0, scale,
	)
}

/**
 * @brief Creates an anticlockwise rotation matrix around the x axis.
 *
 * @param angle_radians The angle in radians.
 */
func NewMat3EulerX(angle_radians float32) Mat3 {
	c := kcos(angle_radians)
	s := ksin(angle_radians)
	return NewMat3(
		1, 0, 0,
		0, c, -s,
		0, s, c,
	)
}

/**
 * @brief Creates an anticlockwise rotation matrix around the y axis.
 *
 * @param angle_radians The angle in radians.
 */
func NewMat3EulerY(angle_radians float32) Mat3 {
	c := kcos(angle_radians)
	s := ksin(angle_radians)
	return NewMat3(
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	)
}

/**
 * @brief Creates an anticlockwise rotation matrix around the z axis.
 *
 * @param angle_radians The angle in radians.
 */
func NewMat3EulerZ(angle_radians float32) Mat3 {
	c := kcos(angle_radians)
	s := ksin(angle_radians)
	return NewMat3(
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	)
}

/**
 * @brief Creates a matrix for an anticlockwise rotation of angle radians
 * around axis. The axis is normalized first; a zero angle returns the identity.
 *
 * @param angle The angle in radians.
 * @param axis The axis of rotation.
 * @return A rotation matrix.
 */
func NewMat3FromAxisAngle(angle float32, axis Vec3) Mat3 {
	axis.Normalize()
	if angle == 0.0 {
		return NewMat3Identity()
	}
	c := kcos(angle)
	s := ksin(angle)
	t := 1.0 - c
	return NewMat3(
		c+axis.X*axis.X*t, axis.X*axis.Y*t-axis.Z*s, axis.X*axis.Z*t+axis.Y*s,
		axis.Y*axis.X*t+axis.Z*s, c+axis.Y*axis.Y*t, axis.Y*axis.Z*t-axis.X*s,
		axis.Z*axis.X*t-axis.Y*s, axis.Z*axis.Y*t+axis.X*s, c+axis.Z*axis.Z*t,
	)
}

/**
 * @brief Creates a rotation matrix from euler angles (x, y, z) in radians.
 * The result equals EulerZ(z) * EulerY(y) * EulerX(x).
 */
func NewMat3FromEulerAngles(angles Vec3) Mat3 {
	sx, cx := math32.Sincos(angles.X)
	sy, cy := math32.Sincos(angles.Y)
	sz, cz := math32.Sincos(angles.Z)
	return NewMat3(
		cy*cz, sx*sy*cz-cx*sz, cx*sy*cz+sx*sz,
		cy*sz, sx*sy*sz+cx*cz, cx*sy*sz-sx*cz,
		-sy, sx*cy, cx*cy,
	)
}

// EulerAngles recovers the (x, y, z) angles that NewMat3FromEulerAngles
// would need to produce mt. At gimbal lock the z angle is reported as 0.
func (mt Mat3) EulerAngles() Vec3 {
	angles := Vec3{}
	m := mt.Data

	switch m[6] {
	case 1.0:
		angles.Y = -K_HALF_PI
		angles.X = -math32.Atan2(m[1], -m[2])
		return angles
	case -1.0:
		angles.Y = K_HALF_PI
		angles.X = math32.Atan2(m[1], m[2])
		return angles
	}

	angles.Y = -math32.Asin(m[6])
	cy := kcos(angles.Y)
	angles.X = math32.Atan2(m[7]/cy, m[8]/cy)
	angles.Z = math32.Atan2(m[3]/cy, m[0]/cy)
	return angles
}

func (mt Mat3) Row(i int) Vec3 {
	return Vec3{mt.Data[i*3], mt.Data[i*3+1], mt.Data[i*3+2]}
}

func (mt Mat3) Column(i int) Vec3 {
	return Vec3{mt.Data[i], mt.Data[3+i], mt.Data[6+i]}
}

/**
 * @brief Returns a transposed copy of the provided matrix (rows->colums)
 */
func (mt Mat3) Transposed() Mat3 {
	return NewMat3FromRows(mt.Column(0), mt.Column(1), mt.Column(2))
}

// Determinant expands along the first row.
func (mt Mat3) Determinant() float32 {
	m := mt.Data
	return m[0]*(m[4]*m[8]-m[7]*m[5]) -
		m[1]*(m[3]*m[8]-m[6]*m[5]) +
		m[2]*(m[3]*m[7]-m[6]*m[4])
}

/**
 * @brief Creates and returns an inverse of the provided matrix. A singular
 * matrix (determinant 0) is returned unchanged.
 */
func (mt Mat3) Inverse() Mat3 {
	det := mt.Determinant()
	if det == 0.0 {
		return mt
	}
	r0, r1, r2 := mt.Row(0), mt.Row(1), mt.Row(2)
	return NewMat3FromColumns(r1.Cross(r2), r2.Cross(r0), r0.Cross(r1)).DivScalar(det)
}

/**
 * @brief Returns the result of multiplying mt and other.
 */
func (mt Mat3) Mul(other Mat3) Mat3 {
	out := Mat3{}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out.Data[row*3+col] = mt.Row(row).Dot(other.Column(col))
		}
	}
	return out
}

// MulVec3 returns mt * v.
func (mt Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		v.Dot(mt.Row(0)),
		v.Dot(mt.Row(1)),
		v.Dot(mt.Row(2)),
	}
}

func (mt Mat3) Add(other Mat3) Mat3 {
	out := mt
	for i := range out.Data {
		out.Data[i] += other.Data[i]
	}
	return out
}

func (mt Mat3) Sub(other Mat3) Mat3 {
	out := mt
	for i := range out.Data {
		out.Data[i] -= other.Data[i]
	}
	return out
}

func (mt Mat3) MulScalar(scalar float32) Mat3 {
	out := mt
	for i := range out.Data {
		out.Data[i] *= scalar
	}
	return out
}

func (mt Mat3) DivScalar(scalar float32) Mat3 {
	out := mt
	for i := range out.Data {
		out.Data[i] /= scalar
	}
	return out
}

// Compare reports whether every element is within tolerance of other.
func (mt Mat3) Compare(other Mat3, tolerance float32) bool {
	for i := range mt.Data {
		if kabs(mt.Data[i]-other.Data[i]) > tolerance {
			return false
		}
	}
	return true
}

// ToMat4 embeds mt in a Mat4 laid out for row-vector use, so that
// v.Transform(mt.ToMat4()) equals mt.MulVec3(v).
func (mt Mat3) ToMat4() Mat4 {
	out := NewMat4Identity()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out.Data[col*4+row] = mt.Data[row*3+col]
		}
	}
	return out
}

// ToMat2 keeps the upper-left 2x2 block.
func (mt Mat3) ToMat2() Mat2 {
	return NewMat2(mt.Data[0], mt.Data[1], mt.Data[3], mt.Data[4])
}
