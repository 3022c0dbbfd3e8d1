package math

// ------------------------------------------
// Matrix 2
// ------------------------------------------

// NewMat2 builds a 2x2 matrix from its rows.
func NewMat2(r0c0, r0c1, r1c0, r1c1 float32) Mat2 {
	return Mat2{Data: [4]float32{r0c0, r0c1, r1c0, r1c1}}
}

/**
 * @brief Creates and returns a 2x2 identity matrix.
 */
func NewMat2Identity() Mat2 {
	return NewMat2(1, 0, 0, 1)
}

func (mt Mat2) Row(i int) Vec2 {
	return Vec2{mt.Data[i*2], mt.Data[i*2+1]}
}

func (mt Mat2) Column(i int) Vec2 {
	return Vec2{mt.Data[i], mt.Data[2+i]}
}

// Determinant returns ad - bc.
func (mt Mat2) Determinant() float32 {
	return mt.Data[0]*mt.Data[3] - mt.Data[1]*mt.Data[2]
}

// Inverse returns the inverse of mt. A singular matrix yields Inf/NaN entries.
func (mt Mat2) Inverse() Mat2 {
	return NewMat2(mt.Data[3], -mt.Data[1], -mt.Data[2], mt.Data[0]).DivScalar(mt.Determinant())
}

/**
 * @brief Returns the result of multiplying mt and other.
 */
func (mt Mat2) Mul(other Mat2) Mat2 {
	return NewMat2(
		mt.Row(0).Dot(other.Column(0)), mt.Row(0).Dot(other.Column(1)),
		mt.Row(1).Dot(other.Column(0)), mt.Row(1).Dot(other.Column(1)),
	)
}

// MulVec2 returns mt * v, treating v as a column vector.
func (mt Mat2) MulVec2(v Vec2) Vec2 {
	return Vec2{mt.Row(0).Dot(v), mt.Row(1).Dot(v)}
}

func (mt Mat2) Add(other Mat2) Mat2 {
	out := mt
	for i := range out.Data {
		out.Data[i] += other.Data[i]
	}
	return out
}

func (mt Mat2) Sub(other Mat2) Mat2 {
	out := mt
	for i := range out.Data {
		out.Data[i] -= other.Data[i]
	}
	return out
}

func (mt Mat2) MulScalar(scalar float32) Mat2 {
	out := mt
	for i := range out.Data {
		out.Data[i] *= scalar
	}
	return out
}

func (mt Mat2) DivScalar(scalar float32) Mat2 {
	out := mt
	for i := range out.Data {
		out.Data[i] /= scalar
	}
	return out
}

// Compare reports whether every element is within tolerance of other.
func (mt Mat2) Compare(other Mat2, tolerance float32) bool {
	for i := range mt.Data {
		if kabs(mt.Data[i]-other.Data[i]) > tolerance {
			return false
		}
	}
	return true
}
