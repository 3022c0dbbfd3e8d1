package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireMat3(t *testing.T, expected, actual Mat3) {
	t.Helper()
	require.True(t, expected.Compare(actual, delta), "expected %v, got %v", expected, actual)
}

func TestMat3Determinant(t *testing.T) {
	m := NewMat3(
		2, 0, 1,
		1, 3, 2,
		1, 1, 1,
	)
	// 2*(3-2) - 0 + 1*(1-3)
	require.InDelta(t, 0.0, m.Determinant(), delta)

	m = NewMat3(
		1, 2, 3,
		0, 4, 5,
		1, 0, 6,
	)
	require.InDelta(t, 22.0, m.Determinant(), delta)

	m = NewMat3(
		3, 0, 2,
		2, 0, -2,
		0, 1, 1,
	)
	require.InDelta(t, 10.0, m.Determinant(), delta)
	require.InDelta(t, 1.0, NewMat3Identity().Determinant(), delta)
}

func TestMat3RowsAndColumns(t *testing.T) {
	r0, r1, r2 := NewVec3(1, 2, 3), NewVec3(4, 5, 6), NewVec3(7, 8, 9)
	rows := NewMat3FromRows(r0, r1, r2)
	cols := NewMat3FromColumns(r0, r1, r2)

	require.Equal(t, r1, rows.Row(1))
	require.Equal(t, r1, cols.Column(1))
	require.Equal(t, rows.Transposed(), cols)
}

func TestMat3Inverse(t *testing.T) {
	m := NewMat3(
		1, 2, 3,
		0, 4, 5,
		1, 0, 6,
	)
	requireMat3(t, NewMat3Identity(), m.Inverse().Mul(m))
	requireMat3(t, NewMat3Identity(), m.Mul(m.Inverse()))

	singular := NewMat3(
		1, 2, 3,
		2, 4, 6,
		0, 0, 1,
	)
	require.Equal(t, singular, singular.Inverse())
}

func TestMat3FromAxisAngle(t *testing.T) {
	m := NewMat3FromAxisAngle(-K_QUARTER_PI, NewVec3(0, 0, K_SQRT_ONE_OVER_TWO))
	requireMat3(t, NewMat3(
		0.70710677, 0.70710677, 0,
		-0.70710677, 0.70710677, 0,
		0, 0, 1,
	), m)

	require.Equal(t, NewMat3Identity(), NewMat3FromAxisAngle(0, NewVec3(1, 1, 0)))
}

func TestMat3Euler(t *testing.T) {
	const angle = 0.7

	requireMat3(t, NewMat3EulerX(angle), NewMat3FromEulerAngles(NewVec3(angle, 0, 0)))
	requireMat3(t, NewMat3EulerY(angle), NewMat3FromEulerAngles(NewVec3(0, angle, 0)))
	requireMat3(t, NewMat3EulerZ(angle), NewMat3FromEulerAngles(NewVec3(0, 0, angle)))

	requireMat3(t, NewMat3FromAxisAngle(angle, NewVec3Right()), NewMat3EulerX(angle))
	requireMat3(t, NewMat3FromAxisAngle(angle, NewVec3Up()), NewMat3EulerY(angle))
	requireMat3(t, NewMat3FromAxisAngle(angle, NewVec3Back()), NewMat3EulerZ(angle))

	angles := NewVec3(0.3, -0.5, 1.1)
	m := NewMat3FromEulerAngles(angles)
	requireMat3(t, NewMat3EulerZ(angles.Z).Mul(NewMat3EulerY(angles.Y)).Mul(NewMat3EulerX(angles.X)), m)
	requireVec3(t, angles, m.EulerAngles())
}

func TestMat3EulerAnglesGimbalLock(t *testing.T) {
	m := NewMat3FromEulerAngles(NewVec3(0.4, K_HALF_PI, 0))
	m.Data[6] = -1
	angles := m.EulerAngles()
	assert.InDelta(t, K_HALF_PI, angles.Y, delta)
	assert.Equal(t, float32(0), angles.Z)
}

func TestMat3MulVec3(t *testing.T) {
	m := NewMat3(
		0.7074, 0.7068, 0,
		-0.7068, 0.7074, 0,
		0, 0, 1,
	)
	requireVec3(t, NewVec3(2.6531748, -0.3184836, 1.195), m.MulVec3(NewVec3(2.102, 1.65, 1.195)))
}

func TestMat3ToMat4(t *testing.T) {
	m := NewMat3FromEulerAngles(NewVec3(0.2, 0.9, -1.3))
	v := NewVec3(1, -2, 0.5)
	requireVec3(t, m.MulVec3(v), v.Transform(m.ToMat4()))
}

func TestMat3Arithmetic(t *testing.T) {
	a := NewMat3Scale(2)
	b := NewMat3Identity()
	require.Equal(t, NewMat3Scale(3), a.Add(b))
	require.Equal(t, b, a.Sub(b))
	require.Equal(t, NewMat3Scale(4), a.MulScalar(2))
	require.Equal(t, b, a.DivScalar(2))
	require.Equal(t, NewMat2(2, 0, 0, 2), a.ToMat2())
}

func TestMat2(t *testing.T) {
	m := NewMat2(4, 7, 2, 6)
	require.InDelta(t, 10.0, m.Determinant(), delta)

	inv := m.Inverse()
	require.True(t, NewMat2Identity().Compare(m.Mul(inv), delta))
	require.True(t, NewMat2(0.6, -0.7, -0.2, 0.4).Compare(inv, delta))

	require.Equal(t, NewVec2(11, 8), m.MulVec2(NewVec2(1, 1)))
	require.Equal(t, NewVec2(4, 2), m.Column(0))
	require.Equal(t, NewVec2(2, 6), m.Row(1))
}

func TestMat4Inverse(t *testing.T) {
	m := NewMat4Scale(NewVec3(2, 3, 4)).
		Mul(NewMat4EulerXYZ(0.3, -0.2, 1.0)).
		Mul(NewMat4Translation(NewVec3(5, -1, 2)))

	require.True(t, NewMat4Identity().Compare(m.Mul(m.Inverse()), delta))

	p := NewVec3(1, 2, 3)
	requireVec3(t, p, p.Transform(m).Transform(m.Inverse()))
}

func TestMat4Determinant(t *testing.T) {
	require.InDelta(t, 24.0, NewMat4Scale(NewVec3(2, 3, 4)).Determinant(), delta)
	require.InDelta(t, 1.0, NewMat4EulerXYZ(0.3, 0.4, 0.5).Determinant(), delta)

	m := NewMat4Scale(NewVec3(2, 3, 4)).Mul(NewMat4Translation(NewVec3(7, 8, 9)))
	require.InDelta(t, 24.0, m.Determinant(), delta)
	require.Equal(t, m, m.Transposed().Transposed())
}

func TestMat4Directions(t *testing.T) {
	m := NewMat4Identity()
	requireVec3(t, NewVec3Forward(), m.Forward())
	requireVec3(t, NewVec3Up(), m.Up())
	requireVec3(t, NewVec3Right(), m.Right())
}
