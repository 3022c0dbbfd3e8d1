package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireVec3(t *testing.T, expected, actual Vec3) {
	t.Helper()
	require.True(t, expected.Compare(actual, delta), "expected %v, got %v", expected, actual)
}

func TestVec3Cross(t *testing.T) {
	require.Equal(t, NewVec3(0, 1, 0), NewVec3(0, 0, 1).Cross(NewVec3(1, 0, 0)))
	require.Equal(t, NewVec3(0, 0, 1), NewVec3Right().Cross(NewVec3Up()))
}

func TestVec3Mul(t *testing.T) {
	require.Equal(t, NewVec3(2, -6, 12), NewVec3(1, 2, 3).Mul(NewVec3(2, -3, 4)))
	require.Equal(t, NewVec3(0.5, 1, 1.5), NewVec3(1, 2, 3).DivScalar(2))
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 0, 4)
	n := v.Normalized()
	require.Equal(t, NewVec3(3, 0, 4), v)
	require.InDelta(t, 1.0, n.Length(), delta)

	v.Normalize()
	requireVec3(t, NewVec3(0.6, 0, 0.8), v)
}

func TestVec3FromArray(t *testing.T) {
	require.Equal(t, NewVec3(1, -2, 3), NewVec3FromArray([3]int{1, -2, 3}))
	require.Equal(t, NewVec3(0.5, 0, 2), NewVec3FromArray([3]float64{0.5, 0, 2}))
}

func TestVec3Cmp(t *testing.T) {
	x, y, z := NewVec3Right(), NewVec3Up(), NewVec3Back()

	tests := []struct {
		name     string
		a, b     Vec3
		expected int
	}{
		{"longer x is greater", x.MulScalar(5), x, 1},
		{"x beats y", x, y, 1},
		{"y beats z", y, z, 1},
		{"x beats y plus z", x, y.Add(z), 1},
		{"x is less than x plus y", x, x.Add(y), -1},
		{"x plus y is less than x plus y plus z", x.Add(y), x.Add(y).Add(z), -1},
		{"equal", x.Add(z), x.Add(z), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Cmp(tt.b))
			assert.Equal(t, -tt.expected, tt.b.Cmp(tt.a))
		})
	}
}

func TestVec3Transform(t *testing.T) {
	p := NewVec3(1, 2, 3)
	m := NewMat4Translation(NewVec3(10, 0, -1))

	require.Equal(t, NewVec3(11, 2, 2), p.Transform(m))
	require.Equal(t, p, p.TransformDirection(m))

	rotated := NewVec3Right().Transform(NewMat4EulerZ(K_HALF_PI))
	requireVec3(t, NewVec3Up(), rotated)

	// directions rotate but never pick up the translation
	moved := NewMat4EulerZ(K_HALF_PI).Mul(m)
	requireVec3(t, NewVec3Up(), NewVec3Right().TransformDirection(moved))
	requireVec3(t, NewVec3(10, 1, -1), NewVec3Right().Transform(moved))
}

func TestVec3Misc(t *testing.T) {
	a := NewVec3(1, 2, 2)
	assert.Equal(t, float32(9), a.LengthSquared())
	assert.Equal(t, float32(3), a.Length())
	assert.Equal(t, float32(5), a.Sum())
	assert.Equal(t, float32(3), a.Distance(NewVec3Zero()))
	assert.Equal(t, NewVec3(1, -3, 0), NewVec3(1.5, -2.5, 0.2).Floor())
	assert.InDelta(t, K_HALF_PI, NewVec3Right().AngleTo(NewVec3Up()), delta)
	assert.Equal(t, NewVec2(1, 2), a.XY())
	assert.Equal(t, NewVec4(1, 2, 2, 1), a.ToVec4(1))
}
