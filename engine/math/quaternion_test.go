package math

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func requireQuat(t *testing.T, expected, actual Quaternion) {
	t.Helper()
	require.True(t, Vec4(expected).Compare(Vec4(actual), delta), "expected %v, got %v", expected, actual)
}

func TestQuaternionToMat4(t *testing.T) {
	q := NewQuatFromAxisAngle(NewVec3Back(), K_HALF_PI, true)
	m := q.ToMat4()

	require.True(t, NewMat4EulerZ(K_HALF_PI).Compare(m, delta))
	requireVec3(t, NewVec3Up(), NewVec3Right().Transform(m))
	requireVec3(t, NewVec3Left(), NewVec3Up().Transform(m))

	require.Equal(t, NewMat4Identity(), NewQuatIdentity().ToMat4())
}

func TestQuaternionToRotationMatrix(t *testing.T) {
	centre := NewVec3(3, 4, 5)
	m := NewQuatFromAxisAngle(NewVec3Back(), K_HALF_PI, true).ToRotationMatrix(centre)

	requireVec3(t, centre, centre.Transform(m))
	requireVec3(t, centre.Add(NewVec3Up()), centre.Add(NewVec3Right()).Transform(m))
}

func TestQuaternionInverse(t *testing.T) {
	q := NewQuatFromAxisAngle(NewVec3(1, 2, 3).Normalized(), 0.8, true)
	requireQuat(t, NewQuatIdentity(), q.Mul(q.Inverse()))
	requireQuat(t, q, q.Mul(NewQuatIdentity()))
	require.InDelta(t, 1.0, q.Normal(), delta)
}

func TestQuaternionFromEuler(t *testing.T) {
	requireQuat(t, NewQuatFromAxisAngle(NewVec3Back(), 0.6, true), NewQuatFromEuler(NewVec3(0, 0, 0.6)))
	requireQuat(t, NewQuatFromAxisAngle(NewVec3Right(), -1.2, true), NewQuatFromEuler(NewVec3(-1.2, 0, 0)))
	requireQuat(t, NewQuatIdentity(), NewQuatFromEuler(NewVec3Zero()))
}

func TestQuaternionSlerp(t *testing.T) {
	from := NewQuatIdentity()
	to := NewQuatFromAxisAngle(NewVec3Back(), K_HALF_PI, true)

	requireQuat(t, from, from.Slerp(to, 0))
	requireQuat(t, to, from.Slerp(to, 1))
	requireQuat(t, NewQuatFromAxisAngle(NewVec3Back(), K_QUARTER_PI, true), from.Slerp(to, 0.5))

	// q and -q are the same rotation
	negated := Quaternion{-to.X, -to.Y, -to.Z, -to.W}
	requireQuat(t, NewQuatFromAxisAngle(NewVec3Back(), K_QUARTER_PI, true), from.Slerp(negated, 0.5))
}

func TestTransform(t *testing.T) {
	rotation := NewQuatFromAxisAngle(NewVec3Back(), K_HALF_PI, true)
	tr := NewTransformFromPositionRotationScale(NewVec3(1, 2, 3), rotation, NewVec3(2, 2, 2))

	points := tr.ApplyPoints([]Vec3{NewVec3Zero(), NewVec3Right()})
	requireVec3(t, NewVec3(1, 2, 3), points[0])
	requireVec3(t, NewVec3(1, 4, 3), points[1])
	require.False(t, tr.IsDirty)

	tr.Translate(NewVec3(0, 0, -3))
	require.True(t, tr.IsDirty)
	requireVec3(t, NewVec3(1, 2, 0), NewVec3Zero().Transform(tr.GetLocal()))
}

func TestTransformParent(t *testing.T) {
	parent := NewTransformFromPosition(NewVec3(0, 10, 0))
	child := NewTransformFromPosition(NewVec3(1, 0, 0))
	child.Parent = parent

	requireVec3(t, NewVec3(1, 10, 0), NewVec3Zero().Transform(child.GetWorld()))

	var none *Transform
	require.Equal(t, NewMat4Identity(), none.GetWorld())
	require.Equal(t, []Vec3{NewVec3(1, 1, 1)}, none.ApplyPoints([]Vec3{NewVec3(1, 1, 1)}))
}
