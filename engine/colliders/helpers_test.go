package colliders

import (
	"testing"

	"github.com/spaghettifunk/geometria/engine/math"
	"github.com/stretchr/testify/require"
)

const delta = 1e-4

func v3(x, y, z float32) math.Vec3 {
	return math.NewVec3(x, y, z)
}

func requireVec3(t *testing.T, expected, actual math.Vec3) {
	t.Helper()
	require.InDelta(t, expected.X, actual.X, delta, "x of %v", actual)
	require.InDelta(t, expected.Y, actual.Y, delta, "y of %v", actual)
	require.InDelta(t, expected.Z, actual.Z, delta, "z of %v", actual)
}

// pyramid is a square-based pyramid on y=0 with its apex at the given point.
func pyramid(t *testing.T, apex math.Vec3) *MeshCollider {
	t.Helper()
	m, err := NewMeshCollider(
		[]math.Vec3{v3(-2, 0, -2), v3(-2, 0, 2), v3(2, 0, -2), v3(2, 0, 2), apex},
		[]uint32{0, 3, 2, 3, 1, 0, 0, 4, 1, 1, 4, 2, 2, 4, 3, 3, 4, 1},
	)
	require.NoError(t, err)
	return m
}
