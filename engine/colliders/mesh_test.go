package colliders

import (
	"testing"

	"github.com/spaghettifunk/geometria/engine/core"
	"github.com/spaghettifunk/geometria/engine/math"
	"github.com/stretchr/testify/require"
)

func TestNewMeshCollider(t *testing.T) {
	t.Run("valid pyramid", func(t *testing.T) {
		m := pyramid(t, v3(0, 5, 0))
		require.Equal(t, 6, m.TriangleCount())
		require.Len(t, m.Triangles(), 6)
		require.Equal(t, v3(-2, 0, -2), m.Bounds().MinCorner)
		require.Equal(t, v3(2, 5, 2), m.Bounds().MaxCorner)
	})

	t.Run("index count not a multiple of three", func(t *testing.T) {
		_, err := NewMeshCollider([]math.Vec3{v3(0, 0, 0), v3(1, 0, 0), v3(0, 0, 1)}, []uint32{0, 1})
		require.ErrorIs(t, err, core.ErrInvalidMesh)
	})

	t.Run("index out of range", func(t *testing.T) {
		_, err := NewMeshCollider([]math.Vec3{v3(0, 0, 0), v3(1, 0, 0), v3(0, 0, 1)}, []uint32{0, 1, 3})
		require.ErrorIs(t, err, core.ErrInvalidMesh)
	})

	t.Run("triangles are copied", func(t *testing.T) {
		m := pyramid(t, v3(0, 5, 0))
		tris := m.Triangles()
		tris[0] = NewTriangleCollider(v3(9, 9, 9), v3(9, 9, 8), v3(8, 9, 9))
		require.NotEqual(t, tris[0], m.Triangles()[0])
	})
}

func TestMeshColliderCheckRay(t *testing.T) {
	t.Run("miss inside the bounds", func(t *testing.T) {
		m := pyramid(t, v3(0, 5, 0))
		_, ok := m.CheckRay(v3(1, 4, 0), math.NewVec3Right(), MaxDistance(25))
		require.False(t, ok)
	})

	t.Run("miss the bounds", func(t *testing.T) {
		m := pyramid(t, v3(0, 5, 0))
		_, ok := m.CheckRay(v3(1, 6, 0), math.NewVec3Right(), MaxDistance(25))
		require.False(t, ok)
	})

	t.Run("hit", func(t *testing.T) {
		m := pyramid(t, v3(-2, 5, 0))
		hit, ok := m.CheckRay(v3(-5, 3, 0), math.NewVec3Right(), MaxDistance(25))
		require.True(t, ok)
		requireVec3(t, v3(-2, 3, 0), hit.HitPosition)
		require.InDelta(t, 3.0, hit.HitDistance, delta)
		require.Equal(t, math.NewVec3Left(), hit.HitNormal)
	})

	t.Run("beyond max distance", func(t *testing.T) {
		m := pyramid(t, v3(-2, 5, 0))
		_, ok := m.CheckRay(v3(-5, 3, 0), math.NewVec3Right(), MaxDistance(2))
		require.False(t, ok)
	})

	t.Run("as plane", func(t *testing.T) {
		m, err := NewMeshCollider(
			[]math.Vec3{v3(-25, 0, -25), v3(-25, 0, 25), v3(25, 0, -25), v3(25, 0, 25)},
			[]uint32{0, 3, 2, 3, 0, 1},
		)
		require.NoError(t, err)

		hit, ok := m.CheckRay(v3(5, 10, 5), math.NewVec3Down(), nil)
		require.True(t, ok)
		requireVec3(t, v3(5, 0, 5), hit.HitPosition)
		require.InDelta(t, 10.0, hit.HitDistance, delta)
	})

	t.Run("slant", func(t *testing.T) {
		m, err := NewMeshCollider(
			[]math.Vec3{
				v3(-1, 0, -1), v3(0, 0, -1), v3(1, 0, -1),
				v3(-1, 0, 0), v3(0, 0, 0), v3(1, 0, 0),
				v3(-1, 0, 1), v3(0, 0, 1), v3(1, 0, 1),
			},
			[]uint32{
				8, 7, 5, 4, 5, 7,
				7, 6, 4, 3, 4, 6,
				5, 4, 2, 1, 2, 4,
				4, 3, 1, 0, 1, 3,
			},
		)
		require.NoError(t, err)

		hit, ok := m.CheckRay(v3(-0.5, 5, -0.5), math.NewVec3Down(), nil)
		require.True(t, ok)
		requireVec3(t, v3(-0.5, 0, -0.5), hit.HitPosition)
	})

	t.Run("repeated queries are identical", func(t *testing.T) {
		m := pyramid(t, v3(-2, 5, 0))
		first, ok := m.CheckRay(v3(-5, 3, 0), math.NewVec3Right(), nil)
		require.True(t, ok)
		for i := 0; i < 5; i++ {
			again, ok := m.CheckRay(v3(-5, 3, 0), math.NewVec3Right(), nil)
			require.True(t, ok)
			require.Equal(t, *first, *again)
		}
	})
}
