package metadata

import (
	"testing"

	"github.com/spaghettifunk/geometria/engine/core"
	"github.com/spaghettifunk/geometria/engine/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVecFields(t *testing.T) {
	v, err := Vec3Field("min", []float32{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, math.NewVec3(1, 2, 3), v)

	_, err = Vec3Field("min", []float32{1, 2})
	require.ErrorIs(t, err, core.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "min")

	s, err := Vec2Field("size", []float32{4, 5})
	require.NoError(t, err)
	assert.Equal(t, math.NewVec2(4, 5), s)

	_, err = Vec2Field("size", nil)
	require.ErrorIs(t, err, core.ErrInvalidConfig)

	list, err := Vec3List("points", [][]float32{{0, 0, 0}, {1, 1, 1}})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = Vec3List("points", [][]float32{{0, 0, 0}, {1, 1}})
	require.ErrorIs(t, err, core.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "points[1]")
}

func TestTransformConfig(t *testing.T) {
	t.Run("empty is identity", func(t *testing.T) {
		tc := &TransformConfig{}
		tr, err := tc.ToTransform()
		require.NoError(t, err)
		p := math.NewVec3(1, 2, 3).Transform(tr.GetWorld())
		assert.InDelta(t, 1, p.X, 1e-5)
		assert.InDelta(t, 2, p.Y, 1e-5)
		assert.InDelta(t, 3, p.Z, 1e-5)
		assert.False(t, tc.HasRotation())
	})

	t.Run("scale then translate", func(t *testing.T) {
		tc := &TransformConfig{Position: []float32{10, 0, 0}, Scale: []float32{2, 2, 2}}
		tr, err := tc.ToTransform()
		require.NoError(t, err)
		p := math.NewVec3(1, 1, 1).Transform(tr.GetWorld())
		assert.InDelta(t, 12, p.X, 1e-5)
		assert.InDelta(t, 2, p.Y, 1e-5)
		assert.InDelta(t, 2, p.Z, 1e-5)
	})

	t.Run("rotation flag", func(t *testing.T) {
		assert.True(t, (&TransformConfig{Rotation: []float32{0, 0, 45}}).HasRotation())
		assert.False(t, (&TransformConfig{Rotation: []float32{0, 0, 0}}).HasRotation())
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := (&TransformConfig{Rotation: []float32{1}}).ToTransform()
		require.ErrorIs(t, err, core.ErrInvalidConfig)
	})
}

func TestResourceTypeString(t *testing.T) {
	assert.Equal(t, "scene", ResourceTypeScene.String())
	assert.Equal(t, "mesh", ResourceTypeMesh.String())
	assert.Equal(t, "none", ResourceTypeNone.String())
	assert.Equal(t, "ResourceType(9)", ResourceType(9).String())
}
