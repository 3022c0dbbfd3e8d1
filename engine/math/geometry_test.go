package math

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGeometryDeduplicateVertices(t *testing.T) {
	a, b, c := NewVec3(0, 0, 0), NewVec3(1, 0, 0), NewVec3(0, 0, 1)
	vertices := []Vec3{a, b, a, c, b.Add(NewVec3(K_FLOAT_EPSILON/2, 0, 0))}
	indices := []uint32{0, 1, 2, 2, 3, 4}

	unique := GeometryDeduplicateVertices(vertices, indices)
	require.Equal(t, []Vec3{a, b, c}, unique)
	require.Equal(t, []uint32{0, 1, 0, 0, 2, 1}, indices)

	t.Run("nothing to merge", func(t *testing.T) {
		indices := []uint32{0, 1, 2}
		require.Equal(t, []Vec3{a, b, c}, GeometryDeduplicateVertices([]Vec3{a, b, c}, indices))
		require.Equal(t, []uint32{0, 1, 2}, indices)
	})
}

func TestGeometryGenerateNormals(t *testing.T) {
	vertices := []Vec3{NewVec3(0, 0, 0), NewVec3(0, 0, 1), NewVec3(1, 0, 0), NewVec3(1, 0, 1)}
	normals := GeometryGenerateNormals(vertices, []uint32{0, 1, 2, 2, 1, 3})

	require.Len(t, normals, 4)
	for _, n := range normals {
		requireVec3(t, NewVec3Up(), n)
	}
}

func TestGeometryExtents(t *testing.T) {
	require.Equal(t, Extents3D{}, GeometryExtents(nil))

	ext := GeometryExtents([]Vec3{NewVec3(1, -2, 3), NewVec3(-1, 5, 0), NewVec3(0, 0, 7)})
	require.Equal(t, NewVec3(-1, -2, 0), ext.Min)
	require.Equal(t, NewVec3(1, 5, 7), ext.Max)
}

func TestGeometryTriangle(t *testing.T) {
	a, b, c := NewVec3(0, 0, 0), NewVec3(0, 0, 3), NewVec3(3, 0, 0)
	require.Equal(t, NewVec3(1, 0, 1), GeometryTriangleCentroid(a, b, c))
	require.Equal(t, NewVec3Up(), GeometryFaceNormal(a, b, c))
	require.Equal(t, NewVec3Down(), GeometryFaceNormal(a, c, b))
}
