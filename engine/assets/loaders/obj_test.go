package loaders

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spaghettifunk/geometria/engine/assets/metadata"
	"github.com/spaghettifunk/geometria/engine/core"
	"github.com/spaghettifunk/geometria/engine/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quadObj = `# a unit quad split into two faces
o quad
v 0 0 0
v 1 0 0
v 1 0 1
v 0 0 1
vt 0 0
vn 0 1 0
f 1/1/1 2/1/1 3/1/1
f -4//1 -2//1 -1//1
`

func TestParseObj(t *testing.T) {
	mesh, err := ParseObj(strings.NewReader(quadObj))
	require.NoError(t, err)

	assert.Equal(t, "quad", mesh.Name)
	require.Len(t, mesh.Vertices, 4)
	assert.Equal(t, math.NewVec3(1, 0, 1), mesh.Vertices[2])
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, mesh.Indices)
}

func TestParseObjFanTriangulation(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nv -1 0.5 0\nf 1 2 3 4 5\n"
	mesh, err := ParseObj(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3, 0, 3, 4}, mesh.Indices)
	assert.Empty(t, mesh.Name)
}

func TestParseObjErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line string
	}{
		{name: "short vertex", src: "v 1 2\n", line: "line 1"},
		{name: "bad coordinate", src: "v 1 x 2\n", line: "line 1"},
		{name: "short face", src: "v 0 0 0\nv 1 0 0\nf 1 2\n", line: "line 3"},
		{name: "index zero", src: "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n", line: "line 4"},
		{name: "index past end", src: "v 0 0 0\nv 1 0 0\nv 0 1 0\n\nf 1 2 4\n", line: "line 5"},
		{name: "relative index past start", src: "v 0 0 0\nv 1 0 0\nv 0 1 0\nf -4 1 2\n", line: "line 4"},
		{name: "garbage index", src: "v 0 0 0\nv 1 0 0\nv 0 1 0\nf a 1 2\n", line: "line 4"},
		{name: "no faces", src: "v 0 0 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseObj(strings.NewReader(tt.src))
			require.ErrorIs(t, err, core.ErrMalformedObjFile)
			if tt.line != "" {
				assert.Contains(t, err.Error(), tt.line)
			}
		})
	}
}

func TestObjLoader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pyramid.obj")
	src := `v -1 0 -1
v 1 0 -1
v 1 0 1
v -1 0 1
v 0 2 0
v 1 0 1
f 1 2 3
f 1 3 4
f 1 2 5
f 2 6 5
f 3 4 5
f 4 1 5
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	loader := &ObjLoader{}

	t.Run("raw", func(t *testing.T) {
		res, err := loader.Load(path, metadata.ResourceTypeMesh, nil)
		require.NoError(t, err)
		assert.Equal(t, "pyramid", res.Name)
		assert.Equal(t, metadata.ResourceTypeMesh, res.Type)
		assert.Equal(t, uint64(len(src)), res.DataSize)

		mesh := res.Data.(*metadata.MeshData)
		assert.Len(t, mesh.Vertices, 6)
		assert.Len(t, mesh.Indices, 18)
	})

	t.Run("deduplicated", func(t *testing.T) {
		res, err := loader.Load(path, metadata.ResourceTypeMesh, ObjParams{Deduplicate: true})
		require.NoError(t, err)

		mesh := res.Data.(*metadata.MeshData)
		assert.Len(t, mesh.Vertices, 5)
		// the duplicate of vertex 3 now points at index 2
		assert.Equal(t, []uint32{1, 2, 4}, mesh.Indices[9:12])
		for _, idx := range mesh.Indices {
			assert.Less(t, idx, uint32(5))
		}

		require.NoError(t, loader.Unload(res))
		assert.Nil(t, res.Data)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loader.Load(filepath.Join(dir, "nope.obj"), metadata.ResourceTypeMesh, nil)
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("wrong params", func(t *testing.T) {
		_, err := loader.Load(path, metadata.ResourceTypeMesh, 42)
		require.Error(t, err)
	})
}
