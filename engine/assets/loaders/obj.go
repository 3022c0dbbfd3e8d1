package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spaghettifunk/geometria/engine/assets/metadata"
	"github.com/spaghettifunk/geometria/engine/core"
	"github.com/spaghettifunk/geometria/engine/math"
)

// ObjParams tunes how an OBJ file becomes mesh data.
type ObjParams struct {
	// Merge vertices closer than K_FLOAT_EPSILON and rewrite indices.
	Deduplicate bool
}

type ObjLoader struct{}

func (ol *ObjLoader) Load(path string, assetType metadata.ResourceType, params interface{}) (*metadata.Resource, error) {
	opts := ObjParams{}
	switch p := params.(type) {
	case ObjParams:
		opts = p
	case *ObjParams:
		if p != nil {
			opts = *p
		}
	case nil:
	default:
		return nil, fmt.Errorf("obj loader: unexpected params type %T", params)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	mesh, err := ParseObj(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if mesh.Name == "" {
		mesh.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if opts.Deduplicate {
		mesh.Vertices = math.GeometryDeduplicateVertices(mesh.Vertices, mesh.Indices)
	}

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}

	return &metadata.Resource{
		Type:     metadata.ResourceTypeMesh,
		Name:     mesh.Name,
		FullPath: path,
		DataSize: uint64(info.Size()),
		Data:     mesh,
	}, nil
}

func (ol *ObjLoader) Unload(resource *metadata.Resource) error {
	resource.Data = nil
	resource.DataSize = 0
	return nil
}

/**
 * @brief Parses the geometry of a Wavefront OBJ stream. Only positions (v) and
 * faces (f) are read; faces with more than three corners are fan triangulated.
 * Texture coordinates, normals, groups and materials are ignored, except that
 * the first o/g name becomes the mesh name.
 */
func ParseObj(r io.Reader) (*metadata.MeshData, error) {
	mesh := &metadata.MeshData{}
	scanner := bufio.NewScanner(r)
	lineNumber := 0

	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// Skip comments and empty lines
		if strings.HasPrefix(line, "#") || line == "" {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, malformed(lineNumber, "vertex needs 3 coordinates, got %d", len(fields)-1)
			}
			var coords [3]float32
			for i := 0; i < 3; i++ {
				f, err := strconv.ParseFloat(fields[i+1], 32)
				if err != nil {
					return nil, malformed(lineNumber, "invalid coordinate %q", fields[i+1])
				}
				coords[i] = float32(f)
			}
			mesh.Vertices = append(mesh.Vertices, math.NewVec3FromArray(coords))
		case "f":
			if len(fields) < 4 {
				return nil, malformed(lineNumber, "face needs at least 3 corners, got %d", len(fields)-1)
			}
			corners := make([]uint32, 0, len(fields)-1)
			for _, token := range fields[1:] {
				idx, err := faceIndex(token, len(mesh.Vertices))
				if err != nil {
					return nil, malformed(lineNumber, "%s", err.Error())
				}
				corners = append(corners, idx)
			}
			for i := 1; i+1 < len(corners); i++ {
				mesh.Indices = append(mesh.Indices, corners[0], corners[i], corners[i+1])
			}
		case "o", "g":
			if mesh.Name == "" && len(fields) > 1 {
				mesh.Name = strings.Join(fields[1:], " ")
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(mesh.Indices) == 0 {
		return nil, fmt.Errorf("no faces: %w", core.ErrMalformedObjFile)
	}
	return mesh, nil
}

// faceIndex resolves one face corner ("7", "7/2", "7//3", "-1/2/3") to a
// zero-based vertex index. Negative indices count back from the last vertex.
func faceIndex(token string, vertexCount int) (uint32, error) {
	position, _, _ := strings.Cut(token, "/")
	i, err := strconv.Atoi(position)
	if err != nil {
		return 0, fmt.Errorf("invalid face index %q", token)
	}
	switch {
	case i > 0 && i <= vertexCount:
		return uint32(i - 1), nil
	case i < 0 && -i <= vertexCount:
		return uint32(vertexCount + i), nil
	default:
		return 0, fmt.Errorf("face index %d out of range for %d vertices", i, vertexCount)
	}
}

func malformed(line int, format string, args ...interface{}) error {
	return fmt.Errorf("line %d: %s: %w", line, fmt.Sprintf(format, args...), core.ErrMalformedObjFile)
}
