package colliders

import (
	"fmt"

	"github.com/spaghettifunk/geometria/engine/core"
	"github.com/spaghettifunk/geometria/engine/math"
)

// MeshCollider is a triangle soup wrapped in its bounding box. Meshes have no
// notion of inside, so a root within the bounds is not an automatic hit.
type MeshCollider struct {
	tris   []TriangleCollider
	bounds AABoundingBox
}

// NewMeshCollider groups indices in threes, each triple naming the corners of
// one triangle. The index count must be a multiple of three and every index
// must address a vertex.
func NewMeshCollider(vertices []math.Vec3, indices []uint32) (*MeshCollider, error) {
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("%w: index count %d is not a multiple of 3", core.ErrInvalidMesh, len(indices))
	}

	tris := make([]TriangleCollider, 0, len(indices)/3)
	for i := 0; i < len(indices); i += 3 {
		for _, idx := range indices[i : i+3] {
			if int(idx) >= len(vertices) {
				return nil, fmt.Errorf("%w: index %d out of range for %d vertices", core.ErrInvalidMesh, idx, len(vertices))
			}
		}
		tris = append(tris, NewTriangleCollider(
			vertices[indices[i]],
			vertices[indices[i+1]],
			vertices[indices[i+2]],
		))
	}

	return &MeshCollider{
		tris:   tris,
		bounds: AABoundingBoxFromPoints(vertices),
	}, nil
}

func (m *MeshCollider) Bounds() AABoundingBox {
	return m.bounds
}

// Triangles returns a copy of the mesh triangles.
func (m *MeshCollider) Triangles() []TriangleCollider {
	out := make([]TriangleCollider, len(m.tris))
	copy(out, m.tris)
	return out
}

func (m *MeshCollider) TriangleCount() int {
	return len(m.tris)
}

// CheckRay first rejects rays that miss the bounding box, then tests
// triangles in order of centroid distance from root and returns the first
// hit. That is usually, but not always, the nearest one: a large triangle
// whose centroid is far away can be hit before a small close one.
func (m *MeshCollider) CheckRay(root, direction math.Vec3, maxDistance *float32) (*RayHitInfo, bool) {
	direction.Normalize()

	if _, ok := m.bounds.CheckRay(root, direction, maxDistance); !ok {
		return nil, false
	}

	keyed := make([]math.KeyValue[int], len(m.tris))
	for i, tri := range m.tris {
		keyed[i] = math.KeyValue[int]{Key: tri.CentreDistTo(root), Value: i}
	}

	for _, kv := range math.SortByKey(keyed) {
		if hit, ok := m.tris[kv.Value].CheckRay(root, direction, maxDistance); ok {
			return hit, true
		}
	}
	return nil, false
}
