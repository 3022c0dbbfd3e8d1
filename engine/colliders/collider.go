// Package colliders answers ray queries against boxes, spheres, planes,
// triangles and triangle meshes.
package colliders

import (
	"fmt"

	"github.com/spaghettifunk/geometria/engine/math"
)

// RayHitInfo describes where a ray met a collider.
type RayHitInfo struct {
	HitPosition math.Vec3
	// HitDistance is measured along the normalized ray direction and is never negative.
	HitDistance float32
	// HitNormal is a unit vector, or the zero vector when the ray started
	// inside the shape.
	HitNormal math.Vec3
}

func NewRayHitInfo(position math.Vec3, distance float32, normal math.Vec3) *RayHitInfo {
	return &RayHitInfo{
		HitPosition: position,
		HitDistance: distance,
		HitNormal:   normal,
	}
}

func (h RayHitInfo) String() string {
	return fmt.Sprintf("hit{pos: %v, dist: %g, normal: %v}", h.HitPosition, h.HitDistance, h.HitNormal)
}

// Collider is anything a ray can be cast against.
//
// CheckRay normalizes direction before use. A nil maxDistance means the ray
// is unbounded. It returns (nil, false) when nothing is hit within
// [0, maxDistance], otherwise the nearest hit.
type Collider interface {
	CheckRay(root, direction math.Vec3, maxDistance *float32) (*RayHitInfo, bool)
}

// MaxDistance is a helper for building the optional CheckRay bound.
func MaxDistance(d float32) *float32 {
	return &d
}

func beyond(distance float32, maxDistance *float32) bool {
	return maxDistance != nil && distance > *maxDistance
}

var (
	_ Collider = AABoundingBox{}
	_ Collider = (*BoundingSphere)(nil)
	_ Collider = PlaneCollider{}
	_ Collider = TriangleCollider{}
	_ Collider = (*MeshCollider)(nil)
)
