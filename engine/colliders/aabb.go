package colliders

import (
	"github.com/chewxy/math32"
	"github.com/spaghettifunk/geometria/engine/math"
)

// AABoundingBox is an axis-aligned box. MinCorner holds the smallest x, y
// and z, MaxCorner the largest.
type AABoundingBox struct {
	MinCorner math.Vec3
	MaxCorner math.Vec3
}

func NewAABoundingBox(minCorner, maxCorner math.Vec3) AABoundingBox {
	return AABoundingBox{MinCorner: minCorner, MaxCorner: maxCorner}
}

// NewAABoundingBoxZero is the degenerate box at the origin.
func NewAABoundingBoxZero() AABoundingBox {
	return AABoundingBox{}
}

// AABoundingBoxFromPoints returns the tightest box around points, or the
// zero box for an empty slice.
func AABoundingBoxFromPoints(points []math.Vec3) AABoundingBox {
	if len(points) == 0 {
		return NewAABoundingBoxZero()
	}

	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo = math.Vec3{X: min(lo.X, p.X), Y: min(lo.Y, p.Y), Z: min(lo.Z, p.Z)}
		hi = math.Vec3{X: max(hi.X, p.X), Y: max(hi.Y, p.Y), Z: max(hi.Z, p.Z)}
	}
	return NewAABoundingBox(lo, hi)
}

// AABoundingBoxFromSpheres returns the tightest box around every sphere, or
// the zero box for an empty slice.
func AABoundingBoxFromSpheres(spheres []BoundingSphere) AABoundingBox {
	if len(spheres) == 0 {
		return NewAABoundingBoxZero()
	}

	extent := func(s BoundingSphere) (math.Vec3, math.Vec3) {
		r := math.Vec3{X: s.Radius, Y: s.Radius, Z: s.Radius}
		return s.Centre.Sub(r), s.Centre.Add(r)
	}

	lo, hi := extent(spheres[0])
	for _, s := range spheres[1:] {
		slo, shi := extent(s)
		lo = math.Vec3{X: min(lo.X, slo.X), Y: min(lo.Y, slo.Y), Z: min(lo.Z, slo.Z)}
		hi = math.Vec3{X: max(hi.X, shi.X), Y: max(hi.Y, shi.Y), Z: max(hi.Z, shi.Z)}
	}
	return NewAABoundingBox(lo, hi)
}

// Centre is the midpoint of the two corners.
func (b AABoundingBox) Centre() math.Vec3 {
	return b.MinCorner.Add(b.MaxCorner).MulScalar(0.5)
}

// Size is the edge length along each axis.
func (b AABoundingBox) Size() math.Vec3 {
	return b.MaxCorner.Sub(b.MinCorner)
}

// ContainsPoint is inclusive on every face.
func (b AABoundingBox) ContainsPoint(point math.Vec3) bool {
	if point.X < b.MinCorner.X || point.X > b.MaxCorner.X {
		return false
	}
	if point.Y < b.MinCorner.Y || point.Y > b.MaxCorner.Y {
		return false
	}
	if point.Z < b.MinCorner.Z || point.Z > b.MaxCorner.Z {
		return false
	}
	return true
}

func (b AABoundingBox) ContainsPoints(points []math.Vec3) bool {
	for _, p := range points {
		if !b.ContainsPoint(p) {
			return false
		}
	}
	return true
}

// ContainsSphere reports whether the whole sphere fits inside the box.
func (b AABoundingBox) ContainsSphere(sphere BoundingSphere) bool {
	if !b.ContainsPoint(sphere.Centre) {
		return false
	}
	r := math.Vec3{X: sphere.Radius, Y: sphere.Radius, Z: sphere.Radius}
	return b.ContainsPoint(sphere.Centre.Sub(r)) && b.ContainsPoint(sphere.Centre.Add(r))
}

func (b AABoundingBox) ContainsSpheres(spheres []BoundingSphere) bool {
	for _, s := range spheres {
		if !b.ContainsSphere(s) {
			return false
		}
	}
	return true
}

// IsIntersectingBox reports whether the boxes overlap on every axis.
// Touching faces count as overlap.
func (b AABoundingBox) IsIntersectingBox(other AABoundingBox) bool {
	return b.MinCorner.X <= other.MaxCorner.X &&
		b.MaxCorner.X >= other.MinCorner.X &&
		b.MinCorner.Y <= other.MaxCorner.Y &&
		b.MaxCorner.Y >= other.MinCorner.Y &&
		b.MinCorner.Z <= other.MaxCorner.Z &&
		b.MaxCorner.Z >= other.MinCorner.Z
}

// slab returns the entry and exit distances along one axis together with the
// outward normals of the faces crossed there. A ray parallel to the axis
// slab spans it entirely when its origin lies within [lo, hi], faces
// included, and misses otherwise.
func slab(lo, hi, origin, dir float32, axis math.Vec3) (tNear, tFar float32, nNear, nFar math.Vec3, ok bool) {
	if dir == 0 {
		if origin < lo || origin > hi {
			return 0, 0, axis, axis, false
		}
		return math32.Inf(-1), math32.Inf(1), axis.Negate(), axis, true
	}
	inv := 1.0 / dir
	if inv < 0 {
		return (hi - origin) * inv, (lo - origin) * inv, axis, axis.Negate(), true
	}
	return (lo - origin) * inv, (hi - origin) * inv, axis.Negate(), axis, true
}

// CheckRay uses the slab method of Williams et al. (2004). A ray starting
// inside the box hits immediately with a zero normal.
func (b AABoundingBox) CheckRay(root, direction math.Vec3, maxDistance *float32) (*RayHitInfo, bool) {
	direction.Normalize()

	if b.ContainsPoint(root) {
		return NewRayHitInfo(root, 0.0, math.NewVec3Zero()), true
	}

	tmin, tmax, minNorm, maxNorm, ok := slab(b.MinCorner.X, b.MaxCorner.X, root.X, direction.X, math.NewVec3Right())
	if !ok {
		return nil, false
	}

	tymin, tymax, nymin, nymax, ok := slab(b.MinCorner.Y, b.MaxCorner.Y, root.Y, direction.Y, math.NewVec3Up())
	if !ok || tmin > tymax || tymin > tmax {
		return nil, false
	}
	if tymin > tmin {
		tmin, minNorm = tymin, nymin
	}
	if tymax < tmax {
		tmax, maxNorm = tymax, nymax
	}

	tzmin, tzmax, nzmin, nzmax, ok := slab(b.MinCorner.Z, b.MaxCorner.Z, root.Z, direction.Z, math.NewVec3Back())
	if !ok || tmin > tzmax || tzmin > tmax {
		return nil, false
	}
	if tzmin > tmin {
		tmin, minNorm = tzmin, nzmin
	}
	if tzmax < tmax {
		tmax, maxNorm = tzmax, nzmax
	}

	var dist float32
	var normal math.Vec3
	switch {
	case tmax < 0:
		// Box entirely behind the origin.
		return nil, false
	case tmin < 0:
		dist, normal = tmax, maxNorm
	default:
		dist, normal = tmin, minNorm
	}

	if beyond(dist, maxDistance) {
		return nil, false
	}

	return NewRayHitInfo(root.Add(direction.MulScalar(dist)), dist, normal), true
}
