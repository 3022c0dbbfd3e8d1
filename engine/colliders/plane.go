package colliders

import (
	"github.com/spaghettifunk/geometria/engine/math"
)

// PlaneCollider is a rectangle lying in the X-Z plane at position.Y. It spans
// xLength along +X and zLength along +Z from position.
type PlaneCollider struct {
	position math.Vec3
	xLength  float32
	zLength  float32
	centre   math.Vec3
}

// NewPlaneCollider builds a plane whose corner is position; size.X is the
// extent along X and size.Y the extent along Z.
func NewPlaneCollider(position math.Vec3, size math.Vec2) PlaneCollider {
	return PlaneCollider{
		position: position,
		xLength:  size.X,
		zLength:  size.Y,
		centre:   position.Add(math.NewVec3(size.X/2.0, 0.0, size.Y/2.0)),
	}
}

func (p PlaneCollider) Position() math.Vec3 { return p.position }
func (p PlaneCollider) Centre() math.Vec3 { return p.centre }

// Size returns the X and Z extents.
func (p PlaneCollider) Size() math.Vec2 {
	return math.NewVec2(p.xLength, p.zLength)
}

// CheckRay intersects the ray with the plane's height. A root already in
// the plane hits immediately; a ray parallel to the plane misses. The normal
// is always +Y.
//
// Only the far edges are checked: a hit at x < position.X or z < position.Z
// is still reported.
func (p PlaneCollider) CheckRay(root, direction math.Vec3, maxDistance *float32) (*RayHitInfo, bool) {
	direction.Normalize()
	up := math.NewVec3Up()

	height := p.centre.Sub(root).Dot(up)
	if root == p.position || height == 0.0 {
		return NewRayHitInfo(root, 0.0, up), true
	}

	along := direction.Dot(up)
	if along == 0.0 {
		return nil, false
	}

	distance := height / along
	if distance < 0.0 {
		return nil, false
	}
	if beyond(distance, maxDistance) {
		return nil, false
	}

	point := root.Add(direction.MulScalar(distance))
	if point.X-p.position.X > p.xLength || point.Z-p.position.Z > p.zLength {
		return nil, false
	}

	return NewRayHitInfo(point, distance, up), true
}
