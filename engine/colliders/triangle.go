package colliders

import (
	"github.com/chewxy/math32"
	"github.com/spaghettifunk/geometria/engine/math"
)

// parallelEpsilon bounds the determinant below which a ray is treated as
// parallel to the triangle.
const parallelEpsilon float32 = 1e-7

// TriangleCollider is a single triangle with its centroid and unit face
// normal cached at construction.
type TriangleCollider struct {
	A, B, C math.Vec3

	centroid math.Vec3
	normal   math.Vec3
}

func NewTriangleCollider(a, b, c math.Vec3) TriangleCollider {
	return TriangleCollider{
		A:        a,
		B:        b,
		C:        c,
		centroid: math.GeometryTriangleCentroid(a, b, c),
		normal:   math.GeometryFaceNormal(a, b, c),
	}
}

func (t TriangleCollider) Centroid() math.Vec3 { return t.centroid }

// Normal is the unit normal of the counter-clockwise winding A, B, C.
func (t TriangleCollider) Normal() math.Vec3 { return t.normal }

// CentreDistTo is the distance from point to the centroid.
func (t TriangleCollider) CentreDistTo(point math.Vec3) float32 {
	return t.centroid.Distance(point)
}

// CheckRay is the Möller-Trumbore test. Points on an edge count as inside.
// The returned normal faces the ray origin.
func (t TriangleCollider) CheckRay(root, direction math.Vec3, maxDistance *float32) (*RayHitInfo, bool) {
	direction.Normalize()

	e1 := t.B.Sub(t.A)
	e2 := t.C.Sub(t.A)
	pvec := direction.Cross(e2)
	det := e1.Dot(pvec)
	if math32.Abs(det) < parallelEpsilon {
		return nil, false
	}
	invDet := 1.0 / det

	tvec := root.Sub(t.A)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return nil, false
	}

	qvec := tvec.Cross(e1)
	v := direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return nil, false
	}

	dist := e2.Dot(qvec) * invDet
	if dist < 0 {
		return nil, false
	}
	if beyond(dist, maxDistance) {
		return nil, false
	}

	normal := t.normal
	if normal.Dot(direction) > 0 {
		normal = normal.Negate()
	}

	return NewRayHitInfo(root.Add(direction.MulScalar(dist)), dist, normal), true
}
