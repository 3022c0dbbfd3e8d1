package colliders

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/spaghettifunk/geometria/engine/core"
	"github.com/spaghettifunk/geometria/engine/math"
)

// BoundingSphere is a centre and a non-negative radius.
type BoundingSphere struct {
	Centre math.Vec3
	Radius float32
}

func NewBoundingSphere(centre math.Vec3, radius float32) *BoundingSphere {
	return &BoundingSphere{Centre: centre, Radius: radius}
}

func NewBoundingSphereZero() *BoundingSphere {
	return &BoundingSphere{}
}

func (s BoundingSphere) String() string {
	return fmt.Sprintf("sphere{centre: %v, radius: %g}", s.Centre, s.Radius)
}

// SetZero collapses the sphere onto the origin.
func (s *BoundingSphere) SetZero() {
	s.Centre = math.NewVec3Zero()
	s.Radius = 0.0
}

// SetTo copies other into s.
func (s *BoundingSphere) SetTo(other BoundingSphere) {
	s.Centre = other.Centre
	s.Radius = other.Radius
}

// MaxDistFromPoint is the distance from point to the far side of the sphere.
func (s BoundingSphere) MaxDistFromPoint(point math.Vec3) float32 {
	return s.Centre.Sub(point).Length() + s.Radius
}

// FurthestPointFromPoint returns the surface point furthest from point.
func (s BoundingSphere) FurthestPointFromPoint(point math.Vec3) math.Vec3 {
	dir := s.Centre.Sub(point)
	dir.Normalize()
	return dir.MulScalar(s.Radius).Add(s.Centre)
}

func (s BoundingSphere) ContainsPoints(points []math.Vec3) bool {
	for _, p := range points {
		if s.Centre.Sub(p).Length() > s.Radius {
			return false
		}
	}
	return true
}

// BoundingSphereFromPoints builds an enclosing sphere two ways and keeps the
// smaller one:
//
//   - Ritter: seed from the two points furthest apart along the widest axis,
//     then grow the sphere once over every point outside it.
//   - naive: centre on the middle of the axis-aligned extents, radius to the
//     furthest point.
//
// An empty slice gives the zero sphere.
func BoundingSphereFromPoints(points []math.Vec3) *BoundingSphere {
	if len(points) == 0 {
		return NewBoundingSphereZero()
	}

	// extreme points per axis
	xMin, xMax := points[0], points[0]
	yMin, yMax := points[0], points[0]
	zMin, zMax := points[0], points[0]
	for _, p := range points {
		if p.X < xMin.X {
			xMin = p
		}
		if p.X > xMax.X {
			xMax = p
		}
		if p.Y < yMin.Y {
			yMin = p
		}
		if p.Y > yMax.Y {
			yMax = p
		}
		if p.Z < zMin.Z {
			zMin = p
		}
		if p.Z > zMax.Z {
			zMax = p
		}
	}

	diaOne, diaTwo := xMin, xMax
	maxSpan := xMax.Sub(xMin).LengthSquared()
	if span := yMax.Sub(yMin).LengthSquared(); span > maxSpan {
		maxSpan = span
		diaOne, diaTwo = yMin, yMax
	}
	if span := zMax.Sub(zMin).LengthSquared(); span > maxSpan {
		diaOne, diaTwo = zMin, zMax
	}

	ritterCentre := diaOne.Add(diaTwo).MulScalar(0.5)
	radiusSquared := diaTwo.Sub(ritterCentre).LengthSquared()
	ritterRadius := math32.Sqrt(radiusSquared)

	minBox := math.NewVec3(xMin.X, yMin.Y, zMin.Z)
	maxBox := math.NewVec3(xMax.X, yMax.Y, zMax.Z)
	naiveCentre := maxBox.Add(minBox).MulScalar(0.5)
	naiveRadius := float32(0.0)

	for _, p := range points {
		if r := p.Sub(naiveCentre).Length(); r > naiveRadius {
			naiveRadius = r
		}

		distSquared := p.Sub(ritterCentre).LengthSquared()
		if distSquared <= radiusSquared {
			continue
		}
		dist := math32.Sqrt(distSquared)
		ritterRadius = (ritterRadius + dist) * 0.5
		radiusSquared = ritterRadius * ritterRadius
		// slide the centre towards p so the old sphere and p both fit
		oldToNew := dist - ritterRadius
		ritterCentre = ritterCentre.MulScalar(ritterRadius).Add(p.MulScalar(oldToNew)).DivScalar(dist)
	}

	if ritterRadius < naiveRadius {
		return NewBoundingSphere(ritterCentre, ritterRadius)
	}
	return NewBoundingSphere(naiveCentre, naiveRadius)
}

// IsIntersectingSphere reports a proper overlap. Spheres touching at a single
// point, from outside or inside, do not count.
func (s BoundingSphere) IsIntersectingSphere(other BoundingSphere) bool {
	distance := s.Centre.Sub(other.Centre).Length()
	return distance < s.Radius+other.Radius &&
		distance+min(s.Radius, other.Radius) != max(s.Radius, other.Radius)
}

// GetIntersectionVolume returns the volume shared by two spheres. Callers
// must only pass spheres that intersect: a negative result means that
// precondition was broken and the function panics. A NaN result (coincident
// centres) is logged and reported as 0.
func (s BoundingSphere) GetIntersectionVolume(other BoundingSphere) float32 {
	distance := s.Centre.Sub(other.Centre).Length()

	// one inside the other
	if distance+min(s.Radius, other.Radius) < max(s.Radius, other.Radius) {
		if s.Radius < other.Radius {
			return s.GetVolume()
		}
		return other.GetVolume()
	}

	radiiSum := s.Radius + other.Radius
	radiiDiff := s.Radius - other.Radius
	lens := radiiSum - distance
	volume := (math.K_PI / (12.0 * distance)) * lens * lens *
		(distance*distance + 2.0*distance*math32.Abs(radiiSum) - 3.0*radiiDiff*radiiDiff)

	if math32.IsNaN(volume) {
		core.LogWarn("bounding sphere intersection volume is NaN: sphere one %v, sphere two %v", s, other)
		return 0.0
	}
	if volume < 0.0 {
		msg := fmt.Sprintf("bounding sphere intersection volume < 0: sphere one %v, sphere two %v", s, other)
		core.LogError("%s", msg)
		panic(msg)
	}
	return volume
}

func (s BoundingSphere) GetVolume() float32 {
	return s.Radius * s.Radius * s.Radius * math.K_FOUR_THIRDS_PI
}

// CheckRay solves |l + t*d|^2 = r^2 with l = root - centre and keeps the
// smallest non-negative t. A root inside the sphere hits immediately with a
// zero normal.
//
// The reported normal is l normalized, i.e. it points from the centre towards
// the ray origin rather than towards the hit point.
func (s *BoundingSphere) CheckRay(root, direction math.Vec3, maxDistance *float32) (*RayHitInfo, bool) {
	direction.Normalize()

	l := root.Sub(s.Centre)
	if l.Length() <= s.Radius {
		return NewRayHitInfo(root, 0.0, math.NewVec3Zero()), true
	}

	a := direction.Dot(direction)
	b := 2.0 * direction.Dot(l)
	c := l.Dot(l) - s.Radius*s.Radius

	dist := float32(-1.0)
	for _, t := range math.SolveQuadratic(a, b, c) {
		if t >= 0 && (dist < 0 || t < dist) {
			dist = t
		}
	}
	if dist < 0 {
		return nil, false
	}

	if beyond(dist, maxDistance) {
		return nil, false
	}

	return NewRayHitInfo(root.Add(direction.MulScalar(dist)), dist, l.Normalized()), true
}
