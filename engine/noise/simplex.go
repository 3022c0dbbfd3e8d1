// Package noise implements 2D and 3D simplex gradient noise over a 512 entry
// permutation table, either Ken Perlin's reference table or a seeded shuffle.
package noise

import (
	"github.com/chewxy/math32"
	"github.com/spaghettifunk/geometria/engine/math"
	"golang.org/x/exp/rand"
)

// Output scales. Noise2D/Noise3D map the corner sum into roughly [-1, 1];
// Noise2DUnit uses the classic 70x scale shifted into [0, 1].
const (
	scale2D     float32 = 45.23065
	scale3D     float32 = 32.0
	scale2DUnit float32 = 70.0
)

// Corner falloff radius squared.
const falloff float32 = 0.5

var grad3 = [12]math.Vec3{
	{X: 1, Y: 1, Z: 0}, {X: -1, Y: 1, Z: 0}, {X: 1, Y: -1, Z: 0}, {X: -1, Y: -1, Z: 0},
	{X: 1, Y: 0, Z: 1}, {X: -1, Y: 0, Z: 1}, {X: 1, Y: 0, Z: -1}, {X: -1, Y: 0, Z: -1},
	{X: 0, Y: 1, Z: 1}, {X: 0, Y: -1, Z: 1}, {X: 0, Y: 1, Z: -1}, {X: 0, Y: -1, Z: -1},
}

// perlin is Ken Perlin's reference permutation.
var perlin = [256]uint8{
	151, 160, 137, 91, 90, 15,
	131, 13, 201, 95, 96, 53, 194, 233, 7, 225, 140, 36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23,
	190, 6, 148, 247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32, 57, 177, 33,
	88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175, 74, 165, 71, 134, 139, 48, 27, 166,
	77, 146, 158, 231, 83, 111, 229, 122, 60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244,
	102, 143, 54, 65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169, 200, 196,
	135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64, 52, 217, 226, 250, 124, 123,
	5, 202, 38, 147, 118, 126, 255, 82, 85, 212, 207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42,
	223, 183, 170, 213, 119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9,
	129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104, 218, 246, 97, 228,
	251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241, 81, 51, 145, 235, 249, 14, 239, 107,
	49, 192, 214, 31, 181, 199, 106, 157, 184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254,
	138, 236, 205, 93, 222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
}

var defaultSimplex = newSimplexFromTable(perlin)

// Simplex holds a doubled permutation table. The zero value is not usable;
// build one with DefaultSimplex or NewSimplex. A Simplex is read-only after
// construction and safe for concurrent use.
type Simplex struct {
	perm [512]int32
}

func newSimplexFromTable(table [256]uint8) *Simplex {
	s := &Simplex{}
	for i := 0; i < 512; i++ {
		s.perm[i] = int32(table[i&255])
	}
	return s
}

// DefaultSimplex uses Perlin's reference permutation, so its output matches
// other reference simplex implementations.
func DefaultSimplex() *Simplex {
	return defaultSimplex
}

// NewSimplex builds a generator whose permutation is a shuffle of 0..255
// driven by seed. Equal seeds give identical noise.
func NewSimplex(seed uint64) *Simplex {
	var table [256]uint8
	for i := range table {
		table[i] = uint8(i)
	}
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(table), func(i, j int) {
		table[i], table[j] = table[j], table[i]
	})
	return newSimplexFromTable(table)
}

// Permutation returns a copy of the first half of the table.
func (s *Simplex) Permutation() [256]int32 {
	var out [256]int32
	copy(out[:], s.perm[:256])
	return out
}

func (s *Simplex) hash(i int32) int32 {
	return s.perm[i]
}

func skewFactor(dimension float32) float32 {
	return (math32.Sqrt(dimension+1.0) - 1.0) / dimension
}

func unskewFactor(dimension float32) float32 {
	return (1.0 - 1.0/math32.Sqrt(dimension+1.0)) / dimension
}

var (
	skew2   = skewFactor(2)
	unskew2 = unskewFactor(2)
	skew3   = skewFactor(3)
	unskew3 = unskewFactor(3)
)

func corner2D(gi int32, x, y float32) float32 {
	t := falloff - x*x - y*y
	if t < 0.0 {
		return 0.0
	}
	t *= t
	return t * t * grad3[gi%12].XY().Dot(math.NewVec2(x, y))
}

func corner3D(gi int32, x, y, z float32) float32 {
	t := falloff - x*x - y*y - z*z
	if t < 0.0 {
		return 0.0
	}
	t *= t
	return t * t * grad3[gi%12].Dot(math.NewVec3(x, y, z))
}

// sum2D returns the unscaled sum of the three corner contributions.
func (s *Simplex) sum2D(x, y float32) float32 {
	// skew into simplex cell space
	skew := (x + y) * skew2
	i := int32(math32.Floor(x + skew))
	j := int32(math32.Floor(y + skew))

	// cell origin back in input space
	t := float32(i+j) * unskew2
	x0 := x - (float32(i) - t)
	y0 := y - (float32(j) - t)

	// lower or upper triangle
	var i1, j1 int32
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - float32(i1) + unskew2
	y1 := y0 - float32(j1) + unskew2
	x2 := x0 - 1.0 + 2.0*unskew2
	y2 := y0 - 1.0 + 2.0*unskew2

	ii := i & 255
	jj := j & 255
	gi0 := s.hash(ii + s.hash(jj))
	gi1 := s.hash(ii + i1 + s.hash(jj+j1))
	gi2 := s.hash(ii + 1 + s.hash(jj+1))

	return corner2D(gi0, x0, y0) + corner2D(gi1, x1, y1) + corner2D(gi2, x2, y2)
}

// Noise2D samples 2D simplex noise. The result lies in [-1, 1].
func (s *Simplex) Noise2D(x, y float32) float32 {
	return scale2D * s.sum2D(x, y)
}

// Noise2DUnit samples the same field as Noise2D rescaled into [0, 1].
func (s *Simplex) Noise2DUnit(x, y float32) float32 {
	return (scale2DUnit*s.sum2D(x, y) + 1.0) / 2.0
}

// Noise3D samples 3D simplex noise. The result lies in [-1, 1].
func (s *Simplex) Noise3D(x, y, z float32) float32 {
	skew := (x + y + z) * skew3
	i := int32(math32.Floor(x + skew))
	j := int32(math32.Floor(y + skew))
	k := int32(math32.Floor(z + skew))

	t := float32(i+j+k) * unskew3
	x0 := x - (float32(i) - t)
	y0 := y - (float32(j) - t)
	z0 := z - (float32(k) - t)

	// which of the six tetrahedra holds the point
	var i1, j1, k1, i2, j2, k2 int32
	if x0 >= y0 {
		switch {
		case y0 >= z0:
			i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 1, 0
		case x0 >= z0:
			i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 0, 1
		default:
			i1, j1, k1, i2, j2, k2 = 0, 0, 1, 1, 0, 1
		}
	} else {
		switch {
		case y0 < z0:
			i1, j1, k1, i2, j2, k2 = 0, 0, 1, 0, 1, 1
		case x0 < z0:
			i1, j1, k1, i2, j2, k2 = 0, 1, 0, 0, 1, 1
		default:
			i1, j1, k1, i2, j2, k2 = 0, 1, 0, 1, 1, 0
		}
	}

	x1 := x0 - float32(i1) + unskew3
	y1 := y0 - float32(j1) + unskew3
	z1 := z0 - float32(k1) + unskew3
	x2 := x0 - float32(i2) + 2.0*unskew3
	y2 := y0 - float32(j2) + 2.0*unskew3
	z2 := z0 - float32(k2) + 2.0*unskew3
	x3 := x0 - 1.0 + 3.0*unskew3
	y3 := y0 - 1.0 + 3.0*unskew3
	z3 := z0 - 1.0 + 3.0*unskew3

	ii := i & 255
	jj := j & 255
	kk := k & 255
	gi0 := s.hash(ii + s.hash(jj+s.hash(kk)))
	gi1 := s.hash(ii + i1 + s.hash(jj+j1+s.hash(kk+k1)))
	gi2 := s.hash(ii + i2 + s.hash(jj+j2+s.hash(kk+k2)))
	gi3 := s.hash(ii + 1 + s.hash(jj+1+s.hash(kk+1)))

	return scale3D * (corner3D(gi0, x0, y0, z0) +
		corner3D(gi1, x1, y1, z1) +
		corner3D(gi2, x2, y2, z2) +
		corner3D(gi3, x3, y3, z3))
}

// Simplex2D samples the default generator.
func Simplex2D(x, y float32) float32 {
	return defaultSimplex.Noise2D(x, y)
}

// Simplex3D samples the default generator.
func Simplex3D(x, y, z float32) float32 {
	return defaultSimplex.Noise3D(x, y, z)
}
