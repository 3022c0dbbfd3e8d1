package metadata

import (
	"fmt"

	"github.com/spaghettifunk/geometria/engine/core"
	"github.com/spaghettifunk/geometria/engine/math"
)

type ColliderKind string

const (
	ColliderKindBox      ColliderKind = "box"
	ColliderKindSphere   ColliderKind = "sphere"
	ColliderKindPlane    ColliderKind = "plane"
	ColliderKindTriangle ColliderKind = "triangle"
	ColliderKindMesh     ColliderKind = "mesh"
)

/**
 * @brief A scene file: a set of colliders and a set of named rays to cast
 * against them.
 */
type SceneConfig struct {
	Name      string           `toml:"name"`
	Colliders []ColliderConfig `toml:"collider"`
	Rays      []RayConfig      `toml:"ray"`
}

/**
 * @brief One collider entry. Which fields are read depends on Kind:
 * box uses min/max or points, sphere uses centre/radius or points, plane uses
 * position/size, triangle uses three points, mesh uses vertices/indices or file.
 */
type ColliderConfig struct {
	Name string       `toml:"name"`
	Kind ColliderKind `toml:"kind"`

	Min    []float32   `toml:"min"`
	Max    []float32   `toml:"max"`
	Centre []float32   `toml:"centre"`
	Radius float32     `toml:"radius"`
	Points [][]float32 `toml:"points"`

	Position []float32 `toml:"position"`
	Size     []float32 `toml:"size"`

	Vertices [][]float32 `toml:"vertices"`
	Indices  []uint32    `toml:"indices"`
	/** @brief OBJ file path, relative to the scene file. */
	File string `toml:"file"`

	Transform *TransformConfig `toml:"transform"`
}

/** @brief Position, rotation (Euler degrees, x then y then z) and scale. */
type TransformConfig struct {
	Position []float32 `toml:"position"`
	Rotation []float32 `toml:"rotation"`
	Scale    []float32 `toml:"scale"`
}

type RayConfig struct {
	Name        string    `toml:"name"`
	Origin      []float32 `toml:"origin"`
	Direction   []float32 `toml:"direction"`
	MaxDistance *float32  `toml:"max_distance"`
}

/** @brief Triangle mesh data as read from a mesh file. */
type MeshData struct {
	Name     string
	Vertices []math.Vec3
	Indices  []uint32
}

// Vec3Field converts a three element list from a config file.
func Vec3Field(field string, values []float32) (math.Vec3, error) {
	if len(values) != 3 {
		return math.Vec3{}, fmt.Errorf("%s: expected 3 values, got %d: %w", field, len(values), core.ErrInvalidConfig)
	}
	return math.NewVec3(values[0], values[1], values[2]), nil
}

// Vec2Field converts a two element list from a config file.
func Vec2Field(field string, values []float32) (math.Vec2, error) {
	if len(values) != 2 {
		return math.Vec2{}, fmt.Errorf("%s: expected 2 values, got %d: %w", field, len(values), core.ErrInvalidConfig)
	}
	return math.NewVec2(values[0], values[1]), nil
}

// Vec3List converts a list of three element lists.
func Vec3List(field string, values [][]float32) ([]math.Vec3, error) {
	out := make([]math.Vec3, len(values))
	for i, v := range values {
		p, err := Vec3Field(fmt.Sprintf("%s[%d]", field, i), v)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

// Validate checks the shape of every entry. It does not read mesh files.
func (s *SceneConfig) Validate() error {
	for i := range s.Colliders {
		if err := s.Colliders[i].Validate(); err != nil {
			return fmt.Errorf("collider %d (%s): %w", i, s.Colliders[i].Name, err)
		}
	}
	for i, r := range s.Rays {
		if _, err := Vec3Field("origin", r.Origin); err != nil {
			return fmt.Errorf("ray %d (%s): %w", i, r.Name, err)
		}
		if _, err := Vec3Field("direction", r.Direction); err != nil {
			return fmt.Errorf("ray %d (%s): %w", i, r.Name, err)
		}
		if r.MaxDistance != nil && *r.MaxDistance < 0 {
			return fmt.Errorf("ray %d (%s): negative max_distance: %w", i, r.Name, core.ErrInvalidConfig)
		}
	}
	return nil
}

func (c *ColliderConfig) Validate() error {
	if err := c.validateShape(); err != nil {
		return err
	}
	if c.Transform != nil {
		return c.Transform.Validate()
	}
	return nil
}

func (c *ColliderConfig) validateShape() error {
	switch c.Kind {
	case ColliderKindBox:
		if len(c.Points) > 0 {
			_, err := Vec3List("points", c.Points)
			return err
		}
		if _, err := Vec3Field("min", c.Min); err != nil {
			return err
		}
		_, err := Vec3Field("max", c.Max)
		return err
	case ColliderKindSphere:
		if len(c.Points) > 0 {
			_, err := Vec3List("points", c.Points)
			return err
		}
		if _, err := Vec3Field("centre", c.Centre); err != nil {
			return err
		}
		if c.Radius < 0 {
			return fmt.Errorf("negative radius %f: %w", c.Radius, core.ErrInvalidConfig)
		}
	case ColliderKindPlane:
		if _, err := Vec3Field("position", c.Position); err != nil {
			return err
		}
		_, err := Vec2Field("size", c.Size)
		return err
	case ColliderKindTriangle:
		if len(c.Points) != 3 {
			return fmt.Errorf("triangle needs 3 points, got %d: %w", len(c.Points), core.ErrInvalidConfig)
		}
		_, err := Vec3List("points", c.Points)
		return err
	case ColliderKindMesh:
		if c.File != "" {
			if len(c.Vertices) > 0 {
				return fmt.Errorf("mesh sets both file and vertices: %w", core.ErrInvalidConfig)
			}
			return nil
		}
		_, err := Vec3List("vertices", c.Vertices)
		return err
	default:
		return fmt.Errorf("%q: %w", c.Kind, core.ErrUnknownCollider)
	}
	return nil
}

// Validate accepts missing fields; present ones must have three values.
func (t *TransformConfig) Validate() error {
	for field, v := range map[string][]float32{"position": t.Position, "rotation": t.Rotation, "scale": t.Scale} {
		if v == nil {
			continue
		}
		if _, err := Vec3Field("transform."+field, v); err != nil {
			return err
		}
	}
	return nil
}

// ToTransform builds the transform; missing fields default to identity.
func (t *TransformConfig) ToTransform() (*math.Transform, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	position := math.NewVec3Zero()
	rotation := math.NewQuatIdentity()
	scale := math.NewVec3One()
	if t.Position != nil {
		position, _ = Vec3Field("position", t.Position)
	}
	if t.Rotation != nil {
		deg, _ := Vec3Field("rotation", t.Rotation)
		rotation = math.NewQuatFromEuler(math.NewVec3(math.DegToRad(deg.X), math.DegToRad(deg.Y), math.DegToRad(deg.Z)))
	}
	if t.Scale != nil {
		scale, _ = Vec3Field("scale", t.Scale)
	}
	return math.NewTransformFromPositionRotationScale(position, rotation, scale), nil
}

// HasRotation reports whether a non-zero rotation is set.
func (t *TransformConfig) HasRotation() bool {
	for _, v := range t.Rotation {
		if v != 0 {
			return true
		}
	}
	return false
}
