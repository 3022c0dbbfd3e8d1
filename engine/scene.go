package engine

import (
	"fmt"
	"path/filepath"

	"github.com/chewxy/math32"
	"github.com/google/uuid"
	"github.com/spaghettifunk/geometria/engine/assets/metadata"
	"github.com/spaghettifunk/geometria/engine/colliders"
	"github.com/spaghettifunk/geometria/engine/core"
	"github.com/spaghettifunk/geometria/engine/math"
)

// SceneCollider is one collider of a loaded scene, in world space.
type SceneCollider struct {
	ID       string
	Name     string
	Kind     metadata.ColliderKind
	Collider colliders.Collider
	// Absolute path of the OBJ file a mesh was read from.
	Source string
}

type Ray struct {
	Name        string
	Origin      math.Vec3
	Direction   math.Vec3
	MaxDistance *float32
}

type Scene struct {
	Name      string
	Path      string
	Colliders []SceneCollider
	Rays      []Ray
}

// Ray looks a ray up by name.
func (s *Scene) Ray(name string) (Ray, bool) {
	for _, r := range s.Rays {
		if r.Name == name {
			return r, true
		}
	}
	return Ray{}, false
}

// Dependencies lists the files the scene was built from: the scene file and
// every mesh file.
func (s *Scene) Dependencies() []string {
	deps := []string{s.Path}
	for _, c := range s.Colliders {
		if c.Source != "" {
			deps = append(deps, c.Source)
		}
	}
	return deps
}

type meshSource func(path string) (*metadata.MeshData, error)

// buildScene turns a validated config into world space colliders. Mesh files
// resolve relative to the directory of path.
func buildScene(cfg *metadata.SceneConfig, path string, loadMesh meshSource) (*Scene, error) {
	scene := &Scene{
		Name:      cfg.Name,
		Path:      path,
		Colliders: make([]SceneCollider, 0, len(cfg.Colliders)),
		Rays:      make([]Ray, 0, len(cfg.Rays)),
	}

	dir := filepath.Dir(path)
	for i := range cfg.Colliders {
		c, err := buildCollider(&cfg.Colliders[i], dir, loadMesh)
		if err != nil {
			return nil, fmt.Errorf("collider %d (%s): %w", i, cfg.Colliders[i].Name, err)
		}
		scene.Colliders = append(scene.Colliders, c)
	}

	for i, rc := range cfg.Rays {
		origin, err := metadata.Vec3Field("origin", rc.Origin)
		if err != nil {
			return nil, fmt.Errorf("ray %d: %w", i, err)
		}
		direction, err := metadata.Vec3Field("direction", rc.Direction)
		if err != nil {
			return nil, fmt.Errorf("ray %d: %w", i, err)
		}
		name := rc.Name
		if name == "" {
			name = uuid.NewString()
		}
		scene.Rays = append(scene.Rays, Ray{
			Name:        name,
			Origin:      origin,
			Direction:   direction,
			MaxDistance: rc.MaxDistance,
		})
	}

	return scene, nil
}

func buildCollider(cfg *metadata.ColliderConfig, dir string, loadMesh meshSource) (SceneCollider, error) {
	if err := cfg.Validate(); err != nil {
		return SceneCollider{}, err
	}

	id := uuid.NewString()
	out := SceneCollider{ID: id, Name: cfg.Name, Kind: cfg.Kind}
	if out.Name == "" {
		out.Name = id
	}

	var transform *math.Transform
	if cfg.Transform != nil {
		t, err := cfg.Transform.ToTransform()
		if err != nil {
			return SceneCollider{}, err
		}
		transform = t
	}

	switch cfg.Kind {
	case metadata.ColliderKindBox:
		points, err := boxPoints(cfg)
		if err != nil {
			return SceneCollider{}, err
		}
		// a rotated box is re-fitted around its transformed corners
		out.Collider = colliders.AABoundingBoxFromPoints(transform.ApplyPoints(points))

	case metadata.ColliderKindSphere:
		if len(cfg.Points) > 0 {
			points, err := metadata.Vec3List("points", cfg.Points)
			if err != nil {
				return SceneCollider{}, err
			}
			out.Collider = colliders.BoundingSphereFromPoints(transform.ApplyPoints(points))
			break
		}
		centre, err := metadata.Vec3Field("centre", cfg.Centre)
		if err != nil {
			return SceneCollider{}, err
		}
		radius := cfg.Radius
		if transform != nil {
			s := transform.Scale
			radius *= max(math32.Abs(s.X), math32.Abs(s.Y), math32.Abs(s.Z))
		}
		out.Collider = colliders.NewBoundingSphere(centre.Transform(transform.GetWorld()), radius)

	case metadata.ColliderKindPlane:
		position, err := metadata.Vec3Field("position", cfg.Position)
		if err != nil {
			return SceneCollider{}, err
		}
		size, err := metadata.Vec2Field("size", cfg.Size)
		if err != nil {
			return SceneCollider{}, err
		}
		if transform != nil {
			if cfg.Transform.HasRotation() {
				core.LogWarn("plane %s: rotation ignored, planes stay in the X-Z plane", out.Name)
				transform.SetRotation(math.NewQuatIdentity())
			}
			size = math.NewVec2(size.X*transform.Scale.X, size.Y*transform.Scale.Z)
			position = position.Transform(transform.GetWorld())
		}
		out.Collider = colliders.NewPlaneCollider(position, size)

	case metadata.ColliderKindTriangle:
		points, err := metadata.Vec3List("points", cfg.Points)
		if err != nil {
			return SceneCollider{}, err
		}
		points = transform.ApplyPoints(points)
		out.Collider = colliders.NewTriangleCollider(points[0], points[1], points[2])

	case metadata.ColliderKindMesh:
		vertices, indices, source, err := meshData(cfg, dir, loadMesh)
		if err != nil {
			return SceneCollider{}, err
		}
		mesh, err := colliders.NewMeshCollider(transform.ApplyPoints(vertices), indices)
		if err != nil {
			return SceneCollider{}, err
		}
		out.Collider = mesh
		out.Source = source

	default:
		return SceneCollider{}, fmt.Errorf("%q: %w", cfg.Kind, core.ErrUnknownCollider)
	}

	return out, nil
}

func boxPoints(cfg *metadata.ColliderConfig) ([]math.Vec3, error) {
	if len(cfg.Points) > 0 {
		return metadata.Vec3List("points", cfg.Points)
	}
	lo, err := metadata.Vec3Field("min", cfg.Min)
	if err != nil {
		return nil, err
	}
	hi, err := metadata.Vec3Field("max", cfg.Max)
	if err != nil {
		return nil, err
	}
	return []math.Vec3{
		math.NewVec3(lo.X, lo.Y, lo.Z),
		math.NewVec3(hi.X, lo.Y, lo.Z),
		math.NewVec3(lo.X, hi.Y, lo.Z),
		math.NewVec3(hi.X, hi.Y, lo.Z),
		math.NewVec3(lo.X, lo.Y, hi.Z),
		math.NewVec3(hi.X, lo.Y, hi.Z),
		math.NewVec3(lo.X, hi.Y, hi.Z),
		math.NewVec3(hi.X, hi.Y, hi.Z),
	}, nil
}

func meshData(cfg *metadata.ColliderConfig, dir string, loadMesh meshSource) ([]math.Vec3, []uint32, string, error) {
	if cfg.File == "" {
		vertices, err := metadata.Vec3List("vertices", cfg.Vertices)
		if err != nil {
			return nil, nil, "", err
		}
		return vertices, cfg.Indices, "", nil
	}

	source := cfg.File
	if !filepath.IsAbs(source) {
		source = filepath.Join(dir, source)
	}
	data, err := loadMesh(source)
	if err != nil {
		return nil, nil, "", err
	}
	return data.Vertices, data.Indices, source, nil
}
