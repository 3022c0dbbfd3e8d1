package metadata

import "fmt"

type ResourceType int

/** @brief Pre-defined resource types. */
const (
	/** @brief Unknown or unsupported file. */
	ResourceTypeNone ResourceType = iota
	/** @brief Scene description (TOML). */
	ResourceTypeScene
	/** @brief Triangle mesh (Wavefront OBJ). */
	ResourceTypeMesh
)

func (t ResourceType) String() string {
	switch t {
	case ResourceTypeScene:
		return "scene"
	case ResourceTypeMesh:
		return "mesh"
	case ResourceTypeNone:
		return "none"
	default:
		return fmt.Sprintf("ResourceType(%d)", int(t))
	}
}

/**
 * @brief A generic structure for a resource. All resource loaders
 * load data into these.
 */
type Resource struct {
	/** @brief The type of loader which handled this resource. */
	Type ResourceType
	/** @brief The name of the resource. */
	Name string
	/** @brief The full file path of the resource. */
	FullPath string
	/** @brief The size of the file the resource was read from, in bytes. */
	DataSize uint64
	/** @brief The resource data: *SceneConfig or *MeshData. */
	Data interface{}
}
