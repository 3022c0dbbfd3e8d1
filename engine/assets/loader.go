package assets

import "github.com/spaghettifunk/geometria/engine/assets/metadata"

// Loader turns a file into a Resource. params carries loader specific options
// (e.g. loaders.ObjParams) and may be nil.
type Loader interface {
	Load(path string, assetType metadata.ResourceType, params interface{}) (*metadata.Resource, error)
	Unload(*metadata.Resource) error
}
