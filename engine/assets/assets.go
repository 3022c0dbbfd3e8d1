package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/geometria/engine/assets/loaders"
	"github.com/spaghettifunk/geometria/engine/assets/metadata"
	"github.com/spaghettifunk/geometria/engine/core"
)

type AssetInfo struct {
	Path       string
	Type       metadata.ResourceType
	LastLoaded time.Time
}

// ChangeHandler is called from the watcher goroutine whenever an indexed file
// is created, written, removed or renamed.
type ChangeHandler func(info AssetInfo, op fsnotify.Op)

type AssetManager struct {
	rootDir  string
	assets   map[string]AssetInfo
	loaders  map[metadata.ResourceType]Loader
	handlers []ChangeHandler

	mutex sync.RWMutex

	done     chan struct{}
	stopped  chan struct{}
	fsnotify *fsnotify.Watcher
	isClosed bool
	started  bool
}

func NewAssetManager() (*AssetManager, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	am := &AssetManager{
		assets:   make(map[string]AssetInfo),
		loaders:  make(map[metadata.ResourceType]Loader),
		fsnotify: fsWatch,
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}

	// Register loaders
	am.registerLoader(metadata.ResourceTypeScene, &loaders.SceneLoader{})
	am.registerLoader(metadata.ResourceTypeMesh, &loaders.ObjLoader{})

	return am, nil
}

// Initialize indexes every known file under assetsDir and starts watching the
// whole tree for changes.
func (am *AssetManager) Initialize(assetsDir string) error {
	root, err := filepath.Abs(assetsDir)
	if err != nil {
		return err
	}
	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("assets path %s is not a directory", root)
	}

	am.mutex.Lock()
	if am.isClosed {
		am.mutex.Unlock()
		return core.ErrWatcherClosed
	}
	am.rootDir = root
	am.mutex.Unlock()

	if err := am.addRecursive(root); err != nil {
		return err
	}

	am.mutex.Lock()
	if !am.started {
		am.started = true
		go am.start()
	}
	am.mutex.Unlock()

	core.LogDebug("asset manager watching %s (%d assets indexed)", root, len(am.Assets()))
	return nil
}

// AddRecursive starts watching the named directory and all sub-directories.
func (am *AssetManager) addRecursive(name string) error {
	if am.closed() {
		return core.ErrWatcherClosed
	}
	return am.watchRecursive(name)
}

func (am *AssetManager) closed() bool {
	am.mutex.RLock()
	defer am.mutex.RUnlock()
	return am.isClosed
}

// Register loaders for each asset type
func (am *AssetManager) registerLoader(assetType metadata.ResourceType, loader Loader) {
	am.mutex.Lock()
	defer am.mutex.Unlock()
	am.loaders[assetType] = loader
}

// Subscribe adds a handler for file changes. Handlers must not block for long;
// they run on the watcher goroutine.
func (am *AssetManager) Subscribe(handler ChangeHandler) {
	am.mutex.Lock()
	defer am.mutex.Unlock()
	am.handlers = append(am.handlers, handler)
}

// Resolve makes path absolute. Relative paths are taken from the assets
// directory once Initialize has run, from the working directory before that.
func (am *AssetManager) Resolve(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	am.mutex.RLock()
	root := am.rootDir
	am.mutex.RUnlock()
	if root != "" {
		return filepath.Join(root, path), nil
	}
	return filepath.Abs(path)
}

// Load an asset using the appropriate loader. ResourceTypeNone picks the type
// from the file extension.
func (am *AssetManager) LoadAsset(path string, resourceType metadata.ResourceType, params interface{}) (*metadata.Resource, error) {
	full, err := am.Resolve(path)
	if err != nil {
		return nil, err
	}
	if resourceType == metadata.ResourceTypeNone {
		resourceType = determineAssetType(full)
	}

	am.mutex.RLock()
	loader, loaderExists := am.loaders[resourceType]
	am.mutex.RUnlock()
	if !loaderExists {
		return nil, fmt.Errorf("no loader registered for asset type %s (%s)", resourceType, full)
	}

	resource, err := loader.Load(full, resourceType, params)
	if err != nil {
		return nil, err
	}

	// Load or reload asset from disk, update the loaded time
	am.mutex.Lock()
	am.assets[full] = AssetInfo{
		Path:       full,
		Type:       resourceType,
		LastLoaded: time.Now(),
	}
	am.mutex.Unlock()

	return resource, nil
}

func (am *AssetManager) UnloadAsset(resource *metadata.Resource) error {
	if resource == nil {
		return nil
	}
	am.mutex.RLock()
	loader, loaderExists := am.loaders[resource.Type]
	am.mutex.RUnlock()
	if !loaderExists {
		return fmt.Errorf("no loader registered for asset type %s", resource.Type)
	}
	return loader.Unload(resource)
}

// Assets lists the indexed files sorted by path.
func (am *AssetManager) Assets() []AssetInfo {
	am.mutex.RLock()
	defer am.mutex.RUnlock()

	out := make([]AssetInfo, 0, len(am.assets))
	for _, a := range am.assets {
		out = append(out, a)
	}
	slices.SortFunc(out, func(a, b AssetInfo) int {
		return strings.Compare(a.Path, b.Path)
	})
	return out
}

// Shutdown stops the watcher goroutine and releases the OS watches. It is
// safe to call more than once.
func (am *AssetManager) Shutdown() error {
	am.mutex.Lock()
	if am.isClosed {
		am.mutex.Unlock()
		return nil
	}
	am.isClosed = true
	started := am.started
	am.mutex.Unlock()

	close(am.done)
	if started {
		<-am.stopped
		return nil
	}
	return am.fsnotify.Close()
}

func (am *AssetManager) start() {
	defer close(am.stopped)
	for {
		select {

		case e, ok := <-am.fsnotify.Events:
			if !ok {
				return
			}
			am.handleEvent(e)

		case e, ok := <-am.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("asset watcher: %s", e.Error())

		case <-am.done:
			am.fsnotify.Close()
			return
		}
	}
}

func (am *AssetManager) handleEvent(e fsnotify.Event) {
	s, err := os.Stat(e.Name)
	if err == nil && s != nil && s.IsDir() {
		if e.Op.Has(fsnotify.Create) {
			if err := am.watchRecursive(e.Name); err != nil {
				core.LogWarn("asset watcher: unable to watch %s: %s", e.Name, err.Error())
			}
		}
		return
	}

	var info AssetInfo
	var known bool
	switch {
	// Handle create or modify events
	case e.Op.Has(fsnotify.Create) || e.Op.Has(fsnotify.Write):
		info, known = am.handleFileEvent(e.Name)
	// Can't stat a deleted file, drop it from the index and the watch list
	case e.Op.Has(fsnotify.Remove) || e.Op.Has(fsnotify.Rename):
		info, known = am.removeAsset(e.Name)
		_ = am.fsnotify.Remove(e.Name)
	}
	if !known {
		return
	}

	am.mutex.RLock()
	handlers := make([]ChangeHandler, len(am.handlers))
	copy(handlers, am.handlers)
	am.mutex.RUnlock()

	for _, h := range handlers {
		h(info, e.Op)
	}
}

// watchRecursive adds all directories under the given one to the watch list
// and indexes the files it finds. A file created before its directory watch
// is added is still picked up by the walk.
func (am *AssetManager) watchRecursive(path string) error {
	return filepath.Walk(path, func(walkPath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			return am.fsnotify.Add(walkPath)
		}
		am.handleFileEvent(walkPath)
		return nil
	})
}

// Handle the creation or modification of a file
func (am *AssetManager) handleFileEvent(path string) (AssetInfo, bool) {
	assetType := determineAssetType(path)
	if assetType == metadata.ResourceTypeNone {
		return AssetInfo{}, false
	}

	path = filepath.Clean(path)

	am.mutex.Lock()
	defer am.mutex.Unlock()

	info := am.assets[path]
	info.Path = path
	info.Type = assetType
	am.assets[path] = info
	return info, true
}

// Remove the asset from the index if it was deleted
func (am *AssetManager) removeAsset(path string) (AssetInfo, bool) {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	path = filepath.Clean(path)
	info, ok := am.assets[path]
	delete(am.assets, path)
	return info, ok
}

func determineAssetType(path string) metadata.ResourceType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return metadata.ResourceTypeScene
	case ".obj":
		return metadata.ResourceTypeMesh
	default:
		return metadata.ResourceTypeNone
	}
}
