package engine

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/geometria/engine/assets"
	"github.com/spaghettifunk/geometria/engine/assets/loaders"
	"github.com/spaghettifunk/geometria/engine/assets/metadata"
	"github.com/spaghettifunk/geometria/engine/colliders"
	"github.com/spaghettifunk/geometria/engine/containers"
	"github.com/spaghettifunk/geometria/engine/core"
	"github.com/spaghettifunk/geometria/engine/math"
	"github.com/spaghettifunk/geometria/engine/systems"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
	// Engine released every resource
	EngineStageShutdown
)

func (s Stage) String() string {
	switch s {
	case EngineStageUninitialized:
		return "uninitialized"
	case EngineStageInitializing:
		return "initializing"
	case EngineStageInitialized:
		return "initialized"
	case EngineStageRunning:
		return "running"
	case EngineStageShuttingDown:
		return "shutting down"
	case EngineStageShutdown:
		return "shut down"
	default:
		return fmt.Sprintf("Stage(%d)", uint8(s))
	}
}

// CastResult is the outcome of casting one ray against every collider of the
// current scene.
type CastResult struct {
	// Empty for rays that are not part of the scene.
	Ray string
	// Name of the nearest collider hit, empty on a miss.
	Collider string
	Hit      *colliders.RayHitInfo
	Elapsed  time.Duration
}

func (r CastResult) IsHit() bool {
	return r.Hit != nil
}

func (r CastResult) String() string {
	if r.Hit == nil {
		return fmt.Sprintf("ray %q: miss (%s)", r.Ray, r.Elapsed)
	}
	return fmt.Sprintf("ray %q: %s %s (%s)", r.Ray, r.Collider, r.Hit, r.Elapsed)
}

type Engine struct {
	currentStage Stage
	gameInstance *Game
	config       *ApplicationConfig

	assetManager *assets.AssetManager
	jobSystem    *systems.JobSystem
	events       *core.EventBus
	metrics      *core.QueryMetrics

	// guards currentStage, scene and history
	mu      sync.RWMutex
	scene   *Scene
	history *containers.RingQueue[CastResult]

	reloadMu sync.Mutex
	quit     chan struct{}
	quitOnce sync.Once
}

func New(g *Game) (*Engine, error) {
	if g.ApplicationConfig == nil {
		g.ApplicationConfig = DefaultApplicationConfig()
	}
	config := g.ApplicationConfig
	if err := config.Validate(); err != nil {
		return nil, err
	}

	am, err := assets.NewAssetManager()
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}

	js, err := systems.NewJobSystem(config.Workers, config.Workers*2)
	if err != nil {
		core.LogError(err.Error())
		_ = am.Shutdown()
		return nil, err
	}

	return &Engine{
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		config:       config,
		assetManager: am,
		jobSystem:    js,
		events:       core.NewEventBus(),
		metrics:      core.NewQueryMetrics(),
		history:      containers.NewRingQueue[CastResult](config.HistorySize),
		quit:         make(chan struct{}),
	}, nil
}

func (e *Engine) Initialize() error {
	if e.Stage() != EngineStageUninitialized {
		return fmt.Errorf("engine cannot initialize from stage %s", e.Stage())
	}
	e.setStage(EngineStageInitializing)

	if err := core.SetLogLevel(e.config.LogLevel); err != nil {
		return fmt.Errorf("log level %q: %w", e.config.LogLevel, core.ErrInvalidConfig)
	}

	// register some events
	e.events.Register(core.EVENT_CODE_APPLICATION_QUIT, e, e.onEvent)

	if err := e.assetManager.Initialize(e.config.AssetsDir); err != nil {
		return err
	}
	if e.config.Watch {
		e.assetManager.Subscribe(e.onAssetChanged)
	}

	if e.gameInstance.FnInitialize != nil {
		if err := e.gameInstance.FnInitialize(e); err != nil {
			return err
		}
	}

	if e.config.ScenePath != "" {
		if _, err := e.LoadScene(e.config.ScenePath); err != nil {
			return err
		}
	}

	e.setStage(EngineStageInitialized)
	core.LogInfo("%s initialized (assets: %s, workers: %d, watch: %t)", e.config.Name, e.config.AssetsDir, e.jobSystem.Workers(), e.config.Watch)
	return nil
}

// Run casts every ray of the loaded scene once. With watching enabled it then
// keeps serving reloads until ctx is cancelled or EVENT_CODE_APPLICATION_QUIT
// is fired.
func (e *Engine) Run(ctx context.Context) error {
	if e.Stage() != EngineStageInitialized {
		return fmt.Errorf("engine cannot run from stage %s", e.Stage())
	}
	e.setStage(EngineStageRunning)

	if e.CurrentScene() != nil {
		if err := e.castAndReport(); err != nil {
			return err
		}
	}

	if !e.config.Watch {
		return nil
	}

	core.LogInfo("watching %s for changes", e.config.AssetsDir)
	select {
	case <-ctx.Done():
	case <-e.quit:
	}
	return nil
}

func (e *Engine) Shutdown() error {
	e.mu.Lock()
	if e.currentStage == EngineStageShuttingDown || e.currentStage == EngineStageShutdown {
		e.mu.Unlock()
		return nil
	}
	e.currentStage = EngineStageShuttingDown
	e.mu.Unlock()

	e.quitOnce.Do(func() { close(e.quit) })

	var errs []error
	if e.gameInstance.FnShutdown != nil {
		if err := e.gameInstance.FnShutdown(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := e.assetManager.Shutdown(); err != nil {
		errs = append(errs, err)
	}
	if err := e.jobSystem.Shutdown(); err != nil {
		errs = append(errs, err)
	}
	e.events.Reset()

	e.setStage(EngineStageShutdown)
	if len(errs) > 0 {
		return fmt.Errorf("shutdown: %v", errs)
	}
	return nil
}

func (e *Engine) Stage() Stage {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.currentStage
}

func (e *Engine) setStage(s Stage) {
	e.mu.Lock()
	e.currentStage = s
	e.mu.Unlock()
}

func (e *Engine) Config() *ApplicationConfig {
	return e.config
}

func (e *Engine) Events() *core.EventBus {
	return e.events
}

func (e *Engine) Metrics() *core.QueryMetrics {
	return e.metrics
}

func (e *Engine) Assets() *assets.AssetManager {
	return e.assetManager
}

// CurrentScene returns the active scene, or nil before the first load.
func (e *Engine) CurrentScene() *Scene {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.scene
}

// LoadScene reads a scene file and makes it the active scene. Relative paths
// resolve against the assets directory.
func (e *Engine) LoadScene(path string) (*Scene, error) {
	full, err := e.assetManager.Resolve(path)
	if err != nil {
		return nil, err
	}

	scene, err := e.readScene(full)
	if err != nil {
		return nil, err
	}
	e.setScene(scene)

	core.LogInfo("scene %s loaded: %d colliders, %d rays", scene.Name, len(scene.Colliders), len(scene.Rays))
	e.events.Fire(core.EVENT_CODE_SCENE_LOADED, e, sceneContext(scene))

	if e.gameInstance.FnOnSceneLoaded != nil {
		if err := e.gameInstance.FnOnSceneLoaded(scene); err != nil {
			return nil, err
		}
	}
	return scene, nil
}

func (e *Engine) setScene(scene *Scene) {
	e.mu.Lock()
	e.scene = scene
	e.mu.Unlock()
}

func (e *Engine) readScene(path string) (*Scene, error) {
	res, err := e.assetManager.LoadAsset(path, metadata.ResourceTypeScene, nil)
	if err != nil {
		return nil, err
	}
	defer e.assetManager.UnloadAsset(res)

	cfg, ok := res.Data.(*metadata.SceneConfig)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected scene data %T", path, res.Data)
	}
	return buildScene(cfg, path, e.loadMesh)
}

func (e *Engine) loadMesh(path string) (*metadata.MeshData, error) {
	res, err := e.assetManager.LoadAsset(path, metadata.ResourceTypeMesh, loaders.ObjParams{Deduplicate: true})
	if err != nil {
		return nil, err
	}
	defer e.assetManager.UnloadAsset(res)

	data, ok := res.Data.(*metadata.MeshData)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected mesh data %T", path, res.Data)
	}
	return data, nil
}

// CastRay casts an ad hoc ray against the current scene and returns the
// nearest hit across all colliders.
func (e *Engine) CastRay(origin, direction math.Vec3, maxDistance *float32) (CastResult, error) {
	scene := e.CurrentScene()
	if scene == nil {
		return CastResult{}, core.ErrSceneNotLoaded
	}
	return e.cast(scene, Ray{Origin: origin, Direction: direction, MaxDistance: maxDistance}), nil
}

// CastNamedRay casts one of the rays declared by the current scene.
func (e *Engine) CastNamedRay(name string) (CastResult, error) {
	scene := e.CurrentScene()
	if scene == nil {
		return CastResult{}, core.ErrSceneNotLoaded
	}
	ray, ok := scene.Ray(name)
	if !ok {
		return CastResult{}, fmt.Errorf("%q: %w", name, core.ErrUnknownRay)
	}
	return e.cast(scene, ray), nil
}

// CastScene casts every ray of the current scene on the job system. Results
// keep the order the rays were declared in.
func (e *Engine) CastScene() ([]CastResult, error) {
	scene := e.CurrentScene()
	if scene == nil {
		return nil, core.ErrSceneNotLoaded
	}

	results := make([]CastResult, len(scene.Rays))
	var wg sync.WaitGroup
	for i, ray := range scene.Rays {
		i := i
		wg.Add(1)
		err := e.jobSystem.Submit(systems.JobTask{
			InputParams: ray,
			OnStart: func(input interface{}) (interface{}, error) {
				return e.cast(scene, input.(Ray)), nil
			},
			OnComplete: func(result interface{}) {
				results[i] = result.(CastResult)
			},
			OnCompletionCallback: wg.Done,
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return nil, err
		}
	}
	wg.Wait()
	return results, nil
}

// History returns the most recent cast results, oldest first.
func (e *Engine) History() []CastResult {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.history.Items()
}

func (e *Engine) cast(scene *Scene, ray Ray) CastResult {
	clock := core.NewClock()
	clock.Start()

	result := CastResult{Ray: ray.Name}
	for _, c := range scene.Colliders {
		hit, ok := c.Collider.CheckRay(ray.Origin, ray.Direction, ray.MaxDistance)
		if ok && (result.Hit == nil || hit.HitDistance < result.Hit.HitDistance) {
			result.Hit = hit
			result.Collider = c.Name
		}
	}

	clock.Stop()
	result.Elapsed = clock.Elapsed()
	e.metrics.Record(result.Elapsed, result.IsHit())

	e.mu.Lock()
	e.history.Push(result)
	e.mu.Unlock()

	ctx := core.EventContext{}
	if result.IsHit() {
		ctx.Data.C[0] = result.Collider
		ctx.Data.C[1] = result.Ray
		ctx.Data.F32[0] = result.Hit.HitDistance
		ctx.Data.F32[1] = result.Hit.HitPosition.X
		ctx.Data.F32[2] = result.Hit.HitPosition.Y
		ctx.Data.F32[3] = result.Hit.HitPosition.Z
		e.events.Fire(core.EVENT_CODE_RAY_HIT, e, ctx)
	} else {
		ctx.Data.C[0] = result.Ray
		e.events.Fire(core.EVENT_CODE_RAY_MISS, e, ctx)
	}

	core.LogDebug("%s", result)
	return result
}

func (e *Engine) castAndReport() error {
	results, err := e.CastScene()
	if err != nil {
		return err
	}
	queries, hits := e.metrics.Counts()
	core.LogWith("scene cast", "rays", len(results), "queries", queries, "hits", hits, "avg_ms", e.metrics.AverageMS())
	if e.gameInstance.FnOnCast != nil {
		return e.gameInstance.FnOnCast(results)
	}
	return nil
}

// onAssetChanged reloads the scene when the scene file or one of its mesh
// files is written.
func (e *Engine) onAssetChanged(info assets.AssetInfo, op fsnotify.Op) {
	if !op.Has(fsnotify.Write) && !op.Has(fsnotify.Create) {
		return
	}
	scene := e.CurrentScene()
	if scene == nil || !slices.Contains(scene.Dependencies(), info.Path) {
		return
	}
	e.reload(scene.Path)
}

func (e *Engine) reload(path string) {
	e.reloadMu.Lock()
	defer e.reloadMu.Unlock()

	scene, err := e.readScene(path)
	if err != nil {
		core.LogError("reloading %s failed, keeping the previous scene: %s", path, err.Error())
		ctx := core.EventContext{}
		ctx.Data.C[0] = path
		ctx.Data.C[1] = err.Error()
		e.events.Fire(core.EVENT_CODE_SCENE_RELOAD_FAILED, e, ctx)
		return
	}
	e.setScene(scene)

	core.LogInfo("scene %s reloaded: %d colliders, %d rays", scene.Name, len(scene.Colliders), len(scene.Rays))
	e.events.Fire(core.EVENT_CODE_SCENE_RELOADED, e, sceneContext(scene))

	if e.gameInstance.FnOnSceneLoaded != nil {
		if err := e.gameInstance.FnOnSceneLoaded(scene); err != nil {
			core.LogError("scene loaded hook: %s", err.Error())
		}
	}
	if e.Stage() == EngineStageRunning {
		if err := e.castAndReport(); err != nil {
			core.LogError("casting reloaded scene: %s", err.Error())
		}
	}
}

func (e *Engine) onEvent(code core.SystemEventCode, sender interface{}, listenerInst interface{}, data core.EventContext) bool {
	switch code {
	case core.EVENT_CODE_APPLICATION_QUIT:
		core.LogInfo("EVENT_CODE_APPLICATION_QUIT received, shutting down.")
		e.quitOnce.Do(func() { close(e.quit) })
		return true
	}
	return false
}

func sceneContext(scene *Scene) core.EventContext {
	ctx := core.EventContext{}
	ctx.Data.C[0] = scene.Path
	ctx.Data.U64[0] = uint64(len(scene.Colliders))
	return ctx
}
