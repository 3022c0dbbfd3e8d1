package testbed

import (
	"fmt"
	"sync"

	"github.com/spaghettifunk/geometria/engine"
	"github.com/spaghettifunk/geometria/engine/core"
)

type TestGame struct {
	*engine.Game
	engine *engine.Engine
}

type gameState struct {
	// hooks run on the watcher goroutine as well
	mu sync.Mutex

	scenesLoaded int
	casts        int
	lastHits     int
}

func NewTestGame(config *engine.ApplicationConfig) *TestGame {
	if config == nil {
		config = engine.DefaultApplicationConfig()
	}
	tg := &TestGame{
		Game: &engine.Game{
			ApplicationConfig: config,
			State:             &gameState{},
		},
	}

	tg.FnInitialize = tg.Initialize
	tg.FnOnSceneLoaded = tg.OnSceneLoaded
	tg.FnOnCast = tg.OnCast
	tg.FnShutdown = tg.Shutdown

	return tg
}

func (g *TestGame) Initialize(e *engine.Engine) error {
	core.LogDebug("TestGame Initialize fn....")

	g.engine = e
	e.Events().Register(core.EVENT_CODE_RAY_HIT, g, g.gameOnRayEvent)
	e.Events().Register(core.EVENT_CODE_RAY_MISS, g, g.gameOnRayEvent)
	e.Events().Register(core.EVENT_CODE_SCENE_RELOAD_FAILED, g, g.gameOnReloadFailed)

	return nil
}

func (g *TestGame) OnSceneLoaded(scene *engine.Scene) error {
	state := g.State.(*gameState)
	state.mu.Lock()
	defer state.mu.Unlock()
	state.scenesLoaded++

	for _, c := range scene.Colliders {
		core.LogDebug("collider %s (%s): %v", c.Name, c.Kind, c.Collider)
	}
	core.LogWith("scene ready", "name", scene.Name, "colliders", len(scene.Colliders), "rays", len(scene.Rays), "loads", state.scenesLoaded)
	return nil
}

func (g *TestGame) OnCast(results []engine.CastResult) error {
	state := g.State.(*gameState)
	state.mu.Lock()
	defer state.mu.Unlock()
	state.casts++
	state.lastHits = 0

	for _, r := range results {
		if r.IsHit() {
			state.lastHits++
			core.LogWith("hit", "ray", r.Ray, "collider", r.Collider,
				"distance", r.Hit.HitDistance,
				"position", r.Hit.HitPosition,
				"normal", r.Hit.HitNormal,
				"elapsed", r.Elapsed)
			continue
		}
		core.LogWith("miss", "ray", r.Ray, "elapsed", r.Elapsed)
	}
	core.LogInfo("%d/%d rays hit", state.lastHits, len(results))
	return nil
}

func (g *TestGame) Shutdown() error {
	state := g.State.(*gameState)
	state.mu.Lock()
	defer state.mu.Unlock()
	if g.engine != nil {
		queries, hits := g.engine.Metrics().Counts()
		core.LogWith("testbed shutting down", "casts", state.casts, "queries", queries, "hits", hits, "avg_ms", fmt.Sprintf("%.4f", g.engine.Metrics().AverageMS()))
	}
	return nil
}

func (g *TestGame) gameOnRayEvent(code core.SystemEventCode, sender interface{}, listenerInst interface{}, data core.EventContext) bool {
	switch code {
	case core.EVENT_CODE_RAY_HIT:
		core.LogDebug("ray %s hit %s at %.3f", data.Data.C[1], data.Data.C[0], data.Data.F32[0])
	case core.EVENT_CODE_RAY_MISS:
		core.LogDebug("ray %s missed", data.Data.C[0])
	}
	// other listeners may care too
	return false
}

func (g *TestGame) gameOnReloadFailed(code core.SystemEventCode, sender interface{}, listenerInst interface{}, data core.EventContext) bool {
	core.LogWarn("scene %s not reloaded: %s", data.Data.C[0], data.Data.C[1])
	return false
}

// Stats reports how many scenes were loaded, how many scene casts ran and
// how many rays hit in the latest one.
func (g *TestGame) Stats() (scenesLoaded, casts, lastHits int) {
	state := g.State.(*gameState)
	state.mu.Lock()
	defer state.mu.Unlock()
	return state.scenesLoaded, state.casts, state.lastHits
}
