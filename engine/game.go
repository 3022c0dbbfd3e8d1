package engine

// Game is the application driven by the Engine. Every hook is optional.
type Game struct {
	ApplicationConfig *ApplicationConfig
	State             interface{}
	FnInitialize      Initialize
	FnOnSceneLoaded   OnSceneLoaded
	FnOnCast          OnCast
	FnShutdown        Shutdown
}

// Initialize runs once the engine is initialized, before the first scene loads.
type Initialize func(e *Engine) error

// OnSceneLoaded runs after every successful scene load or reload.
type OnSceneLoaded func(scene *Scene) error

// OnCast receives the results of each CastScene call.
type OnCast func(results []CastResult) error

type Shutdown func() error
