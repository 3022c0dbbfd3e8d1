package core

import (
	"errors"
)

var (
	ErrInvalidMesh      = errors.New("invalid mesh")
	ErrUnknownCollider  = errors.New("unknown collider kind")
	ErrSceneNotLoaded   = errors.New("no scene loaded")
	ErrUnknownRay       = errors.New("unknown ray")
	ErrWatcherClosed    = errors.New("watcher closed")
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrMalformedObjFile = errors.New("malformed obj file")
)
