package backend

import (
	"errors"

	"github.com/gogpu/compositor"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested back-end is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")
)

// Backend produces graphics contexts for one rendering path.
//
// Back-ends must be registered via Register() and are selected via Get()
// or Default(). A back-end owns whatever shared state its rendering path
// needs (a GPU instance, for example); the contexts it produces own their
// per-surface resources.
type Backend interface {
	// Name returns the back-end identifier (e.g., "software", "gpu").
	Name() string

	// Init initializes the back-end.
	// This should be called before NewGraphicsContext.
	Init() error

	// Close releases all back-end resources.
	// The back-end should not be used after Close is called.
	Close()

	// NewGraphicsContext creates a graphics context for one rendering
	// surface. Software back-ends return software-only contexts; GPU
	// back-ends create a GPU sub-context and transfer its ownership to
	// the returned context.
	NewGraphicsContext() (*compositor.GraphicsContext, error)
}
