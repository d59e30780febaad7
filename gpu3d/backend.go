//go:build !nogpu

package gpu3d

import (
	"github.com/gogpu/compositor"
	"github.com/gogpu/compositor/backend"
)

// Backend produces GPU-backed graphics contexts.
//
// Each context gets its own standalone GPU sub-context, keeping ownership
// exclusive per the graphics context contract. Device creation is deferred
// to NewGraphicsContext so that merely importing this package on a machine
// without a GPU costs nothing; the failure surfaces when a context is
// actually requested, and callers fall back to the software back-end.
type Backend struct {
	initialized bool
}

// init registers the GPU back-end on package import.
func init() {
	backend.Register(backend.BackendGPU, func() backend.Backend {
		return &Backend{}
	})
}

// NewBackend creates a new GPU back-end.
func NewBackend() *Backend {
	return &Backend{}
}

// Name returns the back-end identifier.
func (b *Backend) Name() string {
	return backend.BackendGPU
}

// Init initializes the back-end. GPU device creation is deferred until the
// first NewGraphicsContext call; Init itself cannot fail.
func (b *Backend) Init() error {
	b.initialized = true
	return nil
}

// Close releases back-end resources. Contexts created by this back-end own
// their GPU resources individually and are unaffected.
func (b *Backend) Close() {
	b.initialized = false
}

// NewGraphicsContext opens a GPU device and returns an accelerated graphics
// context owning it. Returns an error if the back-end is uninitialized or
// no usable GPU adapter is found.
func (b *Backend) NewGraphicsContext() (*compositor.GraphicsContext, error) {
	if !b.initialized {
		return nil, backend.ErrNotInitialized
	}

	gpu, err := New()
	if err != nil {
		compositor.Logger().Warn("gpu3d: GPU unavailable", "error", err)
		return nil, err
	}
	return compositor.NewAcceleratedContext(gpu)
}

// Ensure Backend implements backend.Backend.
var _ backend.Backend = (*Backend)(nil)
