package backend

import (
	"github.com/gogpu/compositor"
)

// Back-end name constants.
const (
	// BackendSoftware is the name of the software-only back-end.
	BackendSoftware = "software"
	// BackendGPU is the name of the wgpu-backed GPU back-end (gpu3d package).
	BackendGPU = "gpu"
)

// SoftwareBackend produces software-only graphics contexts.
//
// It holds no resources of its own: Init and Close exist to satisfy the
// Backend interface, and every context it creates is an independent
// software-only handle whose Flush is a no-op.
type SoftwareBackend struct {
	initialized bool
}

// init registers the software back-end on package import.
func init() {
	Register(BackendSoftware, func() Backend {
		return &SoftwareBackend{}
	})
}

// NewSoftwareBackend creates a new software back-end.
func NewSoftwareBackend() *SoftwareBackend {
	return &SoftwareBackend{}
}

// Name returns the back-end identifier.
func (b *SoftwareBackend) Name() string {
	return BackendSoftware
}

// Init initializes the back-end. Cannot fail: no external resources are
// acquired for software rendering.
func (b *SoftwareBackend) Init() error {
	b.initialized = true
	return nil
}

// Close releases back-end resources.
func (b *SoftwareBackend) Close() {
	b.initialized = false
}

// NewGraphicsContext creates a software-only graphics context.
func (b *SoftwareBackend) NewGraphicsContext() (*compositor.GraphicsContext, error) {
	if !b.initialized {
		return nil, ErrNotInitialized
	}
	return compositor.NewSoftwareContext(), nil
}
