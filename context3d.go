package compositor

// Context3D is the GPU sub-context owned by an accelerated GraphicsContext.
//
// Implementations wrap a hardware-accelerated rendering back-end that issues
// draw and submit commands to a graphics device. The gpu3d package provides
// the wgpu-backed implementation; tests substitute spies.
//
// A Context3D is created by the caller and handed to [NewAcceleratedContext],
// which becomes its sole owner. After the transfer the caller must not call
// Release itself; the owning GraphicsContext releases the sub-context exactly
// once when it is closed.
type Context3D interface {
	// Flush submits all pending GPU work for execution.
	//
	// Completion semantics belong to the implementation: a flush may return
	// before the GPU has finished executing the submitted work. Errors are
	// the implementation's own and are reported unmodified to callers of
	// GraphicsContext.Flush.
	Flush() error

	// Release destroys the sub-context and frees its GPU resources.
	// The sub-context must not be used after Release. Called exactly once
	// by the owning GraphicsContext.
	Release()
}
