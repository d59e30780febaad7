package compositor

// GraphicsContext unifies the software and GPU-accelerated rendering paths
// behind one handle. Upper layers of the compositor hold one GraphicsContext
// per rendering surface and call Flush once per submitted frame, without
// branching on which back-end is active.
//
// A GraphicsContext is created in exactly one of two modes — software-only
// via [NewSoftwareContext], or GPU-backed via [NewAcceleratedContext] — and
// the mode is fixed for its lifetime. There are no transitions between modes.
//
// The context exclusively owns its GPU sub-context, if any. Ownership is
// transferred in at construction and the sub-context is released exactly
// once, when Close is called. GraphicsContext must not be copied.
//
// GraphicsContext is NOT safe for concurrent use. Use each instance from a
// single goroutine, or provide external synchronization.
type GraphicsContext struct {
	// gpu is the exclusively owned GPU sub-context.
	// nil for the entire lifetime of a software-only context; non-nil for
	// the entire lifetime of an accelerated one.
	gpu Context3D

	closed bool
}

// NewSoftwareContext creates a software-only graphics context.
//
// The context owns no GPU resources and acquires none later: Context3D
// returns nil and Flush is a no-op for the context's entire lifetime.
// Construction cannot fail.
func NewSoftwareContext() *GraphicsContext {
	return &GraphicsContext{}
}

// NewAcceleratedContext creates a GPU-backed graphics context that takes
// exclusive ownership of gpu.
//
// The sub-context must be fully formed and ready to use. After this call the
// caller must not use or release gpu directly; the returned context is its
// sole owner and releases it on Close.
//
// Returns ErrNilContext3D if gpu is nil. A nil sub-context is a caller
// contract violation, not a request for software mode; use
// NewSoftwareContext for that.
func NewAcceleratedContext(gpu Context3D) (*GraphicsContext, error) {
	if gpu == nil {
		return nil, ErrNilContext3D
	}
	return &GraphicsContext{gpu: gpu}, nil
}

// Context3D returns the GPU sub-context, or nil for a software-only context.
//
// The returned reference is borrowed: callers may issue calls into the GPU
// back-end through it, but must not release it and must not use it after the
// owning context is closed. The same value is returned on every call.
func (c *GraphicsContext) Context3D() Context3D {
	return c.gpu
}

// Accelerated reports whether the context is GPU-backed.
func (c *GraphicsContext) Accelerated() bool {
	return c.gpu != nil
}

// Flush submits pending GPU work if the context is GPU-backed, and is a
// deliberate no-op otherwise. This makes Flush safe to call unconditionally
// by upper-layer code that does not know which back-end is active.
//
// Errors from the underlying sub-context are returned unmodified; the
// context neither retries nor wraps them. Returns ErrContextClosed after
// Close.
func (c *GraphicsContext) Flush() error {
	if c.closed {
		return ErrContextClosed
	}
	if c.gpu == nil {
		return nil
	}
	return c.gpu.Flush()
}

// Close releases the owned GPU sub-context, if any.
//
// The release is deterministic and happens exactly once: Close is idempotent,
// and no finalizer is involved. References previously obtained from
// Context3D must not be used after Close.
func (c *GraphicsContext) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if c.gpu != nil {
		c.gpu.Release()
	}
	return nil
}
