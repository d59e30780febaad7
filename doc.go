// Package compositor provides the graphics-context layer of a compositing
// pipeline: one handle type that upper layers use to submit rendering work
// without knowing whether a software or a GPU-accelerated back-end is active.
//
// # Overview
//
// The central type is [GraphicsContext]. It is constructed in exactly one of
// two modes and never changes mode afterward:
//
//   - [NewSoftwareContext] creates a software-only context. It owns no GPU
//     resources and its Flush is a deliberate no-op.
//   - [NewAcceleratedContext] creates a GPU-backed context. It takes exclusive
//     ownership of a [Context3D] — the GPU sub-context that issues draw and
//     submit commands to the device — and releases it on Close.
//
// Upper layers hold one *GraphicsContext per rendering surface and call Flush
// once per submitted frame:
//
//	b, err := backend.InitDefault()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer b.Close()
//
//	ctx, err := b.NewGraphicsContext()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ctx.Close()
//
//	// per frame:
//	if err := ctx.Flush(); err != nil {
//	    log.Printf("flush failed: %v", err)
//	}
//
// # Back-end selection
//
// The backend package provides a registry of back-ends that produce
// GraphicsContexts. The software back-end is always available; the GPU
// back-end is registered by importing the gpu3d package:
//
//	import _ "github.com/gogpu/compositor/gpu3d"
//
// # Ownership
//
// A GraphicsContext exclusively owns its GPU sub-context. The reference
// returned by [GraphicsContext.Context3D] is borrowed: callers may issue
// calls through it but must not release it or retain it past Close.
// GraphicsContext must not be copied; pass the pointer.
//
// # Thread safety
//
// GraphicsContext performs no internal synchronization. Use each instance
// from a single goroutine, or provide external synchronization. This follows
// from exclusive ownership: there is never more than one owner of the GPU
// sub-context, so there is nothing for the context itself to lock.
//
// # Logging
//
// The package produces no log output by default. Call [SetLogger] to enable
// structured logging of back-end selection and resource lifecycle events.
package compositor
