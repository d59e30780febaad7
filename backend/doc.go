// Package backend provides a pluggable rendering back-end abstraction.
//
// A back-end knows how to produce compositor.GraphicsContext instances for
// one rendering path. The software back-end is always available and is
// registered on import of this package; the GPU back-end is registered by
// importing the gpu3d package:
//
//	import _ "github.com/gogpu/compositor/gpu3d"
//
// # Back-end selection
//
// Use Default() to get the best available back-end, or Get() to request a
// specific one by name:
//
//	b := backend.Default()
//
//	b := backend.Get(backend.BackendSoftware)
//
// # Usage
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
// # Available back-ends
//
//   - "software": no GPU resources, Flush is a no-op (always available)
//   - "gpu": wgpu-backed accelerated contexts (requires gpu3d import and a
//     working adapter)
package backend
