//go:build !nogpu

// Package gpu3d provides the wgpu-backed GPU sub-context for the compositor.
//
// [Context] implements compositor.Context3D on top of gogpu/wgpu's hardware
// abstraction layer. It owns the GPU instance, device and queue (unless they
// are shared in from a host application via [NewFromProvider]), accumulates
// command buffers through [Context.Submit], and submits them with a fence
// wait on Flush.
//
// Importing this package registers the "gpu" back-end with the backend
// registry:
//
//	import _ "github.com/gogpu/compositor/gpu3d"
//
// Build with the nogpu tag to exclude GPU support entirely.
package gpu3d
