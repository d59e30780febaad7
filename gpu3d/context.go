//go:build !nogpu

package gpu3d

import (
	"fmt"
	"time"

	"github.com/gogpu/compositor"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// flushTimeout is the maximum time to wait for submitted GPU work.
const flushTimeout = 5 * time.Second

// Context is a GPU sub-context backed by gogpu/wgpu.
//
// It satisfies compositor.Context3D and is intended to be handed to
// compositor.NewAcceleratedContext, which becomes its sole owner. Callers
// that need to issue work directly use Submit to queue command buffers;
// Flush submits everything queued since the previous flush and waits for
// the GPU to finish.
//
// Context is NOT safe for concurrent use, matching the single-caller
// contract of the graphics context that owns it.
type Context struct {
	instance hal.Instance
	device   hal.Device
	queue    hal.Queue
	shader   hal.ShaderModule

	// pending command buffers queued via Submit, dispatched on Flush.
	pending []hal.CommandBuffer

	// externalDevice is set when the device is shared in from a host
	// application; shared resources are not destroyed on Release.
	externalDevice bool

	info     string
	released bool
}

// New creates a standalone GPU sub-context with its own Vulkan device.
//
// This is the path for a compositor that owns its GPU resources outright.
// When embedding in a host application that already has a device, use
// NewFromProvider instead so the device is shared rather than duplicated.
//
// Returns an error if no usable GPU adapter is found.
func New() (*Context, error) {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, fmt.Errorf("gpu3d: vulkan backend not available")
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("gpu3d: create instance: %w", err)
	}

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, fmt.Errorf("gpu3d: no GPU adapters found")
	}

	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("gpu3d: open device: %w", err)
	}

	ctx := &Context{
		instance: instance,
		device:   openDev.Device,
		queue:    openDev.Queue,
		info:     selected.Info.Name,
	}

	if err := ctx.initShader(); err != nil {
		ctx.Release()
		return nil, err
	}

	compositor.Logger().Info("gpu3d: GPU sub-context initialized (standalone)",
		"adapter", ctx.info)
	return ctx, nil
}

// NewFromProvider creates a GPU sub-context on a device shared in from a
// host application.
//
// The provider must expose HAL types via HalDevice() any and HalQueue() any
// (the gpucontext.HalProvider contract). Shared resources stay owned by the
// host: Release drops the references without destroying them.
func NewFromProvider(handle compositor.DeviceHandle) (*Context, error) {
	if handle == nil {
		return nil, fmt.Errorf("gpu3d: nil device handle")
	}

	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := handle.(halProvider)
	if !ok {
		return nil, fmt.Errorf("gpu3d: provider does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("gpu3d: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("gpu3d: provider HalQueue is not hal.Queue")
	}

	ctx := &Context{
		device:         device,
		queue:          queue,
		externalDevice: true,
		info:           "shared device",
	}

	if err := ctx.initShader(); err != nil {
		ctx.Release()
		return nil, err
	}

	compositor.Logger().Debug("gpu3d: GPU sub-context initialized (shared device)")
	return ctx, nil
}

// Info returns a description of the selected GPU adapter.
func (c *Context) Info() string {
	return c.info
}

// Device returns the underlying HAL device. Borrowed reference: callers
// must not destroy it.
func (c *Context) Device() hal.Device {
	return c.device
}

// Queue returns the underlying HAL queue. Borrowed reference.
func (c *Context) Queue() hal.Queue {
	return c.queue
}

// Submit queues command buffers for dispatch on the next Flush.
func (c *Context) Submit(buffers ...hal.CommandBuffer) {
	c.pending = append(c.pending, buffers...)
}

// Pending returns the number of command buffers queued since the last Flush.
func (c *Context) Pending() int {
	return len(c.pending)
}

// Flush submits all queued command buffers and waits for the GPU to finish
// executing them. With nothing queued, Flush submits an empty batch so the
// call still acts as a synchronization point.
func (c *Context) Flush() error {
	if c.released {
		return fmt.Errorf("gpu3d: context released")
	}

	fence, err := c.device.CreateFence()
	if err != nil {
		return fmt.Errorf("gpu3d: create fence: %w", err)
	}
	defer c.device.DestroyFence(fence)

	buffers := c.pending
	c.pending = nil

	if err := c.queue.Submit(buffers, fence, 1); err != nil {
		return fmt.Errorf("gpu3d: submit: %w", err)
	}

	ok, err := c.device.Wait(fence, 1, flushTimeout)
	if err != nil {
		return fmt.Errorf("gpu3d: wait for GPU: %w", err)
	}
	if !ok {
		return fmt.Errorf("gpu3d: GPU timeout after %v", flushTimeout)
	}

	compositor.Logger().Debug("gpu3d: flush complete", "buffers", len(buffers))
	return nil
}

// Release destroys the sub-context and frees its GPU resources. Resources
// shared in from a host are dropped but not destroyed. Safe to call more
// than once; only the first call releases anything.
func (c *Context) Release() {
	if c.released {
		return
	}
	c.released = true
	c.pending = nil

	if c.shader != nil && c.device != nil {
		c.device.DestroyShaderModule(c.shader)
		c.shader = nil
	}

	if !c.externalDevice {
		if c.device != nil {
			c.device.Destroy()
		}
		if c.instance != nil {
			c.instance.Destroy()
		}
	}
	c.device = nil
	c.queue = nil
	c.instance = nil
}

// Ensure Context implements compositor.Context3D.
var _ compositor.Context3D = (*Context)(nil)
