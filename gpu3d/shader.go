//go:build !nogpu

package gpu3d

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

//go:embed shaders/composite.wgsl
var compositeShaderWGSL string

// compileToSPIRV compiles WGSL source to a SPIR-V uint32 slice.
func compileToSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("gpu3d: compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	return spirvCode, nil
}

// initShader compiles the composite shader and creates its module on the
// device. Compiling up front surfaces driver problems at construction time
// rather than mid-frame.
func (c *Context) initShader() error {
	spirv, err := compileToSPIRV(compositeShaderWGSL)
	if err != nil {
		return err
	}

	module, err := c.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: "compositor-composite",
		Source: hal.ShaderSource{
			SPIRV: spirv,
		},
	})
	if err != nil {
		return fmt.Errorf("gpu3d: create shader module: %w", err)
	}
	c.shader = module
	return nil
}
