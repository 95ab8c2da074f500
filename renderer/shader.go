// Copyright 2026 The vgo Authors
// SPDX-License-Identifier: MIT

package renderer

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

//go:embed shaders/vgo.wgsl
var shaderSource string

// compileShaderToSPIRV compiles the WGSL source to SPIR-V words. Going
// through SPIR-V instead of handing WGSL to the backend keeps shader
// errors at pipeline creation time instead of first draw.
func compileShaderToSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("compile shader: %w", err)
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

func createShaderModule(device hal.Device) (hal.ShaderModule, error) {
	if shaderSource == "" {
		return nil, fmt.Errorf("renderer: embedded shader source is empty")
	}
	spirv, err := compileShaderToSPIRV(shaderSource)
	if err != nil {
		return nil, err
	}
	return device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "vgo_shader",
		Source: hal.ShaderSource{SPIRV: spirv},
	})
}
