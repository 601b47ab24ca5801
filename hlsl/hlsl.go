// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package hlsl defines compile options for the HLSL backend of the
// native SPIRV-Cross compiler.
package hlsl

import (
	"fmt"

	"github.com/gogpu/spirvcross/compile"
)

// ShaderModel represents a DirectX Shader Model version.
type ShaderModel uint32

// Supported Shader Model versions. The numeric value is the form the
// native compiler consumes (major*10 + minor).
const (
	// ShaderModel3_0 targets legacy DirectX 9 profiles.
	ShaderModel3_0 ShaderModel = 30

	// ShaderModel4_0 targets DirectX 10.
	ShaderModel4_0 ShaderModel = 40

	// ShaderModel5_0 targets DirectX 11.
	ShaderModel5_0 ShaderModel = 50

	// ShaderModel5_1 provides improved resource binding.
	ShaderModel5_1 ShaderModel = 51

	// ShaderModel6_0 introduces wave intrinsics and DXIL.
	ShaderModel6_0 ShaderModel = 60
)

// String returns a human-readable representation of the shader model.
// Example: "SM 5.1", "SM 6.0"
func (sm ShaderModel) String() string {
	return fmt.Sprintf("SM %d.%d", uint32(sm)/10, uint32(sm)%10)
}

// RootConstants describes a root constant range mapped onto a push
// constant block byte range.
type RootConstants struct {
	// Start is the first byte of the range.
	Start uint32

	// End is one past the last byte of the range.
	End uint32

	// Binding is the register binding for the range.
	Binding uint32

	// Space is the register space for the range.
	Space uint32
}

// VertexAttributeRemap maps a vertex input location to a custom HLSL
// semantic instead of the default TEXCOORD#.
type VertexAttributeRemap struct {
	// Location is the SPIR-V input location to remap.
	Location uint32

	// Semantic is the HLSL semantic name to emit.
	Semantic string
}

// Options configures HLSL output.
type Options struct {
	compile.CommonOptions

	// ShaderModel is the target shader model.
	ShaderModel ShaderModel

	// PointSizeCompat silently ignores PointSize instead of failing,
	// for pipelines that never read it.
	PointSizeCompat bool

	// PointCoordCompat substitutes a zero vector for PointCoord instead
	// of failing.
	PointCoordCompat bool

	// SupportNonzeroBaseVertexBaseInstance emits cbuffer-backed
	// gl_BaseVertex/gl_BaseInstance equivalents.
	SupportNonzeroBaseVertexBaseInstance bool

	// ForceStorageBufferAsUAV emits all storage buffers as UAVs, even
	// ones declared read-only.
	ForceStorageBufferAsUAV bool

	// NonwritableUAVTextureAsSRV emits storage images that are never
	// written to as SRVs instead of UAVs.
	NonwritableUAVTextureAsSRV bool

	// Enable16BitTypes uses native 16-bit types. Requires SM 6.2.
	Enable16BitTypes bool

	// FlattenMatrixVertexInputSemantics flattens matrix vertex inputs
	// into one semantic per column.
	FlattenMatrixVertexInputSemantics bool

	// UseEntryPointName emits the SPIR-V entry point name instead of
	// renaming the entry point to main.
	UseEntryPointName bool

	// PreserveStructuredBuffers keeps StructuredBuffer declarations
	// instead of lowering them to ByteAddressBuffer.
	PreserveStructuredBuffers bool
}

// DefaultOptions returns options matching the native compiler defaults:
// Shader Model 3.0, no compatibility workarounds.
func DefaultOptions() Options {
	return Options{
		ShaderModel: ShaderModel3_0,
	}
}
