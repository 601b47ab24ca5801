// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package msl defines compile options for the MSL (Metal Shading
// Language) backend of the native SPIRV-Cross compiler.
package msl

import (
	"fmt"

	"github.com/gogpu/spirvcross/compile"
)

// Version represents an MSL language version.
type Version struct {
	Major uint8
	Minor uint8
	Patch uint8
}

// Common MSL versions.
var (
	Version1_2 = Version{Major: 1, Minor: 2}
	Version2_0 = Version{Major: 2, Minor: 0}
	Version2_1 = Version{Major: 2, Minor: 1}
	Version2_2 = Version{Major: 2, Minor: 2}
	Version2_3 = Version{Major: 2, Minor: 3}
	Version2_4 = Version{Major: 2, Minor: 4}
	Version3_0 = Version{Major: 3, Minor: 0}
)

// Packed returns the version in the encoding the native compiler
// consumes: major*10000 + minor*100 + patch.
func (v Version) Packed() uint32 {
	return uint32(v.Major)*10000 + uint32(v.Minor)*100 + uint32(v.Patch)
}

// String returns the version as "major.minor" or "major.minor.patch".
func (v Version) String() string {
	if v.Patch == 0 {
		return fmt.Sprintf("%d.%d", v.Major, v.Minor)
	}
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Platform selects the Metal platform the output targets.
type Platform uint32

// Metal platforms. The values match the native enumeration.
const (
	PlatformIOS   Platform = 0
	PlatformMacOS Platform = 1
)

// String returns the platform name.
func (p Platform) String() string {
	switch p {
	case PlatformIOS:
		return "iOS"
	case PlatformMacOS:
		return "macOS"
	default:
		return "Unknown"
	}
}

// Options configures MSL output.
//
// Buffer index fields assign fixed [[buffer(n)]] bindings to the
// auxiliary buffers the backend may synthesize; they are only consulted
// when the corresponding feature is active.
type Options struct {
	compile.CommonOptions

	// LangVersion is the target MSL version.
	LangVersion Version

	// Platform is the Metal platform to target.
	Platform Platform

	// ArgumentBuffers uses Metal argument buffers for resource binding
	// instead of discrete bindings.
	ArgumentBuffers bool

	// TexelBufferTextureWidth is the width of the 2D texture used to
	// emulate texel buffers.
	TexelBufferTextureWidth uint32

	// SwizzleTextureSamples injects swizzle-aware sampling code driven
	// by the swizzle buffer.
	SwizzleTextureSamples bool

	// DisablePointSizeBuiltin drops the point size builtin output.
	// Emission is on by default in the native library.
	DisablePointSizeBuiltin bool

	// PadFragmentOutputComponents pads fragment outputs to four
	// components.
	PadFragmentOutputComponents bool

	// CaptureOutputToBuffer redirects vertex outputs into a buffer,
	// used for transform-feedback style capture.
	CaptureOutputToBuffer bool

	// EmulateCubemapArray emulates cube array textures with 2D arrays,
	// for platforms without native support.
	EmulateCubemapArray bool

	// Multiview enables multiview rendering support.
	Multiview bool

	// ViewIndexFromDeviceIndex sources the view index from the device
	// index instead of the view range.
	ViewIndexFromDeviceIndex bool

	// DispatchBase adds a base-group parameter to compute shaders to
	// support dispatchThreadgroups with a nonzero origin.
	DispatchBase bool

	// ForceActiveArgumentBufferResources keeps all resources in an
	// argument buffer alive, even unused ones.
	ForceActiveArgumentBufferResources bool

	// ForceNativeArrays emits plain MSL arrays instead of the template
	// array wrapper.
	ForceNativeArrays bool

	// SwizzleBufferIndex is the binding for the texture swizzle buffer.
	SwizzleBufferIndex uint32

	// IndirectParamsBufferIndex is the binding for the indirect
	// parameters buffer.
	IndirectParamsBufferIndex uint32

	// ShaderOutputBufferIndex is the binding for the captured output
	// buffer.
	ShaderOutputBufferIndex uint32
}

// DefaultOptions returns options matching the native compiler defaults:
// MSL 1.2 for macOS with discrete resource bindings.
func DefaultOptions() Options {
	return Options{
		LangVersion:               Version1_2,
		Platform:                  PlatformMacOS,
		TexelBufferTextureWidth:   4096,
		SwizzleBufferIndex:        30,
		IndirectParamsBufferIndex: 29,
		ShaderOutputBufferIndex:   28,
	}
}
