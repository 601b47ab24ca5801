// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package glsl defines compile options for the GLSL backend of the
// native SPIRV-Cross compiler.
package glsl

import (
	"fmt"

	"github.com/gogpu/spirvcross/compile"
)

// Version represents a GLSL language version.
type Version struct {
	Major uint8
	Minor uint8
	ES    bool // true for GLSL ES (OpenGL ES / WebGL)
}

// Common GLSL versions.
var (
	// Desktop OpenGL versions
	Version110 = Version{Major: 1, Minor: 10}
	Version120 = Version{Major: 1, Minor: 20}
	Version330 = Version{Major: 3, Minor: 30}
	Version400 = Version{Major: 4, Minor: 0}
	Version410 = Version{Major: 4, Minor: 10}
	Version420 = Version{Major: 4, Minor: 20}
	Version430 = Version{Major: 4, Minor: 30}
	Version450 = Version{Major: 4, Minor: 50}
	Version460 = Version{Major: 4, Minor: 60}

	// OpenGL ES / WebGL versions
	VersionES100 = Version{Major: 1, Minor: 0, ES: true}
	VersionES300 = Version{Major: 3, Minor: 0, ES: true}
	VersionES310 = Version{Major: 3, Minor: 10, ES: true}
	VersionES320 = Version{Major: 3, Minor: 20, ES: true}
)

// Number returns the numeric version the #version directive carries,
// e.g. 330 for GLSL 3.30 and 300 for ES 3.0.
func (v Version) Number() uint32 {
	return uint32(v.Major)*100 + uint32(v.Minor)
}

// String returns the version as a GLSL version directive value.
func (v Version) String() string {
	if v.ES {
		return fmt.Sprintf("%d%02d es", v.Major, v.Minor)
	}
	return fmt.Sprintf("%d%02d", v.Major, v.Minor)
}

// Options configures GLSL output.
//
// Each field corresponds to a GLSL backend option of the native
// compiler; see DefaultOptions for the native defaults.
type Options struct {
	compile.CommonOptions

	// Version is the GLSL version to target.
	Version Version

	// VulkanSemantics emits Vulkan GLSL instead of plain GLSL, keeping
	// descriptor sets, push constants and subpass inputs as-is.
	VulkanSemantics bool

	// SeparateShaderObjects emits code usable with
	// GL_ARB_separate_shader_objects.
	SeparateShaderObjects bool

	// Enable420PackExtension allows use of GL_ARB_shading_language_420pack
	// for layout(binding) on versions before 4.20.
	Enable420PackExtension bool

	// SupportNonzeroBaseInstance emits a uniform fallback for
	// gl_BaseInstance on targets without it.
	SupportNonzeroBaseInstance bool

	// ESDefaultFloatPrecisionHighp uses highp instead of mediump as the
	// default float precision in ES fragment shaders.
	ESDefaultFloatPrecisionHighp bool

	// ESDefaultIntPrecisionHighp uses highp instead of mediump as the
	// default int precision in ES fragment shaders.
	ESDefaultIntPrecisionHighp bool

	// EmitPushConstantAsUniformBuffer emits push constant blocks as
	// plain uniform buffers.
	EmitPushConstantAsUniformBuffer bool

	// EmitUniformBufferAsPlainUniforms flattens uniform buffer blocks
	// into plain uniforms.
	EmitUniformBufferAsPlainUniforms bool

	// ForceFlattenedIOBlocks flattens stage input/output blocks.
	ForceFlattenedIOBlocks bool

	// OVRMultiviewViewCount declares GL_OVR_multiview usage with the
	// given view count. Zero disables multiview.
	OVRMultiviewViewCount uint32

	// DisableRowMajorLoadWorkaround disables the workaround for loading
	// row-major matrices as a whole on buggy drivers. The workaround is
	// enabled by default in the native library.
	DisableRowMajorLoadWorkaround bool
}

// DefaultOptions returns options matching the native compiler defaults:
// desktop GLSL 4.50 with the 420pack extension and nonzero base
// instance support enabled.
func DefaultOptions() Options {
	return Options{
		Version:                    Version450,
		Enable420PackExtension:     true,
		SupportNonzeroBaseInstance: true,
		ESDefaultIntPrecisionHighp: true,
	}
}
