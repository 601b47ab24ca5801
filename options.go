// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package spirvcross

/*
#include <spirv_cross_c.h>
*/
import "C"

import (
	"github.com/gogpu/spirvcross/compile"
	"github.com/gogpu/spirvcross/glsl"
	"github.com/gogpu/spirvcross/hlsl"
	"github.com/gogpu/spirvcross/msl"
)

// optionSet wraps a native compiler options object during population.
type optionSet struct {
	c   *Compiler
	ptr C.spvc_compiler_options
	err error
}

func (c *Compiler) newOptionSet() (*optionSet, error) {
	var ptr C.spvc_compiler_options
	res := C.spvc_compiler_create_compiler_options(c.ptr, &ptr)
	if err := c.ctx.ok(res, "create compiler options"); err != nil {
		return nil, err
	}
	return &optionSet{c: c, ptr: ptr}, nil
}

func (s *optionSet) setBool(opt C.spvc_compiler_option, v bool) {
	if s.err != nil {
		return
	}
	b := C.spvc_bool(C.SPVC_FALSE)
	if v {
		b = C.spvc_bool(C.SPVC_TRUE)
	}
	s.err = s.c.ctx.ok(C.spvc_compiler_options_set_bool(s.ptr, opt, b), "set option")
}

func (s *optionSet) setUint(opt C.spvc_compiler_option, v uint32) {
	if s.err != nil {
		return
	}
	s.err = s.c.ctx.ok(C.spvc_compiler_options_set_uint(s.ptr, opt, C.uint(v)), "set option")
}

func (s *optionSet) install() error {
	if s.err != nil {
		return s.err
	}
	return s.c.ctx.ok(C.spvc_compiler_install_compiler_options(s.c.ptr, s.ptr), "install compiler options")
}

func (s *optionSet) common(o compile.CommonOptions) {
	s.setBool(C.SPVC_COMPILER_OPTION_FORCE_TEMPORARY, o.ForceTemporary)
	s.setBool(C.SPVC_COMPILER_OPTION_FLATTEN_MULTIDIMENSIONAL_ARRAYS, o.FlattenMultidimensionalArrays)
	s.setBool(C.SPVC_COMPILER_OPTION_FIXUP_DEPTH_CONVENTION, o.FixupDepthConvention)
	s.setBool(C.SPVC_COMPILER_OPTION_FLIP_VERTEX_Y, o.FlipVertexY)
	s.setBool(C.SPVC_COMPILER_OPTION_EMIT_LINE_DIRECTIVES, o.EmitLineDirectives)
	s.setBool(C.SPVC_COMPILER_OPTION_ENABLE_STORAGE_IMAGE_QUALIFIER_DEDUCTION, !o.DisableStorageImageQualifierDeduction)
	s.setBool(C.SPVC_COMPILER_OPTION_FORCE_ZERO_INITIALIZED_VARIABLES, o.ForceZeroInitializedVariables)
	s.setBool(C.SPVC_COMPILER_OPTION_RELAX_NAN_CHECKS, o.RelaxNaNChecks)
}

func (c *Compiler) installGLSL(o glsl.Options) error {
	s, err := c.newOptionSet()
	if err != nil {
		return err
	}
	s.common(o.CommonOptions)
	s.setUint(C.SPVC_COMPILER_OPTION_GLSL_VERSION, o.Version.Number())
	s.setBool(C.SPVC_COMPILER_OPTION_GLSL_ES, o.Version.ES)
	s.setBool(C.SPVC_COMPILER_OPTION_GLSL_VULKAN_SEMANTICS, o.VulkanSemantics)
	s.setBool(C.SPVC_COMPILER_OPTION_GLSL_SEPARATE_SHADER_OBJECTS, o.SeparateShaderObjects)
	s.setBool(C.SPVC_COMPILER_OPTION_GLSL_ENABLE_420PACK_EXTENSION, o.Enable420PackExtension)
	s.setBool(C.SPVC_COMPILER_OPTION_GLSL_SUPPORT_NONZERO_BASE_INSTANCE, o.SupportNonzeroBaseInstance)
	s.setBool(C.SPVC_COMPILER_OPTION_GLSL_ES_DEFAULT_FLOAT_PRECISION_HIGHP, o.ESDefaultFloatPrecisionHighp)
	s.setBool(C.SPVC_COMPILER_OPTION_GLSL_ES_DEFAULT_INT_PRECISION_HIGHP, o.ESDefaultIntPrecisionHighp)
	s.setBool(C.SPVC_COMPILER_OPTION_GLSL_EMIT_PUSH_CONSTANT_AS_UNIFORM_BUFFER, o.EmitPushConstantAsUniformBuffer)
	s.setBool(C.SPVC_COMPILER_OPTION_GLSL_EMIT_UNIFORM_BUFFER_AS_PLAIN_UNIFORMS, o.EmitUniformBufferAsPlainUniforms)
	s.setBool(C.SPVC_COMPILER_OPTION_GLSL_FORCE_FLATTENED_IO_BLOCKS, o.ForceFlattenedIOBlocks)
	s.setUint(C.SPVC_COMPILER_OPTION_GLSL_OVR_MULTIVIEW_VIEW_COUNT, o.OVRMultiviewViewCount)
	s.setBool(C.SPVC_COMPILER_OPTION_GLSL_ENABLE_ROW_MAJOR_LOAD_WORKAROUND, !o.DisableRowMajorLoadWorkaround)
	return s.install()
}

func (c *Compiler) installHLSL(o hlsl.Options) error {
	s, err := c.newOptionSet()
	if err != nil {
		return err
	}
	s.common(o.CommonOptions)
	s.setUint(C.SPVC_COMPILER_OPTION_HLSL_SHADER_MODEL, uint32(o.ShaderModel))
	s.setBool(C.SPVC_COMPILER_OPTION_HLSL_POINT_SIZE_COMPAT, o.PointSizeCompat)
	s.setBool(C.SPVC_COMPILER_OPTION_HLSL_POINT_COORD_COMPAT, o.PointCoordCompat)
	s.setBool(C.SPVC_COMPILER_OPTION_HLSL_SUPPORT_NONZERO_BASE_VERTEX_BASE_INSTANCE, o.SupportNonzeroBaseVertexBaseInstance)
	s.setBool(C.SPVC_COMPILER_OPTION_HLSL_FORCE_STORAGE_BUFFER_AS_UAV, o.ForceStorageBufferAsUAV)
	s.setBool(C.SPVC_COMPILER_OPTION_HLSL_NONWRITABLE_UAV_TEXTURE_AS_SRV, o.NonwritableUAVTextureAsSRV)
	s.setBool(C.SPVC_COMPILER_OPTION_HLSL_ENABLE_16BIT_TYPES, o.Enable16BitTypes)
	s.setBool(C.SPVC_COMPILER_OPTION_HLSL_FLATTEN_MATRIX_VERTEX_INPUT_SEMANTICS, o.FlattenMatrixVertexInputSemantics)
	s.setBool(C.SPVC_COMPILER_OPTION_HLSL_USE_ENTRY_POINT_NAME, o.UseEntryPointName)
	s.setBool(C.SPVC_COMPILER_OPTION_HLSL_PRESERVE_STRUCTURED_BUFFERS, o.PreserveStructuredBuffers)
	return s.install()
}

func (c *Compiler) installMSL(o msl.Options) error {
	s, err := c.newOptionSet()
	if err != nil {
		return err
	}
	s.common(o.CommonOptions)
	s.setUint(C.SPVC_COMPILER_OPTION_MSL_VERSION, o.LangVersion.Packed())
	s.setUint(C.SPVC_COMPILER_OPTION_MSL_PLATFORM, uint32(o.Platform))
	s.setBool(C.SPVC_COMPILER_OPTION_MSL_ARGUMENT_BUFFERS, o.ArgumentBuffers)
	s.setUint(C.SPVC_COMPILER_OPTION_MSL_TEXEL_BUFFER_TEXTURE_WIDTH, o.TexelBufferTextureWidth)
	s.setBool(C.SPVC_COMPILER_OPTION_MSL_SWIZZLE_TEXTURE_SAMPLES, o.SwizzleTextureSamples)
	s.setBool(C.SPVC_COMPILER_OPTION_MSL_ENABLE_POINT_SIZE_BUILTIN, !o.DisablePointSizeBuiltin)
	s.setBool(C.SPVC_COMPILER_OPTION_MSL_PAD_FRAGMENT_OUTPUT_COMPONENTS, o.PadFragmentOutputComponents)
	s.setBool(C.SPVC_COMPILER_OPTION_MSL_CAPTURE_OUTPUT_TO_BUFFER, o.CaptureOutputToBuffer)
	s.setBool(C.SPVC_COMPILER_OPTION_MSL_EMULATE_CUBEMAP_ARRAY, o.EmulateCubemapArray)
	s.setBool(C.SPVC_COMPILER_OPTION_MSL_MULTIVIEW, o.Multiview)
	s.setBool(C.SPVC_COMPILER_OPTION_MSL_VIEW_INDEX_FROM_DEVICE_INDEX, o.ViewIndexFromDeviceIndex)
	s.setBool(C.SPVC_COMPILER_OPTION_MSL_DISPATCH_BASE, o.DispatchBase)
	s.setBool(C.SPVC_COMPILER_OPTION_MSL_FORCE_ACTIVE_ARGUMENT_BUFFER_RESOURCES, o.ForceActiveArgumentBufferResources)
	s.setBool(C.SPVC_COMPILER_OPTION_MSL_FORCE_NATIVE_ARRAYS, o.ForceNativeArrays)
	s.setUint(C.SPVC_COMPILER_OPTION_MSL_SWIZZLE_BUFFER_INDEX, o.SwizzleBufferIndex)
	s.setUint(C.SPVC_COMPILER_OPTION_MSL_INDIRECT_PARAMS_BUFFER_INDEX, o.IndirectParamsBufferIndex)
	s.setUint(C.SPVC_COMPILER_OPTION_MSL_SHADER_OUTPUT_BUFFER_INDEX, o.ShaderOutputBufferIndex)
	return s.install()
}
