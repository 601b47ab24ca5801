// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package spv defines SPIR-V enumerations used by the reflection API.
//
// The values mirror the SPIR-V specification and are interchangeable with
// the Spv* enums of spirv.h, so they can be passed through the C API
// without translation tables.
package spv

// ExecutionModel is the pipeline stage a SPIR-V entry point executes in.
type ExecutionModel uint32

// Execution models, per the SPIR-V specification.
const (
	ExecutionModelVertex                 ExecutionModel = 0
	ExecutionModelTessellationControl    ExecutionModel = 1
	ExecutionModelTessellationEvaluation ExecutionModel = 2
	ExecutionModelGeometry               ExecutionModel = 3
	ExecutionModelFragment               ExecutionModel = 4
	ExecutionModelGLCompute              ExecutionModel = 5
	ExecutionModelKernel                 ExecutionModel = 6
	ExecutionModelTaskNV                 ExecutionModel = 5267
	ExecutionModelMeshNV                 ExecutionModel = 5268
	ExecutionModelRayGenerationKHR       ExecutionModel = 5313
	ExecutionModelIntersectionKHR        ExecutionModel = 5314
	ExecutionModelAnyHitKHR              ExecutionModel = 5315
	ExecutionModelClosestHitKHR          ExecutionModel = 5316
	ExecutionModelMissKHR                ExecutionModel = 5317
	ExecutionModelCallableKHR            ExecutionModel = 5318
	ExecutionModelTaskEXT                ExecutionModel = 5364
	ExecutionModelMeshEXT                ExecutionModel = 5365

	// ExecutionModelMax is the sentinel the C API uses for "no model".
	ExecutionModelMax ExecutionModel = 0x7fffffff
)

// String returns the SPIR-V name of the execution model.
func (m ExecutionModel) String() string {
	switch m {
	case ExecutionModelVertex:
		return "Vertex"
	case ExecutionModelTessellationControl:
		return "TessellationControl"
	case ExecutionModelTessellationEvaluation:
		return "TessellationEvaluation"
	case ExecutionModelGeometry:
		return "Geometry"
	case ExecutionModelFragment:
		return "Fragment"
	case ExecutionModelGLCompute:
		return "GLCompute"
	case ExecutionModelKernel:
		return "Kernel"
	case ExecutionModelTaskNV:
		return "TaskNV"
	case ExecutionModelMeshNV:
		return "MeshNV"
	case ExecutionModelRayGenerationKHR:
		return "RayGenerationKHR"
	case ExecutionModelIntersectionKHR:
		return "IntersectionKHR"
	case ExecutionModelAnyHitKHR:
		return "AnyHitKHR"
	case ExecutionModelClosestHitKHR:
		return "ClosestHitKHR"
	case ExecutionModelMissKHR:
		return "MissKHR"
	case ExecutionModelCallableKHR:
		return "CallableKHR"
	case ExecutionModelTaskEXT:
		return "TaskEXT"
	case ExecutionModelMeshEXT:
		return "MeshEXT"
	default:
		return "Unknown"
	}
}

// ExecutionMode is a mode attached to a SPIR-V entry point.
type ExecutionMode uint32

// Execution modes, per the SPIR-V specification.
const (
	ExecutionModeInvocations             ExecutionMode = 0
	ExecutionModeSpacingEqual            ExecutionMode = 1
	ExecutionModeSpacingFractionalEven   ExecutionMode = 2
	ExecutionModeSpacingFractionalOdd    ExecutionMode = 3
	ExecutionModeVertexOrderCw           ExecutionMode = 4
	ExecutionModeVertexOrderCcw          ExecutionMode = 5
	ExecutionModePixelCenterInteger      ExecutionMode = 6
	ExecutionModeOriginUpperLeft         ExecutionMode = 7
	ExecutionModeOriginLowerLeft         ExecutionMode = 8
	ExecutionModeEarlyFragmentTests      ExecutionMode = 9
	ExecutionModePointMode               ExecutionMode = 10
	ExecutionModeXfb                     ExecutionMode = 11
	ExecutionModeDepthReplacing          ExecutionMode = 12
	ExecutionModeDepthGreater            ExecutionMode = 14
	ExecutionModeDepthLess               ExecutionMode = 15
	ExecutionModeDepthUnchanged          ExecutionMode = 16
	ExecutionModeLocalSize               ExecutionMode = 17
	ExecutionModeLocalSizeHint           ExecutionMode = 18
	ExecutionModeInputPoints             ExecutionMode = 19
	ExecutionModeInputLines              ExecutionMode = 20
	ExecutionModeInputLinesAdjacency     ExecutionMode = 21
	ExecutionModeTriangles               ExecutionMode = 22
	ExecutionModeInputTrianglesAdjacency ExecutionMode = 23
	ExecutionModeQuads                   ExecutionMode = 24
	ExecutionModeIsolines                ExecutionMode = 25
	ExecutionModeOutputVertices          ExecutionMode = 26
	ExecutionModeOutputPoints            ExecutionMode = 27
	ExecutionModeOutputLineStrip         ExecutionMode = 28
	ExecutionModeOutputTriangleStrip     ExecutionMode = 29
	ExecutionModeVecTypeHint             ExecutionMode = 30
	ExecutionModeContractionOff          ExecutionMode = 31
	ExecutionModeInitializer             ExecutionMode = 33
	ExecutionModeFinalizer               ExecutionMode = 34
	ExecutionModeSubgroupSize            ExecutionMode = 35
	ExecutionModeSubgroupsPerWorkgroup   ExecutionMode = 36
	ExecutionModeSubgroupsPerWorkgroupID ExecutionMode = 37
	ExecutionModeLocalSizeID             ExecutionMode = 38
	ExecutionModeLocalSizeHintID         ExecutionMode = 39
	ExecutionModeOutputPrimitivesEXT     ExecutionMode = 5270
)
