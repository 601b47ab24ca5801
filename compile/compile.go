// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package compile holds cross-compilation option types shared by every
// output target.
//
// The per-target packages (glsl, hlsl, msl) embed CommonOptions in their
// own Options structs. The root spirvcross package translates the fields
// into SPIRV-Cross compiler option settings when a shader is compiled.
package compile

// CommonOptions are options honored by every backend of the native
// compiler.
//
// The zero value matches the native defaults, so constructing a target
// Options struct literal without touching CommonOptions is always valid.
type CommonOptions struct {
	// ForceTemporary forces the compiler to emit temporary variables
	// instead of forwarding expressions, producing more literal output.
	ForceTemporary bool

	// FlattenMultidimensionalArrays flattens multidimensional arrays,
	// e.g. float[a][b][c] into a single-dimension array.
	FlattenMultidimensionalArrays bool

	// FixupDepthConvention adjusts gl_Position.z for targets whose clip
	// space depth range differs from the source convention.
	FixupDepthConvention bool

	// FlipVertexY inverts gl_Position.y or its equivalent.
	FlipVertexY bool

	// EmitLineDirectives emits #line directives mapping output lines back
	// to the SPIR-V OpLine debug information, when present.
	EmitLineDirectives bool

	// DisableStorageImageQualifierDeduction stops the compiler from
	// deducing readonly/writeonly qualifiers for storage images the
	// SPIR-V does not declare. Deduction is on by default in the native
	// library.
	DisableStorageImageQualifierDeduction bool

	// ForceZeroInitializedVariables zero-initializes temporaries and
	// local variables that SPIR-V leaves undefined.
	ForceZeroInitializedVariables bool

	// RelaxNaNChecks emits NaN-unaware code such as plain min/max and
	// ordinary comparisons where SPIR-V semantics would demand NaN
	// propagation checks.
	RelaxNaNChecks bool
}
