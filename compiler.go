// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package spirvcross

/*
#include <stdlib.h>
#include <spirv_cross_c.h>
#include "native/spirv_cross_c_ext.h"
*/
import "C"

import (
	"unsafe"

	"github.com/gogpu/spirvcross/spv"
)

// Compiler is an instance of the native compiler, bound to one parsed
// SPIR-V module and one output target. Instances are created with
// Context.CreateCompiler and become unusable once the context is
// closed.
type Compiler struct {
	ctx    *Context
	ptr    C.spvc_compiler
	target Target
}

// Target returns the output backend the compiler was created for.
func (c *Compiler) Target() Target {
	return c.target
}

func (c *Compiler) alive() error {
	return c.ctx.alive()
}

// AddHeaderLine adds a line emitted verbatim at the top of the
// compiled output, after the version directive.
func (c *Compiler) AddHeaderLine(line string) error {
	if err := c.alive(); err != nil {
		return err
	}
	cs := C.CString(line)
	defer C.free(unsafe.Pointer(cs))
	return c.ctx.ok(C.spvc_compiler_add_header_line(c.ptr, cs), "add header line")
}

// RequireExtension forces the output to declare the given target
// language extension.
func (c *Compiler) RequireExtension(ext string) error {
	if err := c.alive(); err != nil {
		return err
	}
	cs := C.CString(ext)
	defer C.free(unsafe.Pointer(cs))
	return c.ctx.ok(C.spvc_compiler_require_extension(c.ptr, cs), "require extension")
}

// FlattenBufferBlock flattens the given buffer block variable into a
// plain array, for targets without uniform block support.
func (c *Compiler) FlattenBufferBlock(block Handle[VariableID]) error {
	if err := c.alive(); err != nil {
		return err
	}
	id, err := yieldID(c, block)
	if err != nil {
		return err
	}
	return c.ctx.ok(C.spvc_compiler_flatten_buffer_block(c.ptr, C.spvc_variable_id(id)), "flatten buffer block")
}

// MaskStageOutputByLocation removes the stage output at the given
// location and component from the compiled output.
func (c *Compiler) MaskStageOutputByLocation(location, component uint32) error {
	if err := c.alive(); err != nil {
		return err
	}
	res := C.spvc_compiler_mask_stage_output_by_location(c.ptr, C.uint(location), C.uint(component))
	return c.ctx.ok(res, "mask stage output")
}

// MaskStageOutputByBuiltin removes the given built-in stage output
// from the compiled output.
func (c *Compiler) MaskStageOutputByBuiltin(builtin spv.BuiltIn) error {
	if err := c.alive(); err != nil {
		return err
	}
	res := C.spvc_compiler_mask_stage_output_by_builtin(c.ptr, C.SpvBuiltIn(builtin))
	return c.ctx.ok(res, "mask stage output")
}

// VariableIsDepthOrCompare reports whether the variable is a depth or
// comparison sampler resource.
func (c *Compiler) VariableIsDepthOrCompare(variable Handle[VariableID]) (bool, error) {
	if err := c.alive(); err != nil {
		return false, err
	}
	id, err := yieldID(c, variable)
	if err != nil {
		return false, err
	}
	return C.spvc_compiler_variable_is_depth_or_compare(c.ptr, C.spvc_variable_id(id)) != 0, nil
}

// ExecutionModel returns the execution model of the active entry
// point.
func (c *Compiler) ExecutionModel() (spv.ExecutionModel, error) {
	if err := c.alive(); err != nil {
		return spv.ExecutionModelMax, err
	}
	// The out-parameter form avoids the enum-return ABI mismatch some
	// toolchains exhibit for SpvExecutionModel.
	var model C.SpvExecutionModel
	C.spvc_rs_compiler_get_execution_model_indirect(c.ptr, &model)
	return spv.ExecutionModel(model), nil
}

// VariableType returns the type id of a variable. This works for any
// variable id in the module, including ones that never appear in the
// shader resource lists.
func (c *Compiler) VariableType(variable Handle[VariableID]) (Handle[TypeID], error) {
	if err := c.alive(); err != nil {
		return Handle[TypeID]{}, err
	}
	id, err := yieldID(c, variable)
	if err != nil {
		return Handle[TypeID]{}, err
	}
	var out C.spvc_type_id
	res := C.spvc_rs_compiler_variable_get_type(c.ptr, C.spvc_variable_id(id), &out)
	if err := c.ctx.ok(res, "variable type lookup"); err != nil {
		return Handle[TypeID]{}, err
	}
	return handleOf(c, TypeID(out)), nil
}
