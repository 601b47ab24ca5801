// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package spirvcross

/*
#include <stdlib.h>
#include <spirv_cross_c.h>
*/
import "C"

import (
	"unsafe"

	"github.com/gogpu/spirvcross/spv"
)

// EntryPoint is one entry point of the module.
type EntryPoint struct {
	// ExecutionModel is the stage the entry point runs in.
	ExecutionModel spv.ExecutionModel

	// Name is the declared entry point name.
	Name string
}

// EntryPoints lists the entry points declared by the module.
func (c *Compiler) EntryPoints() ([]EntryPoint, error) {
	if err := c.alive(); err != nil {
		return nil, err
	}
	var list *C.spvc_entry_point
	var count C.size_t
	res := C.spvc_compiler_get_entry_points(c.ptr, &list, &count)
	if err := c.ctx.ok(res, "get entry points"); err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}

	out := make([]EntryPoint, count)
	for i, ep := range unsafe.Slice(list, int(count)) {
		out[i] = EntryPoint{
			ExecutionModel: spv.ExecutionModel(ep.execution_model),
			Name:           C.GoString(ep.name),
		}
	}
	return out, nil
}

// SetEntryPoint selects the active entry point by name and execution
// model. Reflection and compilation operate on the active entry point.
func (c *Compiler) SetEntryPoint(name string, model spv.ExecutionModel) error {
	if err := c.alive(); err != nil {
		return err
	}
	cs := C.CString(name)
	defer C.free(unsafe.Pointer(cs))
	res := C.spvc_compiler_set_entry_point(c.ptr, cs, C.SpvExecutionModel(model))
	return c.ctx.ok(res, "set entry point")
}

// RenameEntryPoint changes the name an entry point is emitted under.
func (c *Compiler) RenameEntryPoint(oldName, newName string, model spv.ExecutionModel) error {
	if err := c.alive(); err != nil {
		return err
	}
	co := C.CString(oldName)
	defer C.free(unsafe.Pointer(co))
	cn := C.CString(newName)
	defer C.free(unsafe.Pointer(cn))
	res := C.spvc_compiler_rename_entry_point(c.ptr, co, cn, C.SpvExecutionModel(model))
	return c.ctx.ok(res, "rename entry point")
}

// CleansedEntryPointName returns the name the entry point will carry
// in the output after reserved-identifier cleanup.
func (c *Compiler) CleansedEntryPointName(name string, model spv.ExecutionModel) (string, error) {
	if err := c.alive(); err != nil {
		return "", err
	}
	cs := C.CString(name)
	defer C.free(unsafe.Pointer(cs))
	out := C.spvc_compiler_get_cleansed_entry_point_name(c.ptr, cs, C.SpvExecutionModel(model))
	if out == nil {
		return "", &Error{Kind: ErrInvalidArgument, Message: "unknown entry point"}
	}
	return C.GoString(out), nil
}
