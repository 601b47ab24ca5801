// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package spirvcross

/*
#include <spirv_cross_c.h>
*/
import "C"

import (
	"unsafe"

	"github.com/gogpu/spirvcross/spv"
)

// ExecutionModeArguments carries the arguments of an execution mode.
// Exactly one of the shapes applies to a given mode: no arguments, a
// single literal, a literal workgroup size, or a workgroup size given
// by constant ids.
type ExecutionModeArguments struct {
	kind executionModeArgKind

	// Unit is the single literal argument of modes like Invocations
	// and OutputVertices.
	Unit uint32

	// X, Y, Z are the LocalSize literals.
	X, Y, Z uint32

	// XID, YID, ZID are the LocalSizeId constants.
	XID, YID, ZID Handle[ConstantID]
}

type executionModeArgKind uint8

const (
	execArgsNone executionModeArgKind = iota
	execArgsUnit
	execArgsLocalSize
	execArgsLocalSizeID
)

// NoArguments constructs arguments for a mode that takes none.
func NoArguments() ExecutionModeArguments {
	return ExecutionModeArguments{kind: execArgsNone}
}

// UnitArgument constructs a single-literal argument.
func UnitArgument(v uint32) ExecutionModeArguments {
	return ExecutionModeArguments{kind: execArgsUnit, Unit: v}
}

// LocalSizeArguments constructs literal workgroup size arguments.
func LocalSizeArguments(x, y, z uint32) ExecutionModeArguments {
	return ExecutionModeArguments{kind: execArgsLocalSize, X: x, Y: y, Z: z}
}

// expand flattens the arguments into the three-literal form the C API
// takes.
func (a ExecutionModeArguments) expand() (x, y, z uint32) {
	switch a.kind {
	case execArgsUnit:
		return a.Unit, 0, 0
	case execArgsLocalSize:
		return a.X, a.Y, a.Z
	case execArgsLocalSizeID:
		return a.XID.ID(), a.YID.ID(), a.ZID.ID()
	default:
		return 0, 0, 0
	}
}

// ExecutionModes lists the execution modes set on the active entry
// point.
func (c *Compiler) ExecutionModes() ([]spv.ExecutionMode, error) {
	if err := c.alive(); err != nil {
		return nil, err
	}
	var list *C.SpvExecutionMode
	var count C.size_t
	res := C.spvc_compiler_get_execution_modes(c.ptr, &list, &count)
	if err := c.ctx.ok(res, "get execution modes"); err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}

	out := make([]spv.ExecutionMode, count)
	for i, m := range unsafe.Slice(list, int(count)) {
		out[i] = spv.ExecutionMode(m)
	}
	return out, nil
}

// SetExecutionMode sets an execution mode with arguments on the
// active entry point. Use NoArguments for modes without arguments.
func (c *Compiler) SetExecutionMode(mode spv.ExecutionMode, args ExecutionModeArguments) error {
	if err := c.alive(); err != nil {
		return err
	}
	x, y, z := args.expand()
	C.spvc_compiler_set_execution_mode_with_arguments(
		c.ptr, C.SpvExecutionMode(mode), C.uint(x), C.uint(y), C.uint(z))
	return nil
}

// UnsetExecutionMode removes an execution mode from the active entry
// point.
func (c *Compiler) UnsetExecutionMode(mode spv.ExecutionMode) error {
	if err := c.alive(); err != nil {
		return err
	}
	C.spvc_compiler_unset_execution_mode(c.ptr, C.SpvExecutionMode(mode))
	return nil
}

func (c *Compiler) executionModeArgument(mode spv.ExecutionMode, index uint32) uint32 {
	return uint32(C.spvc_compiler_get_execution_mode_argument_by_index(
		c.ptr, C.SpvExecutionMode(mode), C.uint(index)))
}

// ExecutionModeArguments returns the arguments of an execution mode on
// the active entry point, or ok=false when the mode is unused.
//
// LocalSize always yields the literal extents, even when the module
// uses LocalSizeId; querying LocalSizeId yields constant handles. For
// both, a zero extent means the mode is unused.
func (c *Compiler) ExecutionModeArguments(mode spv.ExecutionMode) (args ExecutionModeArguments, ok bool, err error) {
	if err := c.alive(); err != nil {
		return args, false, err
	}

	switch mode {
	case spv.ExecutionModeLocalSize:
		x := c.executionModeArgument(mode, 0)
		y := c.executionModeArgument(mode, 1)
		z := c.executionModeArgument(mode, 2)
		if x*y*z == 0 {
			return args, false, nil
		}
		return LocalSizeArguments(x, y, z), true, nil

	case spv.ExecutionModeLocalSizeID:
		x := c.executionModeArgument(mode, 0)
		y := c.executionModeArgument(mode, 1)
		z := c.executionModeArgument(mode, 2)
		// If one id is zero, all are.
		if x*y*z == 0 {
			return args, false, nil
		}
		return ExecutionModeArguments{
			kind: execArgsLocalSizeID,
			XID:  handleOf(c, ConstantID(x)),
			YID:  handleOf(c, ConstantID(y)),
			ZID:  handleOf(c, ConstantID(z)),
		}, true, nil

	case spv.ExecutionModeInvocations,
		spv.ExecutionModeOutputVertices,
		spv.ExecutionModeOutputPrimitivesEXT:
		set, err := c.hasExecutionMode(mode)
		if err != nil || !set {
			return args, false, err
		}
		return UnitArgument(c.executionModeArgument(mode, 0)), true, nil

	default:
		set, err := c.hasExecutionMode(mode)
		if err != nil || !set {
			return args, false, err
		}
		return NoArguments(), true, nil
	}
}

func (c *Compiler) hasExecutionMode(mode spv.ExecutionMode) (bool, error) {
	modes, err := c.ExecutionModes()
	if err != nil {
		return false, err
	}
	for _, m := range modes {
		if m == mode {
			return true, nil
		}
	}
	return false, nil
}
