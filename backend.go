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

	"github.com/gogpu/spirvcross/glsl"
	"github.com/gogpu/spirvcross/hlsl"
	"github.com/gogpu/spirvcross/msl"
)

func (c *Compiler) requireTarget(t Target) error {
	if c.target != t {
		return &Error{
			Kind:    ErrInvalidOperation,
			Message: "compiler targets " + c.target.String() + ", not " + t.String(),
		}
	}
	return nil
}

// compileSource runs the native backend and copies the result into a
// Go string. The native buffer stays owned by the context.
func (c *Compiler) compileSource() (string, error) {
	if c.target == TargetNone {
		return "", &Error{Kind: ErrInvalidOperation, Message: "reflection-only compiler cannot compile"}
	}
	var src *C.char
	if err := c.ctx.ok(C.spvc_compiler_compile(c.ptr, &src), "compile"); err != nil {
		return "", err
	}
	return C.GoString(src), nil
}

// Compile cross-compiles with the native default options of the
// compiler's target. For GLSL, HLSL and MSL prefer the typed variants,
// which expose the backend's options.
func (c *Compiler) Compile() (string, error) {
	if err := c.alive(); err != nil {
		return "", err
	}
	return c.compileSource()
}

// CompileGLSL cross-compiles to GLSL. The compiler must have been
// created with TargetGLSL.
func (c *Compiler) CompileGLSL(opts glsl.Options) (string, error) {
	if err := c.alive(); err != nil {
		return "", err
	}
	if err := c.requireTarget(TargetGLSL); err != nil {
		return "", err
	}
	if err := c.installGLSL(opts); err != nil {
		return "", err
	}
	return c.compileSource()
}

// CompileHLSL cross-compiles to HLSL. The compiler must have been
// created with TargetHLSL.
func (c *Compiler) CompileHLSL(opts hlsl.Options) (string, error) {
	if err := c.alive(); err != nil {
		return "", err
	}
	if err := c.requireTarget(TargetHLSL); err != nil {
		return "", err
	}
	if err := c.installHLSL(opts); err != nil {
		return "", err
	}
	return c.compileSource()
}

// CompileMSL cross-compiles to MSL. The compiler must have been
// created with TargetMSL.
func (c *Compiler) CompileMSL(opts msl.Options) (string, error) {
	if err := c.alive(); err != nil {
		return "", err
	}
	if err := c.requireTarget(TargetMSL); err != nil {
		return "", err
	}
	if err := c.installMSL(opts); err != nil {
		return "", err
	}
	return c.compileSource()
}

// SetRootConstantsLayout maps push constant byte ranges onto HLSL root
// constants instead of a cbuffer.
func (c *Compiler) SetRootConstantsLayout(ranges []hlsl.RootConstants) error {
	if err := c.alive(); err != nil {
		return err
	}
	if err := c.requireTarget(TargetHLSL); err != nil {
		return err
	}
	if len(ranges) == 0 {
		return nil
	}

	native := make([]C.spvc_hlsl_root_constants, len(ranges))
	for i, r := range ranges {
		native[i] = C.spvc_hlsl_root_constants{
			start:   C.uint(r.Start),
			end:     C.uint(r.End),
			binding: C.uint(r.Binding),
			space:   C.uint(r.Space),
		}
	}
	res := C.spvc_compiler_hlsl_set_root_constants_layout(c.ptr, &native[0], C.size_t(len(native)))
	return c.ctx.ok(res, "set root constants layout")
}

// AddVertexAttributeRemap assigns custom HLSL semantics to vertex
// input locations.
func (c *Compiler) AddVertexAttributeRemap(remaps []hlsl.VertexAttributeRemap) error {
	if err := c.alive(); err != nil {
		return err
	}
	if err := c.requireTarget(TargetHLSL); err != nil {
		return err
	}

	for _, r := range remaps {
		cs := C.CString(r.Semantic)
		native := C.spvc_hlsl_vertex_attribute_remap{
			location: C.uint(r.Location),
			semantic: cs,
		}
		res := C.spvc_compiler_hlsl_add_vertex_attribute_remap(c.ptr, &native, 1)
		C.free(unsafe.Pointer(cs))
		if err := c.ctx.ok(res, "add vertex attribute remap"); err != nil {
			return err
		}
	}
	return nil
}

// RemapNumWorkgroupsBuiltin substitutes a cbuffer-backed value for the
// NumWorkgroups builtin, which HLSL lacks. It returns a handle to the
// created variable, or ok=false if the builtin is not used.
func (c *Compiler) RemapNumWorkgroupsBuiltin() (h Handle[VariableID], ok bool, err error) {
	if err := c.alive(); err != nil {
		return Handle[VariableID]{}, false, err
	}
	if err := c.requireTarget(TargetHLSL); err != nil {
		return Handle[VariableID]{}, false, err
	}
	id := C.spvc_compiler_hlsl_remap_num_workgroups_builtin(c.ptr)
	h, ok = handleOfNonZero(c, VariableID(id))
	return h, ok, nil
}
