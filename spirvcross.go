// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package spirvcross provides Go bindings to the SPIRV-Cross native
// shader cross-compiler.
//
// SPIRV-Cross parses SPIR-V modules and translates them to GLSL, HLSL,
// MSL, C++ or a JSON reflection dump. All parsing, IR construction and
// code generation happen inside the native library; this package owns
// the lifecycle of native objects, translates result codes into Go
// errors, and exposes the reflection and compilation surface as safe
// Go types.
//
// # Context
//
// The entry point is Context, which owns every native allocation made
// on its behalf. Compilers, reflected strings and resource lists are
// backed by context memory until Close is called; the binding copies
// anything it hands out into Go memory, so values returned from this
// package stay valid after Close, but Compiler methods do not:
//
//	ctx, err := spirvcross.NewContext()
//	if err != nil { ... }
//	defer ctx.Close()
//
//	mod := spirvcross.ModuleFromWords(words)
//	c, err := ctx.CreateCompiler(spirvcross.TargetGLSL, mod)
//	if err != nil { ... }
//
//	src, err := c.CompileGLSL(glsl.DefaultOptions())
//
// A Context and its compilers are not safe for concurrent use; callers
// sharing one across goroutines must serialize access themselves.
//
// # Handles
//
// Reflection queries return Handle values tagging each SPIR-V id with
// the compiler that produced it. Passing a handle to a different
// compiler fails with ErrInvalidArgument instead of corrupting native
// state.
package spirvcross

/*
#cgo pkg-config: spirv-cross-c-ext
#include <spirv_cross_c.h>
#include "native/spirv_cross_c_ext.h"
*/
import "C"

import "unsafe"

// Target selects the output backend of a compiler instance.
type Target uint8

// Output backends supported by the native library.
const (
	// TargetNone performs reflection only; Compile is unavailable.
	TargetNone Target = iota

	// TargetGLSL emits OpenGL Shading Language.
	TargetGLSL

	// TargetHLSL emits High Level Shading Language.
	TargetHLSL

	// TargetMSL emits Metal Shading Language.
	TargetMSL

	// TargetCPP emits debuggable C++ code.
	TargetCPP

	// TargetJSON emits a JSON reflection dump.
	TargetJSON
)

// String returns the backend name.
func (t Target) String() string {
	switch t {
	case TargetNone:
		return "None"
	case TargetGLSL:
		return "GLSL"
	case TargetHLSL:
		return "HLSL"
	case TargetMSL:
		return "MSL"
	case TargetCPP:
		return "CPP"
	case TargetJSON:
		return "JSON"
	default:
		return "Unknown"
	}
}

func (t Target) backend() C.spvc_backend {
	switch t {
	case TargetGLSL:
		return C.SPVC_BACKEND_GLSL
	case TargetHLSL:
		return C.SPVC_BACKEND_HLSL
	case TargetMSL:
		return C.SPVC_BACKEND_MSL
	case TargetCPP:
		return C.SPVC_BACKEND_CPP
	case TargetJSON:
		return C.SPVC_BACKEND_JSON
	default:
		return C.SPVC_BACKEND_NONE
	}
}

// Context owns all native allocations made by its compilers. It must
// outlive every Compiler created from it; Close invalidates them all.
type Context struct {
	ptr C.spvc_context
}

// NewContext initializes a native SPIRV-Cross context.
func NewContext() (*Context, error) {
	var ptr C.spvc_context
	if C.spvc_context_create(&ptr) != C.SPVC_SUCCESS || ptr == nil {
		return nil, &Error{Kind: ErrOutOfMemory, Message: "out of memory"}
	}
	return &Context{ptr: ptr}, nil
}

// Close destroys the context and frees every allocation it owns.
// All compilers created from the context become unusable; their
// methods return ErrContextReleased. Close is idempotent.
func (ctx *Context) Close() error {
	if ctx.ptr != nil {
		C.spvc_context_destroy(ctx.ptr)
		ctx.ptr = nil
	}
	return nil
}

// ReleaseAllocations frees transient allocations the context has
// accumulated, such as compiled source buffers and resource lists.
// Compilers stay valid. Call between compilations when reusing one
// context for many modules.
func (ctx *Context) ReleaseAllocations() {
	if ctx.ptr != nil {
		C.spvc_context_release_allocations(ctx.ptr)
	}
}

func (ctx *Context) alive() error {
	if ctx.ptr == nil {
		return &Error{Kind: ErrContextReleased, Message: "context has been closed"}
	}
	return nil
}

// lastError translates a native result code into *Error, pulling the
// error message the context recorded for the failing call.
func (ctx *Context) lastError(code C.spvc_result, op string) error {
	msg := C.GoString(C.spvc_context_get_last_error_string(ctx.ptr))
	if msg == "" {
		msg = op + " failed"
	}
	return &Error{Kind: kindForResult(int32(code)), Message: msg}
}

// ok returns nil for SPVC_SUCCESS and a translated error otherwise.
func (ctx *Context) ok(code C.spvc_result, op string) error {
	if code == C.SPVC_SUCCESS {
		return nil
	}
	return ctx.lastError(code, op)
}

// CreateCompiler parses a SPIR-V module and creates a compiler
// instance for the given target. The module words are copied into
// native memory; the Module may be discarded afterwards.
func (ctx *Context) CreateCompiler(target Target, m Module) (*Compiler, error) {
	if err := ctx.alive(); err != nil {
		return nil, err
	}
	if len(m.words) == 0 {
		return nil, &Error{Kind: ErrInvalidSPIRV, Message: "empty module"}
	}

	var ir C.spvc_parsed_ir
	res := C.spvc_context_parse_spirv(
		ctx.ptr,
		(*C.SpvId)(unsafe.Pointer(&m.words[0])),
		C.size_t(len(m.words)),
		&ir,
	)
	if err := ctx.ok(res, "parse SPIR-V"); err != nil {
		return nil, err
	}

	var ptr C.spvc_compiler
	res = C.spvc_context_create_compiler(
		ctx.ptr,
		target.backend(),
		ir,
		C.SPVC_CAPTURE_MODE_TAKE_OWNERSHIP,
		&ptr,
	)
	if err := ctx.ok(res, "create compiler"); err != nil {
		return nil, err
	}
	if ptr == nil {
		return nil, &Error{Kind: ErrOutOfMemory, Message: "out of memory"}
	}

	return &Compiler{ctx: ctx, ptr: ptr, target: target}, nil
}
