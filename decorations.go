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

// DecorationValue is the value carried by a decoration: a literal, a
// string, or nothing for flag decorations.
type DecorationValue struct {
	literal uint32
	str     string
	isStr   bool
	present bool
}

// DecorationLiteral wraps a literal decoration argument.
func DecorationLiteral(v uint32) DecorationValue {
	return DecorationValue{literal: v, present: true}
}

// DecorationString wraps a string decoration argument.
func DecorationString(s string) DecorationValue {
	return DecorationValue{str: s, isStr: true, present: true}
}

// DecorationFlag is the value of a decoration that takes no argument.
func DecorationFlag() DecorationValue {
	return DecorationValue{present: true}
}

// Present reports whether the decoration is set at all.
func (v DecorationValue) Present() bool { return v.present }

// Literal returns the literal argument. ok is false for string or
// absent decorations.
func (v DecorationValue) Literal() (value uint32, ok bool) {
	return v.literal, v.present && !v.isStr
}

// String returns the string argument, or "" for literal or absent
// decorations.
func (v DecorationValue) String() string { return v.str }

// Decoration reads the decoration on an id. For handles of any kind;
// resource queries typically use the variable handle, type layout
// queries the base type handle.
//
// Absent decorations yield a DecorationValue whose Present is false.
func (c *Compiler) Decoration(id Handle[VariableID], decoration spv.Decoration) (DecorationValue, error) {
	raw, err := c.decorationTargetID(id)
	if err != nil {
		return DecorationValue{}, err
	}
	return c.decorationByID(raw, decoration)
}

// TypeDecoration reads the decoration on a type id.
func (c *Compiler) TypeDecoration(id Handle[TypeID], decoration spv.Decoration) (DecorationValue, error) {
	if err := c.alive(); err != nil {
		return DecorationValue{}, err
	}
	tid, err := yieldID(c, id)
	if err != nil {
		return DecorationValue{}, err
	}
	return c.decorationByID(uint32(tid), decoration)
}

func (c *Compiler) decorationTargetID(id Handle[VariableID]) (uint32, error) {
	if err := c.alive(); err != nil {
		return 0, err
	}
	vid, err := yieldID(c, id)
	if err != nil {
		return 0, err
	}
	return uint32(vid), nil
}

func (c *Compiler) decorationByID(id uint32, decoration spv.Decoration) (DecorationValue, error) {
	if C.spvc_compiler_has_decoration(c.ptr, C.SpvId(id), C.SpvDecoration(decoration)) == 0 {
		return DecorationValue{}, nil
	}
	if decoration.IsString() {
		s := C.spvc_compiler_get_decoration_string(c.ptr, C.SpvId(id), C.SpvDecoration(decoration))
		return DecorationString(C.GoString(s)), nil
	}
	if !decoration.HasArgument() {
		return DecorationFlag(), nil
	}
	v := C.spvc_compiler_get_decoration(c.ptr, C.SpvId(id), C.SpvDecoration(decoration))
	return DecorationLiteral(uint32(v)), nil
}

// SetDecoration sets, replaces or unsets a decoration on a variable.
// Passing a zero DecorationValue (Present false) unsets it.
func (c *Compiler) SetDecoration(id Handle[VariableID], decoration spv.Decoration, value DecorationValue) error {
	raw, err := c.decorationTargetID(id)
	if err != nil {
		return err
	}
	return c.setDecorationByID(raw, decoration, value)
}

// SetTypeDecoration sets, replaces or unsets a decoration on a type.
// Passing a zero DecorationValue (Present false) unsets it.
func (c *Compiler) SetTypeDecoration(id Handle[TypeID], decoration spv.Decoration, value DecorationValue) error {
	if err := c.alive(); err != nil {
		return err
	}
	tid, err := yieldID(c, id)
	if err != nil {
		return err
	}
	return c.setDecorationByID(uint32(tid), decoration, value)
}

func (c *Compiler) setDecorationByID(id uint32, decoration spv.Decoration, value DecorationValue) error {
	if !value.present {
		C.spvc_compiler_unset_decoration(c.ptr, C.SpvId(id), C.SpvDecoration(decoration))
		return nil
	}
	if value.isStr {
		if !decoration.IsString() {
			return &Error{Kind: ErrInvalidArgument, Message: "decoration does not take a string argument"}
		}
		cs := C.CString(value.str)
		defer C.free(unsafe.Pointer(cs))
		C.spvc_compiler_set_decoration_string(c.ptr, C.SpvId(id), C.SpvDecoration(decoration), cs)
		return nil
	}
	literal := value.literal
	if !decoration.HasArgument() {
		// Flag decorations are set with literal 1 in the C API.
		literal = 1
	}
	C.spvc_compiler_set_decoration(c.ptr, C.SpvId(id), C.SpvDecoration(decoration), C.uint(literal))
	return nil
}

// MemberDecoration reads a decoration on a struct member.
func (c *Compiler) MemberDecoration(structType Handle[TypeID], member uint32, decoration spv.Decoration) (DecorationValue, error) {
	if err := c.alive(); err != nil {
		return DecorationValue{}, err
	}
	tid, err := yieldID(c, structType)
	if err != nil {
		return DecorationValue{}, err
	}
	if C.spvc_compiler_has_member_decoration(c.ptr, C.spvc_type_id(tid), C.uint(member), C.SpvDecoration(decoration)) == 0 {
		return DecorationValue{}, nil
	}
	if decoration.IsString() {
		s := C.spvc_compiler_get_member_decoration_string(c.ptr, C.spvc_type_id(tid), C.uint(member), C.SpvDecoration(decoration))
		return DecorationString(C.GoString(s)), nil
	}
	if !decoration.HasArgument() {
		return DecorationFlag(), nil
	}
	v := C.spvc_compiler_get_member_decoration(c.ptr, C.spvc_type_id(tid), C.uint(member), C.SpvDecoration(decoration))
	return DecorationLiteral(uint32(v)), nil
}

// SetMemberDecoration sets or unsets a decoration on a struct member.
func (c *Compiler) SetMemberDecoration(structType Handle[TypeID], member uint32, decoration spv.Decoration, value DecorationValue) error {
	if err := c.alive(); err != nil {
		return err
	}
	tid, err := yieldID(c, structType)
	if err != nil {
		return err
	}
	if !value.present {
		C.spvc_compiler_unset_member_decoration(c.ptr, C.spvc_type_id(tid), C.uint(member), C.SpvDecoration(decoration))
		return nil
	}
	if value.isStr {
		if !decoration.IsString() {
			return &Error{Kind: ErrInvalidArgument, Message: "decoration does not take a string argument"}
		}
		cs := C.CString(value.str)
		defer C.free(unsafe.Pointer(cs))
		C.spvc_compiler_set_member_decoration_string(c.ptr, C.spvc_type_id(tid), C.uint(member), C.SpvDecoration(decoration), cs)
		return nil
	}
	literal := value.literal
	if !decoration.HasArgument() {
		literal = 1
	}
	C.spvc_compiler_set_member_decoration(c.ptr, C.spvc_type_id(tid), C.uint(member), C.SpvDecoration(decoration), C.uint(literal))
	return nil
}
