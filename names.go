// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package spirvcross

/*
#include <stdlib.h>
#include <spirv_cross_c.h>
*/
import "C"

import "unsafe"

// Name returns the declared name of a variable, or "" when the module
// carries no name for it.
func (c *Compiler) Name(id Handle[VariableID]) (string, error) {
	if err := c.alive(); err != nil {
		return "", err
	}
	vid, err := yieldID(c, id)
	if err != nil {
		return "", err
	}
	return C.GoString(C.spvc_compiler_get_name(c.ptr, C.SpvId(vid))), nil
}

// SetName overrides the name emitted for a variable.
func (c *Compiler) SetName(id Handle[VariableID], name string) error {
	if err := c.alive(); err != nil {
		return err
	}
	vid, err := yieldID(c, id)
	if err != nil {
		return err
	}
	cs := C.CString(name)
	defer C.free(unsafe.Pointer(cs))
	C.spvc_compiler_set_name(c.ptr, C.SpvId(vid), cs)
	return nil
}

// MemberName returns the declared name of a struct member.
func (c *Compiler) MemberName(structType Handle[TypeID], member uint32) (string, error) {
	if err := c.alive(); err != nil {
		return "", err
	}
	tid, err := yieldID(c, structType)
	if err != nil {
		return "", err
	}
	return C.GoString(C.spvc_compiler_get_member_name(c.ptr, C.spvc_type_id(tid), C.uint(member))), nil
}

// SetMemberName overrides the name emitted for a struct member.
func (c *Compiler) SetMemberName(structType Handle[TypeID], member uint32, name string) error {
	if err := c.alive(); err != nil {
		return err
	}
	tid, err := yieldID(c, structType)
	if err != nil {
		return err
	}
	cs := C.CString(name)
	defer C.free(unsafe.Pointer(cs))
	C.spvc_compiler_set_member_name(c.ptr, C.spvc_type_id(tid), C.uint(member), cs)
	return nil
}
