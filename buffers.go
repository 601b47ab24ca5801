// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package spirvcross

/*
#include <spirv_cross_c.h>
*/
import "C"

import "unsafe"

// BufferRange is a member range of a buffer block actually accessed by
// the active entry point.
type BufferRange struct {
	// Index is the struct member index.
	Index uint32

	// Offset is the member's byte offset in the block.
	Offset uint64

	// Size is the accessed byte size.
	Size uint64
}

// ActiveBufferRanges returns the byte ranges of a buffer block the
// active entry point reads or writes. Useful for packing UBO updates
// and push constant ranges.
func (c *Compiler) ActiveBufferRanges(buffer Handle[VariableID]) ([]BufferRange, error) {
	if err := c.alive(); err != nil {
		return nil, err
	}
	id, err := yieldID(c, buffer)
	if err != nil {
		return nil, err
	}

	var list *C.spvc_buffer_range
	var count C.size_t
	res := C.spvc_compiler_get_active_buffer_ranges(c.ptr, C.spvc_variable_id(id), &list, &count)
	if err := c.ctx.ok(res, "get active buffer ranges"); err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}

	out := make([]BufferRange, count)
	for i, r := range unsafe.Slice(list, int(count)) {
		out[i] = BufferRange{
			Index:  uint32(r.index),
			Offset: uint64(r.offset),
			Size:   uint64(r._range),
		}
	}
	return out, nil
}

// DeclaredStructSize returns the declared byte size of a struct type.
// A runtime array as the last member contributes zero; see
// DeclaredStructSizeRuntimeArray.
func (c *Compiler) DeclaredStructSize(structType Handle[TypeID]) (uint64, error) {
	if err := c.alive(); err != nil {
		return 0, err
	}
	tid, err := yieldID(c, structType)
	if err != nil {
		return 0, err
	}
	t := C.spvc_compiler_get_type_handle(c.ptr, C.spvc_type_id(tid))
	var size C.size_t
	res := C.spvc_compiler_get_declared_struct_size(c.ptr, t, &size)
	if err := c.ctx.ok(res, "get declared struct size"); err != nil {
		return 0, err
	}
	return uint64(size), nil
}

// DeclaredStructSizeRuntimeArray returns the declared byte size of a
// struct type assuming the trailing runtime array has the given
// element count.
func (c *Compiler) DeclaredStructSizeRuntimeArray(structType Handle[TypeID], arraySize uint64) (uint64, error) {
	if err := c.alive(); err != nil {
		return 0, err
	}
	tid, err := yieldID(c, structType)
	if err != nil {
		return 0, err
	}
	t := C.spvc_compiler_get_type_handle(c.ptr, C.spvc_type_id(tid))
	var size C.size_t
	res := C.spvc_compiler_get_declared_struct_size_runtime_array(c.ptr, t, C.size_t(arraySize), &size)
	if err := c.ctx.ok(res, "get declared struct size"); err != nil {
		return 0, err
	}
	return uint64(size), nil
}

// DeclaredStructMemberSize returns the declared byte size of one
// struct member.
func (c *Compiler) DeclaredStructMemberSize(structType Handle[TypeID], member uint32) (uint64, error) {
	if err := c.alive(); err != nil {
		return 0, err
	}
	tid, err := yieldID(c, structType)
	if err != nil {
		return 0, err
	}
	t := C.spvc_compiler_get_type_handle(c.ptr, C.spvc_type_id(tid))
	var size C.size_t
	res := C.spvc_compiler_get_declared_struct_member_size(c.ptr, t, C.uint(member), &size)
	if err := c.ctx.ok(res, "get declared struct member size"); err != nil {
		return 0, err
	}
	return uint64(size), nil
}

// StructMemberOffset returns the byte offset of a struct member.
func (c *Compiler) StructMemberOffset(structType Handle[TypeID], member uint32) (uint32, error) {
	if err := c.alive(); err != nil {
		return 0, err
	}
	tid, err := yieldID(c, structType)
	if err != nil {
		return 0, err
	}
	t := C.spvc_compiler_get_type_handle(c.ptr, C.spvc_type_id(tid))
	var offset C.uint
	res := C.spvc_compiler_type_struct_member_offset(c.ptr, t, C.uint(member), &offset)
	if err := c.ctx.ok(res, "get struct member offset"); err != nil {
		return 0, err
	}
	return uint32(offset), nil
}

// StructMemberArrayStride returns the array stride of an array-typed
// struct member.
func (c *Compiler) StructMemberArrayStride(structType Handle[TypeID], member uint32) (uint32, error) {
	if err := c.alive(); err != nil {
		return 0, err
	}
	tid, err := yieldID(c, structType)
	if err != nil {
		return 0, err
	}
	t := C.spvc_compiler_get_type_handle(c.ptr, C.spvc_type_id(tid))
	var stride C.uint
	res := C.spvc_compiler_type_struct_member_array_stride(c.ptr, t, C.uint(member), &stride)
	if err := c.ctx.ok(res, "get struct member array stride"); err != nil {
		return 0, err
	}
	return uint32(stride), nil
}

// StructMemberMatrixStride returns the matrix stride of a
// matrix-typed struct member.
func (c *Compiler) StructMemberMatrixStride(structType Handle[TypeID], member uint32) (uint32, error) {
	if err := c.alive(); err != nil {
		return 0, err
	}
	tid, err := yieldID(c, structType)
	if err != nil {
		return 0, err
	}
	t := C.spvc_compiler_get_type_handle(c.ptr, C.spvc_type_id(tid))
	var stride C.uint
	res := C.spvc_compiler_type_struct_member_matrix_stride(c.ptr, t, C.uint(member), &stride)
	if err := c.ctx.ok(res, "get struct member matrix stride"); err != nil {
		return 0, err
	}
	return uint32(stride), nil
}
