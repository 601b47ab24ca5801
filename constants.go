// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package spirvcross

/*
#include <spirv_cross_c.h>
#include "native/spirv_cross_c_ext.h"
*/
import "C"

import "unsafe"

// SpecializationConstant pairs a constant's SPIR-V id with the
// SpecId decoration value used to override it at pipeline build time.
type SpecializationConstant struct {
	// ID is the constant's SPIR-V id.
	ID Handle[ConstantID]

	// SpecID is the constant_id the client API uses to override it.
	SpecID uint32
}

// SpecializationConstants lists the module's specialization constants.
func (c *Compiler) SpecializationConstants() ([]SpecializationConstant, error) {
	if err := c.alive(); err != nil {
		return nil, err
	}
	var list *C.spvc_specialization_constant
	var count C.size_t
	res := C.spvc_compiler_get_specialization_constants(c.ptr, &list, &count)
	if err := c.ctx.ok(res, "get specialization constants"); err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}

	out := make([]SpecializationConstant, count)
	for i, sc := range unsafe.Slice(list, int(count)) {
		out[i] = SpecializationConstant{
			ID:     handleOf(c, ConstantID(sc.id)),
			SpecID: uint32(sc.constant_id),
		}
	}
	return out, nil
}

// WorkGroupSizeConstant is one dimension of the workgroup size
// specialization, absent when the dimension is a plain literal.
type WorkGroupSizeConstant struct {
	// Constant overrides the dimension, when Present.
	Constant SpecializationConstant

	// Present is false when the dimension is not specializable.
	Present bool
}

// WorkGroupSizeSpecializationConstants returns the specialization
// constants backing the WorkgroupSize builtin and, when the builtin
// itself is a constant, a handle to it.
func (c *Compiler) WorkGroupSizeSpecializationConstants() (x, y, z WorkGroupSizeConstant, builtin Handle[ConstantID], err error) {
	if err := c.alive(); err != nil {
		return x, y, z, builtin, err
	}
	var cx, cy, cz C.spvc_specialization_constant
	id := C.spvc_compiler_get_work_group_size_specialization_constants(c.ptr, &cx, &cy, &cz)

	wrap := func(sc C.spvc_specialization_constant) WorkGroupSizeConstant {
		if sc.id == 0 {
			return WorkGroupSizeConstant{}
		}
		return WorkGroupSizeConstant{
			Constant: SpecializationConstant{
				ID:     handleOf(c, ConstantID(sc.id)),
				SpecID: uint32(sc.constant_id),
			},
			Present: true,
		}
	}
	builtin, _ = handleOfNonZero(c, ConstantID(id))
	return wrap(cx), wrap(cy), wrap(cz), builtin, nil
}

// Constant wraps a native constant object.
type Constant struct {
	owner *Compiler
	ptr   C.spvc_constant
}

// ConstantHandle looks up the constant object for a constant id.
func (c *Compiler) ConstantHandle(id Handle[ConstantID]) (*Constant, error) {
	if err := c.alive(); err != nil {
		return nil, err
	}
	cid, err := yieldID(c, id)
	if err != nil {
		return nil, err
	}
	ptr := C.spvc_compiler_get_constant_handle(c.ptr, C.spvc_constant_id(cid))
	if ptr == nil {
		return nil, &Error{Kind: ErrInvalidArgument, Message: "unknown constant id"}
	}
	return &Constant{owner: c, ptr: ptr}, nil
}

// TypeID returns the id of the constant's type.
func (k *Constant) TypeID() Handle[TypeID] {
	return handleOf(k.owner, TypeID(C.spvc_constant_get_type(k.ptr)))
}

// IsScalar reports whether the constant is a single scalar, as
// opposed to a vector or matrix constant.
func (k *Constant) IsScalar() bool {
	return C.spvc_rs_constant_is_scalar(k.ptr) != 0
}

// VectorSize returns the number of vector components per column.
func (k *Constant) VectorSize() uint32 {
	return uint32(C.spvc_rs_constant_get_vecsize(k.ptr))
}

// MatrixColumns returns the number of matrix columns; 1 for scalars
// and vectors.
func (k *Constant) MatrixColumns() uint32 {
	return uint32(C.spvc_rs_constant_get_matrix_colsize(k.ptr))
}

// Subconstants returns the component constants of a composite
// constant, or nil for scalars.
func (k *Constant) Subconstants() []Handle[ConstantID] {
	var list *C.spvc_constant_id
	var count C.size_t
	C.spvc_constant_get_subconstants(k.ptr, &list, &count)
	if count == 0 {
		return nil
	}
	out := make([]Handle[ConstantID], count)
	for i, id := range unsafe.Slice(list, int(count)) {
		out[i] = handleOf(k.owner, ConstantID(id))
	}
	return out
}

// ScalarF32 reads the scalar at the given column and row as float32.
func (k *Constant) ScalarF32(column, row uint32) float32 {
	return float32(C.spvc_constant_get_scalar_fp32(k.ptr, C.uint(column), C.uint(row)))
}

// ScalarF64 reads the scalar at the given column and row as float64.
func (k *Constant) ScalarF64(column, row uint32) float64 {
	return float64(C.spvc_constant_get_scalar_fp64(k.ptr, C.uint(column), C.uint(row)))
}

// ScalarU32 reads the scalar at the given column and row as uint32.
func (k *Constant) ScalarU32(column, row uint32) uint32 {
	return uint32(C.spvc_constant_get_scalar_u32(k.ptr, C.uint(column), C.uint(row)))
}

// ScalarI32 reads the scalar at the given column and row as int32.
func (k *Constant) ScalarI32(column, row uint32) int32 {
	return int32(C.spvc_constant_get_scalar_i32(k.ptr, C.uint(column), C.uint(row)))
}

// ScalarU64 reads the scalar at the given column and row as uint64.
func (k *Constant) ScalarU64(column, row uint32) uint64 {
	return uint64(C.spvc_constant_get_scalar_u64(k.ptr, C.uint(column), C.uint(row)))
}

// ScalarI64 reads the scalar at the given column and row as int64.
func (k *Constant) ScalarI64(column, row uint32) int64 {
	return int64(C.spvc_constant_get_scalar_i64(k.ptr, C.uint(column), C.uint(row)))
}

// SetScalarF32 overrides the scalar at the given column and row.
// Used to bake a specialization constant value before compiling.
func (k *Constant) SetScalarF32(column, row uint32, v float32) {
	C.spvc_constant_set_scalar_fp32(k.ptr, C.uint(column), C.uint(row), C.float(v))
}

// SetScalarF64 overrides the scalar at the given column and row.
func (k *Constant) SetScalarF64(column, row uint32, v float64) {
	C.spvc_constant_set_scalar_fp64(k.ptr, C.uint(column), C.uint(row), C.double(v))
}

// SetScalarU32 overrides the scalar at the given column and row.
func (k *Constant) SetScalarU32(column, row uint32, v uint32) {
	C.spvc_constant_set_scalar_u32(k.ptr, C.uint(column), C.uint(row), C.uint(v))
}

// SetScalarI32 overrides the scalar at the given column and row.
func (k *Constant) SetScalarI32(column, row uint32, v int32) {
	C.spvc_constant_set_scalar_i32(k.ptr, C.uint(column), C.uint(row), C.int(v))
}

// SetScalarU64 overrides the scalar at the given column and row.
func (k *Constant) SetScalarU64(column, row uint32, v uint64) {
	C.spvc_constant_set_scalar_u64(k.ptr, C.uint(column), C.uint(row), C.uint64_t(v))
}

// SetScalarI64 overrides the scalar at the given column and row.
func (k *Constant) SetScalarI64(column, row uint32, v int64) {
	C.spvc_constant_set_scalar_i64(k.ptr, C.uint(column), C.uint(row), C.int64_t(v))
}
