// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package spirvcross

/*
#include <spirv_cross_c.h>
#include "native/spirv_cross_c_ext.h"
*/
import "C"

import "github.com/gogpu/spirvcross/spv"

// BaseType is the scalar or composite category of a reflected type.
type BaseType uint32

// Base types, matching the native enumeration.
const (
	BaseTypeUnknown BaseType = iota
	BaseTypeVoid
	BaseTypeBoolean
	BaseTypeInt8
	BaseTypeUint8
	BaseTypeInt16
	BaseTypeUint16
	BaseTypeInt32
	BaseTypeUint32
	BaseTypeInt64
	BaseTypeUint64
	BaseTypeAtomicCounter
	BaseTypeFP16
	BaseTypeFP32
	BaseTypeFP64
	BaseTypeStruct
	BaseTypeImage
	BaseTypeSampledImage
	BaseTypeSampler
	BaseTypeAccelerationStructure
)

// String returns the base type name.
func (b BaseType) String() string {
	switch b {
	case BaseTypeVoid:
		return "Void"
	case BaseTypeBoolean:
		return "Boolean"
	case BaseTypeInt8:
		return "Int8"
	case BaseTypeUint8:
		return "Uint8"
	case BaseTypeInt16:
		return "Int16"
	case BaseTypeUint16:
		return "Uint16"
	case BaseTypeInt32:
		return "Int32"
	case BaseTypeUint32:
		return "Uint32"
	case BaseTypeInt64:
		return "Int64"
	case BaseTypeUint64:
		return "Uint64"
	case BaseTypeAtomicCounter:
		return "AtomicCounter"
	case BaseTypeFP16:
		return "FP16"
	case BaseTypeFP32:
		return "FP32"
	case BaseTypeFP64:
		return "FP64"
	case BaseTypeStruct:
		return "Struct"
	case BaseTypeImage:
		return "Image"
	case BaseTypeSampledImage:
		return "SampledImage"
	case BaseTypeSampler:
		return "Sampler"
	case BaseTypeAccelerationStructure:
		return "AccelerationStructure"
	default:
		return "Unknown"
	}
}

// Type wraps a native type object. It stays valid until the owning
// context is closed; queries after that return zero values.
type Type struct {
	owner *Compiler
	ptr   C.spvc_type
}

// TypeHandle looks up the type object for a type id.
func (c *Compiler) TypeHandle(id Handle[TypeID]) (*Type, error) {
	if err := c.alive(); err != nil {
		return nil, err
	}
	tid, err := yieldID(c, id)
	if err != nil {
		return nil, err
	}
	ptr := C.spvc_compiler_get_type_handle(c.ptr, C.spvc_type_id(tid))
	if ptr == nil {
		return nil, &Error{Kind: ErrInvalidArgument, Message: "unknown type id"}
	}
	return &Type{owner: c, ptr: ptr}, nil
}

// BaseTypeID returns the id of the type with arrays and pointers
// peeled off.
func (t *Type) BaseTypeID() Handle[TypeID] {
	return handleOf(t.owner, TypeID(C.spvc_type_get_base_type_id(t.ptr)))
}

// BaseType returns the type's scalar or composite category.
func (t *Type) BaseType() BaseType {
	return BaseType(C.spvc_type_get_basetype(t.ptr))
}

// BitWidth returns the scalar bit width, or 0 for non-scalars.
func (t *Type) BitWidth() uint32 {
	return uint32(C.spvc_type_get_bit_width(t.ptr))
}

// VectorSize returns the number of vector components; 1 for scalars.
func (t *Type) VectorSize() uint32 {
	return uint32(C.spvc_type_get_vector_size(t.ptr))
}

// Columns returns the number of matrix columns; 1 for non-matrices.
func (t *Type) Columns() uint32 {
	return uint32(C.spvc_type_get_columns(t.ptr))
}

// StorageClass returns the type's storage class.
func (t *Type) StorageClass() spv.StorageClass {
	return spv.StorageClass(C.spvc_type_get_storage_class(t.ptr))
}

// IsPointer reports whether the type is a pointer type.
func (t *Type) IsPointer() bool {
	return C.spvc_rs_type_is_pointer(t.ptr) != 0
}

// IsForwardPointer reports whether the type is a forward-declared
// pointer, as used by buffer device address code.
func (t *Type) IsForwardPointer() bool {
	return C.spvc_rs_type_is_forward_pointer(t.ptr) != 0
}

// ArrayDimension is one dimension of an array type.
type ArrayDimension struct {
	// Value is the dimension length, or the id of the specialization
	// constant that defines it when Literal is false. Zero length
	// marks a runtime array.
	Value uint32

	// Literal is true when Value is a length, false when it is a
	// constant id.
	Literal bool
}

// ArrayDimensions returns the array dimensions of the type, outermost
// first. Non-arrays return nil.
func (t *Type) ArrayDimensions() []ArrayDimension {
	n := uint32(C.spvc_type_get_num_array_dimensions(t.ptr))
	if n == 0 {
		return nil
	}
	dims := make([]ArrayDimension, n)
	for i := uint32(0); i < n; i++ {
		dims[i] = ArrayDimension{
			Value:   uint32(C.spvc_type_get_array_dimension(t.ptr, C.uint(i))),
			Literal: C.spvc_type_array_dimension_is_literal(t.ptr, C.uint(i)) != 0,
		}
	}
	return dims
}

// MemberTypes returns the member type ids of a struct type, in
// declaration order. Non-structs return nil.
func (t *Type) MemberTypes() []Handle[TypeID] {
	n := uint32(C.spvc_type_get_num_member_types(t.ptr))
	if n == 0 {
		return nil
	}
	members := make([]Handle[TypeID], n)
	for i := uint32(0); i < n; i++ {
		members[i] = handleOf(t.owner, TypeID(C.spvc_type_get_member_type(t.ptr, C.uint(i))))
	}
	return members
}

// ImageType describes the shape of an image or sampled image type.
type ImageType struct {
	// SampledType is the component type sampling yields.
	SampledType Handle[TypeID]

	// Dim is the image dimensionality.
	Dim spv.Dim

	// Depth marks depth/comparison images.
	Depth bool

	// Arrayed marks array images.
	Arrayed bool

	// Multisampled marks multisampled images.
	Multisampled bool

	// Storage marks storage (non-sampled) images.
	Storage bool

	// Format is the texel format of storage images.
	Format spv.ImageFormat
}

// Image returns the image shape. Only meaningful when BaseType is
// BaseTypeImage or BaseTypeSampledImage.
func (t *Type) Image() ImageType {
	return ImageType{
		SampledType:  handleOf(t.owner, TypeID(C.spvc_type_get_image_sampled_type(t.ptr))),
		Dim:          spv.Dim(C.spvc_type_get_image_dimension(t.ptr)),
		Depth:        C.spvc_type_get_image_is_depth(t.ptr) != 0,
		Arrayed:      C.spvc_type_get_image_arrayed(t.ptr) != 0,
		Multisampled: C.spvc_type_get_image_multisampled(t.ptr) != 0,
		Storage:      C.spvc_type_get_image_is_storage(t.ptr) != 0,
		Format:       spv.ImageFormat(C.spvc_type_get_image_storage_format(t.ptr)),
	}
}
