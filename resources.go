// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package spirvcross

/*
#include <stdlib.h>
#include <spirv_cross_c.h>
#include "native/spirv_cross_c_ext.h"
*/
import "C"

import "unsafe"

// ResourceType classifies a reflected shader resource.
type ResourceType uint32

// Resource types, matching the native enumeration.
const (
	ResourceUniformBuffer ResourceType = iota + 1
	ResourceStorageBuffer
	ResourceStageInput
	ResourceStageOutput
	ResourceSubpassInput
	ResourceStorageImage
	ResourceSampledImage
	ResourceAtomicCounter
	ResourcePushConstant
	ResourceSeparateImage
	ResourceSeparateSampler
	ResourceAccelerationStructure
	ResourceRayQuery
	ResourceShaderRecordBuffer
)

// String returns the resource type name.
func (rt ResourceType) String() string {
	switch rt {
	case ResourceUniformBuffer:
		return "UniformBuffer"
	case ResourceStorageBuffer:
		return "StorageBuffer"
	case ResourceStageInput:
		return "StageInput"
	case ResourceStageOutput:
		return "StageOutput"
	case ResourceSubpassInput:
		return "SubpassInput"
	case ResourceStorageImage:
		return "StorageImage"
	case ResourceSampledImage:
		return "SampledImage"
	case ResourceAtomicCounter:
		return "AtomicCounter"
	case ResourcePushConstant:
		return "PushConstant"
	case ResourceSeparateImage:
		return "SeparateImage"
	case ResourceSeparateSampler:
		return "SeparateSampler"
	case ResourceAccelerationStructure:
		return "AccelerationStructure"
	case ResourceRayQuery:
		return "RayQuery"
	case ResourceShaderRecordBuffer:
		return "ShaderRecordBuffer"
	default:
		return "Unknown"
	}
}

// allResourceTypes is the iteration order of ShaderResources.All.
var allResourceTypes = []ResourceType{
	ResourceUniformBuffer,
	ResourceStorageBuffer,
	ResourceStageInput,
	ResourceStageOutput,
	ResourceSubpassInput,
	ResourceStorageImage,
	ResourceSampledImage,
	ResourceAtomicCounter,
	ResourcePushConstant,
	ResourceSeparateImage,
	ResourceSeparateSampler,
	ResourceAccelerationStructure,
	ResourceRayQuery,
	ResourceShaderRecordBuffer,
}

// Resource is one reflected shader resource.
type Resource struct {
	// ID is the variable holding the resource.
	ID Handle[VariableID]

	// BaseTypeID is the resource type with arrays and pointers peeled
	// off, the id to use for decoration and member queries.
	BaseTypeID Handle[TypeID]

	// TypeID is the full type of the variable.
	TypeID Handle[TypeID]

	// Name is the declared name of the resource.
	Name string
}

// ShaderResources is a reflected snapshot of the module's resources,
// grouped by resource type.
type ShaderResources struct {
	byType map[ResourceType][]Resource
}

// ResourcesForType returns the resources of one type. The returned
// slice is shared; callers must not modify it.
func (r *ShaderResources) ResourcesForType(rt ResourceType) []Resource {
	return r.byType[rt]
}

// All returns every reflected resource grouped by type. The returned
// map is shared; callers must not modify it.
func (r *ShaderResources) All() map[ResourceType][]Resource {
	return r.byType
}

func (c *Compiler) snapshotResources(native C.spvc_resources) (*ShaderResources, error) {
	out := &ShaderResources{byType: make(map[ResourceType][]Resource)}
	for _, rt := range allResourceTypes {
		var list *C.spvc_reflected_resource
		var count C.size_t
		res := C.spvc_resources_get_resource_list_for_type(native, C.spvc_resource_type(rt), &list, &count)
		if err := c.ctx.ok(res, "get resource list"); err != nil {
			return nil, err
		}
		if count == 0 {
			continue
		}

		resources := make([]Resource, count)
		raw := unsafe.Slice(list, int(count))
		for i, nr := range raw {
			resources[i] = Resource{
				ID:         handleOf(c, VariableID(nr.id)),
				BaseTypeID: handleOf(c, TypeID(nr.base_type_id)),
				TypeID:     handleOf(c, TypeID(nr.type_id)),
				Name:       C.GoString(nr.name),
			}
		}
		out.byType[rt] = resources
	}
	return out, nil
}

// ShaderResources reflects all resources declared by the module.
func (c *Compiler) ShaderResources() (*ShaderResources, error) {
	if err := c.alive(); err != nil {
		return nil, err
	}
	var native C.spvc_resources
	res := C.spvc_compiler_create_shader_resources(c.ptr, &native)
	if err := c.ctx.ok(res, "create shader resources"); err != nil {
		return nil, err
	}
	return c.snapshotResources(native)
}

// InterfaceVariableSet is the set of variable ids forming the active
// interface of an entry point.
type InterfaceVariableSet struct {
	owner *Compiler
	set   C.spvc_set
	ids   []Handle[VariableID]
}

// Handles returns the variables in the set.
func (s *InterfaceVariableSet) Handles() []Handle[VariableID] {
	return s.ids
}

// ActiveInterfaceVariables returns the variables actively used by the
// current entry point.
func (c *Compiler) ActiveInterfaceVariables() (*InterfaceVariableSet, error) {
	if err := c.alive(); err != nil {
		return nil, err
	}
	var set C.spvc_set
	res := C.spvc_compiler_get_active_interface_variables(c.ptr, &set)
	if err := c.ctx.ok(res, "get active interface variables"); err != nil {
		return nil, err
	}

	// Two-call protocol: first read the length, then fill a buffer of
	// exactly that size.
	var length C.size_t
	C.spvc_rs_expose_set(set, nil, &length)

	ids := make([]Handle[VariableID], length)
	if length > 0 {
		raw := make([]uint32, length)
		C.spvc_rs_expose_set(set, (*C.uint32_t)(unsafe.Pointer(&raw[0])), nil)
		for i, id := range raw {
			ids[i] = handleOf(c, VariableID(id))
		}
	}

	return &InterfaceVariableSet{owner: c, set: set, ids: ids}, nil
}

// SetEnabledInterfaceVariables restricts reflection and compilation to
// the given variable set. The set must come from the same compiler.
func (c *Compiler) SetEnabledInterfaceVariables(s *InterfaceVariableSet) error {
	if err := c.alive(); err != nil {
		return err
	}
	if s == nil || s.owner != c {
		return &Error{Kind: ErrInvalidArgument, Message: "interface variable set does not belong to this compiler"}
	}
	return c.ctx.ok(C.spvc_compiler_set_enabled_interface_variables(c.ptr, s.set), "set enabled interface variables")
}

// ShaderResourcesForActiveVariables reflects only resources used by
// the variables in the set.
func (c *Compiler) ShaderResourcesForActiveVariables(s *InterfaceVariableSet) (*ShaderResources, error) {
	if err := c.alive(); err != nil {
		return nil, err
	}
	if s == nil || s.owner != c {
		return nil, &Error{Kind: ErrInvalidArgument, Message: "interface variable set does not belong to this compiler"}
	}
	var native C.spvc_resources
	res := C.spvc_compiler_create_shader_resources_for_active_variables(c.ptr, &native, s.set)
	if err := c.ctx.ok(res, "create shader resources"); err != nil {
		return nil, err
	}
	return c.snapshotResources(native)
}
