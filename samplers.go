// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package spirvcross

/*
#include <spirv_cross_c.h>
*/
import "C"

import "unsafe"

// DummySamplerResult proves CreateDummySamplerForCombinedImages ran on
// a compiler, which BuildCombinedImageSamplers requires.
type DummySamplerResult struct {
	// SamplerID is the injected dummy sampler, when one was needed.
	SamplerID Handle[VariableID]

	// Created is false when no dummy sampler was necessary.
	Created bool

	owner *Compiler
}

// CreateDummySamplerForCombinedImages analyzes texelFetch usage and
// injects a dummy sampler if any fetch lacks one, which GLSL targets
// require. The returned sampler variable, if any, can be decorated
// with set and binding before compiling.
//
// Must be called before BuildCombinedImageSamplers.
func (c *Compiler) CreateDummySamplerForCombinedImages() (DummySamplerResult, error) {
	if err := c.alive(); err != nil {
		return DummySamplerResult{}, err
	}
	var id C.spvc_variable_id
	res := C.spvc_compiler_build_dummy_sampler_for_combined_images(c.ptr, &id)
	if err := c.ctx.ok(res, "build dummy sampler"); err != nil {
		return DummySamplerResult{}, err
	}

	h, created := handleOfNonZero(c, VariableID(id))
	return DummySamplerResult{SamplerID: h, Created: created, owner: c}, nil
}

// BuildCombinedImageSamplers re-routes all separate images and
// samplers used by the active entry point through combined image
// samplers, for targets without separate sampler support. The new
// sampled images appear in subsequent ShaderResources calls, without
// names or binding decorations.
//
// The proof must come from CreateDummySamplerForCombinedImages on the
// same compiler; a proof from another compiler is rejected.
func (c *Compiler) BuildCombinedImageSamplers(proof DummySamplerResult) error {
	if err := c.alive(); err != nil {
		return err
	}
	if proof.owner != c {
		return &Error{Kind: ErrInvalidOperation, Message: "dummy sampler proof does not belong to this compiler"}
	}
	return c.ctx.ok(C.spvc_compiler_build_combined_image_samplers(c.ptr), "build combined image samplers")
}

// CombinedImageSampler is one remapped image/sampler pair.
type CombinedImageSampler struct {
	// CombinedID is the created combined image sampler variable.
	CombinedID Handle[VariableID]

	// ImageID is the split image the pair was built from.
	ImageID Handle[VariableID]

	// SamplerID is the split sampler the pair was built from.
	SamplerID Handle[VariableID]
}

// CombinedImageSamplers returns the remapping produced by
// BuildCombinedImageSamplers.
func (c *Compiler) CombinedImageSamplers() ([]CombinedImageSampler, error) {
	if err := c.alive(); err != nil {
		return nil, err
	}
	var list *C.spvc_combined_image_sampler
	var count C.size_t
	res := C.spvc_compiler_get_combined_image_samplers(c.ptr, &list, &count)
	if err := c.ctx.ok(res, "get combined image samplers"); err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}

	out := make([]CombinedImageSampler, count)
	for i, s := range unsafe.Slice(list, int(count)) {
		out[i] = CombinedImageSampler{
			CombinedID: handleOf(c, VariableID(s.combined_id)),
			ImageID:    handleOf(c, VariableID(s.image_id)),
			SamplerID:  handleOf(c, VariableID(s.sampler_id)),
		}
	}
	return out, nil
}
