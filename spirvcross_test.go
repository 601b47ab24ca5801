// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package spirvcross

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/spirvcross/glsl"
	"github.com/gogpu/spirvcross/spv"
)

// fragmentModule assembles the smallest valid fragment shader:
//
//	OpEntryPoint Fragment %main "main"
//	OpExecutionMode %main OriginUpperLeft
//
// with an empty function body.
func fragmentModule() Module {
	return ModuleFromWords([]uint32{
		spirvMagic, 0x00010000, 0, 5, 0,
		2<<16 | 17, 1, // OpCapability Shader
		3<<16 | 14, 0, 1, // OpMemoryModel Logical GLSL450
		5<<16 | 15, 4, 1, 0x6e69616d, 0, // OpEntryPoint Fragment %1 "main"
		3<<16 | 16, 1, 7, // OpExecutionMode %1 OriginUpperLeft
		2<<16 | 19, 2, // %2 = OpTypeVoid
		3<<16 | 33, 3, 2, // %3 = OpTypeFunction %2
		5<<16 | 54, 2, 1, 0, 3, // %1 = OpFunction %2 None %3
		2<<16 | 248, 4, // %4 = OpLabel
		1<<16 | 253, // OpReturn
		1<<16 | 56,  // OpFunctionEnd
	})
}

// computeModule assembles an empty compute shader with
// OpExecutionMode %main LocalSize 8 4 1.
func computeModule() Module {
	return ModuleFromWords([]uint32{
		spirvMagic, 0x00010000, 0, 5, 0,
		2<<16 | 17, 1,
		3<<16 | 14, 0, 1,
		5<<16 | 15, 5, 1, 0x6e69616d, 0, // OpEntryPoint GLCompute %1 "main"
		6<<16 | 16, 1, 17, 8, 4, 1, // OpExecutionMode %1 LocalSize 8 4 1
		2<<16 | 19, 2,
		3<<16 | 33, 3, 2,
		5<<16 | 54, 2, 1, 0, 3,
		2<<16 | 248, 4,
		1<<16 | 253,
		1<<16 | 56,
	})
}

// uniformFragmentModule assembles a fragment shader declaring one
// uniform buffer, block name "UBO", variable name "ubo", holding a
// single float at offset 0, bound to set 0 binding 1.
func uniformFragmentModule() Module {
	return ModuleFromWords([]uint32{
		spirvMagic, 0x00010000, 0, 9, 0,
		2<<16 | 17, 1,
		3<<16 | 14, 0, 1,
		5<<16 | 15, 4, 1, 0x6e69616d, 0,
		3<<16 | 16, 1, 7,
		3<<16 | 5, 6, 0x004f4255, // OpName %6 "UBO"
		3<<16 | 5, 8, 0x006f6275, // OpName %8 "ubo"
		3<<16 | 71, 6, 2, // OpDecorate %6 Block
		5<<16 | 72, 6, 0, 35, 0, // OpMemberDecorate %6 0 Offset 0
		4<<16 | 71, 8, 34, 0, // OpDecorate %8 DescriptorSet 0
		4<<16 | 71, 8, 33, 1, // OpDecorate %8 Binding 1
		2<<16 | 19, 2,
		3<<16 | 33, 3, 2,
		3<<16 | 22, 5, 32, // %5 = OpTypeFloat 32
		3<<16 | 30, 6, 5, // %6 = OpTypeStruct %5
		4<<16 | 32, 7, 2, 6, // %7 = OpTypePointer Uniform %6
		4<<16 | 59, 7, 8, 2, // %8 = OpVariable %7 Uniform
		5<<16 | 54, 2, 1, 0, 3,
		2<<16 | 248, 4,
		1<<16 | 253,
		1<<16 | 56,
	})
}

func newTestCompiler(t *testing.T, target Target, m Module) (*Context, *Compiler) {
	t.Helper()
	ctx, err := NewContext()
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}
	t.Cleanup(func() { ctx.Close() })

	compiler, err := ctx.CreateCompiler(target, m)
	if err != nil {
		t.Fatalf("CreateCompiler(%v) error = %v", target, err)
	}
	return ctx, compiler
}

func TestContext_CloseIdempotent(t *testing.T) {
	ctx, err := NewContext()
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}
	if err := ctx.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := ctx.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}

	if _, err := ctx.CreateCompiler(TargetGLSL, fragmentModule()); !errors.Is(err, &Error{Kind: ErrContextReleased}) {
		t.Errorf("CreateCompiler() after Close error = %v, want ErrContextReleased", err)
	}
}

func TestCompiler_UseAfterClose(t *testing.T) {
	ctx, compiler := newTestCompiler(t, TargetNone, fragmentModule())
	if err := ctx.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if _, err := compiler.EntryPoints(); !errors.Is(err, &Error{Kind: ErrContextReleased}) {
		t.Errorf("EntryPoints() after Close error = %v, want ErrContextReleased", err)
	}
	if _, err := compiler.Compile(); !errors.Is(err, &Error{Kind: ErrContextReleased}) {
		t.Errorf("Compile() after Close error = %v, want ErrContextReleased", err)
	}
}

func TestCreateCompiler_InvalidModule(t *testing.T) {
	ctx, err := NewContext()
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}
	defer ctx.Close()

	// Header only, truncated instruction stream.
	bad := ModuleFromWords([]uint32{spirvMagic, 0x00010000, 0, 5, 0, 9 << 16})
	if _, err := ctx.CreateCompiler(TargetGLSL, bad); !errors.Is(err, &Error{Kind: ErrInvalidSPIRV}) {
		t.Errorf("CreateCompiler() error = %v, want ErrInvalidSPIRV", err)
	}
}

func TestCompiler_Reflection(t *testing.T) {
	_, compiler := newTestCompiler(t, TargetNone, fragmentModule())

	entries, err := compiler.EntryPoints()
	if err != nil {
		t.Fatalf("EntryPoints() error = %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "main" || entries[0].ExecutionModel != spv.ExecutionModelFragment {
		t.Fatalf("EntryPoints() = %+v, want one Fragment entry named main", entries)
	}

	model, err := compiler.ExecutionModel()
	if err != nil {
		t.Fatalf("ExecutionModel() error = %v", err)
	}
	if model != spv.ExecutionModelFragment {
		t.Errorf("ExecutionModel() = %v, want Fragment", model)
	}

	args, ok, err := compiler.ExecutionModeArguments(spv.ExecutionModeOriginUpperLeft)
	if err != nil || !ok {
		t.Fatalf("ExecutionModeArguments(OriginUpperLeft) = (%+v, %v, %v), want set", args, ok, err)
	}

	if _, ok, _ := compiler.ExecutionModeArguments(spv.ExecutionModeLocalSize); ok {
		t.Error("ExecutionModeArguments(LocalSize) should be unused on a fragment shader")
	}

	if _, err := compiler.Compile(); !errors.Is(err, &Error{Kind: ErrInvalidOperation}) {
		t.Errorf("Compile() on a reflection-only compiler error = %v, want ErrInvalidOperation", err)
	}
}

func TestCompiler_LocalSize(t *testing.T) {
	_, compiler := newTestCompiler(t, TargetNone, computeModule())

	args, ok, err := compiler.ExecutionModeArguments(spv.ExecutionModeLocalSize)
	if err != nil || !ok {
		t.Fatalf("ExecutionModeArguments(LocalSize) = (%+v, %v, %v), want set", args, ok, err)
	}
	if args.X != 8 || args.Y != 4 || args.Z != 1 {
		t.Errorf("LocalSize = (%d, %d, %d), want (8, 4, 1)", args.X, args.Y, args.Z)
	}
}

func TestCompiler_CompileGLSL(t *testing.T) {
	_, compiler := newTestCompiler(t, TargetGLSL, fragmentModule())

	source, err := compiler.CompileGLSL(glsl.DefaultOptions())
	if err != nil {
		t.Fatalf("CompileGLSL() error = %v", err)
	}
	if !strings.Contains(source, "#version 450") {
		t.Errorf("output should declare #version 450, got:\n%s", source)
	}
	if !strings.Contains(source, "void main()") {
		t.Errorf("output should contain void main(), got:\n%s", source)
	}
}

func TestCompiler_CompileGLSL_ES(t *testing.T) {
	_, compiler := newTestCompiler(t, TargetGLSL, fragmentModule())

	opts := glsl.DefaultOptions()
	opts.Version = glsl.VersionES310
	source, err := compiler.CompileGLSL(opts)
	if err != nil {
		t.Fatalf("CompileGLSL() error = %v", err)
	}
	if !strings.Contains(source, "#version 310 es") {
		t.Errorf("output should declare #version 310 es, got:\n%s", source)
	}
}

func TestCompiler_CompileGLSL_WrongTarget(t *testing.T) {
	_, compiler := newTestCompiler(t, TargetHLSL, fragmentModule())

	if _, err := compiler.CompileGLSL(glsl.DefaultOptions()); !errors.Is(err, &Error{Kind: ErrInvalidOperation}) {
		t.Errorf("CompileGLSL() on an HLSL compiler error = %v, want ErrInvalidOperation", err)
	}
}

func TestCompiler_ShaderResources(t *testing.T) {
	_, compiler := newTestCompiler(t, TargetNone, uniformFragmentModule())

	resources, err := compiler.ShaderResources()
	if err != nil {
		t.Fatalf("ShaderResources() error = %v", err)
	}

	ubos := resources.ResourcesForType(ResourceUniformBuffer)
	if len(ubos) != 1 {
		t.Fatalf("got %d uniform buffers, want 1", len(ubos))
	}
	ubo := ubos[0]
	if ubo.Name != "UBO" {
		t.Errorf("resource name = %q, want %q", ubo.Name, "UBO")
	}

	name, err := compiler.Name(ubo.ID)
	if err != nil {
		t.Fatalf("Name() error = %v", err)
	}
	if name != "ubo" {
		t.Errorf("Name() = %q, want %q", name, "ubo")
	}

	binding, err := compiler.Decoration(ubo.ID, spv.DecorationBinding)
	if err != nil {
		t.Fatalf("Decoration(Binding) error = %v", err)
	}
	if v, ok := binding.Literal(); !ok || v != 1 {
		t.Errorf("Binding = (%d, %v), want (1, true)", v, ok)
	}

	set, err := compiler.Decoration(ubo.ID, spv.DecorationDescriptorSet)
	if err != nil {
		t.Fatalf("Decoration(DescriptorSet) error = %v", err)
	}
	if v, ok := set.Literal(); !ok || v != 0 {
		t.Errorf("DescriptorSet = (%d, %v), want (0, true)", v, ok)
	}

	size, err := compiler.DeclaredStructSize(ubo.BaseTypeID)
	if err != nil {
		t.Fatalf("DeclaredStructSize() error = %v", err)
	}
	if size != 4 {
		t.Errorf("DeclaredStructSize() = %d, want 4", size)
	}
}

func TestCompiler_TypeDecorations(t *testing.T) {
	_, compiler := newTestCompiler(t, TargetNone, uniformFragmentModule())

	resources, err := compiler.ShaderResources()
	if err != nil {
		t.Fatalf("ShaderResources() error = %v", err)
	}
	structType := resources.ResourcesForType(ResourceUniformBuffer)[0].BaseTypeID

	block, err := compiler.TypeDecoration(structType, spv.DecorationBlock)
	if err != nil {
		t.Fatalf("TypeDecoration(Block) error = %v", err)
	}
	if !block.Present() {
		t.Fatal("the uniform buffer struct should carry Block")
	}

	if err := compiler.SetTypeDecoration(structType, spv.DecorationArrayStride, DecorationLiteral(16)); err != nil {
		t.Fatalf("SetTypeDecoration(ArrayStride) error = %v", err)
	}
	stride, err := compiler.TypeDecoration(structType, spv.DecorationArrayStride)
	if err != nil {
		t.Fatalf("TypeDecoration(ArrayStride) error = %v", err)
	}
	if v, ok := stride.Literal(); !ok || v != 16 {
		t.Errorf("ArrayStride after set = (%d, %v), want (16, true)", v, ok)
	}

	if err := compiler.SetTypeDecoration(structType, spv.DecorationArrayStride, DecorationValue{}); err != nil {
		t.Fatalf("SetTypeDecoration(unset) error = %v", err)
	}
	stride, err = compiler.TypeDecoration(structType, spv.DecorationArrayStride)
	if err != nil {
		t.Fatalf("TypeDecoration(ArrayStride) error = %v", err)
	}
	if stride.Present() {
		t.Error("ArrayStride should be absent after unset")
	}
}

func TestCompiler_ForeignHandle(t *testing.T) {
	ctx, err := NewContext()
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}
	defer ctx.Close()

	a, err := ctx.CreateCompiler(TargetNone, uniformFragmentModule())
	if err != nil {
		t.Fatalf("CreateCompiler() error = %v", err)
	}
	b, err := ctx.CreateCompiler(TargetNone, uniformFragmentModule())
	if err != nil {
		t.Fatalf("CreateCompiler() error = %v", err)
	}

	resources, err := a.ShaderResources()
	if err != nil {
		t.Fatalf("ShaderResources() error = %v", err)
	}
	ubo := resources.ResourcesForType(ResourceUniformBuffer)[0]

	// Same module, same ids, but the handle belongs to compiler a.
	if _, err := b.Name(ubo.ID); !errors.Is(err, &Error{Kind: ErrInvalidArgument}) {
		t.Errorf("Name() with a foreign handle error = %v, want ErrInvalidArgument", err)
	}
}

func TestCompiler_RenameEntryPoint(t *testing.T) {
	_, compiler := newTestCompiler(t, TargetGLSL, fragmentModule())

	if err := compiler.RenameEntryPoint("main", "frag_main", spv.ExecutionModelFragment); err != nil {
		t.Fatalf("RenameEntryPoint() error = %v", err)
	}

	entries, err := compiler.EntryPoints()
	if err != nil {
		t.Fatalf("EntryPoints() error = %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "frag_main" {
		t.Errorf("EntryPoints() after rename = %+v, want frag_main", entries)
	}
}
