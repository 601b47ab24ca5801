// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Command spvc cross-compiles and reflects SPIR-V modules.
//
// It is a thin front end over the spirvcross package: compile turns a
// .spv file into GLSL, HLSL or MSL source, and reflect dumps the
// module's entry points and resource bindings.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/spirvcross"
	"github.com/gogpu/spirvcross/glsl"
	"github.com/gogpu/spirvcross/hlsl"
	"github.com/gogpu/spirvcross/msl"
	"github.com/gogpu/spirvcross/spv"
	"github.com/spf13/cobra"
)

// Version information (set at build time).
var (
	version   = "0.1.0"
	gitCommit = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "spvc: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:           "spvc",
		Short:         "SPIR-V cross compiler",
		Long:          `spvc translates SPIR-V modules to GLSL, HLSL or MSL and reports their reflected interface.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetVersionTemplate(fmt.Sprintf("spvc {{.Version}} (%s)\n", gitCommit))

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "preset file (default: ./spvc.yaml)")

	rootCmd.AddCommand(newCompileCmd(&cfgFile))
	rootCmd.AddCommand(newReflectCmd())
	return rootCmd
}

func newCompileCmd(cfgFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile <input.spv>",
		Short: "Translate a SPIR-V module to shader source",
		Example: `  # Emit GLSL 450 (the default)
  spvc compile shader.spv

  # Emit OpenGL ES 3.0 GLSL
  spvc compile --target glsl --glsl-version 300 --es shader.spv

  # Emit HLSL for shader model 5.0
  spvc compile --target hlsl --shader-model 50 -o shader.hlsl shader.spv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags(), *cfgFile)
			if err != nil {
				return err
			}
			return runCompile(cmd, cfg, args[0])
		},
	}

	cmd.Flags().StringP("target", "t", "glsl", "output language (glsl, hlsl, msl)")
	cmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	cmd.Flags().String("entry", "", "entry point to compile")
	cmd.Flags().Uint32("glsl-version", 450, "GLSL version number, e.g. 330 or 310")
	cmd.Flags().Bool("es", false, "emit OpenGL ES GLSL")
	cmd.Flags().Bool("vulkan-semantics", false, "keep Vulkan binding semantics in GLSL")
	cmd.Flags().Uint32("shader-model", 30, "HLSL shader model, e.g. 50 for SM 5.0")
	cmd.Flags().String("msl-version", "1.2", "MSL version, e.g. 2.1")
	cmd.Flags().String("platform", "macos", "MSL platform (macos, ios)")
	return cmd
}

func runCompile(cmd *cobra.Command, cfg Config, input string) error {
	target, err := parseTarget(cfg.Target)
	if err != nil {
		return err
	}

	ctx, compiler, err := openCompiler(input, target)
	if err != nil {
		return err
	}
	defer ctx.Close()

	if cfg.Entry != "" {
		model, err := compiler.ExecutionModel()
		if err != nil {
			return err
		}
		if err := compiler.SetEntryPoint(cfg.Entry, model); err != nil {
			return err
		}
	}

	var source string
	switch target {
	case spirvcross.TargetGLSL:
		opts := glsl.DefaultOptions()
		opts.Version, err = parseGLSLVersion(cfg.GLSLVersion, cfg.ES)
		if err != nil {
			return err
		}
		opts.VulkanSemantics = cfg.VulkanSemantics
		source, err = compiler.CompileGLSL(opts)
	case spirvcross.TargetHLSL:
		opts := hlsl.DefaultOptions()
		opts.ShaderModel = hlsl.ShaderModel(cfg.ShaderModel)
		source, err = compiler.CompileHLSL(opts)
	case spirvcross.TargetMSL:
		opts := msl.DefaultOptions()
		opts.LangVersion, err = parseMSLVersion(cfg.MSLVersion)
		if err != nil {
			return err
		}
		opts.Platform, err = parsePlatform(cfg.Platform)
		if err != nil {
			return err
		}
		source, err = compiler.CompileMSL(opts)
	default:
		source, err = compiler.Compile()
	}
	if err != nil {
		return err
	}

	if cfg.Output == "" {
		fmt.Fprint(cmd.OutOrStdout(), source)
		return nil
	}
	return os.WriteFile(cfg.Output, []byte(source), 0o644)
}

func newReflectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reflect <input.spv>",
		Short: "Dump a module's entry points and resource bindings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReflect(cmd, args[0])
		},
	}
}

func runReflect(cmd *cobra.Command, input string) error {
	ctx, compiler, err := openCompiler(input, spirvcross.TargetNone)
	if err != nil {
		return err
	}
	defer ctx.Close()

	out := cmd.OutOrStdout()

	entries, err := compiler.EntryPoints()
	if err != nil {
		return err
	}
	for _, ep := range entries {
		fmt.Fprintf(out, "entry point %q (%s)\n", ep.Name, ep.ExecutionModel)
	}

	resources, err := compiler.ShaderResources()
	if err != nil {
		return err
	}
	for _, rt := range reflectOrder {
		for _, r := range resources.ResourcesForType(rt) {
			set, binding, location := resourceBindings(compiler, r)
			fmt.Fprintf(out, "%s %q: set=%s binding=%s location=%s\n",
				rt, r.Name, set, binding, location)
		}
	}
	return nil
}

// reflectOrder fixes the listing order of the reflect command.
var reflectOrder = []spirvcross.ResourceType{
	spirvcross.ResourceStageInput,
	spirvcross.ResourceStageOutput,
	spirvcross.ResourceUniformBuffer,
	spirvcross.ResourceStorageBuffer,
	spirvcross.ResourcePushConstant,
	spirvcross.ResourceSubpassInput,
	spirvcross.ResourceStorageImage,
	spirvcross.ResourceSampledImage,
	spirvcross.ResourceSeparateImage,
	spirvcross.ResourceSeparateSampler,
	spirvcross.ResourceAtomicCounter,
	spirvcross.ResourceAccelerationStructure,
	spirvcross.ResourceRayQuery,
	spirvcross.ResourceShaderRecordBuffer,
}

// resourceBindings formats the set, binding and location decorations of
// a resource, with "-" standing in for an absent decoration.
func resourceBindings(c *spirvcross.Compiler, r spirvcross.Resource) (set, binding, location string) {
	format := func(d spv.Decoration) string {
		v, err := c.Decoration(r.ID, d)
		if err != nil || !v.Present() {
			return "-"
		}
		literal, _ := v.Literal()
		return strconv.FormatUint(uint64(literal), 10)
	}
	return format(spv.DecorationDescriptorSet), format(spv.DecorationBinding), format(spv.DecorationLocation)
}

// openCompiler reads a .spv file and builds a compiler for it. The
// caller must Close the returned context.
func openCompiler(input string, target spirvcross.Target) (*spirvcross.Context, *spirvcross.Compiler, error) {
	data, err := os.ReadFile(input)
	if err != nil {
		return nil, nil, err
	}
	module, err := spirvcross.ModuleFromBytes(data)
	if err != nil {
		return nil, nil, err
	}
	ctx, err := spirvcross.NewContext()
	if err != nil {
		return nil, nil, err
	}
	compiler, err := ctx.CreateCompiler(target, module)
	if err != nil {
		ctx.Close()
		return nil, nil, err
	}
	return ctx, compiler, nil
}

func parseTarget(s string) (spirvcross.Target, error) {
	switch strings.ToLower(s) {
	case "glsl":
		return spirvcross.TargetGLSL, nil
	case "hlsl":
		return spirvcross.TargetHLSL, nil
	case "msl":
		return spirvcross.TargetMSL, nil
	case "cpp":
		return spirvcross.TargetCPP, nil
	case "json":
		return spirvcross.TargetJSON, nil
	default:
		return spirvcross.TargetNone, fmt.Errorf("unknown target %q", s)
	}
}

// parseGLSLVersion splits a #version-style number like 330 or 310 into
// its major and minor parts.
func parseGLSLVersion(n uint32, es bool) (glsl.Version, error) {
	if n < 100 || n > 999 {
		return glsl.Version{}, fmt.Errorf("invalid GLSL version %d", n)
	}
	return glsl.Version{Major: uint8(n / 100), Minor: uint8(n % 100), ES: es}, nil
}

// parseMSLVersion parses "major.minor" or "major.minor.patch".
func parseMSLVersion(s string) (msl.Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 && len(parts) != 3 {
		return msl.Version{}, fmt.Errorf("invalid MSL version %q", s)
	}
	nums := make([]uint8, 3)
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return msl.Version{}, fmt.Errorf("invalid MSL version %q", s)
		}
		nums[i] = uint8(n)
	}
	return msl.Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

func parsePlatform(s string) (msl.Platform, error) {
	switch strings.ToLower(s) {
	case "macos":
		return msl.PlatformMacOS, nil
	case "ios":
		return msl.PlatformIOS, nil
	default:
		return 0, fmt.Errorf("unknown MSL platform %q", s)
	}
}
