// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spvc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func compileFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("compile", pflag.ContinueOnError)
	flags.StringP("target", "t", "glsl", "")
	flags.Uint32("glsl-version", 450, "")
	flags.Bool("es", false, "")
	flags.Uint32("shader-model", 30, "")
	return flags
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(compileFlags(), "")
	require.NoError(t, err)

	assert.Equal(t, "glsl", cfg.Target)
	assert.Equal(t, uint32(450), cfg.GLSLVersion)
	assert.Equal(t, uint32(30), cfg.ShaderModel)
	assert.Equal(t, "1.2", cfg.MSLVersion)
	assert.Equal(t, "macos", cfg.Platform)
	assert.False(t, cfg.ES)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfigFile(t, "target: hlsl\nshader-model: 51\n")

	cfg, err := loadConfig(compileFlags(), path)
	require.NoError(t, err)

	assert.Equal(t, "hlsl", cfg.Target)
	assert.Equal(t, uint32(51), cfg.ShaderModel)
	// Keys the file does not set keep their defaults.
	assert.Equal(t, uint32(450), cfg.GLSLVersion)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, "target: hlsl\nglsl-version: 330\n")
	t.Setenv("SPVC_TARGET", "msl")
	t.Setenv("SPVC_GLSL_VERSION", "310")

	cfg, err := loadConfig(compileFlags(), path)
	require.NoError(t, err)

	assert.Equal(t, "msl", cfg.Target)
	assert.Equal(t, uint32(310), cfg.GLSLVersion)
}

func TestLoadConfig_FlagOverridesEnvAndFile(t *testing.T) {
	path := writeConfigFile(t, "target: hlsl\n")
	t.Setenv("SPVC_TARGET", "msl")

	flags := compileFlags()
	require.NoError(t, flags.Parse([]string{"--target", "glsl", "--es"}))

	cfg, err := loadConfig(flags, path)
	require.NoError(t, err)

	assert.Equal(t, "glsl", cfg.Target)
	assert.True(t, cfg.ES)
}

func TestLoadConfig_UnsetFlagDoesNotMask(t *testing.T) {
	path := writeConfigFile(t, "glsl-version: 330\n")

	// The flag carries a default of 450 but was not set on the command
	// line, so the file value must win.
	flags := compileFlags()
	require.NoError(t, flags.Parse(nil))

	cfg, err := loadConfig(flags, path)
	require.NoError(t, err)

	assert.Equal(t, uint32(330), cfg.GLSLVersion)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := loadConfig(compileFlags(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
