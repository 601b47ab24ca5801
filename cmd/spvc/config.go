// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config is the merged compile configuration. Sources are layered as
// file < environment < flags, so a preset file can be overridden per
// invocation.
type Config struct {
	Target string `koanf:"target"`
	Entry  string `koanf:"entry"`
	Output string `koanf:"output"`

	GLSLVersion     uint32 `koanf:"glsl-version"`
	ES              bool   `koanf:"es"`
	VulkanSemantics bool   `koanf:"vulkan-semantics"`

	ShaderModel uint32 `koanf:"shader-model"`

	MSLVersion string `koanf:"msl-version"`
	Platform   string `koanf:"platform"`
}

// defaultConfig mirrors the native compiler defaults.
func defaultConfig() Config {
	return Config{
		Target:      "glsl",
		GLSLVersion: 450,
		ShaderModel: 30,
		MSLVersion:  "1.2",
		Platform:    "macos",
	}
}

// findConfigFile finds the preset file to use.
// Priority: explicit path > spvc.yaml > spvc.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"spvc.yaml", "spvc.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// loadConfig merges the preset file, SPVC_* environment variables and
// command line flags into a Config.
func loadConfig(flags *pflag.FlagSet, explicitPath string) (Config, error) {
	k := koanf.New(".")
	cfg := defaultConfig()

	if path := findConfigFile(explicitPath); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return cfg, fmt.Errorf("loading config %s: %w", path, err)
		}
	}

	// SPVC_GLSL_VERSION=330 -> glsl-version: 330
	err := k.Load(env.Provider("SPVC_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "SPVC_")), "_", "-")
	}), nil)
	if err != nil {
		return cfg, fmt.Errorf("loading environment: %w", err)
	}

	// Only explicitly set flags override; flag defaults must not mask
	// file or environment values.
	if flags != nil {
		err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return f.Name, posflag.FlagVal(flags, f)
		}), nil)
		if err != nil {
			return cfg, fmt.Errorf("loading flags: %w", err)
		}
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}
