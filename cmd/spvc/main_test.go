// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package main

import (
	"testing"

	"github.com/gogpu/spirvcross"
	"github.com/gogpu/spirvcross/glsl"
	"github.com/gogpu/spirvcross/msl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTarget(t *testing.T) {
	tests := []struct {
		in   string
		want spirvcross.Target
	}{
		{"glsl", spirvcross.TargetGLSL},
		{"GLSL", spirvcross.TargetGLSL},
		{"hlsl", spirvcross.TargetHLSL},
		{"msl", spirvcross.TargetMSL},
		{"cpp", spirvcross.TargetCPP},
		{"json", spirvcross.TargetJSON},
	}
	for _, tt := range tests {
		got, err := parseTarget(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := parseTarget("wgsl")
	assert.Error(t, err)
}

func TestParseGLSLVersion(t *testing.T) {
	tests := []struct {
		n    uint32
		es   bool
		want glsl.Version
	}{
		{450, false, glsl.Version450},
		{330, false, glsl.Version330},
		{310, true, glsl.VersionES310},
		{100, true, glsl.VersionES100},
	}
	for _, tt := range tests {
		got, err := parseGLSLVersion(tt.n, tt.es)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.n, got.Number())
	}

	for _, bad := range []uint32{0, 45, 1000, 45000} {
		_, err := parseGLSLVersion(bad, false)
		assert.Error(t, err, bad)
	}
}

func TestParseMSLVersion(t *testing.T) {
	got, err := parseMSLVersion("2.1")
	require.NoError(t, err)
	assert.Equal(t, msl.Version{Major: 2, Minor: 1}, got)

	got, err = parseMSLVersion("2.1.1")
	require.NoError(t, err)
	assert.Equal(t, msl.Version{Major: 2, Minor: 1, Patch: 1}, got)

	for _, bad := range []string{"", "2", "2.x", "2.1.0.0"} {
		_, err := parseMSLVersion(bad)
		assert.Error(t, err, bad)
	}
}

func TestParsePlatform(t *testing.T) {
	got, err := parsePlatform("ios")
	require.NoError(t, err)
	assert.Equal(t, msl.PlatformIOS, got)

	got, err = parsePlatform("macOS")
	require.NoError(t, err)
	assert.Equal(t, msl.PlatformMacOS, got)

	_, err = parsePlatform("windows")
	assert.Error(t, err)
}
