// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import "testing"

func TestVersion_Number(t *testing.T) {
	tests := []struct {
		version Version
		want    uint32
	}{
		{Version110, 110},
		{Version330, 330},
		{Version400, 400},
		{Version450, 450},
		{VersionES100, 100},
		{VersionES310, 310},
	}

	for _, tt := range tests {
		t.Run(tt.version.String(), func(t *testing.T) {
			if got := tt.version.Number(); got != tt.want {
				t.Errorf("Number() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestVersion_String(t *testing.T) {
	tests := []struct {
		version Version
		want    string
	}{
		{Version330, "330"},
		{Version400, "400"},
		{VersionES300, "300 es"},
		{VersionES320, "320 es"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.version.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.Version != Version450 {
		t.Errorf("Version = %v, want %v", opts.Version, Version450)
	}
	if !opts.Enable420PackExtension {
		t.Error("Enable420PackExtension should default to true")
	}
	if !opts.SupportNonzeroBaseInstance {
		t.Error("SupportNonzeroBaseInstance should default to true")
	}
	if opts.VulkanSemantics {
		t.Error("VulkanSemantics should default to false")
	}
	if opts.ForceTemporary {
		t.Error("ForceTemporary should default to false")
	}
}
