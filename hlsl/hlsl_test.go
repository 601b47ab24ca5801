// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import "testing"

func TestShaderModel_String(t *testing.T) {
	tests := []struct {
		model ShaderModel
		want  string
	}{
		{ShaderModel3_0, "SM 3.0"},
		{ShaderModel4_0, "SM 4.0"},
		{ShaderModel5_0, "SM 5.0"},
		{ShaderModel5_1, "SM 5.1"},
		{ShaderModel6_0, "SM 6.0"},
		{ShaderModel(62), "SM 6.2"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.model.String(); got != tt.want {
				t.Errorf("ShaderModel.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.ShaderModel != ShaderModel3_0 {
		t.Errorf("ShaderModel = %v, want %v", opts.ShaderModel, ShaderModel3_0)
	}
	if opts.PointSizeCompat || opts.PointCoordCompat {
		t.Error("compatibility workarounds should default to false")
	}
	if opts.UseEntryPointName {
		t.Error("UseEntryPointName should default to false")
	}
}
