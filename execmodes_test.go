// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package spirvcross

import "testing"

func TestExecutionModeArguments_Expand(t *testing.T) {
	c := &Compiler{}

	tests := []struct {
		name                string
		args                ExecutionModeArguments
		wantX, wantY, wantZ uint32
	}{
		{"none", NoArguments(), 0, 0, 0},
		{"unit", UnitArgument(64), 64, 0, 0},
		{"local size", LocalSizeArguments(8, 4, 1), 8, 4, 1},
		{
			"local size id",
			ExecutionModeArguments{
				kind: execArgsLocalSizeID,
				XID:  handleOf(c, ConstantID(10)),
				YID:  handleOf(c, ConstantID(11)),
				ZID:  handleOf(c, ConstantID(12)),
			},
			10, 11, 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, z := tt.args.expand()
			if x != tt.wantX || y != tt.wantY || z != tt.wantZ {
				t.Errorf("expand() = (%d, %d, %d), want (%d, %d, %d)",
					x, y, z, tt.wantX, tt.wantY, tt.wantZ)
			}
		})
	}
}
