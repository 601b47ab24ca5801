// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package spirvcross

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorKind_String(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{ErrInvalidSPIRV, "InvalidSPIRV"},
		{ErrUnsupportedSPIRV, "UnsupportedSPIRV"},
		{ErrOutOfMemory, "OutOfMemory"},
		{ErrInvalidArgument, "InvalidArgument"},
		{ErrContextReleased, "ContextReleased"},
		{ErrInvalidOperation, "InvalidOperation"},
		{ErrUnknown, "Unknown"},
		{ErrorKind(255), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := tt.kind.String()
			if got != tt.want {
				t.Errorf("ErrorKind.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKindForResult(t *testing.T) {
	tests := []struct {
		name string
		code int32
		want ErrorKind
	}{
		{"invalid spirv", -1, ErrInvalidSPIRV},
		{"unsupported spirv", -2, ErrUnsupportedSPIRV},
		{"out of memory", -3, ErrOutOfMemory},
		{"invalid argument", -4, ErrInvalidArgument},
		{"unrecognized negative", -99, ErrUnknown},
		{"unrecognized positive", 7, ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kindForResult(tt.code); got != tt.want {
				t.Errorf("kindForResult(%d) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	err := &Error{Kind: ErrInvalidSPIRV, Message: "word count overruns module"}
	got := err.Error()
	if !strings.Contains(got, "InvalidSPIRV") {
		t.Errorf("Error() should contain kind, got %q", got)
	}
	if !strings.Contains(got, "word count overruns module") {
		t.Errorf("Error() should contain message, got %q", got)
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{Kind: ErrContextReleased, Message: "context already closed"}

	if !errors.Is(err, &Error{Kind: ErrContextReleased}) {
		t.Error("errors.Is should match on kind regardless of message")
	}
	if errors.Is(err, &Error{Kind: ErrOutOfMemory}) {
		t.Error("errors.Is should not match a different kind")
	}
	if errors.Is(err, errors.New("context already closed")) {
		t.Error("errors.Is should not match a non-Error target")
	}
}
