// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package spirvcross

import (
	"errors"
	"testing"
)

func TestHandle_Ownership(t *testing.T) {
	a := &Compiler{}
	b := &Compiler{}

	h := handleOf(a, VariableID(42))
	if h.ID() != 42 {
		t.Fatalf("ID() = %d, want 42", h.ID())
	}

	id, err := yieldID(a, h)
	if err != nil {
		t.Fatalf("yieldID() with owning compiler: %v", err)
	}
	if id != 42 {
		t.Errorf("yieldID() = %d, want 42", id)
	}

	if _, err := yieldID(b, h); !errors.Is(err, &Error{Kind: ErrInvalidArgument}) {
		t.Errorf("yieldID() with foreign compiler error = %v, want ErrInvalidArgument", err)
	}
}

func TestHandle_ZeroIsInvalid(t *testing.T) {
	c := &Compiler{}

	var zero Handle[TypeID]
	if _, err := yieldID(c, zero); !errors.Is(err, &Error{Kind: ErrInvalidArgument}) {
		t.Errorf("yieldID() with zero handle error = %v, want ErrInvalidArgument", err)
	}
}

func TestHandleOfNonZero(t *testing.T) {
	c := &Compiler{}

	if _, ok := handleOfNonZero(c, ConstantID(0)); ok {
		t.Error("handleOfNonZero(0) should report no object")
	}

	h, ok := handleOfNonZero(c, ConstantID(9))
	if !ok {
		t.Fatal("handleOfNonZero(9) should mint a handle")
	}
	if h.ID() != 9 {
		t.Errorf("ID() = %d, want 9", h.ID())
	}
}
