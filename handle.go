// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package spirvcross

// VariableID is the SPIR-V id of a variable.
type VariableID uint32

// TypeID is the SPIR-V id of a type.
type TypeID uint32

// ConstantID is the SPIR-V id of a constant.
type ConstantID uint32

// spirvID is the set of id types reflection can return.
type spirvID interface {
	VariableID | TypeID | ConstantID
}

// Handle is a reflected SPIR-V id tagged with the compiler instance it
// came from. Ids are only meaningful within one module, so every
// method taking a Handle rejects handles minted by another compiler
// with ErrInvalidArgument.
//
// The zero Handle is invalid everywhere.
type Handle[T spirvID] struct {
	id    T
	owner *Compiler
}

// ID returns the raw SPIR-V id.
func (h Handle[T]) ID() uint32 {
	return uint32(h.id)
}

// handleOf mints a handle owned by c.
func handleOf[T spirvID](c *Compiler, id T) Handle[T] {
	return Handle[T]{id: id, owner: c}
}

// handleOfNonZero mints a handle, treating id 0 as "no object".
// The second return is false for id 0.
func handleOfNonZero[T spirvID](c *Compiler, id T) (Handle[T], bool) {
	if id == 0 {
		return Handle[T]{}, false
	}
	return handleOf(c, id), true
}

// yieldID validates ownership of h against c and unwraps the raw id.
func yieldID[T spirvID](c *Compiler, h Handle[T]) (T, error) {
	if h.owner != c {
		return 0, &Error{Kind: ErrInvalidArgument, Message: "handle does not belong to this compiler"}
	}
	return h.id, nil
}
