// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package spirvcross

import "fmt"

// ErrorKind categorizes binding errors. Native result codes map onto
// the first four kinds; the remainder originate in the binding itself.
type ErrorKind uint8

const (
	// ErrInvalidSPIRV indicates the module is not valid SPIR-V.
	ErrInvalidSPIRV ErrorKind = iota

	// ErrUnsupportedSPIRV indicates valid SPIR-V using features the
	// native compiler does not support.
	ErrUnsupportedSPIRV

	// ErrOutOfMemory indicates a failed native allocation.
	ErrOutOfMemory

	// ErrInvalidArgument indicates a bad argument, including handles
	// passed to a compiler that did not create them.
	ErrInvalidArgument

	// ErrContextReleased indicates use of a compiler after its owning
	// context was closed.
	ErrContextReleased

	// ErrInvalidOperation indicates an operation the current target or
	// compiler state does not allow.
	ErrInvalidOperation

	// ErrUnknown indicates a native result code this binding does not
	// recognize.
	ErrUnknown
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidSPIRV:
		return "InvalidSPIRV"
	case ErrUnsupportedSPIRV:
		return "UnsupportedSPIRV"
	case ErrOutOfMemory:
		return "OutOfMemory"
	case ErrInvalidArgument:
		return "InvalidArgument"
	case ErrContextReleased:
		return "ContextReleased"
	case ErrInvalidOperation:
		return "InvalidOperation"
	default:
		return "Unknown"
	}
}

// Error is an error from the native compiler or the binding layer.
type Error struct {
	// Kind categorizes the error.
	Kind ErrorKind

	// Message is the native error message when one was recorded, or a
	// binding-provided description.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("spirvcross: %s: %s", e.Kind, e.Message)
}

// Is reports kind equality, so errors.Is can match against an
// *Error{Kind: ...} sentinel regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Native result codes of spvc_result.
const (
	resultSuccess          int32 = 0
	resultInvalidSPIRV     int32 = -1
	resultUnsupportedSPIRV int32 = -2
	resultOutOfMemory      int32 = -3
	resultInvalidArgument  int32 = -4
)

// kindForResult maps a native result code to an ErrorKind.
// Unrecognized codes map to ErrUnknown.
func kindForResult(code int32) ErrorKind {
	switch code {
	case resultInvalidSPIRV:
		return ErrInvalidSPIRV
	case resultUnsupportedSPIRV:
		return ErrUnsupportedSPIRV
	case resultOutOfMemory:
		return ErrOutOfMemory
	case resultInvalidArgument:
		return ErrInvalidArgument
	default:
		return ErrUnknown
	}
}
