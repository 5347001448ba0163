// Package process defines the types, capability interfaces and error taxonomy
// shared by the OS-specific handle implementations and the alloc engine.
package process

import (
	"errors"
	"fmt"
)

var (
	// ErrProcessNotFound is returned by discovery when no process matches
	// the requested name or PID.
	ErrProcessNotFound = errors.New("process not found")

	// ErrModuleNotFound is returned by module resolution when the named
	// module is not loaded in the target process.
	ErrModuleNotFound = errors.New("module not found")

	// ErrProcessNotOpen is returned when an operation requiring an open
	// process is attempted before the process has been successfully opened
	// or after it has been closed.
	ErrProcessNotOpen = errors.New("process not open")

	// ErrEmptyChain is returned when chain resolution is called with no
	// offsets. A chain must contain at least one offset.
	ErrEmptyChain = errors.New("offset chain is empty")
)

// NullPointerError reports a zero value read while walking an offset chain.
// Step is the index of the offset whose dereference produced the zero. A
// field that legitimately holds zero is indistinguishable from a null pointer
// at this layer.
type NullPointerError struct {
	Step int     // index into the offset chain
	Addr Address // address the zero was read from
}

func (e *NullPointerError) Error() string {
	return fmt.Sprintf("null pointer at chain step %d (read at %s)", e.Step, e.Addr)
}

// ReadError reports a failed transfer out of the target process.
type ReadError struct {
	Addr Address
	Err  error // underlying platform error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read at %s failed: %v", e.Addr, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports a failed transfer into the target process.
type WriteError struct {
	Addr Address
	Err  error // underlying platform error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write at %s failed: %v", e.Addr, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// PartialTransferError reports an OS transfer call that succeeded but moved
// fewer bytes than requested. A short value is never returned to the caller;
// a partial value is worse than no value.
type PartialTransferError struct {
	Addr     Address
	Expected int
	Actual   int
	Write    bool
}

func (e *PartialTransferError) Error() string {
	op := "read"
	if e.Write {
		op = "write"
	}
	return fmt.Sprintf("partial %s at %s: %d of %d bytes", op, e.Addr, e.Actual, e.Expected)
}
