// Package alloc implements the address-resolution and typed-access engine:
// an Allocation binds a borrowed process handle to a base address and
// performs pointer-chain resolution and typed reads/writes against the live
// target. Nothing is cached between calls; the target's memory can change at
// any instant and every resolution is computed fresh.
package alloc

import (
	"fmt"

	"memreach/process"
)

// Allocation couples a process handle with a base address, typically a
// module base. It is an immutable value with no identity beyond its
// (handle, base) pair: copy it freely, drop it without cleanup. It borrows
// the handle and never closes it; the handle's owner must keep it open for
// the lifetime of every Allocation built on it.
//
// Allocations are safe for concurrent use. Every operation is stateless and
// issues its own OS-level transfer.
type Allocation struct {
	h    process.Handle
	base process.Address
}

var _ process.Reader = Allocation{}
var _ process.Writer = Allocation{}

// Existing binds a handle and a base address. This is pure value assembly:
// no I/O, no validation beyond the handle's own contract.
func Existing(h process.Handle, base process.Address) Allocation {
	return Allocation{h: h, base: base}
}

// Base returns the bound base address.
func (a Allocation) Base() process.Address {
	return a.base
}

// Handle returns the borrowed process handle.
func (a Allocation) Handle() process.Handle {
	return a.h
}

func (a Allocation) String() string {
	return fmt.Sprintf("%02X", uint64(a.base))
}

// ReadBytes transfers exactly size bytes out of the target at addr. A
// transfer the OS reports as short without an error is surfaced as
// PartialTransferError, never truncated.
func (a Allocation) ReadBytes(addr process.Address, size process.Size) ([]byte, error) {
	buf := make([]byte, size)
	if len(buf) == 0 {
		return buf, nil
	}

	n, err := a.h.ReadMemory(addr, buf)
	if err != nil {
		return nil, &process.ReadError{Addr: addr, Err: err}
	}
	if n != len(buf) {
		return nil, &process.PartialTransferError{Addr: addr, Expected: len(buf), Actual: n}
	}

	return buf, nil
}

// WriteBytes transfers exactly len(data) bytes into the target at addr.
// Short transfers are surfaced as PartialTransferError.
func (a Allocation) WriteBytes(addr process.Address, data []byte) error {
	if len(data) == 0 {
		return nil
	}

	n, err := a.h.WriteMemory(addr, data)
	if err != nil {
		return &process.WriteError{Addr: addr, Err: err}
	}
	if n != len(data) {
		return &process.PartialTransferError{Addr: addr, Expected: len(data), Actual: n, Write: true}
	}

	return nil
}

// ReadNTS reads a null-terminated string from addr, scanning at most
// maxLength bytes.
func (a Allocation) ReadNTS(addr process.Address, maxLength process.Size) (string, error) {
	data, err := a.ReadBytes(addr, maxLength)
	if err != nil {
		return "", err
	}

	for i, b := range data {
		if b == 0 {
			return string(data[:i]), nil
		}
	}
	return string(data), nil
}
