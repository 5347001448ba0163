package process

import (
	"fmt"
)

// Address represents a memory address within a target process. It is never a
// pointer of the host process and must not be dereferenced directly; all
// access to the bytes behind it goes through a Handle.
type Address uint64

// Add applies a signed offset to the address. Arithmetic wraps per two's
// complement; there is no alignment requirement.
func (a Address) Add(offset int64) Address {
	return Address(uint64(a) + uint64(offset))
}

func (a Address) String() string {
	return fmt.Sprintf("0x%X", uint64(a))
}

// Size represents a size of a memory region or transfer
type Size uint

func (s Size) String() string {
	return fmt.Sprintf("%d bytes", uint(s))
}

// Module describes a module loaded inside a target process. It is produced
// fresh on every resolution and never cached: a module can be unloaded or
// relocated at any time.
type Module struct {
	Name string
	Base Address
	Size Size
}

func (m Module) String() string {
	return fmt.Sprintf("%s @ %s (%s)", m.Name, m.Base, m.Size)
}
