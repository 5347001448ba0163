package alloc

import (
	"fmt"

	"memreach/process"
)

// DerefChain resolves an offset chain rooted at the allocation base and
// returns the address of the final field. Every offset except the last is
// dereferenced:
//
//	addr0 = base + offsets[0]
//	addr_i = *(addr_{i-1}) + offsets[i]
//
// The last offset is never dereferenced; the result is the field's address,
// which the caller then reads with a typed read. A chain of length 1 performs
// zero target reads, a chain of length n performs exactly n-1.
//
// A zero pointer read at step i fails with NullPointerError{Step: i}. A value
// that legitimately holds zero cannot be told apart from null here. The walk
// is not atomic across its reads; the target is live and may change between
// any two steps.
//
// Example:
//
//	// module+0x10 holds a pointer to the player object,
//	// the speed field lives at player+0x44
//	addr, err := a.DerefChain(0x10, 0x44)
//	speed, err := a.ReadFLOAT32(addr)
func (a Allocation) DerefChain(offsets ...int64) (process.Address, error) {
	if len(offsets) == 0 {
		return 0, process.ErrEmptyChain
	}

	addr := a.base.Add(offsets[0])

	for i := 1; i < len(offsets); i++ {
		ptr, err := a.ReadPOINTER(addr)
		if err != nil {
			return 0, fmt.Errorf("chain step %d: %w", i, err)
		}
		if ptr == 0 {
			return 0, &process.NullPointerError{Step: i, Addr: addr}
		}
		addr = ptr.Add(offsets[i])
	}

	return addr, nil
}

// DerefChainDebug does the same walk as DerefChain but prints the hop trace.
func (a Allocation) DerefChainDebug(offsets ...int64) (process.Address, error) {
	if len(offsets) == 0 {
		return 0, process.ErrEmptyChain
	}

	addr := a.base.Add(offsets[0])
	fmt.Printf("[chain] base=%#x + %#x => %#x\n", uint64(a.base), offsets[0], uint64(addr))

	for i := 1; i < len(offsets); i++ {
		ptr, err := a.ReadPOINTER(addr)
		if err != nil {
			return 0, fmt.Errorf("chain step %d: %w", i, err)
		}
		fmt.Printf("[chain] step %d: *(%#x) => %#x, + %#x => %#x\n", i, uint64(addr), uint64(ptr), offsets[i], uint64(ptr.Add(offsets[i])))
		if ptr == 0 {
			return 0, &process.NullPointerError{Step: i, Addr: addr}
		}
		addr = ptr.Add(offsets[i])
	}

	return addr, nil
}
