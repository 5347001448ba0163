//go:build windows

package process_windows

import (
	"fmt"

	"memreach/alloc"
	"memreach/process"
)

// AllocRemoteAnywhere commits size bytes of RWX memory in the target at an
// OS-chosen address and returns an Allocation over the fresh region.
func AllocRemoteAnywhere(h *WindowsHandle, size uint) (alloc.Allocation, error) {
	return AllocRemote(h, 0, size)
}

// AllocRemote commits size bytes of RWX memory in the target at the given
// base address. The handle needs PROCESS_VM_OPERATION.
func AllocRemote(h *WindowsHandle, base process.Address, size uint) (alloc.Allocation, error) {
	if h.handle == 0 {
		return alloc.Allocation{}, process.ErrProcessNotOpen
	}

	addr, _, err := procVirtualAllocEx.Call(
		uintptr(h.handle),
		uintptr(base),
		uintptr(size),
		MEM_COMMIT|MEM_RESERVE,
		PAGE_EXECUTE_READWRITE,
	)
	if addr == 0 {
		return alloc.Allocation{}, fmt.Errorf("VirtualAllocEx(%s, %d): %w", base, size, err)
	}

	return alloc.Existing(h, process.Address(addr)), nil
}

// FreeRemote releases an entire region previously committed with
// AllocRemote.
func FreeRemote(h *WindowsHandle, base process.Address) error {
	if h.handle == 0 {
		return process.ErrProcessNotOpen
	}

	ret, _, err := procVirtualFreeEx.Call(uintptr(h.handle), uintptr(base), 0, MEM_RELEASE)
	if ret == 0 {
		return fmt.Errorf("VirtualFreeEx(%s): %w", base, err)
	}

	return nil
}
