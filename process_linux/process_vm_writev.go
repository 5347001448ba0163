//go:build linux

package process_linux

import (
	"unsafe"

	"memreach/process"

	"golang.org/x/sys/unix"
)

// processVMWritev wraps the process_vm_writev syscall and returns the number
// of bytes transferred.
func processVMWritev(pid process.ProcessID, addr process.Address, data []byte) (int, error) {
	localIov := unix.Iovec{
		Base: &data[0],
		Len:  uint64(len(data)),
	}

	remoteIov := unix.RemoteIovec{
		Base: uintptr(addr),
		Len:  len(data),
	}

	n, _, errno := unix.Syscall6(
		unix.SYS_PROCESS_VM_WRITEV,
		uintptr(pid),                        // Remote process PID
		uintptr(unsafe.Pointer(&localIov)),  // Local iovec
		uintptr(1),                          // Number of local iovecs
		uintptr(unsafe.Pointer(&remoteIov)), // Remote iovec
		uintptr(1),                          // Number of remote iovecs
		uintptr(0),                          // Flags (reserved for future use)
	)
	if errno != 0 {
		return 0, errno
	}

	return int(n), nil
}

// WriteMemory writes data into the target's memory at addr. Short transfers
// are reported through the returned count, not as an error.
func (h *LinuxHandle) WriteMemory(addr process.Address, data []byte) (int, error) {
	if h.pid == 0 {
		return 0, process.ErrProcessNotOpen
	}
	if len(data) == 0 {
		return 0, nil
	}

	return processVMWritev(h.pid, addr, data)
}
