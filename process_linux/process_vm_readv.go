//go:build linux

package process_linux

import (
	"unsafe"

	"memreach/process"

	"golang.org/x/sys/unix"
)

// processVMReadv wraps the process_vm_readv syscall. It returns the number
// of bytes transferred; a short count with no errno is possible when the
// tail of the requested range is unmapped.
func processVMReadv(pid process.ProcessID, addr process.Address, buf []byte) (int, error) {
	localIov := unix.Iovec{
		Base: &buf[0],
		Len:  uint64(len(buf)),
	}

	remoteIov := unix.RemoteIovec{
		Base: uintptr(addr),
		Len:  len(buf),
	}

	n, _, errno := unix.Syscall6(
		unix.SYS_PROCESS_VM_READV,
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

// ReadMemory reads len(buf) bytes of target memory at addr. Short transfers
// are reported through the returned count, not as an error; the caller
// decides how to treat them.
func (h *LinuxHandle) ReadMemory(addr process.Address, buf []byte) (int, error) {
	if h.pid == 0 {
		return 0, process.ErrProcessNotOpen
	}
	if len(buf) == 0 {
		return 0, nil
	}

	return processVMReadv(h.pid, addr, buf)
}
