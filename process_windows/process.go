//go:build windows

// Package process_windows provides the Windows implementations of the
// process capability interfaces over ReadProcessMemory/WriteProcessMemory
// and the Toolhelp32 snapshot API.
package process_windows

import (
	"fmt"
	"math/bits"
	"syscall"
	"unsafe"

	"memreach/process"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
)

var (
	modkernel32 = syscall.NewLazyDLL("kernel32.dll")

	procOpenProcess              = modkernel32.NewProc("OpenProcess")
	procCloseHandle              = modkernel32.NewProc("CloseHandle")
	procReadProcessMemory        = modkernel32.NewProc("ReadProcessMemory")
	procWriteProcessMemory       = modkernel32.NewProc("WriteProcessMemory")
	procVirtualAllocEx           = modkernel32.NewProc("VirtualAllocEx")
	procVirtualFreeEx            = modkernel32.NewProc("VirtualFreeEx")
	procCreateToolhelp32Snapshot = modkernel32.NewProc("CreateToolhelp32Snapshot")
	procModule32FirstW           = modkernel32.NewProc("Module32FirstW")
	procModule32NextW            = modkernel32.NewProc("Module32NextW")
	procProcess32FirstW          = modkernel32.NewProc("Process32FirstW")
	procProcess32NextW           = modkernel32.NewProc("Process32NextW")
)

const (
	PROCESS_VM_READ           = 0x0010
	PROCESS_VM_WRITE          = 0x0020
	PROCESS_VM_OPERATION      = 0x0008
	PROCESS_QUERY_INFORMATION = 0x0400

	TH32CS_SNAPPROCESS  = 0x0002
	TH32CS_SNAPMODULE   = 0x0008
	TH32CS_SNAPMODULE32 = 0x0010

	MEM_COMMIT  = 0x1000
	MEM_RESERVE = 0x2000
	MEM_RELEASE = 0x8000

	PAGE_EXECUTE_READWRITE = 0x40

	invalidHandleValue = ^uintptr(0)
)

// WindowsHandle implements process.Handle over an OpenProcess handle.
type WindowsHandle struct {
	pid    process.ProcessID
	handle syscall.Handle
	log    *logger.Logger
}

var _ process.Handle = (*WindowsHandle)(nil)

// Open acquires a handle with read, write and query rights.
func Open(pid process.ProcessID) (*WindowsHandle, error) {
	return OpenWithAccess(pid, PROCESS_VM_READ|PROCESS_VM_WRITE|PROCESS_VM_OPERATION|PROCESS_QUERY_INFORMATION)
}

// OpenWithAccess acquires a handle with the given access rights. Reads need
// PROCESS_VM_READ; writes need PROCESS_VM_WRITE and PROCESS_VM_OPERATION.
// Rights are never escalated after the fact.
func OpenWithAccess(pid process.ProcessID, access uint32) (*WindowsHandle, error) {
	handle, _, err := procOpenProcess.Call(uintptr(access), 0, uintptr(pid))
	if handle == 0 {
		return nil, fmt.Errorf("OpenProcess(%d): %w", pid, err)
	}

	h := &WindowsHandle{
		pid:    pid,
		handle: syscall.Handle(handle),
		log:    logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, fmt.Sprintf("process-%d", pid))),
	}
	h.log.Infoln("Process opened")

	return h, nil
}

// OpenByName opens the matching process with the lowest PID.
func OpenByName(name string) (*WindowsHandle, error) {
	info, err := NewFinder().FindFirstByName(name)
	if err != nil {
		return nil, err
	}
	return Open(info.PID)
}

// Pid returns the target process ID
func (h *WindowsHandle) Pid() process.ProcessID {
	return h.pid
}

// PointerSize assumes the target matches the host pointer width. A WOW64
// target inspected from a 64-bit host requires wrapping the handle with one
// that overrides this.
func (h *WindowsHandle) PointerSize() uint {
	return bits.UintSize / 8
}

// Resolver returns a module resolver for the handle's target.
func (h *WindowsHandle) Resolver() *ToolhelpResolver {
	return NewToolhelpResolver(h.pid)
}

// Close releases the OS handle. Only call after all users have finished.
func (h *WindowsHandle) Close() error {
	if h.handle == 0 {
		return process.ErrProcessNotOpen
	}

	ret, _, err := procCloseHandle.Call(uintptr(h.handle))
	if ret == 0 {
		return fmt.Errorf("CloseHandle: %w", err)
	}
	h.handle = 0
	h.log.Infoln("Process closed")

	return nil
}

// ReadMemory reads len(buf) bytes of target memory at addr via
// ReadProcessMemory. Short transfers are reported through the returned
// count, not as an error.
func (h *WindowsHandle) ReadMemory(addr process.Address, buf []byte) (int, error) {
	if h.handle == 0 {
		return 0, process.ErrProcessNotOpen
	}
	if len(buf) == 0 {
		return 0, nil
	}

	var bytesRead uintptr
	ret, _, err := procReadProcessMemory.Call(
		uintptr(h.handle),
		uintptr(addr),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
		uintptr(unsafe.Pointer(&bytesRead)),
	)
	if ret == 0 {
		return 0, err
	}

	return int(bytesRead), nil
}

// WriteMemory writes data into the target's memory at addr via
// WriteProcessMemory.
func (h *WindowsHandle) WriteMemory(addr process.Address, data []byte) (int, error) {
	if h.handle == 0 {
		return 0, process.ErrProcessNotOpen
	}
	if len(data) == 0 {
		return 0, nil
	}

	var written uintptr
	ret, _, err := procWriteProcessMemory.Call(
		uintptr(h.handle),
		uintptr(addr),
		uintptr(unsafe.Pointer(&data[0])),
		uintptr(len(data)),
		uintptr(unsafe.Pointer(&written)),
	)
	if ret == 0 {
		return 0, err
	}

	return int(written), nil
}
