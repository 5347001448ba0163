//go:build linux

// Package process_linux provides the Linux implementations of the process
// capability interfaces: a memory handle over process_vm_readv/writev,
// /proc-based process discovery, and a maps-based module resolver.
package process_linux

import (
	"fmt"
	"math/bits"
	"os"

	"memreach/process"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
)

// LinuxHandle implements process.Handle using the process_vm_readv and
// process_vm_writev syscalls. No ptrace attach happens; the caller needs
// CAP_SYS_PTRACE or the same uid as the target under the usual ptrace_scope
// rules.
type LinuxHandle struct {
	pid process.ProcessID
	log *logger.Logger
}

var _ process.Handle = (*LinuxHandle)(nil)

// Open acquires a memory handle for the given PID.
func Open(pid process.ProcessID) (*LinuxHandle, error) {
	if _, err := os.Stat(fmt.Sprintf("/proc/%d", pid)); os.IsNotExist(err) {
		return nil, fmt.Errorf("pid %d: %w", pid, process.ErrProcessNotFound)
	}

	h := &LinuxHandle{
		pid: pid,
		log: logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, fmt.Sprintf("process-%d", pid))),
	}
	h.log.Infoln("Process opened")

	return h, nil
}

// OpenByName opens the matching process with the lowest PID.
func OpenByName(name string) (*LinuxHandle, error) {
	info, err := NewFinder().FindFirstByName(name)
	if err != nil {
		return nil, err
	}
	return Open(info.PID)
}

// Pid returns the target process ID
func (h *LinuxHandle) Pid() process.ProcessID {
	return h.pid
}

// PointerSize assumes the target matches the host pointer width. Inspecting
// a 32-bit target from a 64-bit host requires wrapping the handle with one
// that overrides this.
func (h *LinuxHandle) PointerSize() uint {
	return bits.UintSize / 8
}

// Resolver returns a module resolver for the handle's target.
func (h *LinuxHandle) Resolver() *MapsResolver {
	return NewMapsResolver(h.pid)
}

// Close releases the handle. There is no OS resource behind it on Linux;
// this only invalidates further use.
func (h *LinuxHandle) Close() error {
	if h.pid == 0 {
		return process.ErrProcessNotOpen
	}

	h.log.Infoln("Process closed")
	h.pid = 0

	return nil
}
