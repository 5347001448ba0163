//go:build windows

package process_windows

import (
	"errors"
	"fmt"
	"strings"
	"syscall"
	"unsafe"

	"memreach/process"
)

type processEntry32 struct {
	Size            uint32
	CntUsage        uint32
	ProcessID       uint32
	DefaultHeapID   uintptr
	ModuleID        uint32
	CntThreads      uint32
	ParentProcessID uint32
	PriClassBase    int32
	Flags           uint32
	SzExeFile       [maxPath]uint16
}

// WindowsFinder implements process.Finder with Toolhelp32 process snapshots.
type WindowsFinder struct{}

var _ process.Finder = (*WindowsFinder)(nil)

// NewFinder creates a new WindowsFinder
func NewFinder() *WindowsFinder {
	return &WindowsFinder{}
}

func (f *WindowsFinder) snapshot() ([]process.ProcessInfo, error) {
	snap, _, err := procCreateToolhelp32Snapshot.Call(TH32CS_SNAPPROCESS, 0)
	if snap == invalidHandleValue {
		return nil, fmt.Errorf("CreateToolhelp32Snapshot: %w", err)
	}
	defer procCloseHandle.Call(snap)

	var entry processEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))

	ret, _, err := procProcess32FirstW.Call(snap, uintptr(unsafe.Pointer(&entry)))
	if ret == 0 {
		return nil, fmt.Errorf("Process32FirstW: %w", err)
	}

	var out []process.ProcessInfo
	for {
		out = append(out, process.ProcessInfo{
			PID:  process.ProcessID(entry.ProcessID),
			PPID: process.ProcessID(entry.ParentProcessID),
			Name: syscall.UTF16ToString(entry.SzExeFile[:]),
		})

		if ret, _, _ = procProcess32NextW.Call(snap, uintptr(unsafe.Pointer(&entry))); ret == 0 {
			break
		}
	}

	return out, nil
}

// FindByPID returns information about the process with the given PID.
func (f *WindowsFinder) FindByPID(pid process.ProcessID) (*process.ProcessInfo, error) {
	procs, err := f.snapshot()
	if err != nil {
		return nil, err
	}

	for i := range procs {
		if procs[i].PID == pid {
			return &procs[i], nil
		}
	}

	return nil, fmt.Errorf("pid %d: %w", pid, process.ErrProcessNotFound)
}

// FindByName returns all processes whose exe name matches,
// case-insensitively.
func (f *WindowsFinder) FindByName(name string) ([]process.ProcessInfo, error) {
	if name == "" {
		return nil, errors.New("empty name")
	}

	procs, err := f.snapshot()
	if err != nil {
		return nil, err
	}

	var out []process.ProcessInfo
	for _, p := range procs {
		if strings.EqualFold(p.Name, name) {
			out = append(out, p)
		}
	}

	return out, nil
}

// FindFirstByName returns the matching process with the lowest PID for
// determinism, or ErrProcessNotFound.
func (f *WindowsFinder) FindFirstByName(name string) (*process.ProcessInfo, error) {
	ps, err := f.FindByName(name)
	if err != nil {
		return nil, err
	}
	if len(ps) == 0 {
		return nil, fmt.Errorf("%q: %w", name, process.ErrProcessNotFound)
	}

	min := ps[0]
	for _, p := range ps[1:] {
		if p.PID < min.PID {
			min = p
		}
	}

	return &min, nil
}
