//go:build windows

package process_windows

import (
	"fmt"
	"strings"
	"syscall"
	"unsafe"

	"memreach/process"
)

const (
	maxModuleName32 = 255
	maxPath         = 260
)

type moduleEntry32 struct {
	Size         uint32
	ModuleID     uint32
	ProcessID    uint32
	GlblcntUsage uint32
	ProccntUsage uint32
	ModBaseAddr  uintptr
	ModBaseSize  uint32
	HModule      uintptr
	SzModule     [maxModuleName32 + 1]uint16
	SzExePath    [maxPath]uint16
}

// ToolhelpResolver implements process.ModuleResolver with a fresh Toolhelp32
// module snapshot per call. Nothing is cached: a module can be unloaded and
// reloaded at a different base at any time.
type ToolhelpResolver struct {
	pid process.ProcessID
}

var _ process.ModuleResolver = (*ToolhelpResolver)(nil)

// NewToolhelpResolver creates a resolver for the given PID.
func NewToolhelpResolver(pid process.ProcessID) *ToolhelpResolver {
	return &ToolhelpResolver{pid: pid}
}

// Modules returns all modules currently loaded in the target.
func (r *ToolhelpResolver) Modules() ([]process.Module, error) {
	snap, _, err := procCreateToolhelp32Snapshot.Call(TH32CS_SNAPMODULE|TH32CS_SNAPMODULE32, uintptr(r.pid))
	if snap == invalidHandleValue {
		return nil, fmt.Errorf("CreateToolhelp32Snapshot(%d): %w", r.pid, err)
	}
	defer procCloseHandle.Call(snap)

	var entry moduleEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))

	ret, _, err := procModule32FirstW.Call(snap, uintptr(unsafe.Pointer(&entry)))
	if ret == 0 {
		return nil, fmt.Errorf("Module32FirstW(%d): %w", r.pid, err)
	}

	var mods []process.Module
	for {
		mods = append(mods, process.Module{
			Name: syscall.UTF16ToString(entry.SzModule[:]),
			Base: process.Address(entry.ModBaseAddr),
			Size: process.Size(entry.ModBaseSize),
		})

		if ret, _, _ = procModule32NextW.Call(snap, uintptr(unsafe.Pointer(&entry))); ret == 0 {
			break
		}
	}

	return mods, nil
}

// FindModule returns the named module or ErrModuleNotFound. Names compare
// case-insensitively, matching the loader's behavior.
func (r *ToolhelpResolver) FindModule(name string) (*process.Module, error) {
	mods, err := r.Modules()
	if err != nil {
		return nil, err
	}

	for i := range mods {
		if strings.EqualFold(mods[i].Name, name) {
			return &mods[i], nil
		}
	}

	return nil, fmt.Errorf("%q in pid %d: %w", name, r.pid, process.ErrModuleNotFound)
}
