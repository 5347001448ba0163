//go:build linux

package process_linux

import (
	"fmt"
	"path/filepath"
	"strings"

	"memreach/process"
	"memreach/process/memory_map"
)

// MapsResolver implements process.ModuleResolver by parsing /proc/[pid]/maps
// on every call. Nothing is cached: the same name can resolve to a different
// base after a dlclose/dlopen cycle, and that must be observed.
type MapsResolver struct {
	pid process.ProcessID
}

var _ process.ModuleResolver = (*MapsResolver)(nil)

// NewMapsResolver creates a resolver for the given PID.
func NewMapsResolver(pid process.ProcessID) *MapsResolver {
	return &MapsResolver{pid: pid}
}

// Modules returns all file-backed modules currently mapped in the target.
func (r *MapsResolver) Modules() ([]process.Module, error) {
	mm, err := memory_map.ReadMemoryMap(int(r.pid))
	if err != nil {
		return nil, fmt.Errorf("read maps for pid %d: %w", r.pid, err)
	}

	return modulesFromMap(mm), nil
}

// FindModule returns the module whose file basename matches name, or
// ErrModuleNotFound.
func (r *MapsResolver) FindModule(name string) (*process.Module, error) {
	mods, err := r.Modules()
	if err != nil {
		return nil, err
	}

	for i := range mods {
		if mods[i].Name == name {
			return &mods[i], nil
		}
	}

	return nil, fmt.Errorf("%q in pid %d: %w", name, r.pid, process.ErrModuleNotFound)
}

// modulesFromMap folds file-backed mappings into per-path modules. A
// module's base is its lowest mapped address and its size spans to the
// highest mapped end of the same path.
func modulesFromMap(mm []memory_map.MemoryMapItem) []process.Module {
	memory_map.Sort(mm)

	var mods []process.Module
	index := make(map[string]int)

	for _, item := range mm {
		path := item.Path
		if path == "" || strings.HasPrefix(path, "[") {
			continue // anonymous or pseudo mappings ([heap], [stack], [vdso])
		}

		i, ok := index[path]
		if !ok {
			index[path] = len(mods)
			mods = append(mods, process.Module{
				Name: filepath.Base(path),
				Base: process.Address(item.Address),
				Size: process.Size(item.Size),
			})
			continue
		}

		end := item.Address + uint64(item.Size)
		mods[i].Size = process.Size(end - uint64(mods[i].Base))
	}

	return mods
}
