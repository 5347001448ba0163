//go:build linux

package process_linux

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"memreach/process"
)

// LinuxFinder implements process.Finder over /proc.
type LinuxFinder struct{}

var _ process.Finder = (*LinuxFinder)(nil)

// NewFinder creates a new LinuxFinder
func NewFinder() *LinuxFinder {
	return &LinuxFinder{}
}

// FindByPID returns information about the process with the given PID.
func (f *LinuxFinder) FindByPID(pid process.ProcessID) (*process.ProcessInfo, error) {
	info, err := readProcessInfo(pid)
	if err != nil {
		return nil, fmt.Errorf("pid %d: %w", pid, process.ErrProcessNotFound)
	}
	return info, nil
}

// FindByName returns all processes whose comm or exe basename equals name.
// The match is case-sensitive, like pidof.
func (f *LinuxFinder) FindByName(name string) ([]process.ProcessInfo, error) {
	if name == "" {
		return nil, errors.New("empty name")
	}

	entries, err := os.ReadDir("/proc")
	if err != nil {
		return nil, fmt.Errorf("read /proc: %w", err)
	}

	selfPID := os.Getpid()
	var out []process.ProcessInfo

	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		pid, err := strconv.Atoi(e.Name())
		if err != nil || pid <= 0 {
			continue // not a PID dir
		}
		if pid == selfPID {
			continue // skip ourselves
		}

		info, err := readProcessInfo(process.ProcessID(pid))
		if err != nil {
			continue // process may have exited while scanning
		}

		if info.Name == name || filepath.Base(info.Exe) == name {
			out = append(out, *info)
		}
	}

	return out, nil
}

// FindFirstByName returns the matching process with the lowest PID for
// determinism, or ErrProcessNotFound.
func (f *LinuxFinder) FindFirstByName(name string) (*process.ProcessInfo, error) {
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

func readProcessInfo(pid process.ProcessID) (*process.ProcessInfo, error) {
	procPath := fmt.Sprintf("/proc/%d", pid)

	comm, err := os.ReadFile(filepath.Join(procPath, "comm"))
	if err != nil {
		return nil, err
	}

	info := &process.ProcessInfo{
		PID:  pid,
		Name: strings.TrimSpace(string(comm)),
	}

	// exe may be unreadable for zombies or foreign-uid processes
	if exe, err := os.Readlink(filepath.Join(procPath, "exe")); err == nil {
		info.Exe = exe
	}

	if raw, err := os.ReadFile(filepath.Join(procPath, "cmdline")); err == nil && len(raw) > 0 {
		info.Cmdline = strings.Split(strings.TrimRight(string(raw), "\x00"), "\x00")
	}

	// PPID is field 4 of /proc/<pid>/stat, past the parenthesised comm
	if raw, err := os.ReadFile(filepath.Join(procPath, "stat")); err == nil {
		if i := strings.LastIndexByte(string(raw), ')'); i >= 0 {
			fields := strings.Fields(string(raw)[i+1:])
			if len(fields) >= 2 {
				if ppid, err := strconv.Atoi(fields[1]); err == nil {
					info.PPID = process.ProcessID(ppid)
				}
			}
		}
	}

	return info, nil
}
