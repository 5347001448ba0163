package process

// Handle grants read/write access to the memory of a live target process.
// The collaborator that opened the handle owns it and is the only one
// allowed to call Close; borrowers such as alloc.Allocation never do. The
// handle must stay open for the lifetime of everything built on it.
//
// Handles are safe for concurrent use: every call issues its own OS-level
// transfer with no shared mutable buffer.
type Handle interface {
	// Pid returns the target process ID.
	Pid() ProcessID

	// PointerSize returns the target's pointer width in bytes (4 or 8).
	PointerSize() uint

	// ReadMemory fills buf with bytes from the target's memory at addr and
	// returns the number of bytes the OS actually transferred. A short
	// count with a nil error is possible and must be checked by the caller.
	ReadMemory(addr Address, buf []byte) (int, error)

	// WriteMemory copies data into the target's memory at addr and returns
	// the number of bytes the OS actually transferred.
	WriteMemory(addr Address, data []byte) (int, error)

	// Close releases the handle. Only the owner may call it, and only after
	// all users have finished.
	Close() error
}

// ModuleResolver enumerates modules loaded inside a target process. Every
// call re-enumerates the live target; results are never cached because a
// stale base is the normal failure mode of this domain.
type ModuleResolver interface {
	// FindModule returns the named module or ErrModuleNotFound.
	FindModule(name string) (*Module, error)

	// Modules returns all modules currently loaded in the target.
	Modules() ([]Module, error)
}

// Finder defines process discovery operations
type Finder interface {
	// FindByPID returns information about the process with the given PID,
	// or ErrProcessNotFound.
	FindByPID(pid ProcessID) (*ProcessInfo, error)

	// FindByName returns all processes whose name matches exactly.
	FindByName(name string) ([]ProcessInfo, error)

	// FindFirstByName returns the matching process with the lowest PID for
	// determinism, or ErrProcessNotFound.
	FindFirstByName(name string) (*ProcessInfo, error)
}
