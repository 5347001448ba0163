package process

// ProcessID represents a unique identifier for a process
type ProcessID int

// ProcessInfo contains basic information about a discovered process
type ProcessInfo struct {
	PID     ProcessID // Process ID
	PPID    ProcessID // Parent Process ID
	Name    string    // Process name (comm on Linux, exe name on Windows)
	Exe     string    // Path to the executable, best effort
	Cmdline []string  // Command line arguments, best effort
}
