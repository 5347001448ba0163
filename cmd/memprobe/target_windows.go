//go:build windows

package main

import (
	"memreach/process"
	"memreach/process_windows"
)

func openByPID(pid process.ProcessID) (process.Handle, process.ModuleResolver, error) {
	h, err := process_windows.Open(pid)
	if err != nil {
		return nil, nil, err
	}
	return h, h.Resolver(), nil
}

func openByName(name string) (process.Handle, process.ModuleResolver, error) {
	h, err := process_windows.OpenByName(name)
	if err != nil {
		return nil, nil, err
	}
	return h, h.Resolver(), nil
}
