//go:build linux

package main

import (
	"memreach/process"
	"memreach/process_linux"
)

func openByPID(pid process.ProcessID) (process.Handle, process.ModuleResolver, error) {
	h, err := process_linux.Open(pid)
	if err != nil {
		return nil, nil, err
	}
	return h, h.Resolver(), nil
}

func openByName(name string) (process.Handle, process.ModuleResolver, error) {
	h, err := process_linux.OpenByName(name)
	if err != nil {
		return nil, nil, err
	}
	return h, h.Resolver(), nil
}
