package main

import (
	"errors"
	"fmt"
	"os"
)

// exit codes, per the CLI's compile/runtime/io error mapping.
const (
	exitOK           = 0
	exitUsage        = 64
	exitCompileError = 65
	exitRuntimeError = 70
	exitIOError      = 74
)

// readSource reads path, translating the common failure modes into the
// messages this CLI reports on exitIOError.
func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return string(data), nil
	}
	switch {
	case errors.Is(err, os.ErrNotExist):
		return "", fmt.Errorf("File not found %q", path)
	case errors.Is(err, os.ErrPermission):
		return "", fmt.Errorf("Permission denied reading file %q", path)
	default:
		return "", err
	}
}

// exitCodeFor maps an Interpret result to the process exit status.
func exitCodeFor(err error) int {
	if err == nil {
		return exitOK
	}
	if isCompileError(err) {
		return exitCompileError
	}
	return exitRuntimeError
}
