package main

import (
	"errors"
	"io"

	"rlox/compiler"
	"rlox/vm"
)

func isCompileError(err error) bool {
	var ce compiler.CompileError
	return errors.As(err, &ce)
}

// runSource runs source on a freshly constructed VM and returns the
// process exit code its result maps to.
func runSource(stdout, stderr io.Writer, source string, trace bool) int {
	v := vm.New(stdout, stderr)
	v.Trace(trace)
	err := v.Interpret(source)
	return exitCodeFor(err)
}
