package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type runCmd struct {
	trace bool
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "execute a source file" }
func (*runCmd) Usage() string {
	return `run <path>:
  Compile and execute the given source file.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.trace, "trace", false, "disassemble each instruction to stderr as it executes")
}

func (c *runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: rlox [path]")
		return subcommands.ExitStatus(exitUsage)
	}
	return subcommands.ExitStatus(runPath(args[0], c.trace))
}

// runPath reads and interprets the file at path, returning the process
// exit code for the direct-invocation (`rlox <path>`) contract as well.
func runPath(path string, trace bool) int {
	source, err := readSource(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return exitIOError
	}
	return runSource(os.Stdout, os.Stderr, source, trace)
}
