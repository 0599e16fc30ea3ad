package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/google/subcommands"

	"rlox/vm"
)

type replCmd struct {
	trace bool
}

func (*replCmd) Name() string     { return "repl" }
func (*replCmd) Synopsis() string { return "start an interactive prompt" }
func (*replCmd) Usage() string {
	return `repl:
  Read one line at a time and interpret it, keeping the VM alive across
  lines so interning and output stay consistent within the session.
`
}

func (c *replCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.trace, "trace", false, "disassemble each instruction to stderr as it executes")
}

func (c *replCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return subcommands.ExitStatus(runREPL(os.Stdin, os.Stdout, os.Stderr, c.trace))
}

// runREPL drives the read-eval-print loop: one VM and StringPool live for
// the whole session, so a string interned on one line stays valid on the
// next. EOF (Ctrl-D) prints a newline and exits 0; a read error prints
// `error: <err>` and the loop continues.
func runREPL(in io.ReadCloser, out, errOut io.Writer, trace bool) int {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: "> ",
		Stdin:  in,
	})
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitIOError
	}
	defer rl.Close()

	v := vm.New(out, errOut)
	v.Trace(trace)

	for {
		line, err := rl.Readline()
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return exitOK
		}
		if err != nil {
			fmt.Fprintf(errOut, "error: %s\n", err)
			continue
		}
		v.Interpret(line)
	}
}
