// Command rlox is the CLI entry point: a bytecode compiler and VM for an
// expression-only Lox subset, runnable either as a bare `rlox [path]`
// or through its `run`/`repl`/`disasm` subcommands.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

var knownSubcommands = map[string]bool{
	"run": true, "repl": true, "disasm": true,
	"help": true, "commands": true, "flags": true,
}

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&runCmd{}, "")
	subcommands.Register(&replCmd{}, "")
	subcommands.Register(&disasmCmd{}, "")

	if len(os.Args) >= 2 && knownSubcommands[os.Args[1]] {
		flag.Parse()
		os.Exit(int(subcommands.Execute(context.Background())))
	}

	os.Exit(direct(os.Args[1:]))
}

// direct implements the original two-mode CLI contract: no args starts
// the REPL, one arg runs that file, more than one is a usage error. This
// path never touches the subcommands dispatcher, so `rlox script.lox`
// keeps working even though `run`/`repl`/`disasm` are also reachable by
// name.
func direct(args []string) int {
	switch len(args) {
	case 0:
		return runREPL(os.Stdin, os.Stdout, os.Stderr, false)
	case 1:
		return runPath(args[0], false)
	default:
		fmt.Fprintln(os.Stderr, "Usage: rlox [path]")
		return exitUsage
	}
}
