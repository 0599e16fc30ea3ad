package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"rlox/chunk"
	"rlox/compiler"
	"rlox/debug"
	"rlox/value"
)

type disasmCmd struct {
	dump bool
}

func (*disasmCmd) Name() string     { return "disasm" }
func (*disasmCmd) Synopsis() string { return "compile a source file and print its bytecode" }
func (*disasmCmd) Usage() string {
	return `disasm <path>:
  Compile (without running) the given source file and print the
  resulting chunk's disassembly. A compile failure reports the same
  diagnostics as run and exits 65.
`
}

func (c *disasmCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.dump, "dump", true, "print the full chunk dump rather than nothing on success")
}

func (c *disasmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: rlox disasm <path>")
		return subcommands.ExitStatus(exitUsage)
	}

	source, err := readSource(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return subcommands.ExitStatus(exitIOError)
	}

	c0 := chunk.New()
	pool := value.NewStringPool()
	if err := compiler.Compile(source, c0, pool, os.Stderr); err != nil {
		return subcommands.ExitStatus(exitCompileError)
	}

	if c.dump {
		debug.DisassembleChunk(os.Stdout, c0, pool, args[0])
	}
	return subcommands.ExitStatus(exitOK)
}
