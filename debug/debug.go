// Package debug renders a Chunk's instruction stream in human-readable
// form, for the disasm subcommand and for -trace execution dumps.
package debug

import (
	"fmt"
	"io"

	"rlox/chunk"
	"rlox/value"
)

// DisassembleChunk writes every instruction in c to w under the given
// name header.
func DisassembleChunk(w io.Writer, c *chunk.Chunk, pool *value.StringPool, name string) {
	fmt.Fprintf(w, "== %s ==\n", name)
	offset := 0
	for offset < c.Len() {
		offset = DisassembleInstruction(w, c, pool, offset)
	}
}

// DisassembleInstruction writes the single instruction at offset to w and
// returns the offset of the next instruction.
func DisassembleInstruction(w io.Writer, c *chunk.Chunk, pool *value.StringPool, offset int) int {
	fmt.Fprintf(w, "%04d ", offset)

	if offset > 0 && c.Lines[offset] == c.Lines[offset-1] {
		fmt.Fprint(w, "   | ")
	} else {
		fmt.Fprintf(w, "%4d ", c.Lines[offset])
	}

	op := chunk.OpCode(c.Code[offset])
	switch op {
	case chunk.OpConstant:
		return constantInstruction(w, op, c, pool, offset)
	case chunk.OpNil, chunk.OpTrue, chunk.OpFalse,
		chunk.OpEqual, chunk.OpGreater, chunk.OpLess,
		chunk.OpAdd, chunk.OpSubtract, chunk.OpMultiply, chunk.OpDivide,
		chunk.OpNot, chunk.OpNegate, chunk.OpReturn:
		return simpleInstruction(w, op, offset)
	default:
		fmt.Fprintf(w, "Unknown opcode %d\n", c.Code[offset])
		return offset + 1
	}
}

func simpleInstruction(w io.Writer, op chunk.OpCode, offset int) int {
	fmt.Fprintf(w, "%s\n", op)
	return offset + 1
}

func constantInstruction(w io.Writer, op chunk.OpCode, c *chunk.Chunk, pool *value.StringPool, offset int) int {
	index := c.Code[offset+1]
	fmt.Fprintf(w, "%-16s %4d '%s'\n", op, index, value.Display(c.Constants[index], pool))
	return offset + 2
}
