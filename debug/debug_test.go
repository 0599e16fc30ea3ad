package debug

import (
	"strings"
	"testing"

	"rlox/chunk"
	"rlox/value"
)

func TestDisassembleChunkConstant(t *testing.T) {
	c := chunk.New()
	idx, _ := c.AddConstant(value.Number(1.2))
	c.Write(byte(chunk.OpConstant), 1)
	c.Write(byte(idx), 1)
	c.Write(byte(chunk.OpReturn), 1)

	var out strings.Builder
	DisassembleChunk(&out, c, value.NewStringPool(), "test")

	got := out.String()
	if !strings.Contains(got, "OP_CONSTANT") || !strings.Contains(got, "1.2") {
		t.Errorf("output missing constant details: %q", got)
	}
	if !strings.Contains(got, "OP_RETURN") {
		t.Errorf("output missing OP_RETURN: %q", got)
	}
}

func TestDisassembleRepeatsLineAsPipe(t *testing.T) {
	c := chunk.New()
	c.Write(byte(chunk.OpNil), 3)
	c.Write(byte(chunk.OpReturn), 3)

	var out strings.Builder
	DisassembleChunk(&out, c, value.NewStringPool(), "test")

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if !strings.Contains(lines[2], "|") {
		t.Errorf("second instruction line should show | for repeated line, got %q", lines[2])
	}
}
