package chunk

import (
	"testing"

	"rlox/value"
)

func TestWriteKeepsCodeAndLinesInLockstep(t *testing.T) {
	c := New()
	c.Write(byte(OpNil), 1)
	c.Write(byte(OpTrue), 1)
	c.Write(byte(OpReturn), 2)

	if len(c.Code) != len(c.Lines) {
		t.Fatalf("len(Code)=%d != len(Lines)=%d", len(c.Code), len(c.Lines))
	}
	wantLines := []int{1, 1, 2}
	for i, line := range wantLines {
		if c.Lines[i] != line {
			t.Errorf("Lines[%d] = %d, want %d", i, c.Lines[i], line)
		}
	}
}

func TestAddConstant(t *testing.T) {
	c := New()
	idx, ok := c.AddConstant(value.Number(1.2))
	if !ok || idx != 0 {
		t.Fatalf("AddConstant = (%d, %v), want (0, true)", idx, ok)
	}
	idx, ok = c.AddConstant(value.Number(3.4))
	if !ok || idx != 1 {
		t.Fatalf("AddConstant = (%d, %v), want (1, true)", idx, ok)
	}
}

func TestAddConstantOverflow(t *testing.T) {
	c := New()
	for i := 0; i < MaxConstants; i++ {
		if _, ok := c.AddConstant(value.Number(float64(i))); !ok {
			t.Fatalf("AddConstant failed early at i=%d", i)
		}
	}
	if _, ok := c.AddConstant(value.Number(999)); ok {
		t.Fatalf("AddConstant should fail once MaxConstants is reached")
	}
	if len(c.Constants) != MaxConstants {
		t.Fatalf("len(Constants) = %d, want %d", len(c.Constants), MaxConstants)
	}
}

func TestClearResetsAllThreeArrays(t *testing.T) {
	c := New()
	c.Write(byte(OpNil), 1)
	c.AddConstant(value.Number(1))
	c.Clear()

	if len(c.Code) != 0 || len(c.Lines) != 0 || len(c.Constants) != 0 {
		t.Fatalf("Clear left state: code=%d lines=%d constants=%d", len(c.Code), len(c.Lines), len(c.Constants))
	}
}

func TestOpCodeString(t *testing.T) {
	if got := OpConstant.String(); got != "OP_CONSTANT" {
		t.Errorf("OpConstant.String() = %q, want OP_CONSTANT", got)
	}
	if got := OpCode(250).String(); got == "" {
		t.Errorf("unknown opcode should still render something, got empty string")
	}
}
