// Package chunk implements the compiled code object the compiler emits
// into and the VM executes: a flat instruction byte stream, a parallel
// per-byte source-line table, and a constant pool.
package chunk

import (
	"fmt"

	"rlox/value"
)

// OpCode is a single-byte instruction tag. Every opcode below is exactly
// one byte on the wire; OpConstant carries one further byte, the index of
// its operand in the chunk's constant pool.
type OpCode byte

const (
	OpConstant OpCode = iota
	OpNil
	OpTrue
	OpFalse
	OpEqual
	OpGreater
	OpLess
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpNot
	OpNegate
	OpReturn
)

var opNames = [...]string{
	OpConstant: "OP_CONSTANT",
	OpNil:      "OP_NIL",
	OpTrue:     "OP_TRUE",
	OpFalse:    "OP_FALSE",
	OpEqual:    "OP_EQUAL",
	OpGreater:  "OP_GREATER",
	OpLess:     "OP_LESS",
	OpAdd:      "OP_ADD",
	OpSubtract: "OP_SUBTRACT",
	OpMultiply: "OP_MULTIPLY",
	OpDivide:   "OP_DIVIDE",
	OpNot:      "OP_NOT",
	OpNegate:   "OP_NEGATE",
	OpReturn:   "OP_RETURN",
}

func (op OpCode) String() string {
	if int(op) < 0 || int(op) >= len(opNames) || opNames[op] == "" {
		return fmt.Sprintf("OP_UNKNOWN(%d)", byte(op))
	}
	return opNames[op]
}

// MaxConstants is the largest constant pool a Chunk can hold: the operand
// of OP_CONSTANT is a single byte.
const MaxConstants = 256

// Chunk is a compiled code object: an instruction stream, a parallel line
// table (chunk.Lines[i] is the source line that produced chunk.Code[i]),
// and the pool of constant Values the code's OP_CONSTANT instructions
// index into.
type Chunk struct {
	Code      []byte
	Lines     []int
	Constants []value.Value
}

// New returns an empty Chunk.
func New() *Chunk {
	return &Chunk{}
}

// Write appends one instruction byte tagged with the source line that
// produced it. The compiler calls this once per opcode byte and once per
// operand byte, so Code and Lines always have matching length.
func (c *Chunk) Write(b byte, line int) {
	c.Code = append(c.Code, b)
	c.Lines = append(c.Lines, line)
}

// AddConstant appends a value to the constant pool and returns its index.
// Reports ok=false once the pool would exceed MaxConstants, since the
// index must fit in the single operand byte of OP_CONSTANT.
func (c *Chunk) AddConstant(v value.Value) (index int, ok bool) {
	if len(c.Constants) >= MaxConstants {
		return 0, false
	}
	c.Constants = append(c.Constants, v)
	return len(c.Constants) - 1, true
}

// Clear resets the chunk to empty, ready for reuse by the next interpret
// call. The VM clears its chunk before compiling, discards it this way on
// compile failure, and clears it again after running, so a fresh chunk never carries
// stale code, lines or constants into the next call.
func (c *Chunk) Clear() {
	c.Code = c.Code[:0]
	c.Lines = c.Lines[:0]
	c.Constants = c.Constants[:0]
}

// Len reports the number of instruction bytes currently in the chunk.
func (c *Chunk) Len() int { return len(c.Code) }
