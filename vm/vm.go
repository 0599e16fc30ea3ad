// Package vm implements the stack-based bytecode interpreter: the
// fetch/decode/dispatch loop that walks a compiled chunk.Chunk and
// produces either program output or a reported error.
package vm

import (
	"fmt"
	"io"

	"rlox/chunk"
	"rlox/compiler"
	"rlox/debug"
	"rlox/value"
)

// stackSize is the VM's fixed value-stack capacity. The covered grammar
// has no backward jumps, so there is no way for a well-formed program to
// recurse; this bound exists to fail predictably on a pathological one.
const stackSize = 256

// VM is a single-threaded, non-reentrant bytecode interpreter. Interpret
// must not be called concurrently on the same VM.
type VM struct {
	chunk *chunk.Chunk
	pool  *value.StringPool
	ip    int

	stack    [stackSize]value.Value
	stackTop int

	stdout io.Writer
	stderr io.Writer
	trace  bool
}

// New returns a VM that writes program output to stdout and diagnostics
// to stderr. Set Trace to enable a disassembled line per executed
// instruction, written to stderr.
func New(stdout, stderr io.Writer) *VM {
	return &VM{
		chunk:  chunk.New(),
		pool:   value.NewStringPool(),
		stdout: stdout,
		stderr: stderr,
	}
}

// Trace enables or disables per-instruction disassembly to stderr.
func (vm *VM) Trace(on bool) { vm.trace = on }

// Interpret compiles and runs source on this VM. It returns a
// compiler.CompileError if compilation failed, a RuntimeError if
// execution failed, or nil on success. The chunk backing this VM is
// cleared both before compiling and after running, so repeated calls
// never see stale code from a previous one.
func (vm *VM) Interpret(source string) error {
	vm.chunk.Clear()

	if err := compiler.Compile(source, vm.chunk, vm.pool, vm.stderr); err != nil {
		vm.chunk.Clear()
		return err
	}

	vm.ip = 0
	vm.resetStack()
	err := vm.run()
	vm.chunk.Clear()
	return err
}

// run executes the dispatch loop, recovering from a stack-array bounds
// panic (the only way push/pop/peek can fail) and reporting it the same
// way any other runtime error is reported.
func (vm *VM) run() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = vm.runtimeError("Stack overflow.")
		}
	}()
	return vm.dispatch()
}

func (vm *VM) dispatch() error {
	for {
		if vm.trace {
			debug.DisassembleInstruction(vm.stderr, vm.chunk, vm.pool, vm.ip)
		}

		op := chunk.OpCode(vm.readByte())
		switch op {
		case chunk.OpConstant:
			vm.push(vm.chunk.Constants[vm.readByte()])

		case chunk.OpNil:
			vm.push(value.Nil)
		case chunk.OpTrue:
			vm.push(value.Bool(true))
		case chunk.OpFalse:
			vm.push(value.Bool(false))

		case chunk.OpEqual:
			b := vm.pop()
			a := vm.pop()
			vm.push(value.Bool(value.Equal(a, b, vm.pool)))

		case chunk.OpGreater:
			if err := vm.binaryNumberOp(func(a, b float64) value.Value { return value.Bool(a > b) }); err != nil {
				return err
			}
		case chunk.OpLess:
			if err := vm.binaryNumberOp(func(a, b float64) value.Value { return value.Bool(a < b) }); err != nil {
				return err
			}

		case chunk.OpAdd:
			if err := vm.add(); err != nil {
				return err
			}
		case chunk.OpSubtract:
			if err := vm.binaryNumberOp(func(a, b float64) value.Value { return value.Number(a - b) }); err != nil {
				return err
			}
		case chunk.OpMultiply:
			if err := vm.binaryNumberOp(func(a, b float64) value.Value { return value.Number(a * b) }); err != nil {
				return err
			}
		case chunk.OpDivide:
			if err := vm.binaryNumberOp(func(a, b float64) value.Value { return value.Number(a / b) }); err != nil {
				return err
			}

		case chunk.OpNot:
			vm.push(value.Bool(value.Falsey(vm.pop())))

		case chunk.OpNegate:
			if !vm.peek(0).IsNumber() {
				return vm.runtimeError("Operand must be a number.")
			}
			vm.push(value.Number(-vm.pop().AsNumber()))

		case chunk.OpReturn:
			result := vm.pop()
			fmt.Fprintln(vm.stdout, value.Display(result, vm.pool))
			return nil

		default:
			return vm.runtimeError("Unknown opcode.")
		}
	}
}

// add implements OP_ADD's dual numeric/string behavior: both operands
// are inspected with a non-destructive peek before anything is popped,
// so a type mismatch leaves the stack intact for the error reset.
func (vm *VM) add() error {
	b := vm.peek(0)
	a := vm.peek(1)
	switch {
	case a.IsNumber() && b.IsNumber():
		vm.pop()
		vm.pop()
		vm.push(value.Number(a.AsNumber() + b.AsNumber()))
	case a.IsString() && b.IsString():
		vm.pop()
		vm.pop()
		vm.push(value.String(vm.pool.Concat(a.AsStringRef(), b.AsStringRef())))
	default:
		return vm.runtimeError("Operands must be two numbers or two strings.")
	}
	return nil
}

func (vm *VM) binaryNumberOp(apply func(a, b float64) value.Value) error {
	b := vm.peek(0)
	a := vm.peek(1)
	if !a.IsNumber() || !b.IsNumber() {
		return vm.runtimeError("Operands must be numbers.")
	}
	vm.pop()
	vm.pop()
	vm.push(apply(a.AsNumber(), b.AsNumber()))
	return nil
}

func (vm *VM) readByte() byte {
	b := vm.chunk.Code[vm.ip]
	vm.ip++
	return b
}

func (vm *VM) resetStack() { vm.stackTop = 0 }

func (vm *VM) push(v value.Value) {
	vm.stack[vm.stackTop] = v
	vm.stackTop++
}

func (vm *VM) pop() value.Value {
	vm.stackTop--
	return vm.stack[vm.stackTop]
}

func (vm *VM) peek(distance int) value.Value {
	return vm.stack[vm.stackTop-1-distance]
}

// runtimeError writes the diagnostic message followed by the
// `[line L] in script` frame naming the instruction that failed, resets
// the stack, and returns the error Interpret should propagate.
func (vm *VM) runtimeError(message string) error {
	fmt.Fprintln(vm.stderr, message)
	line := vm.chunk.Lines[vm.ip-1]
	fmt.Fprintf(vm.stderr, "[line %d] in script\n", line)
	vm.resetStack()
	return RuntimeError{Message: message}
}
