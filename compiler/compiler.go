// Package compiler implements a single-pass Pratt parser that compiles
// source text directly into a chunk.Chunk. No AST is ever built: each
// token is scanned on demand and turned into bytecode as it is consumed.
package compiler

import (
	"fmt"
	"io"
	"strconv"

	"rlox/chunk"
	"rlox/scanner"
	"rlox/token"
	"rlox/value"
)

// Precedence orders the grammar's binding strengths, lowest to highest.
// Only Assignment..Unary are exercised; Call and Primary are reserved for
// a grammar this compiler does not cover.
type Precedence int

const (
	PrecNone Precedence = iota
	PrecAssignment
	PrecOr
	PrecAnd
	PrecEquality
	PrecComparison
	PrecTerm
	PrecFactor
	PrecUnary
	PrecCall
	PrecPrimary
)

type parseFn func(*Parser)

type parseRule struct {
	prefix     parseFn
	infix      parseFn
	precedence Precedence
}

// rules is indexed by token.Kind. Entries left zero-valued have no prefix
// or infix rule and bind at PrecNone, matching the table an absent token
// kind falls back to. It is filled in init because the rule functions
// themselves consult the table, which a package-level initializer cannot
// refer back to.
var rules [token.Eof + 1]parseRule

func init() {
	rules = [token.Eof + 1]parseRule{
	token.LeftParen:    {prefix: (*Parser).grouping, precedence: PrecNone},
	token.Minus:        {prefix: (*Parser).unary, infix: (*Parser).binary, precedence: PrecTerm},
	token.Plus:         {infix: (*Parser).binary, precedence: PrecTerm},
	token.Slash:        {infix: (*Parser).binary, precedence: PrecFactor},
	token.Star:         {infix: (*Parser).binary, precedence: PrecFactor},
	token.Bang:         {prefix: (*Parser).unary, precedence: PrecNone},
	token.BangEqual:    {infix: (*Parser).binary, precedence: PrecEquality},
	token.EqualEqual:   {infix: (*Parser).binary, precedence: PrecEquality},
	token.Less:         {infix: (*Parser).binary, precedence: PrecComparison},
	token.LessEqual:    {infix: (*Parser).binary, precedence: PrecComparison},
	token.Greater:      {infix: (*Parser).binary, precedence: PrecComparison},
	token.GreaterEqual: {infix: (*Parser).binary, precedence: PrecComparison},
	token.Number:       {prefix: (*Parser).parseNumber, precedence: PrecNone},
	token.String:       {prefix: (*Parser).str, precedence: PrecNone},
	token.False:        {prefix: (*Parser).literal, precedence: PrecNone},
	token.True:         {prefix: (*Parser).literal, precedence: PrecNone},
	token.Nil:          {prefix: (*Parser).literal, precedence: PrecNone},
	}
}

func ruleFor(kind token.Kind) parseRule {
	if int(kind) < 0 || int(kind) >= len(rules) {
		return parseRule{}
	}
	return rules[kind]
}

// Parser holds the one-token lookahead state that drives both scanning
// and emission. It never keeps more than previous and current alive.
type Parser struct {
	scanner *scanner.Scanner
	chunk   *chunk.Chunk
	pool    *value.StringPool
	stderr  io.Writer

	previous  token.Token
	current   token.Token
	hadError  bool
	panicMode bool
}

// Compile scans and compiles source into c, interning any string literals
// into pool. Diagnostics are written to stderr as they are found. It
// returns a CompileError once any diagnostic has been printed; the
// caller must not treat a partially-filled Chunk as usable in that case.
func Compile(source string, c *chunk.Chunk, pool *value.StringPool, stderr io.Writer) error {
	p := &Parser{
		scanner: scanner.New(source),
		chunk:   c,
		pool:    pool,
		stderr:  stderr,
	}

	p.advance()
	p.expression()
	p.consume(token.Eof, "Expect end of expression.")
	p.emitByte(byte(chunk.OpReturn))

	if p.hadError {
		return CompileError{}
	}
	return nil
}

func (p *Parser) expression() {
	p.parsePrecedence(PrecAssignment)
}

// parsePrecedence is the core Pratt loop: it consumes a prefix expression
// then keeps folding in infix operators whose precedence is at least min.
func (p *Parser) parsePrecedence(min Precedence) {
	p.advance()
	prefix := ruleFor(p.previous.Kind).prefix
	if prefix == nil {
		p.errorAtPrevious("Expect expression.")
		return
	}
	prefix(p)

	for min <= ruleFor(p.current.Kind).precedence {
		p.advance()
		infix := ruleFor(p.previous.Kind).infix
		if infix == nil {
			p.errorAtPrevious("Expect expression.")
			return
		}
		infix(p)
	}
}

func (p *Parser) grouping() {
	p.expression()
	p.consume(token.RightParen, "Expect ')' after expression.")
}

func (p *Parser) unary() {
	op := p.previous.Kind
	p.parsePrecedence(PrecUnary)
	switch op {
	case token.Minus:
		p.emitByte(byte(chunk.OpNegate))
	case token.Bang:
		p.emitByte(byte(chunk.OpNot))
	}
}

func (p *Parser) binary() {
	op := p.previous.Kind
	rule := ruleFor(op)
	p.parsePrecedence(rule.precedence + 1)

	switch op {
	case token.Plus:
		p.emitByte(byte(chunk.OpAdd))
	case token.Minus:
		p.emitByte(byte(chunk.OpSubtract))
	case token.Star:
		p.emitByte(byte(chunk.OpMultiply))
	case token.Slash:
		p.emitByte(byte(chunk.OpDivide))
	case token.EqualEqual:
		p.emitByte(byte(chunk.OpEqual))
	case token.BangEqual:
		p.emitByte(byte(chunk.OpEqual))
		p.emitByte(byte(chunk.OpNot))
	case token.Less:
		p.emitByte(byte(chunk.OpLess))
	case token.LessEqual:
		p.emitByte(byte(chunk.OpGreater))
		p.emitByte(byte(chunk.OpNot))
	case token.Greater:
		p.emitByte(byte(chunk.OpGreater))
	case token.GreaterEqual:
		p.emitByte(byte(chunk.OpLess))
		p.emitByte(byte(chunk.OpNot))
	}
}

func (p *Parser) literal() {
	switch p.previous.Kind {
	case token.False:
		p.emitByte(byte(chunk.OpFalse))
	case token.True:
		p.emitByte(byte(chunk.OpTrue))
	case token.Nil:
		p.emitByte(byte(chunk.OpNil))
	}
}

func (p *Parser) str() {
	lexeme := p.previous.Lexeme
	// The scanner hands back the lexeme with its surrounding quotes still
	// attached; strip them before interning.
	stripped := lexeme[1 : len(lexeme)-1]
	ref := p.pool.Intern(stripped)
	p.emitConstant(value.String(ref))
}

// advance pulls the next non-error token into current, reporting and
// skipping any Error tokens the scanner produces along the way.
func (p *Parser) advance() {
	p.previous = p.current
	for {
		p.current = p.scanner.ScanToken()
		if p.current.Kind != token.Error {
			break
		}
		p.errorAtCurrent(p.current.Lexeme)
	}
}

func (p *Parser) consume(kind token.Kind, message string) {
	if p.current.Kind == kind {
		p.advance()
		return
	}
	p.errorAtCurrent(message)
}

func (p *Parser) emitByte(b byte) {
	p.chunk.Write(b, p.previous.Line)
}

func (p *Parser) emitConstant(v value.Value) {
	index, ok := p.chunk.AddConstant(v)
	if !ok {
		p.errorAtPrevious("Too many constants in one chunk.")
		return
	}
	p.emitByte(byte(chunk.OpConstant))
	p.emitByte(byte(index))
}

func (p *Parser) errorAtCurrent(message string) {
	p.errorAt(p.current, message)
}

func (p *Parser) errorAtPrevious(message string) {
	p.errorAt(p.previous, message)
}

// errorAt prints one diagnostic line and latches panic mode. Every error
// after the first within a single Compile call is suppressed: the
// subset this parser covers has no statement boundary to resynchronize
// on, so there is nothing useful to resume parsing from.
func (p *Parser) errorAt(tok token.Token, message string) {
	if p.panicMode {
		return
	}
	p.panicMode = true
	p.hadError = true

	fmt.Fprintf(p.stderr, "[line %d] Error", tok.Line)
	switch tok.Kind {
	case token.Eof:
		fmt.Fprint(p.stderr, " at end")
	case token.Error:
		// message is already user-facing; nothing further to locate.
	default:
		fmt.Fprintf(p.stderr, " at '%s'", tok.Lexeme)
	}
	fmt.Fprintf(p.stderr, ": %s\n", message)
}

// parseNumber parses the just-consumed Number token's lexeme and emits it
// as a constant.
func (p *Parser) parseNumber() {
	n, err := strconv.ParseFloat(p.previous.Lexeme, 64)
	if err != nil {
		p.errorAtPrevious("Invalid number literal.")
		return
	}
	p.emitConstant(value.Number(n))
}
