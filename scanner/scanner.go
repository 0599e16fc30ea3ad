// Package scanner turns source text into a lazy stream of tokens, one
// ScanToken call at a time. It never materializes the full token list:
// the compiler drives it with a single token of lookahead.
package scanner

import (
	"rlox/token"
)

// Scanner holds the byte-slice source and the cursor positions into it.
// Source is assumed to be ASCII outside of string literals; bytes inside a
// string literal are copied verbatim without being interpreted, so
// multibyte UTF-8 content is permitted there.
type Scanner struct {
	source  string
	start   int
	current int
	line    int
}

// New returns a Scanner positioned at the start of source, line 1.
func New(source string) *Scanner {
	return &Scanner{source: source, line: 1}
}

// ScanToken returns exactly the next Token in source, advancing past it.
// Whitespace and `//` comments are skipped first; at end of input it
// returns an Eof token forever after.
func (s *Scanner) ScanToken() token.Token {
	s.skipWhitespace()
	s.start = s.current

	if s.isAtEnd() {
		return s.make(token.Eof)
	}

	c := s.advance()

	if isAlpha(c) {
		return s.identifier()
	}
	if isDigit(c) {
		return s.number()
	}

	switch c {
	case '(':
		return s.make(token.LeftParen)
	case ')':
		return s.make(token.RightParen)
	case '{':
		return s.make(token.LeftBrace)
	case '}':
		return s.make(token.RightBrace)
	case ';':
		return s.make(token.Semicolon)
	case ',':
		return s.make(token.Comma)
	case '.':
		return s.make(token.Dot)
	case '-':
		return s.make(token.Minus)
	case '+':
		return s.make(token.Plus)
	case '/':
		return s.make(token.Slash)
	case '*':
		return s.make(token.Star)
	case '!':
		return s.makeEither('=', token.BangEqual, token.Bang)
	case '=':
		return s.makeEither('=', token.EqualEqual, token.Equal)
	case '<':
		return s.makeEither('=', token.LessEqual, token.Less)
	case '>':
		return s.makeEither('=', token.GreaterEqual, token.Greater)
	case '"':
		return s.string()
	default:
		return s.errorToken("Unexpected character.")
	}
}

func (s *Scanner) skipWhitespace() {
	for {
		if s.isAtEnd() {
			return
		}
		switch s.peek() {
		case ' ', '\r', '\t':
			s.advance()
		case '\n':
			s.line++
			s.advance()
		case '/':
			if s.peekNext() == '/' {
				for s.peek() != '\n' && !s.isAtEnd() {
					s.advance()
				}
			} else {
				return
			}
		default:
			return
		}
	}
}

func (s *Scanner) identifier() token.Token {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}
	lexeme := s.source[s.start:s.current]
	if kind, ok := token.Keywords[lexeme]; ok {
		return s.make(kind)
	}
	return s.make(token.Identifier)
}

func (s *Scanner) number() token.Token {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	return s.make(token.Number)
}

func (s *Scanner) string() token.Token {
	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}
	if s.isAtEnd() {
		return s.errorToken("Unterminated string.")
	}
	s.advance() // the closing quote
	return s.make(token.String)
}

func (s *Scanner) isAtEnd() bool { return s.current >= len(s.source) }

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	return c
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

// make builds a Token whose lexeme is the exact source slice scanned since
// start. Note: source[s.start:s.current], not source[s.start:s.current+1]
// — the off-by-one that would include one byte past the token.
func (s *Scanner) make(kind token.Kind) token.Token {
	return token.New(kind, s.source[s.start:s.current], s.line)
}

func (s *Scanner) makeEither(next byte, ifMatch, otherwise token.Kind) token.Token {
	if s.peek() == next {
		s.advance()
		return s.make(ifMatch)
	}
	return s.make(otherwise)
}

func (s *Scanner) errorToken(message string) token.Token {
	return token.New(token.Error, message, s.line)
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
