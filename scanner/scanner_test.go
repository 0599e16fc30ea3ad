package scanner

import (
	"testing"

	"rlox/token"
)

func scanAll(source string) []token.Token {
	s := New(source)
	var out []token.Token
	for {
		tok := s.ScanToken()
		out = append(out, tok)
		if tok.Kind == token.Eof {
			return out
		}
	}
}

func TestSinglesAndTwoCharOperators(t *testing.T) {
	toks := scanAll("( ) { } , . - + ; / * ! != = == < <= > >=")
	want := []token.Kind{
		token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
		token.Comma, token.Dot, token.Minus, token.Plus, token.Semicolon,
		token.Slash, token.Star, token.Bang, token.BangEqual, token.Equal,
		token.EqualEqual, token.Less, token.LessEqual, token.Greater,
		token.GreaterEqual, token.Eof,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token[%d].Kind = %v, want %v", i, toks[i].Kind, k)
		}
	}
}

func TestKeywordsVsIdentifiers(t *testing.T) {
	toks := scanAll("and class else false for fun if nil or print return super this true var while forest")
	wantKinds := []token.Kind{
		token.And, token.Class, token.Else, token.False, token.For, token.Fun,
		token.If, token.Nil, token.Or, token.Print, token.Return, token.Super,
		token.This, token.True, token.Var, token.While, token.Identifier, token.Eof,
	}
	for i, k := range wantKinds {
		if toks[i].Kind != k {
			t.Errorf("token[%d].Kind = %v, want %v (lexeme %q)", i, toks[i].Kind, k, toks[i].Lexeme)
		}
	}
}

func TestForIsNotMisroutedToFalse(t *testing.T) {
	// A historical scanner bug in the lineage this is grounded on routed
	// "for" to the False token. Guard against regressing it.
	toks := scanAll("for")
	if toks[0].Kind != token.For {
		t.Fatalf("scanning %q gave Kind %v, want For", "for", toks[0].Kind)
	}
}

func TestNumbers(t *testing.T) {
	toks := scanAll("123 1.5 0.25")
	want := []string{"123", "1.5", "0.25"}
	for i, w := range want {
		if toks[i].Kind != token.Number {
			t.Fatalf("token[%d].Kind = %v, want Number", i, toks[i].Kind)
		}
		if toks[i].Lexeme != w {
			t.Errorf("token[%d].Lexeme = %q, want %q", i, toks[i].Lexeme, w)
		}
	}
}

func TestNumberWithoutFractionalDigitStopsAtDot(t *testing.T) {
	toks := scanAll("1.")
	if toks[0].Kind != token.Number || toks[0].Lexeme != "1" {
		t.Fatalf("got %v %q, want Number \"1\"", toks[0].Kind, toks[0].Lexeme)
	}
	if toks[1].Kind != token.Dot {
		t.Fatalf("got %v, want Dot", toks[1].Kind)
	}
}

func TestStringLiteral(t *testing.T) {
	toks := scanAll(`"hello world"`)
	if toks[0].Kind != token.String {
		t.Fatalf("Kind = %v, want String", toks[0].Kind)
	}
	if toks[0].Lexeme != `"hello world"` {
		t.Errorf("Lexeme = %q, want the raw quoted slice", toks[0].Lexeme)
	}
}

func TestUnterminatedString(t *testing.T) {
	toks := scanAll(`"abc`)
	if toks[0].Kind != token.Error {
		t.Fatalf("Kind = %v, want Error", toks[0].Kind)
	}
	if toks[0].Lexeme != "Unterminated string." {
		t.Errorf("message = %q, want %q", toks[0].Lexeme, "Unterminated string.")
	}
}

func TestStringSpanningNewlinesIncrementsLine(t *testing.T) {
	s := New("\"a\nb\"\n1")
	str := s.ScanToken()
	if str.Kind != token.String {
		t.Fatalf("Kind = %v, want String", str.Kind)
	}
	num := s.ScanToken()
	if num.Line != 3 {
		t.Errorf("line after multi-line string = %d, want 3", num.Line)
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	toks := scanAll("1 // ignore this\n2")
	if toks[0].Lexeme != "1" || toks[1].Lexeme != "2" {
		t.Fatalf("got %q, %q; want 1, 2", toks[0].Lexeme, toks[1].Lexeme)
	}
}

func TestUnexpectedCharacter(t *testing.T) {
	toks := scanAll("@")
	if toks[0].Kind != token.Error {
		t.Fatalf("Kind = %v, want Error", toks[0].Kind)
	}
	if toks[0].Lexeme != "Unexpected character." {
		t.Errorf("message = %q, want %q", toks[0].Lexeme, "Unexpected character.")
	}
}

func TestLineTracking(t *testing.T) {
	s := New("1\n2\n\n3")
	var lines []int
	for {
		tok := s.ScanToken()
		if tok.Kind == token.Eof {
			break
		}
		lines = append(lines, tok.Line)
	}
	want := []int{1, 2, 4}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("lines[%d] = %d, want %d", i, lines[i], w)
		}
	}
}

func TestEofRepeats(t *testing.T) {
	s := New("")
	first := s.ScanToken()
	second := s.ScanToken()
	if first.Kind != token.Eof || second.Kind != token.Eof {
		t.Fatalf("expected Eof twice, got %v then %v", first.Kind, second.Kind)
	}
}
