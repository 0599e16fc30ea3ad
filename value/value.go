// Package value implements the VM's tagged value cell and the string
// pool that backs every String value produced during compilation and
// execution.
package value

import "strconv"

// Kind distinguishes the four cases a Value can hold.
type Kind byte

const (
	KindNil Kind = iota
	KindBool
	KindNumber
	KindString
)

// StringRef is a stable reference into a StringPool. It is cheap to copy
// and remains valid for the pool's entire lifetime: the pool only ever
// appends, never removes or reorders, so an index issued once stays
// correct forever.
type StringRef int

// Value is a tagged union over nil, bool, number and string-ref. It is
// small and copyable by design: the payload for KindString is a StringRef,
// not the string bytes themselves, so a Value never owns heap memory
// directly.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    StringRef
}

// Nil is the single nil value.
var Nil = Value{kind: KindNil}

// Bool builds a Bool value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number builds a Number value.
func Number(n float64) Value { return Value{kind: KindNumber, n: n} }

// String builds a String value from a pool reference.
func String(ref StringRef) Value { return Value{kind: KindString, s: ref} }

func (v Value) Kind() Kind { return v.kind }
func (v Value) IsNil() bool    { return v.kind == KindNil }
func (v Value) IsBool() bool   { return v.kind == KindBool }
func (v Value) IsNumber() bool { return v.kind == KindNumber }
func (v Value) IsString() bool { return v.kind == KindString }

// AsBool returns the payload of a Bool value. Calling it on any other kind
// is a programming error in the caller (the VM only does so after an
// IsBool check or a runtime-error-guarded type check).
func (v Value) AsBool() bool { return v.b }

// AsNumber returns the payload of a Number value.
func (v Value) AsNumber() float64 { return v.n }

// AsStringRef returns the payload of a String value.
func (v Value) AsStringRef() StringRef { return v.s }

// Falsey reports whether v acts as false in a boolean context: nil and
// false are falsey, everything else (including 0 and "") is truthy.
func Falsey(v Value) bool {
	return v.kind == KindNil || (v.kind == KindBool && !v.b)
}

// Equal implements the VM's OP_EQUAL: same variant and same payload.
// Numbers compare with IEEE `==` (so NaN != NaN); strings compare by
// content, via the pool that owns their bytes.
func Equal(a, b Value, pool *StringPool) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNil:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber:
		return a.n == b.n
	case KindString:
		return pool.Get(a.s) == pool.Get(b.s)
	default:
		return false
	}
}

// Display renders v per the VM's stdout formatting rule: Nil -> "nil",
// Bool -> "true"/"false", Number -> shortest round-trip decimal,
// String -> the raw bytes with no quotes.
func Display(v Value, pool *StringPool) string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindNumber:
		return strconv.FormatFloat(v.n, 'f', -1, 64)
	case KindString:
		return pool.Get(v.s)
	default:
		return ""
	}
}

// StringPool owns the heap buffers backing every String value produced
// during a VM's lifetime. Appending to it never invalidates a previously
// issued StringRef: the pool never deduplicates, never shrinks, and the
// slice grows by append only, so an index handed out earlier always
// denotes the same string later, regardless of any backing-array
// reallocation append may trigger.
type StringPool struct {
	strings []string
}

// NewStringPool returns an empty pool, ready to intern.
func NewStringPool() *StringPool {
	return &StringPool{}
}

// Intern copies bytes into the pool and returns a stable reference to it.
// The pool does not deduplicate: interning the same bytes twice yields two
// distinct (but content-equal) entries, matching the source this spec is
// grounded on.
func (p *StringPool) Intern(bytes string) StringRef {
	ref := StringRef(len(p.strings))
	p.strings = append(p.strings, bytes)
	return ref
}

// Get returns the bytes previously interned at ref.
func (p *StringPool) Get(ref StringRef) string {
	return p.strings[ref]
}

// Concat interns the concatenation of two already-pooled strings and
// returns a reference to the fresh buffer.
func (p *StringPool) Concat(a, b StringRef) StringRef {
	return p.Intern(p.Get(a) + p.Get(b))
}
