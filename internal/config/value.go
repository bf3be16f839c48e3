package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the tagged value union used throughout the layer model.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindBool
	KindString
	KindSection
)

// String returns the kind's name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindSection:
		return "section"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is one element of a configuration layer: a scalar (integer, real,
// boolean, or string/enumeration) or a one-level section of scalars. The
// int/float distinction is preserved end to end so a float-typed parameter
// holding a whole number still serializes with a decimal point.
type Value struct {
	kind Kind
	i    int64
	f    float64
	b    bool
	s    string
	sec  Layer
}

// Int returns an integer scalar.
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// Float returns a real scalar.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// Bool returns a boolean scalar.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// String returns a string/enumeration scalar.
func String(v string) Value { return Value{kind: KindString, s: v} }

// Section wraps a nested layer. The wrapped layer is not copied.
func Section(l Layer) Value { return Value{kind: KindSection, sec: l} }

// Kind reports which arm of the union is populated.
func (v Value) Kind() Kind { return v.kind }

// AsInt returns the integer payload; valid only for KindInt.
func (v Value) AsInt() int64 { return v.i }

// AsFloat returns the real payload; valid only for KindFloat.
func (v Value) AsFloat() float64 { return v.f }

// AsBool returns the boolean payload; valid only for KindBool.
func (v Value) AsBool() bool { return v.b }

// AsString returns the string payload; valid only for KindString.
func (v Value) AsString() string { return v.s }

// AsSection returns the nested layer; valid only for KindSection.
func (v Value) AsSection() Layer { return v.sec }

// IsSection reports whether the value is a nested section.
func (v Value) IsSection() bool { return v.kind == KindSection }

// Equal reports deep equality. go-cmp picks this up automatically.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	case KindBool:
		return v.b == o.b
	case KindString:
		return v.s == o.s
	case KindSection:
		return v.sec.Equal(o.sec)
	default:
		return false
	}
}

// Encode renders the scalar in its on-disk lexical form: bare true/false,
// locale-independent decimal, or a quoted and escaped string. Sections have
// no scalar form; the writer emits them as [section] headers.
func (v Value) Encode() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return formatFloat(v.f)
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindString:
		return quoteString(v.s)
	case KindSection:
		panic("config: section value has no scalar form")
	default:
		panic(fmt.Sprintf("config: unknown value kind %d", int(v.kind)))
	}
}

// String implements fmt.Stringer for logs and error messages.
func (v Value) String() string {
	if v.kind == KindSection {
		return fmt.Sprintf("section(%d keys)", len(v.sec))
	}
	return v.Encode()
}

// clone returns a deep copy; only sections carry shared state.
func (v Value) clone() Value {
	if v.kind == KindSection {
		return Section(v.sec.Clone())
	}
	return v
}

// quoteString emits a basic quoted string using only escapes the layer
// grammar accepts: the named short escapes plus \uXXXX for other control
// characters. strconv.Quote is unsuitable here, its \x escapes are not
// part of the grammar and would fail the read-back.
func quoteString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\f':
			b.WriteString(`\f`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04X`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// formatFloat emits the shortest decimal that round-trips, forcing a
// fractional part so the value stays lexically a float.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
