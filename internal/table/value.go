// Package table contains the in-memory tabular primitives shared across packages
// to avoid import cycles.
package table

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the type of a cell value.
type Kind int

const (
	// KindMissing marks an absent value (empty CSV cell, SQL NULL, or an
	// unmatched side of an outer join).
	KindMissing Kind = iota
	// KindText is a string value.
	KindText
	// KindNumber is a numeric value stored as float64.
	KindNumber
	// KindBool is a boolean value.
	KindBool
)

// Value is a tagged-union cell value. The zero Value is missing.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
}

// Missing returns the missing value.
func Missing() Value {
	return Value{kind: KindMissing}
}

// Text returns a text value.
func Text(s string) Value {
	return Value{kind: KindText, str: s}
}

// Number returns a numeric value.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Kind returns the value's kind.
func (v Value) Kind() Kind {
	return v.kind
}

// IsMissing reports whether the value is missing.
func (v Value) IsMissing() bool {
	return v.kind == KindMissing
}

// Equal reports whether two values are equal. Kinds must match: the text "1"
// never equals the number 1. A missing value equals nothing, including another
// missing value, matching SQL NULL semantics in join keys.
func (v Value) Equal(other Value) bool {
	if v.kind == KindMissing || other.kind == KindMissing {
		return false
	}
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindText:
		return v.str == other.str
	case KindNumber:
		return v.num == other.num
	case KindBool:
		return v.b == other.b
	}
	return false
}

// String renders the value for display. Missing renders as the empty string.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	}
	return ""
}

// EncodeKey appends a canonical, unambiguous encoding of the value to b.
// Used to build composite join keys: two values produce the same encoding
// iff Equal would report true (missing values are excluded by the caller).
func (v Value) EncodeKey(b *strings.Builder) {
	switch v.kind {
	case KindText:
		fmt.Fprintf(b, "t%d:%s", len(v.str), v.str)
	case KindNumber:
		fmt.Fprintf(b, "n%s", strconv.FormatFloat(v.num, 'g', -1, 64))
	case KindBool:
		fmt.Fprintf(b, "b%t", v.b)
	default:
		b.WriteByte('m')
	}
	b.WriteByte(';')
}

// ParseValue infers a typed value from a raw string. Empty strings become
// missing; values parseable as numbers or booleans become those kinds;
// everything else is text.
func ParseValue(raw string) Value {
	if raw == "" {
		return Missing()
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return Number(f)
	}
	switch raw {
	case "true", "True", "TRUE":
		return Bool(true)
	case "false", "False", "FALSE":
		return Bool(false)
	}
	return Text(raw)
}
