// Package value provides the scalar cell type stored in dataset records.
//
// A Value is a small tagged variant holding a number, a text, a boolean or
// the missing marker. The zero Value is Missing, which is distinct from
// every legitimate falsy value (0, false and "").
//
// Numeric coercion follows a two-step contract used by every reduction in
// the library: Float reports whether a value can be read as a number, and
// reductions operate only over the values for which it succeeds.
package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindMissing Kind = iota
	KindNumber
	KindText
	KindBool
)

// MissingText is the rendering of the missing marker in keys and strings.
const MissingText = "NA"

// exponentThreshold is the magnitude above which numbers render in exponent form.
const exponentThreshold = 1e21

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Value is a single cell. It is comparable and safe to copy.
type Value struct {
	kind Kind
	num  float64
	str  string
	b    bool
}

// Missing returns the missing marker.
func Missing() Value { return Value{} }

// Number wraps a float64. NaN is a valid Number that fails numeric coercion.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Int wraps an int as a Number.
func Int(i int) Value { return Number(float64(i)) }

// Text wraps a string.
func Text(s string) Value { return Value{kind: KindText, str: s} }

// Bool wraps a bool.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// FromAny converts a Go scalar into a Value. nil becomes Missing, strings
// become Text (no numeric parsing), time.Time becomes epoch milliseconds,
// and any other numeric kind becomes a Number. Unknown types fall back to
// their fmt rendering as Text.
func FromAny(v any) Value {
	switch t := v.(type) {
	case nil:
		return Missing()
	case Value:
		return t
	case string:
		return Text(t)
	case bool:
		return Bool(t)
	case time.Time:
		return Number(float64(t.UnixMilli()))
	case fmt.Stringer:
		return Text(t.String())
	}
	if f, err := cast.ToFloat64E(v); err == nil {
		return Number(f)
	}
	return Text(fmt.Sprint(v))
}

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether v is the missing marker.
func (v Value) IsMissing() bool { return v.kind == KindMissing }

// Num returns the raw number when v is a Number.
func (v Value) Num() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// Str returns the raw text when v is a Text.
func (v Value) Str() (string, bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.str, true
}

// Truth returns the raw boolean when v is a Bool.
func (v Value) Truth() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// Float coerces v to a number the way numeric reductions see it. Numbers
// pass through unless NaN, texts are parsed after trimming, blank text
// counts as 0, booleans map to 1 and 0, and Missing always fails.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindNumber:
		if math.IsNaN(v.num) {
			return 0, false
		}
		return v.num, true
	case KindText:
		if strings.TrimSpace(v.str) == "" {
			return 0, true
		}
		return ParseNumber(v.str)
	case KindBool:
		if v.b {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// ParseNumber reads a decimal number from text after trimming. Unlike
// Float, blank text fails.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// IsNumeric reports whether Float succeeds.
func (v Value) IsNumeric() bool {
	_, ok := v.Float()
	return ok
}

// Key stringifies v for use as a grouping or join key.
func (v Value) Key() string {
	switch v.kind {
	case KindNumber:
		return FormatNumber(v.num, -1)
	case KindText:
		return v.str
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return MissingText
	}
}

// String implements fmt.Stringer.
func (v Value) String() string {
	return v.Key()
}

// Format renders v for display. precision < 0 prints the shortest
// representation; missing renders as missingText.
func (v Value) Format(precision int, missingText string) string {
	switch v.kind {
	case KindMissing:
		return missingText
	case KindNumber:
		return FormatNumber(v.num, precision)
	default:
		return v.Key()
	}
}

// Interface returns the Go representation used by encoders:
// float64, string, bool or nil.
func (v Value) Interface() any {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindText:
		return v.str
	case KindBool:
		return v.b
	default:
		return nil
	}
}

// Equal reports whether two values hold the same variant and payload.
// Two NaN numbers are considered equal.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	if v.kind == KindNumber && math.IsNaN(v.num) && math.IsNaN(o.num) {
		return true
	}
	return v == o
}

// Less reports a < b under numeric coercion. It is false whenever either
// side fails coercion, mirroring an IEEE comparison against NaN.
func Less(a, b Value) bool {
	af, aok := a.Float()
	bf, bok := b.Float()
	return aok && bok && af < bf
}

// FormatNumber renders f with the given number of decimals, or the
// shortest round-tripping form when precision < 0.
func FormatNumber(f float64, precision int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	if precision >= 0 {
		return strconv.FormatFloat(f, 'f', precision, 64)
	}
	if math.Abs(f) >= exponentThreshold {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
