package dtype

import (
	"errors"
	"math"
	"strconv"
)

type numberKind uint8

const (
	uintNumber    numberKind = iota
	intNumber                // strictly negative
	floatNumber              // always finite
	decimalNumber            // literal text, arbitrary precision
)

// Number is a numeric value held in exactly one of three native
// representations: unsigned integer, strictly negative signed integer, or
// finite float. A fourth, decimal-text-backed representation carries
// arbitrary-precision literals when a parser is configured to keep them.
//
// A Number is immutable once constructed. The zero Number is unsigned 0.
type Number struct {
	kind numberKind
	u    uint64
	i    int64
	f    float64
	text string
}

// Uint64 returns the Number for u.
func Uint64(u uint64) Number {
	return Number{kind: uintNumber, u: u}
}

// Int64 returns the Number for i. Non-negative input canonicalizes to the
// unsigned representation, so the signed form only ever holds values < 0.
func Int64(i int64) Number {
	if i >= 0 {
		return Number{kind: uintNumber, u: uint64(i)}
	}
	return Number{kind: intNumber, i: i}
}

// FromFloat64 returns the Number for f, or ok=false when f is NaN or an
// infinity. No finite float is ever rejected.
func FromFloat64(f float64) (Number, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Number{}, false
	}
	return Number{kind: floatNumber, f: f}, true
}

// Decimal returns a Number backed by the literal text of a numeric value,
// preserving precision beyond what the three native representations can
// hold. The text must be a valid numeric literal; values whose magnitude
// exceeds float64 range are still accepted.
func Decimal(text string) (Number, bool) {
	if text == "" {
		return Number{}, false
	}
	if _, err := strconv.ParseFloat(text, 64); err != nil {
		var num *strconv.NumError
		if !errors.As(err, &num) || !errors.Is(num.Err, strconv.ErrRange) {
			return Number{}, false
		}
	}
	return Number{kind: decimalNumber, text: text}, true
}

// IsUint64 reports whether the active representation is the unsigned form.
// Exactly one of IsUint64, IsInt64 and IsFloat64 holds for any Number built
// from native input; all three are false for decimal-backed Numbers.
func (n Number) IsUint64() bool { return n.kind == uintNumber }

// IsInt64 reports whether the active representation is the (strictly
// negative) signed form.
func (n Number) IsInt64() bool { return n.kind == intNumber }

// IsFloat64 reports whether the active representation is the float form.
func (n Number) IsFloat64() bool { return n.kind == floatNumber }

// IsDecimal reports whether the Number is decimal-text backed.
func (n Number) IsDecimal() bool { return n.kind == decimalNumber }

// AsUint64 reinterprets the Number as a uint64 when that loses nothing.
func (n Number) AsUint64() (uint64, bool) {
	switch n.kind {
	case uintNumber:
		return n.u, true
	case decimalNumber:
		u, err := strconv.ParseUint(n.text, 10, 64)
		return u, err == nil
	default:
		return 0, false
	}
}

// AsInt64 reinterprets the Number as an int64 when that loses nothing. An
// unsigned value above math.MaxInt64 has no int64 reading.
func (n Number) AsInt64() (int64, bool) {
	switch n.kind {
	case uintNumber:
		if n.u > math.MaxInt64 {
			return 0, false
		}
		return int64(n.u), true
	case intNumber:
		return n.i, true
	case decimalNumber:
		i, err := strconv.ParseInt(n.text, 10, 64)
		return i, err == nil
	default:
		return 0, false
	}
}

// AsFloat64 returns the float64 reading of the Number. Both integer forms
// convert; the float form returns its payload exactly. Decimal text converts
// only when the result is finite.
func (n Number) AsFloat64() (float64, bool) {
	switch n.kind {
	case uintNumber:
		return float64(n.u), true
	case intNumber:
		return float64(n.i), true
	case floatNumber:
		return n.f, true
	default:
		f, err := strconv.ParseFloat(n.text, 64)
		if err != nil || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
}

// Equal reports representation-sensitive equality: the active forms must
// match and their payloads must be identical.
func (n Number) Equal(o Number) bool {
	if n.kind != o.kind {
		return false
	}
	switch n.kind {
	case uintNumber:
		return n.u == o.u
	case intNumber:
		return n.i == o.i
	case floatNumber:
		return n.f == o.f
	default:
		return n.text == o.text
	}
}

// String renders the active representation verbatim.
func (n Number) String() string {
	switch n.kind {
	case uintNumber:
		return strconv.FormatUint(n.u, 10)
	case intNumber:
		return strconv.FormatInt(n.i, 10)
	case floatNumber:
		return formatFloat(n.f)
	default:
		return n.text
	}
}

// formatFloat renders f as a JSON-valid numeric literal, preferring the
// plain form over exponent notation for ordinary magnitudes.
func formatFloat(f float64) string {
	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	return strconv.FormatFloat(f, format, -1, 64)
}
