// Package dtype holds the dynamically-typed, self-describing value model: a
// tree of null, bool, number, string, array and object nodes, plus the
// build/read traversal protocol used to move data in and out of it.
package dtype

import (
	"strconv"
	"strings"
	"time"
)

// Value is a tagged union with one active variant at a time. The zero Value
// is Null. Child payloads are owned; Clone copies deeply.
type Value struct {
	kind Kind
	b    bool
	n    Number
	s    string
	a    []Value
	o    *Map
	t    time.Time
}

// Null returns the null Value.
func Null() Value {
	return Value{}
}

func FromBool(b bool) Value {
	return Value{kind: BoolKind, b: b}
}

func FromInt(i int64) Value {
	return Value{kind: NumberKind, n: Int64(i)}
}

func FromUint(u uint64) Value {
	return Value{kind: NumberKind, n: Uint64(u)}
}

// FromFloat returns a Number value for f, or Null when f is not finite.
func FromFloat(f float64) Value {
	n, ok := FromFloat64(f)
	if !ok {
		return Value{}
	}
	return Value{kind: NumberKind, n: n}
}

func FromNumber(n Number) Value {
	return Value{kind: NumberKind, n: n}
}

func FromString(s string) Value {
	return Value{kind: StringKind, s: s}
}

func FromTime(t time.Time) Value {
	return Value{kind: DateTimeKind, t: t}
}

// FromSlice wraps vs as an array value. The slice is owned by the result.
func FromSlice(vs []Value) Value {
	if vs == nil {
		vs = []Value{}
	}
	return Value{kind: ArrayKind, a: vs}
}

// FromMap wraps m as an object value.
func FromMap(m *Map) Value {
	if m == nil {
		m = NewMap()
	}
	return Value{kind: ObjectKind, o: m}
}

// FromStringMap builds an object value from a native map. Iteration order of
// the result is sorted, matching the default Map order.
func FromStringMap(vs map[string]Value) Value {
	m := NewMap()
	for k, v := range vs {
		m.Set(k, v)
	}
	return Value{kind: ObjectKind, o: m}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == NullKind }

func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == BoolKind
}

func (v Value) AsNumber() (Number, bool) {
	return v.n, v.kind == NumberKind
}

func (v Value) AsString() (string, bool) {
	return v.s, v.kind == StringKind
}

func (v Value) AsTime() (time.Time, bool) {
	return v.t, v.kind == DateTimeKind
}

// AsArray returns the array payload. The slice is shared with the Value;
// mutating elements mutates the tree.
func (v Value) AsArray() ([]Value, bool) {
	return v.a, v.kind == ArrayKind
}

// AsObject returns the object payload, shared with the Value.
func (v Value) AsObject() (*Map, bool) {
	return v.o, v.kind == ObjectKind
}

// AsInt64 is a shorthand for the number accessor chain.
func (v Value) AsInt64() (int64, bool) {
	if v.kind != NumberKind {
		return 0, false
	}
	return v.n.AsInt64()
}

func (v Value) AsUint64() (uint64, bool) {
	if v.kind != NumberKind {
		return 0, false
	}
	return v.n.AsUint64()
}

func (v Value) AsFloat64() (float64, bool) {
	if v.kind != NumberKind {
		return 0, false
	}
	return v.n.AsFloat64()
}

// Take replaces v with Null and returns the previous value.
func (v *Value) Take() Value {
	prev := *v
	*v = Value{}
	return prev
}

// Clone deep-copies the value tree.
func (v Value) Clone() Value {
	switch v.kind {
	case ArrayKind:
		a := make([]Value, len(v.a))
		for i := range v.a {
			a[i] = v.a[i].Clone()
		}
		return Value{kind: ArrayKind, a: a}
	case ObjectKind:
		return Value{kind: ObjectKind, o: v.o.Clone()}
	default:
		return v
	}
}

// Equal reports structural equality: same variant and recursively equal
// payload. Numbers compare representation-sensitively.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case NullKind:
		return true
	case BoolKind:
		return v.b == o.b
	case NumberKind:
		return v.n.Equal(o.n)
	case StringKind:
		return v.s == o.s
	case DateTimeKind:
		return v.t.Equal(o.t)
	case ArrayKind:
		if len(v.a) != len(o.a) {
			return false
		}
		for i := range v.a {
			if !v.a[i].Equal(o.a[i]) {
				return false
			}
		}
		return true
	case ObjectKind:
		return v.o.Equal(o.o)
	default:
		return false
	}
}

// String renders a compact single-line form for debugging. The encode
// package produces the wire form.
func (v Value) String() string {
	var sb strings.Builder
	v.debugString(&sb)
	return sb.String()
}

func (v Value) debugString(sb *strings.Builder) {
	switch v.kind {
	case NullKind:
		sb.WriteString("null")
	case BoolKind:
		sb.WriteString(strconv.FormatBool(v.b))
	case NumberKind:
		sb.WriteString(v.n.String())
	case StringKind:
		sb.WriteString(strconv.Quote(v.s))
	case DateTimeKind:
		sb.WriteString(strconv.Quote(v.t.Format(time.RFC3339Nano)))
	case ArrayKind:
		sb.WriteByte('[')
		for i := range v.a {
			if i > 0 {
				sb.WriteByte(',')
			}
			v.a[i].debugString(sb)
		}
		sb.WriteByte(']')
	case ObjectKind:
		sb.WriteByte('{')
		first := true
		v.o.Range(func(k string, val *Value) bool {
			if !first {
				sb.WriteByte(',')
			}
			first = false
			sb.WriteString(strconv.Quote(k))
			sb.WriteByte(':')
			val.debugString(sb)
			return true
		})
		sb.WriteByte('}')
	}
}
