// Package encode emits the wire-format text of a dtype value tree. Raw
// sentinel objects are spliced byte for byte, so a captured span re-emits
// with its original formatting regardless of the encoder's own layout
// options.
package encode

import (
	"bytes"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-json-experiment/json/jsontext"

	"github.com/victor-iyi/sage/dtype"
)

type encState struct {
	buf    bytes.Buffer
	indent int
	wire   bool
	color  func(dtype.Kind, ColorAttr, string) string
	err    error
}

// Encode writes v to w. The default layout indents nested containers by two
// spaces; Wire(true) selects the compact form.
func Encode(v dtype.Value, w io.Writer, opts ...EncodeOption) error {
	es := &encState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	es.encode(v, 0)
	if es.err != nil {
		return es.err
	}
	_, err := w.Write(es.buf.Bytes())
	return err
}

// Bytes returns the encoded form of v.
func Bytes(v dtype.Value, opts ...EncodeOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(v, &buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// String returns the encoded form of v.
func String(v dtype.Value, opts ...EncodeOption) (string, error) {
	d, err := Bytes(v, opts...)
	if err != nil {
		return "", err
	}
	return string(d), nil
}

// MustString is String for values known to encode, such as trees built by
// the conversion engine.
func MustString(v dtype.Value, opts ...EncodeOption) string {
	s, err := String(v, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func (es *encState) encode(v dtype.Value, depth int) {
	switch v.Kind() {
	case dtype.NullKind:
		es.literal(v.Kind(), "null")
	case dtype.BoolKind:
		b, _ := v.AsBool()
		es.literal(v.Kind(), strconv.FormatBool(b))
	case dtype.NumberKind:
		n, _ := v.AsNumber()
		es.literal(v.Kind(), n.String())
	case dtype.StringKind:
		s, _ := v.AsString()
		es.quoted(v.Kind(), s)
	case dtype.DateTimeKind:
		t, _ := v.AsTime()
		es.quoted(v.Kind(), t.Format(time.RFC3339Nano))
	case dtype.ArrayKind:
		es.encodeArray(v, depth)
	case dtype.ObjectKind:
		if dtype.IsRawSentinel(v) {
			// Splice the captured span verbatim.
			r, err := dtype.AsRaw(v)
			if err != nil {
				es.fail(err)
				return
			}
			es.buf.WriteString(r.JSON())
			return
		}
		es.encodeObject(v, depth)
	}
}

func (es *encState) encodeArray(v dtype.Value, depth int) {
	a, _ := v.AsArray()
	if len(a) == 0 {
		es.buf.WriteString("[]")
		return
	}
	es.buf.WriteByte('[')
	for i := range a {
		if i > 0 {
			es.buf.WriteByte(',')
		}
		es.newline(depth + 1)
		es.encode(a[i], depth+1)
	}
	es.newline(depth)
	es.buf.WriteByte(']')
}

func (es *encState) encodeObject(v dtype.Value, depth int) {
	obj, _ := v.AsObject()
	if obj.Len() == 0 {
		es.buf.WriteString("{}")
		return
	}
	es.buf.WriteByte('{')
	first := true
	obj.Range(func(k string, val *dtype.Value) bool {
		if !first {
			es.buf.WriteByte(',')
		}
		first = false
		es.newline(depth + 1)
		es.key(val.Kind(), k)
		es.buf.WriteByte(':')
		if !es.wire {
			es.buf.WriteByte(' ')
		}
		es.encode(*val, depth+1)
		return es.err == nil
	})
	es.newline(depth)
	es.buf.WriteByte('}')
}

func (es *encState) newline(depth int) {
	if es.wire {
		return
	}
	es.buf.WriteByte('\n')
	es.buf.WriteString(strings.Repeat(" ", es.indent*depth))
}

func (es *encState) literal(k dtype.Kind, s string) {
	if es.color != nil {
		s = es.color(k, ValueColor, s)
	}
	es.buf.WriteString(s)
}

func (es *encState) quoted(k dtype.Kind, s string) {
	q, err := jsontext.AppendQuote(nil, s)
	if err != nil {
		es.fail(err)
		return
	}
	es.literal(k, string(q))
}

func (es *encState) key(valueKind dtype.Kind, k string) {
	q, err := jsontext.AppendQuote(nil, k)
	if err != nil {
		es.fail(err)
		return
	}
	s := string(q)
	if es.color != nil {
		s = es.color(valueKind, KeyColor, s)
	}
	es.buf.WriteString(s)
}

func (es *encState) fail(err error) {
	if es.err == nil {
		es.err = err
	}
}
