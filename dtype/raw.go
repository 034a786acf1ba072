package dtype

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-json-experiment/json/jsontext"
)

// RawToken is the process-wide marker key used to tunnel raw captures
// through the traversal protocol. Only the paired capture and splice logic
// gives it meaning; every other consumer sees an ordinary one-field object.
const RawToken = "$sage.raw"

// Raw is a captured span of already-serialized text covering exactly one
// complete value in the wire format. It retains its original formatting:
// re-emission splices the span byte for byte, with no re-indentation or
// minification. Raw references its input string rather than copying it.
type Raw struct {
	data string
}

// NewRaw captures s, which must hold exactly one complete value plus
// optional boundary whitespace. With no boundary whitespace the input string
// is referenced as-is; otherwise the capture is the trimmed span.
func NewRaw(s string) (Raw, error) {
	span := strings.TrimSpace(s)
	if span == "" {
		return Raw{}, fmt.Errorf("%w: empty input", ErrInvalidRaw)
	}
	dec := jsontext.NewDecoder(strings.NewReader(span))
	if _, err := dec.ReadValue(); err != nil {
		return Raw{}, fmt.Errorf("%w: %w", ErrInvalidRaw, err)
	}
	if _, err := dec.ReadToken(); err != io.EOF {
		return Raw{}, fmt.Errorf("%w: trailing data after value", ErrInvalidRaw)
	}
	return Raw{data: span}, nil
}

// JSON returns the captured span.
func (r Raw) JSON() string { return r.data }

func (r Raw) String() string { return r.data }

// Value wraps the capture in its sentinel form: a single-entry object keyed
// by RawToken. The encoder recognizes this form and splices the span
// verbatim instead of re-encoding it structurally.
func (r Raw) Value() Value {
	m := NewMapWith(Insertion)
	m.Set(RawToken, FromString(r.data))
	return FromMap(m)
}

// AsRaw recovers a capture from its sentinel form. Any other shape,
// including a one-field object under a different key, is ErrInvalidRaw.
func AsRaw(v Value) (Raw, error) {
	obj, ok := v.AsObject()
	if !ok {
		return Raw{}, fmt.Errorf("%w: expected Object, got %s", ErrInvalidRaw, v.Kind())
	}
	if obj.Len() != 1 {
		return Raw{}, fmt.Errorf("%w: expected a single %q entry", ErrInvalidRaw, RawToken)
	}
	data, ok := obj.Get(RawToken)
	if !ok {
		return Raw{}, fmt.Errorf("%w: missing %q key", ErrInvalidRaw, RawToken)
	}
	s, ok := data.AsString()
	if !ok {
		return Raw{}, fmt.Errorf("%w: %q payload must be a String, got %s", ErrInvalidRaw, RawToken, data.Kind())
	}
	return Raw{data: s}, nil
}

// IsRawSentinel reports whether v has the sentinel form without decoding it.
func IsRawSentinel(v Value) bool {
	obj, ok := v.AsObject()
	if !ok || obj.Len() != 1 {
		return false
	}
	data, ok := obj.Get(RawToken)
	if !ok {
		return false
	}
	_, ok = data.AsString()
	return ok
}
