package parse

import (
	"bytes"
	"fmt"

	"github.com/go-json-experiment/json/jsontext"

	"github.com/victor-iyi/sage/dtype"
)

// Capture extracts the sub-document addressed by pointer as a raw span,
// skipping over everything else without building a tree. The captured span
// keeps its original formatting.
func Capture(data []byte, pointer string) (dtype.Raw, error) {
	segs, ok := dtype.PointerSegments(pointer)
	if !ok {
		return dtype.Raw{}, fmt.Errorf("invalid pointer %q", pointer)
	}
	dec := jsontext.NewDecoder(bytes.NewReader(data))
	return capture(dec, segs)
}

func capture(dec *jsontext.Decoder, segs []string) (dtype.Raw, error) {
	if len(segs) == 0 {
		v, err := dec.ReadValue()
		if err != nil {
			return dtype.Raw{}, fmt.Errorf("error capturing value: %w", err)
		}
		return dtype.NewRaw(string(v))
	}
	seg := segs[0]
	switch dec.PeekKind() {
	case '{':
		if _, err := dec.ReadToken(); err != nil {
			return dtype.Raw{}, fmt.Errorf("error reading object open: %w", err)
		}
		for dec.PeekKind() != '}' {
			key, err := dec.ReadToken()
			if err != nil {
				return dtype.Raw{}, fmt.Errorf("error reading object key: %w", err)
			}
			if key.String() == seg {
				return capture(dec, segs[1:])
			}
			if err := dec.SkipValue(); err != nil {
				return dtype.Raw{}, fmt.Errorf("error skipping value for %q: %w", key.String(), err)
			}
		}
		return dtype.Raw{}, fmt.Errorf("no value under key %q", seg)
	case '[':
		idx, ok := dtype.ArrayIndex(seg)
		if !ok {
			return dtype.Raw{}, fmt.Errorf("invalid array index %q", seg)
		}
		if _, err := dec.ReadToken(); err != nil {
			return dtype.Raw{}, fmt.Errorf("error reading array open: %w", err)
		}
		for i := 0; ; i++ {
			if dec.PeekKind() == ']' {
				return dtype.Raw{}, fmt.Errorf("array index %d out of bounds", idx)
			}
			if i == idx {
				return capture(dec, segs[1:])
			}
			if err := dec.SkipValue(); err != nil {
				return dtype.Raw{}, fmt.Errorf("error skipping element %d: %w", i, err)
			}
		}
	default:
		return dtype.Raw{}, fmt.Errorf("cannot descend into a leaf with segment %q", seg)
	}
}
