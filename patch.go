package sage

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/victor-iyi/sage/dtype"
	"github.com/victor-iyi/sage/encode"
	"github.com/victor-iyi/sage/parse"
)

// Patch applies an RFC 6902 patch document to doc and returns the patched
// tree. The patch operates on the wire encoding, so raw sentinel captures
// inside doc are spliced before patching.
func Patch(doc dtype.Value, patch []byte) (dtype.Value, error) {
	p, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return dtype.Null(), fmt.Errorf("error decoding patch: %w", err)
	}
	data, err := encode.Bytes(doc, encode.Wire(true))
	if err != nil {
		return dtype.Null(), fmt.Errorf("error encoding document: %w", err)
	}
	out, err := p.Apply(data)
	if err != nil {
		return dtype.Null(), fmt.Errorf("error applying patch: %w", err)
	}
	return parse.Parse(out)
}

// MergePatch applies an RFC 7386 merge patch to doc.
func MergePatch(doc dtype.Value, patch []byte) (dtype.Value, error) {
	data, err := encode.Bytes(doc, encode.Wire(true))
	if err != nil {
		return dtype.Null(), fmt.Errorf("error encoding document: %w", err)
	}
	out, err := jsonpatch.MergePatch(data, patch)
	if err != nil {
		return dtype.Null(), fmt.Errorf("error applying merge patch: %w", err)
	}
	return parse.Parse(out)
}
