// Package parse decodes wire-format text into the dtype value model. The
// lexing itself is delegated to the jsontext tokenizer; this package drives
// the build side of the traversal protocol from its token stream.
package parse

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-json-experiment/json/jsontext"

	"github.com/victor-iyi/sage/dtype"
)

// Parse decodes exactly one document from data.
func Parse(data []byte, opts ...Option) (dtype.Value, error) {
	po := &parseOpts{}
	for _, opt := range opts {
		opt(po)
	}
	dec := jsontext.NewDecoder(bytes.NewReader(data))
	b := dtype.NewBuilder()
	if err := parseValue(dec, b, po); err != nil {
		return dtype.Null(), err
	}
	if _, err := dec.ReadToken(); err != io.EOF {
		return dtype.Null(), fmt.Errorf("trailing data after document")
	}
	return b.Finish(), nil
}

// Reader decodes one document from r.
func Reader(r io.Reader, opts ...Option) (dtype.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return dtype.Null(), fmt.Errorf("error reading input: %w", err)
	}
	return Parse(data, opts...)
}

func parseValue(dec *jsontext.Decoder, b *dtype.Builder, po *parseOpts) error {
	tok, err := dec.ReadToken()
	if err != nil {
		return fmt.Errorf("error reading token: %w", err)
	}
	switch tok.Kind() {
	case 'n':
		b.WriteNull()
		return nil
	case 't', 'f':
		b.WriteBool(tok.Bool())
		return nil
	case '"':
		b.WriteString(tok.String())
		return nil
	case '0':
		return parseNumber(tok.String(), b, po)
	case '[':
		b.BeginArray(0)
		for dec.PeekKind() != ']' {
			if err := parseValue(dec, b, po); err != nil {
				return err
			}
		}
		if _, err := dec.ReadToken(); err != nil {
			return fmt.Errorf("error reading array close: %w", err)
		}
		b.EndArray()
		return nil
	case '{':
		b.BeginObject()
		for dec.PeekKind() != '}' {
			key, err := dec.ReadToken()
			if err != nil {
				return fmt.Errorf("error reading object key: %w", err)
			}
			b.WriteKey(key.String())
			if err := parseValue(dec, b, po); err != nil {
				return err
			}
		}
		if _, err := dec.ReadToken(); err != nil {
			return fmt.Errorf("error reading object close: %w", err)
		}
		b.EndObject()
		return nil
	default:
		return fmt.Errorf("unexpected token %v", tok)
	}
}

// parseNumber keeps the numeric representation faithful to the literal:
// integer literals become unsigned or signed integers, everything else a
// finite float, and literals beyond native range degrade to float unless
// arbitrary precision is configured.
func parseNumber(text string, b *dtype.Builder, po *parseOpts) error {
	if po.arbitraryPrecision {
		n, ok := dtype.Decimal(text)
		if !ok {
			return fmt.Errorf("invalid numeric literal %q", text)
		}
		b.WriteNumber(n)
		return nil
	}
	if !strings.ContainsAny(text, ".eE") {
		if text[0] == '-' {
			if i, err := strconv.ParseInt(text, 10, 64); err == nil {
				b.WriteInt64(i)
				return nil
			}
		} else if u, err := strconv.ParseUint(text, 10, 64); err == nil {
			b.WriteUint64(u)
			return nil
		}
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return fmt.Errorf("invalid numeric literal %q: %w", text, err)
	}
	b.WriteFloat64(f)
	return nil
}

// Raw validates that data is exactly one complete value and captures it
// without building a tree.
func Raw(data []byte) (dtype.Raw, error) {
	return dtype.NewRaw(string(data))
}
