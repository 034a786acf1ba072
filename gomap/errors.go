package gomap

import (
	"errors"
	"fmt"
)

// ErrKeyMustBeAString reports a map key that has no textual coercion:
// booleans, floats, sequences and maps cannot key an object.
var ErrKeyMustBeAString = errors.New("key must be a string")

// BuildError reports a failure converting a Go value into a dtype.Value.
type BuildError struct {
	Path    string // field path into the Go value, e.g. "servers[0].addr"
	Message string
	Err     error
}

func (e *BuildError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Path != "" {
		return fmt.Sprintf("build error at %s: %s", e.Path, msg)
	}
	return fmt.Sprintf("build error: %s", msg)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// ReadError reports a failure converting a dtype.Value into a Go value,
// most often a shape mismatch between the requested native type and the
// actual variant. Mismatches are never silently coerced.
type ReadError struct {
	Path     string
	Expected string // requested native shape
	Actual   string // active variant found
	Message  string
	Err      error
}

func (e *ReadError) Error() string {
	msg := e.Message
	if msg == "" && e.Expected != "" {
		msg = fmt.Sprintf("expected %s, got %s", e.Expected, e.Actual)
	}
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Path != "" {
		return fmt.Sprintf("read error at %s: %s", e.Path, msg)
	}
	return fmt.Sprintf("read error: %s", msg)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
