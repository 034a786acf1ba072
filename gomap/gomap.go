// Package gomap is the bidirectional conversion engine between Go values
// and the dtype value model: To builds a dtype.Value from a native value,
// From reads a dtype.Value back into one. Both directions preserve exact
// numeric semantics across the unsigned, signed and float representations.
package gomap

import "github.com/victor-iyi/sage/dtype"

// ValueMarshaler lets a type control its own build conversion.
type ValueMarshaler interface {
	MarshalSage() (dtype.Value, error)
}

// ValueUnmarshaler lets a type control its own read conversion.
type ValueUnmarshaler interface {
	UnmarshalSage(dtype.Value) error
}
