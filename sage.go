// Package sage is the entry surface of the sage value model: a
// dynamically-typed, self-describing data tree (dtype) together with the
// conversion engine (gomap) that moves data between the tree and
// statically-typed Go values, plus patching and diffing over the wire form.
package sage

import (
	"fmt"

	"github.com/victor-iyi/sage/dtype"
	"github.com/victor-iyi/sage/gomap"
)

// Build converts a Go value to a dtype.Value.
func Build(v any) (dtype.Value, error) {
	return gomap.To(v)
}

// Read converts a dtype.Value into the Go value pointed to by p.
func Read(v dtype.Value, p any) error {
	return gomap.From(v, p)
}

// GetPointer resolves a slash-delimited pointer path into the tree. The
// empty path addresses the root; unresolvable paths return nil.
func GetPointer(v *dtype.Value, path string) *dtype.Value {
	return v.Pointer(path)
}

// V builds a Value from a literal expression, panicking on input the
// conversion engine rejects. It is a convenience for value literals only;
// use Build for data whose shape is not known statically.
func V(x any) dtype.Value {
	v, err := Build(x)
	if err != nil {
		panic(fmt.Sprintf("sage: cannot build literal: %v", err))
	}
	return v
}

// Arr builds an array value from its items.
func Arr(items ...any) dtype.Value {
	vs := make([]dtype.Value, len(items))
	for i, item := range items {
		vs[i] = V(item)
	}
	return dtype.FromSlice(vs)
}

// Obj builds an object value from alternating key/value arguments. Keys
// must be strings; an odd argument count or non-string key is a caller
// contract violation and panics, like the builder protocol it sits on.
// Entries keep their argument order.
func Obj(pairs ...any) dtype.Value {
	if len(pairs)%2 != 0 {
		panic("sage: Obj requires alternating key/value arguments")
	}
	m := dtype.NewMapWith(dtype.Insertion)
	for i := 0; i < len(pairs); i += 2 {
		k, ok := pairs[i].(string)
		if !ok {
			panic(fmt.Sprintf("sage: Obj key %d must be a string, got %T", i/2, pairs[i]))
		}
		m.Set(k, V(pairs[i+1]))
	}
	return dtype.FromMap(m)
}
