package gomap

import (
	"encoding"
	"fmt"
	"reflect"
	"sort"
	"time"

	"github.com/victor-iyi/sage/dtype"
)

var (
	valueType         = reflect.TypeOf(dtype.Value{})
	numberType        = reflect.TypeOf(dtype.Number{})
	rawType           = reflect.TypeOf(dtype.Raw{})
	timeType          = reflect.TypeOf(time.Time{})
	marshalerType     = reflect.TypeOf((*ValueMarshaler)(nil)).Elem()
	unmarshalerType   = reflect.TypeOf((*ValueUnmarshaler)(nil)).Elem()
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
)

// To converts a Go value to a dtype.Value by driving the build side of the
// traversal protocol with reflection. Numeric representations are preserved
// losslessly: unsigned Go kinds build unsigned numbers, signed kinds build
// signed ones, and non-finite floats collapse to null.
func To(v any) (dtype.Value, error) {
	if v == nil {
		return dtype.Null(), nil
	}
	b := dtype.NewBuilder()
	visited := make(map[uintptr]string)
	if err := build(b, reflect.ValueOf(v), "", visited); err != nil {
		return dtype.Null(), err
	}
	return b.Finish(), nil
}

func build(b *dtype.Builder, val reflect.Value, path string, visited map[uintptr]string) error {
	if !val.IsValid() {
		b.WriteNull()
		return nil
	}
	typ := val.Type()

	switch typ {
	case valueType:
		writeValue(b, val.Interface().(dtype.Value))
		return nil
	case numberType:
		b.WriteNumber(val.Interface().(dtype.Number))
		return nil
	case rawType:
		// Tunnel the capture as its sentinel object; the encoder splices
		// it verbatim on re-emission.
		writeValue(b, val.Interface().(dtype.Raw).Value())
		return nil
	case timeType:
		b.WriteTime(val.Interface().(time.Time))
		return nil
	}
	if typ.Implements(marshalerType) {
		vv, err := val.Interface().(ValueMarshaler).MarshalSage()
		if err != nil {
			return &BuildError{Path: path, Err: err}
		}
		writeValue(b, vv)
		return nil
	}
	if typ.Kind() != reflect.Pointer && reflect.PointerTo(typ).Implements(marshalerType) && val.CanAddr() {
		vv, err := val.Addr().Interface().(ValueMarshaler).MarshalSage()
		if err != nil {
			return &BuildError{Path: path, Err: err}
		}
		writeValue(b, vv)
		return nil
	}

	switch typ.Kind() {
	case reflect.Bool:
		b.WriteBool(val.Bool())
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		b.WriteInt64(val.Int())
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		b.WriteUint64(val.Uint())
		return nil
	case reflect.Float32, reflect.Float64:
		b.WriteFloat64(val.Float())
		return nil
	case reflect.String:
		b.WriteString(val.String())
		return nil
	case reflect.Pointer:
		if val.IsNil() {
			b.WriteNull()
			return nil
		}
		return buildRef(val, path, visited, func() error {
			return build(b, val.Elem(), path, visited)
		})
	case reflect.Interface:
		if val.IsNil() {
			b.WriteNull()
			return nil
		}
		return build(b, val.Elem(), path, visited)
	case reflect.Slice:
		if val.IsNil() {
			b.WriteNull()
			return nil
		}
		if typ.Elem().Kind() == reflect.Uint8 {
			b.WriteBytes(val.Bytes())
			return nil
		}
		return buildRef(val, path, visited, func() error {
			return buildSeq(b, val, path, visited)
		})
	case reflect.Array:
		return buildSeq(b, val, path, visited)
	case reflect.Map:
		if val.IsNil() {
			b.WriteNull()
			return nil
		}
		return buildRef(val, path, visited, func() error {
			return buildMap(b, val, path, visited)
		})
	case reflect.Struct:
		return buildStruct(b, val, path, visited)
	default:
		return &BuildError{
			Path:    path,
			Message: fmt.Sprintf("unsupported type: %s", typ),
		}
	}
}

// buildRef guards a pointer, map or slice against revisit while it is being
// descended into. The entry is dropped once the branch completes, so a value
// shared by several branches is not mistaken for a cycle.
func buildRef(val reflect.Value, path string, visited map[uintptr]string, descend func() error) error {
	addr := val.Pointer()
	if _, seen := visited[addr]; seen {
		return &BuildError{Path: path, Message: "circular reference detected"}
	}
	visited[addr] = path
	err := descend()
	delete(visited, addr)
	return err
}

func buildSeq(b *dtype.Builder, val reflect.Value, path string, visited map[uintptr]string) error {
	n := val.Len()
	b.BeginArray(n)
	for i := 0; i < n; i++ {
		if err := build(b, val.Index(i), fmt.Sprintf("%s[%d]", path, i), visited); err != nil {
			return err
		}
	}
	b.EndArray()
	return nil
}

func buildMap(b *dtype.Builder, val reflect.Value, path string, visited map[uintptr]string) error {
	type entry struct {
		key string
		val reflect.Value
	}
	entries := make([]entry, 0, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		key, err := coerceKey(iter.Key(), path)
		if err != nil {
			return err
		}
		entries = append(entries, entry{key: key, val: iter.Value()})
	}
	// Go map iteration order is random; sort for a deterministic object.
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
	b.BeginObject()
	for _, e := range entries {
		b.WriteKey(e.key)
		if err := build(b, e.val, keyPath(path, e.key), visited); err != nil {
			return err
		}
	}
	b.EndObject()
	return nil
}

// coerceKey turns a map key into object-key text. String kinds pass
// through, integer kinds use their decimal form, and text marshalers use
// their textual representation. Everything else has no string coercion.
func coerceKey(key reflect.Value, path string) (string, error) {
	for key.Kind() == reflect.Interface || key.Kind() == reflect.Pointer {
		if key.IsNil() {
			return "", &BuildError{Path: path, Err: ErrKeyMustBeAString, Message: "nil object key"}
		}
		key = key.Elem()
	}
	if key.Type().Implements(textMarshalerType) {
		d, err := key.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return "", &BuildError{Path: path, Err: err}
		}
		return string(d), nil
	}
	switch key.Kind() {
	case reflect.String:
		return key.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fmt.Sprintf("%d", key.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return fmt.Sprintf("%d", key.Uint()), nil
	default:
		return "", &BuildError{
			Path:    path,
			Err:     ErrKeyMustBeAString,
			Message: fmt.Sprintf("cannot use %s as object key", key.Type()),
		}
	}
}

func buildStruct(b *dtype.Builder, val reflect.Value, path string, visited map[uintptr]string) error {
	b.BeginObject()
	for _, f := range structFields(val.Type()) {
		b.WriteKey(f.name)
		if err := build(b, val.FieldByIndex(f.index), keyPath(path, f.name), visited); err != nil {
			return err
		}
	}
	b.EndObject()
	return nil
}

// writeValue replays an existing Value through the builder unchanged.
func writeValue(b *dtype.Builder, v dtype.Value) {
	switch v.Kind() {
	case dtype.ArrayKind:
		a, _ := v.AsArray()
		b.BeginArray(len(a))
		for i := range a {
			writeValue(b, a[i])
		}
		b.EndArray()
	case dtype.ObjectKind:
		o, _ := v.AsObject()
		b.BeginObject()
		o.Range(func(k string, vv *dtype.Value) bool {
			b.WriteKey(k)
			writeValue(b, *vv)
			return true
		})
		b.EndObject()
	case dtype.NumberKind:
		n, _ := v.AsNumber()
		b.WriteNumber(n)
	case dtype.BoolKind:
		bb, _ := v.AsBool()
		b.WriteBool(bb)
	case dtype.StringKind:
		s, _ := v.AsString()
		b.WriteString(s)
	case dtype.DateTimeKind:
		t, _ := v.AsTime()
		b.WriteTime(t)
	default:
		b.WriteNull()
	}
}

func keyPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
