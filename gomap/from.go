package gomap

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/victor-iyi/sage/dtype"
)

var textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

// From reads a dtype.Value into the Go value pointed to by p. Dispatch is on
// the active variant against the target type; any mismatch between the
// requested native shape and the actual variant is a *ReadError, never a
// silent coercion.
func From(v dtype.Value, p any) error {
	if p == nil {
		return &ReadError{Message: "destination cannot be nil"}
	}
	rv := reflect.ValueOf(p)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &ReadError{Message: "destination must be a non-nil pointer"}
	}
	if u, ok := p.(ValueUnmarshaler); ok {
		return u.UnmarshalSage(v)
	}
	return read(v, rv.Elem(), "")
}

func read(v dtype.Value, val reflect.Value, path string) error {
	typ := val.Type()

	if typ.Kind() == reflect.Pointer {
		if v.IsNull() {
			val.Set(reflect.Zero(typ))
			return nil
		}
		if val.IsNil() {
			val.Set(reflect.New(typ.Elem()))
		}
		if u, ok := val.Interface().(ValueUnmarshaler); ok {
			if err := u.UnmarshalSage(v); err != nil {
				return &ReadError{Path: path, Err: err}
			}
			return nil
		}
		return read(v, val.Elem(), path)
	}
	if val.CanAddr() && reflect.PointerTo(typ).Implements(unmarshalerType) {
		if err := val.Addr().Interface().(ValueUnmarshaler).UnmarshalSage(v); err != nil {
			return &ReadError{Path: path, Err: err}
		}
		return nil
	}

	switch typ {
	case valueType:
		val.Set(reflect.ValueOf(v.Clone()))
		return nil
	case numberType:
		n, ok := v.AsNumber()
		if !ok {
			return mismatch(path, "Number", v)
		}
		val.Set(reflect.ValueOf(n))
		return nil
	case rawType:
		// The sentinel object is the only shape a capture tunnels through.
		r, err := dtype.AsRaw(v)
		if err != nil {
			return &ReadError{Path: path, Err: err}
		}
		val.Set(reflect.ValueOf(r))
		return nil
	case timeType:
		return readTime(v, val, path)
	}

	if v.IsNull() {
		val.Set(reflect.Zero(typ))
		return nil
	}

	switch typ.Kind() {
	case reflect.Bool:
		b, ok := v.AsBool()
		if !ok {
			return mismatch(path, "Bool", v)
		}
		val.SetBool(b)
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := v.AsNumber()
		if !ok {
			return mismatch(path, "Number", v)
		}
		i, ok := n.AsInt64()
		if !ok {
			return &ReadError{Path: path, Message: fmt.Sprintf("number %s has no int64 reading", n)}
		}
		if val.OverflowInt(i) {
			return &ReadError{Path: path, Message: fmt.Sprintf("value %d overflows %s", i, typ)}
		}
		val.SetInt(i)
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, ok := v.AsNumber()
		if !ok {
			return mismatch(path, "Number", v)
		}
		u, ok := n.AsUint64()
		if !ok {
			return &ReadError{Path: path, Message: fmt.Sprintf("number %s has no uint64 reading", n)}
		}
		if val.OverflowUint(u) {
			return &ReadError{Path: path, Message: fmt.Sprintf("value %d overflows %s", u, typ)}
		}
		val.SetUint(u)
		return nil

	case reflect.Float32, reflect.Float64:
		n, ok := v.AsNumber()
		if !ok {
			return mismatch(path, "Number", v)
		}
		f, ok := n.AsFloat64()
		if !ok {
			return &ReadError{Path: path, Message: fmt.Sprintf("number %s has no float64 reading", n)}
		}
		if val.OverflowFloat(f) {
			return &ReadError{Path: path, Message: fmt.Sprintf("value %v overflows %s", f, typ)}
		}
		val.SetFloat(f)
		return nil

	case reflect.String:
		s, ok := v.AsString()
		if !ok {
			return mismatch(path, "String", v)
		}
		val.SetString(s)
		return nil

	case reflect.Interface:
		if typ.NumMethod() != 0 {
			return &ReadError{Path: path, Message: fmt.Sprintf("unsupported target type: %s", typ)}
		}
		x, err := materializeAny(v)
		if err != nil {
			return &ReadError{Path: path, Err: err}
		}
		if x == nil {
			val.Set(reflect.Zero(typ))
		} else {
			val.Set(reflect.ValueOf(x))
		}
		return nil

	case reflect.Slice:
		if typ.Elem().Kind() == reflect.Uint8 {
			return readBytes(v, val, path)
		}
		return readSeq(v, val, path)

	case reflect.Array:
		return readSeq(v, val, path)

	case reflect.Map:
		return readMap(v, val, path)

	case reflect.Struct:
		return readStruct(v, val, path)

	default:
		return &ReadError{Path: path, Message: fmt.Sprintf("unsupported target type: %s", typ)}
	}
}

// readTime decodes the DateTime variant, or its declared wire encoding, an
// RFC 3339 string.
func readTime(v dtype.Value, val reflect.Value, path string) error {
	if v.IsNull() {
		val.Set(reflect.Zero(val.Type()))
		return nil
	}
	if t, ok := v.AsTime(); ok {
		val.Set(reflect.ValueOf(t))
		return nil
	}
	s, ok := v.AsString()
	if !ok {
		return mismatch(path, "DateTime", v)
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return &ReadError{Path: path, Message: fmt.Sprintf("invalid timestamp %q", s), Err: err}
	}
	val.Set(reflect.ValueOf(t))
	return nil
}

// readBytes inverts the byte-sequence encoding: an array of unsigned
// numbers, one per byte.
func readBytes(v dtype.Value, val reflect.Value, path string) error {
	a, ok := v.AsArray()
	if !ok {
		return mismatch(path, "Array", v)
	}
	out := make([]byte, len(a))
	for i := range a {
		u, ok := a[i].AsUint64()
		if !ok || u > 255 {
			return &ReadError{Path: fmt.Sprintf("%s[%d]", path, i), Message: "expected a byte (0..255)"}
		}
		out[i] = byte(u)
	}
	val.SetBytes(out)
	return nil
}

func readSeq(v dtype.Value, val reflect.Value, path string) error {
	a, ok := v.AsArray()
	if !ok {
		return mismatch(path, "Array", v)
	}
	n := len(a)
	if val.Kind() == reflect.Array {
		if val.Len() != n {
			return &ReadError{
				Path:    path,
				Message: fmt.Sprintf("array length mismatch: have %d elements for [%d]%s", n, val.Len(), val.Type().Elem()),
			}
		}
	} else {
		val.Set(reflect.MakeSlice(val.Type(), n, n))
	}
	for i := 0; i < n; i++ {
		if err := read(a[i], val.Index(i), fmt.Sprintf("%s[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

func readMap(v dtype.Value, val reflect.Value, path string) error {
	obj, ok := v.AsObject()
	if !ok {
		return mismatch(path, "Object", v)
	}
	typ := val.Type()
	val.Set(reflect.MakeMapWithSize(typ, obj.Len()))
	var readErr error
	obj.Range(func(k string, vv *dtype.Value) bool {
		key, err := readKey(k, typ.Key(), path)
		if err != nil {
			readErr = err
			return false
		}
		elem := reflect.New(typ.Elem()).Elem()
		if err := read(*vv, elem, keyPath(path, k)); err != nil {
			readErr = err
			return false
		}
		val.SetMapIndex(key, elem)
		return true
	})
	return readErr
}

// readKey converts object-key text back to the map's key type.
func readKey(k string, typ reflect.Type, path string) (reflect.Value, error) {
	if reflect.PointerTo(typ).Implements(textUnmarshalerType) {
		key := reflect.New(typ)
		if err := key.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(k)); err != nil {
			return reflect.Value{}, &ReadError{Path: path, Message: fmt.Sprintf("invalid object key %q", k), Err: err}
		}
		return key.Elem(), nil
	}
	switch typ.Kind() {
	case reflect.String:
		return reflect.ValueOf(k).Convert(typ), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(k, 10, 64)
		if err != nil {
			return reflect.Value{}, &ReadError{Path: path, Message: fmt.Sprintf("invalid object key %q for %s", k, typ), Err: err}
		}
		key := reflect.New(typ).Elem()
		if key.OverflowInt(i) {
			return reflect.Value{}, &ReadError{Path: path, Message: fmt.Sprintf("object key %q overflows %s", k, typ)}
		}
		key.SetInt(i)
		return key, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u, err := strconv.ParseUint(k, 10, 64)
		if err != nil {
			return reflect.Value{}, &ReadError{Path: path, Message: fmt.Sprintf("invalid object key %q for %s", k, typ), Err: err}
		}
		key := reflect.New(typ).Elem()
		if key.OverflowUint(u) {
			return reflect.Value{}, &ReadError{Path: path, Message: fmt.Sprintf("object key %q overflows %s", k, typ)}
		}
		key.SetUint(u)
		return key, nil
	default:
		return reflect.Value{}, &ReadError{
			Path:    path,
			Err:     ErrKeyMustBeAString,
			Message: fmt.Sprintf("unsupported map key type %s", typ),
		}
	}
}

func readStruct(v dtype.Value, val reflect.Value, path string) error {
	obj, ok := v.AsObject()
	if !ok {
		return mismatch(path, "Object", v)
	}
	byName := map[string]structField{}
	for _, f := range structFields(val.Type()) {
		byName[f.name] = f
	}
	var readErr error
	obj.Range(func(k string, vv *dtype.Value) bool {
		f, ok := byName[k]
		if !ok {
			// Unknown keys are skipped.
			return true
		}
		readErr = read(*vv, val.FieldByIndex(f.index), keyPath(path, k))
		return readErr == nil
	})
	return readErr
}

func mismatch(path, expected string, v dtype.Value) *ReadError {
	return &ReadError{Path: path, Expected: expected, Actual: v.Kind().String()}
}
