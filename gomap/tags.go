package gomap

import (
	"reflect"
	"strings"
)

// fieldName resolves the object key for a struct field from its `sage` tag,
// falling back to the Go field name. A tag of "-" skips the field.
func fieldName(f reflect.StructField) (string, bool) {
	tag, ok := f.Tag.Lookup("sage")
	if !ok {
		return f.Name, true
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return "", false
	}
	if name == "" {
		return f.Name, true
	}
	return name, true
}

// structField pairs a resolved object key with the index path used to reach
// the field, which may descend through embedded structs.
type structField struct {
	name  string
	index []int
}

// structFields lists a struct type's convertible fields in declaration
// order, flattening exported fields of embedded structs into the parent. An
// embedded struct carrying its own `sage` tag name stays a regular field
// under that name.
func structFields(t reflect.Type) []structField {
	var fields []structField
	seen := map[string]bool{}
	var walk func(t reflect.Type, prefix []int)
	walk = func(t reflect.Type, prefix []int) {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			index := append(append([]int{}, prefix...), i)
			_, tagged := f.Tag.Lookup("sage")
			if f.Anonymous && f.Type.Kind() == reflect.Struct && !tagged {
				walk(f.Type, index)
				continue
			}
			name, ok := fieldName(f)
			if !ok || seen[name] {
				continue
			}
			seen[name] = true
			fields = append(fields, structField{name: name, index: index})
		}
	}
	walk(t, nil)
	return fields
}
