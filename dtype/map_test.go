package dtype

import (
	"reflect"
	"testing"
)

func TestMapSorted(t *testing.T) {
	m := NewMap()
	m.Set("b", FromInt(2))
	m.Set("a", FromInt(1))
	m.Set("c", FromInt(3))
	if got, want := m.Keys(), []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if v, ok := m.Get("b"); !ok || !v.Equal(FromInt(2)) {
		t.Errorf("Get(b) = %v, %v", v, ok)
	}
}

func TestMapInsertion(t *testing.T) {
	m := NewMapWith(Insertion)
	m.Set("b", FromInt(2))
	m.Set("a", FromInt(1))
	m.Set("c", FromInt(3))
	if got, want := m.Keys(), []string{"b", "a", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestMapSetReplaces(t *testing.T) {
	m := NewMap()
	m.Set("k", FromInt(1))
	prev, ok := m.Set("k", FromInt(2))
	if !ok || !prev.Equal(FromInt(1)) {
		t.Errorf("Set returned %v, %v", prev, ok)
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d", m.Len())
	}
	if v, _ := m.Get("k"); !v.Equal(FromInt(2)) {
		t.Errorf("Get(k) = %v", v)
	}
}

func TestMapDelete(t *testing.T) {
	m := NewMap()
	m.Set("a", FromInt(1))
	m.Set("b", FromInt(2))
	v, ok := m.Delete("a")
	if !ok || !v.Equal(FromInt(1)) {
		t.Errorf("Delete(a) = %v, %v", v, ok)
	}
	if _, ok := m.Delete("a"); ok {
		t.Error("second Delete(a) succeeded")
	}
	if got, want := m.Keys(), []string{"b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestMapGetOrInsert(t *testing.T) {
	m := NewMap()
	p := m.GetOrInsert("x", FromInt(1))
	if !p.Equal(FromInt(1)) {
		t.Errorf("GetOrInsert inserted %v", *p)
	}
	*p = FromInt(9)
	q := m.GetOrInsert("x", FromInt(1))
	if !q.Equal(FromInt(9)) {
		t.Errorf("GetOrInsert returned %v after write through pointer", *q)
	}
}

func TestMapEqualOrderInsensitive(t *testing.T) {
	a := NewMapWith(Insertion)
	a.Set("x", FromInt(1))
	a.Set("y", FromInt(2))
	b := NewMapWith(Insertion)
	b.Set("y", FromInt(2))
	b.Set("x", FromInt(1))
	if !a.Equal(b) {
		t.Error("content-equal maps compare unequal")
	}
	b.Set("x", FromInt(3))
	if a.Equal(b) {
		t.Error("differing maps compare equal")
	}
}

func TestMapRangeStops(t *testing.T) {
	m := NewMap()
	m.Set("a", FromInt(1))
	m.Set("b", FromInt(2))
	m.Set("c", FromInt(3))
	n := 0
	m.Range(func(key string, v *Value) bool {
		n++
		return key != "b"
	})
	if n != 2 {
		t.Errorf("visited %d entries", n)
	}
}
