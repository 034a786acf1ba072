package gomap

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/victor-iyi/sage/dtype"
)

type planet struct {
	Name  string `sage:"name"`
	Moons uint   `sage:"moons"`
	Mass  float64
	Note  string `sage:"-"`
}

func TestToStruct(t *testing.T) {
	v, err := To(planet{Name: "mars", Moons: 2, Mass: 0.107, Note: "skip me"})
	if err != nil {
		t.Fatal(err)
	}
	o, ok := v.AsObject()
	if !ok {
		t.Fatalf("built %v", v)
	}
	if got, want := o.Keys(), []string{"name", "moons", "Mass"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want declaration order %v", got, want)
	}
	if nm, _ := o.Get("name"); !nm.Equal(dtype.FromString("mars")) {
		t.Errorf("name = %v", nm)
	}
	moons, _ := o.Get("moons")
	n, _ := moons.AsNumber()
	if !n.IsUint64() {
		t.Errorf("moons not unsigned: %v", n)
	}
	if o.Has("Note") {
		t.Error("skipped field present")
	}
}

func TestToScalars(t *testing.T) {
	tests := []struct {
		in   any
		want dtype.Value
	}{
		{nil, dtype.Null()},
		{true, dtype.FromBool(true)},
		{int(-5), dtype.FromInt(-5)},
		{uint8(7), dtype.FromUint(7)},
		{1.5, dtype.FromFloat(1.5)},
		{"s", dtype.FromString("s")},
		{(*int)(nil), dtype.Null()},
		{[]int(nil), dtype.Null()},
		{map[string]int(nil), dtype.Null()},
	}
	for _, tst := range tests {
		got, err := To(tst.in)
		if err != nil {
			t.Errorf("To(%v): %v", tst.in, err)
			continue
		}
		if !got.Equal(tst.want) {
			t.Errorf("To(%v) = %v, want %v", tst.in, got, tst.want)
		}
	}
}

func TestToSignPreserved(t *testing.T) {
	v, _ := To(int64(5))
	n, _ := v.AsNumber()
	// non-negative signed input canonicalizes unsigned
	if !n.IsUint64() {
		t.Errorf("To(int64(5)) built %v", n)
	}
	v, _ = To(int64(-5))
	n, _ = v.AsNumber()
	if !n.IsInt64() {
		t.Errorf("To(int64(-5)) built %v", n)
	}
}

func TestToBytes(t *testing.T) {
	v, err := To([]byte{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	want := dtype.FromSlice([]dtype.Value{dtype.FromUint(1), dtype.FromUint(2)})
	if !v.Equal(want) {
		t.Errorf("To(bytes) = %v, want %v", v, want)
	}
}

func TestToMapKeyCoercion(t *testing.T) {
	v, err := To(map[int]string{2: "b", 1: "a"})
	if err != nil {
		t.Fatal(err)
	}
	o, _ := v.AsObject()
	if got, want := o.Keys(), []string{"1", "2"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want sorted %v", got, want)
	}
	if _, err := To(map[[2]int]string{{1, 2}: "x"}); !errors.Is(err, ErrKeyMustBeAString) {
		t.Errorf("array-keyed map error = %v", err)
	}
}

func TestToTime(t *testing.T) {
	ts := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	v, err := To(ts)
	if err != nil {
		t.Fatal(err)
	}
	if got, ok := v.AsTime(); !ok || !got.Equal(ts) {
		t.Errorf("To(time) = %v", v)
	}
}

func TestToRawTunnels(t *testing.T) {
	r, err := dtype.NewRaw(`{"keep":  1}`)
	if err != nil {
		t.Fatal(err)
	}
	v, err := To(struct{ R dtype.Raw }{R: r})
	if err != nil {
		t.Fatal(err)
	}
	o, _ := v.AsObject()
	rv, _ := o.Get("R")
	if !dtype.IsRawSentinel(rv) {
		t.Errorf("capture did not tunnel: %v", rv)
	}
}

type loud struct{ s string }

func (l loud) MarshalSage() (dtype.Value, error) {
	return dtype.FromString("LOUD:" + l.s), nil
}

func TestToValueMarshaler(t *testing.T) {
	v, err := To([]loud{{s: "hi"}})
	if err != nil {
		t.Fatal(err)
	}
	want := dtype.FromSlice([]dtype.Value{dtype.FromString("LOUD:hi")})
	if !v.Equal(want) {
		t.Errorf("To = %v, want %v", v, want)
	}
}

type node struct {
	Name string `sage:"name"`
	Next *node  `sage:"next"`
}

func TestToCircularReference(t *testing.T) {
	n := &node{Name: "a"}
	n.Next = n
	_, err := To(n)
	var be *BuildError
	if !errors.As(err, &be) {
		t.Fatalf("To(self-referential pointer) err = %v", err)
	}
	if !strings.Contains(err.Error(), "circular") {
		t.Errorf("err = %v, want circular reference", err)
	}

	m := map[string]any{}
	m["self"] = m
	if _, err := To(m); !errors.As(err, &be) {
		t.Errorf("To(self-containing map) err = %v", err)
	}
}

func TestToSharedPointer(t *testing.T) {
	// the same pointer reachable along two branches is not a cycle
	leaf := &node{Name: "leaf"}
	v, err := To(map[string]*node{"a": leaf, "b": leaf})
	if err != nil {
		t.Fatal(err)
	}
	o, _ := v.AsObject()
	for _, k := range []string{"a", "b"} {
		child, _ := o.Get(k)
		co, ok := child.AsObject()
		if !ok {
			t.Fatalf("%s = %v", k, child)
		}
		if nm, _ := co.Get("name"); !nm.Equal(dtype.FromString("leaf")) {
			t.Errorf("%s.name = %v", k, nm)
		}
	}
}

func TestToEmbedded(t *testing.T) {
	type Base struct {
		ID uint64 `sage:"id"`
	}
	type wrapper struct {
		Base
		Name string `sage:"name"`
	}
	v, err := To(wrapper{Base: Base{ID: 9}, Name: "n"})
	if err != nil {
		t.Fatal(err)
	}
	o, _ := v.AsObject()
	if !o.Has("id") || !o.Has("name") {
		t.Errorf("embedded fields not flattened: %v", o.Keys())
	}
	if o.Has("Base") {
		t.Error("embedded struct emitted as nested object")
	}
}
