package sage

import (
	"testing"

	"github.com/victor-iyi/sage/encode"
)

func TestPatch(t *testing.T) {
	doc := Obj("name", "old", "tags", Arr("a"))
	patch := []byte(`[
		{"op": "replace", "path": "/name", "value": "new"},
		{"op": "add", "path": "/tags/-", "value": "b"}
	]`)
	res, err := Patch(doc, patch)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"name":"new","tags":["a","b"]}`
	if got := encode.MustString(res, encode.Wire(true)); got != want {
		t.Errorf("patched = %q, want %q", got, want)
	}
}

func TestPatchTestOpFails(t *testing.T) {
	doc := Obj("n", 1)
	patch := []byte(`[{"op": "test", "path": "/n", "value": 2}]`)
	if _, err := Patch(doc, patch); err == nil {
		t.Error("failing test op accepted")
	}
}

func TestPatchInvalid(t *testing.T) {
	doc := Obj("n", 1)
	if _, err := Patch(doc, []byte(`{"not": "a patch"}`)); err == nil {
		t.Error("non-array patch accepted")
	}
}

func TestMergePatch(t *testing.T) {
	doc := Obj("keep", 1, "drop", 2, "change", "x")
	res, err := MergePatch(doc, []byte(`{"drop": null, "change": "y", "add": true}`))
	if err != nil {
		t.Fatal(err)
	}
	o, _ := res.AsObject()
	if o.Has("drop") {
		t.Error("null did not remove the key")
	}
	if v, _ := o.Get("change"); !v.Equal(V("y")) {
		t.Errorf("change = %v", v)
	}
	if v, _ := o.Get("add"); !v.Equal(V(true)) {
		t.Errorf("add = %v", v)
	}
	if v, _ := o.Get("keep"); !v.Equal(V(1)) {
		t.Errorf("keep = %v", v)
	}
}
