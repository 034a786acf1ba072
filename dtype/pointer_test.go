package dtype

import "testing"

func pointerDoc() Value {
	inner := NewMap()
	inner.Set("b", FromSlice([]Value{FromInt(10), FromInt(20)}))
	inner.Set("x/y", FromString("slash"))
	inner.Set("~tilde", FromString("tilde"))
	m := NewMap()
	m.Set("a", FromMap(inner))
	m.Set("", FromString("empty-key"))
	return FromMap(m)
}

func TestPointer(t *testing.T) {
	doc := pointerDoc()
	tests := []struct {
		path string
		want Value
		miss bool
	}{
		{path: "", want: doc},
		{path: "/a/b/1", want: FromInt(20)},
		{path: "/a/b/0", want: FromInt(10)},
		{path: "/a/x~1y", want: FromString("slash")},
		{path: "/a/~0tilde", want: FromString("tilde")},
		{path: "/", want: FromString("empty-key")},
		{path: "/missing", miss: true},
		{path: "/a/b/2", miss: true},
		{path: "/a/b/01", miss: true},
		{path: "/a/b/+1", miss: true},
		{path: "/a/b/-", miss: true},
		{path: "a/b", miss: true},
		{path: "/a/b/0/deep", miss: true},
	}
	for _, tst := range tests {
		got := doc.Pointer(tst.path)
		if tst.miss {
			if got != nil {
				t.Errorf("Pointer(%q) = %v, want nil", tst.path, *got)
			}
			continue
		}
		if got == nil {
			t.Errorf("Pointer(%q) = nil", tst.path)
			continue
		}
		if !got.Equal(tst.want) {
			t.Errorf("Pointer(%q) = %v, want %v", tst.path, *got, tst.want)
		}
	}
}

func TestPointerMutatesInPlace(t *testing.T) {
	doc := pointerDoc()
	p := doc.Pointer("/a/b/0")
	*p = FromString("swapped")
	if q := doc.Pointer("/a/b/0"); !q.Equal(FromString("swapped")) {
		t.Errorf("after write, node = %v", *q)
	}
	taken := doc.Pointer("/a/b/1").Take()
	if !taken.Equal(FromInt(20)) {
		t.Errorf("Take = %v", taken)
	}
	if q := doc.Pointer("/a/b/1"); !q.IsNull() {
		t.Errorf("after Take, node = %v", *q)
	}
}

func TestArrayIndex(t *testing.T) {
	tests := []struct {
		seg string
		n   int
		ok  bool
	}{
		{"0", 0, true},
		{"7", 7, true},
		{"10", 10, true},
		{"", 0, false},
		{"01", 0, false},
		{"+1", 0, false},
		{"-1", 0, false},
		{"1x", 0, false},
		{"99999999999999999999", 0, false},
	}
	for _, tst := range tests {
		n, ok := ArrayIndex(tst.seg)
		if n != tst.n || ok != tst.ok {
			t.Errorf("ArrayIndex(%q) = %v, %v, want %v, %v", tst.seg, n, ok, tst.n, tst.ok)
		}
	}
}
