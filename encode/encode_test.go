package encode

import (
	"testing"
	"time"

	"github.com/victor-iyi/sage/dtype"
	"github.com/victor-iyi/sage/parse"
)

func mustParse(t *testing.T, in string) dtype.Value {
	t.Helper()
	v, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatalf("Parse(%q): %v", in, err)
	}
	return v
}

func TestEncodeWire(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`null`, `null`},
		{`true`, `true`},
		{`-17`, `-17`},
		{`1.5`, `1.5`},
		{`"hi"`, `"hi"`},
		{`[]`, `[]`},
		{`{}`, `{}`},
		{`[ 1 , 2 ]`, `[1,2]`},
		{`{"a": 1, "b": [true, null]}`, `{"a":1,"b":[true,null]}`},
	}
	for _, tst := range tests {
		got := MustString(mustParse(t, tst.in), Wire(true))
		if got != tst.want {
			t.Errorf("wire(%q) = %q, want %q", tst.in, got, tst.want)
		}
	}
}

func TestEncodeIndented(t *testing.T) {
	v := mustParse(t, `{"a":1,"b":[true,null],"c":{}}`)
	want := `{
  "a": 1,
  "b": [
    true,
    null
  ],
  "c": {}
}`
	if got := MustString(v); got != want {
		t.Errorf("indented = %q, want %q", got, want)
	}
}

func TestEncodeIndentWidth(t *testing.T) {
	v := mustParse(t, `{"a":1}`)
	want := "{\n    \"a\": 1\n}"
	if got := MustString(v, Indent(4)); got != want {
		t.Errorf("Indent(4) = %q, want %q", got, want)
	}
}

func TestEncodeKeyOrderPreserved(t *testing.T) {
	v := mustParse(t, `{"z":1,"a":2}`)
	if got, want := MustString(v, Wire(true)), `{"z":1,"a":2}`; got != want {
		t.Errorf("wire = %q, want %q", got, want)
	}
}

func TestEncodeStringEscapes(t *testing.T) {
	v := dtype.FromString("line\n\"quoted\"")
	if got, want := MustString(v, Wire(true)), `"line\n\"quoted\""`; got != want {
		t.Errorf("escaped = %q, want %q", got, want)
	}
}

func TestEncodeTime(t *testing.T) {
	ts := time.Date(2023, 7, 8, 9, 10, 11, 0, time.UTC)
	v := dtype.FromTime(ts)
	if got, want := MustString(v, Wire(true)), `"2023-07-08T09:10:11Z"`; got != want {
		t.Errorf("time = %q, want %q", got, want)
	}
}

func TestEncodeSplicesRawVerbatim(t *testing.T) {
	span := "{\"keep\":    [1,\n      2]}"
	r, err := dtype.NewRaw(span)
	if err != nil {
		t.Fatal(err)
	}
	m := dtype.NewMapWith(dtype.Insertion)
	m.Set("wrapped", r.Value())
	doc := dtype.FromMap(m)
	// the captured span survives byte for byte under both layouts
	if got, want := MustString(doc, Wire(true)), `{"wrapped":`+span+`}`; got != want {
		t.Errorf("wire = %q, want %q", got, want)
	}
	if got, want := MustString(doc), "{\n  \"wrapped\": "+span+"\n}"; got != want {
		t.Errorf("indented = %q, want %q", got, want)
	}
}
