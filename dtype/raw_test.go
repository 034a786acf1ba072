package dtype

import (
	"errors"
	"testing"
)

func TestNewRaw(t *testing.T) {
	tests := []struct {
		in   string
		want string
		e    bool
	}{
		{in: `{"a": 1}`, want: `{"a": 1}`},
		{in: "  [1,\n 2]\n", want: "[1,\n 2]"},
		{in: `"s"`, want: `"s"`},
		{in: `1.5e3`, want: `1.5e3`},
		{in: `null`, want: `null`},
		{in: "", e: true},
		{in: "   ", e: true},
		{in: `{"a":`, e: true},
		{in: `1 2`, e: true},
		{in: `{"a": 1} trailing`, e: true},
	}
	for _, tst := range tests {
		r, err := NewRaw(tst.in)
		if tst.e {
			if err == nil {
				t.Errorf("NewRaw(%q) accepted", tst.in)
			} else if !errors.Is(err, ErrInvalidRaw) {
				t.Errorf("NewRaw(%q) error %v not ErrInvalidRaw", tst.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("NewRaw(%q): %v", tst.in, err)
			continue
		}
		if r.JSON() != tst.want {
			t.Errorf("NewRaw(%q).JSON() = %q, want %q", tst.in, r.JSON(), tst.want)
		}
	}
}

func TestRawSentinelRoundTrip(t *testing.T) {
	r, err := NewRaw(`{"keep":   "my formatting"}`)
	if err != nil {
		t.Fatal(err)
	}
	v := r.Value()
	if !IsRawSentinel(v) {
		t.Fatalf("sentinel not recognized: %v", v)
	}
	back, err := AsRaw(v)
	if err != nil {
		t.Fatal(err)
	}
	if back.JSON() != r.JSON() {
		t.Errorf("round trip changed capture: %q", back.JSON())
	}
}

func TestAsRawRejects(t *testing.T) {
	one := NewMapWith(Insertion)
	one.Set("other", FromString("x"))
	two := NewMapWith(Insertion)
	two.Set(RawToken, FromString("1"))
	two.Set("extra", FromString("2"))
	notStr := NewMapWith(Insertion)
	notStr.Set(RawToken, FromInt(1))

	for _, v := range []Value{
		FromString("1"),
		FromMap(one),
		FromMap(two),
		FromMap(notStr),
	} {
		if _, err := AsRaw(v); !errors.Is(err, ErrInvalidRaw) {
			t.Errorf("AsRaw(%v) error = %v, want ErrInvalidRaw", v, err)
		}
		if IsRawSentinel(v) {
			t.Errorf("IsRawSentinel(%v) = true", v)
		}
	}
}
