package dtype

import (
	"math"
	"testing"
)

func TestNumberClassify(t *testing.T) {
	if n := Uint64(7); !n.IsUint64() || n.IsInt64() || n.IsFloat64() {
		t.Errorf("Uint64(7) classified %v", n)
	}
	if n := Int64(-7); !n.IsInt64() || n.IsUint64() {
		t.Errorf("Int64(-7) classified %v", n)
	}
	// non-negative signed input lands in the unsigned reading
	if n := Int64(7); !n.IsUint64() {
		t.Errorf("Int64(7) classified %v", n)
	}
	n, ok := FromFloat64(1.5)
	if !ok || !n.IsFloat64() {
		t.Errorf("FromFloat64(1.5) = %v, %v", n, ok)
	}
	if _, ok := FromFloat64(math.NaN()); ok {
		t.Error("FromFloat64(NaN) accepted")
	}
	if _, ok := FromFloat64(math.Inf(1)); ok {
		t.Error("FromFloat64(+Inf) accepted")
	}
}

func TestNumberAs(t *testing.T) {
	big := Uint64(math.MaxUint64)
	if _, ok := big.AsInt64(); ok {
		t.Error("MaxUint64 readable as int64")
	}
	if u, ok := big.AsUint64(); !ok || u != math.MaxUint64 {
		t.Errorf("AsUint64 = %v, %v", u, ok)
	}
	neg := Int64(-3)
	if _, ok := neg.AsUint64(); ok {
		t.Error("-3 readable as uint64")
	}
	if i, ok := neg.AsInt64(); !ok || i != -3 {
		t.Errorf("AsInt64 = %v, %v", i, ok)
	}
	if f, ok := neg.AsFloat64(); !ok || f != -3 {
		t.Errorf("AsFloat64 = %v, %v", f, ok)
	}
	fl, _ := FromFloat64(2.0)
	// floats never read back as integers, even when integral
	if _, ok := fl.AsInt64(); ok {
		t.Error("2.0 readable as int64")
	}
	if _, ok := fl.AsUint64(); ok {
		t.Error("2.0 readable as uint64")
	}
}

func TestNumberDecimal(t *testing.T) {
	d, ok := Decimal("1e1000")
	if !ok {
		t.Fatal("Decimal(1e1000) rejected")
	}
	if !d.IsDecimal() {
		t.Errorf("classified %v", d)
	}
	if got := d.String(); got != "1e1000" {
		t.Errorf("String() = %q", got)
	}
	if _, ok := Decimal("nope"); ok {
		t.Error("Decimal(nope) accepted")
	}
}

func TestNumberEqual(t *testing.T) {
	if !Uint64(3).Equal(Uint64(3)) {
		t.Error("3 != 3")
	}
	f3, _ := FromFloat64(3)
	// representation-sensitive: integer 3 and float 3.0 differ
	if Uint64(3).Equal(f3) {
		t.Error("uint 3 == float 3.0")
	}
	if Int64(-1).Equal(Int64(-2)) {
		t.Error("-1 == -2")
	}
}

func TestNumberString(t *testing.T) {
	tests := []struct {
		n    Number
		want string
	}{
		{Uint64(42), "42"},
		{Int64(-42), "-42"},
		{mustFloat(t, 1.5), "1.5"},
		{mustFloat(t, 1e21), "1e+21"},
		{mustFloat(t, 3), "3"},
	}
	for _, tst := range tests {
		if got := tst.n.String(); got != tst.want {
			t.Errorf("String(%v) = %q, want %q", tst.n, got, tst.want)
		}
	}
}

func mustFloat(t *testing.T, f float64) Number {
	t.Helper()
	n, ok := FromFloat64(f)
	if !ok {
		t.Fatalf("FromFloat64(%v) rejected", f)
	}
	return n
}
