package core

import (
	"math/big"
	"testing"
)

func TestItoaAtoiRoundTrip128(t *testing.T) {
	cases := []string{"0", "123", "-123"}
	max128 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	min128 := new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	minPlusOne := new(big.Int).Add(min128, big.NewInt(1))

	values := []*big.Int{}
	for _, c := range cases {
		v, ok := new(big.Int).SetString(c, 10)
		if !ok {
			t.Fatalf("bad case literal %q", c)
		}
		values = append(values, v)
	}
	values = append(values, max128, min128, minPlusOne)

	for _, v := range values {
		s := Itoa(v, 10)
		signed := v.Sign() < 0
		got := Atoi128(s, signed)
		if got.Cmp(v) != 0 {
			t.Fatalf("round trip mismatch: %s -> %s -> %s", v, s, got)
		}
	}
}

func TestAtoiRejectsGarbage(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected abort on invalid digit")
		}
	}()
	Atoi128("12x4", false)
}

func TestAtoiAcceptsCommaSeparators(t *testing.T) {
	got := Atoi128("1,000,000", false)
	want := big.NewInt(1000000)
	if got.Cmp(want) != 0 {
		t.Fatalf("got %s want %s", got, want)
	}
}

func TestDiv256WithRem(t *testing.T) {
	a, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	b := big.NewInt(987654321)
	q, r := Div256WithRem(a, b)
	check := new(big.Int).Mul(q, b)
	check.Add(check, r)
	if check.Cmp(a) != 0 {
		t.Fatalf("q*b+r != a: q=%s r=%s", q, r)
	}
	if r.Cmp(b) >= 0 {
		t.Fatalf("remainder %s not less than divisor %s", r, b)
	}
}

func TestDiv256ByZeroAborts(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected abort on division by zero")
		}
	}()
	Div256(big.NewInt(10), big.NewInt(0))
}

func TestItoaInvalidRadixAborts(t *testing.T) {
	for _, radix := range []int{0, 1, 37} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected abort for radix %d", radix)
				}
			}()
			Itoa(big.NewInt(5), radix)
		}()
	}
}

func TestScalarItoaRadix(t *testing.T) {
	got := ScalarItoa(255, 1, false, 16)
	if got != "ff" {
		t.Fatalf("got %q want %q", got, "ff")
	}
}

func TestPowWraparoundUnsigned8(t *testing.T) {
	d := NewDescriptors([]TypeDescriptor{{Kind: KindU8}})
	base := NewIntValue(0, 7)
	exp := NewIntValue(0, 3)
	got := Pow(d, 0, base, exp)
	// 7^3 = 343, mod 256 = 87
	if got.Bits != 87 {
		t.Fatalf("got %d want 87", got.Bits)
	}
}
