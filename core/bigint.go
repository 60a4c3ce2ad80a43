package core

import (
	"math/big"

	"github.com/holiman/uint256"
)

// This file implements the big-int and numeric helpers of spec.md §4.I:
// integer pow by repeated squaring, itoa/atoi for the 128/256-bit widths,
// and 256-bit division. math.c's fixed-width C types have no direct Go
// analogue, so scalars up to 64 bits are carried as uint64/int64 and
// wider ones through math/big.Int and github.com/holiman/uint256.Int
// (see DESIGN.md "Big-int & numeric helpers").

// Pow computes base**exp for ty's declared width via repeated squaring
// on the binary expansion of exp (ir_builtin_pow_* in math.c), wrapping
// at the width the same way the original's fixed-width multiplication
// wraps.
func Pow(d *Descriptors, ty TypeRef, base, exp *Value) *Value {
	desc := d.Get(ty)
	width, _ := scalarWidth(desc.Kind)
	bits := width * 8
	if width <= 8 {
		return NewIntValue(ty, powMasked(base.Bits, exp.Bits, bits))
	}
	if desc.Kind == KindU256 {
		return NewBigValue(ty, powU256(base.Big, exp.Big))
	}
	return NewBigValue(ty, powBig(base.Big, exp.Big, bits, IsSignedKind(desc.Kind)))
}

func powMasked(base, exp uint64, bits int) uint64 {
	mask := ^uint64(0)
	if bits < 64 {
		mask = uint64(1)<<uint(bits) - 1
	}
	result := uint64(1)
	for {
		if exp&1 != 0 {
			result = (result * base) & mask
		}
		exp >>= 1
		if exp == 0 {
			break
		}
		base = (base * base) & mask
	}
	return result
}

// powU256 uses uint256.Int's fixed-width multiplication, which already
// wraps mod 2**256 the way the original's uint256_t does.
func powU256(base, exp *big.Int) *big.Int {
	b := new(uint256.Int).SetBytes(bigAbsBytes(base))
	e := new(uint256.Int).SetBytes(bigAbsBytes(exp))
	result := uint256.NewInt(1)
	zero := uint256.NewInt(0)
	bit := new(uint256.Int)
	for {
		bit.And(e, uint256.NewInt(1))
		if !bit.IsZero() {
			result.Mul(result, b)
		}
		e.Rsh(e, 1)
		if e.Eq(zero) {
			break
		}
		b.Mul(b, b)
	}
	return result.ToBig()
}

func bigAbsBytes(v *big.Int) []byte {
	if v == nil {
		return nil
	}
	return new(big.Int).Abs(v).Bytes()
}

// powBig handles I128/U128/I256 via math/big, reducing mod 2**bits after
// every multiply and, for signed widths, re-centering into the signed
// range at the end.
func powBig(base, exp *big.Int, bits int, signed bool) *big.Int {
	if base == nil {
		base = big.NewInt(0)
	}
	if exp == nil {
		exp = big.NewInt(0)
	}
	mod := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	result := big.NewInt(1)
	b := new(big.Int).Mod(base, mod)
	e := new(big.Int).Set(exp)
	one := big.NewInt(1)
	zero := big.NewInt(0)
	for e.Cmp(zero) != 0 {
		if new(big.Int).And(e, one).Cmp(one) == 0 {
			result.Mul(result, b)
			result.Mod(result, mod)
		}
		e.Rsh(e, 1)
		if e.Cmp(zero) == 0 {
			break
		}
		b.Mul(b, b)
		b.Mod(b, mod)
	}
	if signed {
		result = wrapSigned(result, bits)
	}
	return result
}

func wrapSigned(v *big.Int, bits int) *big.Int {
	mod := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	r := new(big.Int).Mod(v, mod)
	half := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
	if r.Cmp(half) >= 0 {
		r.Sub(r, mod)
	}
	return r
}

// Itoa implements itoa for radix [2, 36] (builtin_*_toa in math.c),
// aborting "ITOA Error: invalid radix" outside that range. math/big.Int's
// own Text already handles sign correctly for arbitrary precision, so
// the original's INT_MIN-overflow-avoiding split (num/2 + (num - num/2))
// is not needed here — it exists only to work around the fixed-width C
// negation hazard, which big.Int does not have.
func Itoa(v *big.Int, radix int) string {
	if radix < 2 || radix > 36 {
		Abort(CallerContext(), "ITOA Error: invalid radix")
	}
	return v.Text(radix)
}

// ScalarItoa is Itoa for scalars carried as raw bits (width <= 8 bytes).
func ScalarItoa(bits uint64, width int, signed bool, radix int) string {
	if signed {
		return Itoa(big.NewInt(int64(truncSigned(bits, width*8))), radix)
	}
	return Itoa(new(big.Int).SetUint64(truncUnsigned(bits, width*8)), radix)
}

func truncUnsigned(v uint64, bits int) uint64 {
	if bits >= 64 {
		return v
	}
	return v & (uint64(1)<<uint(bits) - 1)
}

func truncSigned(v uint64, bits int) int64 {
	u := truncUnsigned(v, bits)
	if bits < 64 && u&(uint64(1)<<uint(bits-1)) != 0 {
		u -= uint64(1) << uint(bits)
	}
	return int64(u)
}

// Atoi128 and Atoi256 implement atoi for the 128/256-bit widths, radix
// 10, per ir_builtin_str_to_i128/u128 (math.c) and the 256-bit
// extensions of the same scheme: optional leading sign, digits only
// (comma permitted and skipped), abort on overflow or an invalid byte.
func Atoi128(s string, signed bool) *big.Int {
	return atoiWidth(s, signed, 128)
}

func Atoi256(s string, signed bool) *big.Int {
	return atoiWidth(s, signed, 256)
}

func atoiWidth(s string, signed bool, bits int) *big.Int {
	if len(s) == 0 {
		Abort(CallerContext(), "str to int failed: empty string")
	}
	neg := false
	i := 0
	if signed {
		switch s[0] {
		case '-':
			neg = true
			i++
		case '+':
			i++
		}
	}
	result := new(big.Int)
	ten := big.NewInt(10)
	maxVal := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	digits := 0
	for ; i < len(s); i++ {
		c := s[i]
		if c == ',' {
			continue
		}
		if c < '0' || c > '9' {
			Abortf(CallerContext(), "str to int failed: invalid char: %c", c)
		}
		result.Mul(result, ten)
		result.Add(result, big.NewInt(int64(c-'0')))
		digits++
		if result.Cmp(maxVal) >= 0 {
			Abort(CallerContext(), "str to int failed: overflow")
		}
	}
	if digits < 1 {
		Abort(CallerContext(), "str to int failed: no digits")
	}
	if neg {
		result.Neg(result)
	}
	return result
}

// Div256WithRem implements div256_u256_rem: 256-bit unsigned division
// with remainder. uint256.Int's DivMod already performs the fixed-width
// division the original hand-rolls via div256_128's shift-and-subtract
// over a 128-bit intermediate (stdlib.c); this wires that same operation
// through github.com/holiman/uint256 rather than re-deriving it bitwise.
func Div256WithRem(dividend, divisor *big.Int) (quotient, remainder *big.Int) {
	if divisor.Sign() == 0 {
		Abort(CallerContext(), "div256: division by zero")
	}
	a := new(uint256.Int).SetBytes(dividend.Bytes())
	b := new(uint256.Int).SetBytes(divisor.Bytes())
	q, r := new(uint256.Int), new(uint256.Int)
	q.DivMod(a, b, r)
	return q.ToBig(), r.ToBig()
}

// Div256 implements div256_u256: the quotient alone.
func Div256(dividend, divisor *big.Int) *big.Int {
	q, _ := Div256WithRem(dividend, divisor)
	return q
}
