package types

import (
	"math/big"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// Widen lifts a persisted 64-bit quantity into the 256-bit intermediate
// domain used by every calculation.
func Widen(x uint64) math.Int {
	return math.NewIntFromUint64(x)
}

// Narrow converts an intermediate back to the 64-bit persisted width.
func Narrow(x math.Int) (uint64, error) {
	if x.IsNegative() || !x.IsUint64() {
		return 0, ErrOverflow.Wrapf("%s does not fit in 64 bits", x)
	}
	return x.Uint64(), nil
}

// Product returns a*b without loss of precision.
func Product(a, b uint64) math.Int {
	return Widen(a).Mul(Widen(b))
}

// MulDiv returns floor(a*b/c). The product is computed in the widened domain
// so it can never overflow; only a quotient wider than 64 bits fails.
func MulDiv(a, b, c uint64) (uint64, error) {
	if c == 0 {
		return 0, ErrDivisionByZero.Wrapf("%d * %d / 0", a, b)
	}
	return Narrow(Product(a, b).Quo(Widen(c)))
}

// MulDivUp returns ceil(a*b/c).
func MulDivUp(a, b, c uint64) (uint64, error) {
	if c == 0 {
		return 0, ErrDivisionByZero.Wrapf("%d * %d / 0", a, b)
	}
	num := Product(a, b)
	den := Widen(c)
	q := num.Quo(den)
	if !num.Mod(den).IsZero() {
		q = q.AddRaw(1)
	}
	return Narrow(q)
}

// ISqrt returns floor(sqrt(x)) for a non-negative x.
func ISqrt(x math.Int) math.Int {
	if x.IsNegative() {
		panic("square root of negative value")
	}
	return math.NewIntFromBigInt(new(big.Int).Sqrt(x.BigInt()))
}

// SqrtProduct returns floor(sqrt(a*b)). The result always fits in 64 bits.
func SqrtProduct(a, b uint64) uint64 {
	return ISqrt(Product(a, b)).Uint64()
}

// SafeAdd returns a+b or ErrOverflow.
func SafeAdd(a, b uint64) (uint64, error) {
	sum := a + b
	if sum < a {
		return 0, ErrOverflow.Wrapf("%d + %d", a, b)
	}
	return sum, nil
}

// SafeSub returns a-b or ErrOverflow when b > a.
func SafeSub(a, b uint64) (uint64, error) {
	if b > a {
		return 0, errorsmod.Wrapf(ErrOverflow, "underflow: %d - %d", a, b)
	}
	return a - b, nil
}
