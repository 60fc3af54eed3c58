package types

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// Direction selects which reserve is the input side of a swap.
type Direction uint8

const (
	// AToB sells asset A for asset B.
	AToB Direction = iota + 1
	// BToA sells asset B for asset A.
	BToA
)

func (d Direction) String() string {
	switch d {
	case AToB:
		return "a_to_b"
	case BToA:
		return "b_to_a"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Validate rejects anything but AToB and BToA.
func (d Direction) Validate() error {
	if d != AToB && d != BToA {
		return ErrAssetMismatch.Wrapf("unknown swap direction %d", uint8(d))
	}
	return nil
}

// DirectionOf returns the direction selling assetIn.
func (p Pool) DirectionOf(assetIn string) (Direction, error) {
	switch assetIn {
	case p.AssetA:
		return AToB, nil
	case p.AssetB:
		return BToA, nil
	default:
		return 0, ErrAssetMismatch.Wrapf("%s is not traded by pool %s", assetIn, p.PairID())
	}
}

// Assets returns the (in, out) assets for d.
func (p Pool) Assets(d Direction) (assetIn, assetOut string) {
	if d == BToA {
		return p.AssetB, p.AssetA
	}
	return p.AssetA, p.AssetB
}

// Reserves returns the (in, out) reserves for d.
func (p Pool) Reserves(d Direction) (reserveIn, reserveOut uint64) {
	if d == BToA {
		return p.ReserveB, p.ReserveA
	}
	return p.ReserveA, p.ReserveB
}

// SwapQuote is the pricing of a swap before slippage checks.
type SwapQuote struct {
	AmountIn         uint64
	AmountInAfterFee uint64
	Fee              uint64
	AmountOut        uint64
}

// SwapResult is the outcome of a successful swap.
type SwapResult struct {
	Pool      Pool
	Direction Direction
	AmountIn  uint64
	AmountOut uint64
	Fee       uint64
	Transfers []Transfer
}

// QuoteSwap prices amountIn against the pool without changing it.
//
// The fee is taken from the input first:
// afterFee = floor(amountIn * (feeDenominator - feeNumerator) / feeDenominator).
// The output is floor(afterFee * reserveOut / (reserveIn + afterFee)), which
// equals reserveOut - ceil(reserveIn * reserveOut / (reserveIn + afterFee)).
func (p Pool) QuoteSwap(amountIn uint64, d Direction) (SwapQuote, error) {
	if err := RequirePositive("amount in", amountIn); err != nil {
		return SwapQuote{}, err
	}
	if err := d.Validate(); err != nil {
		return SwapQuote{}, err
	}
	if err := ValidateFee(p.FeeNumerator, p.FeeDenominator); err != nil {
		return SwapQuote{}, err
	}

	reserveIn, reserveOut := p.Reserves(d)
	if reserveIn == 0 || reserveOut == 0 {
		return SwapQuote{}, ErrInsufficientLiquidity.Wrapf("pool %s has no liquidity", p.PairID())
	}

	afterFee, err := MulDiv(amountIn, p.FeeDenominator-p.FeeNumerator, p.FeeDenominator)
	if err != nil {
		return SwapQuote{}, err
	}

	denominator := Widen(reserveIn).Add(Widen(afterFee))
	out, err := Narrow(Product(afterFee, reserveOut).Quo(denominator))
	if err != nil {
		return SwapQuote{}, err
	}

	return SwapQuote{
		AmountIn:         amountIn,
		AmountInAfterFee: afterFee,
		Fee:              amountIn - afterFee,
		AmountOut:        out,
	}, nil
}

// Swap computes the state after selling amountIn on side d. The whole input,
// fee included, joins the input reserve, so the constant product can only
// grow.
func (p Pool) Swap(amountIn, minimumAmountOut uint64, d Direction) (SwapResult, error) {
	if err := p.Validate(); err != nil {
		return SwapResult{}, err
	}
	quote, err := p.QuoteSwap(amountIn, d)
	if err != nil {
		return SwapResult{}, err
	}
	if err := RequireMinimum("amount out", quote.AmountOut, minimumAmountOut); err != nil {
		return SwapResult{}, err
	}
	if quote.AmountOut == 0 {
		return SwapResult{}, ErrInvalidAmount.Wrapf("swap of %d yields no output", amountIn)
	}

	reserveIn, reserveOut := p.Reserves(d)
	newIn, err := SafeAdd(reserveIn, amountIn)
	if err != nil {
		return SwapResult{}, errorsmod.Wrap(err, "input reserve")
	}
	newOut, err := SafeSub(reserveOut, quote.AmountOut)
	if err != nil {
		return SwapResult{}, errorsmod.Wrap(err, "output reserve")
	}
	if err := checkConstantProduct(reserveIn, reserveOut, newIn, newOut); err != nil {
		return SwapResult{}, errorsmod.Wrapf(err, "pool %s", p.PairID())
	}

	next := p
	if d == AToB {
		next.ReserveA, next.ReserveB = newIn, newOut
	} else {
		next.ReserveB, next.ReserveA = newIn, newOut
	}

	assetIn, assetOut := p.Assets(d)
	return SwapResult{
		Pool:      next,
		Direction: d,
		AmountIn:  amountIn,
		AmountOut: quote.AmountOut,
		Fee:       quote.Fee,
		Transfers: []Transfer{
			inbound(assetIn, amountIn),
			outbound(assetOut, quote.AmountOut),
		},
	}, nil
}

// SpotPrice returns reserveOut / reserveIn for d.
func (p Pool) SpotPrice(d Direction) (math.LegacyDec, error) {
	if err := d.Validate(); err != nil {
		return math.LegacyZeroDec(), err
	}
	reserveIn, reserveOut := p.Reserves(d)
	if reserveIn == 0 || reserveOut == 0 {
		return math.LegacyZeroDec(), ErrInsufficientLiquidity.Wrapf("pool %s has no liquidity", p.PairID())
	}
	return math.LegacyNewDecFromInt(Widen(reserveOut)).Quo(math.LegacyNewDecFromInt(Widen(reserveIn))), nil
}

func checkConstantProduct(oldIn, oldOut, newIn, newOut uint64) error {
	oldK := Product(oldIn, oldOut)
	newK := Product(newIn, newOut)
	if newK.LT(oldK) {
		return ErrInvariantViolation.Wrapf("old_k=%s new_k=%s", oldK, newK)
	}
	return nil
}
