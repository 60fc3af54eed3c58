package types

import (
	errorsmod "cosmossdk.io/errors"
)

// DepositResult is the outcome of a successful deposit.
type DepositResult struct {
	Pool        Pool
	ClaimMinted uint64
	Transfers   []Transfer
}

// WithdrawResult is the outcome of a successful withdrawal.
type WithdrawResult struct {
	Pool        Pool
	AmountA     uint64
	AmountB     uint64
	ClaimBurned uint64
	Transfers   []Transfer
}

// Deposit computes the state after adding amountA and amountB to the pool.
//
// The first deposit mints floor(sqrt(amountA * amountB)) claim tokens and sets
// the initial price. Later deposits mint
// min(amountA * supply / reserveA, amountB * supply / reserveB), rounded down.
// Both amounts are always pulled in full: whatever exceeds the proportional
// requirement of the binding side accrues to existing claim holders. A deposit
// too small to mint a single claim token is a pure donation; callers guard
// against it with minClaimOut.
func (p Pool) Deposit(amountA, amountB, minClaimOut uint64) (DepositResult, error) {
	if err := RequirePositive("amount a", amountA); err != nil {
		return DepositResult{}, err
	}
	if err := RequirePositive("amount b", amountB); err != nil {
		return DepositResult{}, err
	}
	if err := p.Validate(); err != nil {
		return DepositResult{}, err
	}

	minted, err := p.claimsFor(amountA, amountB)
	if err != nil {
		return DepositResult{}, err
	}
	if err := RequireMinimum("claim tokens minted", minted, minClaimOut); err != nil {
		return DepositResult{}, err
	}

	next := p
	if next.ReserveA, err = SafeAdd(p.ReserveA, amountA); err != nil {
		return DepositResult{}, errorsmod.Wrap(err, "reserve a")
	}
	if next.ReserveB, err = SafeAdd(p.ReserveB, amountB); err != nil {
		return DepositResult{}, errorsmod.Wrap(err, "reserve b")
	}
	if next.ClaimSupply, err = SafeAdd(p.ClaimSupply, minted); err != nil {
		return DepositResult{}, errorsmod.Wrap(err, "claim supply")
	}

	return DepositResult{
		Pool:        next,
		ClaimMinted: minted,
		Transfers: []Transfer{
			inbound(p.AssetA, amountA),
			inbound(p.AssetB, amountB),
			{Kind: TransferMint, Asset: p.ClaimAsset(), Amount: minted},
		},
	}, nil
}

func (p Pool) claimsFor(amountA, amountB uint64) (uint64, error) {
	if p.ClaimSupply == 0 {
		return SqrtProduct(amountA, amountB), nil
	}

	fromA, err := MulDiv(amountA, p.ClaimSupply, p.ReserveA)
	if err != nil {
		return 0, errorsmod.Wrap(err, "claims from asset a")
	}
	fromB, err := MulDiv(amountB, p.ClaimSupply, p.ReserveB)
	if err != nil {
		return 0, errorsmod.Wrap(err, "claims from asset b")
	}
	return min(fromA, fromB), nil
}

// Withdraw computes the state after burning claimAmount claim tokens. Each
// side pays out reserve * claimAmount / supply, rounded down. Burning the
// entire supply empties both reserves exactly.
func (p Pool) Withdraw(claimAmount, minAOut, minBOut uint64) (WithdrawResult, error) {
	if err := RequirePositive("claim amount", claimAmount); err != nil {
		return WithdrawResult{}, err
	}
	if claimAmount > p.ClaimSupply {
		return WithdrawResult{}, ErrInvalidAmount.Wrapf(
			"claim amount %d exceeds outstanding supply %d", claimAmount, p.ClaimSupply,
		)
	}
	if err := p.Validate(); err != nil {
		return WithdrawResult{}, err
	}

	amountA, amountB, err := p.ClaimValue(claimAmount)
	if err != nil {
		return WithdrawResult{}, err
	}
	if err := RequireMinimum("amount a out", amountA, minAOut); err != nil {
		return WithdrawResult{}, err
	}
	if err := RequireMinimum("amount b out", amountB, minBOut); err != nil {
		return WithdrawResult{}, err
	}

	next := p
	next.ReserveA -= amountA
	next.ReserveB -= amountB
	next.ClaimSupply -= claimAmount
	if next.ClaimSupply == 0 && (next.ReserveA != 0 || next.ReserveB != 0) {
		return WithdrawResult{}, ErrInvariantViolation.Wrapf(
			"full withdrawal left dust (%d, %d) in pool %s", next.ReserveA, next.ReserveB, p.PairID(),
		)
	}

	return WithdrawResult{
		Pool:        next,
		AmountA:     amountA,
		AmountB:     amountB,
		ClaimBurned: claimAmount,
		Transfers: []Transfer{
			{Kind: TransferBurn, Asset: p.ClaimAsset(), Amount: claimAmount},
			outbound(p.AssetA, amountA),
			outbound(p.AssetB, amountB),
		},
	}, nil
}

// ClaimValue returns the reserves claimAmount claim tokens redeem for.
func (p Pool) ClaimValue(claimAmount uint64) (amountA, amountB uint64, err error) {
	if claimAmount > p.ClaimSupply {
		return 0, 0, ErrInvalidAmount.Wrapf("claim amount %d exceeds outstanding supply %d", claimAmount, p.ClaimSupply)
	}
	if claimAmount == 0 {
		return 0, 0, nil
	}
	if amountA, err = MulDiv(p.ReserveA, claimAmount, p.ClaimSupply); err != nil {
		return 0, 0, err
	}
	if amountB, err = MulDiv(p.ReserveB, claimAmount, p.ClaimSupply); err != nil {
		return 0, 0, err
	}
	return amountA, amountB, nil
}
