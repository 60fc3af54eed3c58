package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ValidateAsset checks that id is usable as an asset identifier.
func ValidateAsset(id string) error {
	if err := sdk.ValidateDenom(id); err != nil {
		return errorsmod.Wrapf(ErrInvalidAsset, "%q: %v", id, err)
	}
	return nil
}

// ValidatePair checks both asset identifiers and rejects a pair naming the
// same asset twice. The pair's reserve account must fit the ledger's account
// name limit; the claim asset is always shorter.
func ValidatePair(assetA, assetB string) error {
	if err := ValidateAsset(assetA); err != nil {
		return err
	}
	if err := ValidateAsset(assetB); err != nil {
		return err
	}
	if assetA == assetB {
		return ErrIdenticalAssets.Wrapf("%s", assetA)
	}
	if n := len(ReserveAccount(assetA, assetB)); n > MaxAccountLength {
		return ErrInvalidAsset.Wrapf("reserve account for %s is %d bytes, limit %d", PairID(assetA, assetB), n, MaxAccountLength)
	}
	return nil
}

// ValidateFee checks that numerator/denominator is a proper fraction.
func ValidateFee(numerator, denominator uint64) error {
	if denominator == 0 {
		return ErrInvalidFee.Wrap("fee denominator must be positive")
	}
	if numerator >= denominator {
		return ErrInvalidFee.Wrapf("fee %d/%d must be below 100%%", numerator, denominator)
	}
	return nil
}

// RequirePositive fails ErrInvalidAmount when amount is zero.
func RequirePositive(name string, amount uint64) error {
	if amount == 0 {
		return ErrInvalidAmount.Wrapf("%s must be positive", name)
	}
	return nil
}

// RequireMinimum fails ErrSlippageExceeded when got is below the caller's
// declared minimum.
func RequireMinimum(name string, got, minimum uint64) error {
	if got < minimum {
		return ErrSlippageExceeded.Wrapf("%s: expected at least %d, got %d", name, minimum, got)
	}
	return nil
}

// RequirePair fails ErrAssetMismatch unless (assetA, assetB) is exactly the
// pool's configured ordered pair.
func (p Pool) RequirePair(assetA, assetB string) error {
	if assetA != p.AssetA || assetB != p.AssetB {
		return ErrAssetMismatch.Wrapf("pool %s, got %s", p.PairID(), PairID(assetA, assetB))
	}
	return nil
}
