package types

import (
	errorsmod "cosmossdk.io/errors"
)

// Ledger module sentinel errors
var (
	ErrInsufficientFunds = errorsmod.Register(ModuleName, 2, "insufficient funds")
	ErrInvalidAddress    = errorsmod.Register(ModuleName, 3, "invalid address")
	ErrInvalidAsset      = errorsmod.Register(ModuleName, 4, "invalid asset")
	ErrInvalidAmount     = errorsmod.Register(ModuleName, 5, "invalid amount")
	ErrMalformedKey      = errorsmod.Register(ModuleName, 6, "malformed store key")
)

// maxAddressLength is the longest address a balance key can carry.
const maxAddressLength = 255

// ValidateAddress rejects empty and over-long addresses.
func ValidateAddress(addr string) error {
	if addr == "" {
		return ErrInvalidAddress.Wrap("empty address")
	}
	if len(addr) > maxAddressLength {
		return ErrInvalidAddress.Wrapf("address longer than %d bytes", maxAddressLength)
	}
	return nil
}

// ValidateAsset rejects an empty asset identifier.
func ValidateAsset(asset string) error {
	if asset == "" {
		return ErrInvalidAsset.Wrap("empty asset")
	}
	return nil
}
