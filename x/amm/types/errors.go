package types

import (
	"errors"

	errorsmod "cosmossdk.io/errors"
)

// AMM module sentinel errors
var (
	ErrIdenticalAssets       = errorsmod.Register(ModuleName, 2, "pool assets must be distinct")
	ErrInvalidFee            = errorsmod.Register(ModuleName, 3, "invalid fee configuration")
	ErrInvalidAmount         = errorsmod.Register(ModuleName, 4, "invalid amount")
	ErrSlippageExceeded      = errorsmod.Register(ModuleName, 5, "slippage tolerance exceeded")
	ErrAssetMismatch         = errorsmod.Register(ModuleName, 6, "asset does not match pool")
	ErrInvariantViolation    = errorsmod.Register(ModuleName, 7, "constant product invariant violated")
	ErrPoolNotFound          = errorsmod.Register(ModuleName, 8, "pool not found")
	ErrPoolAlreadyExists     = errorsmod.Register(ModuleName, 9, "pool already exists")
	ErrInvalidAsset          = errorsmod.Register(ModuleName, 10, "invalid asset identifier")
	ErrOverflow              = errorsmod.Register(ModuleName, 11, "arithmetic overflow")
	ErrDivisionByZero        = errorsmod.Register(ModuleName, 12, "division by zero")
	ErrInsufficientLiquidity = errorsmod.Register(ModuleName, 13, "insufficient liquidity in pool")
	ErrInvalidPoolState      = errorsmod.Register(ModuleName, 14, "invalid pool state")
	ErrUnknownOperation      = errorsmod.Register(ModuleName, 15, "unknown operation")
)

// ErrIdenticalMints is the name the same condition carries in token-mint
// based hosts.
var ErrIdenticalMints = ErrIdenticalAssets

// IsInternal reports whether err signals an arithmetic or logic defect rather
// than bad caller input. Internal errors must never be reachable with valid
// arithmetic.
func IsInternal(err error) bool {
	return errors.Is(err, ErrInvariantViolation) || errors.Is(err, ErrInvalidPoolState)
}
