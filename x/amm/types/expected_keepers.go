package types

import (
	"context"

	"cosmossdk.io/math"
)

// BankKeeper defines the balance ledger the AMM keeper moves assets through.
type BankKeeper interface {
	SendCoins(ctx context.Context, from, to, asset string, amount math.Int) error
	MintCoins(ctx context.Context, to, asset string, amount math.Int) error
	BurnCoins(ctx context.Context, from, asset string, amount math.Int) error
	GetBalance(ctx context.Context, addr, asset string) math.Int
	GetSupply(ctx context.Context, asset string) math.Int
}
