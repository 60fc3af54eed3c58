package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"

	"github.com/paw-chain/amm/x/amm/types"
)

// SimulateSwap quotes a swap without executing it
func (k Keeper) SimulateSwap(ctx context.Context, assetA, assetB string, amountIn uint64, d types.Direction) (types.SwapQuote, error) {
	pool, err := k.GetPool(ctx, assetA, assetB)
	if err != nil {
		return types.SwapQuote{}, err
	}
	quote, err := pool.QuoteSwap(amountIn, d)
	if err != nil {
		return types.SwapQuote{}, fmt.Errorf("SimulateSwap: quote for pool %s: %w", pool.PairID(), err)
	}
	return quote, nil
}

// SpotPrice returns the marginal price of the output side of d in units of
// the input side.
func (k Keeper) SpotPrice(ctx context.Context, assetA, assetB string, d types.Direction) (math.LegacyDec, error) {
	pool, err := k.GetPool(ctx, assetA, assetB)
	if err != nil {
		return math.LegacyZeroDec(), err
	}
	return pool.SpotPrice(d)
}

// ClaimValue returns what withdrawing claimAmount claim tokens would pay out.
func (k Keeper) ClaimValue(ctx context.Context, assetA, assetB string, claimAmount uint64) (amountA, amountB uint64, err error) {
	pool, err := k.GetPool(ctx, assetA, assetB)
	if err != nil {
		return 0, 0, err
	}
	return pool.ClaimValue(claimAmount)
}
