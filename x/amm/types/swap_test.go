package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/amm/x/amm/types"
)

const oneToken = 1_000_000_000

func TestSwapReference(t *testing.T) {
	pool := fundedPool(t, hundredTokens, hundredTokens)

	quote, err := pool.QuoteSwap(oneToken, types.AToB)
	require.NoError(t, err)
	require.Equal(t, uint64(997_000_000), quote.AmountInAfterFee)
	require.Equal(t, uint64(3_000_000), quote.Fee)
	require.Equal(t, uint64(987_158_034), quote.AmountOut)
	require.Less(t, quote.AmountOut, quote.AmountInAfterFee)

	res, err := pool.Swap(oneToken, 0, types.AToB)
	require.NoError(t, err)
	require.Equal(t, quote.AmountOut, res.AmountOut)
	require.Equal(t, quote.Fee, res.Fee)
	require.Equal(t, uint64(hundredTokens+oneToken), res.Pool.ReserveA)
	require.Equal(t, uint64(hundredTokens-987_158_034), res.Pool.ReserveB)
	require.Equal(t, pool.ClaimSupply, res.Pool.ClaimSupply)
	require.True(t, res.Pool.ConstantProduct().GT(pool.ConstantProduct()))
	require.Equal(t, []types.Transfer{
		{Kind: types.TransferInbound, Asset: assetA, Amount: oneToken},
		{Kind: types.TransferOutbound, Asset: assetB, Amount: 987_158_034},
	}, res.Transfers)
}

func TestSwapBToA(t *testing.T) {
	pool := fundedPool(t, hundredTokens, 2*hundredTokens)

	res, err := pool.Swap(oneToken, 1, types.BToA)
	require.NoError(t, err)
	require.Equal(t, uint64(2*hundredTokens+oneToken), res.Pool.ReserveB)
	require.Equal(t, pool.ReserveA-res.AmountOut, res.Pool.ReserveA)
	require.Equal(t, types.BToA, res.Direction)
	require.Equal(t, assetB, res.Transfers[0].Asset)
	require.Equal(t, assetA, res.Transfers[1].Asset)

	// selling b into a pool where b is worth half as much
	require.Less(t, res.AmountOut, uint64(oneToken/2))
}

func TestSwapZeroFee(t *testing.T) {
	res, err := mustPool(t, 0, 1).Deposit(1_000, 1_000, 0)
	require.NoError(t, err)

	swapped, err := res.Pool.Swap(1_000, 0, types.AToB)
	require.NoError(t, err)
	require.Zero(t, swapped.Fee)
	require.Equal(t, uint64(500), swapped.AmountOut)
}

func TestSwapRejections(t *testing.T) {
	pool := fundedPool(t, hundredTokens, hundredTokens)

	tests := []struct {
		name      string
		pool      types.Pool
		amountIn  uint64
		minOut    uint64
		direction types.Direction
		want      error
	}{
		{"zero amount", pool, 0, 0, types.AToB, types.ErrInvalidAmount},
		{"slippage", pool, oneToken, oneToken, types.AToB, types.ErrSlippageExceeded},
		{"unknown direction", pool, oneToken, 0, types.Direction(9), types.ErrAssetMismatch},
		{"empty pool", mustPool(t, 3, 1000), oneToken, 0, types.AToB, types.ErrInsufficientLiquidity},
		{"output rounds to zero", fundedPool(t, 1_000_000_000_000, 1), 1, 0, types.AToB, types.ErrInvalidAmount},
		{"zero output below minimum", fundedPool(t, 1_000_000_000_000, 1), 1, 1, types.AToB, types.ErrSlippageExceeded},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.pool.Swap(tc.amountIn, tc.minOut, tc.direction)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSwapNeverDrainsOutputReserve(t *testing.T) {
	pool := fundedPool(t, 1_000, 1_000)

	res, err := pool.Swap(1_000_000_000_000, 0, types.AToB)
	require.NoError(t, err)
	require.Equal(t, uint64(999), res.AmountOut)
	require.Equal(t, uint64(1), res.Pool.ReserveB)
}

func TestDirectionOf(t *testing.T) {
	pool := mustPool(t, 3, 1000)

	d, err := pool.DirectionOf(assetA)
	require.NoError(t, err)
	require.Equal(t, types.AToB, d)

	d, err = pool.DirectionOf(assetB)
	require.NoError(t, err)
	require.Equal(t, types.BToA, d)

	_, err = pool.DirectionOf("uosmo")
	require.ErrorIs(t, err, types.ErrAssetMismatch)
}

func TestSpotPrice(t *testing.T) {
	pool := fundedPool(t, 1_000, 4_000)

	price, err := pool.SpotPrice(types.AToB)
	require.NoError(t, err)
	require.True(t, price.Equal(math.LegacyNewDec(4)))

	price, err = pool.SpotPrice(types.BToA)
	require.NoError(t, err)
	require.True(t, price.Equal(math.LegacyNewDecWithPrec(25, 2)))

	_, err = mustPool(t, 3, 1000).SpotPrice(types.AToB)
	require.ErrorIs(t, err, types.ErrInsufficientLiquidity)
}
