package types_test

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paw-chain/amm/x/amm/types"
)

const hundredTokens = 100_000_000_000 // 100 tokens with 9 decimals

func TestDepositFirst(t *testing.T) {
	pool := mustPool(t, 3, 1000)

	res, err := pool.Deposit(hundredTokens, hundredTokens, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(hundredTokens), res.ClaimMinted)
	require.Equal(t, uint64(hundredTokens), res.Pool.ReserveA)
	require.Equal(t, uint64(hundredTokens), res.Pool.ReserveB)
	require.Equal(t, uint64(hundredTokens), res.Pool.ClaimSupply)
	require.Equal(t, []types.Transfer{
		{Kind: types.TransferInbound, Asset: assetA, Amount: hundredTokens},
		{Kind: types.TransferInbound, Asset: assetB, Amount: hundredTokens},
		{Kind: types.TransferMint, Asset: pool.ClaimAsset(), Amount: hundredTokens},
	}, res.Transfers)

	// the input snapshot is left untouched
	require.True(t, pool.IsEmpty())
}

func TestDepositFirstUsesGeometricMean(t *testing.T) {
	res, err := mustPool(t, 3, 1000).Deposit(1000, 4000, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(2000), res.ClaimMinted)
}

func TestDepositProportional(t *testing.T) {
	pool := fundedPool(t, hundredTokens, hundredTokens)
	supply := pool.ClaimSupply

	res, err := pool.Deposit(hundredTokens/2, hundredTokens/2, 0)
	require.NoError(t, err)
	require.Equal(t, supply/2, res.ClaimMinted)
	require.Equal(t, uint64(150_000_000_000), res.Pool.ReserveA)
	require.Equal(t, uint64(150_000_000_000), res.Pool.ReserveB)
	require.Equal(t, supply+supply/2, res.Pool.ClaimSupply)
}

func TestDepositImbalancedDonatesExcess(t *testing.T) {
	pool := fundedPool(t, 1_000, 1_000)

	// side b is binding; the extra 900 of asset a is still pulled in
	res, err := pool.Deposit(1_000, 100, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(100), res.ClaimMinted)
	require.Equal(t, uint64(2_000), res.Pool.ReserveA)
	require.Equal(t, uint64(1_100), res.Pool.ReserveB)
	require.Equal(t, uint64(1_100), res.Pool.ClaimSupply)
	require.Equal(t, uint64(1_000), res.Transfers[0].Amount)
	require.Equal(t, uint64(100), res.Transfers[1].Amount)
}

func TestDepositRejections(t *testing.T) {
	funded := fundedPool(t, hundredTokens, hundredTokens)

	tests := []struct {
		name             string
		pool             types.Pool
		amountA, amountB uint64
		minClaimOut      uint64
		want             error
	}{
		{"zero a", funded, 0, 10, 0, types.ErrInvalidAmount},
		{"zero b", funded, 10, 0, 0, types.ErrInvalidAmount},
		{"slippage on first deposit", mustPool(t, 3, 1000), hundredTokens, hundredTokens, 1_000_000_000_000, types.ErrSlippageExceeded},
		{"slippage on later deposit", funded, 1_000, 1_000, 1_001, types.ErrSlippageExceeded},
		{"zero claims below minimum", fundedPool(t, 4_000_000, 1), 1_000, 1, 1, types.ErrSlippageExceeded},
		{"reserve overflow", fundedPool(t, stdmath.MaxUint64-1, stdmath.MaxUint64-1), 2, 2, 0, types.ErrOverflow},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.pool.Deposit(tc.amountA, tc.amountB, tc.minClaimOut)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDepositMintingZeroClaimsIsDonation(t *testing.T) {
	pool := fundedPool(t, 4_000_000, 1)
	require.Equal(t, uint64(2_000), pool.ClaimSupply)

	res, err := pool.Deposit(1_000, 1, 0)
	require.NoError(t, err)
	require.Zero(t, res.ClaimMinted)
	require.Equal(t, uint64(4_001_000), res.Pool.ReserveA)
	require.Equal(t, uint64(2), res.Pool.ReserveB)
	require.Equal(t, pool.ClaimSupply, res.Pool.ClaimSupply)
	require.NoError(t, res.Pool.Validate())
	require.Equal(t, []types.Transfer{
		{Kind: types.TransferInbound, Asset: assetA, Amount: 1_000},
		{Kind: types.TransferInbound, Asset: assetB, Amount: 1},
		{Kind: types.TransferMint, Asset: pool.ClaimAsset(), Amount: 0},
	}, res.Transfers)
}

func TestWithdraw(t *testing.T) {
	pool := fundedPool(t, hundredTokens, 4*hundredTokens)
	supply := pool.ClaimSupply

	res, err := pool.Withdraw(supply/4, 0, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(hundredTokens/4), res.AmountA)
	require.Equal(t, uint64(hundredTokens), res.AmountB)
	require.Equal(t, supply/4, res.ClaimBurned)
	require.Equal(t, pool.ReserveA-res.AmountA, res.Pool.ReserveA)
	require.Equal(t, pool.ReserveB-res.AmountB, res.Pool.ReserveB)
	require.Equal(t, supply-supply/4, res.Pool.ClaimSupply)
	require.Equal(t, []types.Transfer{
		{Kind: types.TransferBurn, Asset: pool.ClaimAsset(), Amount: supply / 4},
		{Kind: types.TransferOutbound, Asset: assetA, Amount: res.AmountA},
		{Kind: types.TransferOutbound, Asset: assetB, Amount: res.AmountB},
	}, res.Transfers)
}

func TestWithdrawAllLeavesNoDust(t *testing.T) {
	pool := fundedPool(t, 1_000_003, 7_000_001)

	// swaps and a second deposit make the reserves uneven multiples of supply
	swapped, err := pool.Swap(12_345, 0, types.AToB)
	require.NoError(t, err)
	deposited, err := swapped.Pool.Deposit(333, 2_111, 0)
	require.NoError(t, err)

	p := deposited.Pool
	part, err := p.Withdraw(p.ClaimSupply/3, 0, 0)
	require.NoError(t, err)

	rest, err := part.Pool.Withdraw(part.Pool.ClaimSupply, 0, 0)
	require.NoError(t, err)
	require.Zero(t, rest.Pool.ReserveA)
	require.Zero(t, rest.Pool.ReserveB)
	require.Zero(t, rest.Pool.ClaimSupply)
	require.True(t, rest.Pool.IsEmpty())
	require.NoError(t, rest.Pool.Validate())
	require.Equal(t, p.ReserveA, part.AmountA+rest.AmountA)
	require.Equal(t, p.ReserveB, part.AmountB+rest.AmountB)
}

func TestWithdrawRejections(t *testing.T) {
	pool := fundedPool(t, hundredTokens, hundredTokens)

	tests := []struct {
		name             string
		pool             types.Pool
		claims           uint64
		minAOut, minBOut uint64
		want             error
	}{
		{"zero claims", pool, 0, 0, 0, types.ErrInvalidAmount},
		{"more than supply", pool, pool.ClaimSupply + 1, 0, 0, types.ErrInvalidAmount},
		{"empty pool", mustPool(t, 3, 1000), 1, 0, 0, types.ErrInvalidAmount},
		{"min a too high", pool, pool.ClaimSupply / 2, hundredTokens, 0, types.ErrSlippageExceeded},
		{"min b too high", pool, pool.ClaimSupply / 2, 0, hundredTokens/2 + 1, types.ErrSlippageExceeded},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.pool.Withdraw(tc.claims, tc.minAOut, tc.minBOut)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestClaimValue(t *testing.T) {
	pool := fundedPool(t, 300, 1_200)

	a, b, err := pool.ClaimValue(pool.ClaimSupply / 3)
	require.NoError(t, err)
	require.Equal(t, uint64(100), a)
	require.Equal(t, uint64(400), b)

	a, b, err = pool.ClaimValue(0)
	require.NoError(t, err)
	require.Zero(t, a)
	require.Zero(t, b)

	_, _, err = pool.ClaimValue(pool.ClaimSupply + 1)
	require.ErrorIs(t, err, types.ErrInvalidAmount)
}
