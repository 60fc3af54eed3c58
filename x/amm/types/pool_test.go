package types_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paw-chain/amm/x/amm/types"
)

const (
	assetA = "uatom"
	assetB = "uusdc"
)

func mustPool(t *testing.T, feeNum, feeDen uint64) types.Pool {
	t.Helper()
	pool, err := types.NewPool(assetA, assetB, feeNum, feeDen)
	require.NoError(t, err)
	return pool
}

// fundedPool returns a 0.3% pool seeded with a first deposit.
func fundedPool(t *testing.T, amountA, amountB uint64) types.Pool {
	t.Helper()
	res, err := mustPool(t, 3, 1000).Deposit(amountA, amountB, 0)
	require.NoError(t, err)
	return res.Pool
}

// longAsset returns a valid asset identifier n bytes long.
func longAsset(prefix byte, n int) string {
	return string(prefix) + strings.Repeat("x", n-1)
}

func TestNewPool(t *testing.T) {
	tests := []struct {
		name           string
		assetA, assetB string
		num, den       uint64
		wantErr        error
	}{
		{name: "0.3% fee", assetA: assetA, assetB: assetB, num: 3, den: 1000},
		{name: "zero fee", assetA: assetA, assetB: assetB, num: 0, den: 1},
		{name: "fee just below 100%", assetA: assetA, assetB: assetB, num: 999, den: 1000},
		{name: "fee of 100%", assetA: assetA, assetB: assetB, num: 1000, den: 1000, wantErr: types.ErrInvalidFee},
		{name: "fee above 100%", assetA: assetA, assetB: assetB, num: 1001, den: 1000, wantErr: types.ErrInvalidFee},
		{name: "zero denominator", assetA: assetA, assetB: assetB, num: 0, den: 0, wantErr: types.ErrInvalidFee},
		{name: "identical assets", assetA: assetA, assetB: assetA, num: 3, den: 1000, wantErr: types.ErrIdenticalAssets},
		{name: "identical assets with invalid fee", assetA: assetA, assetB: assetA, num: 5, den: 0, wantErr: types.ErrIdenticalAssets},
		{name: "malformed asset", assetA: "1x", assetB: assetB, num: 3, den: 1000, wantErr: types.ErrInvalidAsset},
		{name: "empty asset", assetA: assetA, assetB: "", num: 3, den: 1000, wantErr: types.ErrInvalidAsset},
		{name: "reserve account at limit", assetA: longAsset('a', 121), assetB: longAsset('b', 121), num: 3, den: 1000},
		{name: "reserve account over limit", assetA: longAsset('a', 121), assetB: longAsset('b', 122), num: 3, den: 1000, wantErr: types.ErrInvalidAsset},
		{name: "longest assets", assetA: longAsset('a', 127), assetB: longAsset('b', 127), num: 3, den: 1000, wantErr: types.ErrInvalidAsset},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pool, err := types.NewPool(tc.assetA, tc.assetB, tc.num, tc.den)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.assetA, pool.AssetA)
			require.Equal(t, tc.assetB, pool.AssetB)
			require.Equal(t, tc.num, pool.FeeNumerator)
			require.Equal(t, tc.den, pool.FeeDenominator)
			require.Zero(t, pool.ReserveA)
			require.Zero(t, pool.ReserveB)
			require.Zero(t, pool.ClaimSupply)
			require.True(t, pool.IsEmpty())
			require.NoError(t, pool.Validate())
			require.LessOrEqual(t, len(pool.ReserveAccount()), types.MaxAccountLength)
		})
	}
}

func TestIdenticalMintsAlias(t *testing.T) {
	_, err := types.NewPool(assetA, assetA, 3, 1000)
	require.ErrorIs(t, err, types.ErrIdenticalMints)
}

func TestPoolValidate(t *testing.T) {
	valid := fundedPool(t, 1_000, 4_000)
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(p *types.Pool)
		want   error
	}{
		{"supply without reserves", func(p *types.Pool) { p.ReserveA, p.ReserveB = 0, 0 }, types.ErrInvalidPoolState},
		{"reserves without supply", func(p *types.Pool) { p.ClaimSupply = 0 }, types.ErrInvalidPoolState},
		{"one-sided reserves", func(p *types.Pool) { p.ReserveB = 0 }, types.ErrInvalidPoolState},
		{"broken fee", func(p *types.Pool) { p.FeeNumerator = p.FeeDenominator }, types.ErrInvalidFee},
		{"same assets", func(p *types.Pool) { p.AssetB = p.AssetA }, types.ErrIdenticalAssets},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := valid
			tc.mutate(&p)
			err := p.Validate()
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestPoolMarshal(t *testing.T) {
	pool := fundedPool(t, 123_456_789, 987_654_321)

	var decoded types.Pool
	require.NoError(t, decoded.Unmarshal(pool.Marshal()))
	require.Equal(t, pool, decoded)

	bz := pool.Marshal()
	require.ErrorIs(t, decoded.Unmarshal(bz[:len(bz)-1]), types.ErrInvalidPoolState)
	require.ErrorIs(t, decoded.Unmarshal([]byte{0x40, 'u'}), types.ErrInvalidPoolState)
	require.ErrorIs(t, decoded.Unmarshal(nil), types.ErrInvalidPoolState)
}

func TestPoolKeyIsOrdered(t *testing.T) {
	ab := types.PoolKey(assetA, assetB)
	ba := types.PoolKey(assetB, assetA)
	require.False(t, bytes.Equal(ab, ba))
	require.True(t, bytes.HasPrefix(ab, types.PoolKeyPrefix))

	// length prefixes keep concatenations apart
	require.False(t, bytes.Equal(types.PoolKey("ibc/abc", "uusdc"), types.PoolKey("ibc", "abc/uusdc")))
	require.NotEqual(t, types.ClaimAsset("ibc/abc", "uusdc"), types.ClaimAsset("ibc", "abc/uusdc"))
	require.NotEqual(t, types.ReserveAccount(assetA, assetB), types.ReserveAccount(assetB, assetA))
}
