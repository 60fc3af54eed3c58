package types_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paw-chain/amm/x/amm/types"
)

func TestGenesisValidate(t *testing.T) {
	require.NoError(t, types.DefaultGenesis().Validate())

	funded := fundedPool(t, 1_000, 2_000)
	reversed, err := types.NewPool(assetB, assetA, 1, 100)
	require.NoError(t, err)

	gs := types.GenesisState{Pools: []types.Pool{funded, reversed}}
	require.NoError(t, gs.Validate())

	dup := types.GenesisState{Pools: []types.Pool{funded, funded}}
	require.ErrorIs(t, dup.Validate(), types.ErrPoolAlreadyExists)

	broken := funded
	broken.ClaimSupply = 0
	bad := types.GenesisState{Pools: []types.Pool{broken}}
	require.ErrorIs(t, bad.Validate(), types.ErrInvalidPoolState)
}

func TestParseGenesis(t *testing.T) {
	gs := types.GenesisState{Pools: []types.Pool{fundedPool(t, 5_000, 5_000)}}
	bz, err := json.Marshal(gs)
	require.NoError(t, err)

	parsed, err := types.ParseGenesis(bz)
	require.NoError(t, err)
	require.Equal(t, gs, *parsed)

	_, err = types.ParseGenesis([]byte(`{"pools": [{"asset_a": "uatom", "asset_b": "uatom", "fee_denominator": 10}]}`))
	require.ErrorIs(t, err, types.ErrIdenticalAssets)

	_, err = types.ParseGenesis([]byte(`not json`))
	require.Error(t, err)
}

func TestIsInternal(t *testing.T) {
	require.True(t, types.IsInternal(types.ErrInvariantViolation.Wrap("k dropped")))
	require.True(t, types.IsInternal(types.ErrInvalidPoolState))
	require.False(t, types.IsInternal(types.ErrSlippageExceeded))
	require.False(t, types.IsInternal(nil))
}
