package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/amm/x/amm/keeper"
	"github.com/paw-chain/amm/x/amm/types"
	ledgerkeeper "github.com/paw-chain/amm/x/ledger/keeper"
	ledgertypes "github.com/paw-chain/amm/x/ledger/types"
)

// AmmKeeper creates a test keeper for the AMM module backed by a real ledger
// keeper on an in-memory multistore.
func AmmKeeper(t testing.TB, opts ...keeper.Option) (keeper.Keeper, ledgerkeeper.Keeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	ledgerKey := storetypes.NewKVStoreKey(ledgertypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(ledgerKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	lk := ledgerkeeper.NewKeeper(ledgerKey)
	k := keeper.NewKeeper(storeKey, lk, opts...)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	// Initialize module genesis
	require.NoError(t, lk.InitGenesis(ctx, *ledgertypes.DefaultGenesis()))
	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))

	return k, lk, ctx
}

// FundAccount mints amount of each asset to addr.
func FundAccount(t testing.TB, lk ledgerkeeper.Keeper, ctx sdk.Context, addr string, amount uint64, assets ...string) {
	for _, asset := range assets {
		require.NoError(t, lk.MintCoins(ctx, addr, asset, math.NewIntFromUint64(amount)))
	}
}

// CreateTestPool initializes the (assetA, assetB) pool with a 0.3% fee and
// seeds it with a first deposit from provider.
func CreateTestPool(t testing.TB, k keeper.Keeper, lk ledgerkeeper.Keeper, ctx sdk.Context, provider, assetA, assetB string, amountA, amountB uint64) types.Pool {
	FundAccount(t, lk, ctx, provider, amountA, assetA)
	FundAccount(t, lk, ctx, provider, amountB, assetB)

	_, err := k.InitializePool(ctx, provider, &types.MsgInitializePool{
		AssetA: assetA, AssetB: assetB, FeeNumerator: 3, FeeDenominator: 1000,
	})
	require.NoError(t, err)

	out, err := k.AddLiquidity(ctx, provider, &types.MsgAddLiquidity{
		AssetA: assetA, AssetB: assetB, AmountA: amountA, AmountB: amountB,
	})
	require.NoError(t, err)
	return out.Pool
}
