package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/store/prefix"
	storetypes "cosmossdk.io/store/types"

	"github.com/paw-chain/amm/x/amm/types"
)

// GetPool returns the pool for the ordered pair (assetA, assetB). When only
// the reversed pair has a pool the lookup fails with ErrAssetMismatch.
func (k Keeper) GetPool(ctx context.Context, assetA, assetB string) (types.Pool, error) {
	pool, err := k.lookupPool(ctx, assetA, assetB)
	if err != nil {
		return types.Pool{}, err
	}
	if pool != nil {
		return *pool, nil
	}
	if k.HasPool(ctx, assetB, assetA) {
		return types.Pool{}, types.ErrAssetMismatch.Wrapf(
			"no pool %s; assets are ordered as %s", types.PairID(assetA, assetB), types.PairID(assetB, assetA),
		)
	}
	return types.Pool{}, types.ErrPoolNotFound.Wrapf("pool %s", types.PairID(assetA, assetB))
}

// lookupPool returns nil without error when no pool is stored for the pair.
func (k Keeper) lookupPool(ctx context.Context, assetA, assetB string) (*types.Pool, error) {
	bz := k.getStore(ctx).Get(types.PoolKey(assetA, assetB))
	if bz == nil {
		return nil, nil
	}
	var pool types.Pool
	if err := pool.Unmarshal(bz); err != nil {
		return nil, errorsmod.Wrapf(err, "pool %s", types.PairID(assetA, assetB))
	}
	if pool.AssetA != assetA || pool.AssetB != assetB {
		return nil, types.ErrInvalidPoolState.Wrapf("record under %s holds %s", types.PairID(assetA, assetB), pool.PairID())
	}
	return &pool, nil
}

// HasPool reports whether a pool exists for the ordered pair.
func (k Keeper) HasPool(ctx context.Context, assetA, assetB string) bool {
	return k.getStore(ctx).Has(types.PoolKey(assetA, assetB))
}

// SetPool validates and stores pool under its ordered pair.
func (k Keeper) SetPool(ctx context.Context, pool types.Pool) error {
	if err := pool.Validate(); err != nil {
		return err
	}
	k.getStore(ctx).Set(pool.Key(), pool.Marshal())
	return nil
}

// IteratePools calls cb for every stored pool in key order until cb returns
// true. A record that cannot be decoded aborts the iteration with an error.
func (k Keeper) IteratePools(ctx context.Context, cb func(types.Pool) (stop bool)) error {
	store := prefix.NewStore(k.getStore(ctx), types.PoolKeyPrefix)
	iterator := storetypes.KVStorePrefixIterator(store, nil)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pool types.Pool
		if err := pool.Unmarshal(iterator.Value()); err != nil {
			return err
		}
		if cb(pool) {
			break
		}
	}
	return nil
}

// GetAllPools returns every stored pool.
func (k Keeper) GetAllPools(ctx context.Context) ([]types.Pool, error) {
	var pools []types.Pool
	err := k.IteratePools(ctx, func(pool types.Pool) bool {
		pools = append(pools, pool)
		return false
	})
	return pools, err
}
