package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	"cosmossdk.io/store/prefix"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/amm/x/amm/types"
)

// RegisterInvariants registers all AMM invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "pool-state", PoolStateInvariant(k))
	ir.RegisterRoute(types.ModuleName, "reserve-backing", ReserveBackingInvariant(k))
	ir.RegisterRoute(types.ModuleName, "claim-supply", ClaimSupplyInvariant(k))
}

// AllInvariants runs all invariants of the AMM module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := PoolStateInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = ReserveBackingInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		return ClaimSupplyInvariant(k)(ctx)
	}
}

// PoolStateInvariant checks that every stored record decodes and satisfies the
// pool invariants.
func PoolStateInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		store := prefix.NewStore(k.getStore(ctx), types.PoolKeyPrefix)
		iterator := storetypes.KVStorePrefixIterator(store, nil)
		defer iterator.Close()

		for ; iterator.Valid(); iterator.Next() {
			var pool types.Pool
			if err := pool.Unmarshal(iterator.Value()); err != nil {
				count++
				msg += fmt.Sprintf("key %X: %v\n", iterator.Key(), err)
				continue
			}
			if err := pool.Validate(); err != nil {
				count++
				msg += fmt.Sprintf("pool %s: %v\n", pool.PairID(), err)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "pool-state",
			fmt.Sprintf("found %d invalid pool records\n%s", count, msg),
		), broken
	}
}

// ReserveBackingInvariant checks that each pool's reserve account holds at
// least its recorded reserves.
func ReserveBackingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		err := k.IteratePools(ctx, func(pool types.Pool) bool {
			account := pool.ReserveAccount()
			for _, side := range []struct {
				asset   string
				reserve uint64
			}{{pool.AssetA, pool.ReserveA}, {pool.AssetB, pool.ReserveB}} {
				balance := k.bankKeeper.GetBalance(ctx, account, side.asset)
				if balance.LT(math.NewIntFromUint64(side.reserve)) {
					count++
					msg += fmt.Sprintf("pool %s: %s balance %s < reserve %d\n",
						pool.PairID(), side.asset, balance, side.reserve)
				}
			}
			return false
		})
		if err != nil {
			count++
			msg += err.Error() + "\n"
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "reserve-backing",
			fmt.Sprintf("found %d reserves not backed by the ledger\n%s", count, msg),
		), broken
	}
}

// ClaimSupplyInvariant checks that the ledger supply of each claim token
// equals the pool's outstanding claim supply.
func ClaimSupplyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		err := k.IteratePools(ctx, func(pool types.Pool) bool {
			supply := k.bankKeeper.GetSupply(ctx, pool.ClaimAsset())
			if !supply.Equal(math.NewIntFromUint64(pool.ClaimSupply)) {
				count++
				msg += fmt.Sprintf("pool %s: ledger supply %s != claim supply %d\n",
					pool.PairID(), supply, pool.ClaimSupply)
			}
			return false
		})
		if err != nil {
			count++
			msg += err.Error() + "\n"
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "claim-supply",
			fmt.Sprintf("found %d mismatched claim supplies\n%s", count, msg),
		), broken
	}
}
