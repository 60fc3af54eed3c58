package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store/prefix"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/amm/x/ledger/types"
)

// Keeper tracks per-address asset balances and per-asset supply.
type Keeper struct {
	storeKey storetypes.StoreKey
}

// NewKeeper creates a new ledger Keeper instance
func NewKeeper(key storetypes.StoreKey) Keeper {
	return Keeper{storeKey: key}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// getStore returns the KVStore for the ledger module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

func readInt(bz []byte) math.Int {
	if bz == nil {
		return math.ZeroInt()
	}
	var amount math.Int
	if err := amount.Unmarshal(bz); err != nil {
		panic(fmt.Errorf("corrupted ledger amount: %w", err))
	}
	return amount
}

func writeInt(store storetypes.KVStore, key []byte, amount math.Int) {
	if amount.IsZero() {
		store.Delete(key)
		return
	}
	bz, err := amount.Marshal()
	if err != nil {
		panic(fmt.Errorf("failed to marshal ledger amount: %w", err))
	}
	store.Set(key, bz)
}

// GetBalance returns addr's balance of asset, zero when absent.
func (k Keeper) GetBalance(ctx context.Context, addr, asset string) math.Int {
	return readInt(k.getStore(ctx).Get(types.BalanceKey(addr, asset)))
}

// GetSupply returns the total amount of asset held across all addresses.
func (k Keeper) GetSupply(ctx context.Context, asset string) math.Int {
	return readInt(k.getStore(ctx).Get(types.SupplyKey(asset)))
}

func (k Keeper) setBalance(ctx context.Context, addr, asset string, amount math.Int) {
	writeInt(k.getStore(ctx), types.BalanceKey(addr, asset), amount)
}

func (k Keeper) setSupply(ctx context.Context, asset string, amount math.Int) {
	writeInt(k.getStore(ctx), types.SupplyKey(asset), amount)
}

func validateTransfer(addr, asset string, amount math.Int) error {
	if err := types.ValidateAddress(addr); err != nil {
		return err
	}
	if err := types.ValidateAsset(asset); err != nil {
		return err
	}
	if amount.IsNil() || amount.IsNegative() {
		return types.ErrInvalidAmount.Wrap("amount must not be negative")
	}
	return nil
}

// MintCoins issues amount of asset to addr and grows the supply.
func (k Keeper) MintCoins(ctx context.Context, to, asset string, amount math.Int) error {
	if err := validateTransfer(to, asset, amount); err != nil {
		return err
	}
	if amount.IsZero() {
		return nil
	}
	k.setBalance(ctx, to, asset, k.GetBalance(ctx, to, asset).Add(amount))
	k.setSupply(ctx, asset, k.GetSupply(ctx, asset).Add(amount))
	return nil
}

// BurnCoins destroys amount of asset held by addr and shrinks the supply.
func (k Keeper) BurnCoins(ctx context.Context, from, asset string, amount math.Int) error {
	if err := validateTransfer(from, asset, amount); err != nil {
		return err
	}
	if amount.IsZero() {
		return nil
	}
	balance := k.GetBalance(ctx, from, asset)
	if balance.LT(amount) {
		return types.ErrInsufficientFunds.Wrapf("%s has %s %s, burning %s", from, balance, asset, amount)
	}
	k.setBalance(ctx, from, asset, balance.Sub(amount))
	k.setSupply(ctx, asset, k.GetSupply(ctx, asset).Sub(amount))
	return nil
}

// SendCoins moves amount of asset from one address to another.
func (k Keeper) SendCoins(ctx context.Context, from, to, asset string, amount math.Int) error {
	if err := validateTransfer(from, asset, amount); err != nil {
		return err
	}
	if err := types.ValidateAddress(to); err != nil {
		return err
	}
	if amount.IsZero() {
		return nil
	}
	balance := k.GetBalance(ctx, from, asset)
	if balance.LT(amount) {
		return types.ErrInsufficientFunds.Wrapf("%s has %s %s, sending %s", from, balance, asset, amount)
	}
	k.setBalance(ctx, from, asset, balance.Sub(amount))
	k.setBalance(ctx, to, asset, k.GetBalance(ctx, to, asset).Add(amount))
	return nil
}

// IterateBalances calls cb for every non-zero balance in key order until cb
// returns true.
func (k Keeper) IterateBalances(ctx context.Context, cb func(types.Balance) (stop bool)) {
	store := prefix.NewStore(k.getStore(ctx), types.BalanceKeyPrefix)
	iterator := storetypes.KVStorePrefixIterator(store, nil)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		key := append(append([]byte{}, types.BalanceKeyPrefix...), iterator.Key()...)
		addr, asset, err := types.SplitBalanceKey(key)
		if err != nil {
			panic(err)
		}
		if cb(types.Balance{Address: addr, Asset: asset, Amount: readInt(iterator.Value())}) {
			break
		}
	}
}
