package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// SetRawPoolForTest writes bz under key without validation so tests can seed
// corrupted records.
func SetRawPoolForTest(k Keeper, ctx sdk.Context, key, bz []byte) {
	k.getStore(ctx).Set(key, bz)
}
