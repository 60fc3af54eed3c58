package types

import (
	"github.com/cosmos/cosmos-sdk/types/address"
)

const (
	// ModuleName defines the module name
	ModuleName = "amm"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// claimAssetPrefix namespaces the claim token of every pool
	claimAssetPrefix = ModuleName + "/claim/"

	// reserveAccountPrefix namespaces the account holding a pool's reserves
	reserveAccountPrefix = ModuleName + "/reserve/"

	// MaxAccountLength is the longest account name the ledger accepts
	MaxAccountLength = 255
)

// Store key prefixes
var (
	PoolKeyPrefix = []byte{0x01} // prefix for pool records keyed by ordered asset pair
)

// PoolKey returns the store key of the pool for the ordered pair (assetA, assetB).
// The pair is not sorted: (A, B) and (B, A) address different pools.
func PoolKey(assetA, assetB string) []byte {
	key := make([]byte, 0, len(PoolKeyPrefix)+len(assetA)+len(assetB)+2)
	key = append(key, PoolKeyPrefix...)
	key = append(key, address.MustLengthPrefix([]byte(assetA))...)
	return append(key, address.MustLengthPrefix([]byte(assetB))...)
}

// PairID returns the human readable identifier of an ordered asset pair.
func PairID(assetA, assetB string) string {
	return assetA + "/" + assetB
}

// pairRef joins the pair with a separator that asset identifiers cannot
// contain, so distinct pairs never share a claim asset or reserve account.
func pairRef(assetA, assetB string) string {
	return assetA + "," + assetB
}

// ClaimAsset returns the asset identifier of the claim token issued by the
// pool for (assetA, assetB).
func ClaimAsset(assetA, assetB string) string {
	return claimAssetPrefix + pairRef(assetA, assetB)
}

// ReserveAccount returns the ledger account holding the reserves of the pool
// for (assetA, assetB).
func ReserveAccount(assetA, assetB string) string {
	return reserveAccountPrefix + pairRef(assetA, assetB)
}
