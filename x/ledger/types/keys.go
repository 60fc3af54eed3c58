package types

import (
	"github.com/cosmos/cosmos-sdk/types/address"
)

const (
	// ModuleName defines the module name
	ModuleName = "ledger"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName
)

// Store key prefixes
var (
	BalanceKeyPrefix = []byte{0x01} // prefix for (address, asset) balances
	SupplyKeyPrefix  = []byte{0x02} // prefix for per-asset supply
)

// BalanceKey returns the store key of addr's balance of asset.
func BalanceKey(addr, asset string) []byte {
	key := append([]byte{}, BalanceKeyPrefix...)
	key = append(key, address.MustLengthPrefix([]byte(addr))...)
	return append(key, asset...)
}

// SplitBalanceKey is the inverse of BalanceKey.
func SplitBalanceKey(key []byte) (addr, asset string, err error) {
	if len(key) < len(BalanceKeyPrefix)+1 {
		return "", "", ErrMalformedKey.Wrapf("balance key of %d bytes", len(key))
	}
	key = key[len(BalanceKeyPrefix):]
	n := int(key[0])
	if len(key) < 1+n {
		return "", "", ErrMalformedKey.Wrapf("address length %d exceeds key", n)
	}
	return string(key[1 : 1+n]), string(key[1+n:]), nil
}

// SupplyKey returns the store key of the total supply of asset.
func SupplyKey(asset string) []byte {
	return append(append([]byte{}, SupplyKeyPrefix...), asset...)
}
