package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// Balance is one (address, asset) holding.
type Balance struct {
	Address string   `json:"address"`
	Asset   string   `json:"asset"`
	Amount  math.Int `json:"amount"`
}

// GenesisState is the exported state of the ledger module. Supplies are
// derived from balances on import.
type GenesisState struct {
	Balances []Balance `json:"balances"`
}

// DefaultGenesis returns an empty ledger.
func DefaultGenesis() *GenesisState {
	return &GenesisState{Balances: []Balance{}}
}

// Validate rejects malformed entries and duplicate holdings.
func (gs GenesisState) Validate() error {
	seen := make(map[string]struct{}, len(gs.Balances))
	for i, b := range gs.Balances {
		if err := ValidateAddress(b.Address); err != nil {
			return fmt.Errorf("balance %d: %w", i, err)
		}
		if err := ValidateAsset(b.Asset); err != nil {
			return fmt.Errorf("balance %d: %w", i, err)
		}
		if b.Amount.IsNil() || !b.Amount.IsPositive() {
			return fmt.Errorf("balance %d: %w", i, ErrInvalidAmount.Wrap("amount must be positive"))
		}
		key := string(BalanceKey(b.Address, b.Asset))
		if _, dup := seen[key]; dup {
			return fmt.Errorf("duplicate balance for %s %s", b.Address, b.Asset)
		}
		seen[key] = struct{}{}
	}
	return nil
}
