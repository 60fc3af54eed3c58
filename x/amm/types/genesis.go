package types

import (
	"encoding/json"
	"fmt"
)

// GenesisState is the exported state of the AMM module.
type GenesisState struct {
	Pools []Pool `json:"pools"`
}

// DefaultGenesis returns a genesis state without pools.
func DefaultGenesis() *GenesisState {
	return &GenesisState{Pools: []Pool{}}
}

// Validate checks every pool and rejects two records for the same ordered pair.
func (gs GenesisState) Validate() error {
	seen := make(map[string]struct{}, len(gs.Pools))
	for i, pool := range gs.Pools {
		if err := pool.Validate(); err != nil {
			return fmt.Errorf("pool %d: %w", i, err)
		}
		key := string(pool.Key())
		if _, dup := seen[key]; dup {
			return ErrPoolAlreadyExists.Wrapf("duplicate pool %s in genesis", pool.PairID())
		}
		seen[key] = struct{}{}
	}
	return nil
}

// ParseGenesis decodes a JSON genesis document and validates it.
func ParseGenesis(bz json.RawMessage) (*GenesisState, error) {
	var gs GenesisState
	if err := json.Unmarshal(bz, &gs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s genesis state: %w", ModuleName, err)
	}
	if err := gs.Validate(); err != nil {
		return nil, err
	}
	return &gs, nil
}
