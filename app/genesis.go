package app

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"

	ammtypes "github.com/paw-chain/amm/x/amm/types"
	ledgertypes "github.com/paw-chain/amm/x/ledger/types"
)

// GenesisState is the genesis document keyed by module name.
type GenesisState map[string]json.RawMessage

// NewDefaultGenesisState returns the genesis of an empty application.
func NewDefaultGenesisState() GenesisState {
	return GenesisState{
		ledgertypes.ModuleName: mustMarshalJSON(ledgertypes.DefaultGenesis()),
		ammtypes.ModuleName:    mustMarshalJSON(ammtypes.DefaultGenesis()),
	}
}

// Modules decodes the per-module sections. A missing section means the
// module's default genesis.
func (gs GenesisState) Modules() (*ledgertypes.GenesisState, *ammtypes.GenesisState, error) {
	ledgerGenesis := ledgertypes.DefaultGenesis()
	if bz, ok := gs[ledgertypes.ModuleName]; ok {
		if err := json.Unmarshal(bz, ledgerGenesis); err != nil {
			return nil, nil, fmt.Errorf("failed to unmarshal %s genesis state: %w", ledgertypes.ModuleName, err)
		}
	}

	ammGenesis := ammtypes.DefaultGenesis()
	if bz, ok := gs[ammtypes.ModuleName]; ok {
		parsed, err := ammtypes.ParseGenesis(bz)
		if err != nil {
			return nil, nil, err
		}
		ammGenesis = parsed
	}
	return ledgerGenesis, ammGenesis, nil
}

// Validate checks both modules and that every pool's claim supply is backed
// by ledger balances of its claim asset.
func (gs GenesisState) Validate() error {
	ledgerGenesis, ammGenesis, err := gs.Modules()
	if err != nil {
		return err
	}
	if err := ledgerGenesis.Validate(); err != nil {
		return err
	}
	if err := ammGenesis.Validate(); err != nil {
		return err
	}

	claims := make(map[string]math.Int)
	for _, b := range ledgerGenesis.Balances {
		if held, ok := claims[b.Asset]; ok {
			claims[b.Asset] = held.Add(b.Amount)
		} else {
			claims[b.Asset] = b.Amount
		}
	}
	for _, pool := range ammGenesis.Pools {
		got, ok := claims[pool.ClaimAsset()]
		if !ok {
			got = math.ZeroInt()
		}
		if !got.Equal(math.NewIntFromUint64(pool.ClaimSupply)) {
			return fmt.Errorf("pool %s: claim supply %d but ledger holds %s", pool.PairID(), pool.ClaimSupply, got)
		}
	}
	return nil
}

func mustMarshalJSON(v any) json.RawMessage {
	bz, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return bz
}
