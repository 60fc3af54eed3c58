package keeper

import (
	"context"
	"fmt"

	"github.com/paw-chain/amm/x/amm/types"
)

// InitGenesis stores every pool of gs. Balances backing the reserves and the
// claim tokens are imported by the ledger.
func (k Keeper) InitGenesis(ctx context.Context, gs types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return fmt.Errorf("invalid %s genesis state: %w", types.ModuleName, err)
	}
	for _, pool := range gs.Pools {
		if err := k.SetPool(ctx, pool); err != nil {
			return fmt.Errorf("failed to import pool %s: %w", pool.PairID(), err)
		}
	}
	return nil
}

// ExportGenesis returns every stored pool.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	pools, err := k.GetAllPools(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export pools: %w", err)
	}
	gs := types.DefaultGenesis()
	gs.Pools = append(gs.Pools, pools...)
	return gs, nil
}
