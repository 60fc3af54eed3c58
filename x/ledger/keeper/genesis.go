package keeper

import (
	"context"
	"fmt"

	"github.com/paw-chain/amm/x/ledger/types"
)

// InitGenesis loads balances and rebuilds per-asset supply from them.
func (k Keeper) InitGenesis(ctx context.Context, gs types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return fmt.Errorf("invalid %s genesis state: %w", types.ModuleName, err)
	}
	for _, b := range gs.Balances {
		if err := k.MintCoins(ctx, b.Address, b.Asset, b.Amount); err != nil {
			return fmt.Errorf("failed to import balance for %s: %w", b.Address, err)
		}
	}
	k.Logger(ctx).Info("imported ledger genesis", "balances", len(gs.Balances))
	return nil
}

// ExportGenesis returns every non-zero balance.
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	gs := types.DefaultGenesis()
	k.IterateBalances(ctx, func(b types.Balance) bool {
		gs.Balances = append(gs.Balances, b)
		return false
	})
	return gs
}
