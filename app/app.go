package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"

	ammkeeper "github.com/paw-chain/amm/x/amm/keeper"
	ammtypes "github.com/paw-chain/amm/x/amm/types"
	ledgerkeeper "github.com/paw-chain/amm/x/ledger/keeper"
	ledgertypes "github.com/paw-chain/amm/x/ledger/types"
)

// App wires the ledger and AMM keepers onto one versioned multistore.
type App struct {
	logger    log.Logger
	db        dbm.DB
	cms       storetypes.CommitMultiStore
	keys      map[string]*storetypes.KVStoreKey
	telemetry *Telemetry

	LedgerKeeper ledgerkeeper.Keeper
	AmmKeeper    ammkeeper.Keeper
}

// OpenDB opens the database selected by cfg under <home>/data.
func OpenDB(cfg Config) (dbm.DB, error) {
	if cfg.DBBackend == BackendMemDB {
		return dbm.NewMemDB(), nil
	}
	return dbm.NewDB("application", dbm.BackendType(cfg.DBBackend), filepath.Join(cfg.Home, "data"))
}

// New returns an application over db loaded at its latest committed version.
// opts are passed to the AMM keeper after the ones derived from cfg.
// Once cfg validates, db belongs to New: it is closed if loading fails, and by
// App.Close otherwise.
func New(logger log.Logger, db dbm.DB, cfg Config, opts ...ammkeeper.Option) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	keys := map[string]*storetypes.KVStoreKey{
		ledgertypes.StoreKey: storetypes.NewKVStoreKey(ledgertypes.StoreKey),
		ammtypes.StoreKey:    storetypes.NewKVStoreKey(ammtypes.StoreKey),
	}

	cms := store.NewCommitMultiStore(db, logger, metrics.NewNoOpMetrics())
	for _, key := range keys {
		cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, nil)
	}
	if err := cms.LoadLatestVersion(); err != nil {
		return nil, errors.Join(fmt.Errorf("failed to load latest version: %w", err), db.Close())
	}

	tel, err := InitTelemetry(cfg)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("failed to initialize telemetry: %w", err), db.Close())
	}

	keeperOpts := []ammkeeper.Option{ammkeeper.WithTracer(tel.Tracer(ammkeeper.TracerName))}
	if !cfg.MetricsEnabled {
		keeperOpts = append(keeperOpts, ammkeeper.WithoutMetrics())
	}
	keeperOpts = append(keeperOpts, opts...)

	a := &App{
		logger:    logger,
		db:        db,
		cms:       cms,
		keys:      keys,
		telemetry: tel,
	}
	a.LedgerKeeper = ledgerkeeper.NewKeeper(keys[ledgertypes.StoreKey])
	a.AmmKeeper = ammkeeper.NewKeeper(keys[ammtypes.StoreKey], a.LedgerKeeper, keeperOpts...)

	logger.Info("application loaded", "version", cms.LastCommitID().Version, "db_backend", cfg.DBBackend)
	return a, nil
}

// Logger returns the application logger.
func (a *App) Logger() log.Logger {
	return a.logger
}

// LastVersion returns the version of the last commit, zero before the first.
func (a *App) LastVersion() int64 {
	return a.cms.LastCommitID().Version
}

// NewContext returns a context writing straight to the working state of the
// multistore. Changes persist on the next Commit.
func (a *App) NewContext() sdk.Context {
	header := cmtproto.Header{Height: a.LastVersion() + 1}
	return sdk.NewContext(a.cms, header, false, a.logger)
}

// Commit persists the working state as a new version.
func (a *App) Commit() storetypes.CommitID {
	id := a.cms.Commit()
	a.logger.Debug("committed state", "version", id.Version, "hash", fmt.Sprintf("%X", id.Hash))
	return id
}

// InitGenesis validates gs and loads it into ctx.
func (a *App) InitGenesis(ctx sdk.Context, gs GenesisState) error {
	if err := gs.Validate(); err != nil {
		return fmt.Errorf("invalid genesis: %w", err)
	}
	ledgerGenesis, ammGenesis, err := gs.Modules()
	if err != nil {
		return err
	}
	if err := a.LedgerKeeper.InitGenesis(ctx, *ledgerGenesis); err != nil {
		return err
	}
	if err := a.AmmKeeper.InitGenesis(ctx, *ammGenesis); err != nil {
		return err
	}
	return a.CheckInvariants(ctx)
}

// ExportGenesis returns the state of ctx as a genesis document.
func (a *App) ExportGenesis(ctx sdk.Context) (GenesisState, error) {
	ammGenesis, err := a.AmmKeeper.ExportGenesis(ctx)
	if err != nil {
		return nil, err
	}
	return GenesisState{
		ledgertypes.ModuleName: mustMarshalJSON(a.LedgerKeeper.ExportGenesis(ctx)),
		ammtypes.ModuleName:    mustMarshalJSON(ammGenesis),
	}, nil
}

// CheckInvariants runs every AMM invariant against ctx.
func (a *App) CheckInvariants(ctx sdk.Context) error {
	msg, broken := ammkeeper.AllInvariants(a.AmmKeeper)(ctx)
	if broken {
		a.logger.Error("invariant broken", "msg", msg)
		return errors.New(msg)
	}
	return nil
}

// Close shuts down telemetry and closes the database.
func (a *App) Close(ctx context.Context) error {
	return errors.Join(a.telemetry.Shutdown(ctx), a.db.Close())
}
