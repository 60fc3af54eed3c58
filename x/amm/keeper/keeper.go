package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/paw-chain/amm/x/amm/types"
)

// TracerName is the instrumentation scope of keeper spans.
const TracerName = "github.com/paw-chain/amm/x/amm"

// Keeper of the amm store
type Keeper struct {
	storeKey   storetypes.StoreKey
	bankKeeper types.BankKeeper
	metrics    *AMMMetrics
	tracer     trace.Tracer
}

// Option configures a Keeper.
type Option func(*Keeper)

// WithTracer replaces the tracer taken from the global provider.
func WithTracer(tracer trace.Tracer) Option {
	return func(k *Keeper) { k.tracer = tracer }
}

// WithoutMetrics disables Prometheus recording.
func WithoutMetrics() Option {
	return func(k *Keeper) { k.metrics = nil }
}

// NewKeeper creates a new amm Keeper instance
func NewKeeper(key storetypes.StoreKey, bankKeeper types.BankKeeper, opts ...Option) Keeper {
	k := Keeper{
		storeKey:   key,
		bankKeeper: bankKeeper,
		metrics:    NewAMMMetrics(),
		tracer:     otel.Tracer(TracerName),
	}
	for _, opt := range opts {
		opt(&k)
	}
	return k
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// getStore returns the KVStore for the amm module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}
