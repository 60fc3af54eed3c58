package keeper

import (
	"context"
	"strconv"
	"time"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/paw-chain/amm/x/amm/types"
)

// InitializePool creates an empty pool for the ordered pair of msg.
func (k Keeper) InitializePool(ctx context.Context, sender string, msg *types.MsgInitializePool) (types.Pool, error) {
	out, err := k.Execute(ctx, sender, msg)
	return out.Pool, err
}

// AddLiquidity pulls both amounts from sender into the pool reserves and mints
// claim tokens to sender.
func (k Keeper) AddLiquidity(ctx context.Context, sender string, msg *types.MsgAddLiquidity) (types.Outcome, error) {
	return k.Execute(ctx, sender, msg)
}

// Swap sells msg.AmountIn from sender into the pool and pays out the other
// asset.
func (k Keeper) Swap(ctx context.Context, sender string, msg *types.MsgSwap) (types.Outcome, error) {
	return k.Execute(ctx, sender, msg)
}

// RemoveLiquidity burns claim tokens held by sender and pays out its share of
// both reserves.
func (k Keeper) RemoveLiquidity(ctx context.Context, sender string, msg *types.MsgRemoveLiquidity) (types.Outcome, error) {
	return k.Execute(ctx, sender, msg)
}

// Execute runs op on behalf of sender. The pool update and every transfer are
// committed together or not at all; events are emitted only after commit.
func (k Keeper) Execute(ctx context.Context, sender string, op types.Operation) (out types.Outcome, err error) {
	start := time.Now()
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	assetA, assetB := op.Pair()
	_, span := k.tracer.Start(ctx, "amm."+spanName(op.Kind()),
		trace.WithAttributes(
			attribute.String("amm.pair", types.PairID(assetA, assetB)),
			attribute.String("amm.sender", sender),
		),
	)
	defer func() {
		k.metrics.observe(op.Kind(), start, err)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			k.logFailure(sdkCtx, op, err)
		}
		span.End()
	}()

	if err := op.ValidateBasic(); err != nil {
		return types.Outcome{}, err
	}

	current, err := k.currentPool(sdkCtx, op)
	if err != nil {
		return types.Outcome{}, err
	}
	out, err = types.Apply(current, op)
	if err != nil {
		return types.Outcome{}, err
	}

	cacheCtx, writeCache := sdkCtx.CacheContext()
	if err := k.applyTransfers(cacheCtx, sender, out.Pool, out.Transfers); err != nil {
		return types.Outcome{}, err
	}
	if err := k.SetPool(cacheCtx, out.Pool); err != nil {
		return types.Outcome{}, err
	}
	writeCache()

	sdkCtx.EventManager().EmitEvent(newEvent(sender, out))
	k.metrics.record(out)
	span.SetAttributes(
		attribute.String("amm.reserve_a", strconv.FormatUint(out.Pool.ReserveA, 10)),
		attribute.String("amm.reserve_b", strconv.FormatUint(out.Pool.ReserveB, 10)),
	)
	k.Logger(sdkCtx).Info("pool operation applied",
		"kind", out.Kind.String(),
		"pair", out.Pool.PairID(),
		"sender", sender,
		"reserve_a", out.Pool.ReserveA,
		"reserve_b", out.Pool.ReserveB,
		"claim_supply", out.Pool.ClaimSupply,
	)
	return out, nil
}

// currentPool loads the snapshot Apply expects: nil for an initialization of
// an unused pair, the stored pool otherwise.
func (k Keeper) currentPool(ctx sdk.Context, op types.Operation) (*types.Pool, error) {
	assetA, assetB := op.Pair()
	if op.Kind() == types.KindInitializePool {
		return k.lookupPool(ctx, assetA, assetB)
	}
	pool, err := k.GetPool(ctx, assetA, assetB)
	if err != nil {
		return nil, err
	}
	return &pool, nil
}

func (k Keeper) applyTransfers(ctx sdk.Context, sender string, pool types.Pool, transfers []types.Transfer) error {
	reserve := pool.ReserveAccount()
	for _, t := range transfers {
		amount := math.NewIntFromUint64(t.Amount)

		var err error
		switch t.Kind {
		case types.TransferInbound:
			err = k.bankKeeper.SendCoins(ctx, sender, reserve, t.Asset, amount)
		case types.TransferOutbound:
			err = k.bankKeeper.SendCoins(ctx, reserve, sender, t.Asset, amount)
		case types.TransferMint:
			err = k.bankKeeper.MintCoins(ctx, sender, t.Asset, amount)
		case types.TransferBurn:
			err = k.bankKeeper.BurnCoins(ctx, sender, t.Asset, amount)
		default:
			err = types.ErrUnknownOperation.Wrapf("transfer kind %s", t.Kind)
		}
		if err != nil {
			return errorsmod.Wrapf(err, "%s transfer", t)
		}
	}
	return nil
}

func (k Keeper) logFailure(ctx sdk.Context, op types.Operation, err error) {
	assetA, assetB := op.Pair()
	logger := k.Logger(ctx)
	if types.IsInternal(err) {
		logger.Error("pool invariant broken", "kind", op.Kind().String(), "pair", types.PairID(assetA, assetB), "err", err)
		return
	}
	logger.Debug("pool operation rejected", "kind", op.Kind().String(), "pair", types.PairID(assetA, assetB), "err", err)
}

func spanName(kind types.OperationKind) string {
	switch kind {
	case types.KindInitializePool:
		return "InitializePool"
	case types.KindAddLiquidity:
		return "AddLiquidity"
	case types.KindSwap:
		return "Swap"
	case types.KindRemoveLiquidity:
		return "RemoveLiquidity"
	default:
		return "Unknown"
	}
}

func newEvent(sender string, out types.Outcome) sdk.Event {
	u := func(v uint64) string { return strconv.FormatUint(v, 10) }
	pool := out.Pool

	attrs := []sdk.Attribute{
		sdk.NewAttribute(types.AttributeKeyPair, pool.PairID()),
		sdk.NewAttribute(types.AttributeKeySender, sender),
	}
	var eventType string
	switch out.Kind {
	case types.KindInitializePool:
		eventType = types.EventTypeInitializePool
		attrs = append(attrs,
			sdk.NewAttribute(types.AttributeKeyFeeNumerator, u(pool.FeeNumerator)),
			sdk.NewAttribute(types.AttributeKeyFeeDenominator, u(pool.FeeDenominator)),
		)
	case types.KindAddLiquidity:
		eventType = types.EventTypeAddLiquidity
		attrs = append(attrs,
			sdk.NewAttribute(types.AttributeKeyAmountA, u(out.AmountA)),
			sdk.NewAttribute(types.AttributeKeyAmountB, u(out.AmountB)),
			sdk.NewAttribute(types.AttributeKeyClaimMinted, u(out.ClaimMinted)),
		)
	case types.KindSwap:
		eventType = types.EventTypeSwap
		attrs = append(attrs,
			sdk.NewAttribute(types.AttributeKeyDirection, out.Direction.String()),
			sdk.NewAttribute(types.AttributeKeyAmountIn, u(out.AmountIn)),
			sdk.NewAttribute(types.AttributeKeyAmountOut, u(out.AmountOut)),
			sdk.NewAttribute(types.AttributeKeyFee, u(out.Fee)),
		)
	case types.KindRemoveLiquidity:
		eventType = types.EventTypeRemoveLiquidity
		attrs = append(attrs,
			sdk.NewAttribute(types.AttributeKeyAmountA, u(out.AmountA)),
			sdk.NewAttribute(types.AttributeKeyAmountB, u(out.AmountB)),
			sdk.NewAttribute(types.AttributeKeyClaimBurned, u(out.ClaimBurned)),
		)
	}
	attrs = append(attrs,
		sdk.NewAttribute(types.AttributeKeyReserveA, u(pool.ReserveA)),
		sdk.NewAttribute(types.AttributeKeyReserveB, u(pool.ReserveB)),
	)
	return sdk.NewEvent(eventType, attrs...)
}
