package keeper

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/paw-chain/amm/x/amm/types"
)

// AMMMetrics holds all Prometheus metrics for the AMM module
type AMMMetrics struct {
	// Operation metrics
	OperationsTotal  *prometheus.CounterVec
	OperationLatency *prometheus.HistogramVec

	// Swap metrics
	SwapVolume        *prometheus.CounterVec
	SwapFeesCollected *prometheus.CounterVec

	// Liquidity metrics
	LiquidityAdded   *prometheus.CounterVec
	LiquidityRemoved *prometheus.CounterVec
	PoolReserves     *prometheus.GaugeVec
	ClaimSupply      *prometheus.GaugeVec

	// Pool metrics
	PoolsCreated prometheus.Counter
}

var (
	ammMetricsOnce sync.Once
	ammMetrics     *AMMMetrics
)

// NewAMMMetrics creates and registers AMM metrics (singleton pattern)
func NewAMMMetrics() *AMMMetrics {
	ammMetricsOnce.Do(func() {
		ammMetrics = &AMMMetrics{
			OperationsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "amm",
					Subsystem: "pool",
					Name:      "operations_total",
					Help:      "Total number of pool operations by kind and status",
				},
				[]string{"kind", "status"},
			),
			OperationLatency: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Namespace: "amm",
					Subsystem: "pool",
					Name:      "operation_latency_seconds",
					Help:      "Pool operation latency in seconds",
					Buckets:   prometheus.DefBuckets,
				},
				[]string{"kind"},
			),
			SwapVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "amm",
					Subsystem: "pool",
					Name:      "swap_volume_total",
					Help:      "Total swap input volume in base units",
				},
				[]string{"pair", "asset"},
			),
			SwapFeesCollected: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "amm",
					Subsystem: "pool",
					Name:      "swap_fees_collected_total",
					Help:      "Total swap fees retained by pools",
				},
				[]string{"pair", "asset"},
			),
			LiquidityAdded: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "amm",
					Subsystem: "pool",
					Name:      "liquidity_added_total",
					Help:      "Total liquidity added to pools",
				},
				[]string{"pair", "asset"},
			),
			LiquidityRemoved: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "amm",
					Subsystem: "pool",
					Name:      "liquidity_removed_total",
					Help:      "Total liquidity removed from pools",
				},
				[]string{"pair", "asset"},
			),
			PoolReserves: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "amm",
					Subsystem: "pool",
					Name:      "reserves",
					Help:      "Current pool reserves",
				},
				[]string{"pair", "asset"},
			),
			ClaimSupply: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "amm",
					Subsystem: "pool",
					Name:      "claim_supply",
					Help:      "Outstanding claim tokens per pool",
				},
				[]string{"pair"},
			),
			PoolsCreated: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "amm",
					Subsystem: "pool",
					Name:      "pools_created_total",
					Help:      "Total number of pools initialized",
				},
			),
		}
	})
	return ammMetrics
}

// A nil *AMMMetrics records nothing.

func (m *AMMMetrics) observe(kind types.OperationKind, start time.Time, err error) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "failed"
	}
	m.OperationsTotal.WithLabelValues(kind.String(), status).Inc()
	m.OperationLatency.WithLabelValues(kind.String()).Observe(time.Since(start).Seconds())
}

func (m *AMMMetrics) record(out types.Outcome) {
	if m == nil {
		return
	}
	pool := out.Pool
	pair := pool.PairID()

	switch out.Kind {
	case types.KindInitializePool:
		m.PoolsCreated.Inc()
	case types.KindAddLiquidity:
		m.LiquidityAdded.WithLabelValues(pair, pool.AssetA).Add(float64(out.AmountA))
		m.LiquidityAdded.WithLabelValues(pair, pool.AssetB).Add(float64(out.AmountB))
	case types.KindRemoveLiquidity:
		m.LiquidityRemoved.WithLabelValues(pair, pool.AssetA).Add(float64(out.AmountA))
		m.LiquidityRemoved.WithLabelValues(pair, pool.AssetB).Add(float64(out.AmountB))
	case types.KindSwap:
		if len(out.Transfers) > 0 {
			assetIn := out.Transfers[0].Asset
			m.SwapVolume.WithLabelValues(pair, assetIn).Add(float64(out.AmountIn))
			m.SwapFeesCollected.WithLabelValues(pair, assetIn).Add(float64(out.Fee))
		}
	}

	m.PoolReserves.WithLabelValues(pair, pool.AssetA).Set(float64(pool.ReserveA))
	m.PoolReserves.WithLabelValues(pair, pool.AssetB).Set(float64(pool.ReserveB))
	m.ClaimSupply.WithLabelValues(pair).Set(float64(pool.ClaimSupply))
}
