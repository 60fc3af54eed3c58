// Package keeper implements the AMM module keeper.
//
// The AMM module keeps one two-asset constant-product pool per ordered asset
// pair. The arithmetic lives in the types package and is pure: every
// operation takes a pool snapshot and returns the next snapshot together with
// the transfers that realize it. The keeper supplies the rest.
//
// # Core Functionality
//
// Pool table: pools are stored under their ordered pair. (A, B) and (B, A) are
// distinct pools; looking up the reversed pair of an existing pool fails with
// ErrAssetMismatch.
//
// Atomic apply: Execute runs the pure engine, then applies the transfers
// through the BankKeeper and stores the new pool inside a cached context. The
// cache is written only when every step succeeded: a failed transfer leaves
// the store untouched and emits no event.
//
// Queries: SimulateSwap, SpotPrice and ClaimValue read a pool without
// changing state.
//
// Invariants: pool-state, reserve-backing and claim-supply cross-check the
// stored pools against the ledger.
//
// # Observability
//
// Every operation opens an OpenTelemetry span named after its kind, updates
// the Prometheus collectors in AMMMetrics and emits one event on success.
package keeper
