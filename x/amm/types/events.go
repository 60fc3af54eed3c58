package types

// AMM module event types
const (
	EventTypeInitializePool  = "initialize_pool"
	EventTypeAddLiquidity    = "add_liquidity"
	EventTypeSwap            = "swap"
	EventTypeRemoveLiquidity = "remove_liquidity"

	AttributeKeyPair           = "pair"
	AttributeKeySender         = "sender"
	AttributeKeyFeeNumerator   = "fee_numerator"
	AttributeKeyFeeDenominator = "fee_denominator"
	AttributeKeyAmountA        = "amount_a"
	AttributeKeyAmountB        = "amount_b"
	AttributeKeyClaimMinted    = "claim_minted"
	AttributeKeyClaimBurned    = "claim_burned"
	AttributeKeyDirection      = "direction"
	AttributeKeyAmountIn       = "amount_in"
	AttributeKeyAmountOut      = "amount_out"
	AttributeKeyFee            = "fee"
	AttributeKeyReserveA       = "reserve_a"
	AttributeKeyReserveB       = "reserve_b"
)
