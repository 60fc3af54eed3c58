package types

// OperationKind tags the closed set of operations a pool accepts.
type OperationKind uint8

const (
	KindInitializePool OperationKind = iota + 1
	KindAddLiquidity
	KindSwap
	KindRemoveLiquidity
)

func (k OperationKind) String() string {
	switch k {
	case KindInitializePool:
		return "initialize_pool"
	case KindAddLiquidity:
		return "add_liquidity"
	case KindSwap:
		return "swap"
	case KindRemoveLiquidity:
		return "remove_liquidity"
	default:
		return "unknown"
	}
}

// Operation is implemented only by the Msg types of this package.
type Operation interface {
	Kind() OperationKind
	// Pair returns the ordered asset pair addressing the target pool.
	Pair() (assetA, assetB string)
	// ValidateBasic runs the stateless checks of the operation.
	ValidateBasic() error

	isOperation()
}

var (
	_ Operation = (*MsgInitializePool)(nil)
	_ Operation = (*MsgAddLiquidity)(nil)
	_ Operation = (*MsgSwap)(nil)
	_ Operation = (*MsgRemoveLiquidity)(nil)
)

// MsgInitializePool creates the pool for (AssetA, AssetB).
type MsgInitializePool struct {
	AssetA         string
	AssetB         string
	FeeNumerator   uint64
	FeeDenominator uint64
}

// MsgAddLiquidity deposits both assets and mints claim tokens.
type MsgAddLiquidity struct {
	AssetA      string
	AssetB      string
	AmountA     uint64
	AmountB     uint64
	MinClaimOut uint64
}

// MsgSwap sells AmountIn on the side chosen by Direction.
type MsgSwap struct {
	AssetA           string
	AssetB           string
	AmountIn         uint64
	MinimumAmountOut uint64
	Direction        Direction
}

// MsgRemoveLiquidity burns claim tokens for a share of both reserves.
type MsgRemoveLiquidity struct {
	AssetA      string
	AssetB      string
	ClaimAmount uint64
	MinAOut     uint64
	MinBOut     uint64
}

func (*MsgInitializePool) Kind() OperationKind  { return KindInitializePool }
func (*MsgAddLiquidity) Kind() OperationKind    { return KindAddLiquidity }
func (*MsgSwap) Kind() OperationKind            { return KindSwap }
func (*MsgRemoveLiquidity) Kind() OperationKind { return KindRemoveLiquidity }

func (m *MsgInitializePool) Pair() (string, string)  { return m.AssetA, m.AssetB }
func (m *MsgAddLiquidity) Pair() (string, string)    { return m.AssetA, m.AssetB }
func (m *MsgSwap) Pair() (string, string)            { return m.AssetA, m.AssetB }
func (m *MsgRemoveLiquidity) Pair() (string, string) { return m.AssetA, m.AssetB }

func (*MsgInitializePool) isOperation()  {}
func (*MsgAddLiquidity) isOperation()    {}
func (*MsgSwap) isOperation()            {}
func (*MsgRemoveLiquidity) isOperation() {}

func (m *MsgInitializePool) ValidateBasic() error {
	if m.AssetA == m.AssetB {
		return ErrIdenticalAssets.Wrapf("%s", m.AssetA)
	}
	if err := ValidatePair(m.AssetA, m.AssetB); err != nil {
		return err
	}
	return ValidateFee(m.FeeNumerator, m.FeeDenominator)
}

func (m *MsgAddLiquidity) ValidateBasic() error {
	if err := ValidatePair(m.AssetA, m.AssetB); err != nil {
		return err
	}
	if err := RequirePositive("amount a", m.AmountA); err != nil {
		return err
	}
	return RequirePositive("amount b", m.AmountB)
}

func (m *MsgSwap) ValidateBasic() error {
	if err := ValidatePair(m.AssetA, m.AssetB); err != nil {
		return err
	}
	if err := RequirePositive("amount in", m.AmountIn); err != nil {
		return err
	}
	return m.Direction.Validate()
}

func (m *MsgRemoveLiquidity) ValidateBasic() error {
	if err := ValidatePair(m.AssetA, m.AssetB); err != nil {
		return err
	}
	return RequirePositive("claim amount", m.ClaimAmount)
}

// Outcome is the uniform result of Apply. Fields that do not apply to the
// operation kind are zero.
type Outcome struct {
	Kind      OperationKind
	Pool      Pool
	Transfers []Transfer

	ClaimMinted uint64
	ClaimBurned uint64
	AmountA     uint64
	AmountB     uint64
	Direction   Direction
	AmountIn    uint64
	AmountOut   uint64
	Fee         uint64
}

// Apply runs op against the current pool snapshot and returns the next
// snapshot with the transfers the host must apply atomically. current must be
// nil for MsgInitializePool and non-nil for every other operation. Apply never
// mutates current.
func Apply(current *Pool, op Operation) (Outcome, error) {
	if err := op.ValidateBasic(); err != nil {
		return Outcome{}, err
	}

	if init, ok := op.(*MsgInitializePool); ok {
		if current != nil {
			return Outcome{}, ErrPoolAlreadyExists.Wrapf("pool %s", current.PairID())
		}
		pool, err := NewPool(init.AssetA, init.AssetB, init.FeeNumerator, init.FeeDenominator)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Kind: KindInitializePool, Pool: pool}, nil
	}

	if current == nil {
		assetA, assetB := op.Pair()
		return Outcome{}, ErrPoolNotFound.Wrapf("pool %s", PairID(assetA, assetB))
	}
	if err := current.RequirePair(op.Pair()); err != nil {
		return Outcome{}, err
	}

	switch msg := op.(type) {
	case *MsgAddLiquidity:
		res, err := current.Deposit(msg.AmountA, msg.AmountB, msg.MinClaimOut)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{
			Kind:        KindAddLiquidity,
			Pool:        res.Pool,
			Transfers:   res.Transfers,
			ClaimMinted: res.ClaimMinted,
			AmountA:     msg.AmountA,
			AmountB:     msg.AmountB,
		}, nil

	case *MsgSwap:
		res, err := current.Swap(msg.AmountIn, msg.MinimumAmountOut, msg.Direction)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{
			Kind:      KindSwap,
			Pool:      res.Pool,
			Transfers: res.Transfers,
			Direction: res.Direction,
			AmountIn:  res.AmountIn,
			AmountOut: res.AmountOut,
			Fee:       res.Fee,
		}, nil

	case *MsgRemoveLiquidity:
		res, err := current.Withdraw(msg.ClaimAmount, msg.MinAOut, msg.MinBOut)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{
			Kind:        KindRemoveLiquidity,
			Pool:        res.Pool,
			Transfers:   res.Transfers,
			ClaimBurned: res.ClaimBurned,
			AmountA:     res.AmountA,
			AmountB:     res.AmountB,
		}, nil

	default:
		return Outcome{}, ErrUnknownOperation.Wrapf("%T", op)
	}
}
