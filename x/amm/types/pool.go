package types

import (
	"encoding/binary"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// Pool is the persisted state of a two-asset constant product pool.
type Pool struct {
	AssetA string `json:"asset_a"`
	AssetB string `json:"asset_b"`

	// Reserves held by the pool in the smallest unit of each asset.
	ReserveA uint64 `json:"reserve_a"`
	ReserveB uint64 `json:"reserve_b"`

	// Swap fee rate FeeNumerator/FeeDenominator, fixed at creation.
	FeeNumerator   uint64 `json:"fee_numerator"`
	FeeDenominator uint64 `json:"fee_denominator"`

	// Outstanding claim token units.
	ClaimSupply uint64 `json:"claim_supply"`
}

// NewPool validates the creation parameters and returns an empty pool.
func NewPool(assetA, assetB string, feeNumerator, feeDenominator uint64) (Pool, error) {
	if assetA == assetB {
		return Pool{}, ErrIdenticalAssets.Wrapf("%s", assetA)
	}
	if err := ValidatePair(assetA, assetB); err != nil {
		return Pool{}, err
	}
	if err := ValidateFee(feeNumerator, feeDenominator); err != nil {
		return Pool{}, err
	}

	return Pool{
		AssetA:         assetA,
		AssetB:         assetB,
		FeeNumerator:   feeNumerator,
		FeeDenominator: feeDenominator,
	}, nil
}

// PairID returns the identifier of the pool's ordered asset pair.
func (p Pool) PairID() string {
	return PairID(p.AssetA, p.AssetB)
}

// ClaimAsset returns the asset identifier of the pool's claim token.
func (p Pool) ClaimAsset() string {
	return ClaimAsset(p.AssetA, p.AssetB)
}

// ReserveAccount returns the ledger account holding the pool's reserves.
func (p Pool) ReserveAccount() string {
	return ReserveAccount(p.AssetA, p.AssetB)
}

// Key returns the store key of the pool.
func (p Pool) Key() []byte {
	return PoolKey(p.AssetA, p.AssetB)
}

// IsEmpty reports whether the pool holds no liquidity.
func (p Pool) IsEmpty() bool {
	return p.ClaimSupply == 0 && p.ReserveA == 0 && p.ReserveB == 0
}

// ConstantProduct returns reserveA * reserveB.
func (p Pool) ConstantProduct() math.Int {
	return Product(p.ReserveA, p.ReserveB)
}

// Validate checks the invariants every stored pool must satisfy.
func (p Pool) Validate() error {
	if err := ValidatePair(p.AssetA, p.AssetB); err != nil {
		return err
	}
	if err := ValidateFee(p.FeeNumerator, p.FeeDenominator); err != nil {
		return err
	}

	empty := p.ReserveA == 0 && p.ReserveB == 0
	if (p.ClaimSupply == 0) != empty {
		return ErrInvalidPoolState.Wrapf(
			"pool %s: claim supply %d with reserves (%d, %d)",
			p.PairID(), p.ClaimSupply, p.ReserveA, p.ReserveB,
		)
	}
	if !empty && (p.ReserveA == 0 || p.ReserveB == 0) {
		return ErrInvalidPoolState.Wrapf("pool %s: one-sided reserves (%d, %d)", p.PairID(), p.ReserveA, p.ReserveB)
	}
	return nil
}

func (p Pool) String() string {
	return fmt.Sprintf("Pool{%s reserves=(%d, %d) fee=%d/%d claims=%d}",
		p.PairID(), p.ReserveA, p.ReserveB, p.FeeNumerator, p.FeeDenominator, p.ClaimSupply)
}

// Store layout: uvarint-prefixed assetA, uvarint-prefixed assetB, then
// reserveA, reserveB, feeNumerator, feeDenominator, claimSupply as big-endian
// uint64.
const poolFixedSize = 5 * 8

// Marshal encodes the pool in its persisted layout.
func (p Pool) Marshal() []byte {
	bz := make([]byte, 0, 2*binary.MaxVarintLen64+len(p.AssetA)+len(p.AssetB)+poolFixedSize)
	bz = binary.AppendUvarint(bz, uint64(len(p.AssetA)))
	bz = append(bz, p.AssetA...)
	bz = binary.AppendUvarint(bz, uint64(len(p.AssetB)))
	bz = append(bz, p.AssetB...)
	for _, v := range []uint64{p.ReserveA, p.ReserveB, p.FeeNumerator, p.FeeDenominator, p.ClaimSupply} {
		bz = binary.BigEndian.AppendUint64(bz, v)
	}
	return bz
}

// Unmarshal decodes a pool from its persisted layout.
func (p *Pool) Unmarshal(bz []byte) error {
	assetA, rest, err := readString(bz)
	if err != nil {
		return errorsmod.Wrap(err, "asset a")
	}
	assetB, rest, err := readString(rest)
	if err != nil {
		return errorsmod.Wrap(err, "asset b")
	}
	if len(rest) != poolFixedSize {
		return ErrInvalidPoolState.Wrapf("expected %d trailing bytes, got %d", poolFixedSize, len(rest))
	}

	p.AssetA = assetA
	p.AssetB = assetB
	p.ReserveA = binary.BigEndian.Uint64(rest[0:8])
	p.ReserveB = binary.BigEndian.Uint64(rest[8:16])
	p.FeeNumerator = binary.BigEndian.Uint64(rest[16:24])
	p.FeeDenominator = binary.BigEndian.Uint64(rest[24:32])
	p.ClaimSupply = binary.BigEndian.Uint64(rest[32:40])
	return nil
}

func readString(bz []byte) (string, []byte, error) {
	n, read := binary.Uvarint(bz)
	if read <= 0 {
		return "", nil, ErrInvalidPoolState.Wrap("malformed length prefix")
	}
	bz = bz[read:]
	if uint64(len(bz)) < n {
		return "", nil, ErrInvalidPoolState.Wrapf("truncated string: want %d bytes, have %d", n, len(bz))
	}
	return string(bz[:n]), bz[n:], nil
}
