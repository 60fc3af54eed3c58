package types

import "fmt"

// TransferKind tells the host which way an asset moves.
type TransferKind uint8

const (
	// TransferInbound moves an asset from the caller to the pool's reserve account.
	TransferInbound TransferKind = iota + 1
	// TransferOutbound moves an asset from the pool's reserve account to the caller.
	TransferOutbound
	// TransferMint issues claim tokens to the caller.
	TransferMint
	// TransferBurn destroys claim tokens held by the caller.
	TransferBurn
)

func (k TransferKind) String() string {
	switch k {
	case TransferInbound:
		return "inbound"
	case TransferOutbound:
		return "outbound"
	case TransferMint:
		return "mint"
	case TransferBurn:
		return "burn"
	default:
		return fmt.Sprintf("TransferKind(%d)", uint8(k))
	}
}

// Transfer is one movement of an asset produced by the engine. It is not
// persisted; the host applies the whole list atomically with the new pool.
type Transfer struct {
	Kind   TransferKind
	Asset  string
	Amount uint64
}

func (t Transfer) String() string {
	return fmt.Sprintf("%s %d %s", t.Kind, t.Amount, t.Asset)
}

func inbound(asset string, amount uint64) Transfer {
	return Transfer{Kind: TransferInbound, Asset: asset, Amount: amount}
}

func outbound(asset string, amount uint64) Transfer {
	return Transfer{Kind: TransferOutbound, Asset: asset, Amount: amount}
}
