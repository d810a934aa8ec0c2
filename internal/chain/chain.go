// Package chain defines the uniform multi-chain abstraction: a tagged chain
// reference and the four-operation adapter capability implemented once per
// chain family.
package chain

import (
	"context"
	"fmt"

	"github.com/pocketvault/walletcore/internal/model"
)

// Family tags the chain family a reference belongs to. Adapter selection is
// an exhaustive switch over this tag, so a mismatch can only come from a
// caller invoking an adapter directly with a foreign reference.
type Family int

const (
	FamilyEVM Family = iota + 1
	FamilySolana
)

func (f Family) String() string {
	switch f {
	case FamilyEVM:
		return "evm"
	case FamilySolana:
		return "solana"
	default:
		return fmt.Sprintf("family(%d)", int(f))
	}
}

// Ref identifies one chain: an EVM chain id or a Solana cluster name,
// carried as a tagged variant instead of a runtime-typed identifier.
type Ref struct {
	family  Family
	chainID int64
	network string
}

// EVM builds a reference to an EVM chain.
func EVM(chainID int64) Ref {
	return Ref{family: FamilyEVM, chainID: chainID}
}

// Solana builds a reference to a Solana cluster. An empty name means the
// default cluster (mainnet).
func Solana(network string) Ref {
	return Ref{family: FamilySolana, network: network}
}

// Family returns the reference's family tag.
func (r Ref) Family() Family { return r.family }

// ChainID returns the EVM chain id; only meaningful for FamilyEVM.
func (r Ref) ChainID() int64 { return r.chainID }

// Network returns the Solana cluster name; only meaningful for FamilySolana.
func (r Ref) Network() string { return r.network }

func (r Ref) String() string {
	switch r.family {
	case FamilyEVM:
		return fmt.Sprintf("evm:%d", r.chainID)
	case FamilySolana:
		name := r.network
		if name == "" {
			name = "mainnet"
		}
		return "solana:" + name
	default:
		return "unknown"
	}
}

// RequireFamily returns model.ErrChainMismatch when the reference belongs to
// a different family than the adapter handling it.
func (r Ref) RequireFamily(want Family) error {
	if r.family != want {
		return fmt.Errorf("%w: adapter %s called with %s", model.ErrChainMismatch, want, r)
	}
	return nil
}

// SendParams are the inputs of a native-asset transfer.
type SendParams struct {
	Mnemonic     string
	To           string
	Amount       string // decimal, whole units
	AccountIndex uint32
	Ref          Ref
}

// Adapter is the capability interface for one chain family: address
// derivation, native balance, native send and transaction history. Address
// derivation is pure; the rest talk to the network.
type Adapter interface {
	Address(mnemonic string, accountIndex uint32) (string, error)
	NativeBalance(ctx context.Context, address string, ref Ref) (string, error)
	SendNative(ctx context.Context, params SendParams) (string, error)
	TxHistory(ctx context.Context, address, cursor string, ref Ref) (*model.HistoryPage, error)
}
