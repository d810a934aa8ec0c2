// Package sol implements the chain adapter for Solana clusters: SLIP-0010
// address derivation, lamport balances, native SOL transfers and history
// reconstructed from the RPC node.
package sol

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/pocketvault/walletcore/internal/chain"
	"github.com/pocketvault/walletcore/internal/hdkey"
	"github.com/pocketvault/walletcore/internal/registry"
	"github.com/pocketvault/walletcore/internal/units"
)

// Adapter implements chain.Adapter for Solana.
type Adapter struct {
	networks *registry.NetworkRegistry
}

// New creates the Solana adapter.
func New(networks *registry.NetworkRegistry) *Adapter {
	return &Adapter{networks: networks}
}

func (a *Adapter) clientFor(network string) (*rpc.Client, error) {
	entry, err := a.networks.SolanaNetwork(network)
	if err != nil {
		return nil, err
	}
	return rpc.New(entry.RPCURL), nil
}

// Address derives the account's base58 Solana address. Pure re-derivation.
func (a *Adapter) Address(mnemonic string, accountIndex uint32) (string, error) {
	return hdkey.SolanaAddress(mnemonic, accountIndex)
}

// NativeBalance returns the SOL balance in whole units at confirmed
// commitment.
func (a *Adapter) NativeBalance(ctx context.Context, address string, ref chain.Ref) (string, error) {
	if err := ref.RequireFamily(chain.FamilySolana); err != nil {
		return "", err
	}
	pubkey, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return "", fmt.Errorf("invalid solana address: %w", err)
	}
	client, err := a.clientFor(ref.Network())
	if err != nil {
		return "", err
	}

	balance, err := client.GetBalance(ctx, pubkey, rpc.CommitmentConfirmed)
	if err != nil {
		return "", fmt.Errorf("get balance: %w", err)
	}
	return units.LamportsToSOL(balance.Value), nil
}

func validSolanaAddress(address string) bool {
	_, err := solana.PublicKeyFromBase58(address)
	return err == nil
}
