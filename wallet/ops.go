package wallet

import (
	"context"
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/pocketvault/walletcore/internal/chain"
	"github.com/pocketvault/walletcore/internal/model"
)

// activeAddress derives the active account's address for the given chain
// family. Caller must hold w.mu.
func (w *Wallet) activeAddress(ref chain.Ref) (string, uint32, error) {
	phrase, err := w.phrase()
	if err != nil {
		return "", 0, err
	}
	account, err := w.ActiveAccount()
	if err != nil {
		return "", 0, err
	}

	adapter, err := w.adapterFor(ref)
	if err != nil {
		return "", 0, err
	}
	address, err := adapter.Address(phrase, account.Index)
	if err != nil {
		return "", 0, err
	}
	return address, account.Index, nil
}

// Send transfers native currency from the active account. Amount is a
// decimal string in whole units.
func (w *Wallet) Send(ctx context.Context, ref chain.Ref, to, amount string) (*model.SendResponse, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	phrase, err := w.phrase()
	if err != nil {
		return nil, err
	}
	account, err := w.ActiveAccount()
	if err != nil {
		return nil, err
	}
	adapter, err := w.adapterFor(ref)
	if err != nil {
		return nil, err
	}

	txHash, err := adapter.SendNative(ctx, chain.SendParams{
		Mnemonic:     phrase,
		To:           to,
		Amount:       amount,
		AccountIndex: account.Index,
		Ref:          ref,
	})
	if err != nil {
		return nil, err
	}
	return &model.SendResponse{TxHash: txHash}, nil
}

// NativeBalance returns the active account's native balance on a chain.
func (w *Wallet) NativeBalance(ctx context.Context, ref chain.Ref) (*model.BalanceResponse, error) {
	w.mu.Lock()
	address, _, err := w.activeAddress(ref)
	w.mu.Unlock()
	if err != nil {
		return nil, err
	}

	adapter, err := w.adapterFor(ref)
	if err != nil {
		return nil, err
	}
	balance, err := adapter.NativeBalance(ctx, address, ref)
	if err != nil {
		return nil, err
	}
	symbol, err := w.nativeSymbol(ref)
	if err != nil {
		return nil, err
	}
	return &model.BalanceResponse{Address: address, Balance: balance, Symbol: symbol}, nil
}

func (w *Wallet) nativeSymbol(ref chain.Ref) (string, error) {
	switch ref.Family() {
	case chain.FamilyEVM:
		network, err := w.networks.EvmNetwork(ref.ChainID())
		if err != nil {
			return "", err
		}
		return network.NativeSymbol, nil
	case chain.FamilySolana:
		network, err := w.networks.SolanaNetwork(ref.Network())
		if err != nil {
			return "", err
		}
		return network.NativeSymbol, nil
	default:
		return "", fmt.Errorf("%w: unhandled family %s", model.ErrChainMismatch, ref.Family())
	}
}

// TokenBalances returns all catalog token balances for the active account on
// an EVM chain. Per-token failures degrade to zero entries.
func (w *Wallet) TokenBalances(ctx context.Context, chainID int64) ([]model.TokenBalance, error) {
	ref := chain.EVM(chainID)
	if _, err := w.networks.EvmNetwork(chainID); err != nil {
		return nil, err
	}

	w.mu.Lock()
	address, _, err := w.activeAddress(ref)
	w.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return w.tokens.Balances(ctx, chainID, address)
}

// History returns one page of the active account's transaction history.
func (w *Wallet) History(ctx context.Context, ref chain.Ref, cursor string) (*model.HistoryPage, error) {
	w.mu.Lock()
	address, _, err := w.activeAddress(ref)
	w.mu.Unlock()
	if err != nil {
		return nil, err
	}

	adapter, err := w.adapterFor(ref)
	if err != nil {
		return nil, err
	}
	return adapter.TxHistory(ctx, address, cursor, ref)
}

// Receive returns the active account's address on a chain together with a
// QR code encoding it, as a base64 PNG.
func (w *Wallet) Receive(ref chain.Ref) (*model.ReceiveResponse, error) {
	w.mu.Lock()
	address, _, err := w.activeAddress(ref)
	w.mu.Unlock()
	if err != nil {
		return nil, err
	}

	png, err := qrcode.Encode(address, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return &model.ReceiveResponse{
		Address: address,
		QR:      base64.StdEncoding.EncodeToString(png),
	}, nil
}
