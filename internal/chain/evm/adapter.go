// Package evm implements the chain adapter for EVM networks: BIP-44 address
// derivation, balance queries, the EIP-1559 send pipeline and history via
// the backend API.
package evm

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"time"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/pocketvault/walletcore/internal/chain"
	"github.com/pocketvault/walletcore/internal/hdkey"
	"github.com/pocketvault/walletcore/internal/registry"
	"github.com/pocketvault/walletcore/internal/rpc"
	"github.com/pocketvault/walletcore/internal/units"
)

// Adapter implements chain.Adapter for the EVM family.
type Adapter struct {
	networks   *registry.NetworkRegistry
	apiBaseURL string
	timeout    time.Duration
}

// New creates the EVM adapter. apiBaseURL is the backend proxy/history base.
func New(networks *registry.NetworkRegistry, apiBaseURL string, timeout time.Duration) *Adapter {
	if timeout <= 0 {
		timeout = rpc.DefaultTimeout
	}
	return &Adapter{networks: networks, apiBaseURL: apiBaseURL, timeout: timeout}
}

// transportFor picks the JSON-RPC transport for a chain: a custom RPC
// override is used directly as a standard endpoint, otherwise calls route
// through the backend proxy keyed by chain id.
func (a *Adapter) transportFor(chainID int64) (rpc.Transport, error) {
	if _, err := a.networks.EvmNetwork(chainID); err != nil {
		return nil, err
	}
	customURL, ok, err := a.networks.CustomRPC(chainID)
	if err != nil {
		return nil, err
	}
	if ok {
		return rpc.NewDirect(customURL, a.timeout), nil
	}
	return rpc.NewProxy(a.apiBaseURL, chainID, a.timeout), nil
}

// Address derives the account's EVM address. Pure re-derivation, no network.
func (a *Adapter) Address(mnemonic string, accountIndex uint32) (string, error) {
	return hdkey.EvmAddress(mnemonic, accountIndex)
}

// NativeBalance returns the address's native balance in whole units.
func (a *Adapter) NativeBalance(ctx context.Context, address string, ref chain.Ref) (string, error) {
	if err := ref.RequireFamily(chain.FamilyEVM); err != nil {
		return "", err
	}
	transport, err := a.transportFor(ref.ChainID())
	if err != nil {
		return "", err
	}

	wei, err := callBig(ctx, transport, "eth_getBalance", []any{address, "latest"})
	if err != nil {
		return "", fmt.Errorf("eth_getBalance: %w", err)
	}
	return units.Format(wei, units.EvmDecimals), nil
}

// callHex performs a call whose result is a hex-quantity string.
func callHex(ctx context.Context, transport rpc.Transport, method string, params any) (string, error) {
	raw, err := transport.Call(ctx, method, params)
	if err != nil {
		return "", err
	}
	var hexValue string
	if err := json.Unmarshal(raw, &hexValue); err != nil {
		return "", fmt.Errorf("decode %s result: %w", method, err)
	}
	return hexValue, nil
}

func callBig(ctx context.Context, transport rpc.Transport, method string, params any) (*big.Int, error) {
	hexValue, err := callHex(ctx, transport, method, params)
	if err != nil {
		return nil, err
	}
	value, err := hexutil.DecodeBig(hexValue)
	if err != nil {
		return nil, fmt.Errorf("parse %s result %q: %w", method, hexValue, err)
	}
	return value, nil
}

func callUint64(ctx context.Context, transport rpc.Transport, method string, params any) (uint64, error) {
	hexValue, err := callHex(ctx, transport, method, params)
	if err != nil {
		return 0, err
	}
	value, err := hexutil.DecodeUint64(hexValue)
	if err != nil {
		return 0, fmt.Errorf("parse %s result %q: %w", method, hexValue, err)
	}
	return value, nil
}

func validAddress(address string) bool {
	return ethcommon.IsHexAddress(address)
}
