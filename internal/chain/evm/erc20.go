package evm

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Minimal ERC-20 ABI: the three read-only calls the token service needs.
const erc20ABIJSON = `[
  {"constant":true,"inputs":[{"name":"owner","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
  {"constant":true,"inputs":[],"name":"decimals","outputs":[{"name":"","type":"uint8"}],"stateMutability":"view","type":"function"},
  {"constant":true,"inputs":[],"name":"symbol","outputs":[{"name":"","type":"string"}],"stateMutability":"view","type":"function"}
]`

var (
	erc20ABI     abi.ABI
	erc20ABIOnce sync.Once
	erc20ABIErr  error
)

func loadERC20ABI() (abi.ABI, error) {
	erc20ABIOnce.Do(func() {
		erc20ABI, erc20ABIErr = abi.JSON(strings.NewReader(erc20ABIJSON))
	})
	return erc20ABI, erc20ABIErr
}

func (a *Adapter) ethCall(ctx context.Context, chainID int64, tokenAddress string, data []byte) ([]byte, error) {
	transport, err := a.transportFor(chainID)
	if err != nil {
		return nil, err
	}
	resultHex, err := callHex(ctx, transport, "eth_call", []any{map[string]string{
		"to":   tokenAddress,
		"data": hexutil.Encode(data),
	}, "latest"})
	if err != nil {
		return nil, err
	}
	return hexutil.Decode(resultHex)
}

// TokenBalanceOf calls balanceOf(owner) on an ERC-20 contract.
func (a *Adapter) TokenBalanceOf(ctx context.Context, chainID int64, tokenAddress, owner string) (*big.Int, error) {
	contractABI, err := loadERC20ABI()
	if err != nil {
		return nil, err
	}
	if !validAddress(tokenAddress) || !validAddress(owner) {
		return nil, fmt.Errorf("invalid address for balanceOf")
	}

	data, err := contractABI.Pack("balanceOf", ethcommon.HexToAddress(owner))
	if err != nil {
		return nil, fmt.Errorf("pack balanceOf: %w", err)
	}
	output, err := a.ethCall(ctx, chainID, tokenAddress, data)
	if err != nil {
		return nil, fmt.Errorf("balanceOf %s: %w", tokenAddress, err)
	}

	values, err := contractABI.Unpack("balanceOf", output)
	if err != nil {
		return nil, fmt.Errorf("unpack balanceOf: %w", err)
	}
	balance, ok := values[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected balanceOf result type %T", values[0])
	}
	return balance, nil
}

// TokenDecimals calls decimals() on an ERC-20 contract.
func (a *Adapter) TokenDecimals(ctx context.Context, chainID int64, tokenAddress string) (uint8, error) {
	contractABI, err := loadERC20ABI()
	if err != nil {
		return 0, err
	}
	data, err := contractABI.Pack("decimals")
	if err != nil {
		return 0, fmt.Errorf("pack decimals: %w", err)
	}
	output, err := a.ethCall(ctx, chainID, tokenAddress, data)
	if err != nil {
		return 0, fmt.Errorf("decimals %s: %w", tokenAddress, err)
	}

	values, err := contractABI.Unpack("decimals", output)
	if err != nil {
		return 0, fmt.Errorf("unpack decimals: %w", err)
	}
	decimals, ok := values[0].(uint8)
	if !ok {
		return 0, fmt.Errorf("unexpected decimals result type %T", values[0])
	}
	return decimals, nil
}

// TokenSymbol calls symbol() on an ERC-20 contract.
func (a *Adapter) TokenSymbol(ctx context.Context, chainID int64, tokenAddress string) (string, error) {
	contractABI, err := loadERC20ABI()
	if err != nil {
		return "", err
	}
	data, err := contractABI.Pack("symbol")
	if err != nil {
		return "", fmt.Errorf("pack symbol: %w", err)
	}
	output, err := a.ethCall(ctx, chainID, tokenAddress, data)
	if err != nil {
		return "", fmt.Errorf("symbol %s: %w", tokenAddress, err)
	}

	values, err := contractABI.Unpack("symbol", output)
	if err != nil {
		return "", fmt.Errorf("unpack symbol: %w", err)
	}
	symbol, ok := values[0].(string)
	if !ok {
		return "", fmt.Errorf("unexpected symbol result type %T", values[0])
	}
	return symbol, nil
}
