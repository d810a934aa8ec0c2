package evm

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/pocketvault/walletcore/internal/chain"
	"github.com/pocketvault/walletcore/internal/hdkey"
	"github.com/pocketvault/walletcore/internal/log"
	"github.com/pocketvault/walletcore/internal/rpc"
	"github.com/pocketvault/walletcore/internal/units"
)

// FeeEstimate is the EIP-1559 fee pair in wei.
type FeeEstimate struct {
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
}

// fallbackPriorityFee is 1.5 gwei, used when the fee history reward array is
// empty or zero.
var fallbackPriorityFee = big.NewInt(1_500_000_000)

// SendNative runs the full EVM send pipeline: derive, nonce, fees, gas,
// sign, broadcast. Each step's failure aborts the whole send; nothing is
// retried silently. Input validation happens before any RPC call.
func (a *Adapter) SendNative(ctx context.Context, params chain.SendParams) (string, error) {
	if err := params.Ref.RequireFamily(chain.FamilyEVM); err != nil {
		return "", err
	}
	if !validAddress(params.To) {
		return "", fmt.Errorf("invalid recipient address %q", params.To)
	}
	valueWei, err := units.Parse(params.Amount, units.EvmDecimals)
	if err != nil {
		return "", fmt.Errorf("invalid amount: %w", err)
	}
	if valueWei.Sign() <= 0 {
		return "", fmt.Errorf("amount must be greater than zero")
	}

	chainID := params.Ref.ChainID()
	transport, err := a.transportFor(chainID)
	if err != nil {
		return "", err
	}

	key, err := hdkey.DeriveEvm(params.Mnemonic, params.AccountIndex)
	if err != nil {
		return "", err
	}
	defer key.Zero()
	from := key.Address

	nonce, err := callUint64(ctx, transport, "eth_getTransactionCount", []any{from.Hex(), "latest"})
	if err != nil {
		return "", fmt.Errorf("fetch nonce: %w", err)
	}

	fees, err := EstimateFees(ctx, transport)
	if err != nil {
		return "", fmt.Errorf("estimate fees: %w", err)
	}

	gasLimit, err := callUint64(ctx, transport, "eth_estimateGas", []any{map[string]string{
		"from":  from.Hex(),
		"to":    params.To,
		"value": hexutil.EncodeBig(valueWei),
	}})
	if err != nil {
		return "", fmt.Errorf("estimate gas: %w", err)
	}

	to := ethcommon.HexToAddress(params.To)
	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   big.NewInt(chainID),
		Nonce:     nonce,
		GasTipCap: fees.MaxPriorityFeePerGas,
		GasFeeCap: fees.MaxFeePerGas,
		Gas:       gasLimit,
		To:        &to,
		Value:     valueWei,
	})

	signer := types.NewLondonSigner(big.NewInt(chainID))
	signedTx, err := types.SignTx(tx, signer, key.PrivateKey)
	if err != nil {
		return "", fmt.Errorf("sign transaction: %w", err)
	}

	rawTx, err := signedTx.MarshalBinary()
	if err != nil {
		return "", fmt.Errorf("encode transaction: %w", err)
	}

	txHash, err := callHex(ctx, transport, "eth_sendRawTransaction", []any{hexutil.Encode(rawTx)})
	if err != nil {
		return "", fmt.Errorf("broadcast transaction: %w", err)
	}

	log.Chain.Info().
		Int64("chainId", chainID).
		Uint64("nonce", nonce).
		Str("txHash", txHash).
		Msg("evm transaction broadcast")
	return txHash, nil
}

type feeHistoryResult struct {
	BaseFeePerGas []string   `json:"baseFeePerGas"`
	Reward        [][]string `json:"reward"`
}

// EstimateFees fetches eth_feeHistory over the most recent 5 blocks with
// percentiles [10,20,30]. The base fee is the latest entry of the returned
// series; the priority fee is the median of the last block's rewards, or the
// 1.5 gwei fallback when rewards are empty or zero. maxFeePerGas doubles the
// base fee for headroom: the base fee can rise at most ~12.5% per block, so
// 2x covers several blocks of increases.
func EstimateFees(ctx context.Context, transport rpc.Transport) (*FeeEstimate, error) {
	latestBlock, err := callHex(ctx, transport, "eth_blockNumber", []any{})
	if err != nil {
		return nil, fmt.Errorf("eth_blockNumber: %w", err)
	}

	raw, err := transport.Call(ctx, "eth_feeHistory", []any{"0x5", latestBlock, []int{10, 20, 30}})
	if err != nil {
		return nil, fmt.Errorf("eth_feeHistory: %w", err)
	}
	var history feeHistoryResult
	if err := json.Unmarshal(raw, &history); err != nil {
		return nil, fmt.Errorf("decode fee history: %w", err)
	}
	if len(history.BaseFeePerGas) == 0 {
		return nil, fmt.Errorf("fee history returned no base fees")
	}

	baseFee, err := hexutil.DecodeBig(history.BaseFeePerGas[len(history.BaseFeePerGas)-1])
	if err != nil {
		return nil, fmt.Errorf("parse base fee: %w", err)
	}

	priority := new(big.Int)
	if len(history.Reward) > 0 {
		rewards := history.Reward[len(history.Reward)-1]
		if len(rewards) > 0 {
			priority, err = hexutil.DecodeBig(rewards[len(rewards)/2])
			if err != nil {
				return nil, fmt.Errorf("parse reward: %w", err)
			}
		}
	}
	if priority.Sign() <= 0 {
		priority = new(big.Int).Set(fallbackPriorityFee)
	}

	maxFee := new(big.Int).Lsh(baseFee, 1)
	maxFee.Add(maxFee, priority)

	return &FeeEstimate{
		MaxFeePerGas:         maxFee,
		MaxPriorityFeePerGas: priority,
	}, nil
}
