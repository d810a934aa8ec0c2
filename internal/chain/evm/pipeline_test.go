package evm_test

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketvault/walletcore/internal/chain"
	"github.com/pocketvault/walletcore/internal/chain/evm"
	"github.com/pocketvault/walletcore/internal/registry"
	"github.com/pocketvault/walletcore/internal/store"
)

const testPhrase = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

// fakeTransport answers JSON-RPC methods from a canned map.
type fakeTransport struct {
	responses map[string]any
	calls     []string
}

func (f *fakeTransport) Call(_ context.Context, method string, _ any) (json.RawMessage, error) {
	f.calls = append(f.calls, method)
	resp, ok := f.responses[method]
	if !ok {
		return nil, fmt.Errorf("unexpected method %s", method)
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func gwei(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(1_000_000_000))
}

func hexBig(n *big.Int) string {
	return "0x" + n.Text(16)
}

func TestEstimateFeesMedianReward(t *testing.T) {
	transport := &fakeTransport{responses: map[string]any{
		"eth_blockNumber": "0x100",
		"eth_feeHistory": map[string]any{
			"baseFeePerGas": []string{hexBig(gwei(90)), hexBig(gwei(100))},
			"reward": [][]string{
				{hexBig(gwei(1)), hexBig(gwei(2)), hexBig(gwei(3))},
				{hexBig(gwei(10)), hexBig(gwei(20)), hexBig(gwei(30))},
			},
		},
	}}

	fees, err := evm.EstimateFees(context.Background(), transport)
	require.NoError(t, err)

	// Priority is the median percentile reward of the newest block.
	assert.Equal(t, gwei(20), fees.MaxPriorityFeePerGas)
	// Max fee doubles the newest base fee and adds the priority fee.
	assert.Equal(t, gwei(220), fees.MaxFeePerGas)
}

func TestEstimateFeesFallbackPriority(t *testing.T) {
	for name, reward := range map[string]any{
		"empty rewards": [][]string{},
		"zero reward":   [][]string{{"0x0", "0x0", "0x0"}},
	} {
		t.Run(name, func(t *testing.T) {
			transport := &fakeTransport{responses: map[string]any{
				"eth_blockNumber": "0x100",
				"eth_feeHistory": map[string]any{
					"baseFeePerGas": []string{hexBig(gwei(100))},
					"reward":        reward,
				},
			}}

			fees, err := evm.EstimateFees(context.Background(), transport)
			require.NoError(t, err)

			// 1.5 gwei fallback.
			assert.Equal(t, big.NewInt(1_500_000_000), fees.MaxPriorityFeePerGas)
			expected := new(big.Int).Add(gwei(200), big.NewInt(1_500_000_000))
			assert.Equal(t, expected, fees.MaxFeePerGas)
		})
	}
}

func TestEstimateFeesNoBaseFee(t *testing.T) {
	transport := &fakeTransport{responses: map[string]any{
		"eth_blockNumber": "0x100",
		"eth_feeHistory": map[string]any{
			"baseFeePerGas": []string{},
			"reward":        [][]string{},
		},
	}}

	_, err := evm.EstimateFees(context.Background(), transport)
	assert.Error(t, err)
}

func newAdapter(t *testing.T) *evm.Adapter {
	t.Helper()
	st, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return evm.New(registry.NewNetworkRegistry(st), "http://backend.invalid", time.Second)
}

func TestSendNativeRejectsBeforeRPC(t *testing.T) {
	adapter := newAdapter(t)

	tests := []struct {
		name   string
		params chain.SendParams
	}{
		{
			"invalid recipient",
			chain.SendParams{Mnemonic: testPhrase, To: "not-an-address", Amount: "1", Ref: chain.EVM(1)},
		},
		{
			"zero amount",
			chain.SendParams{Mnemonic: testPhrase, To: "0x9858EfFD232B4033E47d90003D41EC34EcaEda94", Amount: "0", Ref: chain.EVM(1)},
		},
		{
			"negative amount",
			chain.SendParams{Mnemonic: testPhrase, To: "0x9858EfFD232B4033E47d90003D41EC34EcaEda94", Amount: "-1", Ref: chain.EVM(1)},
		},
		{
			"garbage amount",
			chain.SendParams{Mnemonic: testPhrase, To: "0x9858EfFD232B4033E47d90003D41EC34EcaEda94", Amount: "1.2.3", Ref: chain.EVM(1)},
		},
		{
			"wrong family",
			chain.SendParams{Mnemonic: testPhrase, To: "0x9858EfFD232B4033E47d90003D41EC34EcaEda94", Amount: "1", Ref: chain.Solana("mainnet")},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// The backend URL is unreachable; these must all fail on local
			// validation without attempting any network call.
			_, err := adapter.SendNative(context.Background(), tc.params)
			assert.Error(t, err)
		})
	}
}

func TestAddressDerivation(t *testing.T) {
	adapter := newAdapter(t)
	address, err := adapter.Address(testPhrase, 0)
	require.NoError(t, err)
	assert.True(t, strings.EqualFold("0x9858EfFD232B4033E47d90003D41EC34EcaEda94", address))
}
