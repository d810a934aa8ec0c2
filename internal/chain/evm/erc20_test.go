package evm_test

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketvault/walletcore/internal/chain/evm"
	"github.com/pocketvault/walletcore/internal/registry"
	"github.com/pocketvault/walletcore/internal/store"
)

const (
	ownerAddress = "0x9858EfFD232B4033E47d90003D41EC34EcaEda94"
	usdcAddress  = "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
)

// Four-byte function selectors of the ERC-20 read calls.
const (
	selectorBalanceOf = "0x70a08231"
	selectorDecimals  = "0x313ce567"
	selectorSymbol    = "0x95d89b41"
)

func pad32Left(hexDigits string) string {
	return strings.Repeat("0", 64-len(hexDigits)) + hexDigits
}

// erc20Server answers proxied eth_call requests for the three read methods,
// checking the ABI-encoded call data on the way in.
func erc20Server(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/evm/1/rpc", r.URL.Path)

		var req struct {
			Method string          `json:"method"`
			Params json.RawMessage `json:"params"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "eth_call", req.Method)

		var params []json.RawMessage
		require.NoError(t, json.Unmarshal(req.Params, &params))
		require.Len(t, params, 2)

		var call map[string]string
		require.NoError(t, json.Unmarshal(params[0], &call))
		assert.Equal(t, usdcAddress, call["to"])

		var block string
		require.NoError(t, json.Unmarshal(params[1], &block))
		assert.Equal(t, "latest", block)

		data := call["data"]
		require.GreaterOrEqual(t, len(data), 10)

		var result string
		switch data[:10] {
		case selectorBalanceOf:
			// Selector followed by the owner address left-padded to 32 bytes.
			expected := selectorBalanceOf + pad32Left(strings.ToLower(ownerAddress[2:]))
			assert.Equal(t, expected, data)
			result = "0x" + pad32Left("f") // 15
		case selectorDecimals:
			assert.Equal(t, selectorDecimals, data)
			result = "0x" + pad32Left("6")
		case selectorSymbol:
			assert.Equal(t, selectorSymbol, data)
			// ABI string encoding: offset, length, then the bytes of "USDC"
			// right-padded to a word.
			result = "0x" + pad32Left("20") + pad32Left("4") + "55534443" + strings.Repeat("0", 56)
		default:
			t.Fatalf("unexpected call data %s", data)
		}
		json.NewEncoder(w).Encode(result)
	}))
	t.Cleanup(server.Close)
	return server
}

func erc20Adapter(t *testing.T, baseURL string) *evm.Adapter {
	t.Helper()
	st, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return evm.New(registry.NewNetworkRegistry(st), baseURL, time.Second)
}

func TestTokenBalanceOf(t *testing.T) {
	adapter := erc20Adapter(t, erc20Server(t).URL)

	balance, err := adapter.TokenBalanceOf(context.Background(), 1, usdcAddress, ownerAddress)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(15), balance)
}

func TestTokenDecimals(t *testing.T) {
	adapter := erc20Adapter(t, erc20Server(t).URL)

	decimals, err := adapter.TokenDecimals(context.Background(), 1, usdcAddress)
	require.NoError(t, err)
	assert.Equal(t, uint8(6), decimals)
}

func TestTokenSymbol(t *testing.T) {
	adapter := erc20Adapter(t, erc20Server(t).URL)

	symbol, err := adapter.TokenSymbol(context.Background(), 1, usdcAddress)
	require.NoError(t, err)
	assert.Equal(t, "USDC", symbol)
}

func TestTokenBalanceOfRejectsBadAddresses(t *testing.T) {
	adapter := erc20Adapter(t, erc20Server(t).URL)

	_, err := adapter.TokenBalanceOf(context.Background(), 1, "not-a-contract", ownerAddress)
	assert.Error(t, err)

	_, err = adapter.TokenBalanceOf(context.Background(), 1, usdcAddress, "not-an-owner")
	assert.Error(t, err)
}
