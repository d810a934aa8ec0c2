package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketvault/walletcore/internal/model"
)

func TestHistoryItemChainIDSerialization(t *testing.T) {
	// Solana items carry no EVM chain id; the field must vanish instead of
	// serializing as a bogus chain 0.
	solItem := model.HistoryItem{
		Hash:      "5sig",
		Direction: model.DirectionIn,
		AssetType: model.AssetNative,
		Value:     "1.000000000",
		Symbol:    "SOL",
	}
	data, err := json.Marshal(solItem)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "chainId")

	evmItem := model.HistoryItem{
		Hash:      "0xabc",
		ChainID:   8453,
		Direction: model.DirectionOut,
		AssetType: model.AssetNative,
		Value:     "1.5",
		Symbol:    "ETH",
	}
	data, err = json.Marshal(evmItem)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"chainId":8453`)
}

func TestHistoryPageCursorOmitted(t *testing.T) {
	data, err := json.Marshal(model.HistoryPage{Items: []model.HistoryItem{}})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "nextPageKey")
}
