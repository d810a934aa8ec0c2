package evm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pocketvault/walletcore/internal/chain"
	"github.com/pocketvault/walletcore/internal/model"
)

const historyPageSize = 20

type historyResponse struct {
	Items       []model.HistoryItem `json:"items"`
	NextPageKey string              `json:"nextPageKey"`
}

// TxHistory fetches one page of indexed transaction history from the backend
// at GET {base}/evm/{chainId}/tx-history. An empty cursor means the first
// page; the returned cursor is opaque and only valid for the same chain and
// address.
func (a *Adapter) TxHistory(ctx context.Context, address, cursor string, ref chain.Ref) (*model.HistoryPage, error) {
	if err := ref.RequireFamily(chain.FamilyEVM); err != nil {
		return nil, err
	}
	if !validAddress(address) {
		return nil, fmt.Errorf("invalid address %q", address)
	}
	chainID := ref.ChainID()
	if _, err := a.networks.EvmNetwork(chainID); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("address", address)
	query.Set("pageSize", strconv.Itoa(historyPageSize))
	if cursor != "" {
		query.Set("pageKey", cursor)
	}
	endpoint := fmt.Sprintf("%s/evm/%d/tx-history?%s", a.apiBaseURL, chainID, query.Encode())

	callCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build history request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, mapHistoryErr(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &model.HTTPError{Status: resp.StatusCode}
	}

	var decoded historyResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode history response: %w", err)
	}

	items := decoded.Items
	if items == nil {
		items = []model.HistoryItem{}
	}
	return &model.HistoryPage{Items: items, NextCursor: decoded.NextPageKey}, nil
}

func mapHistoryErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return model.ErrRPCTimeout
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return model.ErrRPCTimeout
	}
	return err
}
