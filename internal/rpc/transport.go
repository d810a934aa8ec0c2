// Package rpc provides the JSON-RPC transport used by the chain pipelines.
// Two implementations of one interface handle the dual response shape: a
// direct transport speaking the standard JSON-RPC envelope to a node, and a
// proxy transport speaking the backend's {method, params} -> raw result
// protocol. Selection happens where the endpoint is resolved, never inline.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/pocketvault/walletcore/internal/log"
	"github.com/pocketvault/walletcore/internal/model"
)

// DefaultTimeout bounds every RPC call. A call exceeding it is aborted and
// surfaced as model.ErrRPCTimeout, never retried automatically.
const DefaultTimeout = 30 * time.Second

// Transport issues one JSON-RPC method call and returns the raw result.
type Transport interface {
	Call(ctx context.Context, method string, params any) (json.RawMessage, error)
}

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// mapTransportErr converts low-level HTTP failures to the error taxonomy.
func mapTransportErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return model.ErrRPCTimeout
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return model.ErrRPCTimeout
	}
	return err
}

// Direct is a Transport for a standard JSON-RPC endpoint (a custom RPC
// override or a catalog default).
type Direct struct {
	url        string
	httpClient *http.Client
	nextID     atomic.Int64
}

// NewDirect creates a direct transport. A non-positive timeout falls back to
// DefaultTimeout.
func NewDirect(rpcURL string, timeout time.Duration) *Direct {
	return &Direct{url: rpcURL, httpClient: newHTTPClient(timeout)}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int64  `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Call sends a standard {jsonrpc, id, method, params} request.
func (t *Direct) Call(ctx context.Context, method string, params any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      t.nextID.Add(1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal rpc request: %w", err)
	}

	resp, err := t.post(ctx, t.url, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var decoded rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, &model.HTTPError{Status: resp.StatusCode}
		}
		return nil, fmt.Errorf("decode rpc response: %w", err)
	}
	if decoded.Error != nil {
		return nil, &model.RPCError{Code: decoded.Error.Code, Message: decoded.Error.Message}
	}
	return decoded.Result, nil
}

func (t *Direct) post(ctx context.Context, endpoint string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build rpc request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, mapTransportErr(err)
	}
	return resp, nil
}

// Proxy is a Transport routing calls through the backend at
// POST {baseURL}/evm/{chainID}/rpc. The body is {method, params} and the
// response is the bare result value, not a JSON-RPC envelope. Failures carry
// {message} or {error: {message}}.
type Proxy struct {
	baseURL    string
	chainID    int64
	httpClient *http.Client
}

// NewProxy creates a proxy transport for one chain.
func NewProxy(baseURL string, chainID int64, timeout time.Duration) *Proxy {
	return &Proxy{baseURL: baseURL, chainID: chainID, httpClient: newHTTPClient(timeout)}
}

type proxyRequest struct {
	Method string `json:"method"`
	Params any    `json:"params"`
}

type proxyErrorBody struct {
	Message string `json:"message"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Call posts {method, params} and returns the raw result value.
func (t *Proxy) Call(ctx context.Context, method string, params any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}
	body, err := json.Marshal(proxyRequest{Method: method, Params: params})
	if err != nil {
		return nil, fmt.Errorf("marshal proxy request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/evm/%d/rpc", t.baseURL, t.chainID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build proxy request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, mapTransportErr(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var failure proxyErrorBody
		if err := json.NewDecoder(resp.Body).Decode(&failure); err == nil {
			if failure.Error != nil && failure.Error.Message != "" {
				return nil, &model.RPCError{Message: failure.Error.Message}
			}
			if failure.Message != "" {
				return nil, &model.RPCError{Message: failure.Message}
			}
		}
		return nil, &model.HTTPError{Status: resp.StatusCode}
	}

	var result json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode proxy response: %w", err)
	}
	log.RPC.Trace().Str("method", method).Int64("chainId", t.chainID).Msg("proxied rpc call")
	return result, nil
}
