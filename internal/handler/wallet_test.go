package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketvault/walletcore/internal/api"
	"github.com/pocketvault/walletcore/internal/model"
	"github.com/pocketvault/walletcore/internal/store"
	"github.com/pocketvault/walletcore/wallet"
)

const testPhrase = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	st, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	w := wallet.New(st, "http://backend.invalid", time.Second)
	server := httptest.NewServer(api.SetupRouter(w))
	t.Cleanup(server.Close)
	return server
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestStatusAndCreateFlow(t *testing.T) {
	server := newServer(t)

	resp, err := http.Get(server.URL + "/wallet/status")
	require.NoError(t, err)
	status := decode[model.StatusResponse](t, resp)
	assert.False(t, status.Initialized)

	resp = postJSON(t, server.URL+"/wallet/create", model.CreateWalletRequest{Pin: "123456"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	created := decode[model.CreateWalletResponse](t, resp)
	assert.NotEmpty(t, created.Mnemonic)
	assert.NotEmpty(t, created.EvmAddress)

	resp, err = http.Get(server.URL + "/wallet/status")
	require.NoError(t, err)
	status = decode[model.StatusResponse](t, resp)
	assert.True(t, status.Initialized)
	assert.True(t, status.Unlocked)

	// Creating again conflicts.
	resp = postJSON(t, server.URL+"/wallet/create", model.CreateWalletRequest{Pin: "123456"})
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	resp.Body.Close()
}

func TestUnlockErrors(t *testing.T) {
	server := newServer(t)

	// Empty vault.
	resp := postJSON(t, server.URL+"/wallet/unlock", model.UnlockRequest{Pin: "123456"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	errResp := decode[model.ErrorResponse](t, resp)
	assert.Equal(t, "not_initialized", errResp.Code)

	resp = postJSON(t, server.URL+"/wallet/import", model.ImportWalletRequest{Mnemonic: testPhrase, Pin: "123456"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Wrong PIN.
	resp = postJSON(t, server.URL+"/wallet/unlock", model.UnlockRequest{Pin: "000000"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	errResp = decode[model.ErrorResponse](t, resp)
	assert.Equal(t, "wrong_pin", errResp.Code)
}

func TestImportRejectsBadMnemonic(t *testing.T) {
	server := newServer(t)

	resp := postJSON(t, server.URL+"/wallet/import", model.ImportWalletRequest{Mnemonic: "garbage", Pin: "123456"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errResp := decode[model.ErrorResponse](t, resp)
	assert.Equal(t, "invalid_mnemonic", errResp.Code)
}

func TestAccountsEndpoints(t *testing.T) {
	server := newServer(t)
	resp := postJSON(t, server.URL+"/wallet/import", model.ImportWalletRequest{Mnemonic: testPhrase, Pin: "123456"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, server.URL+"/wallet/accounts", model.AddAccountRequest{Name: "Savings"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	account := decode[model.Account](t, resp)
	assert.Equal(t, uint32(1), account.Index)
	assert.Equal(t, "Savings", account.Name)

	resp, err := http.Get(server.URL + "/wallet/accounts")
	require.NoError(t, err)
	metadata := decode[model.WalletMetadata](t, resp)
	assert.Len(t, metadata.Accounts, 2)

	// Locked wallet cannot derive new accounts.
	lockResp := postJSON(t, server.URL+"/wallet/lock", struct{}{})
	lockResp.Body.Close()
	resp = postJSON(t, server.URL+"/wallet/accounts", model.AddAccountRequest{})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	errResp := decode[model.ErrorResponse](t, resp)
	assert.Equal(t, "locked", errResp.Code)
}

func TestSendValidation(t *testing.T) {
	server := newServer(t)
	resp := postJSON(t, server.URL+"/wallet/import", model.ImportWalletRequest{Mnemonic: testPhrase, Pin: "123456"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	chainID := int64(1)
	resp = postJSON(t, server.URL+"/wallet/send", model.SendRequest{
		To:      "0x9858EfFD232B4033E47d90003D41EC34EcaEda94",
		Amount:  "0",
		ChainID: &chainID,
	})
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	errResp := decode[model.ErrorResponse](t, resp)
	assert.Contains(t, errResp.Error, "greater than zero")
}

func TestMethodGuards(t *testing.T) {
	server := newServer(t)

	resp, err := http.Get(server.URL + "/wallet/create")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
