// Package handler implements the HTTP endpoints over the wallet
// orchestrator. Every response body is JSON; errors use the shared
// model.ErrorResponse shape with a machine-readable code.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/pocketvault/walletcore/internal/log"
	"github.com/pocketvault/walletcore/internal/model"
	"github.com/pocketvault/walletcore/wallet"
)

// WalletHandler serves the wallet API.
type WalletHandler struct {
	wallet *wallet.Wallet
}

// NewWalletHandler creates the handler set.
func NewWalletHandler(w *wallet.Wallet) *WalletHandler {
	return &WalletHandler{wallet: w}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.API.Error().Err(err).Msg("encode response")
	}
}

// writeError maps the error taxonomy to HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	var rpcErr *model.RPCError
	var httpErr *model.HTTPError

	switch {
	case errors.Is(err, model.ErrWrongPin):
		writeJSON(w, http.StatusUnauthorized, model.ErrorResponse{Error: err.Error(), Code: "wrong_pin"})
	case errors.Is(err, model.ErrVaultLocked):
		writeJSON(w, http.StatusUnauthorized, model.ErrorResponse{Error: err.Error(), Code: "locked"})
	case errors.Is(err, model.ErrVaultEmpty):
		writeJSON(w, http.StatusNotFound, model.ErrorResponse{Error: err.Error(), Code: "not_initialized"})
	case errors.Is(err, model.ErrInvalidMnemonic):
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error(), Code: "invalid_mnemonic"})
	case errors.Is(err, model.ErrAccountNotFound):
		writeJSON(w, http.StatusNotFound, model.ErrorResponse{Error: err.Error(), Code: "account_not_found"})
	case errors.Is(err, model.ErrUnknownNetwork):
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error(), Code: "unknown_network"})
	case errors.Is(err, model.ErrChainMismatch):
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error(), Code: "chain_mismatch"})
	case errors.Is(err, model.ErrRPCTimeout):
		writeJSON(w, http.StatusGatewayTimeout, model.ErrorResponse{Error: err.Error(), Code: "rpc_timeout"})
	case errors.As(err, &rpcErr), errors.As(err, &httpErr):
		writeJSON(w, http.StatusBadGateway, model.ErrorResponse{Error: err.Error(), Code: "upstream_error"})
	default:
		writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

func requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		http.Error(w, "Method not allowed. Should be "+method, http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// refFromQuery reads the chainId/network selector query parameters.
func (h *WalletHandler) refFromQuery(w http.ResponseWriter, r *http.Request) (ok bool, chainID *int64, network string) {
	network = r.URL.Query().Get("network")
	if raw := r.URL.Query().Get("chainId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "invalid chainId"})
			return false, nil, ""
		}
		chainID = &id
	}
	return true, chainID, network
}

// Status handles GET /wallet/status
// @Summary      Wallet status
// @Description  Reports whether the wallet is initialized and unlocked
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.StatusResponse
// @Router       /wallet/status [get]
func (h *WalletHandler) Status(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	status, err := h.wallet.Status()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

// Create handles POST /wallet/create
// @Summary      Create wallet
// @Description  Generates a mnemonic, seals it under the PIN and returns it once for backup
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.CreateWalletRequest  true  "PIN"
// @Success      200      {object}  model.CreateWalletResponse
// @Router       /wallet/create [post]
func (h *WalletHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req model.CreateWalletRequest
	if !decodeBody(w, r, &req) {
		return
	}
	resp, err := h.wallet.Create(req.Pin)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Import handles POST /wallet/import
// @Summary      Import wallet
// @Description  Imports an existing mnemonic and seals it under the PIN
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.ImportWalletRequest  true  "Mnemonic and PIN"
// @Success      200      {object}  model.CreateWalletResponse
// @Router       /wallet/import [post]
func (h *WalletHandler) Import(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req model.ImportWalletRequest
	if !decodeBody(w, r, &req) {
		return
	}
	resp, err := h.wallet.Import(req.Mnemonic, req.Pin)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Unlock handles POST /wallet/unlock
// @Summary      Unlock wallet
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.UnlockRequest  true  "PIN"
// @Success      200      {object}  model.StatusResponse
// @Router       /wallet/unlock [post]
func (h *WalletHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req model.UnlockRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.wallet.Unlock(req.Pin); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.StatusResponse{Initialized: true, Unlocked: true})
}

// Lock handles POST /wallet/lock
// @Summary      Lock wallet
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.StatusResponse
// @Router       /wallet/lock [post]
func (h *WalletHandler) Lock(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	h.wallet.Lock()
	writeJSON(w, http.StatusOK, model.StatusResponse{Initialized: true, Unlocked: false})
}

// ChangePin handles POST /wallet/pin/change
// @Summary      Change PIN
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body  model.ChangePinRequest  true  "Old and new PIN"
// @Success      200
// @Router       /wallet/pin/change [post]
func (h *WalletHandler) ChangePin(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req model.ChangePinRequest
	if !decodeBody(w, r, &req) {
		return
	}
	changed, err := h.wallet.ChangePin(req.OldPin, req.NewPin)
	if err != nil {
		writeError(w, err)
		return
	}
	if !changed {
		writeJSON(w, http.StatusUnauthorized, model.ErrorResponse{Error: "wrong pin", Code: "wrong_pin"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"changed": true})
}

// Reset handles POST /wallet/reset
// @Summary      Reset wallet
// @Description  Wipes the vault and account state; irreversible without the mnemonic backup
// @Tags         wallet
// @Produce      json
// @Success      200
// @Router       /wallet/reset [post]
func (h *WalletHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	if err := h.wallet.Reset(); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.StatusResponse{Initialized: false, Unlocked: false})
}

// Accounts handles GET and POST /wallet/accounts
// @Summary      List or add accounts
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Success      200  {object}  model.WalletMetadata
// @Router       /wallet/accounts [get]
func (h *WalletHandler) Accounts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		metadata, err := h.wallet.Accounts()
		if err != nil {
			writeError(w, err)
			return
		}
		if metadata == nil {
			writeError(w, model.ErrVaultEmpty)
			return
		}
		writeJSON(w, http.StatusOK, metadata)
	case http.MethodPost:
		var req model.AddAccountRequest
		if !decodeBody(w, r, &req) {
			return
		}
		account, err := h.wallet.AddAccount(req.Name)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, account)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// SetActiveAccount handles PUT /wallet/accounts/active
// @Summary      Switch active account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        request  body  model.SetActiveAccountRequest  true  "Account index"
// @Success      200
// @Router       /wallet/accounts/active [put]
func (h *WalletHandler) SetActiveAccount(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPut) {
		return
	}
	var req model.SetActiveAccountRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.wallet.SetActiveAccount(req.Index); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]uint32{"activeAccountIndex": req.Index})
}

// ActiveChain handles GET and PUT /wallet/chain
// @Summary      Get or set the active EVM chain
// @Tags         networks
// @Accept       json
// @Produce      json
// @Router       /wallet/chain [get]
func (h *WalletHandler) ActiveChain(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]int64{"chainId": h.wallet.ActiveChainID()})
	case http.MethodPut:
		var req struct {
			ChainID int64 `json:"chainId"`
		}
		if !decodeBody(w, r, &req) {
			return
		}
		if err := h.wallet.SetActiveChainID(req.ChainID); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]int64{"chainId": req.ChainID})
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// CustomRPC handles PUT and DELETE /wallet/networks/custom-rpc
// @Summary      Set or remove a custom RPC override
// @Tags         networks
// @Accept       json
// @Produce      json
// @Param        request  body  model.CustomRPCRequest  true  "Chain id and URL"
// @Success      200
// @Router       /wallet/networks/custom-rpc [put]
func (h *WalletHandler) CustomRPC(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPut:
		var req model.CustomRPCRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if err := h.wallet.SetCustomRPC(req.ChainID, req.URL); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]int64{"chainId": req.ChainID})
	case http.MethodDelete:
		raw := r.URL.Query().Get("chainId")
		chainID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "invalid chainId"})
			return
		}
		if err := h.wallet.RemoveCustomRPC(chainID); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]int64{"chainId": chainID})
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Balance handles GET /wallet/balance
// @Summary      Native balance
// @Description  Native balance of the active account on the selected chain
// @Tags         chain
// @Produce      json
// @Param        chainId  query     int     false  "EVM chain id"
// @Param        network  query     string  false  "Solana cluster name"
// @Success      200      {object}  model.BalanceResponse
// @Router       /wallet/balance [get]
func (h *WalletHandler) Balance(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	ok, chainID, network := h.refFromQuery(w, r)
	if !ok {
		return
	}
	ref, err := h.wallet.ResolveRef(chainID, network)
	if err != nil {
		writeError(w, err)
		return
	}
	balance, err := h.wallet.NativeBalance(r.Context(), ref)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, balance)
}

// TokenBalances handles GET /wallet/tokens
// @Summary      Token balances
// @Description  All catalog token balances of the active account on an EVM chain
// @Tags         chain
// @Produce      json
// @Param        chainId  query  int  false  "EVM chain id"
// @Success      200  {array}  model.TokenBalance
// @Router       /wallet/tokens [get]
func (h *WalletHandler) TokenBalances(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	chainID := h.wallet.ActiveChainID()
	if raw := r.URL.Query().Get("chainId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "invalid chainId"})
			return
		}
		chainID = id
	}
	balances, err := h.wallet.TokenBalances(r.Context(), chainID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, balances)
}

// Send handles POST /wallet/send
// @Summary      Send native currency
// @Tags         chain
// @Accept       json
// @Produce      json
// @Param        request  body      model.SendRequest  true  "Transfer"
// @Success      200      {object}  model.SendResponse
// @Router       /wallet/send [post]
func (h *WalletHandler) Send(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req model.SendRequest
	if !decodeBody(w, r, &req) {
		return
	}
	ref, err := h.wallet.ResolveRef(req.ChainID, req.Network)
	if err != nil {
		writeError(w, err)
		return
	}
	resp, err := h.wallet.Send(r.Context(), ref, req.To, req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// History handles GET /wallet/history
// @Summary      Transaction history
// @Tags         chain
// @Produce      json
// @Param        chainId  query     int     false  "EVM chain id"
// @Param        network  query     string  false  "Solana cluster name"
// @Param        pageKey  query     string  false  "Cursor from the previous page"
// @Success      200      {object}  model.HistoryPage
// @Router       /wallet/history [get]
func (h *WalletHandler) History(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	ok, chainID, network := h.refFromQuery(w, r)
	if !ok {
		return
	}
	ref, err := h.wallet.ResolveRef(chainID, network)
	if err != nil {
		writeError(w, err)
		return
	}
	page, err := h.wallet.History(r.Context(), ref, r.URL.Query().Get("pageKey"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// Receive handles GET /wallet/receive
// @Summary      Receive address
// @Description  Active account address on the selected chain with a QR code (base64 PNG)
// @Tags         chain
// @Produce      json
// @Param        chainId  query     int     false  "EVM chain id"
// @Param        network  query     string  false  "Solana cluster name"
// @Success      200      {object}  model.ReceiveResponse
// @Router       /wallet/receive [get]
func (h *WalletHandler) Receive(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	ok, chainID, network := h.refFromQuery(w, r)
	if !ok {
		return
	}
	ref, err := h.wallet.ResolveRef(chainID, network)
	if err != nil {
		writeError(w, err)
		return
	}
	resp, err := h.wallet.Receive(ref)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
