package model

// Request/response shapes for the HTTP API.

// CreateWalletRequest is the body for POST /wallet/create.
type CreateWalletRequest struct {
	Pin string `json:"pin"`
}

// CreateWalletResponse returns the freshly generated mnemonic exactly once,
// for the user to back up. It is never persisted in the clear.
type CreateWalletResponse struct {
	Mnemonic   string `json:"mnemonic"`
	EvmAddress string `json:"evmAddress"`
}

// ImportWalletRequest is the body for POST /wallet/import.
type ImportWalletRequest struct {
	Mnemonic string `json:"mnemonic"`
	Pin      string `json:"pin"`
}

// UnlockRequest is the body for POST /wallet/unlock.
type UnlockRequest struct {
	Pin string `json:"pin"`
}

// ChangePinRequest is the body for POST /wallet/pin/change.
type ChangePinRequest struct {
	OldPin string `json:"oldPin"`
	NewPin string `json:"newPin"`
}

// AddAccountRequest is the body for POST /wallet/accounts.
type AddAccountRequest struct {
	Name string `json:"name,omitempty"`
}

// SetActiveAccountRequest is the body for PUT /wallet/accounts/active.
type SetActiveAccountRequest struct {
	Index uint32 `json:"index"`
}

// SendRequest is the body for POST /wallet/send. Exactly one of ChainID or
// Network selects the chain family.
type SendRequest struct {
	To      string `json:"to"`
	Amount  string `json:"amount"`
	ChainID *int64 `json:"chainId,omitempty"`
	Network string `json:"network,omitempty"`
}

// SendResponse returns the broadcast transaction hash or signature.
type SendResponse struct {
	TxHash string `json:"txHash"`
}

// BalanceResponse is the native balance of an address in whole units.
type BalanceResponse struct {
	Address string `json:"address"`
	Balance string `json:"balance"`
	Symbol  string `json:"symbol"`
}

// ReceiveResponse carries the receive address and its QR code as base64 PNG.
type ReceiveResponse struct {
	Address string `json:"address"`
	QR      string `json:"qr"`
}

// CustomRPCRequest is the body for PUT /wallet/networks/custom-rpc.
type CustomRPCRequest struct {
	ChainID int64  `json:"chainId"`
	URL     string `json:"url"`
}

// StatusResponse reports the vault state machine position.
type StatusResponse struct {
	Initialized bool `json:"initialized"`
	Unlocked    bool `json:"unlocked"`
}

// ErrorResponse is the consistent JSON structure for all API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
