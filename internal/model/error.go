package model

import (
	"errors"
	"fmt"
)

// Sentinel errors for the wallet core. Callers match with errors.Is.
var (
	// ErrInvalidMnemonic means a phrase failed BIP-39 checksum validation.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")

	// ErrWrongPin covers both a wrong PIN and a corrupted vault record.
	// The two are deliberately indistinguishable.
	ErrWrongPin = errors.New("vault unlock failed")

	// ErrVaultEmpty means no encrypted record exists yet.
	ErrVaultEmpty = errors.New("vault is empty")

	// ErrVaultLocked means an operation needs the mnemonic but the wallet is locked.
	ErrVaultLocked = errors.New("wallet is locked")

	// ErrAccountNotFound means no account has the requested derivation index.
	ErrAccountNotFound = errors.New("account not found")

	// ErrUnknownNetwork means the chain identifier is in neither the static
	// catalog nor the custom RPC overrides.
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrChainMismatch means an adapter was called with a chain reference of
	// the wrong family. This indicates a caller bug in adapter selection.
	ErrChainMismatch = errors.New("chain identifier family mismatch")

	// ErrRPCTimeout means an RPC call exceeded the configured timeout and was aborted.
	ErrRPCTimeout = errors.New("rpc request timed out")
)

// RPCError is an error reported by the chain node (or proxied backend).
// The node's message is preserved verbatim for the caller.
type RPCError struct {
	Code    int
	Message string
}

func (e *RPCError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
	}
	return "rpc error: " + e.Message
}

// HTTPError is a non-2xx response with no parseable error body.
type HTTPError struct {
	Status int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error: status %d", e.Status)
}
