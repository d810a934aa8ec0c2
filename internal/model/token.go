package model

// NativeTokenAddress is the sentinel address for a chain's native asset.
const NativeTokenAddress = "native"

// Token describes a native or fungible asset on one chain.
type Token struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Address  string `json:"address"` // contract address, or "native"
	Decimals uint8  `json:"decimals"`
	IsNative bool   `json:"isNative,omitempty"`
}

// TokenBalance is one entry of an aggregated balance result.
// Balance is the raw integer amount as a decimal string; Formatted is the
// human-readable amount with the token's decimals applied.
type TokenBalance struct {
	Token     Token  `json:"token"`
	Balance   string `json:"balance"`
	Formatted string `json:"formatted"`
}
