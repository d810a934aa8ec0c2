package model

// Account is one derived wallet account. Index is the derivation index and
// the primary key; indices are never reused.
type Account struct {
	Index      uint32 `json:"index"`
	Name       string `json:"name"`
	EvmAddress string `json:"evmAddress"`
}

// WalletMetadata is the persisted account registry state.
type WalletMetadata struct {
	ActiveAccountIndex uint32    `json:"activeAccountIndex"`
	Accounts           []Account `json:"accounts"`
}
