package model

// Transaction direction relative to the queried address.
const (
	DirectionIn   = "in"
	DirectionOut  = "out"
	DirectionSelf = "self"
)

// Asset types reported in transaction history.
const (
	AssetNative  = "native"
	AssetERC20   = "erc20"
	AssetERC721  = "erc721"
	AssetERC1155 = "erc1155"
)

// HistoryItem is one read-only transaction history entry. EVM items come from
// the backend history API; Solana items are reconstructed from the RPC node.
type HistoryItem struct {
	Hash         string `json:"hash"`
	ChainID      int64  `json:"chainId,omitempty"` // unset for non-EVM chains
	Timestamp    string `json:"timestamp"`
	Direction    string `json:"direction"`
	AssetType    string `json:"assetType"`
	From         string `json:"from"`
	To           string `json:"to"`
	Value        string `json:"value"`
	Symbol       string `json:"symbol,omitempty"`
	TokenAddress string `json:"tokenAddress,omitempty"`
	TokenID      string `json:"tokenId,omitempty"`
}

// HistoryPage is one page of transaction history with an optional cursor to
// fetch the next page.
type HistoryPage struct {
	Items      []HistoryItem `json:"items"`
	NextCursor string        `json:"nextPageKey,omitempty"`
}
