// Package tokens holds the static token catalog and the balance service
// that reads ERC-20 balances with cached metadata.
package tokens

import "github.com/pocketvault/walletcore/internal/model"

// Static per-chain token lists. The native entry always comes first; the
// ERC-20 entries double as the metadata fallback when on-chain reads fail.
var tokenCatalog = map[int64][]model.Token{
	1: {
		{Symbol: "ETH", Name: "Ether", Address: model.NativeTokenAddress, Decimals: 18, IsNative: true},
		{Symbol: "USDC", Name: "USD Coin", Address: "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", Decimals: 6},
		{Symbol: "USDT", Name: "Tether USD", Address: "0xdAC17F958D2ee523a2206206994597C13D831ec7", Decimals: 6},
		{Symbol: "DAI", Name: "Dai Stablecoin", Address: "0x6B175474E89094C44Da98b954EedeAC495271d0F", Decimals: 18},
		{Symbol: "WETH", Name: "Wrapped Ether", Address: "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2", Decimals: 18},
	},
	8453: {
		{Symbol: "ETH", Name: "Ether", Address: model.NativeTokenAddress, Decimals: 18, IsNative: true},
		{Symbol: "USDC", Name: "USD Coin", Address: "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913", Decimals: 6},
		{Symbol: "WETH", Name: "Wrapped Ether", Address: "0x4200000000000000000000000000000000000006", Decimals: 18},
	},
	42161: {
		{Symbol: "ETH", Name: "Ether", Address: model.NativeTokenAddress, Decimals: 18, IsNative: true},
		{Symbol: "USDC", Name: "USD Coin", Address: "0xaf88d065e77c8cC2239327C5EDb3A432268e5831", Decimals: 6},
		{Symbol: "WETH", Name: "Wrapped Ether", Address: "0x82aF49447D8a07e3bd95BD0d56f35241523fBab1", Decimals: 18},
	},
	137: {
		{Symbol: "MATIC", Name: "Polygon", Address: model.NativeTokenAddress, Decimals: 18, IsNative: true},
		{Symbol: "USDC", Name: "USD Coin", Address: "0x3c499c542cEF5E3811e1192ce70d8cC03d5c3359", Decimals: 6},
		{Symbol: "WETH", Name: "Wrapped Ether", Address: "0x7ceB23fD6bC0adD59E62ac25578270cFf1b9f619", Decimals: 18},
	},
	11155111: {
		{Symbol: "ETH", Name: "Sepolia Ether", Address: model.NativeTokenAddress, Decimals: 18, IsNative: true},
	},
}

// Catalog returns the token list for a chain. Unknown chains get an empty
// list, not an error: the chain may still serve native balance queries.
func Catalog(chainID int64) []model.Token {
	list := tokenCatalog[chainID]
	out := make([]model.Token, len(list))
	copy(out, list)
	return out
}

// CatalogToken finds a catalog entry by address.
func CatalogToken(chainID int64, address string) (model.Token, bool) {
	for _, token := range tokenCatalog[chainID] {
		if token.Address == address {
			return token, true
		}
	}
	return model.Token{}, false
}
