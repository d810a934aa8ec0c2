package registry

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pocketvault/walletcore/internal/model"
	"github.com/pocketvault/walletcore/internal/store"
)

// CustomRPCKey is the storage key of the chain-id keyed override map.
const CustomRPCKey = "wallet.customRpc"

// DefaultChainID is Ethereum mainnet.
const DefaultChainID int64 = 1

// EvmNetwork is a static catalog entry for an EVM chain.
type EvmNetwork struct {
	ChainID      int64  `json:"chainId"`
	Name         string `json:"name"`
	RPCURL       string `json:"rpcUrl"`
	NativeSymbol string `json:"nativeSymbol"`
}

// SolanaNetwork is a static catalog entry for a Solana cluster, keyed by name.
type SolanaNetwork struct {
	Name         string `json:"networkName"`
	RPCURL       string `json:"rpcUrl"`
	NativeSymbol string `json:"nativeSymbol"`
}

// Static catalogs. Extendable only by redeploying; user-supplied custom RPC
// URLs override the EVM entries at resolution time.
var evmNetworks = map[int64]EvmNetwork{
	1:        {ChainID: 1, Name: "Ethereum", RPCURL: "https://eth.llamarpc.com", NativeSymbol: "ETH"},
	8453:     {ChainID: 8453, Name: "Base", RPCURL: "https://base.llamarpc.com", NativeSymbol: "ETH"},
	42161:    {ChainID: 42161, Name: "Arbitrum", RPCURL: "https://arb1.arbitrum.io/rpc", NativeSymbol: "ETH"},
	137:      {ChainID: 137, Name: "Polygon", RPCURL: "https://polygon.llamarpc.com", NativeSymbol: "MATIC"},
	11155111: {ChainID: 11155111, Name: "Sepolia", RPCURL: "https://rpc.sepolia.org", NativeSymbol: "ETH"},
}

var solanaNetworks = map[string]SolanaNetwork{
	"mainnet": {Name: "mainnet", RPCURL: "https://api.mainnet-beta.solana.com", NativeSymbol: "SOL"},
	"devnet":  {Name: "devnet", RPCURL: "https://api.devnet.solana.com", NativeSymbol: "SOL"},
}

// NetworkRegistry resolves chain endpoints, consulting user overrides before
// the static catalog.
type NetworkRegistry struct {
	store store.Store
}

// NewNetworkRegistry returns a registry backed by the given store.
func NewNetworkRegistry(st store.Store) *NetworkRegistry {
	return &NetworkRegistry{store: st}
}

// EvmNetwork looks up a static EVM catalog entry.
func (r *NetworkRegistry) EvmNetwork(chainID int64) (EvmNetwork, error) {
	network, ok := evmNetworks[chainID]
	if !ok {
		return EvmNetwork{}, fmt.Errorf("%w: chain id %d", model.ErrUnknownNetwork, chainID)
	}
	return network, nil
}

// EvmChainIDs returns the catalog's chain ids.
func (r *NetworkRegistry) EvmChainIDs() []int64 {
	ids := make([]int64, 0, len(evmNetworks))
	for id := range evmNetworks {
		ids = append(ids, id)
	}
	return ids
}

// SolanaNetwork looks up a Solana cluster by name, defaulting to mainnet
// when the name is empty.
func (r *NetworkRegistry) SolanaNetwork(name string) (SolanaNetwork, error) {
	if name == "" {
		name = "mainnet"
	}
	network, ok := solanaNetworks[name]
	if !ok {
		return SolanaNetwork{}, fmt.Errorf("%w: solana network %q", model.ErrUnknownNetwork, name)
	}
	return network, nil
}

func (r *NetworkRegistry) loadOverrides() (map[string]string, error) {
	data, ok, err := r.store.Get(CustomRPCKey)
	if err != nil {
		return nil, fmt.Errorf("read custom rpc overrides: %w", err)
	}
	overrides := map[string]string{}
	if !ok {
		return overrides, nil
	}
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("unmarshal custom rpc overrides: %w", err)
	}
	return overrides, nil
}

// CustomRPC returns the user-supplied RPC URL for a chain, if one is set.
func (r *NetworkRegistry) CustomRPC(chainID int64) (string, bool, error) {
	overrides, err := r.loadOverrides()
	if err != nil {
		return "", false, err
	}
	url, ok := overrides[strconv.FormatInt(chainID, 10)]
	return url, ok && url != "", nil
}

// SetCustomRPC stores an override. Only EVM chain ids present in the static
// catalog can be overridden.
func (r *NetworkRegistry) SetCustomRPC(chainID int64, url string) error {
	if _, ok := evmNetworks[chainID]; !ok {
		return fmt.Errorf("%w: chain id %d", model.ErrUnknownNetwork, chainID)
	}
	overrides, err := r.loadOverrides()
	if err != nil {
		return err
	}
	overrides[strconv.FormatInt(chainID, 10)] = url
	data, err := json.Marshal(overrides)
	if err != nil {
		return fmt.Errorf("marshal custom rpc overrides: %w", err)
	}
	return r.store.Set(CustomRPCKey, data)
}

// RemoveCustomRPC deletes an override, restoring the default endpoint.
func (r *NetworkRegistry) RemoveCustomRPC(chainID int64) error {
	overrides, err := r.loadOverrides()
	if err != nil {
		return err
	}
	delete(overrides, strconv.FormatInt(chainID, 10))
	data, err := json.Marshal(overrides)
	if err != nil {
		return fmt.Errorf("marshal custom rpc overrides: %w", err)
	}
	return r.store.Set(CustomRPCKey, data)
}
