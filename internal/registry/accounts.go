// Package registry tracks derived accounts and the network catalog with its
// user-supplied RPC overrides. All state lives behind the store contract.
package registry

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pocketvault/walletcore/internal/hdkey"
	"github.com/pocketvault/walletcore/internal/model"
	"github.com/pocketvault/walletcore/internal/store"
)

// Storage keys for the persisted registry records.
const (
	MetadataKey      = "wallet.metadata"
	ActiveChainIDKey = "wallet.activeChainId"
)

// AccountRegistry persists the set of derived accounts and the active one.
type AccountRegistry struct {
	store store.Store
}

// NewAccountRegistry returns a registry backed by the given store.
func NewAccountRegistry(st store.Store) *AccountRegistry {
	return &AccountRegistry{store: st}
}

// Load reads the persisted metadata, or returns (nil, nil) when the wallet
// has not been initialized.
func (r *AccountRegistry) Load() (*model.WalletMetadata, error) {
	data, ok, err := r.store.Get(MetadataKey)
	if err != nil {
		return nil, fmt.Errorf("read wallet metadata: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var metadata model.WalletMetadata
	if err := json.Unmarshal(data, &metadata); err != nil {
		return nil, fmt.Errorf("unmarshal wallet metadata: %w", err)
	}
	return &metadata, nil
}

func (r *AccountRegistry) save(metadata *model.WalletMetadata) error {
	data, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("marshal wallet metadata: %w", err)
	}
	if err := r.store.Set(MetadataKey, data); err != nil {
		return fmt.Errorf("persist wallet metadata: %w", err)
	}
	return nil
}

// Initialize derives account 0's EVM address and persists metadata with one
// account and the active index set to it.
func (r *AccountRegistry) Initialize(mnemonic string) (*model.WalletMetadata, error) {
	address, err := hdkey.EvmAddress(mnemonic, 0)
	if err != nil {
		return nil, err
	}

	metadata := &model.WalletMetadata{
		ActiveAccountIndex: 0,
		Accounts: []model.Account{
			{Index: 0, Name: "Account 1", EvmAddress: address},
		},
	}
	if err := r.save(metadata); err != nil {
		return nil, err
	}
	return metadata, nil
}

// AddAccount derives the next account (max existing index + 1), appends it
// and persists. Indices are never reused.
func (r *AccountRegistry) AddAccount(mnemonic, name string) (*model.Account, error) {
	metadata, err := r.Load()
	if err != nil {
		return nil, err
	}
	if metadata == nil {
		return nil, fmt.Errorf("wallet metadata not found: initialize the wallet first")
	}

	var newIndex uint32
	for _, account := range metadata.Accounts {
		if account.Index >= newIndex {
			newIndex = account.Index + 1
		}
	}

	address, err := hdkey.EvmAddress(mnemonic, newIndex)
	if err != nil {
		return nil, err
	}

	if name == "" {
		name = fmt.Sprintf("Account %d", newIndex+1)
	}
	account := model.Account{Index: newIndex, Name: name, EvmAddress: address}
	metadata.Accounts = append(metadata.Accounts, account)

	if err := r.save(metadata); err != nil {
		return nil, err
	}
	return &account, nil
}

// SetActive persists a new active account index. Fails with
// model.ErrAccountNotFound if no account has that index.
func (r *AccountRegistry) SetActive(index uint32) error {
	metadata, err := r.Load()
	if err != nil {
		return err
	}
	if metadata == nil {
		return model.ErrAccountNotFound
	}

	found := false
	for _, account := range metadata.Accounts {
		if account.Index == index {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: index %d", model.ErrAccountNotFound, index)
	}

	metadata.ActiveAccountIndex = index
	return r.save(metadata)
}

// ResolveActive returns the account matching the active index, falling back
// to the first account when the index is stale. Never fails for a non-empty
// registry.
func ResolveActive(metadata *model.WalletMetadata) *model.Account {
	if metadata == nil || len(metadata.Accounts) == 0 {
		return nil
	}
	for i := range metadata.Accounts {
		if metadata.Accounts[i].Index == metadata.ActiveAccountIndex {
			return &metadata.Accounts[i]
		}
	}
	return &metadata.Accounts[0]
}

// Clear removes all account registry state (wallet reset).
func (r *AccountRegistry) Clear() error {
	if err := r.store.Delete(MetadataKey); err != nil {
		return err
	}
	return r.store.Delete(ActiveChainIDKey)
}

// ActiveChainID reads the persisted active EVM chain id (stored as a bare
// integer string), falling back to the default chain when absent or
// unparseable.
func (r *AccountRegistry) ActiveChainID() int64 {
	data, ok, err := r.store.Get(ActiveChainIDKey)
	if err != nil || !ok {
		return DefaultChainID
	}
	chainID, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return DefaultChainID
	}
	return chainID
}

// SetActiveChainID persists the active EVM chain id.
func (r *AccountRegistry) SetActiveChainID(chainID int64) error {
	return r.store.Set(ActiveChainIDKey, []byte(strconv.FormatInt(chainID, 10)))
}
