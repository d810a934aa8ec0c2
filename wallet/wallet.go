// Package wallet is the orchestration layer: it owns the vault session and
// ties key derivation, registries and chain adapters into the operations the
// API exposes. All secret material stays inside this package and below.
package wallet

import (
	"fmt"
	"sync"
	"time"

	"github.com/pocketvault/walletcore/internal/chain"
	"github.com/pocketvault/walletcore/internal/chain/evm"
	"github.com/pocketvault/walletcore/internal/chain/sol"
	"github.com/pocketvault/walletcore/internal/log"
	"github.com/pocketvault/walletcore/internal/mnemonic"
	"github.com/pocketvault/walletcore/internal/model"
	"github.com/pocketvault/walletcore/internal/registry"
	"github.com/pocketvault/walletcore/internal/store"
	"github.com/pocketvault/walletcore/internal/tokens"
	"github.com/pocketvault/walletcore/internal/vault"
)

// Wallet coordinates the vault, account state and chain adapters. One
// instance per installation; safe for concurrent use.
type Wallet struct {
	mu       sync.Mutex
	session  *vault.Session
	vault    *vault.Vault
	accounts *registry.AccountRegistry
	networks *registry.NetworkRegistry
	evm      *evm.Adapter
	sol      *sol.Adapter
	tokens   *tokens.Service
}

// New wires a wallet on top of the given store.
func New(st store.Store, apiBaseURL string, rpcTimeout time.Duration) *Wallet {
	networks := registry.NewNetworkRegistry(st)
	evmAdapter := evm.New(networks, apiBaseURL, rpcTimeout)
	return &Wallet{
		vault:    vault.New(st),
		accounts: registry.NewAccountRegistry(st),
		networks: networks,
		evm:      evmAdapter,
		sol:      sol.New(networks),
		tokens:   tokens.NewService(evmAdapter),
	}
}

// Status reports the vault state: whether a record exists and whether a
// session is active.
func (w *Wallet) Status() (*model.StatusResponse, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	initialized, err := w.vault.HasRecord()
	if err != nil {
		return nil, err
	}
	return &model.StatusResponse{
		Initialized: initialized,
		Unlocked:    w.sessionActive(),
	}, nil
}

func (w *Wallet) sessionActive() bool {
	return w.session != nil && w.session.Active()
}

// phrase returns the unlocked mnemonic or model.ErrVaultLocked. Caller must
// hold w.mu.
func (w *Wallet) phrase() (string, error) {
	if !w.sessionActive() {
		return "", model.ErrVaultLocked
	}
	return w.session.Mnemonic(), nil
}

// Create generates a fresh 12-word mnemonic, seals it under the PIN and
// initializes account 0. The mnemonic is returned exactly once for backup.
func (w *Wallet) Create(pin string) (*model.CreateWalletResponse, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if exists, err := w.vault.HasRecord(); err != nil {
		return nil, err
	} else if exists {
		return nil, fmt.Errorf("wallet already initialized")
	}

	phrase, err := mnemonic.Generate()
	if err != nil {
		return nil, err
	}
	return w.initialize(phrase, pin)
}

// Import seals a user-supplied mnemonic under the PIN and initializes
// account 0. The phrase is checksum-validated before anything persists.
func (w *Wallet) Import(phrase, pin string) (*model.CreateWalletResponse, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if exists, err := w.vault.HasRecord(); err != nil {
		return nil, err
	} else if exists {
		return nil, fmt.Errorf("wallet already initialized")
	}
	if !mnemonic.Validate(phrase) {
		return nil, model.ErrInvalidMnemonic
	}
	return w.initialize(mnemonic.Normalize(phrase), pin)
}

func (w *Wallet) initialize(phrase, pin string) (*model.CreateWalletResponse, error) {
	if err := w.vault.SetPin(phrase, pin); err != nil {
		return nil, err
	}
	metadata, err := w.accounts.Initialize(phrase)
	if err != nil {
		return nil, err
	}

	session, err := w.vault.Unlock(pin)
	if err != nil {
		return nil, err
	}
	w.session = session

	log.Vault.Info().Msg("wallet initialized")
	return &model.CreateWalletResponse{
		Mnemonic:   phrase,
		EvmAddress: metadata.Accounts[0].EvmAddress,
	}, nil
}

// Unlock opens a session with the PIN. Any previous session is locked first.
func (w *Wallet) Unlock(pin string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	session, err := w.vault.Unlock(pin)
	if err != nil {
		return err
	}
	if w.session != nil {
		w.session.Lock()
	}
	w.session = session
	return nil
}

// Lock scrubs the in-memory mnemonic. Idempotent.
func (w *Wallet) Lock() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.session != nil {
		w.session.Lock()
		w.session = nil
	}
}

// ChangePin re-encrypts the vault under a new PIN. Returns false when the
// old PIN does not verify.
func (w *Wallet) ChangePin(oldPin, newPin string) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.vault.ChangePin(oldPin, newPin)
}

// Reset wipes the vault record and all account state. Funds are only
// recoverable from the mnemonic backup.
func (w *Wallet) Reset() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.session != nil {
		w.session.Lock()
		w.session = nil
	}
	if err := w.vault.Wipe(); err != nil {
		return err
	}
	return w.accounts.Clear()
}

// Accounts returns the persisted account metadata.
func (w *Wallet) Accounts() (*model.WalletMetadata, error) {
	return w.accounts.Load()
}

// ActiveAccount resolves the active account, falling back to the first when
// the stored index is stale.
func (w *Wallet) ActiveAccount() (*model.Account, error) {
	metadata, err := w.accounts.Load()
	if err != nil {
		return nil, err
	}
	account := registry.ResolveActive(metadata)
	if account == nil {
		return nil, model.ErrAccountNotFound
	}
	return account, nil
}

// AddAccount derives the next account index. Requires an unlocked session.
func (w *Wallet) AddAccount(name string) (*model.Account, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	phrase, err := w.phrase()
	if err != nil {
		return nil, err
	}
	return w.accounts.AddAccount(phrase, name)
}

// SetActiveAccount switches the active account index.
func (w *Wallet) SetActiveAccount(index uint32) error {
	return w.accounts.SetActive(index)
}

// ActiveChainID returns the persisted active EVM chain id.
func (w *Wallet) ActiveChainID() int64 {
	return w.accounts.ActiveChainID()
}

// SetActiveChainID persists the active EVM chain id after a catalog check.
func (w *Wallet) SetActiveChainID(chainID int64) error {
	if _, err := w.networks.EvmNetwork(chainID); err != nil {
		return err
	}
	return w.accounts.SetActiveChainID(chainID)
}

// SetCustomRPC stores a user RPC override for an EVM chain.
func (w *Wallet) SetCustomRPC(chainID int64, url string) error {
	return w.networks.SetCustomRPC(chainID, url)
}

// RemoveCustomRPC restores the catalog endpoint for an EVM chain.
func (w *Wallet) RemoveCustomRPC(chainID int64) error {
	return w.networks.RemoveCustomRPC(chainID)
}

// ResolveRef maps an API chain selector to a chain reference: a chain id
// picks an EVM chain, a network name picks a Solana cluster, neither falls
// back to the active EVM chain.
func (w *Wallet) ResolveRef(chainID *int64, network string) (chain.Ref, error) {
	if chainID != nil && network != "" {
		return chain.Ref{}, fmt.Errorf("specify chainId or network, not both")
	}
	if network != "" {
		if _, err := w.networks.SolanaNetwork(network); err != nil {
			return chain.Ref{}, err
		}
		return chain.Solana(network), nil
	}
	id := w.accounts.ActiveChainID()
	if chainID != nil {
		id = *chainID
	}
	if _, err := w.networks.EvmNetwork(id); err != nil {
		return chain.Ref{}, err
	}
	return chain.EVM(id), nil
}

// adapterFor dispatches on the reference's family tag.
func (w *Wallet) adapterFor(ref chain.Ref) (chain.Adapter, error) {
	switch ref.Family() {
	case chain.FamilyEVM:
		return w.evm, nil
	case chain.FamilySolana:
		return w.sol, nil
	default:
		return nil, fmt.Errorf("%w: unhandled family %s", model.ErrChainMismatch, ref.Family())
	}
}
