package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketvault/walletcore/internal/model"
	"github.com/pocketvault/walletcore/internal/registry"
	"github.com/pocketvault/walletcore/internal/store"
)

const testPhrase = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func newStore(t *testing.T) *store.FileStore {
	t.Helper()
	st, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return st
}

func TestAccountLifecycle(t *testing.T) {
	r := registry.NewAccountRegistry(newStore(t))

	metadata, err := r.Load()
	require.NoError(t, err)
	assert.Nil(t, metadata)

	metadata, err = r.Initialize(testPhrase)
	require.NoError(t, err)
	require.Len(t, metadata.Accounts, 1)
	assert.Equal(t, uint32(0), metadata.Accounts[0].Index)
	assert.Equal(t, "Account 1", metadata.Accounts[0].Name)
	assert.NotEmpty(t, metadata.Accounts[0].EvmAddress)

	account, err := r.AddAccount(testPhrase, "")
	require.NoError(t, err)
	assert.Equal(t, uint32(1), account.Index)
	assert.Equal(t, "Account 2", account.Name)
	assert.NotEqual(t, metadata.Accounts[0].EvmAddress, account.EvmAddress)

	named, err := r.AddAccount(testPhrase, "Savings")
	require.NoError(t, err)
	assert.Equal(t, uint32(2), named.Index)
	assert.Equal(t, "Savings", named.Name)

	require.NoError(t, r.SetActive(1))
	metadata, err = r.Load()
	require.NoError(t, err)
	assert.Equal(t, uint32(1), metadata.ActiveAccountIndex)

	err = r.SetActive(42)
	assert.ErrorIs(t, err, model.ErrAccountNotFound)
}

func TestResolveActiveStaleIndex(t *testing.T) {
	metadata := &model.WalletMetadata{
		ActiveAccountIndex: 7,
		Accounts: []model.Account{
			{Index: 0, Name: "Account 1"},
			{Index: 1, Name: "Account 2"},
		},
	}
	account := registry.ResolveActive(metadata)
	require.NotNil(t, account)
	assert.Equal(t, uint32(0), account.Index)

	assert.Nil(t, registry.ResolveActive(nil))
	assert.Nil(t, registry.ResolveActive(&model.WalletMetadata{}))
}

func TestActiveChainID(t *testing.T) {
	r := registry.NewAccountRegistry(newStore(t))

	// Absent record falls back to the default chain.
	assert.Equal(t, registry.DefaultChainID, r.ActiveChainID())

	require.NoError(t, r.SetActiveChainID(8453))
	assert.Equal(t, int64(8453), r.ActiveChainID())
}

func TestClear(t *testing.T) {
	r := registry.NewAccountRegistry(newStore(t))
	_, err := r.Initialize(testPhrase)
	require.NoError(t, err)
	require.NoError(t, r.SetActiveChainID(137))

	require.NoError(t, r.Clear())

	metadata, err := r.Load()
	require.NoError(t, err)
	assert.Nil(t, metadata)
	assert.Equal(t, registry.DefaultChainID, r.ActiveChainID())
}

func TestNetworkCatalog(t *testing.T) {
	n := registry.NewNetworkRegistry(newStore(t))

	network, err := n.EvmNetwork(1)
	require.NoError(t, err)
	assert.Equal(t, "Ethereum", network.Name)
	assert.Equal(t, "ETH", network.NativeSymbol)

	_, err = n.EvmNetwork(99999)
	assert.ErrorIs(t, err, model.ErrUnknownNetwork)

	cluster, err := n.SolanaNetwork("")
	require.NoError(t, err)
	assert.Equal(t, "mainnet", cluster.Name)

	_, err = n.SolanaNetwork("testnet9000")
	assert.ErrorIs(t, err, model.ErrUnknownNetwork)
}

func TestCustomRPCOverrides(t *testing.T) {
	n := registry.NewNetworkRegistry(newStore(t))

	_, ok, err := n.CustomRPC(1)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, n.SetCustomRPC(1, "http://localhost:8545"))
	url, ok, err := n.CustomRPC(1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "http://localhost:8545", url)

	// Only catalog chains can be overridden.
	err = n.SetCustomRPC(99999, "http://localhost:8545")
	assert.ErrorIs(t, err, model.ErrUnknownNetwork)

	require.NoError(t, n.RemoveCustomRPC(1))
	_, ok, err = n.CustomRPC(1)
	require.NoError(t, err)
	assert.False(t, ok)
}
