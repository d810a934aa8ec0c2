package hdkey_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketvault/walletcore/internal/hdkey"
	"github.com/pocketvault/walletcore/internal/model"
)

const testPhrase = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestDeriveEvmKnownVector(t *testing.T) {
	// Well-known address for the all-abandon test mnemonic at m/44'/60'/0'/0/0.
	address, err := hdkey.EvmAddress(testPhrase, 0)
	require.NoError(t, err)
	assert.Equal(t,
		strings.ToLower("0x9858EfFD232B4033E47d90003D41EC34EcaEda94"),
		strings.ToLower(address),
	)
}

func TestDeriveEvmDeterministicAndDistinct(t *testing.T) {
	first, err := hdkey.EvmAddress(testPhrase, 0)
	require.NoError(t, err)
	again, err := hdkey.EvmAddress(testPhrase, 0)
	require.NoError(t, err)
	assert.Equal(t, first, again)

	second, err := hdkey.EvmAddress(testPhrase, 1)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestDeriveEvmRejectsInvalidMnemonic(t *testing.T) {
	_, err := hdkey.DeriveEvm("definitely not a valid phrase", 0)
	assert.ErrorIs(t, err, model.ErrInvalidMnemonic)
}

func TestDeriveSolanaDeterministicAndDistinct(t *testing.T) {
	first, err := hdkey.SolanaAddress(testPhrase, 0)
	require.NoError(t, err)
	again, err := hdkey.SolanaAddress(testPhrase, 0)
	require.NoError(t, err)
	assert.Equal(t, first, again)

	second, err := hdkey.SolanaAddress(testPhrase, 1)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	// Solana and EVM addresses for the same index are unrelated.
	evmAddr, err := hdkey.EvmAddress(testPhrase, 0)
	require.NoError(t, err)
	assert.NotEqual(t, evmAddr, first)
}

func TestDeriveSolanaKeyShape(t *testing.T) {
	key, err := hdkey.DeriveSolana(testPhrase, 0)
	require.NoError(t, err)
	defer key.Zero()

	assert.Len(t, []byte(key.PrivateKey), 64)
	assert.Equal(t, key.PrivateKey.PublicKey().String(), key.Address)
}

func TestZeroScrubsKey(t *testing.T) {
	key, err := hdkey.DeriveSolana(testPhrase, 0)
	require.NoError(t, err)
	key.Zero()
	for _, b := range []byte(key.PrivateKey) {
		require.Zero(t, b)
	}
}
