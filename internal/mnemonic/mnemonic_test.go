package mnemonic_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketvault/walletcore/internal/mnemonic"
	"github.com/pocketvault/walletcore/internal/model"
)

const testPhrase = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestGenerate(t *testing.T) {
	phrase, err := mnemonic.Generate()
	require.NoError(t, err)
	assert.Len(t, strings.Fields(phrase), 12)
	assert.True(t, mnemonic.Validate(phrase))

	other, err := mnemonic.Generate()
	require.NoError(t, err)
	assert.NotEqual(t, phrase, other)
}

func TestGenerate24(t *testing.T) {
	phrase, err := mnemonic.Generate24()
	require.NoError(t, err)
	assert.Len(t, strings.Fields(phrase), 24)
	assert.True(t, mnemonic.Validate(phrase))
}

func TestValidateNormalizes(t *testing.T) {
	assert.True(t, mnemonic.Validate(testPhrase))
	assert.True(t, mnemonic.Validate("  "+strings.ToUpper(testPhrase)+"  "))
	assert.True(t, mnemonic.Validate(strings.ReplaceAll(testPhrase, " ", "   ")))
}

func TestValidateRejectsBadPhrases(t *testing.T) {
	// Swapping two words breaks the checksum.
	words := strings.Fields(testPhrase)
	words[10], words[11] = words[11], words[10]
	assert.False(t, mnemonic.Validate(strings.Join(words, " ")))

	assert.False(t, mnemonic.Validate(""))
	assert.False(t, mnemonic.Validate("not a mnemonic at all"))
	assert.False(t, mnemonic.Validate(strings.Join(words[:11], " ")))
}

func TestSeed(t *testing.T) {
	seed, err := mnemonic.Seed(testPhrase)
	require.NoError(t, err)
	assert.Len(t, seed, 64)

	// Same phrase, same seed.
	again, err := mnemonic.Seed("  " + testPhrase)
	require.NoError(t, err)
	assert.Equal(t, seed, again)

	_, err = mnemonic.Seed("twelve bogus words that do not pass the bip39 checksum at all")
	assert.ErrorIs(t, err, model.ErrInvalidMnemonic)
}
