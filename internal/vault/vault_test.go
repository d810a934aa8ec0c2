package vault_test

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/pbkdf2"

	"github.com/pocketvault/walletcore/internal/model"
	"github.com/pocketvault/walletcore/internal/store"
	"github.com/pocketvault/walletcore/internal/vault"
)

const testPhrase = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func newVault(t *testing.T) (*vault.Vault, *store.FileStore) {
	t.Helper()
	st, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return vault.New(st), st
}

func TestSetPinUnlockRoundTrip(t *testing.T) {
	v, _ := newVault(t)

	exists, err := v.HasRecord()
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, v.SetPin(testPhrase, "123456"))

	exists, err = v.HasRecord()
	require.NoError(t, err)
	assert.True(t, exists)

	session, err := v.Unlock("123456")
	require.NoError(t, err)
	assert.Equal(t, testPhrase, session.Mnemonic())
	assert.True(t, session.Active())

	session.Lock()
	assert.False(t, session.Active())
	assert.Empty(t, session.Mnemonic())
}

func TestUnlockWrongPin(t *testing.T) {
	v, _ := newVault(t)
	require.NoError(t, v.SetPin(testPhrase, "123456"))

	_, err := v.Unlock("654321")
	assert.ErrorIs(t, err, model.ErrWrongPin)
}

func TestUnlockEmptyVault(t *testing.T) {
	v, _ := newVault(t)
	_, err := v.Unlock("123456")
	assert.ErrorIs(t, err, model.ErrVaultEmpty)
}

func TestUnlockCorruptedRecord(t *testing.T) {
	v, st := newVault(t)
	require.NoError(t, v.SetPin(testPhrase, "123456"))

	// Flip bytes in the ciphertext: the authenticator must fail and the
	// failure must be indistinguishable from a wrong PIN.
	data, ok, err := st.Get(vault.RecordKey)
	require.NoError(t, err)
	require.True(t, ok)

	var record vault.Record
	require.NoError(t, json.Unmarshal(data, &record))
	ciphertext, err := base64.StdEncoding.DecodeString(record.Ciphertext)
	require.NoError(t, err)
	ciphertext[0] ^= 0xFF
	record.Ciphertext = base64.StdEncoding.EncodeToString(ciphertext)
	mangled, err := json.Marshal(&record)
	require.NoError(t, err)
	require.NoError(t, st.Set(vault.RecordKey, mangled))

	_, err = v.Unlock("123456")
	assert.ErrorIs(t, err, model.ErrWrongPin)
}

func TestUnlockMalformedRecord(t *testing.T) {
	v, st := newVault(t)
	require.NoError(t, st.Set(vault.RecordKey, []byte("not json at all")))

	_, err := v.Unlock("123456")
	assert.ErrorIs(t, err, model.ErrWrongPin)
}

func TestChangePin(t *testing.T) {
	v, _ := newVault(t)
	require.NoError(t, v.SetPin(testPhrase, "123456"))

	changed, err := v.ChangePin("wrong", "999999")
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = v.ChangePin("123456", "999999")
	require.NoError(t, err)
	assert.True(t, changed)

	_, err = v.Unlock("123456")
	assert.ErrorIs(t, err, model.ErrWrongPin)

	session, err := v.Unlock("999999")
	require.NoError(t, err)
	assert.Equal(t, testPhrase, session.Mnemonic())
	session.Lock()
}

func TestWipe(t *testing.T) {
	v, _ := newVault(t)
	require.NoError(t, v.SetPin(testPhrase, "123456"))
	require.NoError(t, v.Wipe())

	exists, err := v.HasRecord()
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = v.Unlock("123456")
	assert.ErrorIs(t, err, model.ErrVaultEmpty)
}

// writeLegacyRecord persists a version-1 XOR record the way the historic
// format did, so the upgrade path can be exercised.
func writeLegacyRecord(t *testing.T, st *store.FileStore, phrase, pin string) {
	t.Helper()

	salt := []byte("0123456789abcdef")
	iterations := 10_000
	key := pbkdf2.Key([]byte(pin), salt, iterations, 32, sha256.New)

	plaintext := []byte(phrase)
	ciphertext := make([]byte, len(plaintext))
	for i, b := range plaintext {
		ciphertext[i] = b ^ key[i%32]
	}

	record := vault.Record{
		Version:       1,
		Salt:          hex.EncodeToString(salt),
		Ciphertext:    base64.StdEncoding.EncodeToString(ciphertext),
		KDFIterations: iterations,
	}
	data, err := json.Marshal(&record)
	require.NoError(t, err)
	require.NoError(t, st.Set(vault.RecordKey, data))
}

func TestLegacyRecordUpgradesOnUnlock(t *testing.T) {
	v, st := newVault(t)
	writeLegacyRecord(t, st, testPhrase, "123456")

	session, err := v.Unlock("123456")
	require.NoError(t, err)
	assert.Equal(t, testPhrase, session.Mnemonic())
	session.Lock()

	// The record must now be in the current format.
	data, ok, err := st.Get(vault.RecordKey)
	require.NoError(t, err)
	require.True(t, ok)
	var record vault.Record
	require.NoError(t, json.Unmarshal(data, &record))
	assert.Equal(t, 2, record.Version)
	assert.Equal(t, vault.KDFIterations, record.KDFIterations)
	assert.NotEmpty(t, record.Nonce)

	// And still unlock with the same PIN.
	session, err = v.Unlock("123456")
	require.NoError(t, err)
	assert.Equal(t, testPhrase, session.Mnemonic())
	session.Lock()
}

func TestLegacyRecordWrongPin(t *testing.T) {
	v, st := newVault(t)
	writeLegacyRecord(t, st, testPhrase, "123456")

	// A wrong PIN decrypts to garbage that fails the checksum validation.
	_, err := v.Unlock("654321")
	assert.ErrorIs(t, err, model.ErrWrongPin)

	// The record must not have been touched.
	data, _, err := st.Get(vault.RecordKey)
	require.NoError(t, err)
	var record vault.Record
	require.NoError(t, json.Unmarshal(data, &record))
	assert.Equal(t, 1, record.Version)
}
