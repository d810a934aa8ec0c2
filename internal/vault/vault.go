// Package vault encrypts the mnemonic at rest behind a user PIN. The key is
// derived with PBKDF2-HMAC-SHA256 (deliberately slow) and the phrase sealed
// with NaCl secretbox, an authenticated construction: a wrong PIN fails the
// authenticator and nothing decrypts.
package vault

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/pbkdf2"

	"github.com/pocketvault/walletcore/internal/log"
	"github.com/pocketvault/walletcore/internal/mnemonic"
	"github.com/pocketvault/walletcore/internal/model"
	"github.com/pocketvault/walletcore/internal/store"
)

const (
	// RecordKey is the storage key of the encrypted vault record.
	RecordKey = "wallet.mnemonic.enc"

	// KDFIterations is the default PBKDF2 iteration count for new records.
	// Stored with each record so raising this later does not break old vaults.
	KDFIterations = 200_000

	keyLen   = 32
	saltLen  = 16
	nonceLen = 24

	// Record versions. Version 1 is the historic unauthenticated XOR scheme,
	// decryptable on read and upgraded in place. Version 2 is the current
	// secretbox format; records without a version field are treated as v2,
	// matching the persisted shape before the field existed.
	versionLegacyXOR = 1
	versionSecretbox = 2
)

// Record is the persisted encrypted vault record. One per installation.
type Record struct {
	Version       int    `json:"version,omitempty"`
	Salt          string `json:"salt"`       // hex, 16 bytes
	Nonce         string `json:"nonce"`      // hex, 24 bytes
	Ciphertext    string `json:"ciphertext"` // base64
	KDFIterations int    `json:"kdfIterations"`
}

// Vault owns the PIN lifecycle: set, unlock, change, wipe.
type Vault struct {
	store store.Store
}

// New returns a vault backed by the given store.
func New(st store.Store) *Vault {
	return &Vault{store: st}
}

// HasRecord reports whether an encrypted record exists (Locked vs Empty).
func (v *Vault) HasRecord() (bool, error) {
	_, ok, err := v.store.Get(RecordKey)
	return ok, err
}

// SetPin encrypts the mnemonic under a key derived from the PIN and persists
// the record. Transitions Empty -> Locked.
func (v *Vault) SetPin(phrase, pin string) error {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return fmt.Errorf("generate salt: %w", err)
	}
	var nonce [nonceLen]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return fmt.Errorf("generate nonce: %w", err)
	}

	key := deriveKey(pin, salt, KDFIterations)
	defer clear(key[:])

	plaintext := []byte(phrase)
	ciphertext := secretbox.Seal(nil, plaintext, &nonce, key)
	clear(plaintext)

	record := Record{
		Version:       versionSecretbox,
		Salt:          hex.EncodeToString(salt),
		Nonce:         hex.EncodeToString(nonce[:]),
		Ciphertext:    base64.StdEncoding.EncodeToString(ciphertext),
		KDFIterations: KDFIterations,
	}
	data, err := json.Marshal(&record)
	if err != nil {
		return fmt.Errorf("marshal vault record: %w", err)
	}
	if err := v.store.Set(RecordKey, data); err != nil {
		return fmt.Errorf("persist vault record: %w", err)
	}

	log.Vault.Debug().Int("kdfIterations", KDFIterations).Msg("vault record written")
	return nil
}

// Unlock re-derives the key from the stored salt and supplied PIN, using the
// iteration count stored in the record, and attempts authenticated
// decryption. A wrong PIN, a corrupted record and a malformed record all
// return model.ErrWrongPin: distinguishing them would leak information to an
// attacker probing stored data. Returns model.ErrVaultEmpty when no record
// exists.
func (v *Vault) Unlock(pin string) (*Session, error) {
	phrase, err := v.open(pin)
	if err != nil {
		return nil, err
	}
	defer clear(phrase)
	return newSession(phrase), nil
}

func (v *Vault) open(pin string) ([]byte, error) {
	data, ok, err := v.store.Get(RecordKey)
	if err != nil {
		return nil, fmt.Errorf("read vault record: %w", err)
	}
	if !ok {
		return nil, model.ErrVaultEmpty
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, model.ErrWrongPin
	}

	switch record.Version {
	case versionLegacyXOR:
		return v.openLegacy(&record, pin)
	default:
		return openSecretbox(&record, pin)
	}
}

func openSecretbox(record *Record, pin string) ([]byte, error) {
	salt, err := hex.DecodeString(record.Salt)
	if err != nil || len(salt) != saltLen {
		return nil, model.ErrWrongPin
	}
	nonceBytes, err := hex.DecodeString(record.Nonce)
	if err != nil || len(nonceBytes) != nonceLen {
		return nil, model.ErrWrongPin
	}
	ciphertext, err := base64.StdEncoding.DecodeString(record.Ciphertext)
	if err != nil {
		return nil, model.ErrWrongPin
	}
	if record.KDFIterations <= 0 {
		return nil, model.ErrWrongPin
	}

	key := deriveKey(pin, salt, record.KDFIterations)
	defer clear(key[:])

	var nonce [nonceLen]byte
	copy(nonce[:], nonceBytes)

	plaintext, ok := secretbox.Open(nil, ciphertext, &nonce, key)
	if !ok {
		return nil, model.ErrWrongPin
	}
	return plaintext, nil
}

// openLegacy decrypts a version-1 record (unauthenticated XOR keystream).
// The scheme has no authenticator, so the BIP-39 checksum of the decrypted
// phrase serves as the verification. On success the record is upgraded in
// place to the secretbox format under the same PIN; the user has already
// re-authenticated by supplying it.
func (v *Vault) openLegacy(record *Record, pin string) ([]byte, error) {
	salt, err := hex.DecodeString(record.Salt)
	if err != nil {
		return nil, model.ErrWrongPin
	}
	ciphertext, err := base64.StdEncoding.DecodeString(record.Ciphertext)
	if err != nil {
		return nil, model.ErrWrongPin
	}
	if record.KDFIterations <= 0 {
		return nil, model.ErrWrongPin
	}

	key := deriveKey(pin, salt, record.KDFIterations)
	defer clear(key[:])

	plaintext := make([]byte, len(ciphertext))
	for i, b := range ciphertext {
		plaintext[i] = b ^ key[i%keyLen]
	}

	if !mnemonic.Validate(string(plaintext)) {
		clear(plaintext)
		return nil, model.ErrWrongPin
	}

	if err := v.SetPin(string(plaintext), pin); err != nil {
		clear(plaintext)
		return nil, fmt.Errorf("upgrade legacy vault record: %w", err)
	}
	log.Vault.Info().Msg("legacy vault record upgraded")
	return plaintext, nil
}

// ChangePin re-encrypts the mnemonic under a fresh salt, nonce and the new
// PIN, replacing the record wholesale. Returns false without side effects if
// the old PIN is wrong.
func (v *Vault) ChangePin(oldPin, newPin string) (bool, error) {
	phrase, err := v.open(oldPin)
	if errors.Is(err, model.ErrWrongPin) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	defer clear(phrase)

	if err := v.SetPin(string(phrase), newPin); err != nil {
		return false, err
	}
	return true, nil
}

// Wipe deletes the record. Irreversible; transitions to Empty.
func (v *Vault) Wipe() error {
	if err := v.store.Delete(RecordKey); err != nil {
		return fmt.Errorf("wipe vault: %w", err)
	}
	log.Vault.Info().Msg("vault wiped")
	return nil
}

func deriveKey(pin string, salt []byte, iterations int) *[keyLen]byte {
	derived := pbkdf2.Key([]byte(pin), salt, iterations, keyLen, sha256.New)
	var key [keyLen]byte
	copy(key[:], derived)
	clear(derived)
	return &key
}
