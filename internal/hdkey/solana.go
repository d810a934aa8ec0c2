package hdkey

import (
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/pocketvault/walletcore/internal/mnemonic"
)

// SolanaKey is a derived ed25519 keypair. PrivateKey is the full 64-byte
// ed25519 key; Address is the base58 public key.
type SolanaKey struct {
	PrivateKey solana.PrivateKey
	Address    string
}

// Zero scrubs the private key bytes. The key must not be used afterwards.
func (k *SolanaKey) Zero() {
	clear(k.PrivateKey)
}

// DeriveSolana derives the Solana keypair for an account index using the
// SLIP-0010 path m/44'/501'/{accountIndex}'/0' (every segment hardened, as
// ed25519 requires). The first 32 bytes of the derived extended key become
// the ed25519 seed. The mnemonic is checksum-validated before any derivation
// work occurs.
func DeriveSolana(phrase string, accountIndex uint32) (*SolanaKey, error) {
	seed, err := mnemonic.Seed(phrase)
	if err != nil {
		return nil, err
	}
	defer clear(seed)

	path := []uint32{
		44 + hardened,
		501 + hardened,
		accountIndex + hardened,
		hardened,
	}
	key, chainCode := ed25519MasterKey(seed)
	defer clear(chainCode)
	for _, index := range path {
		key, chainCode = ed25519ChildKey(key, chainCode, index)
	}
	defer clear(key)

	privateKey := solana.PrivateKey(ed25519.NewKeyFromSeed(key))
	return &SolanaKey{
		PrivateKey: privateKey,
		Address:    privateKey.PublicKey().String(),
	}, nil
}

// SolanaAddress derives only the base58 address for an account index.
func SolanaAddress(phrase string, accountIndex uint32) (string, error) {
	key, err := DeriveSolana(phrase, accountIndex)
	if err != nil {
		return "", err
	}
	defer key.Zero()
	return key.Address, nil
}

// ed25519MasterKey computes the SLIP-0010 master extended key for the
// ed25519 curve: HMAC-SHA512 over the seed with key "ed25519 seed".
func ed25519MasterKey(seed []byte) (key, chainCode []byte) {
	mac := hmac.New(sha512.New, []byte("ed25519 seed"))
	mac.Write(seed)
	sum := mac.Sum(nil)
	return sum[:32], sum[32:]
}

// ed25519ChildKey derives a hardened child per SLIP-0010. Non-hardened
// derivation is not defined for ed25519.
func ed25519ChildKey(key, chainCode []byte, index uint32) (childKey, childChainCode []byte) {
	if index < hardened {
		panic(fmt.Sprintf("ed25519 derivation requires hardened index, got %d", index))
	}

	data := make([]byte, 0, 1+len(key)+4)
	data = append(data, 0x00)
	data = append(data, key...)
	data = binary.BigEndian.AppendUint32(data, index)

	mac := hmac.New(sha512.New, chainCode)
	mac.Write(data)
	sum := mac.Sum(nil)
	return sum[:32], sum[32:]
}
