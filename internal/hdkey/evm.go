// Package hdkey derives chain-specific keypairs from a mnemonic and account
// index. EVM chains use BIP-32/44 over secp256k1; Solana uses SLIP-0010 over
// ed25519. Derivation is deterministic: the same mnemonic and index always
// yield the same keypair, so private keys are never stored.
package hdkey

import (
	"crypto/ecdsa"
	"fmt"

	ethcommon "github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip32"

	"github.com/pocketvault/walletcore/internal/mnemonic"
)

const hardened = uint32(0x80000000)

// evmPath is m/44'/60'/0'/0/{accountIndex}.
var evmPathPrefix = []uint32{44 + hardened, 60 + hardened, hardened, 0}

// EvmKey is a derived secp256k1 keypair with its checksummed address.
type EvmKey struct {
	PrivateKey *ecdsa.PrivateKey
	Address    ethcommon.Address
}

// Zero scrubs the private scalar. The key must not be used afterwards.
func (k *EvmKey) Zero() {
	if k.PrivateKey != nil {
		k.PrivateKey.D.SetInt64(0)
	}
}

// DeriveEvm derives the EVM keypair for an account index using the path
// m/44'/60'/0'/0/{accountIndex}. The mnemonic is checksum-validated before
// any derivation work occurs.
func DeriveEvm(phrase string, accountIndex uint32) (*EvmKey, error) {
	seed, err := mnemonic.Seed(phrase)
	if err != nil {
		return nil, err
	}
	defer clear(seed)

	masterKey, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, fmt.Errorf("create master key: %w", err)
	}

	key := masterKey
	for _, index := range append(append([]uint32{}, evmPathPrefix...), accountIndex) {
		key, err = key.NewChildKey(index)
		if err != nil {
			return nil, fmt.Errorf("derive child key %d: %w", index, err)
		}
	}

	privateKey, err := ethcrypto.ToECDSA(key.Key)
	if err != nil {
		return nil, fmt.Errorf("convert to ECDSA: %w", err)
	}
	clear(key.Key)

	publicKey, ok := privateKey.Public().(*ecdsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("unexpected public key type")
	}

	return &EvmKey{
		PrivateKey: privateKey,
		Address:    ethcrypto.PubkeyToAddress(*publicKey),
	}, nil
}

// EvmAddress derives only the address for an account index.
func EvmAddress(phrase string, accountIndex uint32) (string, error) {
	key, err := DeriveEvm(phrase, accountIndex)
	if err != nil {
		return "", err
	}
	defer key.Zero()
	return key.Address.Hex(), nil
}
