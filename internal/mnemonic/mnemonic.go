// Package mnemonic implements the BIP-39 engine: generation and checksum
// validation of the wallet's root secret phrase.
package mnemonic

import (
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39"

	"github.com/pocketvault/walletcore/internal/model"
)

// Entropy sizes for the two supported phrase lengths.
const (
	EntropyBits12Words = 128
	EntropyBits24Words = 256
)

// Generate creates a new 12-word BIP-39 mnemonic from the standard English
// wordlist using cryptographically random entropy.
func Generate() (string, error) {
	return generate(EntropyBits12Words)
}

// Generate24 creates a 24-word mnemonic for users who want the longer phrase.
func Generate24() (string, error) {
	return generate(EntropyBits24Words)
}

func generate(entropyBits int) (string, error) {
	entropy, err := bip39.NewEntropy(entropyBits)
	if err != nil {
		return "", fmt.Errorf("generate entropy: %w", err)
	}
	phrase, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("generate mnemonic: %w", err)
	}
	return phrase, nil
}

// Validate checksum-validates a candidate phrase after trimming and
// lower-casing. Word-order errors, misspellings and wrong word counts all
// fail the checksum.
func Validate(candidate string) bool {
	return bip39.IsMnemonicValid(Normalize(candidate))
}

// Normalize trims surrounding whitespace, lower-cases the phrase and
// collapses internal whitespace runs to single spaces.
func Normalize(phrase string) string {
	return strings.Join(strings.Fields(strings.ToLower(phrase)), " ")
}

// Seed derives the 64-byte BIP-39 seed from a validated phrase. Returns
// model.ErrInvalidMnemonic before doing any derivation work if the checksum
// fails.
func Seed(phrase string) ([]byte, error) {
	normalized := Normalize(phrase)
	if !bip39.IsMnemonicValid(normalized) {
		return nil, model.ErrInvalidMnemonic
	}
	seed, err := bip39.NewSeedWithErrorChecking(normalized, "")
	if err != nil {
		return nil, model.ErrInvalidMnemonic
	}
	return seed, nil
}
