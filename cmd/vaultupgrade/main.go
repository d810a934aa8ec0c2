// One-off: unlock a legacy vault record so it is re-encrypted in the
// current authenticated format. The PIN is prompted without echo.
// Usage: WALLET_DATA_DIR=./data go run ./cmd/vaultupgrade
package main

import (
	"fmt"
	"os"
	"syscall"

	"golang.org/x/term"

	"github.com/pocketvault/walletcore/internal/store"
	"github.com/pocketvault/walletcore/internal/vault"
)

func main() {
	dataDir := os.Getenv("WALLET_DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}

	fileStore, err := store.NewFileStore(dataDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	v := vault.New(fileStore)

	exists, err := v.HasRecord()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if !exists {
		fmt.Fprintln(os.Stderr, "no vault record found in", dataDir)
		os.Exit(1)
	}

	fmt.Print("PIN: ")
	pinBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		fmt.Fprintln(os.Stderr, "read pin:", err)
		os.Exit(1)
	}
	defer clear(pinBytes)

	// Unlock upgrades a legacy record in place; a current record is a no-op.
	session, err := v.Unlock(string(pinBytes))
	if err != nil {
		fmt.Fprintln(os.Stderr, "unlock failed:", err)
		os.Exit(1)
	}
	session.Lock()

	fmt.Println("vault record verified and stored in the current format")
}
