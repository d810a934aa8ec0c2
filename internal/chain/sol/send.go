package sol

import (
	"context"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/pocketvault/walletcore/internal/chain"
	"github.com/pocketvault/walletcore/internal/hdkey"
	"github.com/pocketvault/walletcore/internal/log"
	"github.com/pocketvault/walletcore/internal/units"
)

const (
	confirmPollInterval = 2 * time.Second
	confirmMaxAttempts  = 30
)

// SendNative transfers SOL: derive, build a system transfer against the
// latest blockhash, sign, broadcast, then poll until the cluster reports the
// signature confirmed. Input validation happens before any RPC call.
func (a *Adapter) SendNative(ctx context.Context, params chain.SendParams) (string, error) {
	if err := params.Ref.RequireFamily(chain.FamilySolana); err != nil {
		return "", err
	}
	if !validSolanaAddress(params.To) {
		return "", fmt.Errorf("invalid recipient address %q", params.To)
	}
	lamports, err := units.SOLToLamports(params.Amount)
	if err != nil {
		return "", fmt.Errorf("invalid amount: %w", err)
	}
	if lamports == 0 {
		return "", fmt.Errorf("amount must be greater than zero")
	}

	client, err := a.clientFor(params.Ref.Network())
	if err != nil {
		return "", err
	}

	key, err := hdkey.DeriveSolana(params.Mnemonic, params.AccountIndex)
	if err != nil {
		return "", err
	}
	defer key.Zero()
	wallet := key.PrivateKey
	fromPubkey := wallet.PublicKey()
	toPubkey := solana.MustPublicKeyFromBase58(params.To)

	recent, err := client.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return "", fmt.Errorf("get latest blockhash: %w", err)
	}

	transferInstruction := system.NewTransferInstruction(
		lamports,
		fromPubkey,
		toPubkey,
	).Build()

	tx, err := solana.NewTransaction(
		[]solana.Instruction{transferInstruction},
		recent.Value.Blockhash,
		solana.TransactionPayer(fromPubkey),
	)
	if err != nil {
		return "", fmt.Errorf("build transaction: %w", err)
	}

	_, err = tx.Sign(func(pub solana.PublicKey) *solana.PrivateKey {
		if fromPubkey.Equals(pub) {
			return &wallet
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("sign transaction: %w", err)
	}

	sig, err := client.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		SkipPreflight:       false,
		PreflightCommitment: rpc.CommitmentFinalized,
	})
	if err != nil {
		return "", fmt.Errorf("send transaction: %w", err)
	}

	if err := a.awaitConfirmation(ctx, client, sig); err != nil {
		return "", err
	}

	log.Chain.Info().
		Str("network", params.Ref.Network()).
		Str("signature", sig.String()).
		Msg("solana transaction confirmed")
	return sig.String(), nil
}

// awaitConfirmation polls signature status until the cluster reports at
// least confirmed commitment or the attempt budget runs out.
func (a *Adapter) awaitConfirmation(ctx context.Context, client *rpc.Client, sig solana.Signature) error {
	for attempt := 0; attempt < confirmMaxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(confirmPollInterval):
		}

		statuses, err := client.GetSignatureStatuses(ctx, false, sig)
		if err != nil {
			continue
		}
		if len(statuses.Value) == 0 || statuses.Value[0] == nil {
			continue
		}
		status := statuses.Value[0]
		if status.Err != nil {
			return fmt.Errorf("transaction %s failed on chain: %v", sig, status.Err)
		}
		switch status.ConfirmationStatus {
		case rpc.ConfirmationStatusConfirmed, rpc.ConfirmationStatusFinalized:
			return nil
		}
	}
	return fmt.Errorf("transaction %s not confirmed after %d attempts", sig, confirmMaxAttempts)
}
