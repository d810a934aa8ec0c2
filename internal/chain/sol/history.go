package sol

import (
	"context"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/pocketvault/walletcore/internal/chain"
	"github.com/pocketvault/walletcore/internal/model"
	"github.com/pocketvault/walletcore/internal/units"
)

const historyPageSize = 20

// TxHistory reconstructs one page of native transfer history from the RPC
// node: page through signatures for the address, then fetch each transaction
// and classify it by the address's lamport balance delta. The cursor is the
// last signature of the previous page.
func (a *Adapter) TxHistory(ctx context.Context, address, cursor string, ref chain.Ref) (*model.HistoryPage, error) {
	if err := ref.RequireFamily(chain.FamilySolana); err != nil {
		return nil, err
	}
	pubkey, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return nil, fmt.Errorf("invalid solana address: %w", err)
	}
	client, err := a.clientFor(ref.Network())
	if err != nil {
		return nil, err
	}

	limit := historyPageSize
	opts := &rpc.GetSignaturesForAddressOpts{Limit: &limit}
	if cursor != "" {
		before, err := solana.SignatureFromBase58(cursor)
		if err != nil {
			return nil, fmt.Errorf("invalid history cursor: %w", err)
		}
		opts.Before = before
	}

	sigs, err := client.GetSignaturesForAddressWithOpts(ctx, pubkey, opts)
	if err != nil {
		return nil, fmt.Errorf("get signatures: %w", err)
	}

	items := make([]model.HistoryItem, 0, len(sigs))
	for _, sigInfo := range sigs {
		item, err := a.fetchHistoryItem(ctx, client, pubkey, sigInfo)
		if err != nil {
			return nil, err
		}
		if item != nil {
			items = append(items, *item)
		}
	}

	nextCursor := ""
	if len(sigs) == historyPageSize {
		nextCursor = sigs[len(sigs)-1].Signature.String()
	}
	return &model.HistoryPage{Items: items, NextCursor: nextCursor}, nil
}

// fetchHistoryItem loads one transaction and derives the entry's direction
// from the queried address's balance delta. A zero delta is reported as a
// self transfer; only transactions without metadata are skipped.
func (a *Adapter) fetchHistoryItem(ctx context.Context, client *rpc.Client, owner solana.PublicKey, sigInfo *rpc.TransactionSignature) (*model.HistoryItem, error) {
	maxVersion := uint64(0)
	tx, err := client.GetTransaction(ctx, sigInfo.Signature, &rpc.GetTransactionOpts{
		Encoding:                       solana.EncodingBase64,
		MaxSupportedTransactionVersion: &maxVersion,
	})
	if err != nil {
		return nil, fmt.Errorf("get transaction %s: %w", sigInfo.Signature, err)
	}
	if tx.Meta == nil {
		return nil, nil
	}

	decoded, err := tx.Transaction.GetTransaction()
	if err != nil {
		return nil, fmt.Errorf("decode transaction %s: %w", sigInfo.Signature, err)
	}
	accountKeys := decoded.Message.AccountKeys
	if len(accountKeys) == 0 {
		return nil, nil
	}

	var delta int64
	for i, key := range accountKeys {
		if !key.Equals(owner) {
			continue
		}
		if i < len(tx.Meta.PreBalances) && i < len(tx.Meta.PostBalances) {
			pre := tx.Meta.PreBalances[i]
			post := tx.Meta.PostBalances[i]
			if post >= pre {
				delta = int64(post - pre)
			} else {
				delta = -int64(pre - post)
			}
		}
		break
	}

	direction := model.DirectionSelf
	var amount uint64
	switch {
	case delta > 0:
		direction = model.DirectionIn
		amount = uint64(delta)
	case delta < 0:
		direction = model.DirectionOut
		amount = uint64(-delta)
	}

	from := accountKeys[0].String()
	to := from
	if len(accountKeys) > 1 {
		to = accountKeys[1].String()
	}

	timestamp := ""
	if tx.BlockTime != nil {
		timestamp = time.Unix(int64(*tx.BlockTime), 0).UTC().Format(time.RFC3339)
	}

	return &model.HistoryItem{
		Hash:      sigInfo.Signature.String(),
		Timestamp: timestamp,
		Direction: direction,
		AssetType: model.AssetNative,
		From:      from,
		To:        to,
		Value:     units.LamportsToSOL(amount),
		Symbol:    "SOL",
	}, nil
}
