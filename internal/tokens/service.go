package tokens

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/pocketvault/walletcore/internal/chain"
	"github.com/pocketvault/walletcore/internal/log"
	"github.com/pocketvault/walletcore/internal/model"
	"github.com/pocketvault/walletcore/internal/units"
)

const (
	metadataTTL     = 24 * time.Hour
	cleanupInterval = time.Hour
)

// ChainReader is the slice of the EVM adapter the token service needs.
type ChainReader interface {
	NativeBalance(ctx context.Context, address string, ref chain.Ref) (string, error)
	TokenBalanceOf(ctx context.Context, chainID int64, tokenAddress, owner string) (*big.Int, error)
	TokenDecimals(ctx context.Context, chainID int64, tokenAddress string) (uint8, error)
	TokenSymbol(ctx context.Context, chainID int64, tokenAddress string) (string, error)
}

// Service aggregates token balances per chain. ERC-20 metadata is cached for
// a day; balances are never cached.
type Service struct {
	reader ChainReader
	cache  *gocache.Cache
}

// NewService creates the token service.
func NewService(reader ChainReader) *Service {
	return &Service{
		reader: reader,
		cache:  gocache.New(metadataTTL, cleanupInterval),
	}
}

func metadataCacheKey(chainID int64, address string) string {
	return fmt.Sprintf("meta:%d:%s", chainID, address)
}

// Metadata resolves a token's symbol and decimals: cache first, then the
// static catalog, then an on-chain read whose result is cached. A token
// absent from both the catalog and the chain is an error.
func (s *Service) Metadata(ctx context.Context, chainID int64, address string) (model.Token, error) {
	if address == model.NativeTokenAddress {
		if token, ok := CatalogToken(chainID, address); ok {
			return token, nil
		}
		return model.Token{}, fmt.Errorf("no native token entry for chain %d", chainID)
	}

	key := metadataCacheKey(chainID, address)
	if cached, ok := s.cache.Get(key); ok {
		return cached.(model.Token), nil
	}
	if token, ok := CatalogToken(chainID, address); ok {
		s.cache.SetDefault(key, token)
		return token, nil
	}

	symbol, symbolErr := s.reader.TokenSymbol(ctx, chainID, address)
	decimals, decimalsErr := s.reader.TokenDecimals(ctx, chainID, address)
	if symbolErr != nil || decimalsErr != nil {
		if symbolErr != nil {
			return model.Token{}, fmt.Errorf("resolve token %s metadata: %w", address, symbolErr)
		}
		return model.Token{}, fmt.Errorf("resolve token %s metadata: %w", address, decimalsErr)
	}

	token := model.Token{Symbol: symbol, Name: symbol, Address: address, Decimals: decimals}
	s.cache.SetDefault(key, token)
	return token, nil
}

// Balances fetches all catalog token balances for an address concurrently.
// A failure on one token never poisons the batch: the failed entry reports a
// zero balance and the rest return real values.
func (s *Service) Balances(ctx context.Context, chainID int64, address string) ([]model.TokenBalance, error) {
	catalog := Catalog(chainID)
	results := make([]model.TokenBalance, len(catalog))

	var wg sync.WaitGroup
	for i, token := range catalog {
		wg.Add(1)
		go func(i int, token model.Token) {
			defer wg.Done()
			balance, err := s.balanceOf(ctx, chainID, address, token)
			if err != nil {
				log.Tokens.Warn().
					Err(err).
					Int64("chainId", chainID).
					Str("token", token.Symbol).
					Msg("token balance fetch failed")
				results[i] = model.TokenBalance{Token: token, Balance: "0", Formatted: "0"}
				return
			}
			results[i] = balance
		}(i, token)
	}
	wg.Wait()

	return results, nil
}

func (s *Service) balanceOf(ctx context.Context, chainID int64, address string, token model.Token) (model.TokenBalance, error) {
	if token.IsNative {
		formatted, err := s.reader.NativeBalance(ctx, address, chain.EVM(chainID))
		if err != nil {
			return model.TokenBalance{}, err
		}
		raw, err := units.Parse(formatted, int(token.Decimals))
		if err != nil {
			return model.TokenBalance{}, err
		}
		return model.TokenBalance{Token: token, Balance: raw.String(), Formatted: formatted}, nil
	}

	raw, err := s.reader.TokenBalanceOf(ctx, chainID, token.Address, address)
	if err != nil {
		return model.TokenBalance{}, err
	}
	return model.TokenBalance{
		Token:     token,
		Balance:   raw.String(),
		Formatted: units.Format(raw, int(token.Decimals)),
	}, nil
}
