package wallet

import (
	"context"
	"math/big"
	"sort"
	"time"

	"github.com/suitools/suiwallet/internal/id"
	"github.com/suitools/suiwallet/internal/model"
	"github.com/suitools/suiwallet/internal/rpc"
)

// maxChangesPerCoin caps the recent-change history reported per coin type.
const maxChangesPerCoin = 10

const timestampLayout = "2006-01-02 15:04:05 UTC"

// MetadataStore persists coin metadata lookups across invocations. Both
// methods must tolerate being backed by nothing at all.
type MetadataStore interface {
	GetCoinMeta(coinType string) (*rpc.CoinMetadata, bool)
	SetCoinMeta(coinType string, meta *rpc.CoinMetadata) error
}

// Service reads wallet holdings and recent activity from a Sui fullnode.
type Service struct {
	client *rpc.Client
	store  MetadataStore
	memo   map[string]*rpc.CoinMetadata
}

func New(client *rpc.Client, store MetadataStore) *Service {
	return &Service{client: client, store: store, memo: make(map[string]*rpc.CoinMetadata)}
}

// Balances returns the coin balances held by an address, enriched with
// memoized coin metadata. Malformed entries are skipped, never fatal.
func (s *Service) Balances(ctx context.Context, address string) ([]model.CoinBalance, error) {
	normalized := id.NormalizeAddress(address)
	entries, err := s.client.GetAllBalances(ctx, normalized)
	if err != nil {
		return nil, err
	}

	out := make([]model.CoinBalance, 0, len(entries))
	for _, entry := range entries {
		if entry.CoinType == "" {
			continue
		}
		raw, ok := id.ParseBigInt(entry.TotalBalance)
		if !ok {
			continue
		}
		symbol, decimals := s.coinDisplayInfo(ctx, entry.CoinType)
		out = append(out, model.CoinBalance{
			CoinType:         entry.CoinType,
			Symbol:           symbol,
			Decimals:         decimals,
			BalanceBaseUnits: raw.String(),
			Balance:          id.FormatBalance(raw, decimals),
		})
	}
	return out, nil
}

// RecentActivity groups balance changes touching the address per coin type,
// newest first, capped per coin.
func (s *Service) RecentActivity(ctx context.Context, address string, maxTransactions int) ([]model.CoinActivity, error) {
	normalized := id.NormalizeAddress(address)
	if normalized == "" {
		return nil, nil
	}
	if maxTransactions <= 0 {
		maxTransactions = 50
	}
	blocks, err := s.client.QueryTransactionBlocks(ctx, normalized, maxTransactions)
	if err != nil {
		return nil, err
	}

	type change struct {
		digest      string
		timestampMS int64
		hasTime     bool
		amount      *big.Int
	}
	grouped := make(map[string][]change)
	for _, tb := range blocks {
		ts, tsErr := tb.TimestampMs.Int64()
		hasTime := tb.TimestampMs.String() != "" && tsErr == nil
		for _, bc := range tb.BalanceChanges {
			owner := id.NormalizeAddress(ownerAddress(bc.Owner))
			if owner == "" || owner != normalized {
				continue
			}
			if bc.CoinType == "" {
				continue
			}
			amount, ok := id.ParseBigInt(bc.Amount)
			if !ok {
				continue
			}
			grouped[bc.CoinType] = append(grouped[bc.CoinType], change{
				digest:      tb.Digest,
				timestampMS: ts,
				hasTime:     hasTime,
				amount:      amount,
			})
		}
	}

	coinTypes := make([]string, 0, len(grouped))
	for coinType := range grouped {
		coinTypes = append(coinTypes, coinType)
	}
	sort.Strings(coinTypes)

	out := make([]model.CoinActivity, 0, len(coinTypes))
	for _, coinType := range coinTypes {
		changes := grouped[coinType]
		sort.SliceStable(changes, func(i, j int) bool {
			return changes[i].timestampMS > changes[j].timestampMS
		})
		if len(changes) > maxChangesPerCoin {
			changes = changes[:maxChangesPerCoin]
		}

		symbol, decimals := s.coinDisplayInfo(ctx, coinType)
		activity := model.CoinActivity{CoinType: coinType, Symbol: symbol}
		for _, c := range changes {
			direction := "sent"
			if c.amount.Sign() > 0 {
				direction = "received"
			}
			activity.Changes = append(activity.Changes, model.BalanceChange{
				Digest:          c.digest,
				Timestamp:       formatTimestamp(c.timestampMS, c.hasTime),
				AmountBaseUnits: c.amount.String(),
				Amount:          id.FormatAmount(c.amount, decimals),
				Direction:       direction,
			})
		}
		out = append(out, activity)
	}
	return out, nil
}

// coinDisplayInfo resolves symbol and decimals for a coin type, consulting
// the in-process memo, then the persistent store, then the endpoint. Coins
// without metadata fall back to the type's final segment and unknown
// decimals.
func (s *Service) coinDisplayInfo(ctx context.Context, coinType string) (string, int) {
	meta, ok := s.memo[coinType]
	if !ok && s.store != nil {
		if cached, hit := s.store.GetCoinMeta(coinType); hit {
			meta, ok = cached, true
			s.memo[coinType] = cached
		}
	}
	if !ok {
		fetched, err := s.client.GetCoinMetadata(ctx, coinType)
		if err == nil {
			meta = fetched
			s.memo[coinType] = fetched
			if s.store != nil {
				_ = s.store.SetCoinMeta(coinType, fetched)
			}
		}
	}

	if meta == nil {
		return id.ShortCoinType(coinType), -1
	}
	symbol := meta.Symbol
	if symbol == "" {
		symbol = id.ShortCoinType(coinType)
	}
	return symbol, meta.Decimals
}

func formatTimestamp(ms int64, hasTime bool) string {
	if !hasTime || ms <= 0 {
		return "unknown time"
	}
	return time.UnixMilli(ms).UTC().Format(timestampLayout)
}

// ownerAddress unwraps the owner forms the RPC uses for balance changes.
func ownerAddress(owner any) string {
	switch t := owner.(type) {
	case string:
		return t
	case map[string]any:
		for _, key := range []string{"AddressOwner", "GasOwner", "ObjectOwner"} {
			if s, ok := t[key].(string); ok {
				return s
			}
		}
	}
	return ""
}
