package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	clierr "github.com/suitools/suiwallet/internal/errors"
	"github.com/suitools/suiwallet/internal/httpx"
	"github.com/suitools/suiwallet/internal/model"
)

const jsonRPCID = 1

// networkEndpoints maps network names to public fullnode JSON-RPC endpoints.
var networkEndpoints = map[string]string{
	"mainnet": "https://fullnode.mainnet.sui.io:443",
	"testnet": "https://fullnode.testnet.sui.io:443",
	"devnet":  "https://fullnode.devnet.sui.io:443",
}

const DefaultNetwork = "mainnet"

// EndpointFor resolves a network name to its fullnode endpoint.
func EndpointFor(network string) (string, error) {
	endpoint, ok := networkEndpoints[strings.ToLower(strings.TrimSpace(network))]
	if !ok {
		names := make([]string, 0, len(networkEndpoints))
		for name := range networkEndpoints {
			names = append(names, name)
		}
		sort.Strings(names)
		return "", clierr.New(clierr.CodeUsage, fmt.Sprintf("unknown network %q, available networks: %s", network, strings.Join(names, ", ")))
	}
	return endpoint, nil
}

func Networks() []model.NetworkInfo {
	out := make([]model.NetworkInfo, 0, len(networkEndpoints))
	for name, endpoint := range networkEndpoints {
		out = append(out, model.NetworkInfo{Name: name, Endpoint: endpoint, Default: name == DefaultNetwork})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Client talks to a Sui fullnode JSON-RPC endpoint.
type Client struct {
	http     *httpx.Client
	endpoint string
	log      zerolog.Logger
}

func New(httpClient *httpx.Client, endpoint string, log zerolog.Logger) *Client {
	return &Client{http: httpClient, endpoint: endpoint, log: log}
}

func (c *Client) Endpoint() string { return c.endpoint }

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcEnvelope struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

// Call performs one JSON-RPC request and decodes the result into out.
// Numeric values survive as json.Number so loosely-typed object payloads
// keep their canonical decimal text.
func (c *Client) Call(ctx context.Context, method string, params []any, out any) error {
	payload, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"method":  method,
		"params":  params,
		"id":      jsonRPCID,
	})
	if err != nil {
		return clierr.Wrap(clierr.CodeInternal, "marshal rpc request", err)
	}

	start := time.Now()
	var env rpcEnvelope
	err = c.http.PostJSON(ctx, c.endpoint, payload, &env)
	c.log.Debug().
		Str("method", method).
		Dur("elapsed", time.Since(start)).
		Err(err).
		Msg("rpc call")
	if err != nil {
		return err
	}
	if env.Error != nil {
		return clierr.New(clierr.CodeRPC, fmt.Sprintf("rpc error calling %s: %s", method, env.Error.Message))
	}
	if out == nil || len(env.Result) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(env.Result))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return clierr.Wrap(clierr.CodeUnavailable, fmt.Sprintf("decode %s result", method), err)
	}
	return nil
}

type BalanceEntry struct {
	CoinType     string `json:"coinType"`
	TotalBalance string `json:"totalBalance"`
}

func (c *Client) GetAllBalances(ctx context.Context, address string) ([]BalanceEntry, error) {
	var out []BalanceEntry
	if err := c.Call(ctx, "suix_getAllBalances", []any{address}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type CoinMetadata struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Decimals int    `json:"decimals"`
}

// GetCoinMetadata returns nil without error when the endpoint has no
// metadata for the coin type; missing metadata is expected for long-tail
// coins and must not fail balance rendering.
func (c *Client) GetCoinMetadata(ctx context.Context, coinType string) (*CoinMetadata, error) {
	var out *CoinMetadata
	err := c.Call(ctx, "suix_getCoinMetadata", []any{coinType}, &out)
	if err != nil {
		if cErr, ok := clierr.As(err); ok && cErr.Code == clierr.CodeRPC {
			return nil, nil
		}
		return nil, err
	}
	return out, nil
}

type TransactionBlock struct {
	Digest         string             `json:"digest"`
	TimestampMs    json.Number        `json:"timestampMs"`
	BalanceChanges []RawBalanceChange `json:"balanceChanges"`
}

type RawBalanceChange struct {
	Owner    any    `json:"owner"`
	CoinType string `json:"coinType"`
	Amount   string `json:"amount"`
}

type transactionPage struct {
	Data []TransactionBlock `json:"data"`
}

// QueryTransactionBlocks fetches recent transactions touching the address,
// newest first, with balance changes included.
func (c *Client) QueryTransactionBlocks(ctx context.Context, address string, limit int) ([]TransactionBlock, error) {
	query := map[string]any{
		"filter": map[string]any{
			"Any": []any{
				map[string]any{"FromAddress": address},
				map[string]any{"ToAddress": address},
			},
		},
		"options": map[string]any{
			"showBalanceChanges": true,
			"showEffects":        true,
			"showInput":          false,
			"showEvents":         false,
			"showObjectChanges":  false,
		},
	}
	var page transactionPage
	if err := c.Call(ctx, "suix_queryTransactionBlocks", []any{query, nil, limit, true}, &page); err != nil {
		return nil, err
	}
	return page.Data, nil
}

type ObjectsPage struct {
	Objects    []map[string]any
	NextCursor any
	HasMore    bool
}

type ownedObjectsResult struct {
	Data []struct {
		Data map[string]any `json:"data"`
	} `json:"data"`
	NextCursor any  `json:"nextCursor"`
	HasNext    bool `json:"hasNextPage"`
}

// GetOwnedObjects fetches one page of owned-object records with type,
// content and display blocks populated. The returned records are untyped:
// every field access downstream must tolerate missing keys and odd shapes.
func (c *Client) GetOwnedObjects(ctx context.Context, address string, cursor any, limit int) (ObjectsPage, error) {
	query := map[string]any{
		"options": map[string]any{
			"showType":    true,
			"showContent": true,
			"showDisplay": true,
			"showOwner":   false,
		},
	}
	var res ownedObjectsResult
	if err := c.Call(ctx, "suix_getOwnedObjects", []any{address, query, cursor, limit}, &res); err != nil {
		return ObjectsPage{}, err
	}
	page := ObjectsPage{NextCursor: res.NextCursor, HasMore: res.HasNext}
	for _, entry := range res.Data {
		if entry.Data != nil {
			page.Objects = append(page.Objects, entry.Data)
		}
	}
	return page, nil
}
