package model

import "time"

const EnvelopeVersion = "v1"

type Envelope struct {
	Version  string       `json:"version"`
	Success  bool         `json:"success"`
	Data     any          `json:"data,omitempty"`
	Error    *ErrorBody   `json:"error"`
	Warnings []string     `json:"warnings,omitempty"`
	Meta     EnvelopeMeta `json:"meta"`
}

type ErrorBody struct {
	Code    int    `json:"code"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

type EnvelopeMeta struct {
	RequestID string      `json:"request_id"`
	Timestamp time.Time   `json:"timestamp"`
	Command   string      `json:"command"`
	Network   string      `json:"network,omitempty"`
	RPC       []RPCStatus `json:"rpc,omitempty"`
	Cache     CacheStatus `json:"cache"`
	Partial   bool        `json:"partial"`
}

type RPCStatus struct {
	Method    string `json:"method"`
	Status    string `json:"status"`
	LatencyMS int64  `json:"latency_ms"`
}

type CacheStatus struct {
	Status string `json:"status"`
	AgeMS  int64  `json:"age_ms"`
	Stale  bool   `json:"stale"`
}

type NetworkInfo struct {
	Name     string `json:"name"`
	Endpoint string `json:"endpoint"`
	Default  bool   `json:"default"`
}

type CoinBalance struct {
	CoinType         string `json:"coin_type"`
	Symbol           string `json:"symbol"`
	Decimals         int    `json:"decimals"`
	BalanceBaseUnits string `json:"balance_base_units"`
	Balance          string `json:"balance"`
}

type BalanceChange struct {
	Digest          string `json:"digest"`
	Timestamp       string `json:"timestamp"`
	AmountBaseUnits string `json:"amount_base_units"`
	Amount          string `json:"amount"`
	Direction       string `json:"direction"`
}

type CoinActivity struct {
	CoinType string          `json:"coin_type"`
	Symbol   string          `json:"symbol"`
	Changes  []BalanceChange `json:"changes"`
}

// ProtocolMetric is one label/value pair surfaced for a detected position.
// Values are pre-formatted display text; empty values are never emitted.
type ProtocolMetric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ProtocolPosition is a structured on-chain object attributed to a known
// DeFi protocol. ObjectID may be empty when the owning object exposes no
// usable identifier; such positions are never deduplicated.
type ProtocolPosition struct {
	Protocol string           `json:"protocol"`
	Label    string           `json:"label"`
	ObjectID string           `json:"object_id,omitempty"`
	Metrics  []ProtocolMetric `json:"metrics,omitempty"`
}

type WalletReport struct {
	Address   string             `json:"address"`
	Network   string             `json:"network"`
	Balances  []CoinBalance      `json:"balances"`
	Activity  []CoinActivity     `json:"activity,omitempty"`
	Positions []ProtocolPosition `json:"positions,omitempty"`
}
