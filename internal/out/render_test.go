package out

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/suitools/suiwallet/internal/config"
	"github.com/suitools/suiwallet/internal/model"
)

func TestRenderJSONSelectResultsOnly(t *testing.T) {
	env := model.Envelope{
		Version: "v1",
		Success: true,
		Data:    []map[string]any{{"a": 1, "b": 2}},
		Meta:    model.EnvelopeMeta{Timestamp: time.Now()},
	}
	settings := config.Settings{OutputMode: "json", SelectFields: []string{"a"}, ResultsOnly: true}
	var buf bytes.Buffer
	if err := Render(&buf, env, settings); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	var out []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("json decode failed: %v", err)
	}
	if len(out) != 1 || out[0]["a"].(float64) != 1 {
		t.Fatalf("unexpected output: %s", buf.String())
	}
	if _, ok := out[0]["b"]; ok {
		t.Fatalf("field projection failed: %s", buf.String())
	}
}

func TestRenderPlain(t *testing.T) {
	env := model.Envelope{
		Version: "v1",
		Success: true,
		Data:    []model.CoinBalance{{CoinType: "0x2::sui::SUI", Symbol: "SUI", Balance: "1.5"}},
		Meta:    model.EnvelopeMeta{Timestamp: time.Now()},
	}
	settings := config.Settings{OutputMode: "plain", ResultsOnly: true}
	var buf bytes.Buffer
	if err := Render(&buf, env, settings); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(buf.String(), "symbol=SUI") {
		t.Fatalf("unexpected plain output: %s", buf.String())
	}
}

func TestRenderReport(t *testing.T) {
	report := model.WalletReport{
		Address: "0xabc",
		Network: "mainnet",
		Balances: []model.CoinBalance{
			{CoinType: "0x2::sui::SUI", Symbol: "SUI", Balance: "1.5"},
		},
		Activity: []model.CoinActivity{
			{
				CoinType: "0x2::sui::SUI",
				Symbol:   "SUI",
				Changes: []model.BalanceChange{
					{Digest: "d1", Timestamp: "2023-11-14 22:13:20 UTC", Amount: "-1.5", Direction: "sent"},
				},
			},
		},
		Positions: []model.ProtocolPosition{
			{
				Protocol: "Cetus",
				Label:    "USDC / SUI",
				Metrics:  []model.ProtocolMetric{{Label: "Liquidity", Value: "1000"}},
			},
		},
	}

	var buf bytes.Buffer
	if err := RenderReport(&buf, report); err != nil {
		t.Fatalf("RenderReport failed: %v", err)
	}
	got := buf.String()
	for _, want := range []string{
		"Wallet 0xabc (mainnet)",
		"SUI",
		"sent",
		"[Cetus] USDC / SUI",
		"Liquidity: 1000",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("report missing %q:\n%s", want, got)
		}
	}
}

func TestRenderReportEmptySections(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderReport(&buf, model.WalletReport{Address: "0x1", Network: "devnet"}); err != nil {
		t.Fatalf("RenderReport failed: %v", err)
	}
	if strings.Count(buf.String(), "(none)") != 3 {
		t.Fatalf("expected three empty markers:\n%s", buf.String())
	}
}
