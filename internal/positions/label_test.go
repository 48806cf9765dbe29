package positions

import "testing"

func navDef() *Definition {
	def, _ := classify("0x1::navi::Account")
	return &def
}

func TestDeriveLabelCoinPair(t *testing.T) {
	fields := decodeJSON(t, `{"coin_a": "0x12::usdc::USDC", "coin_b": "0x2::sui::SUI"}`).(map[string]any)
	if got := deriveLabel(nil, fields, "0x1::cetus::Position"); got != "USDC / SUI" {
		t.Fatalf("unexpected label: %q", got)
	}
}

func TestDeriveLabelCoinPairAlternateKeys(t *testing.T) {
	fields := decodeJSON(t, `{"coinA": "0x12::usdc::USDC<T>", "token_b": "0x2::sui::SUI"}`).(map[string]any)
	if got := deriveLabel(nil, fields, "0x1::cetus::Position"); got != "USDC / SUI" {
		t.Fatalf("unexpected label: %q", got)
	}
}

func TestDeriveLabelMarketFallback(t *testing.T) {
	fields := decodeJSON(t, `{"pool_id": "0xabc"}`).(map[string]any)
	if got := deriveLabel(nil, fields, "0x1::cetus::Position"); got != "0xabc" {
		t.Fatalf("unexpected label: %q", got)
	}
}

func TestDeriveLabelAssetFallback(t *testing.T) {
	fields := decodeJSON(t, `{"coin_type": "0x12::usdc::USDC"}`).(map[string]any)
	if got := deriveLabel(nil, fields, "0x1::suilend::Obligation"); got != "0x12::usdc::USDC" {
		t.Fatalf("unexpected label: %q", got)
	}
}

func TestDeriveLabelProtocolFallback(t *testing.T) {
	if got := deriveLabel(navDef(), map[string]any{}, "0x1::navi::Account"); got != "Navi Protocol position" {
		t.Fatalf("unexpected label: %q", got)
	}
}

func TestDeriveLabelTypeFallback(t *testing.T) {
	if got := deriveLabel(nil, nil, "0x1::module::AccountCap<0x2::sui::SUI>"); got != "AccountCap" {
		t.Fatalf("unexpected label: %q", got)
	}
}

func TestDeriveLabelHalfPairFallsThrough(t *testing.T) {
	// Only one side of the pair present: fall to the next rule.
	fields := decodeJSON(t, `{"coin_a": "0x12::usdc::USDC", "pool": "0xpool"}`).(map[string]any)
	if got := deriveLabel(nil, fields, "0x1::cetus::Position"); got != "0xpool" {
		t.Fatalf("unexpected label: %q", got)
	}
}

func TestDisplayLabelPrecedence(t *testing.T) {
	display := decodeJSON(t, `{"title": "LP Position", "label": "x"}`).(map[string]any)
	got, ok := displayLabel(display)
	if !ok || got != "LP Position" {
		t.Fatalf("unexpected display label: (%q, %v)", got, ok)
	}
	if _, ok := displayLabel(map[string]any{"name": "   "}); ok {
		t.Fatal("expected blank name to be skipped")
	}
}
