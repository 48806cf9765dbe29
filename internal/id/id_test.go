package id

import (
	"math/big"
	"testing"
)

func TestNormalizeAddress(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  0xABCdef  ", "0xabcdef"},
		{"abcdef", "0xabcdef"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		if got := NormalizeAddress(tc.in); got != tc.want {
			t.Fatalf("NormalizeAddress(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestShortCoinType(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0x2::sui::SUI", "SUI"},
		{"0x2::coin::Coin<0x2::sui::SUI>", "Coin"},
		{"USDC", "USDC"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := ShortCoinType(tc.in); got != tc.want {
			t.Fatalf("ShortCoinType(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatBalance(t *testing.T) {
	v, _ := new(big.Int).SetString("1234567890123", 10)
	if got := FormatBalance(v, 9); got != "1,234.567890123" {
		t.Fatalf("unexpected balance: %s", got)
	}
	if got := FormatBalance(big.NewInt(42), -1); got != "42" {
		t.Fatalf("expected raw value for unknown decimals, got %s", got)
	}
	if got := FormatBalance(big.NewInt(5), 6); got != "0.000005" {
		t.Fatalf("unexpected small balance: %s", got)
	}
}

func TestFormatAmountTrimsZerosAndKeepsSign(t *testing.T) {
	if got := FormatAmount(big.NewInt(-1500000000), 9); got != "-1.5" {
		t.Fatalf("unexpected amount: %s", got)
	}
	if got := FormatAmount(big.NewInt(1000000000), 9); got != "1" {
		t.Fatalf("unexpected amount: %s", got)
	}
	if got := FormatAmount(big.NewInt(7), 0); got != "7" {
		t.Fatalf("unexpected zero-decimals amount: %s", got)
	}
}

func TestGroupThousands(t *testing.T) {
	if got := groupThousands("1234567"); got != "1,234,567" {
		t.Fatalf("unexpected grouping: %s", got)
	}
	if got := groupThousands("123"); got != "123" {
		t.Fatalf("unexpected grouping: %s", got)
	}
}
