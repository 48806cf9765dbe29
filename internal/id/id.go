package id

import (
	"math/big"
	"strings"
)

// NormalizeAddress lower-cases a Sui address and ensures the 0x prefix.
// Empty or whitespace-only input normalizes to the empty string.
func NormalizeAddress(raw string) string {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "0x") {
		return trimmed
	}
	return "0x" + trimmed
}

// ShortCoinType reduces a fully-qualified Move type to its final segment,
// dropping any generic-parameter suffix. "0x2::sui::SUI" becomes "SUI".
func ShortCoinType(coinType string) string {
	t := strings.TrimSpace(coinType)
	if idx := strings.Index(t, "<"); idx >= 0 {
		t = t[:idx]
	}
	if idx := strings.LastIndex(t, "::"); idx >= 0 {
		t = t[idx+2:]
	}
	return t
}

// maxFractionDigits bounds the rendered fractional precision for coins with
// very fine base units.
const maxFractionDigits = 9

// FormatBalance renders a raw base-unit balance scaled by the coin's
// decimals, with thousands separators. Unknown decimals (< 0) leave the raw
// value untouched.
func FormatBalance(baseUnits *big.Int, decimals int) string {
	if baseUnits == nil {
		return "0"
	}
	if decimals < 0 {
		return baseUnits.String()
	}
	frac := decimals
	if frac > maxFractionDigits {
		frac = maxFractionDigits
	}
	return formatScaled(baseUnits, decimals, frac, false)
}

// FormatAmount renders a signed balance delta scaled by the coin's decimals,
// trimming trailing fractional zeros. Used for balance-change lines.
func FormatAmount(baseUnits *big.Int, decimals int) string {
	if baseUnits == nil {
		return "0"
	}
	if decimals <= 0 {
		return baseUnits.String()
	}
	frac := decimals
	if frac > maxFractionDigits {
		frac = maxFractionDigits
	}
	return formatScaled(baseUnits, decimals, frac, true)
}

func formatScaled(baseUnits *big.Int, decimals, fracDigits int, trimZeros bool) string {
	sign := ""
	abs := new(big.Int).Abs(baseUnits)
	if baseUnits.Sign() < 0 {
		sign = "-"
	}

	s := abs.String()
	if decimals > 0 && len(s) <= decimals {
		s = strings.Repeat("0", decimals-len(s)+1) + s
	}

	intPart := s
	fracPart := ""
	if decimals > 0 {
		intPart = s[:len(s)-decimals]
		fracPart = s[len(s)-decimals:]
	}
	if len(fracPart) > fracDigits {
		fracPart = fracPart[:fracDigits]
	}
	if trimZeros {
		fracPart = strings.TrimRight(fracPart, "0")
	}

	out := groupThousands(intPart)
	if fracPart != "" {
		out += "." + fracPart
	}
	return sign + out
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// ParseBigInt parses a base-unit amount that Sui returns as a decimal string.
func ParseBigInt(raw string) (*big.Int, bool) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(raw), 10)
	return n, ok
}
