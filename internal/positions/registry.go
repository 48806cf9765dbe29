package positions

import "strings"

// Definition describes one recognizable protocol: substring patterns matched
// against the lower-cased object type, and the fields worth surfacing first
// when metrics are collected.
type Definition struct {
	Name            string
	Patterns        []string
	PreferredFields []string
}

// registry is ordered; the first definition with a matching pattern wins.
var registry = []Definition{
	{
		Name:            "Cetus",
		Patterns:        []string{"::cetus", "::clmm"},
		PreferredFields: []string{"coin_a", "coin_b", "liquidity", "amount_a", "amount_b"},
	},
	{
		Name:            "Suilend",
		Patterns:        []string{"::suilend"},
		PreferredFields: []string{"supplied", "borrowed", "collateral", "debt"},
	},
	{
		Name:            "Navi Protocol",
		Patterns:        []string{"::navi"},
		PreferredFields: []string{"supplied", "borrowed", "collateral", "apy"},
	},
	{
		Name:            "Bluefin",
		Patterns:        []string{"::bluefin", "::perps", "::perpetual"},
		PreferredFields: []string{"side", "size", "entry_price", "leverage"},
	},
}

// coinTypePrefix identifies plain fungible coin objects. Coins are balances,
// not protocol positions, even when their type would match a pattern.
const coinTypePrefix = "0x2::coin::coin"

func isCoinType(typeID string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(typeID)), coinTypePrefix)
}

// classify matches a type identifier against the registry.
func classify(typeID string) (Definition, bool) {
	if isCoinType(typeID) {
		return Definition{}, false
	}
	lowered := strings.ToLower(typeID)
	for _, def := range registry {
		for _, pattern := range def.Patterns {
			if strings.Contains(lowered, pattern) {
				return def, true
			}
		}
	}
	return Definition{}, false
}
