package positions

import (
	"fmt"
	"strings"

	"github.com/suitools/suiwallet/internal/id"
)

var (
	firstAssetKeys  = []string{"coin_a", "coinA", "token_a"}
	secondAssetKeys = []string{"coin_b", "coinB", "token_b"}
	marketKeys      = []string{"market", "pool_id", "pool"}
	assetKeys       = []string{"asset", "coin_type", "reserve"}
)

// deriveLabel produces a human label for a position. It never fails: when
// the fields expose nothing meaningful it falls back to the protocol name or
// finally the shortened type identifier.
func deriveLabel(def *Definition, fields map[string]any, typeID string) string {
	if fields != nil {
		if a, ok := renderFirst(fields, firstAssetKeys); ok {
			if b, ok := renderFirst(fields, secondAssetKeys); ok {
				return fmt.Sprintf("%s / %s", id.ShortCoinType(a), id.ShortCoinType(b))
			}
		}
		if v, ok := renderFirst(fields, marketKeys); ok {
			return v
		}
		if v, ok := renderFirst(fields, assetKeys); ok {
			return v
		}
	}
	if def != nil {
		return def.Name + " position"
	}
	return id.ShortCoinType(typeID)
}

func renderFirst(fields map[string]any, keys []string) (string, bool) {
	for _, key := range keys {
		v, ok := fields[key]
		if !ok {
			continue
		}
		if s, ok := renderValue(v); ok {
			return s, true
		}
	}
	return "", false
}

// displayLabel picks an explicit human label out of a display block, if the
// protocol supplied one.
func displayLabel(display map[string]any) (string, bool) {
	for _, key := range []string{"name", "title", "label"} {
		if s, ok := display[key].(string); ok {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				return trimmed, true
			}
		}
	}
	return "", false
}
