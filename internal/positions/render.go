package positions

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// maxMapEntries caps how many entries of an unrecognized nested object are
// rendered. Deep structures collapse to a short summary instead of dumping
// the whole subtree.
const maxMapEntries = 2

// renderValue converts an arbitrary decoded-JSON value into a short display
// string. ok is false when the value carries nothing displayable.
func renderValue(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case bool:
		return strconv.FormatBool(t), true
	case json.Number:
		return t.String(), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case string:
		s := strings.TrimSpace(t)
		return s, s != ""
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := renderValue(item); ok {
				parts = append(parts, s)
			}
		}
		if len(parts) == 0 {
			return "", false
		}
		return strings.Join(parts, ", "), true
	case map[string]any:
		return renderMap(t)
	default:
		s := strings.TrimSpace(fmt.Sprint(v))
		return s, s != ""
	}
}

func renderMap(m map[string]any) (string, bool) {
	// Nested objects are usually references; surface the identifier alone.
	if s, ok := m["id"].(string); ok && strings.TrimSpace(s) != "" {
		return strings.TrimSpace(s), true
	}
	if s, ok := m["objectId"].(string); ok && strings.TrimSpace(s) != "" {
		return strings.TrimSpace(s), true
	}
	if inner, ok := m["fields"]; ok {
		return renderValue(inner)
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, maxMapEntries)
	for _, k := range keys {
		if len(parts) == maxMapEntries {
			break
		}
		if s, ok := renderValue(m[k]); ok {
			parts = append(parts, fmt.Sprintf("%s: %s", titleCase(k), s))
		}
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, " • "), true
}

// titleCase turns a raw field key like "entry_price" into "Entry Price".
func titleCase(key string) string {
	cleaned := strings.NewReplacer("_", " ", "-", " ").Replace(key)
	tokens := strings.Fields(cleaned)
	for i, token := range tokens {
		tokens[i] = strings.ToUpper(token[:1]) + strings.ToLower(token[1:])
	}
	return strings.Join(tokens, " ")
}
