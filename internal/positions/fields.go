package positions

import "sort"

// findField searches a nested mapping/list structure depth-first for a named
// field. Map children are visited in sorted key order so lookups are
// deterministic. Input is a finite decoded-JSON tree, so plain recursion is
// safe.
func findField(v any, key string) (any, bool) {
	switch t := v.(type) {
	case map[string]any:
		if hit, ok := t[key]; ok {
			return hit, true
		}
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if hit, ok := findField(t[k], key); ok && hit != nil {
				return hit, true
			}
		}
	case []any:
		for _, item := range t {
			if hit, ok := findField(item, key); ok && hit != nil {
				return hit, true
			}
		}
	}
	return nil, false
}
