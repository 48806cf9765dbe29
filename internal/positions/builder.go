package positions

import (
	"strings"

	"github.com/suitools/suiwallet/internal/model"
)

// Build inspects one raw owned-object record and either recognizes it as a
// protocol position or declines. Records come straight off the wire with no
// schema guarantees; every access degrades to absence instead of failing the
// record.
func Build(raw any) (model.ProtocolPosition, bool) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return model.ProtocolPosition{}, false
	}

	typeID := objectType(obj)
	if typeID == "" || isCoinType(typeID) {
		return model.ProtocolPosition{}, false
	}

	def, ok := classify(typeID)
	if !ok {
		return model.ProtocolPosition{}, false
	}

	content, _ := obj["content"].(map[string]any)
	objectID := objectIdentifier(obj, content)

	display := displayBlock(obj)
	fields := objectFields(obj, content)

	metrics := newMetricSet()
	if display != nil {
		metrics.addDisplayMetrics(display)
	}
	metrics.addFieldMetrics(fields, &def)

	label, ok := displayLabel(display)
	if !ok {
		label = deriveLabel(&def, fields, typeID)
	}

	return model.ProtocolPosition{
		Protocol: def.Name,
		Label:    label,
		ObjectID: objectID,
		Metrics:  metrics.metrics,
	}, true
}

func objectType(obj map[string]any) string {
	if t, ok := obj["type"].(string); ok && strings.TrimSpace(t) != "" {
		return strings.TrimSpace(t)
	}
	if content, ok := obj["content"].(map[string]any); ok {
		if t, ok := content["type"].(string); ok {
			return strings.TrimSpace(t)
		}
	}
	return ""
}

// objectIdentifier walks the known id locations. A missing id never rejects
// the record; the position simply cannot be deduplicated across pages.
func objectIdentifier(obj, content map[string]any) string {
	if s, ok := obj["objectId"].(string); ok && strings.TrimSpace(s) != "" {
		return strings.TrimSpace(s)
	}
	if ref, ok := obj["reference"].(map[string]any); ok {
		if s, ok := ref["objectId"].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	if content != nil {
		if fields, ok := content["fields"].(map[string]any); ok {
			switch idVal := fields["id"].(type) {
			case string:
				return strings.TrimSpace(idVal)
			case map[string]any:
				// Whatever renders here is the dedup key, canonical or not.
				if s, ok := renderValue(idVal); ok {
					return s
				}
			}
		}
	}
	return ""
}

// displayBlock unwraps an optional display mapping, which the RPC nests one
// level under a data key.
func displayBlock(obj map[string]any) map[string]any {
	display, ok := obj["display"].(map[string]any)
	if !ok {
		return nil
	}
	if data, ok := display["data"].(map[string]any); ok {
		return data
	}
	return display
}

func objectFields(obj, content map[string]any) map[string]any {
	if content != nil {
		if fields, ok := content["fields"].(map[string]any); ok {
			return fields
		}
	}
	if fields, ok := obj["fields"].(map[string]any); ok {
		return fields
	}
	return nil
}
