package positions

import (
	"context"

	"github.com/suitools/suiwallet/internal/model"
)

const (
	// DefaultMaxPages bounds how many owned-object pages a single scan
	// will walk.
	DefaultMaxPages = 5
	// DefaultPageSize is the per-page object count requested from the
	// endpoint.
	DefaultPageSize = 50
)

// Page is one batch of raw owned-object records plus continuation state.
type Page struct {
	Objects []map[string]any
	Cursor  any
	HasMore bool
}

// PageFunc fetches one page of owned objects starting at cursor.
type PageFunc func(ctx context.Context, cursor any) (Page, error)

// Scan walks up to maxPages of owned objects, feeds each record through
// Build, and deduplicates the results by object id. Positions without an id
// are always kept.
func Scan(ctx context.Context, fetch PageFunc, maxPages int) ([]model.ProtocolPosition, error) {
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	out := make([]model.ProtocolPosition, 0)
	seen := make(map[string]struct{})
	var cursor any

	for page := 0; page < maxPages; page++ {
		batch, err := fetch(ctx, cursor)
		if err != nil {
			return nil, err
		}
		for _, obj := range batch.Objects {
			position, ok := Build(obj)
			if !ok {
				continue
			}
			if position.ObjectID != "" {
				if _, dup := seen[position.ObjectID]; dup {
					continue
				}
				seen[position.ObjectID] = struct{}{}
			}
			out = append(out, position)
		}
		if !batch.HasMore {
			break
		}
		cursor = batch.Cursor
	}
	return out, nil
}
