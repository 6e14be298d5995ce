package quote

import (
	"context"
	"log"

	"stocksentry/internal/model"
)

// Fetcher defines the interface for fetching a single quote.
//
// A nil error with StatusPending means the provider answered but has no
// usable data yet (pre-market). A non-nil error means transport or parsing
// failed; callers fold that into StatusUnavailable via Lookup.
type Fetcher interface {
	Fetch(ctx context.Context, symbol string) (model.Quote, error)
	Name() string
}

// Lookup fetches a quote and normalizes failures into the tri-state result.
// Transport and parse errors are logged and surfaced as StatusUnavailable so
// they stay distinguishable from the provider's "no data yet" answer.
func Lookup(ctx context.Context, f Fetcher, symbol string) model.Quote {
	q, err := f.Fetch(ctx, symbol)
	if err != nil {
		log.Printf("[WARN] fetch %s via %s: %v", symbol, f.Name(), err)
		return model.Quote{Symbol: symbol, Status: model.StatusUnavailable}
	}
	return q
}
