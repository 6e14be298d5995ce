package status

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"stocksentry/internal/model"
	"stocksentry/internal/movement"
	"stocksentry/internal/quote"
)

// Builder assembles the dashboard snapshot. It re-fetches quotes on every
// request and never touches the alert dedup store, so status traffic can be
// arbitrarily frequent without triggering or suppressing alerts.
type Builder struct {
	Fetcher   quote.Fetcher
	Watchlist []model.Instrument
}

// NewBuilder creates a Builder over a fixed watchlist.
func NewBuilder(f quote.Fetcher, watchlist []model.Instrument) *Builder {
	return &Builder{Fetcher: f, Watchlist: watchlist}
}

// Snapshot fetches all instruments concurrently and returns one well-formed
// row per watchlist entry, in watchlist order. Fetch failures become
// placeholder rows; Snapshot itself never fails.
func (b *Builder) Snapshot(ctx context.Context) model.Snapshot {
	rows := make([]model.StatusRow, len(b.Watchlist))
	g, gctx := errgroup.WithContext(ctx)
	for i, inst := range b.Watchlist {
		g.Go(func() error {
			q := quote.Lookup(gctx, b.Fetcher, inst.Symbol)
			row := model.StatusRow{Instrument: inst, Quote: q}
			if q.Status == model.StatusOk {
				if mv, err := movement.Evaluate(q); err == nil {
					row.Movement = mv
				} else {
					row.Quote.Status = model.StatusUnavailable
				}
			}
			rows[i] = row
			return nil
		})
	}
	g.Wait()
	return model.Snapshot{Rows: rows, FetchedAt: time.Now()}
}
