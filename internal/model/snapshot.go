package model

import "time"

// StatusRow is one dashboard entry: the instrument, its latest quote and,
// when the quote is Ok, the derived movement. Rows are always well-formed;
// a non-Ok status means the price fields are placeholders.
type StatusRow struct {
	Instrument Instrument
	Quote      Quote
	Movement   Movement
}

// Snapshot is the full dashboard state at one instant, in watchlist order.
type Snapshot struct {
	Rows      []StatusRow
	FetchedAt time.Time
}
