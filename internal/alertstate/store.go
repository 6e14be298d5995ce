package alertstate

import "sync"

// Store maps each symbol to the price at which an alert was last sent.
// It is the only mutable shared state in the process; all access goes
// through the mutex so polling and tests may overlap safely. Entries are
// never deleted; growth is bounded by the watchlist size.
type Store struct {
	mu          sync.Mutex
	lastAlerted map[string]float64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{lastAlerted: make(map[string]float64)}
}

// ShouldAlert reports whether an alert at price would be new for symbol:
// true iff no alert was recorded yet or the recorded price differs. The
// comparison is exact on the raw fetched price, not the rounded display
// value.
func (s *Store) ShouldAlert(symbol string, price float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shouldAlert(symbol, price)
}

// RecordAlert remembers price as the last alerted price for symbol.
func (s *Store) RecordAlert(symbol string, price float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastAlerted[symbol] = price
}

// Claim is the dispatch decision: it checks and records in one critical
// section, so concurrent eligible evaluations for the same symbol and price
// yield exactly one true result.
func (s *Store) Claim(symbol string, price float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.shouldAlert(symbol, price) {
		return false
	}
	s.lastAlerted[symbol] = price
	return true
}

// Len returns the number of symbols that have alerted at least once.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lastAlerted)
}

func (s *Store) shouldAlert(symbol string, price float64) bool {
	last, ok := s.lastAlerted[symbol]
	return !ok || last != price
}
