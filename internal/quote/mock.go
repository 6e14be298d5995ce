package quote

import (
	"context"

	"stocksentry/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Quotes map[string]model.Quote
	Errs   map[string]error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) Fetch(_ context.Context, symbol string) (model.Quote, error) {
	if err, ok := m.Errs[symbol]; ok {
		return model.Quote{}, err
	}
	if q, ok := m.Quotes[symbol]; ok {
		q.Symbol = symbol
		return q, nil
	}
	return model.Quote{Symbol: symbol, Status: model.StatusPending}, nil
}
