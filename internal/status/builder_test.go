package status

import (
	"context"
	"errors"
	"testing"

	"stocksentry/internal/model"
	"stocksentry/internal/quote"
)

var watchlist = []model.Instrument{
	{Symbol: "sz301000", Name: "肇民科技", Threshold: 2.0},
	{Symbol: "sz300035", Name: "中科电气", Threshold: 2.0},
	{Symbol: "sh600438", Name: "通威股份", Threshold: 2.0},
}

func TestSnapshot_OrderAndMovement(t *testing.T) {
	f := &quote.MockFetcher{
		Quotes: map[string]model.Quote{
			"sz301000": {Current: 20.50, Open: 20.00, Status: model.StatusOk},
			"sz300035": {Current: 18.00, Open: 20.00, Status: model.StatusOk},
			"sh600438": {Current: 19.17, Open: 19.25, Status: model.StatusOk},
		},
	}
	snap := NewBuilder(f, watchlist).Snapshot(context.Background())

	if len(snap.Rows) != len(watchlist) {
		t.Fatalf("expected %d rows, got %d", len(watchlist), len(snap.Rows))
	}
	for i, row := range snap.Rows {
		if row.Instrument.Symbol != watchlist[i].Symbol {
			t.Errorf("row %d out of order: got %s, want %s", i, row.Instrument.Symbol, watchlist[i].Symbol)
		}
	}
	if snap.Rows[0].Movement.Percent != 2.5 {
		t.Errorf("expected +2.5%% for sz301000, got %v", snap.Rows[0].Movement.Percent)
	}
	if snap.Rows[1].Movement.Percent != -10.0 {
		t.Errorf("expected -10%% for sz300035, got %v", snap.Rows[1].Movement.Percent)
	}
}

func TestSnapshot_AllUnavailableStillRenders(t *testing.T) {
	f := &quote.MockFetcher{
		Errs: map[string]error{
			"sz301000": errors.New("connection refused"),
			"sz300035": errors.New("connection refused"),
			"sh600438": errors.New("connection refused"),
		},
	}
	snap := NewBuilder(f, watchlist).Snapshot(context.Background())

	if len(snap.Rows) != len(watchlist) {
		t.Fatalf("expected %d placeholder rows, got %d", len(watchlist), len(snap.Rows))
	}
	for i, row := range snap.Rows {
		if row.Instrument.Symbol != watchlist[i].Symbol {
			t.Errorf("row %d out of order: got %s", i, row.Instrument.Symbol)
		}
		if row.Quote.Status != model.StatusUnavailable {
			t.Errorf("row %d: expected unavailable, got %v", i, row.Quote.Status)
		}
	}
}

func TestSnapshot_PendingAndOkMixed(t *testing.T) {
	f := &quote.MockFetcher{
		Quotes: map[string]model.Quote{
			"sh600438": {Current: 19.50, Open: 19.25, Status: model.StatusOk},
			// sz301000 and sz300035 unmapped: MockFetcher answers pending.
		},
	}
	snap := NewBuilder(f, watchlist).Snapshot(context.Background())

	if snap.Rows[0].Quote.Status != model.StatusPending {
		t.Errorf("expected pending for sz301000, got %v", snap.Rows[0].Quote.Status)
	}
	if snap.Rows[2].Quote.Status != model.StatusOk {
		t.Errorf("expected ok for sh600438, got %v", snap.Rows[2].Quote.Status)
	}
}
