package poller

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"stocksentry/internal/alertstate"
	"stocksentry/internal/model"
	"stocksentry/internal/movement"
	"stocksentry/internal/notifier"
	"stocksentry/internal/quote"
	"stocksentry/internal/recorder"

	"github.com/robfig/cron/v3"
)

// Notifier is the outbound alert channel. Dispatch must not block.
type Notifier interface {
	Dispatch(ctx context.Context, text string)
}

// Poller evaluates the watchlist on a fixed cadence: fetch, derive movement,
// decide against the dedup store, dispatch. It is the only writer of the
// alert store.
type Poller struct {
	Cron      *cron.Cron
	Fetcher   quote.Fetcher
	Watchlist []model.Instrument
	Store     *alertstate.Store
	Notifier  Notifier
	Recorder  recorder.Recorder
	Ctx       context.Context
}

// New creates a Poller. Cycles are chained with SkipIfStillRunning so a slow
// cycle is never overlapped by the next tick.
func New(ctx context.Context, f quote.Fetcher, watchlist []model.Instrument, store *alertstate.Store, n Notifier, rec recorder.Recorder) *Poller {
	return &Poller{
		Cron:      cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		Fetcher:   f,
		Watchlist: watchlist,
		Store:     store,
		Notifier:  n,
		Recorder:  rec,
		Ctx:       ctx,
	}
}

// Register schedules the polling cycle at the given interval.
func (p *Poller) Register(interval time.Duration) error {
	spec := fmt.Sprintf("@every %s", interval)
	if _, err := p.Cron.AddFunc(spec, p.RunNow); err != nil {
		return fmt.Errorf("register poll cycle: %w", err)
	}
	return nil
}

// Start starts the polling schedule.
func (p *Poller) Start() {
	p.Cron.Start()
	log.Println("[INFO] poller started")
}

// Stop stops the polling schedule gracefully.
func (p *Poller) Stop() {
	p.Cron.Stop()
	log.Println("[INFO] poller stopped")
}

// RunNow executes one full polling cycle over the watchlist, in declaration
// order. One instrument's failure never aborts the rest of the cycle.
func (p *Poller) RunNow() {
	for _, inst := range p.Watchlist {
		p.check(inst)
	}
}

func (p *Poller) check(inst model.Instrument) {
	q, err := p.Fetcher.Fetch(p.Ctx, inst.Symbol)
	if err != nil {
		log.Printf("[WARN] fetch %s via %s: %v", inst.Symbol, p.Fetcher.Name(), err)
		if rerr := p.Recorder.RecordFetchFailure(&recorder.FetchFailure{
			Symbol: inst.Symbol,
			Source: p.Fetcher.Name(),
			Reason: err.Error(),
		}); rerr != nil {
			log.Printf("[ERROR] record fetch failure: %v", rerr)
		}
		return
	}
	if q.Status != model.StatusOk {
		// Pending: the provider has no quote yet, retry next tick.
		return
	}

	mv, err := movement.Evaluate(q)
	if err != nil {
		log.Printf("[WARN] evaluate %s: %v", inst.Symbol, err)
		return
	}
	if math.Abs(mv.Percent) < inst.Threshold {
		return
	}
	// Dedup on the raw fetched price: an unchanged price never re-alerts,
	// any new price above the threshold is eligible again.
	if !p.Store.Claim(inst.Symbol, q.Current) {
		return
	}

	msg := notifier.FormatAlert(inst, q, mv)
	p.Notifier.Dispatch(p.Ctx, msg)
	log.Printf("[INFO] alert dispatched: %s %+.2f%% at %.2f", inst.Symbol, mv.Percent, q.Current)

	if err := p.Recorder.RecordAlert(&recorder.AlertEvent{
		Symbol:        inst.Symbol,
		Name:          inst.Name,
		Price:         q.Current,
		OpenPrice:     q.Open,
		PercentChange: mv.Percent,
		Threshold:     inst.Threshold,
	}); err != nil {
		log.Printf("[ERROR] record alert: %v", err)
	}
}
