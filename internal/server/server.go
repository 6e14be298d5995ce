package server

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"stocksentry/internal/model"
	"stocksentry/internal/status"
)

// Server serves the HTML status dashboard.
type Server struct {
	builder *status.Builder
	httpSrv *http.Server
}

// New creates the dashboard server on the given listen address.
func New(listen string, builder *status.Builder) *Server {
	s := &Server{builder: builder}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	s.httpSrv = &http.Server{
		Addr:              listen,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
	}
	return s
}

// Start runs the server until ctx is cancelled, then shuts it down.
func (s *Server) Start(ctx context.Context) {
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown: %v", err)
		}
	}()
	log.Printf("[INFO] dashboard listening on %s", s.httpSrv.Addr)
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Printf("[ERROR] dashboard server: %v", err)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	snap := s.builder.Snapshot(r.Context())
	data := buildPage(snap)

	// Render into a buffer first so a template fault never half-writes.
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		log.Printf("[ERROR] render status page: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func buildPage(snap model.Snapshot) pageData {
	data := pageData{
		UpdatedAt: snap.FetchedAt.Format("2006-01-02 15:04:05"),
		Rows:      make([]pageRow, 0, len(snap.Rows)),
	}
	for _, row := range snap.Rows {
		data.Rows = append(data.Rows, buildRow(row))
	}
	return data
}

func buildRow(row model.StatusRow) pageRow {
	pr := pageRow{
		Name:   row.Instrument.Name,
		Symbol: row.Instrument.Symbol,
	}
	switch row.Quote.Status {
	case model.StatusOk:
		pr.PriceText = fmt.Sprintf("%.2f", row.Quote.Current)
		pr.ChangeText = fmt.Sprintf("%+.2f%% (%+.2f)", row.Movement.Percent, row.Movement.Absolute)
		switch {
		case row.Movement.Percent > 0:
			pr.ChangeClass = "up"
		case row.Movement.Percent < 0:
			pr.ChangeClass = "down"
		default:
			pr.ChangeClass = "flat"
		}
	case model.StatusPending:
		pr.PriceText = "—"
		pr.ChangeText = "等待开盘数据"
		pr.ChangeClass = "flat"
	default:
		pr.PriceText = "—"
		pr.ChangeText = "行情暂不可用"
		pr.ChangeClass = "flat"
	}
	return pr
}
