package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"stocksentry/internal/alertstate"
	"stocksentry/internal/config"
	"stocksentry/internal/notifier"
	"stocksentry/internal/poller"
	"stocksentry/internal/quote"
	"stocksentry/internal/recorder"
	"stocksentry/internal/server"
	"stocksentry/internal/status"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] stocksentry starting...")

	_ = godotenv.Load()

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	timeout := time.Duration(cfg.DataSource.TimeoutSec) * time.Second
	var fetcher quote.Fetcher
	if cfg.DataSource.Provider == "sina" {
		fetcher = quote.NewSinaFetcher(cfg.DataSource.BaseURL, cfg.Proxy, timeout)
	} else {
		fetcher = quote.NewTencentFetcher(cfg.DataSource.BaseURL, cfg.Proxy, timeout)
	}
	log.Printf("[INFO] quote source: %s", fetcher.Name())

	watchlist := cfg.Instruments()
	log.Printf("[INFO] watching %d instruments", len(watchlist))

	// Init webhook notifier
	wn := notifier.NewWebhookNotifier(cfg.Webhook.URL, cfg.Proxy)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init poller
	interval := time.Duration(cfg.Poll.IntervalSec) * time.Second
	p := poller.New(ctx, fetcher, watchlist, alertstate.NewStore(), wn, rec)
	if err := p.Register(interval); err != nil {
		log.Fatalf("[FATAL] register poll cycle: %v", err)
	}
	p.Start()
	defer p.Stop()

	// Start dashboard server
	srv := server.New(cfg.Server.Listen, status.NewBuilder(fetcher, watchlist))
	go srv.Start(ctx)

	// Announce startup through the webhook
	wn.Dispatch(ctx, notifier.FormatStartup(watchlist, interval))

	// Optional: run a cycle immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing poll cycle now")
		go p.RunNow()
	}

	log.Println("[INFO] stocksentry is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] stocksentry stopped")
}
