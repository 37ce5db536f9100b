package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"StratScan/internal/collector"
	"StratScan/internal/config"
	"StratScan/internal/model"
	"StratScan/internal/notifier"
	"StratScan/internal/scanner"
	"StratScan/internal/scheduler"
	"StratScan/internal/watchlist"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StratScan starting...")

	if err := godotenv.Load(); err == nil {
		log.Println("[INFO] loaded .env")
	}

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
	var fetcher collector.Fetcher
	if cfg.DataSource.Provider == "mock" {
		fetcher = collector.NewMockFetcher()
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Resolve the symbol universe: explicit config wins, then the sqlite
	// watchlist store, then the built-in defaults.
	symbols := cfg.Scanner.Symbols
	if len(symbols) == 0 && cfg.Database.SQLitePath != "" {
		store, err := watchlist.Open(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] open watchlist store failed, using built-in watchlist: %v", err)
		} else {
			defer store.Close()
			if symbols, err = store.List(); err != nil {
				log.Fatalf("[FATAL] load watchlist: %v", err)
			}
		}
	}
	log.Printf("[INFO] watching %d symbols, trading style %s", len(symbols), cfg.Scanner.TradingStyle)

	// Init orchestrator
	orch := scanner.NewOrchestrator(fetcher)

	// Init Telegram notifier (optional: without it, reports are log-only)
	var tn *notifier.TelegramNotifier
	if cfg.Telegram.BotToken != "" {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, orch, tn, model.TradingStyle(cfg.Scanner.TradingStyle), symbols)
	if err := sched.Register(cfg.Schedule.ScanCron); err != nil {
		log.Fatalf("[FATAL] register scan task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Start Telegram polling
	if tn != nil {
		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Println("[INFO] Telegram polling started")
	}

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, scanning now")
		go sched.RunScanNow()
	}

	log.Println("[INFO] StratScan is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] StratScan stopped")
}
