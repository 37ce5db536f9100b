// Package scheduler runs watchlist scans on a cron schedule and handles
// interactive commands.
package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"StratScan/internal/model"
	"StratScan/internal/notifier"
	"StratScan/internal/scanner"
)

// Scheduler drives recurring scans.
type Scheduler struct {
	Cron     *cron.Cron
	Orch     *scanner.Orchestrator
	Notifier *notifier.TelegramNotifier // nil when Telegram is not configured
	Style    model.TradingStyle
	Symbols  []string
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, orch *scanner.Orchestrator, tn *notifier.TelegramNotifier, style model.TradingStyle, symbols []string) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Orch:     orch,
		Notifier: tn,
		Style:    style,
		Symbols:  symbols,
		Ctx:      ctx,
	}
}

// Register registers the recurring scan task.
func (s *Scheduler) Register(scanCron string) error {
	if _, err := s.Cron.AddFunc(scanCron, s.scanTask); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunScanNow executes a scan immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunScanNow() {
	s.scanTask()
}

func (s *Scheduler) scanTask() {
	log.Printf("[INFO] running watchlist scan (style=%s, %d symbols)", s.Style, len(s.Symbols))
	report, err := s.Orch.ScanWatchlist(s.Ctx, s.Symbols, s.Style)
	if err != nil {
		// Only an invalid style lands here; config validation catches it at
		// startup, so this is a programmer error.
		log.Printf("[ERROR] watchlist scan: %v", err)
		return
	}
	log.Printf("[INFO] %s", notifier.Summarize(report))
	s.trySend(notifier.FormatScanReport(report))
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/scan":
		s.scanTask()
		return ""
	case "/watchlist":
		return fmt.Sprintf("Watching %d symbols (style %s):\n%v", len(s.Symbols), s.Style, s.Symbols)
	default:
		return "Available commands:\n• /scan — run a watchlist scan now\n• /watchlist — show the watched symbols"
	}
}

func (s *Scheduler) trySend(text string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
