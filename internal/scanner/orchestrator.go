package scanner

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"StratScan/internal/collector"
	"StratScan/internal/model"
	"StratScan/internal/watchlist"
)

const (
	// DefaultBatchSize caps how many symbols hit the quote service at once.
	DefaultBatchSize = 5
	// DefaultBatchDelay is the throttle inserted between consecutive batches.
	DefaultBatchDelay = 600 * time.Millisecond
)

// Orchestrator runs watchlist scans in rate-limited batches.
type Orchestrator struct {
	Symbols    *SymbolScanner
	BatchSize  int
	BatchDelay time.Duration
}

// NewOrchestrator creates an orchestrator with the default batch settings.
func NewOrchestrator(f collector.Fetcher) *Orchestrator {
	return &Orchestrator{
		Symbols:    NewSymbolScanner(f),
		BatchSize:  DefaultBatchSize,
		BatchDelay: DefaultBatchDelay,
	}
}

// ScanWatchlist scans the given symbols (the default watchlist when empty)
// under the given trading style. Symbols within a batch are scanned
// concurrently; batches run strictly one after another with a fixed delay
// between consecutive batches, never after the last. Results come back in
// input order. The only failure mode is an unknown trading style; per-symbol
// failures are captured inside the report.
func (o *Orchestrator) ScanWatchlist(ctx context.Context, symbols []string, style model.TradingStyle) (*model.ScanReport, error) {
	if style == "" {
		style = model.DefaultStyle
	}
	defs, err := model.StyleTimeframes(style)
	if err != nil {
		return nil, err
	}
	if len(symbols) == 0 {
		symbols = watchlist.DefaultSymbols()
	}

	start := time.Now()
	results := make([]model.SymbolResult, len(symbols))

	for offset := 0; offset < len(symbols); offset += o.BatchSize {
		if offset > 0 {
			// Batch-granularity throttle against the quote service.
			time.Sleep(o.BatchDelay)
		}
		end := offset + o.BatchSize
		if end > len(symbols) {
			end = len(symbols)
		}
		log.Printf("[INFO] scanning symbols %d-%d of %d", offset+1, end, len(symbols))

		var wg sync.WaitGroup
		for i, symbol := range symbols[offset:end] {
			wg.Add(1)
			go func(slot int, sym string) {
				defer wg.Done()
				results[slot] = o.Symbols.Scan(ctx, sym, defs)
			}(offset+i, symbol)
		}
		wg.Wait()
	}

	labels := make([]string, len(defs))
	for i, def := range defs {
		labels[i] = def.Label
	}
	return &model.ScanReport{
		ID:              uuid.NewString(),
		Results:         results,
		ScannedAt:       start,
		DurationMs:      time.Since(start).Milliseconds(),
		TradingStyle:    style,
		TimeframeLabels: labels,
	}, nil
}
