// Package scanner drives full-timeframe-continuity scans: one symbol across
// its three timeframes, and a whole watchlist across rate-limited batches.
package scanner

import (
	"context"
	"sync"

	"StratScan/internal/collector"
	"StratScan/internal/model"
	"StratScan/internal/strat"
)

// SymbolScanner evaluates one symbol across a set of timeframe definitions.
type SymbolScanner struct {
	Fetcher collector.Fetcher
}

// NewSymbolScanner creates a SymbolScanner on top of the given fetcher.
func NewSymbolScanner(f collector.Fetcher) *SymbolScanner {
	return &SymbolScanner{Fetcher: f}
}

// fetchKey identifies one upstream request. Definitions sharing an underlying
// source (e.g. 1H direct and 4H aggregated from the same hourly series) share
// a single fetch per Scan call.
type fetchKey struct {
	Interval model.Interval
	Range    string
}

// Scan fetches, aggregates, and evaluates every timeframe for one symbol. It
// never fails: if any underlying fetch errors, the whole symbol degrades to
// empty checks carrying the error message, so an alignment is never computed
// on partial data. All distinct fetches run concurrently and evaluation only
// starts once every one of them has resolved.
func (s *SymbolScanner) Scan(ctx context.Context, symbol string, defs []model.TimeframeDef) model.SymbolResult {
	// Distinct underlying sources, fetched once each.
	var keys []fetchKey
	seen := make(map[fetchKey]bool)
	for _, def := range defs {
		k := fetchKey{def.Source.Interval, def.Source.Range}
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}

	// Memoization map, scoped to this call only.
	series := make(map[fetchKey][]model.Candle, len(keys))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		fetchErr error
	)
	for _, key := range keys {
		wg.Add(1)
		go func(k fetchKey) {
			defer wg.Done()
			candles, err := s.Fetcher.FetchCandles(ctx, symbol, k.Interval, k.Range)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if fetchErr == nil {
					fetchErr = err
				}
				return
			}
			series[k] = candles
		}(key)
	}
	wg.Wait()

	if fetchErr != nil {
		return degradedResult(symbol, len(defs), fetchErr)
	}

	checks := make([]model.TimeframeCheck, 0, len(defs))
	for _, def := range defs {
		candles := series[fetchKey{def.Source.Interval, def.Source.Range}]
		if def.Source.Factor > 1 {
			candles = strat.Aggregate(candles, def.Source.Factor)
		}
		checks = append(checks, strat.EvaluateTimeframe(candles))
	}
	tier, dir := strat.Alignment(checks)

	return model.SymbolResult{
		Symbol:     symbol,
		Direction:  dir,
		Timeframes: checks,
		Alignment:  tier,
	}
}

// degradedResult reports a symbol whose data could not be fully fetched.
func degradedResult(symbol string, timeframes int, err error) model.SymbolResult {
	return model.SymbolResult{
		Symbol:     symbol,
		Timeframes: make([]model.TimeframeCheck, timeframes),
		Alignment:  model.AlignmentNone,
		Error:      err.Error(),
	}
}
