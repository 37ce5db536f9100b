package collector

import (
	"context"
	"fmt"
	"sync"
	"time"

	"StratScan/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
// With no registered series it generates a mild uptrend so the scanner stays
// usable offline.
type MockFetcher struct {
	Delay time.Duration // simulated upstream latency per fetch

	mu     sync.Mutex
	series map[string][]model.Candle // keyed by interval|range
	errs   map[string]error          // keyed by symbol, takes precedence
	calls  map[string]int            // keyed by symbol|interval|range
}

// NewMockFetcher creates an empty mock fetcher.
func NewMockFetcher() *MockFetcher {
	return &MockFetcher{
		series: make(map[string][]model.Candle),
		errs:   make(map[string]error),
		calls:  make(map[string]int),
	}
}

func (m *MockFetcher) Name() string { return "mock" }

// SetSeries registers the series returned for an (interval, range) pair,
// regardless of symbol.
func (m *MockFetcher) SetSeries(interval model.Interval, rng string, candles []model.Candle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.series[seriesKey(interval, rng)] = candles
}

// FailSymbol makes every fetch for symbol return err.
func (m *MockFetcher) FailSymbol(symbol string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs[symbol] = err
}

// Calls reports how many fetches were issued for symbol at (interval, range).
func (m *MockFetcher) Calls(symbol string, interval model.Interval, rng string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[callKey(symbol, interval, rng)]
}

// FetchCandles implements Fetcher.
func (m *MockFetcher) FetchCandles(ctx context.Context, symbol string, interval model.Interval, rng string) ([]model.Candle, error) {
	if m.Delay > 0 {
		select {
		case <-ctx.Done():
			return nil, &TransportError{Symbol: symbol, Err: ctx.Err()}
		case <-time.After(m.Delay):
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[callKey(symbol, interval, rng)]++

	if err := m.errs[symbol]; err != nil {
		return nil, err
	}
	if len(m.series) == 0 {
		return generateMockCandles(100.0, 20), nil
	}
	candles, ok := m.series[seriesKey(interval, rng)]
	if !ok {
		return nil, &NoDataError{Symbol: symbol, Reason: fmt.Sprintf("no mock series for %s/%s", interval, rng)}
	}
	return candles, nil
}

func seriesKey(interval model.Interval, rng string) string {
	return string(interval) + "|" + rng
}

func callKey(symbol string, interval model.Interval, rng string) string {
	return symbol + "|" + string(interval) + "|" + rng
}

func generateMockCandles(basePrice float64, count int) []model.Candle {
	candles := make([]model.Candle, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.002)
		candles[i] = model.Candle{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.006,
			Low:    p * 0.994,
			Close:  p,
			Volume: 1000000,
		}
	}
	return candles
}
