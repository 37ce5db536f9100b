// Package collector fetches candle series from external quote services.
package collector

import (
	"context"

	"StratScan/internal/model"
)

// Fetcher defines the interface for fetching candle series.
type Fetcher interface {
	// FetchCandles returns the candle series for symbol at the given sampling
	// interval over the given lookback range, in upstream order.
	FetchCandles(ctx context.Context, symbol string, interval model.Interval, rng string) ([]model.Candle, error)
	Name() string
}
