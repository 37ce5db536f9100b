package model

import "time"

// Candle represents a single OHLCV bar. Immutable once produced; a series is
// ordered ascending by time.
type Candle struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}
