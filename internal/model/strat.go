package model

import "time"

// CandleType is the three-state Strat classification of a candle measured
// against the candle immediately before it.
type CandleType string

const (
	CandleInside  CandleType = "1"  // fully contained within the prior range
	CandleTwoUp   CandleType = "2u" // breaks only the prior high
	CandleTwoDown CandleType = "2d" // breaks only the prior low
	CandleOutside CandleType = "3"  // engulfs the prior range
)

// Direction is a directional signal for one timeframe or a whole symbol.
type Direction string

const (
	DirectionBullish Direction = "bullish"
	DirectionBearish Direction = "bearish"
	DirectionNone    Direction = "none"
)

// AlignmentTier grades how many of a symbol's timeframes agree on a direction.
type AlignmentTier string

const (
	AlignmentFull    AlignmentTier = "full-ftfc"
	AlignmentPartial AlignmentTier = "partial"
	AlignmentNone    AlignmentTier = "none"
)

// TimeframeCheck is the evaluation of a single timeframe: the last two
// completed candle classifications and the direction they imply. Zero-valued
// fields mean the timeframe could not be evaluated (fewer than 3 candles, or
// the symbol's fetch failed).
type TimeframeCheck struct {
	Candle1   CandleType `json:"candle1,omitempty"`
	Candle2   CandleType `json:"candle2,omitempty"`
	Direction Direction  `json:"direction,omitempty"`
}

// SymbolResult is the scan outcome for one symbol. When Error is non-empty
// every check is empty, Alignment is none and Direction is unset.
type SymbolResult struct {
	Symbol     string           `json:"symbol"`
	Direction  Direction        `json:"direction,omitempty"`
	Timeframes []TimeframeCheck `json:"timeframes"`
	Alignment  AlignmentTier    `json:"alignment"`
	Error      string           `json:"error,omitempty"`
}

// ScanReport is the artifact of one watchlist scan.
type ScanReport struct {
	ID              string         `json:"id"`
	Results         []SymbolResult `json:"results"`
	ScannedAt       time.Time      `json:"scannedAt"`
	DurationMs      int64          `json:"durationMs"`
	TradingStyle    TradingStyle   `json:"tradingStyle"`
	TimeframeLabels []string       `json:"timeframeLabels"`
}
