package model

import "fmt"

// Interval is an upstream sampling interval for the chart endpoint.
type Interval string

const (
	Interval5m  Interval = "5m"
	Interval15m Interval = "15m"
	Interval1h  Interval = "1h"
	Interval1d  Interval = "1d"
	Interval1wk Interval = "1wk"
	Interval1mo Interval = "1mo"
)

// TimeframeSource describes how a timeframe's candles are obtained. With
// Factor <= 1 the fetched series is used as-is; with Factor > 1 the series is
// derived by grouping that many source candles into one.
type TimeframeSource struct {
	Interval Interval
	Range    string
	Factor   int
}

// TimeframeDef names one monitored timeframe and where its candles come from.
type TimeframeDef struct {
	Label  string
	Source TimeframeSource
}

// TradingStyle selects which three timeframes are monitored together.
type TradingStyle string

const (
	StyleDayTrade      TradingStyle = "day-trade"
	StyleSwingTrade    TradingStyle = "swing-trade"
	StylePositionTrade TradingStyle = "position-trade"
)

// DefaultStyle is used when no trading style is configured.
const DefaultStyle = StyleSwingTrade

// styleTimeframes maps each style to its three timeframes, shortest to
// longest. There is no native 4h interval upstream, so 4H is derived from
// hourly bars.
var styleTimeframes = map[TradingStyle][]TimeframeDef{
	StyleDayTrade: {
		{Label: "1H", Source: TimeframeSource{Interval: Interval1h, Range: "15d"}},
		{Label: "4H", Source: TimeframeSource{Interval: Interval1h, Range: "15d", Factor: 4}},
		{Label: "1D", Source: TimeframeSource{Interval: Interval1d, Range: "30d"}},
	},
	StyleSwingTrade: {
		{Label: "4H", Source: TimeframeSource{Interval: Interval1h, Range: "15d", Factor: 4}},
		{Label: "1D", Source: TimeframeSource{Interval: Interval1d, Range: "30d"}},
		{Label: "1W", Source: TimeframeSource{Interval: Interval1wk, Range: "2y"}},
	},
	StylePositionTrade: {
		{Label: "1D", Source: TimeframeSource{Interval: Interval1d, Range: "30d"}},
		{Label: "1W", Source: TimeframeSource{Interval: Interval1wk, Range: "2y"}},
		{Label: "1M", Source: TimeframeSource{Interval: Interval1mo, Range: "5y"}},
	},
}

// StyleTimeframes resolves a trading style to its three timeframe definitions.
// An unknown style is a configuration error and fails fast.
func StyleTimeframes(style TradingStyle) ([]TimeframeDef, error) {
	defs, ok := styleTimeframes[style]
	if !ok {
		return nil, fmt.Errorf("unknown trading style %q", style)
	}
	return defs, nil
}
