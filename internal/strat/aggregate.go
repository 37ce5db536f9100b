// Package strat implements the three-state Strat candle classification and
// the full-timeframe-continuity rules built on top of it. Everything here is
// pure: no I/O, no clock, deterministic over its inputs.
package strat

import "StratScan/internal/model"

// Aggregate reduces consecutive groups of factor candles into single
// higher-timeframe candles, starting at index 0. A trailing partial group is
// discarded, so the result holds exactly floor(len(series)/factor) candles.
// A factor of 1 (or less) returns the series unchanged.
func Aggregate(series []model.Candle, factor int) []model.Candle {
	if factor <= 1 {
		return series
	}
	out := make([]model.Candle, 0, len(series)/factor)
	for i := 0; i+factor <= len(series); i += factor {
		group := series[i : i+factor]
		agg := model.Candle{
			Time:  group[0].Time,
			Open:  group[0].Open,
			High:  group[0].High,
			Low:   group[0].Low,
			Close: group[len(group)-1].Close,
		}
		for _, c := range group {
			if c.High > agg.High {
				agg.High = c.High
			}
			if c.Low < agg.Low {
				agg.Low = c.Low
			}
			agg.Volume += c.Volume
		}
		out = append(out, agg)
	}
	return out
}
