package strat

import "StratScan/internal/model"

// EvaluateTimeframe classifies the last two completed transitions of a series
// and derives its directional signal: bullish only when both are 2-up,
// bearish only when both are 2-down. Fewer than 3 candles yields an empty
// check, since two transitions need two prior candles.
func EvaluateTimeframe(series []model.Candle) model.TimeframeCheck {
	if len(series) < 3 {
		return model.TimeframeCheck{}
	}
	n := len(series)
	c1 := Classify(series[n-2], series[n-3])
	c2 := Classify(series[n-1], series[n-2])

	dir := model.DirectionNone
	switch {
	case c1 == model.CandleTwoUp && c2 == model.CandleTwoUp:
		dir = model.DirectionBullish
	case c1 == model.CandleTwoDown && c2 == model.CandleTwoDown:
		dir = model.DirectionBearish
	}
	return model.TimeframeCheck{Candle1: c1, Candle2: c2, Direction: dir}
}
