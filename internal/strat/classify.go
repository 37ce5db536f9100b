package strat

import "StratScan/internal/model"

// Classify assigns the Strat type of curr measured against the immediately
// preceding candle. The 2-up/2-down checks run before the outside check, so a
// tie on either bound resolves to a directional two rather than a three; a
// simultaneous break of both bounds is always a three.
func Classify(curr, prev model.Candle) model.CandleType {
	switch {
	case curr.High > prev.High && curr.Low >= prev.Low:
		return model.CandleTwoUp
	case curr.Low < prev.Low && curr.High <= prev.High:
		return model.CandleTwoDown
	case curr.High > prev.High && curr.Low < prev.Low:
		return model.CandleOutside
	default:
		return model.CandleInside
	}
}
