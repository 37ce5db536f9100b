package strat

import "StratScan/internal/model"

// Alignment derives the overall consensus over a symbol's timeframe checks.
// A direction needs a strict majority of at least 2 agreeing timeframes; the
// tier is full-ftfc when all 3 agree, partial at 2, none otherwise. A 1-1-1
// split therefore yields none/none.
func Alignment(checks []model.TimeframeCheck) (model.AlignmentTier, model.Direction) {
	var bulls, bears int
	for _, c := range checks {
		switch c.Direction {
		case model.DirectionBullish:
			bulls++
		case model.DirectionBearish:
			bears++
		}
	}

	dir := model.DirectionNone
	switch {
	case bulls > bears && bulls >= 2:
		dir = model.DirectionBullish
	case bears > bulls && bears >= 2:
		dir = model.DirectionBearish
	}

	agreed := bulls
	if bears > agreed {
		agreed = bears
	}
	switch {
	case agreed >= 3:
		return model.AlignmentFull, dir
	case agreed == 2:
		return model.AlignmentPartial, dir
	default:
		return model.AlignmentNone, dir
	}
}
