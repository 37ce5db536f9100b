package strat

import (
	"testing"

	"StratScan/internal/model"
)

// seriesOf builds a series from (high, low) pairs.
func seriesOf(pairs ...[2]float64) []model.Candle {
	out := make([]model.Candle, len(pairs))
	for i, p := range pairs {
		out[i] = bar(p[0], p[1])
	}
	return out
}

func TestEvaluateTimeframe_InsufficientHistory(t *testing.T) {
	for n := 0; n < 3; n++ {
		check := EvaluateTimeframe(seriesOf([][2]float64{{10, 5}, {11, 6}}[:n]...))
		if check.Candle1 != "" || check.Candle2 != "" || check.Direction != "" {
			t.Errorf("n=%d: expected empty check, got %+v", n, check)
		}
	}
}

func TestEvaluateTimeframe_Directions(t *testing.T) {
	tests := []struct {
		name    string
		series  []model.Candle
		candle1 model.CandleType
		candle2 model.CandleType
		dir     model.Direction
	}{
		{
			"two consecutive 2-ups",
			seriesOf([2]float64{10, 5}, [2]float64{11, 6}, [2]float64{12, 7}),
			model.CandleTwoUp, model.CandleTwoUp, model.DirectionBullish,
		},
		{
			"two consecutive 2-downs",
			seriesOf([2]float64{12, 7}, [2]float64{11, 6}, [2]float64{10, 5}),
			model.CandleTwoDown, model.CandleTwoDown, model.DirectionBearish,
		},
		{
			"2-up then inside is not directional",
			seriesOf([2]float64{10, 5}, [2]float64{12, 6}, [2]float64{11, 7}),
			model.CandleTwoUp, model.CandleInside, model.DirectionNone,
		},
		{
			"outside then 2-up is not directional",
			seriesOf([2]float64{10, 5}, [2]float64{12, 4}, [2]float64{13, 6}),
			model.CandleOutside, model.CandleTwoUp, model.DirectionNone,
		},
		{
			"only the last two transitions count",
			seriesOf([2]float64{20, 15}, [2]float64{10, 5}, [2]float64{11, 6}, [2]float64{12, 7}),
			model.CandleTwoUp, model.CandleTwoUp, model.DirectionBullish,
		},
	}
	for _, tt := range tests {
		check := EvaluateTimeframe(tt.series)
		if check.Candle1 != tt.candle1 || check.Candle2 != tt.candle2 {
			t.Errorf("%s: expected %s/%s, got %s/%s", tt.name, tt.candle1, tt.candle2, check.Candle1, check.Candle2)
		}
		if check.Direction != tt.dir {
			t.Errorf("%s: expected direction %s, got %s", tt.name, tt.dir, check.Direction)
		}
	}
}
