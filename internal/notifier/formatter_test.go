package notifier

import (
	"strings"
	"testing"
	"time"

	"StratScan/internal/model"
)

func TestFormatScanReport(t *testing.T) {
	report := &model.ScanReport{
		ID:        "r-1",
		ScannedAt: time.Date(2026, 8, 27, 14, 30, 0, 0, time.UTC),
		DurationMs:      1234,
		TradingStyle:    model.StyleSwingTrade,
		TimeframeLabels: []string{"4H", "1D", "1W"},
		Results: []model.SymbolResult{
			{
				Symbol:    "SPY",
				Direction: model.DirectionBullish,
				Alignment: model.AlignmentFull,
				Timeframes: []model.TimeframeCheck{
					{Candle1: model.CandleTwoUp, Candle2: model.CandleTwoUp, Direction: model.DirectionBullish},
					{Candle1: model.CandleTwoUp, Candle2: model.CandleTwoUp, Direction: model.DirectionBullish},
					{Candle1: model.CandleTwoUp, Candle2: model.CandleTwoUp, Direction: model.DirectionBullish},
				},
			},
			{
				Symbol:     "NOPE",
				Alignment:  model.AlignmentNone,
				Timeframes: make([]model.TimeframeCheck, 3),
				Error:      "no data for NOPE: empty result",
			},
		},
	}

	msg := FormatScanReport(report)
	for _, want := range []string{"swing-trade", "4H/1D/1W", "SPY", "full-ftfc bullish", "2u→2u", "NOPE", "empty result"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected message to contain %q:\n%s", want, msg)
		}
	}
}

func TestSummarize(t *testing.T) {
	report := &model.ScanReport{
		ID: "r-2",
		Results: []model.SymbolResult{
			{Symbol: "A", Alignment: model.AlignmentFull},
			{Symbol: "B", Alignment: model.AlignmentPartial},
			{Symbol: "C", Alignment: model.AlignmentNone},
			{Symbol: "D", Error: "boom"},
		},
	}
	got := Summarize(report)
	for _, want := range []string{"4 symbols", "1 full-ftfc", "1 partial", "1 failed"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected summary to contain %q, got %q", want, got)
		}
	}
}
