package scanner

import (
	"context"
	"testing"

	"StratScan/internal/collector"
	"StratScan/internal/model"
)

// candles builds a series from (high, low) pairs.
func candles(pairs ...[2]float64) []model.Candle {
	out := make([]model.Candle, len(pairs))
	for i, p := range pairs {
		out[i] = model.Candle{Open: p[1], High: p[0], Low: p[1], Close: p[0]}
	}
	return out
}

// repeat returns n copies of the given (high, low) bar.
func repeat(high, low float64, n int) [][2]float64 {
	out := make([][2]float64, n)
	for i := range out {
		out[i] = [2]float64{high, low}
	}
	return out
}

func bullishTriple() []model.Candle {
	return candles([2]float64{10, 5}, [2]float64{11, 6}, [2]float64{12, 7})
}

func insideEndingTriple() []model.Candle {
	return candles([2]float64{10, 5}, [2]float64{12, 4}, [2]float64{11, 6})
}

func TestScan_DeduplicatesSharedSource(t *testing.T) {
	// day-trade: 1H and 4H both depend on the (1h, 15d) series.
	defs, err := model.StyleTimeframes(model.StyleDayTrade)
	if err != nil {
		t.Fatal(err)
	}

	// 12 hourly bars in three rising blocks, so the 4H aggregation yields
	// three candles with rising highs and lows.
	var hourly [][2]float64
	hourly = append(hourly, repeat(10, 5, 4)...)
	hourly = append(hourly, repeat(11, 6, 4)...)
	hourly = append(hourly, repeat(12, 7, 4)...)

	mock := collector.NewMockFetcher()
	mock.SetSeries(model.Interval1h, "15d", candles(hourly...))
	mock.SetSeries(model.Interval1d, "30d", bullishTriple())

	result := NewSymbolScanner(mock).Scan(context.Background(), "AAPL", defs)
	if result.Error != "" {
		t.Fatalf("unexpected error: %s", result.Error)
	}
	if got := mock.Calls("AAPL", model.Interval1h, "15d"); got != 1 {
		t.Errorf("expected exactly 1 fetch of the shared hourly source, got %d", got)
	}
	if got := mock.Calls("AAPL", model.Interval1d, "30d"); got != 1 {
		t.Errorf("expected exactly 1 fetch of the daily source, got %d", got)
	}
	if len(result.Timeframes) != 3 {
		t.Fatalf("expected 3 timeframe checks, got %d", len(result.Timeframes))
	}
	// The aggregated 4H series ends in two consecutive 2-ups.
	if result.Timeframes[1].Direction != model.DirectionBullish {
		t.Errorf("expected bullish 4H check, got %+v", result.Timeframes[1])
	}
}

func TestScan_FailureDegradesWholeSymbol(t *testing.T) {
	defs, err := model.StyleTimeframes(model.StylePositionTrade)
	if err != nil {
		t.Fatal(err)
	}

	mock := collector.NewMockFetcher()
	mock.SetSeries(model.Interval1d, "30d", bullishTriple())
	mock.SetSeries(model.Interval1wk, "2y", bullishTriple())
	// No (1mo, 5y) series registered: that fetch fails with NoDataError.

	result := NewSymbolScanner(mock).Scan(context.Background(), "MSFT", defs)
	if result.Error == "" {
		t.Fatal("expected a populated error")
	}
	if result.Alignment != model.AlignmentNone {
		t.Errorf("expected alignment none, got %s", result.Alignment)
	}
	if result.Direction != "" {
		t.Errorf("expected unset direction, got %s", result.Direction)
	}
	if len(result.Timeframes) != 3 {
		t.Fatalf("expected 3 timeframe checks, got %d", len(result.Timeframes))
	}
	for i, check := range result.Timeframes {
		if check.Candle1 != "" || check.Candle2 != "" || check.Direction != "" {
			t.Errorf("timeframe %d: expected empty check, got %+v", i, check)
		}
	}
}

func TestScan_FullAlignment(t *testing.T) {
	defs, err := model.StyleTimeframes(model.StylePositionTrade)
	if err != nil {
		t.Fatal(err)
	}

	mock := collector.NewMockFetcher()
	mock.SetSeries(model.Interval1d, "30d", bullishTriple())
	mock.SetSeries(model.Interval1wk, "2y", bullishTriple())
	mock.SetSeries(model.Interval1mo, "5y", bullishTriple())

	result := NewSymbolScanner(mock).Scan(context.Background(), "NVDA", defs)
	if result.Error != "" {
		t.Fatalf("unexpected error: %s", result.Error)
	}
	if result.Alignment != model.AlignmentFull || result.Direction != model.DirectionBullish {
		t.Errorf("expected full-ftfc/bullish, got %s/%s", result.Alignment, result.Direction)
	}
}
