package model

import "testing"

func TestStyleTimeframes(t *testing.T) {
	for _, style := range []TradingStyle{StyleDayTrade, StyleSwingTrade, StylePositionTrade} {
		defs, err := StyleTimeframes(style)
		if err != nil {
			t.Fatalf("%s: %v", style, err)
		}
		if len(defs) != 3 {
			t.Fatalf("%s: expected exactly 3 timeframes, got %d", style, len(defs))
		}
		for _, def := range defs {
			if def.Label == "" || def.Source.Interval == "" || def.Source.Range == "" {
				t.Errorf("%s: incomplete definition %+v", style, def)
			}
		}
	}
}

func TestStyleTimeframes_Unknown(t *testing.T) {
	if _, err := StyleTimeframes("scalp"); err == nil {
		t.Fatal("expected an error for an unknown style")
	}
}

func TestStyleTimeframes_AggregateSources(t *testing.T) {
	// 4H has no native upstream interval and must derive from hourly bars.
	defs, err := StyleTimeframes(StyleDayTrade)
	if err != nil {
		t.Fatal(err)
	}
	fourH := defs[1]
	if fourH.Label != "4H" || fourH.Source.Interval != Interval1h || fourH.Source.Factor != 4 {
		t.Errorf("unexpected 4H definition: %+v", fourH)
	}
	// 1H and 4H intentionally share the same underlying direct source.
	if defs[0].Source.Interval != fourH.Source.Interval || defs[0].Source.Range != fourH.Source.Range {
		t.Errorf("1H and 4H should share a source: %+v vs %+v", defs[0].Source, fourH.Source)
	}
}
