package notifier

import (
	"fmt"
	"strings"

	"StratScan/internal/model"
)

// FormatScanReport renders a scan report as a Telegram HTML message: a header
// with the style, timeframes and timing, then one line per symbol.
func FormatScanReport(report *model.ScanReport) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📡 <b>StratScan %s</b> | %s\n", report.TradingStyle,
		report.ScannedAt.Format("2006-01-02 15:04")))
	b.WriteString(fmt.Sprintf("Timeframes: %s | %d symbols in %dms\n\n",
		strings.Join(report.TimeframeLabels, "/"), len(report.Results), report.DurationMs))

	for _, r := range report.Results {
		if r.Error != "" {
			b.WriteString(fmt.Sprintf("⚠️ <b>%s</b>: %s\n", r.Symbol, r.Error))
			continue
		}
		b.WriteString(fmt.Sprintf("%s <b>%s</b>: %s %s (%s)\n",
			alignmentGlyph(r), r.Symbol, r.Alignment, r.Direction, formatChecks(r.Timeframes)))
	}

	return b.String()
}

func alignmentGlyph(r model.SymbolResult) string {
	switch {
	case r.Alignment == model.AlignmentFull && r.Direction == model.DirectionBullish:
		return "🟢"
	case r.Alignment == model.AlignmentFull && r.Direction == model.DirectionBearish:
		return "🔴"
	case r.Alignment == model.AlignmentPartial:
		return "🟡"
	default:
		return "⚪"
	}
}

// formatChecks renders per-timeframe classifications, e.g. "2u→2u | 2u→1 | --".
func formatChecks(checks []model.TimeframeCheck) string {
	parts := make([]string, len(checks))
	for i, c := range checks {
		if c.Candle1 == "" {
			parts[i] = "--"
			continue
		}
		parts[i] = fmt.Sprintf("%s→%s", c.Candle1, c.Candle2)
	}
	return strings.Join(parts, " | ")
}

// Summarize condenses a report into a one-line log message.
func Summarize(report *model.ScanReport) string {
	var full, partial, failed int
	for _, r := range report.Results {
		switch {
		case r.Error != "":
			failed++
		case r.Alignment == model.AlignmentFull:
			full++
		case r.Alignment == model.AlignmentPartial:
			partial++
		}
	}
	return fmt.Sprintf("scan %s: %d symbols, %d full-ftfc, %d partial, %d failed, %dms",
		report.ID, len(report.Results), full, partial, failed, report.DurationMs)
}
