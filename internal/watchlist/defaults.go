// Package watchlist persists the symbol universe scanned when the caller
// passes no explicit symbols.
package watchlist

// Entry is one watched symbol. Tier 1 holds the primary index/megacap names,
// tier 2 the high-volume rotation names.
type Entry struct {
	Symbol string
	Tier   int
}

// DefaultEntries is the built-in 17-symbol watchlist used to seed a fresh
// store and as the fallback when no store is available.
var DefaultEntries = []Entry{
	{Symbol: "SPY", Tier: 1},
	{Symbol: "QQQ", Tier: 1},
	{Symbol: "AAPL", Tier: 1},
	{Symbol: "MSFT", Tier: 1},
	{Symbol: "NVDA", Tier: 1},
	{Symbol: "AMZN", Tier: 1},
	{Symbol: "GOOGL", Tier: 1},
	{Symbol: "META", Tier: 1},
	{Symbol: "TSLA", Tier: 1},
	{Symbol: "AMD", Tier: 2},
	{Symbol: "NFLX", Tier: 2},
	{Symbol: "JPM", Tier: 2},
	{Symbol: "XOM", Tier: 2},
	{Symbol: "BA", Tier: 2},
	{Symbol: "DIS", Tier: 2},
	{Symbol: "COST", Tier: 2},
	{Symbol: "CRM", Tier: 2},
}

// DefaultSymbols returns the default watchlist symbols, tier 1 first.
func DefaultSymbols() []string {
	out := make([]string, len(DefaultEntries))
	for i, e := range DefaultEntries {
		out[i] = e.Symbol
	}
	return out
}
