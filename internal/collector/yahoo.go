package collector

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"StratScan/internal/model"
)

// fetchTimeout is the fixed per-request deadline against the quote service.
const fetchTimeout = 10 * time.Second

// YahooFetcher implements Fetcher using the Yahoo Finance v8 chart API.
type YahooFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewYahooFetcher creates a new Yahoo Finance fetcher with optional proxy support.
func NewYahooFetcher(proxyURL string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooFetcher{
		BaseURL: "https://query1.finance.yahoo.com",
		Client: &http.Client{
			Timeout:   fetchTimeout,
			Transport: transport,
		},
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// yahooChart is the response structure from the Yahoo Finance chart API.
// Quote entries may be null (holidays, halted sessions), hence the pointers.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// FetchCandles retrieves one candle series. Candles missing any of
// open/high/low/close are dropped; a missing volume defaults to 0. The
// upstream order is trusted and preserved.
func (f *YahooFetcher) FetchCandles(ctx context.Context, symbol string, interval model.Interval, rng string) ([]model.Candle, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=%s&range=%s",
		f.BaseURL, url.PathEscape(symbol), interval, rng)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &TransportError{Symbol: symbol, Err: err}
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, &TimeoutError{Symbol: symbol}
		}
		return nil, &TransportError{Symbol: symbol, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return nil, &TimeoutError{Symbol: symbol}
		}
		return nil, &TransportError{Symbol: symbol, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamHTTPError{Symbol: symbol, Status: resp.StatusCode}
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, &NoDataError{Symbol: symbol, Reason: "malformed payload"}
	}
	if chart.Chart.Error != nil {
		return nil, &NoDataError{Symbol: symbol, Reason: chart.Chart.Error.Description}
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 ||
		len(chart.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, &NoDataError{Symbol: symbol, Reason: "empty result"}
	}

	result := chart.Chart.Result[0]
	quote := result.Indicators.Quote[0]
	candles := make([]model.Candle, 0, len(result.Timestamp))

	for i, ts := range result.Timestamp {
		if i >= len(quote.Open) || i >= len(quote.High) || i >= len(quote.Low) || i >= len(quote.Close) {
			break
		}
		o, h, l, c := quote.Open[i], quote.High[i], quote.Low[i], quote.Close[i]
		if o == nil || h == nil || l == nil || c == nil {
			continue // incomplete bar, drop it
		}
		var vol float64
		if i < len(quote.Volume) && quote.Volume[i] != nil {
			vol = *quote.Volume[i]
		}
		candles = append(candles, model.Candle{
			Time:   time.Unix(ts, 0),
			Open:   *o,
			High:   *h,
			Low:    *l,
			Close:  *c,
			Volume: vol,
		})
	}
	return candles, nil
}

func isTimeout(err error) bool {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
