package collector

import "fmt"

// TimeoutError indicates the upstream exceeded the request deadline.
type TimeoutError struct {
	Symbol string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("quote request for %s timed out", e.Symbol)
}

// UpstreamHTTPError indicates a non-success transport response.
type UpstreamHTTPError struct {
	Symbol string
	Status int
}

func (e *UpstreamHTTPError) Error() string {
	return fmt.Sprintf("quote request for %s: upstream status %d", e.Symbol, e.Status)
}

// NoDataError indicates the upstream answered without a usable result payload.
type NoDataError struct {
	Symbol string
	Reason string
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("no data for %s: %s", e.Symbol, e.Reason)
}

// TransportError wraps a network-level failure.
type TransportError struct {
	Symbol string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("quote request for %s failed: %v", e.Symbol, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
