package collector

import "MetalSentinel/internal/model"

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	// FetchBars returns bars at the given interval (e.g. "15m") covering
	// roughly the last `days` calendar days, in ascending time order.
	FetchBars(symbol, interval string, days int) ([]model.OHLCV, error)
	Name() string
}
