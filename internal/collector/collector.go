package collector

import (
	"fmt"
	"time"

	"MetalSentinel/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars []model.OHLCV
	Err  error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchBars(_ string, _ string, days int) ([]model.OHLCV, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Bars != nil {
		return m.Bars, nil
	}
	return GenerateMockBars(2400, days*26), nil
}

// GenerateMockBars produces a gently drifting synthetic series around basePrice.
func GenerateMockBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.0005)
		bars[i] = model.OHLCV{
			Time:   time.Now().Add(-time.Duration(count-i) * 15 * time.Minute),
			Open:   p * 0.999,
			High:   p * 1.002,
			Low:    p * 0.998,
			Close:  p,
			Volume: 1000,
		}
	}
	return bars
}

// Collector fetches intraday price series for the analysis pipeline.
type Collector struct {
	Fetcher  Fetcher
	Interval string
}

// NewCollector creates a new Collector fetching bars at the given interval.
func NewCollector(fetcher Fetcher, interval string) *Collector {
	return &Collector{Fetcher: fetcher, Interval: interval}
}

// Collect fetches the last `days` of bars for symbol and wraps them as a
// PriceSeries whose CurrentPrice is the final close.
func (c *Collector) Collect(symbol string, days int) (*model.PriceSeries, error) {
	bars, err := c.Fetcher.FetchBars(symbol, c.Interval, days)
	if err != nil {
		return nil, fmt.Errorf("fetch bars for %s: %w", symbol, err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("no bars returned for %s", symbol)
	}
	return &model.PriceSeries{
		Symbol:       symbol,
		Bars:         bars,
		CurrentPrice: bars[len(bars)-1].Close,
		FetchedAt:    time.Now(),
	}, nil
}
