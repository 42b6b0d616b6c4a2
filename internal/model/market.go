package model

import "time"

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries holds a chronological run of intraday bars for one instrument.
// Bars must be ascending in time; all indicator math assumes that order.
type PriceSeries struct {
	Symbol       string
	Bars         []OHLCV
	CurrentPrice float64
	FetchedAt    time.Time
}

// Closes returns the closing prices of the series in order.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}
