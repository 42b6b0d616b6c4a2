package calculator

import (
	"math"
	"testing"
	"time"

	"MetalSentinel/internal/model"
)

// makeBars builds count bars whose closes follow the given price function.
func makeBars(count int, price func(i int) float64) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := price(i)
		bars[i] = model.OHLCV{
			Time:   time.Now().Add(-time.Duration(count-i) * 15 * time.Minute),
			Open:   p,
			High:   p * 1.001,
			Low:    p * 0.999,
			Close:  p,
			Volume: 1000,
		}
	}
	return bars
}

func TestCalculate_InsufficientData(t *testing.T) {
	for _, n := range []int{0, 1, 49} {
		bars := makeBars(n, func(i int) float64 { return 100 + float64(i) })
		set := Calculate(bars)
		if !set.Empty() {
			t.Errorf("%d bars: expected empty set", n)
		}
	}
}

func TestCalculate_PopulatedSet(t *testing.T) {
	// Wavy series so every indicator has something to measure.
	bars := makeBars(120, func(i int) float64 {
		return 2400 + 30*math.Sin(float64(i)/7) + float64(i)*0.2
	})
	set := Calculate(bars)
	if set.Empty() {
		t.Fatal("expected populated set")
	}

	if set.RSI == nil {
		t.Fatal("RSI not computed")
	}
	if *set.RSI < 0 || *set.RSI > 100 {
		t.Errorf("RSI = %.2f, want within [0,100]", *set.RSI)
	}
	if set.SMA20 == nil || set.SMA50 == nil {
		t.Fatal("SMAs not computed")
	}
	if set.MACD == nil || set.MACDSignal == nil || set.MACDHist == nil {
		t.Fatal("MACD family not computed")
	}
	if set.BBUpper == nil || set.BBMiddle == nil || set.BBLower == nil {
		t.Fatal("Bollinger bands not computed")
	}
	if !(*set.BBUpper >= *set.BBMiddle && *set.BBMiddle >= *set.BBLower) {
		t.Errorf("band ordering violated: %.2f / %.2f / %.2f", *set.BBUpper, *set.BBMiddle, *set.BBLower)
	}
	if set.BBPosition == nil {
		t.Fatal("bb position not computed")
	}
}

func TestCalculate_FlatBandsDefaultPosition(t *testing.T) {
	// Constant price: zero band width, so the position stays unset and the
	// accessor reports mid-band.
	bars := makeBars(60, func(int) float64 { return 2400 })
	for i := range bars {
		bars[i].High = 2400
		bars[i].Low = 2400
	}
	set := Calculate(bars)
	if set.BBPosition != nil {
		t.Errorf("expected unset bb position on zero band width, got %.3f", *set.BBPosition)
	}
	if got := set.BBPositionValue(); got != 0.5 {
		t.Errorf("BBPositionValue = %.3f, want 0.5", got)
	}
	if set.SMA20 == nil || *set.SMA20 != 2400 {
		t.Errorf("SMA20 = %v, want 2400", set.SMA20)
	}
}

func TestLastFinite(t *testing.T) {
	if lastFinite(nil) != nil {
		t.Error("expected nil for empty series")
	}
	if lastFinite([]float64{1, math.NaN()}) != nil {
		t.Error("expected nil for trailing NaN")
	}
	if lastFinite([]float64{1, math.Inf(1)}) != nil {
		t.Error("expected nil for trailing Inf")
	}
	if v := lastFinite([]float64{math.NaN(), 42}); v == nil || *v != 42 {
		t.Errorf("expected 42, got %v", v)
	}
}
