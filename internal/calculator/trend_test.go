package calculator

import (
	"testing"
	"time"

	"MetalSentinel/internal/model"
)

func barsFromHighsLows(highs, lows []float64) []model.OHLCV {
	bars := make([]model.OHLCV, len(highs))
	for i := range highs {
		bars[i] = model.OHLCV{
			Time:  time.Now().Add(-time.Duration(len(highs)-i) * 15 * time.Minute),
			Open:  lows[i],
			High:  highs[i],
			Low:   lows[i],
			Close: (highs[i] + lows[i]) / 2,
		}
	}
	return bars
}

func TestAnalyzeTrend_InsufficientData(t *testing.T) {
	highs := make([]float64, 19)
	lows := make([]float64, 19)
	for i := range highs {
		highs[i] = 100 + float64(i)
		lows[i] = 99 + float64(i)
	}
	shape := AnalyzeTrend(barsFromHighsLows(highs, lows))
	if shape != nil {
		t.Errorf("expected nil shape for 19 bars, got %+v", shape)
	}
	if shape.StrengthValue() != 0 {
		t.Errorf("absent shape strength = %.2f, want 0", shape.StrengthValue())
	}
}

func TestAnalyzeTrend_StrictUptrend(t *testing.T) {
	highs := make([]float64, 24)
	lows := make([]float64, 24)
	for i := range highs {
		highs[i] = 100 + float64(i)
		lows[i] = 99 + float64(i)
	}
	shape := AnalyzeTrend(barsFromHighsLows(highs, lows))
	if shape == nil {
		t.Fatal("expected shape")
	}
	if shape.HigherHighs != 15 || shape.HigherLows != 15 {
		t.Errorf("counts = hh %d / hl %d, want 15 / 15", shape.HigherHighs, shape.HigherLows)
	}
	if shape.LowerHighs != 0 || shape.LowerLows != 0 {
		t.Errorf("unexpected down transitions: lh %d / ll %d", shape.LowerHighs, shape.LowerLows)
	}
	if shape.Strength != 1 {
		t.Errorf("strength = %.3f, want 1", shape.Strength)
	}
}

func TestAnalyzeTrend_StrictDowntrend(t *testing.T) {
	highs := make([]float64, 20)
	lows := make([]float64, 20)
	for i := range highs {
		highs[i] = 200 - float64(i)
		lows[i] = 199 - float64(i)
	}
	shape := AnalyzeTrend(barsFromHighsLows(highs, lows))
	if shape.Strength != -1 {
		t.Errorf("strength = %.3f, want -1", shape.Strength)
	}
}

func TestAnalyzeTrend_TiesCountNeither(t *testing.T) {
	highs := make([]float64, 20)
	lows := make([]float64, 20)
	for i := range highs {
		highs[i] = 100 // flat highs throughout
		lows[i] = 90 + float64(i%2)
	}
	shape := AnalyzeTrend(barsFromHighsLows(highs, lows))
	if shape.HigherHighs != 0 || shape.LowerHighs != 0 {
		t.Errorf("flat highs produced transitions: hh %d / lh %d", shape.HigherHighs, shape.LowerHighs)
	}
	// Alternating lows split evenly between both sides.
	if shape.HigherLows+shape.LowerLows != 15 {
		t.Errorf("low transitions = %d, want 15", shape.HigherLows+shape.LowerLows)
	}
}

func TestAnalyzeTrend_StrengthBounded(t *testing.T) {
	cases := [][]float64{
		{100, 105, 95, 110, 90, 115, 85, 120, 80, 125, 75, 130, 70, 135, 65, 140, 60, 145, 55, 150},
		{100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100},
	}
	for _, highs := range cases {
		lows := make([]float64, len(highs))
		for i, h := range highs {
			lows[i] = h - 5
		}
		shape := AnalyzeTrend(barsFromHighsLows(highs, lows))
		if s := shape.StrengthValue(); s < -1 || s > 1 {
			t.Errorf("strength %.3f outside [-1,1]", s)
		}
	}
}
