package calculator

import "MetalSentinel/internal/model"

const (
	// MinTrendBars is the minimum series length for trend-shape analysis.
	MinTrendBars = 20

	// TrendWindow is the number of most-recent bars examined (4 hours of
	// 15-minute bars).
	TrendWindow = 16

	// trendDenominator is the maximum absolute transition sum over the
	// window: 15 adjacent pairs across both the high and the low series.
	trendDenominator = 30
)

// AnalyzeTrend classifies bar-to-bar high/low transitions over the most
// recent TrendWindow bars. Returns nil when the series is too short; callers
// treat an absent shape as a neutral trend.
func AnalyzeTrend(bars []model.OHLCV) *model.TrendShape {
	if len(bars) < MinTrendBars {
		return nil
	}
	recent := bars[len(bars)-TrendWindow:]

	shape := &model.TrendShape{}
	for i := 1; i < len(recent); i++ {
		// Strict comparisons: equal highs or lows count toward neither side.
		switch {
		case recent[i].High > recent[i-1].High:
			shape.HigherHighs++
		case recent[i].High < recent[i-1].High:
			shape.LowerHighs++
		}
		switch {
		case recent[i].Low > recent[i-1].Low:
			shape.HigherLows++
		case recent[i].Low < recent[i-1].Low:
			shape.LowerLows++
		}
	}

	shape.Strength = float64(shape.HigherHighs+shape.HigherLows-shape.LowerHighs-shape.LowerLows) / trendDenominator
	return shape
}
