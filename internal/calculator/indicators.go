package calculator

import (
	"math"

	talib "github.com/markcheno/go-talib"
	log "github.com/sirupsen/logrus"

	"MetalSentinel/internal/model"
)

const (
	// MinIndicatorBars is the minimum series length for indicator math,
	// set by the slowest lookback (the 50-period moving average).
	MinIndicatorBars = 50

	rsiPeriod    = 14
	smaFast      = 20
	smaSlow      = 50
	macdFast     = 12
	macdSlow     = 26
	macdSignal   = 9
	bbandsPeriod = 20
	bbandsDev    = 2.0
)

// Calculate computes the full indicator set from a price series.
// Series shorter than MinIndicatorBars yield an empty set, as does any
// failure inside the underlying library; callers treat an empty set as
// "insufficient data" and abstain for the tick.
func Calculate(bars []model.OHLCV) (set *model.IndicatorSet) {
	set = &model.IndicatorSet{}
	defer func() {
		if r := recover(); r != nil {
			log.Warnf("indicator computation failed: %v", r)
			set = &model.IndicatorSet{}
		}
	}()

	if len(bars) < MinIndicatorBars {
		return set
	}

	closes := extractCloses(bars)

	set.RSI = lastFinite(talib.Rsi(closes, rsiPeriod))
	set.SMA20 = lastFinite(talib.Sma(closes, smaFast))
	set.SMA50 = lastFinite(talib.Sma(closes, smaSlow))

	macd, signal, hist := talib.Macd(closes, macdFast, macdSlow, macdSignal)
	set.MACD = lastFinite(macd)
	set.MACDSignal = lastFinite(signal)
	set.MACDHist = lastFinite(hist)

	upper, middle, lower := talib.BBands(closes, bbandsPeriod, bbandsDev, bbandsDev, talib.SMA)
	set.BBUpper = lastFinite(upper)
	set.BBMiddle = lastFinite(middle)
	set.BBLower = lastFinite(lower)

	// Position of the last close within the envelope. Left unset on a zero
	// band width so the accessor's 0.5 default applies.
	if set.BBUpper != nil && set.BBLower != nil {
		width := *set.BBUpper - *set.BBLower
		if width != 0 {
			pos := (closes[len(closes)-1] - *set.BBLower) / width
			set.BBPosition = &pos
		}
	}

	return set
}

// lastFinite returns a pointer to the final value of vals, or nil when the
// series is empty or ends in NaN/Inf (talib's marker for "not computable").
func lastFinite(vals []float64) *float64 {
	if len(vals) == 0 {
		return nil
	}
	v := vals[len(vals)-1]
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func extractCloses(bars []model.OHLCV) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}
