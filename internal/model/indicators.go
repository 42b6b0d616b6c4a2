package model

// IndicatorSet holds the latest value of each technical indicator at the end of
// a price series. A nil field means the indicator could not be computed
// (insufficient history or a numeric failure); readers go through the *Value
// accessors, which substitute a neutral default so that missing data never
// manufactures a directional vote.
type IndicatorSet struct {
	RSI        *float64
	SMA20      *float64
	SMA50      *float64
	MACD       *float64
	MACDSignal *float64
	MACDHist   *float64
	BBUpper    *float64
	BBMiddle   *float64
	BBLower    *float64
	BBPosition *float64

	// CurrentPrice is injected by the caller, not derived from indicator math.
	CurrentPrice *float64
}

// Empty reports whether no indicator was computed. The injected CurrentPrice
// does not count: a set carrying only a price is still "insufficient data".
func (s *IndicatorSet) Empty() bool {
	if s == nil {
		return true
	}
	return s.RSI == nil && s.SMA20 == nil && s.SMA50 == nil &&
		s.MACD == nil && s.MACDSignal == nil && s.MACDHist == nil &&
		s.BBUpper == nil && s.BBMiddle == nil && s.BBLower == nil &&
		s.BBPosition == nil
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

// RSIValue returns the RSI, or 50 (neutral) when unavailable.
func (s *IndicatorSet) RSIValue() float64 {
	if s == nil {
		return 50
	}
	return orDefault(s.RSI, 50)
}

// SMA20Value returns the 20-period SMA, or 0 when unavailable.
func (s *IndicatorSet) SMA20Value() float64 {
	if s == nil {
		return 0
	}
	return orDefault(s.SMA20, 0)
}

// SMA50Value returns the 50-period SMA, or 0 when unavailable.
func (s *IndicatorSet) SMA50Value() float64 {
	if s == nil {
		return 0
	}
	return orDefault(s.SMA50, 0)
}

// MACDHistValue returns the MACD histogram, or 0 when unavailable.
func (s *IndicatorSet) MACDHistValue() float64 {
	if s == nil {
		return 0
	}
	return orDefault(s.MACDHist, 0)
}

// BBPositionValue returns the price position within the Bollinger envelope,
// or 0.5 (mid-band) when the bands are unavailable or degenerate.
func (s *IndicatorSet) BBPositionValue() float64 {
	if s == nil {
		return 0.5
	}
	return orDefault(s.BBPosition, 0.5)
}

// CurrentPriceValue returns the injected current price, or 0 when unset.
func (s *IndicatorSet) CurrentPriceValue() float64 {
	if s == nil {
		return 0
	}
	return orDefault(s.CurrentPrice, 0)
}

// SetCurrentPrice injects the latest traded price into the set.
func (s *IndicatorSet) SetCurrentPrice(p float64) {
	s.CurrentPrice = &p
}
