package model

// TrendShape counts bar-to-bar transitions over the analyzed window.
// Equal highs (or lows) count toward neither side, so the counters need not
// sum to the window length on flat bars; Strength keeps the worst-case
// denominator regardless, which damps its magnitude on choppy data.
type TrendShape struct {
	HigherHighs int
	LowerHighs  int
	HigherLows  int
	LowerLows   int

	// Strength = (hh + hl - lh - ll) / 30, always within [-1, 1].
	Strength float64
}

// StrengthValue returns the trend strength, or 0 (neutral) for an absent shape.
func (t *TrendShape) StrengthValue() float64 {
	if t == nil {
		return 0
	}
	return t.Strength
}
