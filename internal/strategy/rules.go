package strategy

import "MetalSentinel/internal/model"

// Classifier names, used as keys in the per-indicator vote breakdown.
const (
	RuleRSI       = "RSI"
	RuleMA        = "MA"
	RuleMACD      = "MACD"
	RuleBollinger = "Bollinger"
	RuleTrend     = "Trend"
)

// rule pairs a classifier name with its classification function. All rules
// read inputs through the default-substituting accessors, so a missing
// indicator always lands in the neutral branch.
type rule struct {
	name     string
	classify func(ind *model.IndicatorSet, trend *model.TrendShape) model.Vote
}

// rules is the ordered classifier list. Confidence is derived from the count
// of non-neutral votes across this list by a single aggregation pass in Fuse.
var rules = []rule{
	{RuleRSI, classifyRSI},
	{RuleMA, classifyMA},
	{RuleMACD, classifyMACD},
	{RuleBollinger, classifyBollinger},
	{RuleTrend, classifyTrend},
}

// classifyRSI votes buy below 30 (oversold) and sell above 70 (overbought).
func classifyRSI(ind *model.IndicatorSet, _ *model.TrendShape) model.Vote {
	rsi := ind.RSIValue()
	switch {
	case rsi < 30:
		return model.VoteBuy
	case rsi > 70:
		return model.VoteSell
	default:
		return model.VoteNeutral
	}
}

// classifyMA votes on the 20/50 SMA cross confirmed by the current price.
func classifyMA(ind *model.IndicatorSet, _ *model.TrendShape) model.Vote {
	sma20 := ind.SMA20Value()
	sma50 := ind.SMA50Value()
	price := ind.CurrentPriceValue()
	switch {
	case sma20 > sma50 && price > sma20:
		return model.VoteBuy
	case sma20 < sma50 && price < sma20:
		return model.VoteSell
	default:
		return model.VoteNeutral
	}
}

// classifyMACD votes on the sign of the MACD histogram.
func classifyMACD(ind *model.IndicatorSet, _ *model.TrendShape) model.Vote {
	hist := ind.MACDHistValue()
	switch {
	case hist > 0:
		return model.VoteBuy
	case hist < 0:
		return model.VoteSell
	default:
		return model.VoteNeutral
	}
}

// classifyBollinger votes buy near the lower band and sell near the upper.
func classifyBollinger(ind *model.IndicatorSet, _ *model.TrendShape) model.Vote {
	pos := ind.BBPositionValue()
	switch {
	case pos < 0.2:
		return model.VoteBuy
	case pos > 0.8:
		return model.VoteSell
	default:
		return model.VoteNeutral
	}
}

// classifyTrend votes on the high/low transition strength.
func classifyTrend(_ *model.IndicatorSet, trend *model.TrendShape) model.Vote {
	strength := trend.StrengthValue()
	switch {
	case strength > 0.1:
		return model.VoteBuy
	case strength < -0.1:
		return model.VoteSell
	default:
		return model.VoteNeutral
	}
}
