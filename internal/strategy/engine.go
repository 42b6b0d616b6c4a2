package strategy

import (
	log "github.com/sirupsen/logrus"

	"MetalSentinel/internal/model"
)

// confidenceFor maps the count of non-neutral votes to a confidence level.
// The count is taken regardless of directional agreement: 3 buy / 2 sell
// still yields 80. Kept exactly as the rule set defines it.
func confidenceFor(confirmations int) int {
	switch confirmations {
	case len(rules):
		return 80
	case len(rules) - 1:
		return 70
	case len(rules) - 2:
		return 60
	default:
		return 50
	}
}

// Fuse evaluates all classifiers against the indicator set and trend shape
// and aggregates them into a directional call. Pure and deterministic; any
// panic during evaluation degrades to a sentinel "unknown" signal.
func Fuse(ind *model.IndicatorSet, trend *model.TrendShape) (sig *model.FusedSignal) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("signal fusion failed: %v", r)
			sig = &model.FusedSignal{
				Direction:  model.DirectionUnknown,
				Action:     model.ActionUnknown,
				Confidence: 0,
			}
		}
	}()

	votes := make([]model.IndicatorVote, 0, len(rules))
	var buys, sells int
	for _, r := range rules {
		v := r.classify(ind, trend)
		votes = append(votes, model.IndicatorVote{Name: r.name, Vote: v})
		switch v {
		case model.VoteBuy:
			buys++
		case model.VoteSell:
			sells++
		}
	}

	sig = &model.FusedSignal{
		Confidence: confidenceFor(buys + sells),
		Votes:      votes,
	}

	switch {
	case buys > sells:
		sig.Direction = model.DirectionBullish
		sig.Action = model.ActionBuy
	case sells > buys:
		sig.Direction = model.DirectionBearish
		sig.Action = model.ActionSell
	default:
		sig.Direction = model.DirectionRanging
		sig.Action = model.ActionWait
	}

	return sig
}
