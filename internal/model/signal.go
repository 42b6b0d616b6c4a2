package model

// Vote is a single classifier's call.
type Vote string

const (
	VoteBuy     Vote = "buy"
	VoteSell    Vote = "sell"
	VoteNeutral Vote = "neutral"
)

// Direction is the fused market direction.
type Direction string

const (
	DirectionBullish Direction = "bullish"
	DirectionBearish Direction = "bearish"
	DirectionRanging Direction = "ranging"
	DirectionUnknown Direction = "unknown"
)

// Action is the recommended action.
type Action string

const (
	ActionBuy     Action = "buy"
	ActionSell    Action = "sell"
	ActionWait    Action = "wait"
	ActionUnknown Action = "unknown"
)

// IndicatorVote pairs a classifier name with its vote, in evaluation order.
type IndicatorVote struct {
	Name string
	Vote Vote
}

// FusedSignal is the final output of the fusion engine.
type FusedSignal struct {
	Direction  Direction
	Action     Action
	Confidence int
	Votes      []IndicatorVote
}

// VoteFor returns the vote of the named classifier, or VoteNeutral if absent.
func (f *FusedSignal) VoteFor(name string) Vote {
	for _, v := range f.Votes {
		if v.Name == name {
			return v.Vote
		}
	}
	return VoteNeutral
}
