package recorder

// Run outcomes journaled per evaluation tick.
const (
	OutcomeOK               = "OK"
	OutcomeInsufficientData = "INSUFFICIENT_DATA"
	OutcomeFetchFailed      = "FETCH_FAILED"
	OutcomeError            = "ERROR"
)

// RunEvent is the diagnostic record of one instrument's evaluation tick.
// It deliberately carries no signal content (direction, action, confidence):
// signal history is not persisted, only operational outcomes.
type RunEvent struct {
	Instrument string
	Symbol     string
	Outcome    string
	Bars       int
	Note       string
}

// DeliveryEvent records the result of one outbound message.
type DeliveryEvent struct {
	Kind  string // "analysis", "daily_summary", "notice"
	OK    bool
	Error string
}

// Recorder journals operational diagnostics for the operator.
type Recorder interface {
	RecordRun(evt *RunEvent) error
	RecordDelivery(evt *DeliveryEvent) error
	Close() error
}
