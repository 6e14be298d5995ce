package recorder

// AlertEvent holds one dispatched threshold-crossing alert.
type AlertEvent struct {
	Symbol        string
	Name          string
	Price         float64
	OpenPrice     float64
	PercentChange float64
	Threshold     float64
}

// FetchFailure records one unavailable quote fetch (transport/parse errors
// only; "no data yet" answers are not failures and are not recorded).
type FetchFailure struct {
	Symbol string
	Source string
	Reason string
}

// Recorder persists alert history for later analysis.
type Recorder interface {
	RecordAlert(evt *AlertEvent) error
	RecordFetchFailure(evt *FetchFailure) error
	Close() error
}
