package model

// FetchStatus classifies the outcome of a quote fetch.
type FetchStatus int

const (
	// StatusOk means both prices are present and the open is positive.
	StatusOk FetchStatus = iota
	// StatusPending means the provider has no data yet (e.g. pre-market).
	StatusPending
	// StatusUnavailable means transport or parsing failed.
	StatusUnavailable
)

func (s FetchStatus) String() string {
	switch s {
	case StatusOk:
		return "ok"
	case StatusPending:
		return "pending"
	case StatusUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Quote is a point-in-time price observation for one instrument.
// Current and Open are meaningful only when Status is StatusOk.
type Quote struct {
	Symbol  string
	Name    string
	Current float64
	Open    float64
	Status  FetchStatus
}

// Movement is the percent and absolute change of a quote vs. session open,
// both rounded to 2 decimal places.
type Movement struct {
	Percent  float64
	Absolute float64
}

// Up reports whether the price is above the session open.
func (m Movement) Up() bool { return m.Percent >= 0 }
