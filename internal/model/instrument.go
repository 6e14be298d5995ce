package model

// Instrument is one watched security. Immutable after config load.
type Instrument struct {
	Symbol    string  // market-qualified, e.g. "sh600438"
	Name      string  // display name
	Threshold float64 // alert threshold in percent, inclusive
}
