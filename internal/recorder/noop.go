package recorder

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordAlert(_ *AlertEvent) error          { return nil }
func (n *NoopRecorder) RecordFetchFailure(_ *FetchFailure) error { return nil }
func (n *NoopRecorder) Close() error                             { return nil }
