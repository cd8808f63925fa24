package ports

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer is the entry point for creating spans around driver phases (regrid
// stages, checkpoint writes, step advances).
type Tracer interface {
	// Start creates a new span.
	Start(ctx context.Context, name string) (context.Context, Span)
}

// Span represents one unit of work.
type Span interface {
	// End completes the span.
	End()
	// RecordError records an error for the span.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}

// Metrics counts the driver's coarse-grained events. The prometheus adapter
// is the usual implementation; a no-op exists for tests.
type Metrics interface {
	StepAdvanced(dt float64)
	RegridDone(seconds float64)
	CheckpointWritten(seconds float64)
	PlotWritten(seconds float64)
}
