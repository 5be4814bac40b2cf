package ports

import (
	"context"
	"io"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer is the entry point for creating spans.
type Tracer interface {
	// Start creates a new span.
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)
	// EmitPlan signals which gems are about to be converted.
	EmitPlan(ctx context.Context, gemNames []string)
}

// Span represents a unit of work.
type Span interface {
	io.Writer
	// End completes the span.
	End()
	// RecordError records an error for the span.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}

// SpanConfig holds configuration for a starting span.
type SpanConfig struct {
	// Gem is the gem name the span converts, shown by renderers instead of the span name.
	Gem string
}

// SpanOption is a functional option for configuring a span.
type SpanOption func(*SpanConfig)

// WithGem marks the span as the conversion of a single gem.
func WithGem(name string) SpanOption {
	return func(c *SpanConfig) {
		c.Gem = name
	}
}
