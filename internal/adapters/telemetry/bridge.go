// Package telemetry records per-gem spans with OpenTelemetry and forwards them to a progress renderer.
package telemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/gemnix/internal/core/ports"
)

// GemAttribute is the span attribute naming the gem a span converts.
const GemAttribute = attribute.Key("gem")

// Bridge implements sdktrace.SpanProcessor to bridge gem spans to a Renderer.
// Spans without a gem attribute are not reported.
type Bridge struct {
	renderer ports.Renderer
}

// NewBridge returns a new Bridge.
func NewBridge(renderer ports.Renderer) *Bridge {
	return &Bridge{
		renderer: renderer,
	}
}

// OnStart is called when a span starts.
func (b *Bridge) OnStart(_ context.Context, s sdktrace.ReadWriteSpan) {
	if b.renderer == nil {
		return
	}

	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	gem, ok := gemName(s.Attributes())
	if !ok {
		return
	}

	b.renderer.OnGemStart(sc.SpanID().String(), gem, s.StartTime())
}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.renderer == nil {
		return
	}

	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	if _, ok := gemName(s.Attributes()); !ok {
		return
	}

	var err error
	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "conversion failed"
		}
		err = errors.New(desc)
	}

	b.renderer.OnGemComplete(sc.SpanID().String(), s.EndTime(), err)
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

func gemName(attrs []attribute.KeyValue) (string, bool) {
	for _, kv := range attrs {
		if kv.Key == GemAttribute {
			return kv.Value.AsString(), true
		}
	}
	return "", false
}
