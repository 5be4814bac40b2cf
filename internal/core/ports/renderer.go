package ports

import "time"

// Renderer presents conversion progress.
// It decouples telemetry collection from presentation.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// OnPlanEmit is called once the gems to convert are known.
	OnPlanEmit(gems []string)

	// OnGemStart is called when a gem conversion begins.
	// spanID: unique identifier for this conversion
	// name: the gem name
	OnGemStart(spanID, name string, startTime time.Time)

	// OnGemLog is called when a conversion emits diagnostic output.
	OnGemLog(spanID string, data []byte)

	// OnGemComplete is called when a conversion finishes.
	// err: nil if successful, error otherwise
	OnGemComplete(spanID string, endTime time.Time, err error)
}
