package ports

import "time"

// Renderer is the abstraction for step progress output.
// It decouples telemetry collection from presentation.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// OnPlanEmit is called when a command has planned its steps.
	OnPlanEmit(steps []string)

	// OnStepStart is called when a step begins.
	OnStepStart(spanID, parentID, name string, startTime time.Time)

	// OnStepLog is called when a step emits output.
	// data may contain partial lines.
	OnStepLog(spanID string, data []byte)

	// OnStepComplete is called when a step finishes.
	OnStepComplete(spanID string, endTime time.Time, err error)

	// Stop flushes any buffered output.
	Stop() error
}
