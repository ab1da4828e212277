package shell

import (
	"io"

	"go.trai.ch/rollout/internal/core/ports"
)

// ResolveEnvironment exports resolveEnvironment.
var ResolveEnvironment = resolveEnvironment

// NewLogWriter exposes the line splitting writer.
func NewLogWriter(l ports.Logger) io.WriteCloser {
	return &logWriter{logger: l}
}
