package ports

import (
	"context"
	"io"

	"go.trai.ch/rollout/internal/core/domain"
)

// Executor defines the interface for running local commands.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the command, streaming its combined output to stdout.
	// A nil stdout sends the output to the logger line by line.
	// It returns an error if the command exits non-zero.
	Execute(ctx context.Context, cmd domain.Command, stdout io.Writer) error

	// Output runs the command and returns its standard output.
	Output(ctx context.Context, cmd domain.Command) (string, error)
}
