package ports

import (
	"context"
	"io"

	"go.trai.ch/rollout/internal/core/domain"
)

// RemoteDialer opens sessions to remote hosts.
//
//go:generate mockgen -source=remote.go -destination=mocks/mock_remote.go -package=mocks
type RemoteDialer interface {
	Dial(ctx context.Context, host string, cfg domain.SSHConfig) (RemoteSession, error)
}

// RemoteSession runs commands and uploads files on one host.
// Non-zero exit codes are reported in the result, not as errors.
type RemoteSession interface {
	Host() string

	// Run runs command as the connecting user.
	Run(ctx context.Context, command string, out io.Writer) (domain.RemoteResult, error)

	// Sudo runs command through sudo in a login shell.
	Sudo(ctx context.Context, command string, out io.Writer) (domain.RemoteResult, error)

	// Put uploads localPath into remoteDir, through a temporary file and sudo when asked.
	Put(ctx context.Context, localPath, remoteDir string, sudo bool) error

	Close() error
}
