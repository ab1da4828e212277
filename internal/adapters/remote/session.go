package remote

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/sftp"
	"go.trai.ch/rollout/internal/core/domain"
	"go.trai.ch/rollout/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/crypto/ssh"
)

// StagingDir receives uploads that are moved into place with sudo.
const StagingDir = "/tmp"

var _ ports.RemoteSession = (*Session)(nil)

// Session is an SSH connection to one host.
type Session struct {
	host       string
	client     *ssh.Client
	sudo       string
	closeAgent func()
}

// Host returns the host name the session was dialed with.
func (s *Session) Host() string {
	return s.host
}

// Run runs command as the connecting user. Output is captured in the result
// and copied to out when it is not nil.
func (s *Session) Run(ctx context.Context, command string, out io.Writer) (domain.RemoteResult, error) {
	result := domain.RemoteResult{Host: s.host, Command: command}

	sess, err := s.client.NewSession()
	if err != nil {
		return result, zerr.With(zerr.Wrap(err, domain.ErrRemoteConnectFailed.Error()), "host", s.host)
	}
	defer func() { _ = sess.Close() }()

	var buf bytes.Buffer
	var sink io.Writer = &buf
	if out != nil {
		sink = io.MultiWriter(&buf, out)
	}
	// stdout and stderr are copied from separate goroutines.
	locked := &lockedWriter{w: sink}
	sess.Stdout = locked
	sess.Stderr = locked

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = sess.Signal(ssh.SIGKILL)
			_ = sess.Close()
		case <-done:
		}
	}()

	runErr := sess.Run(command)
	result.Output = buf.String()

	var exitErr *ssh.ExitError
	switch {
	case runErr == nil:
	case errors.As(runErr, &exitErr):
		result.ExitCode = exitErr.ExitStatus()
	case ctx.Err() != nil:
		return result, zerr.With(zerr.Wrap(ctx.Err(), domain.ErrRemoteCommandFailed.Error()), "host", s.host)
	default:
		return result, zerr.With(zerr.With(zerr.Wrap(runErr, domain.ErrRemoteCommandFailed.Error()), "host", s.host), "command", command)
	}
	return result, nil
}

// Sudo runs command through sudo in a non-interactive login shell.
func (s *Session) Sudo(ctx context.Context, command string, out io.Writer) (domain.RemoteResult, error) {
	res, err := s.Run(ctx, SudoCommand(s.sudo, command), out)
	res.Command = command
	return res, err
}

// SudoCommand wraps command the way privileged deploy steps are run.
func SudoCommand(prefix, command string) string {
	if prefix == "" {
		prefix = "sudo"
	}
	return prefix + " -n /bin/bash -l -c " + domain.ShellQuote(command)
}

// Put uploads localPath into remoteDir keeping its permission bits. With sudo
// the file goes to a temporary name first and is moved into place as root.
func (s *Session) Put(ctx context.Context, localPath, remoteDir string, sudo bool) error {
	name := filepath.Base(localPath)
	target := path.Join(remoteDir, name)

	dest := target
	if sudo {
		dest = path.Join(StagingDir, "rollout-"+uuid.NewString()+"-"+name)
	}

	if err := s.upload(localPath, dest); err != nil {
		return zerr.With(zerr.With(err, "host", s.host), "path", localPath)
	}
	if !sudo {
		return nil
	}

	res, err := s.Sudo(ctx, "mv -f "+domain.ShellQuote(dest)+" "+domain.ShellQuote(target), nil)
	if err != nil {
		return err
	}
	if res.Failed() {
		err := zerr.With(domain.ErrRemoteTransferFailed, "host", s.host)
		err = zerr.With(err, "target", target)
		return zerr.With(err, "output", res.Output)
	}
	return nil
}

func (s *Session) upload(localPath, dest string) error {
	src, err := os.Open(localPath) //nolint:gosec // uploads come from the package and deploy flow
	if err != nil {
		return zerr.Wrap(err, domain.ErrRemoteTransferFailed.Error())
	}
	defer func() { _ = src.Close() }()

	info, err := src.Stat()
	if err != nil {
		return zerr.Wrap(err, domain.ErrRemoteTransferFailed.Error())
	}

	client, err := sftp.NewClient(s.client)
	if err != nil {
		return zerr.Wrap(err, domain.ErrRemoteTransferFailed.Error())
	}
	defer func() { _ = client.Close() }()

	dst, err := client.Create(dest)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRemoteTransferFailed.Error()), "remote", dest)
	}
	if _, err := dst.ReadFrom(src); err != nil {
		_ = dst.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrRemoteTransferFailed.Error()), "remote", dest)
	}
	if err := dst.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRemoteTransferFailed.Error()), "remote", dest)
	}
	if err := client.Chmod(dest, info.Mode().Perm()); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRemoteTransferFailed.Error()), "remote", dest)
	}
	return nil
}

// Close closes the connection.
func (s *Session) Close() error {
	defer s.closeAgent()
	return s.client.Close()
}

type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
