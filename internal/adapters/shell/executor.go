// Package shell provides a shell-based executor for local commands.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/creack/pty"
	"go.trai.ch/rollout/internal/core/domain"
	"go.trai.ch/rollout/internal/core/ports"
	"go.trai.ch/zerr"
)

// Shell is the interpreter command lines run through.
const Shell = "/bin/sh"

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec and pty.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs cmd in a PTY so tools keep their line-buffered, colored output.
// The merged output goes to stdout, or to the logger when stdout is nil.
func (e *Executor) Execute(ctx context.Context, cmd domain.Command, stdout io.Writer) error {
	c, err := e.command(ctx, cmd)
	if err != nil {
		return err
	}

	var sink io.Writer = stdout
	var lw *logWriter
	if stdout == nil {
		lw = &logWriter{logger: e.logger}
		sink = lw
	}

	ptmx, err := pty.Start(c)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to start pty"), "command", cmd.Line)
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		defer func() { _ = ptmx.Close() }()
		// Reading the master returns EIO once the child exits.
		_, _ = io.Copy(sink, ptmx)
	}()

	waitErr := c.Wait()
	<-ioDone
	if lw != nil {
		_ = lw.Close()
	}

	return commandError(waitErr, cmd.Line)
}

// Output runs cmd without a PTY and returns its standard output.
func (e *Executor) Output(ctx context.Context, cmd domain.Command) (string, error) {
	c, err := e.command(ctx, cmd)
	if err != nil {
		return "", err
	}

	var stderr bytes.Buffer
	c.Stderr = &stderr

	out, err := c.Output()
	if err != nil {
		err = commandError(err, cmd.Line)
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = zerr.With(err, "stderr", msg)
		}
		return "", err
	}
	return string(out), nil
}

func (e *Executor) command(ctx context.Context, cmd domain.Command) (*exec.Cmd, error) {
	if strings.TrimSpace(cmd.Line) == "" {
		return nil, domain.ErrEmptyCommand
	}

	c := exec.CommandContext(ctx, Shell, "-c", cmd.Line) //nolint:gosec // command lines come from the project configuration
	c.Dir = cmd.Dir
	c.Env = resolveEnvironment(os.Environ(), cmd.Env)
	return c, nil
}

func commandError(err error, line string) error {
	if err == nil {
		return nil
	}

	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	wrapped := zerr.Wrap(err, domain.ErrCommandFailed.Error())
	wrapped = zerr.With(wrapped, "command", line)
	return zerr.With(wrapped, "exit_code", exitCode)
}

// logWriter forwards complete lines to the logger.
type logWriter struct {
	logger ports.Logger
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

// Close flushes a trailing partial line.
func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	// PTYs terminate lines with \r\n.
	w.logger.Info(strings.TrimSuffix(string(line), "\r"))
}

// resolveEnvironment overlays extra on the inherited environment.
func resolveEnvironment(sysEnv []string, extra map[string]string) []string {
	if len(extra) == 0 {
		return sysEnv
	}

	result := make([]string, 0, len(sysEnv)+len(extra))
	for _, entry := range sysEnv {
		k, _, ok := strings.Cut(entry, "=")
		if _, overridden := extra[k]; ok && overridden {
			continue
		}
		result = append(result, entry)
	}
	for k, v := range extra {
		result = append(result, k+"="+v)
	}
	return result
}
