// Package prompt asks the operator questions on the terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.trai.ch/rollout/internal/core/domain"
	"go.trai.ch/rollout/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

var _ ports.Prompter = (*Prompter)(nil)

// Prompter implements ports.Prompter on a line reader.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	// echo repeats answers read from a non-terminal so logs show them.
	echo bool
}

// New creates a Prompter reading from in and writing questions to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:   bufio.NewReader(in),
		out:  out,
		echo: !isTerminal(in),
	}
}

// NewStdio creates a Prompter on os.Stdin and os.Stderr.
func NewStdio() *Prompter {
	return New(os.Stdin, os.Stderr)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int
}

// Confirm asks question until the answer is a recognizable yes or no.
func (p *Prompter) Confirm(question string) (bool, error) {
	for {
		answer, err := p.readLine(question + " [y/n] ")
		if err != nil {
			return false, err
		}
		if v, ok := parseBool(answer); ok {
			return v, nil
		}
		_, _ = fmt.Fprintf(p.out, "Please answer yes or no.\n")
	}
}

// Ask asks question and returns def when the answer is empty.
func (p *Prompter) Ask(question, def string) (string, error) {
	prompt := question + " "
	if def != "" {
		prompt = fmt.Sprintf("%s [%s] ", question, def)
	}

	answer, err := p.readLine(prompt)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

func (p *Prompter) readLine(prompt string) (string, error) {
	_, _ = io.WriteString(p.out, prompt)

	line, err := p.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		if errors.Is(err, io.EOF) {
			return "", zerr.With(domain.ErrNotInteractive, "question", strings.TrimSpace(prompt))
		}
		return "", zerr.Wrap(err, domain.ErrNotInteractive.Error())
	}

	answer := strings.TrimSpace(line)
	if p.echo {
		_, _ = fmt.Fprintln(p.out, answer)
	}
	return answer, nil
}

// parseBool accepts the usual spellings of yes and no, case-insensitively.
func parseBool(s string) (value, ok bool) {
	switch strings.ToLower(s) {
	case "y", "yes", "t", "true", "on", "1":
		return true, true
	case "n", "no", "f", "false", "off", "0":
		return false, true
	default:
		return false, false
	}
}
