// Package detector selects the step renderer for the current environment.
package detector

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// EnvOutput overrides output mode detection. It accepts auto, tui, linear or ci.
const EnvOutput = "ROLLOUT_OUTPUT"

// OutputMode represents the rendering mode for the application.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeTUI forces the interactive TUI renderer.
	ModeTUI
	// ModeLinear forces the linear renderer.
	ModeLinear
)

// DetectEnvironment returns the recommended output mode for progress written to f.
// Non-terminals and CI runs get linear output.
func DetectEnvironment(f *os.File) OutputMode {
	isTTY := f != nil && term.IsTerminal(int(f.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return ModeLinear
	}
	return ModeTUI
}

// ResolveMode applies a user override to the detected mode.
// Unknown overrides keep the detected mode.
func ResolveMode(autoDetected OutputMode, override string) OutputMode {
	switch strings.ToLower(strings.TrimSpace(override)) {
	case "tui":
		return ModeTUI
	case "linear", "ci":
		return ModeLinear
	default:
		return autoDetected
	}
}
