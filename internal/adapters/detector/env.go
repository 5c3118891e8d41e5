// Package detector picks the prompter style for the current terminal.
package detector

import (
	"os"

	"go.trai.ch/prj/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// OutputMode represents the interaction mode for prompts.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeTUI forces the interactive full-screen pickers.
	ModeTUI
	// ModeLinear forces line-based prompts.
	ModeLinear
)

// String returns the flag spelling of the mode.
func (m OutputMode) String() string {
	switch m {
	case ModeTUI:
		return "tui"
	case ModeLinear:
		return "linear"
	default:
		return "auto"
	}
}

// DetectEnvironment returns the recommended mode for the given standard streams.
// Interactive pickers need both in and out to be terminals outside CI.
func DetectEnvironment(in, out *os.File) OutputMode {
	if !isTerminal(in) || !isTerminal(out) {
		return ModeLinear
	}

	ci := os.Getenv("CI")
	if ci == "true" || ci == "1" || os.Getenv("TERM") == "dumb" {
		return ModeLinear
	}
	return ModeTUI
}

func isTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// ParseMode validates a user supplied mode flag.
// Accepted values are "auto", "tui", "linear", "ci" and the empty string.
func ParseMode(flag string) (OutputMode, error) {
	switch flag {
	case "tui":
		return ModeTUI, nil
	case "linear", "ci":
		return ModeLinear, nil
	case "auto", "":
		return ModeAuto, nil
	default:
		return ModeAuto, zerr.With(zerr.Wrap(domain.ErrInvalidOutputMode, flag), "accepted", "auto, tui, linear")
	}
}

// ResolveMode applies the user override flag to auto-detection.
// Unknown flags fall back to the detected mode.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	mode, err := ParseMode(userFlag)
	if err != nil || mode == ModeAuto {
		return autoDetected
	}
	return mode
}
