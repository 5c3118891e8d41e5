// Package output builds termenv outputs that agree on color handling across prj.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ForceColorEnvVar keeps colors on writers that are not terminals.
const ForceColorEnvVar = "CLICOLOR_FORCE"

// ColorProfile returns the color profile for interactive terminals.
// NO_COLOR forces Ascii.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// ColorProfileANSI returns the color profile for line-based output in CI logs.
// NO_COLOR forces Ascii.
func ColorProfileANSI() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// New creates a termenv.Output for w.
// Writers that are not terminals get plain text, so piped status labels and logs stay parseable.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	profile := termenv.Ascii
	if IsTerminal(w) || os.Getenv(ForceColorEnvVar) != "" {
		profile = ColorProfile()
	}
	return newOutput(w, profile, opts)
}

// NewWithProfile creates a termenv.Output whose profile ignores whether w is a terminal.
func NewWithProfile(w io.Writer, profileFn func() termenv.Profile, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return newOutput(w, profileFn(), opts)
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newOutput(w io.Writer, profile termenv.Profile, opts []termenv.OutputOption) *termenv.Output {
	opts = append(opts,
		termenv.WithProfile(profile),
		termenv.WithTTY(true),
	)
	return termenv.NewOutput(w, opts...)
}
