// Package shell launches the configured editor on a project folder.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/prj/internal/core/domain"
	"go.trai.ch/prj/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Workspace = (*Launcher)(nil)

// windowedEditors understand --new-window and --reuse-window and return once the window is open.
var windowedEditors = []string{"code", "code-insiders", "codium", "cursor", "windsurf"}

// Launcher implements ports.Workspace by running the open command.
// Windowed editors run detached from the terminal with their output logged.
// Any other command is treated as a terminal editor and inherits the standard streams.
type Launcher struct {
	logger ports.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewLauncher creates a Launcher attached to the process's standard streams.
func NewLauncher(logger ports.Logger) *Launcher {
	return NewLauncherWithStreams(logger, os.Stdin, os.Stdout, os.Stderr)
}

// NewLauncherWithStreams creates a Launcher attached to the given streams.
func NewLauncherWithStreams(logger ports.Logger, stdin io.Reader, stdout, stderr io.Writer) *Launcher {
	return &Launcher{
		logger: logger,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

// OpenFolder runs req.Command with the folder as its last argument and waits for it to exit.
func (l *Launcher) OpenFolder(ctx context.Context, req domain.OpenRequest) error {
	if len(req.Command) == 0 {
		return zerr.Wrap(domain.ErrOpenFailed, "no open command configured")
	}

	name := req.Command[0]
	args := slices.Clone(req.Command[1:])
	windowed := isWindowed(name)
	if windowed {
		args = append(args, windowFlag(req.NewWindow))
	}
	args = append(args, req.Path)

	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // user configured command
	cmd.Dir = req.Path

	if windowed {
		stdoutLog := &logWriter{logger: l.logger, level: levelDebug}
		stderrLog := &logWriter{logger: l.logger, level: levelWarn}
		defer func() {
			_ = stdoutLog.Close()
			_ = stderrLog.Close()
		}()
		cmd.Stdout = stdoutLog
		cmd.Stderr = stderrLog
	} else {
		cmd.Stdin = l.stdin
		cmd.Stdout = l.stdout
		cmd.Stderr = l.stderr
	}

	l.logger.Debug("running " + strings.Join(cmd.Args, " "))
	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		err = zerr.With(zerr.Wrap(err, domain.ErrOpenFailed.Error()), "exit_code", exitCode)
		return zerr.With(err, "path", req.Path)
	}
	return nil
}

func isWindowed(name string) bool {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	return slices.Contains(windowedEditors, base)
}

func windowFlag(newWindow bool) string {
	if newWindow {
		return "--new-window"
	}
	return "--reuse-window"
}
