// Package app implements the application layer for prj.
package app

import (
	"cmp"
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/prj/internal/adapters/detector"
	"go.trai.ch/prj/internal/adapters/linear"
	"go.trai.ch/prj/internal/adapters/statusline"
	"go.trai.ch/prj/internal/adapters/tui"
	"go.trai.ch/prj/internal/core/domain"
	"go.trai.ch/prj/internal/core/ports"
	"go.trai.ch/prj/internal/engine/catalog"
)

// App represents the main application logic.
// Each command builds a Controller for the current settings and terminal.
type App struct {
	configLoader ports.ConfigLoader
	resolver     ports.RootResolver
	catalog      *catalog.Catalog
	workspace    ports.Workspace
	watcher      ports.ConfigWatcher
	store        ports.Store
	tracer       ports.Tracer
	logger       ports.Logger

	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
	teaOptions []tea.ProgramOption
}

// New creates a new App instance bound to the process's standard streams.
func New(
	loader ports.ConfigLoader,
	resolver ports.RootResolver,
	cat *catalog.Catalog,
	workspace ports.Workspace,
	watcher ports.ConfigWatcher,
	store ports.Store,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		resolver:     resolver,
		catalog:      cat,
		workspace:    workspace,
		watcher:      watcher,
		store:        store,
		tracer:       tracer,
		logger:       log,
		stdin:        os.Stdin,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}
}

// WithStreams replaces the standard streams.
// Prompts use in and errOut. The status indicator writes to out.
func (a *App) WithStreams(in io.Reader, out, errOut io.Writer) *App {
	a.stdin = in
	a.stdout = out
	a.stderr = errOut
	return a
}

// WithTeaOptions adds bubbletea program options to the interactive prompter.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// Options configures one command invocation.
type Options struct {
	// ConfigPath overrides the settings file location.
	ConfigPath string
	// OutputMode is auto, tui or linear.
	OutputMode string
	// Verbose enables debug logging.
	Verbose bool
	// JSON switches the log output to JSON.
	JSON bool
	// Workspace is the folder the caller is working in. Empty means none.
	Workspace string
	// Detailed makes the status indicator print the project path and command.
	Detailed bool
}

// List shows the projects and opens the chosen one.
func (a *App) List(ctx context.Context, opts Options) error {
	ctrl, err := a.controller(ctx, opts)
	if err != nil {
		return err
	}
	return ctrl.ListProjects(ctx)
}

// Reload rediscovers the projects before listing them.
func (a *App) Reload(ctx context.Context, opts Options) error {
	ctrl, err := a.controller(ctx, opts)
	if err != nil {
		return err
	}
	return ctrl.ReloadProjects(ctx)
}

// Create creates a project folder and opens it.
func (a *App) Create(ctx context.Context, opts Options) error {
	ctrl, err := a.controller(ctx, opts)
	if err != nil {
		return err
	}
	return ctrl.CreateProject(ctx)
}

// Status prints the name of the project at opts.Workspace.
func (a *App) Status(ctx context.Context, opts Options) error {
	// Init already refreshes the indicator for opts.Workspace.
	_, err := a.controller(ctx, opts)
	return err
}

// Watch keeps the status indicator and the catalog in sync with the settings file.
func (a *App) Watch(ctx context.Context, opts Options) error {
	ctrl, err := a.controller(ctx, opts)
	if err != nil {
		return err
	}
	return ctrl.WithWatcher(a.configLoader, a.watcher).Watch(ctx, a.configPath(opts), opts.Workspace)
}

func (a *App) controller(ctx context.Context, opts Options) (*Controller, error) {
	a.configureLogger(opts)

	prompter, err := a.prompter(opts.OutputMode)
	if err != nil {
		return nil, err
	}

	settings, err := a.configLoader.Load(a.configPath(opts))
	if err != nil {
		return nil, err
	}

	ctrl := NewController(
		a.catalog,
		a.resolver,
		prompter,
		a.workspace,
		statusline.New(a.stdout, opts.Detailed),
		a.store,
		a.tracer,
		a.logger,
	)
	if err := ctrl.Init(ctx, settings, opts.Workspace); err != nil {
		return nil, err
	}
	return ctrl, nil
}

func (a *App) configPath(opts Options) string {
	return cmp.Or(opts.ConfigPath, domain.DefaultConfigPath())
}

// prompter picks the interactive TUI when both prompt streams are terminals.
func (a *App) prompter(outputMode string) (ports.Prompter, error) {
	if _, err := detector.ParseMode(outputMode); err != nil {
		return nil, err
	}

	autoMode := detector.ModeLinear
	in, inOK := a.stdin.(*os.File)
	out, outOK := a.stderr.(*os.File)
	if inOK && outOK {
		autoMode = detector.DetectEnvironment(in, out)
	}

	if detector.ResolveMode(autoMode, outputMode) == detector.ModeTUI {
		return tui.NewPrompter(a.stdin, a.stderr).WithTeaOptions(a.teaOptions...), nil
	}
	return linear.NewPrompter(a.stdin, a.stderr), nil
}

type configurableLogger interface {
	SetJSON(enable bool)
	SetVerbose(enable bool)
}

func (a *App) configureLogger(opts Options) {
	if l, ok := a.logger.(configurableLogger); ok {
		l.SetJSON(opts.JSON)
		l.SetVerbose(opts.Verbose)
	}
}
