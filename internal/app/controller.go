package app

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"

	"go.trai.ch/prj/internal/core/domain"
	"go.trai.ch/prj/internal/core/ports"
	"go.trai.ch/prj/internal/engine/catalog"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Controller runs the registry flows for one settings snapshot.
// Flows are sequential; the controller is not safe for concurrent use.
type Controller struct {
	catalog   *catalog.Catalog
	resolver  ports.RootResolver
	prompter  ports.Prompter
	workspace ports.Workspace
	status    ports.StatusIndicator
	store     ports.Store
	tracer    ports.Tracer
	logger    ports.Logger

	loader  ports.ConfigLoader
	watcher ports.ConfigWatcher

	settings domain.Settings
}

// NewController creates a controller. The settings snapshot is installed by Init.
func NewController(
	cat *catalog.Catalog,
	resolver ports.RootResolver,
	prompter ports.Prompter,
	workspace ports.Workspace,
	status ports.StatusIndicator,
	store ports.Store,
	tracer ports.Tracer,
	log ports.Logger,
) *Controller {
	return &Controller{
		catalog:   cat,
		resolver:  resolver,
		prompter:  prompter,
		workspace: workspace,
		status:    status,
		store:     store,
		tracer:    tracer,
		logger:    log,
		settings:  domain.DefaultSettings(),
	}
}

// WithWatcher enables Watch. loader re-reads the settings file on every change.
func (c *Controller) WithWatcher(loader ports.ConfigLoader, watcher ports.ConfigWatcher) *Controller {
	c.loader = loader
	c.watcher = watcher
	return c
}

// Settings returns the current settings snapshot.
func (c *Controller) Settings() domain.Settings {
	return c.settings
}

// Init installs the settings snapshot, invalidates the catalog if the project locations
// changed since the last run and refreshes the status indicator.
func (c *Controller) Init(ctx context.Context, settings domain.Settings, workspaceRoot string) error {
	ctx, span := c.tracer.Start(ctx, "init")
	defer span.End()

	c.settings = settings
	if err := c.checkFingerprint(); err != nil {
		span.RecordError(err)
		return c.report(err)
	}
	return c.RefreshStatus(ctx, workspaceRoot)
}

// ListProjects shows the ranked projects and opens the chosen one.
func (c *Controller) ListProjects(ctx context.Context) error {
	ctx, span := c.tracer.Start(ctx, "list")
	defer span.End()

	err := c.listAndOpen(ctx)
	if err != nil {
		span.RecordError(err)
	}
	return err
}

// ReloadProjects rediscovers the projects, then behaves like ListProjects.
func (c *Controller) ReloadProjects(ctx context.Context) error {
	ctx, span := c.tracer.Start(ctx, "reload")
	defer span.End()

	err := c.reload(ctx)
	if err != nil {
		span.RecordError(err)
	}
	return err
}

// CreateProject asks for a name and a location, creates the folder and opens it.
func (c *Controller) CreateProject(ctx context.Context) error {
	ctx, span := c.tracer.Start(ctx, "create")
	defer span.End()

	err := c.create(ctx, span)
	if err != nil {
		span.RecordError(err)
	}
	return err
}

// RefreshStatus shows the name of the project at workspaceRoot, counting it as opened.
// The indicator is hidden when the root is unknown or the feature is disabled.
func (c *Controller) RefreshStatus(ctx context.Context, workspaceRoot string) error {
	return c.showStatus(ctx, workspaceRoot, true)
}

// redrawStatus updates the indicator for workspaceRoot without counting an open.
func (c *Controller) redrawStatus(ctx context.Context, workspaceRoot string) error {
	return c.showStatus(ctx, workspaceRoot, false)
}

func (c *Controller) showStatus(ctx context.Context, workspaceRoot string, recordOpen bool) error {
	_, span := c.tracer.Start(ctx, "status")
	defer span.End()

	if !c.settings.ShowProjectNameInStatusBar || workspaceRoot == "" {
		c.status.Hide()
		return nil
	}

	scope := c.scope()
	project, found, err := c.catalog.FindByPath(scope, workspaceRoot)
	if err != nil {
		c.status.Hide()
		span.RecordError(err)
		return c.report(err)
	}
	if !found {
		c.status.Hide()
		return nil
	}

	if recordOpen {
		if err := c.catalog.RecordOpen(scope, project.Path); err != nil {
			span.RecordError(err)
			return c.report(err)
		}
	}
	span.SetAttribute("project", project.Name)
	c.status.Show(domain.MsgStatusIcon+" "+project.Name, project.Path, domain.StatusCommand)
	return nil
}

// OnConfigurationChanged replaces the settings snapshot and invalidates the catalog
// when the resolved project locations differ from the previous ones.
func (c *Controller) OnConfigurationChanged(ctx context.Context, settings domain.Settings) error {
	_, span := c.tracer.Start(ctx, "config_changed")
	defer span.End()

	previous := c.settings
	c.settings = settings

	oldRoots, ok := c.resolver.Cached()
	if !ok {
		resolved, err := c.resolver.Resolve(previous.ProjectsLocation, false)
		if err != nil {
			c.logger.Debug("previous project locations did not resolve: " + err.Error())
		}
		oldRoots = resolved
	}

	newRoots, err := c.resolver.Resolve(settings.ProjectsLocation, true)
	if err != nil {
		span.RecordError(err)
		return c.report(err)
	}

	if domain.SameRoots(oldRoots, newRoots) {
		return nil
	}

	span.SetAttribute("roots", newRoots)
	c.logger.Debug("project locations changed")
	if err := c.catalog.Invalidate(); err != nil {
		span.RecordError(err)
		return c.report(err)
	}
	if err := c.saveFingerprint(newRoots); err != nil {
		span.RecordError(err)
		return c.report(err)
	}
	return nil
}

// Watch follows the settings file at configPath until ctx ends.
// Every change is applied as a configuration change and the status indicator is redrawn.
func (c *Controller) Watch(ctx context.Context, configPath, workspaceRoot string) error {
	if c.watcher == nil || c.loader == nil {
		return zerr.Wrap(domain.ErrWatchFailed, "no config watcher configured")
	}

	g, ctx := errgroup.WithContext(ctx)
	if err := c.watcher.Start(ctx, configPath); err != nil {
		return err
	}
	c.logger.Debug("watching " + configPath)

	g.Go(func() error {
		<-ctx.Done()
		return c.watcher.Stop()
	})

	g.Go(func() error {
		for event := range c.watcher.Events() {
			c.applyConfigEvent(ctx, event, workspaceRoot)
		}
		if ctx.Err() != nil {
			return nil
		}
		return zerr.Wrap(domain.ErrWatchFailed, "event stream ended")
	})

	return g.Wait()
}

func (c *Controller) applyConfigEvent(ctx context.Context, event ports.ConfigEvent, workspaceRoot string) {
	if event.Removed {
		c.logger.Debug("settings file removed, using defaults")
	}

	settings, err := c.loader.Load(event.Path)
	if err != nil {
		c.logger.Error(err)
		return
	}

	if err := c.OnConfigurationChanged(ctx, settings); err != nil && !errors.Is(err, domain.ErrActionFailed) {
		c.logger.Error(err)
	}
	// The workspace was counted once when the watch started.
	if err := c.redrawStatus(ctx, workspaceRoot); err != nil && !errors.Is(err, domain.ErrActionFailed) {
		c.logger.Error(err)
	}
}

func (c *Controller) listAndOpen(ctx context.Context) error {
	scope := c.scope()
	projects, err := c.catalog.List(scope)
	if err != nil {
		return c.report(err)
	}

	ranked := domain.Rank(projects)
	items := make([]ports.PickItem, 0, len(ranked)+1)
	for _, p := range ranked {
		items = append(items, ports.PickItem{Label: p.Name, Description: p.Path})
	}
	items = append(items, ports.PickItem{Label: domain.ReloadLabel, Description: domain.MsgReloadDescription})

	index, ok, err := c.prompter.Pick(ctx, domain.MsgListPlaceholder, items)
	if err != nil || !ok {
		return err
	}
	if index == len(ranked) {
		return c.reload(ctx)
	}

	project := ranked[index]
	if !c.open(ctx, project.Path) {
		return nil
	}
	if err := c.catalog.RecordOpen(scope, project.Path); err != nil {
		return c.report(err)
	}
	return nil
}

func (c *Controller) reload(ctx context.Context) error {
	c.logger.Debug("reloading projects")
	if err := c.catalog.Invalidate(); err != nil {
		return c.report(err)
	}
	return c.listAndOpen(ctx)
}

func (c *Controller) create(ctx context.Context, span ports.Span) error {
	scope := c.scope()
	projects, err := c.catalog.List(scope)
	if err != nil {
		return c.report(err)
	}

	name, ok, err := c.prompter.Input(ctx, domain.MsgCreatePrompt, func(input string) string {
		return validationMessage(input, projects)
	})
	if err != nil || !ok {
		return err
	}

	root, ok, err := c.chooseRoot(ctx)
	if err != nil || !ok {
		return err
	}

	project, err := c.catalog.Create(scope, name, root)
	if err != nil {
		return c.reportCreate(err)
	}
	span.SetAttribute("project", project.Name)

	// Creation already counted as the first open.
	c.open(ctx, project.Path)
	return nil
}

// chooseRoot returns the only project location, or asks for one when several are configured.
func (c *Controller) chooseRoot(ctx context.Context) (string, bool, error) {
	roots, err := c.resolver.Resolve(c.settings.ProjectsLocation, false)
	if err != nil {
		return "", false, c.report(err)
	}
	if len(roots) == 1 {
		return roots[0], true, nil
	}

	items := make([]ports.PickItem, 0, len(roots))
	for _, r := range roots {
		items = append(items, ports.PickItem{Label: filepath.Base(r), Description: r})
	}
	index, ok, err := c.prompter.Pick(ctx, domain.MsgSelectRoot, items)
	if err != nil || !ok {
		return "", false, err
	}
	return roots[index], true, nil
}

// open asks the workspace to open path. A failure is shown and reported as false.
func (c *Controller) open(ctx context.Context, path string) bool {
	err := c.workspace.OpenFolder(ctx, domain.OpenRequest{
		Path:      path,
		NewWindow: c.settings.OpenInNewWindow,
		Command:   c.settings.OpenCommand,
	})
	if err != nil {
		c.prompter.Info(domain.MsgOpenFailedPrefix + err.Error())
		return false
	}
	return true
}

func (c *Controller) scope() catalog.Scope {
	raw := c.settings.ProjectsLocation
	return catalog.Scope{
		Roots: func() ([]string, error) {
			return c.resolver.Resolve(raw, false)
		},
		Ignored: c.settings.IgnoredFolders,
	}
}

// report shows err to the user and marks it as shown.
func (c *Controller) report(err error) error {
	switch {
	case errors.Is(err, domain.ErrNoConfiguredRoots):
		c.prompter.Error(domain.MsgNoConfiguredRoots)
	case errors.Is(err, domain.ErrInvalidRoots):
		c.prompter.Error(domain.MsgInvalidRoots)
	default:
		c.prompter.Error(err.Error())
	}
	return errors.Join(domain.ErrActionFailed, err)
}

func (c *Controller) reportCreate(err error) error {
	switch {
	case errors.Is(err, domain.ErrNoConfiguredRoots), errors.Is(err, domain.ErrInvalidRoots):
		return c.report(err)
	case errors.Is(err, domain.ErrEmptyProjectName):
		c.prompter.Error(domain.MsgEmptyName)
	case errors.Is(err, domain.ErrDuplicateName):
		c.prompter.Error(domain.MsgDuplicateName)
	case errors.Is(err, domain.ErrInvalidProjectName):
		c.prompter.Error(domain.MsgInvalidName)
	default:
		c.prompter.Error(domain.MsgCreateFailedPrefix + err.Error())
	}
	return errors.Join(domain.ErrActionFailed, err)
}

// validationMessage checks a project name while it is typed.
func validationMessage(input string, projects []domain.Project) string {
	err := catalog.ValidateName(input)
	switch {
	case errors.Is(err, domain.ErrEmptyProjectName):
		return domain.MsgEmptyName
	case err != nil:
		return domain.MsgInvalidName
	case domain.HasName(projects, strings.TrimSpace(input)):
		return domain.MsgDuplicateName
	}
	return ""
}

// checkFingerprint invalidates the catalog when the project locations resolve differently
// than they did when the fingerprint was last stored.
// Unresolvable locations are left for the flow that needs them to report.
func (c *Controller) checkFingerprint() error {
	roots, err := c.resolver.Resolve(c.settings.ProjectsLocation, false)
	if err != nil {
		c.logger.Debug("skipping project location check: " + err.Error())
		return nil
	}

	stored, err := c.loadFingerprint()
	if err != nil {
		return err
	}
	current := domain.RootsFingerprint(roots)
	if stored == current {
		return nil
	}

	if stored != "" {
		c.logger.Debug("project locations changed since the last run")
		if err := c.catalog.Invalidate(); err != nil {
			return err
		}
	}
	return c.saveFingerprint(roots)
}

func (c *Controller) loadFingerprint() (string, error) {
	data, err := c.store.Get(domain.RootsKey)
	if err != nil || data == nil {
		return "", err
	}
	var fingerprint string
	if err := json.Unmarshal(data, &fingerprint); err != nil {
		// Treated like a first run: the fingerprint is rewritten without invalidating.
		c.logger.Warn("ignoring unreadable project location fingerprint")
		return "", nil
	}
	return fingerprint, nil
}

func (c *Controller) saveFingerprint(roots []string) error {
	data, err := json.Marshal(domain.RootsFingerprint(roots))
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	return c.store.Set(domain.RootsKey, data)
}
