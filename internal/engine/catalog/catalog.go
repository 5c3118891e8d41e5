// Package catalog maintains the persisted set of known projects.
package catalog

import (
	"cmp"
	"encoding/json"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/prj/internal/core/domain"
	"go.trai.ch/prj/internal/core/ports"
	"go.trai.ch/zerr"
)

// Scope carries the parts of the settings snapshot a catalog call depends on.
// Roots is only called when the project set has to be rediscovered.
type Scope struct {
	Roots   func() ([]string, error)
	Ignored []string
}

// Catalog is the project registry.
// The persisted set under domain.ProjectsKey is authoritative until it is invalidated.
type Catalog struct {
	store  ports.Store
	fsys   ports.FileSystem
	logger ports.Logger
}

// New creates a Catalog backed by store.
func New(store ports.Store, fsys ports.FileSystem, logger ports.Logger) *Catalog {
	return &Catalog{
		store:  store,
		fsys:   fsys,
		logger: logger,
	}
}

// List returns the current project set, rediscovering it from the roots if none is persisted.
func (c *Catalog) List(scope Scope) ([]domain.Project, error) {
	projects, found, err := c.load(domain.ProjectsKey)
	if err != nil {
		return nil, err
	}
	if found {
		return projects, nil
	}
	return c.rebuild(scope)
}

// FindByPath returns the project living at path, compared case-insensitively.
func (c *Catalog) FindByPath(scope Scope, path string) (domain.Project, bool, error) {
	projects, err := c.List(scope)
	if err != nil {
		return domain.Project{}, false, err
	}
	for _, p := range projects {
		if p.MatchesPath(path) {
			return p, true, nil
		}
	}
	return domain.Project{}, false, nil
}

// RecordOpen increments the usage count of the project at path.
// Nothing is written when no project matches.
func (c *Catalog) RecordOpen(scope Scope, path string) error {
	projects, err := c.List(scope)
	if err != nil {
		return err
	}
	idx := slices.IndexFunc(projects, func(p domain.Project) bool {
		return p.MatchesPath(path)
	})
	if idx < 0 {
		c.logger.Debug("open of unknown folder not recorded: " + path)
		return nil
	}
	projects[idx].UsageCount++
	return c.save(domain.ProjectsKey, projects)
}

// Create makes a new project directory named name under root and registers it.
// root must be one of the scope's roots.
// The new project starts with a usage count of 1; creating it counts as its first open.
func (c *Catalog) Create(scope Scope, name, root string) (domain.Project, error) {
	name = strings.TrimSpace(name)
	if err := ValidateName(name); err != nil {
		return domain.Project{}, err
	}

	roots, err := scope.Roots()
	if err != nil {
		return domain.Project{}, err
	}
	root = filepath.Clean(root)
	if !slices.Contains(roots, root) {
		return domain.Project{}, zerr.Wrap(domain.ErrUnknownRoot, root)
	}

	projects, err := c.List(scope)
	if err != nil {
		return domain.Project{}, err
	}
	if domain.HasName(projects, name) {
		return domain.Project{}, zerr.Wrap(domain.ErrDuplicateName, name)
	}

	path := filepath.Join(root, name)
	if err := c.fsys.Mkdir(path, domain.ProjectDirPerm); err != nil {
		return domain.Project{}, zerr.With(zerr.Wrap(err, domain.ErrProjectCreateFailed.Error()), "path", path)
	}

	project := domain.Project{Name: name, Path: path, UsageCount: 1}
	if err := c.save(domain.ProjectsKey, append(projects, project)); err != nil {
		return domain.Project{}, err
	}
	c.logger.Debug("created project " + path)
	return project, nil
}

// Invalidate drops the persisted set so the next List rediscovers it.
// The dropped set is kept as the previous snapshot so usage counts survive the rebuild.
// When no set is persisted an existing snapshot is left untouched.
func (c *Catalog) Invalidate() error {
	projects, found, err := c.load(domain.ProjectsKey)
	if err != nil {
		return err
	}
	if found {
		if err := c.save(domain.PreviousProjectsKey, projects); err != nil {
			return err
		}
	}
	if err := c.store.Clear(domain.ProjectsKey); err != nil {
		return err
	}
	c.logger.Debug("project set invalidated")
	return nil
}

// ValidateName checks that name can be used as the directory name of a new project.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return domain.ErrEmptyProjectName
	case name == "." || name == "..", strings.ContainsAny(name, `/\`):
		return zerr.Wrap(domain.ErrInvalidProjectName, name)
	}
	return nil
}

// rebuild discovers the project set from the roots and persists it.
func (c *Catalog) rebuild(scope Scope) ([]domain.Project, error) {
	roots, err := scope.Roots()
	if err != nil {
		return nil, err
	}

	previous, _, err := c.load(domain.PreviousProjectsKey)
	if err != nil {
		return nil, err
	}

	projects, err := c.discover(roots, scope.Ignored, domain.CountsByPath(previous))
	if err != nil {
		return nil, err
	}

	if err := c.save(domain.ProjectsKey, projects); err != nil {
		return nil, err
	}
	if err := c.store.Clear(domain.PreviousProjectsKey); err != nil {
		return nil, err
	}
	c.logger.Debug("rediscovered projects")
	return projects, nil
}

// discover lists the immediate subdirectories of every root.
// Usage counts are carried over from counts by path.
func (c *Catalog) discover(roots, ignored []string, counts map[string]int) ([]domain.Project, error) {
	projects := make([]domain.Project, 0)
	for _, root := range roots {
		entries, err := c.fsys.ReadDir(root)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrRootReadFailed.Error()), "root", root)
		}
		for _, entry := range entries {
			name := entry.Name()
			if domain.IsHidden(name) || slices.Contains(ignored, name) {
				continue
			}
			path := filepath.Join(root, name)
			// Stat follows symlinks, so links to directories are projects too.
			info, err := c.fsys.Stat(path)
			if err != nil || !info.IsDir() {
				continue
			}
			projects = append(projects, domain.NewProject(path, counts[path]))
		}
	}
	return projects, nil
}

// record is the persisted form of a project.
// label, description and count are accepted for sets written by older releases.
type record struct {
	Name        string `json:"name,omitempty"`
	Path        string `json:"path,omitempty"`
	UsageCount  *int   `json:"usageCount,omitempty"`
	Label       string `json:"label,omitempty"`
	Description string `json:"description,omitempty"`
	Count       *int   `json:"count,omitempty"`
}

type storedProject struct {
	Name       string `json:"name"`
	Path       string `json:"path"`
	UsageCount int    `json:"usageCount"`
}

func (r record) project() domain.Project {
	p := domain.Project{
		Name: cmp.Or(r.Name, r.Label),
		Path: cmp.Or(r.Path, r.Description),
	}
	switch {
	case r.UsageCount != nil:
		p.UsageCount = max(*r.UsageCount, 0)
	case r.Count != nil:
		p.UsageCount = max(*r.Count, 0)
	}
	if p.Name == "" && p.Path != "" {
		p.Name = filepath.Base(p.Path)
	}
	return p
}

// load reads the set stored under key. found is false if the key is absent.
// A corrupt value is logged and treated as absent so the set is rediscovered.
func (c *Catalog) load(key string) ([]domain.Project, bool, error) {
	data, err := c.store.Get(key)
	if err != nil {
		return nil, false, err
	}
	if data == nil {
		return nil, false, nil
	}

	var records []record
	if len(data) > 0 {
		if err := json.Unmarshal(data, &records); err != nil {
			c.logger.Error(zerr.With(zerr.Wrap(err, domain.ErrCatalogUnmarshalFailed.Error()), "key", key))
			return nil, false, nil
		}
	}

	projects := make([]domain.Project, 0, len(records))
	for _, r := range records {
		if p := r.project(); p.Path != "" {
			projects = append(projects, p)
		}
	}
	return projects, true, nil
}

func (c *Catalog) save(key string, projects []domain.Project) error {
	records := make([]storedProject, 0, len(projects))
	for _, p := range projects {
		records = append(records, storedProject{Name: p.Name, Path: p.Path, UsageCount: p.UsageCount})
	}
	data, err := json.Marshal(records)
	if err != nil {
		return zerr.Wrap(err, domain.ErrCatalogMarshalFailed.Error())
	}
	return c.store.Set(key, data)
}
