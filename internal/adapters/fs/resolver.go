package fs

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/prj/internal/core/domain"
	"go.trai.ch/prj/internal/core/ports"
)

var _ ports.RootResolver = (*Resolver)(nil)

// Resolver implements ports.RootResolver.
// It expands the home placeholder and keeps only existing directories.
type Resolver struct {
	fsys   ports.FileSystem
	home   string
	cached []string
	valid  bool
}

// NewResolver creates a Resolver that expands the placeholder to the current user's home directory.
func NewResolver(fsys ports.FileSystem) *Resolver {
	home, _ := os.UserHomeDir()
	return NewResolverWithHome(fsys, home)
}

// NewResolverWithHome creates a Resolver with an explicit home directory.
func NewResolverWithHome(fsys ports.FileSystem, home string) *Resolver {
	return &Resolver{fsys: fsys, home: home}
}

// Resolve returns the existing, deduplicated directories named by raw.
// Candidates that do not exist or are not directories are dropped without error.
func (r *Resolver) Resolve(raw []string, force bool) ([]string, error) {
	if r.valid && !force {
		return slices.Clone(r.cached), nil
	}

	candidates := make([]string, 0, len(raw))
	for _, c := range raw {
		if c = strings.TrimSpace(c); c != "" {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return nil, domain.ErrNoConfiguredRoots
	}

	roots := make([]string, 0, len(candidates))
	for _, c := range candidates {
		dir, ok := r.checkDir(r.expandHome(c))
		if ok && !slices.Contains(roots, dir) {
			roots = append(roots, dir)
		}
	}
	if len(roots) == 0 {
		return nil, domain.ErrInvalidRoots
	}

	r.cached = roots
	r.valid = true
	return slices.Clone(roots), nil
}

// Cached returns the last successful result.
func (r *Resolver) Cached() ([]string, bool) {
	if !r.valid {
		return nil, false
	}
	return slices.Clone(r.cached), true
}

// expandHome substitutes a leading $home or ~ with the home directory.
func (r *Resolver) expandHome(dir string) string {
	for _, token := range []string{domain.HomePlaceholder, "~"} {
		rest, found := strings.CutPrefix(dir, token)
		if !found {
			continue
		}
		if rest == "" || rest[0] == '/' || rest[0] == filepath.Separator {
			return r.home + rest
		}
	}
	return dir
}

func (r *Resolver) checkDir(dir string) (string, bool) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	info, err := r.fsys.Stat(abs)
	if err != nil || !info.IsDir() {
		return "", false
	}
	return abs, true
}
