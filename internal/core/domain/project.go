// Package domain contains the core types of the project registry.
package domain

import (
	"cmp"
	"path/filepath"
	"slices"
	"strings"
)

// Project is one registry entry.
type Project struct {
	// Name is the display identifier, the folder's base name unless given at creation.
	Name string
	// Path is the absolute folder path and the lookup key of the project.
	Path string
	// UsageCount counts opens and is only used for ranking.
	UsageCount int
}

// NewProject creates a project for the folder at path, named after its base name.
func NewProject(path string, count int) Project {
	return Project{
		Name:       filepath.Base(path),
		Path:       path,
		UsageCount: max(count, 0),
	}
}

// MatchesPath reports whether p lives at path, ignoring case and trailing separators.
func (p Project) MatchesPath(path string) bool {
	return strings.EqualFold(filepath.Clean(p.Path), filepath.Clean(path))
}

// Rank returns a copy of projects in display order: most used first, then by name.
// Names compare byte-wise, so "B" sorts before "a".
func Rank(projects []Project) []Project {
	ranked := slices.Clone(projects)
	slices.SortStableFunc(ranked, func(a, b Project) int {
		if c := cmp.Compare(b.UsageCount, a.UsageCount); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return ranked
}

// CountsByPath indexes the usage counts of projects by path.
func CountsByPath(projects []Project) map[string]int {
	counts := make(map[string]int, len(projects))
	for _, p := range projects {
		counts[p.Path] = p.UsageCount
	}
	return counts
}

// HasName reports whether a project with exactly this name exists.
func HasName(projects []Project, name string) bool {
	return slices.ContainsFunc(projects, func(p Project) bool {
		return p.Name == name
	})
}

// IsHidden reports whether a directory entry name is hidden.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
