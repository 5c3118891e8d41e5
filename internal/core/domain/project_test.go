package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/prj/internal/core/domain"
)

func TestRank(t *testing.T) {
	a := domain.Project{Name: "b", Path: "/r/b", UsageCount: 5}
	b := domain.Project{Name: "a", Path: "/r/a", UsageCount: 5}
	c := domain.Project{Name: "z", Path: "/r/z", UsageCount: 2}

	input := []domain.Project{c, a, b}
	ranked := domain.Rank(input)

	assert.Equal(t, []domain.Project{b, a, c}, ranked)
	assert.Equal(t, []domain.Project{c, a, b}, input, "Rank must not reorder its input")
}

func TestRank_NamesAreCaseSensitive(t *testing.T) {
	upper := domain.Project{Name: "Zeta"}
	lower := domain.Project{Name: "alpha"}

	ranked := domain.Rank([]domain.Project{lower, upper})

	assert.Equal(t, "Zeta", ranked[0].Name)
	assert.Equal(t, "alpha", ranked[1].Name)
}

func TestNewProject(t *testing.T) {
	p := domain.NewProject("/home/me/code/api", -3)

	assert.Equal(t, "api", p.Name)
	assert.Equal(t, "/home/me/code/api", p.Path)
	assert.Zero(t, p.UsageCount)
}

func TestProject_MatchesPath(t *testing.T) {
	p := domain.Project{Name: "api", Path: "/home/me/Code/API"}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "exact", path: "/home/me/Code/API", want: true},
		{name: "different case", path: "/HOME/me/code/api", want: true},
		{name: "trailing separator", path: "/home/me/Code/API/", want: true},
		{name: "other project", path: "/home/me/Code/web", want: false},
		{name: "parent", path: "/home/me/Code", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.MatchesPath(tt.path))
		})
	}
}

func TestHasName(t *testing.T) {
	projects := []domain.Project{{Name: "foo"}, {Name: "Bar"}}

	assert.True(t, domain.HasName(projects, "foo"))
	assert.False(t, domain.HasName(projects, "Foo"))
	assert.False(t, domain.HasName(projects, "bar"))
}

func TestIsHidden(t *testing.T) {
	assert.True(t, domain.IsHidden(".git"))
	assert.False(t, domain.IsHidden("git"))
}
