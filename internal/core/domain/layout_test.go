package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/prj/internal/core/domain"
)

func TestDefaultConfigPath(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		t.Setenv(domain.ConfigEnvVar, "/tmp/prj.yaml")
		assert.Equal(t, "/tmp/prj.yaml", domain.DefaultConfigPath())
	})

	t.Run("xdg config home", func(t *testing.T) {
		t.Setenv(domain.ConfigEnvVar, "")
		t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
		t.Setenv("HOME", "/home/me")
		assert.Equal(t, filepath.Join("/xdg/config", "prj", "config.yaml"), domain.DefaultConfigPath())
	})
}

func TestDefaultStatePath(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		expected string
	}{
		{
			name:     "env override",
			env:      map[string]string{domain.StateEnvVar: "/tmp/state", "XDG_STATE_HOME": "/xdg/state"},
			expected: "/tmp/state",
		},
		{
			name:     "xdg state home",
			env:      map[string]string{domain.StateEnvVar: "", "XDG_STATE_HOME": "/xdg/state"},
			expected: filepath.Join("/xdg/state", "prj"),
		},
		{
			name:     "home fallback",
			env:      map[string]string{domain.StateEnvVar: "", "XDG_STATE_HOME": "", "HOME": "/home/me"},
			expected: filepath.Join("/home/me", ".local", "state", "prj"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			assert.Equal(t, tt.expected, domain.DefaultStatePath())
		})
	}
}
