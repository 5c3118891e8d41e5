package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/prj/internal/adapters/config"
	"go.trai.ch/prj/internal/core/domain"
	"go.trai.ch/prj/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestLoader_Load(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected domain.Settings
	}{
		{
			name:     "Empty File",
			content:  "",
			expected: domain.DefaultSettings(),
		},
		{
			name: "Single Location",
			content: `
projects:
  projectsLocation: $home/code
`,
			expected: domain.Settings{
				ProjectsLocation:           []string{"$home/code"},
				ShowProjectNameInStatusBar: true,
				OpenCommand:                []string{"code"},
			},
		},
		{
			name: "All Keys",
			content: `
projects:
  projectsLocation:
    - /src
    - ~/work
  ignoredFolders: [node_modules, vendor]
  showProjectNameInStatusBar: false
  openInNewWindow: true
  openCommand: [codium, --wait]
`,
			expected: domain.Settings{
				ProjectsLocation:           []string{"/src", "~/work"},
				IgnoredFolders:             []string{"node_modules", "vendor"},
				ShowProjectNameInStatusBar: false,
				OpenInNewWindow:            true,
				OpenCommand:                []string{"codium", "--wait"},
			},
		},
		{
			name: "Null Location",
			content: `
projects:
  projectsLocation:
  openCommand: zed
`,
			expected: domain.Settings{
				ShowProjectNameInStatusBar: true,
				OpenCommand:                []string{"zed"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockLogger := mocks.NewMockLogger(ctrl)
			loader := config.NewLoader(mockLogger)

			path := createFile(t, t.TempDir(), tt.content)

			settings, err := loader.Load(path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, settings)
		})
	}
}

func TestLoader_Load_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).Times(1)
	loader := config.NewLoader(mockLogger)

	settings, err := loader.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestLoader_Load_IgnoredFolderWithSeparator(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)
	loader := config.NewLoader(mockLogger)

	path := createFile(t, t.TempDir(), `
projects:
  projectsLocation: /src
  ignoredFolders: [build, a/b]
`)

	settings, err := loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"build"}, settings.IgnoredFolders)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(t *testing.T) string
		expectedErr error
	}{
		{
			name: "Invalid YAML Syntax",
			setup: func(t *testing.T) string {
				t.Helper()
				return createFile(t, t.TempDir(), "projects: [unclosed\n")
			},
			expectedErr: domain.ErrConfigParseFailed,
		},
		{
			name: "Mapping As Location",
			setup: func(t *testing.T) string {
				t.Helper()
				return createFile(t, t.TempDir(), "projects:\n  projectsLocation:\n    a: b\n")
			},
			expectedErr: domain.ErrConfigParseFailed,
		},
		{
			name: "Path Is Directory",
			setup: func(t *testing.T) string {
				t.Helper()
				return t.TempDir()
			},
			expectedErr: domain.ErrConfigReadFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockLogger := mocks.NewMockLogger(ctrl)
			loader := config.NewLoader(mockLogger)

			_, err := loader.Load(tt.setup(t))
			require.Error(t, err)
			// zerr.Wrap keeps the sentinel's message but not its identity.
			require.ErrorContains(t, err, tt.expectedErr.Error())
		})
	}
}

// Helpers.

func createFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, domain.ConfigFileName)
	err := os.WriteFile(path, []byte(content), domain.PrivateFilePerm)
	require.NoError(t, err)
	return path
}
