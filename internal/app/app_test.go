package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/prj/internal/adapters/config"
	"go.trai.ch/prj/internal/adapters/fs"
	"go.trai.ch/prj/internal/adapters/store"
	"go.trai.ch/prj/internal/adapters/telemetry"
	"go.trai.ch/prj/internal/app"
	"go.trai.ch/prj/internal/core/domain"
	"go.trai.ch/prj/internal/core/ports/mocks"
	"go.trai.ch/prj/internal/engine/catalog"
	"go.uber.org/mock/gomock"
)

type appFixture struct {
	app        *app.App
	workspace  *mocks.MockWorkspace
	stdout     *bytes.Buffer
	stderr     *bytes.Buffer
	root       string
	configPath string
}

func newAppFixture(t *testing.T, stdin string, dirs ...string) *appFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	root := t.TempDir()
	for _, d := range dirs {
		require.NoError(t, os.Mkdir(filepath.Join(root, d), 0o755))
	}

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("projects:\n  projectsLocation: "+root+"\n"), 0o600))

	s, err := store.NewStoreWithPath(filepath.Join(t.TempDir(), "state"))
	require.NoError(t, err)

	osfs := fs.NewOSFS()
	workspace := mocks.NewMockWorkspace(ctrl)
	f := &appFixture{
		workspace:  workspace,
		stdout:     new(bytes.Buffer),
		stderr:     new(bytes.Buffer),
		root:       root,
		configPath: configPath,
	}
	f.app = app.New(
		config.NewLoader(log),
		fs.NewResolver(osfs),
		catalog.New(s, osfs, log),
		workspace,
		mocks.NewMockConfigWatcher(ctrl),
		s,
		telemetry.NewNoOpTracer(),
		log,
	).WithStreams(strings.NewReader(stdin), f.stdout, f.stderr)
	return f
}

func (f *appFixture) opts() app.Options {
	return app.Options{ConfigPath: f.configPath, OutputMode: "linear"}
}

func TestApp_ListWithLinearPrompter(t *testing.T) {
	f := newAppFixture(t, "2\n", "api", "web")

	f.workspace.EXPECT().OpenFolder(gomock.Any(), domain.OpenRequest{
		Path:    filepath.Join(f.root, "web"),
		Command: []string{"code"},
	}).Return(nil)

	require.NoError(t, f.app.List(context.Background(), f.opts()))
	assert.Contains(t, f.stderr.String(), domain.MsgListPlaceholder)
	assert.Contains(t, f.stderr.String(), "3) "+domain.ReloadLabel)
	assert.Empty(t, f.stdout.String())
}

func TestApp_ReloadWithLinearPrompter(t *testing.T) {
	f := newAppFixture(t, "\n", "api")

	require.NoError(t, f.app.Reload(context.Background(), f.opts()))
	assert.Contains(t, f.stderr.String(), "1) api")
}

func TestApp_CreateWithLinearPrompter(t *testing.T) {
	f := newAppFixture(t, "  \napi\nfresh\n", "api")

	f.workspace.EXPECT().OpenFolder(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, f.app.Create(context.Background(), f.opts()))
	assert.Contains(t, f.stderr.String(), domain.MsgEmptyName)
	assert.Contains(t, f.stderr.String(), domain.MsgDuplicateName)
	assert.DirExists(t, filepath.Join(f.root, "fresh"))
}

func TestApp_Status(t *testing.T) {
	f := newAppFixture(t, "", "api")

	opts := f.opts()
	opts.Workspace = filepath.Join(f.root, "api")
	require.NoError(t, f.app.Status(context.Background(), opts))
	assert.Equal(t, domain.MsgStatusIcon+" api\n", f.stdout.String())
}

func TestApp_StatusOutsideProjects(t *testing.T) {
	f := newAppFixture(t, "", "api")

	opts := f.opts()
	opts.Workspace = t.TempDir()
	require.NoError(t, f.app.Status(context.Background(), opts))
	assert.Empty(t, f.stdout.String())
}

func TestApp_InvalidOutputMode(t *testing.T) {
	f := newAppFixture(t, "")

	opts := f.opts()
	opts.OutputMode = "fancy"
	err := f.app.List(context.Background(), opts)
	require.ErrorIs(t, err, domain.ErrInvalidOutputMode)
}

func TestApp_BrokenConfig(t *testing.T) {
	f := newAppFixture(t, "")
	require.NoError(t, os.WriteFile(f.configPath, []byte("projects: [\n"), 0o600))

	err := f.app.List(context.Background(), f.opts())
	require.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
}

func TestApp_MissingRootsReported(t *testing.T) {
	f := newAppFixture(t, "")
	require.NoError(t, os.Remove(f.configPath))

	err := f.app.List(context.Background(), f.opts())
	require.ErrorIs(t, err, domain.ErrActionFailed)
	assert.Contains(t, f.stderr.String(), domain.MsgNoConfiguredRoots)
}
