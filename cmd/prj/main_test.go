package main

import (
	"bytes"
	"context"
	"errors"
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

func newProvider(t *testing.T, mockLogger *mocks.MockLogger) ComponentProvider {
	t.Helper()
	ctrl := gomock.NewController(t)

	s, err := store.NewStoreWithPath(filepath.Join(t.TempDir(), "state"))
	require.NoError(t, err)
	osfs := fs.NewOSFS()

	application := app.New(
		config.NewLoader(mockLogger),
		fs.NewResolver(osfs),
		catalog.New(s, osfs, mockLogger),
		mocks.NewMockWorkspace(ctrl),
		mocks.NewMockConfigWatcher(ctrl),
		s,
		telemetry.NewNoOpTracer(),
		mockLogger,
	).WithStreams(strings.NewReader(""), new(bytes.Buffer), new(bytes.Buffer))

	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: mockLogger,
		}, func() {}, nil
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, newProvider(t, mockLogger))
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that unexpected errors are logged once.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrInvalidOutputMode)
	}).Times(1)

	exitCode := run(context.Background(), []string{"list", "-o", "fancy"}, new(bytes.Buffer), newProvider(t, mockLogger))
	assert.Equal(t, 1, exitCode)
}

// TestRun_ReportedError verifies that errors already shown to the user are not logged again.
func TestRun_ReportedError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	configPath := filepath.Join(t.TempDir(), "missing.yaml")
	exitCode := run(context.Background(), []string{"list", "--ci", "--config", configPath}, new(bytes.Buffer), newProvider(t, mockLogger))
	assert.Equal(t, 1, exitCode)
}

// TestRun_OptionsApplied verifies that options reach the App before execution.
func TestRun_OptionsApplied(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "api"), 0o755))
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("projects:\n  projectsLocation: "+dir+"\n"), 0o600))

	stdout := new(bytes.Buffer)
	exitCode := run(
		context.Background(),
		[]string{"status", "--config", configPath, "--workspace", filepath.Join(dir, "api")},
		new(bytes.Buffer),
		newProvider(t, mockLogger),
		func(a *app.App) { a.WithStreams(strings.NewReader(""), stdout, new(bytes.Buffer)) },
	)

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, domain.MsgStatusIcon+" api\n", stdout.String())
}
