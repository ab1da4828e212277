package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rollout/internal/app"
	"go.trai.ch/rollout/internal/build"
	"go.trai.ch/rollout/internal/core/domain"
	"go.trai.ch/rollout/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newTestApp(ctrl *gomock.Controller, logger *mocks.MockLogger, loader *mocks.MockConfigLoader) *app.App {
	return app.New(app.Deps{
		ConfigLoader: loader,
		Logger:       logger,
		Tracer:       mocks.NewMockTracer(ctrl),
		Walker:       mocks.NewMockTreeWalker(ctrl),
		Stager:       mocks.NewMockStager(ctrl),
		Hasher:       mocks.NewMockHasher(ctrl),
		Executor:     mocks.NewMockExecutor(ctrl),
		Templates:    mocks.NewMockTemplateRenderer(ctrl),
		Versions:     mocks.NewMockVersionManifest(ctrl),
		Store:        mocks.NewMockPackageStore(ctrl),
		Dialer:       mocks.NewMockRemoteDialer(ctrl),
		Git:          mocks.NewMockRepositoryOpener(ctrl),
		Prompter:     mocks.NewMockPrompter(ctrl),
	})
}

// TestRun_Success verifies that run returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	application := newTestApp(ctrl, mockLogger, mocks.NewMockConfigLoader(ctrl))

	cleaned := false
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: mockLogger,
		}, func() { cleaned = true }, nil
	}

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, stderr, provider)

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, build.Version+"\n", stdout.String())
	assert.True(t, cleaned)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the error and returns 1 when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLoader := mocks.NewMockConfigLoader(ctrl)
	application := newTestApp(ctrl, mockLogger, mockLoader)

	cleanups := 0
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: mockLogger}, func() { cleanups++ }, nil
	}

	mockLoader.EXPECT().Load(gomock.Any()).Return(nil, domain.ErrConfigNotFound)
	mockLogger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		// The renderer is stopped before the error is logged.
		assert.Equal(t, 1, cleanups)
		assert.ErrorContains(t, err, domain.ErrConfigNotFound.Error())
	})

	exitCode := run(context.Background(), []string{"manifest"}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
	assert.Equal(t, 1, cleanups)
}

// TestRun_ConfigFlag verifies that --config reaches the application.
func TestRun_ConfigFlag(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLoader := mocks.NewMockConfigLoader(ctrl)
	application := newTestApp(ctrl, mockLogger, mockLoader)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: mockLogger}, func() {}, nil
	}

	configPath := filepath.Join(t.TempDir(), domain.ConfigFileName)
	require.NoError(t, os.WriteFile(configPath, nil, 0o600))

	mockLoader.EXPECT().LoadFile(configPath).Return(nil, domain.ErrConfigParseFailed)
	mockLogger.EXPECT().Error(gomock.Any())

	exitCode := run(context.Background(), []string{"--config", configPath, "build"}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}
