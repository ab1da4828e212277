package app_test

import (
	"context"
	"iter"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.trai.ch/rollout/internal/app"
	"go.trai.ch/rollout/internal/core/domain"
	"go.trai.ch/rollout/internal/core/ports"
	"go.trai.ch/rollout/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

var testClock = time.Date(2017, 3, 14, 15, 9, 26, 0, time.UTC)

type appTestMocks struct {
	loader    *mocks.MockConfigLoader
	logger    *mocks.MockLogger
	tracer    *mocks.MockTracer
	span      *mocks.MockSpan
	walker    *mocks.MockTreeWalker
	stager    *mocks.MockStager
	hasher    *mocks.MockHasher
	executor  *mocks.MockExecutor
	templates *mocks.MockTemplateRenderer
	versions  *mocks.MockVersionManifest
	store     *mocks.MockPackageStore
	dialer    *mocks.MockRemoteDialer
	git       *mocks.MockRepositoryOpener
	prompter  *mocks.MockPrompter

	cfg *domain.Config
}

// setupAppTest creates an App over mocks and a project config rooted in a
// temporary directory.
func setupAppTest(t *testing.T) (*app.App, *appTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &appTestMocks{
		loader:    mocks.NewMockConfigLoader(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		tracer:    mocks.NewMockTracer(ctrl),
		span:      mocks.NewMockSpan(ctrl),
		walker:    mocks.NewMockTreeWalker(ctrl),
		stager:    mocks.NewMockStager(ctrl),
		hasher:    mocks.NewMockHasher(ctrl),
		executor:  mocks.NewMockExecutor(ctrl),
		templates: mocks.NewMockTemplateRenderer(ctrl),
		versions:  mocks.NewMockVersionManifest(ctrl),
		store:     mocks.NewMockPackageStore(ctrl),
		dialer:    mocks.NewMockRemoteDialer(ctrl),
		git:       mocks.NewMockRepositoryOpener(ctrl),
		prompter:  mocks.NewMockPrompter(ctrl),
		cfg:       testConfig(t.TempDir()),
	}

	m.loader.EXPECT().Load(m.cfg.Root).Return(m.cfg, nil).AnyTimes()
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	m.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	m.span.EXPECT().End().AnyTimes()
	m.span.EXPECT().RecordError(gomock.Any()).AnyTimes()
	m.span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	m.span.EXPECT().Write(gomock.Any()).DoAndReturn(func(p []byte) (int, error) {
		return len(p), nil
	}).AnyTimes()

	// Start has variadic signature: Start(ctx, name, ...opts).
	m.tracer.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, m.span
		},
	).AnyTimes()
	m.tracer.EXPECT().EmitPlan(gomock.Any(), gomock.Any()).AnyTimes()

	a := app.New(app.Deps{
		ConfigLoader: m.loader,
		Logger:       m.logger,
		Tracer:       m.tracer,
		Walker:       m.walker,
		Stager:       m.stager,
		Hasher:       m.hasher,
		Executor:     m.executor,
		Templates:    m.templates,
		Versions:     m.versions,
		Store:        m.store,
		Dialer:       m.dialer,
		Git:          m.git,
		Prompter:     m.prompter,
	}).WithWorkingDir(m.cfg.Root).WithClock(func() time.Time { return testClock })

	return a, m
}

func testConfig(root string) *domain.Config {
	return &domain.Config{
		Root:         root,
		WorkDir:      filepath.Join(root, domain.WorkDirName),
		TemplatesDir: filepath.Join(root, domain.TemplatesDirName),
		Package: domain.PackageConfig{
			VersionManifest: filepath.Join(root, "Cargo.toml"),
			VersionFile:     filepath.Join(root, "src", "version.txt"),
			BinaryDir:       "/usr/bin",
			ReleaseDir:      filepath.Join(root, "target", "release"),
			AssetsDir:       filepath.Join(root, "assets"),
			Release:         "1",
			Dist:            "el6",
			Arch:            "x86_64",
			RPMBuild:        "rpmbuild",
		},
		Manifest: domain.DefaultManifestConfig(),
		Repo:     domain.RepoConfig{Host: "yum.example.com", Path: "/opt/yumrepo"},
		Deploy: domain.DeployConfig{
			Concurrency: 2,
			Consul: domain.ConsulConfig{
				Template:    "consul_service_definition.json.template",
				Destination: "/etc/consul/",
			},
		},
		Release: domain.ReleaseConfig{Remote: domain.DefaultRemote},
		Build: domain.BuildConfig{
			Clean: "cargo clean",
			Build: "cargo build --release",
			Test:  "cargo test --release",
			Env:   map[string]string{"UPDATE_BUILD_INFO": "1"},
		},
		SSH: domain.SSHConfig{Port: 22, Sudo: "sudo"},
	}
}

var counterInfo = domain.PackageInfo{Name: "counter", Version: "1.2.3-SNAPSHOT"}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func levels(ls ...domain.TreeLevel) iter.Seq2[domain.TreeLevel, error] {
	return func(yield func(domain.TreeLevel, error) bool) {
		for _, l := range ls {
			if !yield(l, nil) {
				return
			}
		}
	}
}
