// Package app implements the application layer for rollout.
package app

import (
	"context"
	"os"
	"time"

	"go.trai.ch/rollout/internal/core/domain"
	"go.trai.ch/rollout/internal/core/ports"
	"go.trai.ch/zerr"
)

// Deps are the collaborators the App orchestrates.
type Deps struct {
	ConfigLoader ports.ConfigLoader
	Logger       ports.Logger
	Tracer       ports.Tracer
	Walker       ports.TreeWalker
	Stager       ports.Stager
	Hasher       ports.Hasher
	Executor     ports.Executor
	Templates    ports.TemplateRenderer
	Versions     ports.VersionManifest
	Store        ports.PackageStore
	Dialer       ports.RemoteDialer
	Git          ports.RepositoryOpener
	Prompter     ports.Prompter
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	tracer       ports.Tracer
	walker       ports.TreeWalker
	stager       ports.Stager
	hasher       ports.Hasher
	executor     ports.Executor
	templates    ports.TemplateRenderer
	versions     ports.VersionManifest
	store        ports.PackageStore
	dialer       ports.RemoteDialer
	git          ports.RepositoryOpener
	prompter     ports.Prompter

	configFile string
	workDir    string
	now        func() time.Time
}

// New creates a new App instance.
func New(deps Deps) *App {
	return &App{
		configLoader: deps.ConfigLoader,
		logger:       deps.Logger,
		tracer:       deps.Tracer,
		walker:       deps.Walker,
		stager:       deps.Stager,
		hasher:       deps.Hasher,
		executor:     deps.Executor,
		templates:    deps.Templates,
		versions:     deps.Versions,
		store:        deps.Store,
		dialer:       deps.Dialer,
		git:          deps.Git,
		prompter:     deps.Prompter,
		now:          time.Now,
	}
}

// SetConfigFile makes the App load path instead of discovering rollout.yaml.
// An empty path restores discovery.
func (a *App) SetConfigFile(path string) {
	a.configFile = path
}

// WithWorkingDir sets the directory rollout.yaml discovery starts from.
func (a *App) WithWorkingDir(dir string) *App {
	a.workDir = dir
	return a
}

// WithClock replaces the clock used to time package records.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

func (a *App) loadConfig() (*domain.Config, error) {
	if a.configFile != "" {
		cfg, err := a.configLoader.LoadFile(a.configFile)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to load configuration")
		}
		return cfg, nil
	}

	cwd := a.workDir
	if cwd == "" {
		var err error
		if cwd, err = os.Getwd(); err != nil {
			return nil, zerr.Wrap(err, "failed to get working directory")
		}
	}

	cfg, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

// serviceName is the yum package, init service and service account name.
func serviceName(cfg *domain.Config, info domain.PackageInfo) string {
	if cfg.Deploy.Service != "" {
		return cfg.Deploy.Service
	}
	return info.Name
}

// step runs fn inside a span named name and records its error.
func (a *App) step(ctx context.Context, name string, fn func(context.Context, ports.Span) error, opts ...ports.SpanOption) error {
	ctx, span := a.tracer.Start(ctx, name, opts...)
	defer span.End()

	err := fn(ctx, span)
	span.RecordError(err)
	return err
}
