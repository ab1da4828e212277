package app

import (
	"context"

	"go.trai.ch/rollout/internal/core/domain"
	"go.trai.ch/rollout/internal/core/ports"
	"go.trai.ch/zerr"
)

// Build runs the clean and build commands.
func (a *App) Build(ctx context.Context) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	a.tracer.EmitPlan(ctx, []string{"build"})
	return a.runBuild(ctx, cfg)
}

// Test runs the test command.
func (a *App) Test(ctx context.Context) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	a.tracer.EmitPlan(ctx, []string{"test"})
	return a.runTests(ctx, cfg)
}

func (a *App) buildAndTest(ctx context.Context, cfg *domain.Config) error {
	if err := a.runBuild(ctx, cfg); err != nil {
		return err
	}
	return a.runTests(ctx, cfg)
}

func (a *App) runBuild(ctx context.Context, cfg *domain.Config) error {
	return a.step(ctx, "build", func(ctx context.Context, span ports.Span) error {
		for _, line := range []string{cfg.Build.Clean, cfg.Build.Build} {
			if line == "" {
				continue
			}
			if err := a.executor.Execute(ctx, a.buildCommand(cfg, line), span); err != nil {
				return zerr.Wrap(err, domain.ErrBuildFailed.Error())
			}
		}
		return nil
	})
}

func (a *App) runTests(ctx context.Context, cfg *domain.Config) error {
	return a.step(ctx, "test", func(ctx context.Context, span ports.Span) error {
		if cfg.Build.Test == "" {
			return nil
		}
		if err := a.executor.Execute(ctx, a.buildCommand(cfg, cfg.Build.Test), span); err != nil {
			return zerr.Wrap(err, domain.ErrTestsFailed.Error())
		}
		return nil
	})
}

func (a *App) buildCommand(cfg *domain.Config, line string) domain.Command {
	return domain.Command{Line: line, Dir: cfg.Root, Env: cfg.Build.Env}
}
