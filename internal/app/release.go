package app

import (
	"context"
	"strings"

	"github.com/blang/semver/v4"
	"go.trai.ch/rollout/internal/core/domain"
	"go.trai.ch/rollout/internal/core/ports"
	"go.trai.ch/zerr"
)

// ReleaseOptions configures a release.
type ReleaseOptions struct {
	Type domain.ReleaseType
	// DryRun skips the confirmation, commits, tags, publishing and pushing.
	DryRun bool
	// SkipChecks allows releasing from any branch with a dirty worktree.
	SkipChecks bool
	// SkipBuild skips the build and tests before the release commit.
	SkipBuild bool
}

// Release runs the release flow. Snapshot and final releases are packaged,
// published, bumped and pushed. testfinal releases run as a dry run on the
// test branches and stop after the bump.
func (a *App) Release(ctx context.Context, opts ReleaseOptions) error {
	if opts.Type == domain.ReleaseTestFinal {
		// testfinal rehearses a final release: it never commits or tags.
		opts.DryRun = true
		opts.SkipChecks = true
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	repo, err := a.git.Open(cfg.Root)
	if err != nil {
		return err
	}

	if err := a.release(ctx, cfg, repo, opts); err != nil {
		return err
	}

	if opts.Type != domain.ReleaseTestFinal {
		rpmPath, err := a.buildPackage(ctx, cfg)
		if err != nil {
			return err
		}
		if opts.DryRun {
			a.logger.Info("dry run: not publishing " + rpmPath)
		} else if err := a.publish(ctx, cfg, rpmPath); err != nil {
			return err
		}
	}

	if err := a.bump(cfg, repo, opts); err != nil {
		return err
	}

	if opts.Type == domain.ReleaseTestFinal {
		return nil
	}
	if opts.DryRun {
		a.logger.Info("dry run: not pushing to " + cfg.Release.Remote)
		return nil
	}

	return a.step(ctx, "push", func(ctx context.Context, _ ports.Span) error {
		a.logger.Info("pushing release to " + cfg.Release.Remote)
		return repo.Push(ctx, cfg.Release.Remote)
	})
}

//nolint:cyclop // mirrors the release checklist
func (a *App) release(ctx context.Context, cfg *domain.Config, repo ports.Repository, opts ReleaseOptions) error {
	if !opts.DryRun {
		ok, err := a.prompter.Confirm("*** You are about to do a release. This is not a dry run. *** Continue?")
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrReleaseAborted
		}
	}

	if !opts.SkipChecks {
		if err := a.checkWorktree(repo); err != nil {
			return err
		}
	}

	if opts.Type == domain.ReleaseTestFinal {
		if err := repo.RecreateBranch(domain.BranchTestDevelop); err != nil {
			return err
		}
	}

	info, err := a.versions.Read(cfg.Package.VersionManifest)
	if err != nil {
		return err
	}
	start, err := domain.ParseVersion(info.Version)
	if err != nil {
		return err
	}
	a.logger.Info("starting version for release is " + start.String() + ", package name is " + info.Name)

	confirmed, err := a.confirmVersion(opts.Type, start)
	if err != nil {
		return err
	}

	var sha string
	if opts.Type == domain.ReleaseSnapshot {
		if sha, err = repo.ShortHead(); err != nil {
			return err
		}
	}
	version, err := domain.ReleaseVersion(opts.Type, confirmed, sha)
	if err != nil {
		return err
	}
	a.logger.Info("releasing " + info.Name + " v" + version.String())

	if err := a.versions.SetVersion(cfg.Package.VersionManifest, version.String()); err != nil {
		return err
	}

	if !opts.SkipBuild {
		if err := a.buildAndTest(ctx, cfg); err != nil {
			return err
		}
	}

	if opts.DryRun {
		a.logger.Info("dry run: not committing or tagging " + version.String())
		return nil
	}

	if err := repo.CommitAll(domain.ReleaseCommitMessage(version.String())); err != nil {
		return err
	}
	tag := domain.ReleaseTag(info.Name, version.String())
	if err := repo.Tag(tag, tag); err != nil {
		return err
	}
	a.logger.Info("tagged release " + tag)
	return nil
}

func (a *App) checkWorktree(repo ports.Repository) error {
	branch, err := repo.ActiveBranch()
	if err != nil {
		return err
	}
	if !strings.EqualFold(branch, domain.BranchDevelop) {
		return zerr.With(domain.ErrWrongBranch, "branch", branch)
	}

	dirty, err := repo.IsDirty()
	if err != nil {
		return err
	}
	if dirty {
		return domain.ErrDirtyWorktree
	}
	return nil
}

// confirmVersion asks until the operator accepts or enters a version valid for the release type.
func (a *App) confirmVersion(t domain.ReleaseType, current semver.Version) (semver.Version, error) {
	presentation := domain.PresentationVersion(t, current).String()
	for {
		answer, err := a.prompter.Ask("Set version", presentation)
		if err != nil {
			return semver.Version{}, err
		}
		if v, ok := domain.ValidateProposedVersion(t, answer); ok {
			return v, nil
		}
		a.logger.Warn(answer + " does not fit the semantic versioning spec or is not valid for a " + string(t) + " release")
	}
}

// bump moves the version manifest past the release that was just made.
func (a *App) bump(cfg *domain.Config, repo ports.Repository, opts ReleaseOptions) error {
	info, err := a.versions.Read(cfg.Package.VersionManifest)
	if err != nil {
		return err
	}
	current, err := domain.ParseVersion(info.Version)
	if err != nil {
		return err
	}
	a.logger.Info("bumping version, starting version = " + current.String())

	var (
		next    semver.Version
		message string
	)
	switch opts.Type {
	case domain.ReleaseSnapshot:
		next = domain.SnapshotVersion(current)
		message = domain.SnapshotCommitMessage
	case domain.ReleaseTestFinal:
		if err := a.mergeInto(repo, domain.BranchTestMaster, domain.BranchTestDevelop, true); err != nil {
			return err
		}
		next = domain.NextPatchSnapshot(current)
		message = domain.BumpCommitMessage(next.String())
	case domain.ReleaseFinal:
		if err := a.mergeInto(repo, domain.BranchMaster, domain.BranchDevelop, false); err != nil {
			return err
		}
		next = domain.NextPatchSnapshot(current)
		message = domain.BumpCommitMessage(next.String())
	default:
		return zerr.With(domain.ErrInvalidReleaseType, "release_type", string(opts.Type))
	}

	if err := a.versions.SetVersion(cfg.Package.VersionManifest, next.String()); err != nil {
		return err
	}
	a.logger.Info("updated version to " + next.String())

	if opts.DryRun {
		return nil
	}
	return repo.CommitAll(message)
}

// mergeInto merges source into target and checks source out again.
// A recreated target starts over at the current HEAD.
func (a *App) mergeInto(repo ports.Repository, target, source string, recreate bool) error {
	var err error
	if recreate {
		err = repo.RecreateBranch(target)
	} else {
		err = repo.Checkout(target)
	}
	if err != nil {
		return err
	}
	if err := repo.Merge(source); err != nil {
		return err
	}
	return repo.Checkout(source)
}
