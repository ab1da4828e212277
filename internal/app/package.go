package app

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/rollout/internal/core/domain"
	"go.trai.ch/rollout/internal/core/ports"
	"go.trai.ch/rollout/internal/engine/manifest"
	"go.trai.ch/zerr"
)

// Manifest returns the %files manifest of the package without staging anything.
func (a *App) Manifest(_ context.Context) (string, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return "", err
	}

	info, err := a.versions.Read(cfg.Package.VersionManifest)
	if err != nil {
		return "", err
	}

	artifacts, err := a.enumerate(cfg, info)
	if err != nil {
		return "", err
	}

	return manifest.NewBuilder(a.manifestConfig(cfg, info)).Build(artifacts), nil
}

// Package builds the RPM and returns its path.
func (a *App) Package(ctx context.Context) (string, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return "", err
	}
	return a.buildPackage(ctx, cfg)
}

//nolint:funlen // one block per packaging step
func (a *App) buildPackage(ctx context.Context, cfg *domain.Config) (string, error) {
	a.tracer.EmitPlan(ctx, []string{"verify", "stage", "spec", "rpmbuild", "record"})

	info, err := a.versions.Read(cfg.Package.VersionManifest)
	if err != nil {
		return "", err
	}
	a.logger.Info("packaging " + info.Name)

	var deployVersion string
	err = a.step(ctx, "verify", func(ctx context.Context, _ ports.Span) error {
		v, verifyErr := a.verifyReleaseBinary(ctx, cfg, info)
		deployVersion = v
		return verifyErr
	})
	if err != nil {
		return "", err
	}

	rel := domain.PackageRelease{
		Name:    info.Name,
		Version: deployVersion,
		Release: cfg.Package.Release,
		Dist:    cfg.Package.Dist,
		Arch:    cfg.Package.Arch,
	}
	rpmbuild := domain.RPMBuildPath(cfg.WorkDir)

	var entries string
	err = a.step(ctx, "stage", func(_ context.Context, span ports.Span) error {
		artifacts, err := a.enumerate(cfg, info)
		if err != nil {
			return err
		}
		if err := a.stager.Verify(artifacts); err != nil {
			return err
		}
		if err := a.stager.Reset(rpmbuild, domain.RPMBuildSubdirs()); err != nil {
			return err
		}
		if err := a.stager.Stage(rel.BuildRoot(rpmbuild), artifacts); err != nil {
			return err
		}
		span.SetAttribute("artifacts", len(artifacts))
		entries = manifest.NewBuilder(a.manifestConfig(cfg, info)).Build(artifacts)
		return nil
	})
	if err != nil {
		return "", err
	}
	a.logger.Info("writing the following manifest to the spec file:\n" + entries)

	specPath := rel.SpecPath(rpmbuild)
	err = a.step(ctx, "spec", func(_ context.Context, _ ports.Span) error {
		return a.writeSpec(cfg, rel, entries, specPath)
	})
	if err != nil {
		return "", err
	}

	err = a.step(ctx, "rpmbuild", func(ctx context.Context, span ports.Span) error {
		line := cfg.Package.RPMBuild + " " + domain.ShellJoin("--define", "_topdir "+rpmbuild, "-bb", specPath)
		if err := a.executor.Execute(ctx, domain.Command{Line: line, Dir: cfg.Root}, span); err != nil {
			return zerr.Wrap(err, domain.ErrRPMBuildFailed.Error())
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	rpmPath := rel.RPMPath(rpmbuild)
	err = a.step(ctx, "record", func(_ context.Context, _ ports.Span) error {
		return a.recordPackage(cfg, info.Name, deployVersion, rpmPath)
	})
	if err != nil {
		return "", err
	}

	a.logger.Info("built " + rpmPath)
	return rpmPath, nil
}

// verifyReleaseBinary checks the release binary reports the version file's
// version and returns the deployment version.
func (a *App) verifyReleaseBinary(ctx context.Context, cfg *domain.Config, info domain.PackageInfo) (string, error) {
	binary := filepath.Join(cfg.Package.ReleaseDir, info.Name)
	if st, err := os.Stat(binary); err != nil || st.IsDir() {
		return "", zerr.With(domain.ErrReleaseBinaryMissing, "path", binary)
	}

	expected, err := a.versions.ReadVersionFile(cfg.Package.VersionFile)
	if err != nil {
		return "", err
	}

	out, err := a.executor.Output(ctx, domain.Command{Line: domain.ShellJoin(binary, "--version"), Dir: cfg.Root})
	if err != nil {
		return "", err
	}

	reported := domain.ReportedVersion(info.Name, out)
	if reported != expected {
		err := zerr.With(domain.ErrVersionMismatch, "reported", reported)
		err = zerr.With(err, "expected", expected)
		return "", zerr.With(err, "version_file", cfg.Package.VersionFile)
	}

	a.logger.Info("validated version " + reported)
	return domain.DeploymentVersion(reported), nil
}

// manifestConfig fills in the service account from the service name.
func (a *App) manifestConfig(cfg *domain.Config, info domain.PackageInfo) domain.ManifestConfig {
	mc := cfg.Manifest
	if mc.ServiceAccount == "" {
		mc.ServiceAccount = serviceName(cfg, info)
	}
	return mc
}

func (a *App) enumerate(cfg *domain.Config, info domain.PackageInfo) ([]domain.BuildArtifact, error) {
	enumerator, err := manifest.NewEnumerator(a.manifestConfig(cfg, info), manifest.Layout{
		ProjectRoot: cfg.Root,
		AssetsRoot:  cfg.Package.AssetsDir,
		InstallDir:  cfg.InstallDir(info.Name),
		BinaryDir:   cfg.Package.BinaryDir,
		Excludes:    cfg.Package.Excludes,
	})
	if err != nil {
		return nil, err
	}

	explicit := enumerator.Explicit(info.Name, filepath.Join(cfg.Package.ReleaseDir, info.Name), cfg.Package.Artifacts)

	levels, err := a.walkAssets(cfg.Package.AssetsDir)
	if err != nil {
		return nil, err
	}

	return manifest.Enumerate(explicit, enumerator.Assets(levels)), nil
}

func (a *App) walkAssets(root string) ([]domain.TreeLevel, error) {
	if root == "" {
		return nil, nil
	}
	if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
		a.logger.Info("no assets directory at " + root)
		return nil, nil
	}

	var levels []domain.TreeLevel
	for level, err := range a.walker.Walk(root) {
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}
	return levels, nil
}

func (a *App) writeSpec(cfg *domain.Config, rel domain.PackageRelease, entries, specPath string) error {
	text, err := a.templates.Render(
		cfg.ResolveTemplate(rel.Name+".spec"),
		domain.DefaultSpecTemplate,
		domain.SpecData{
			Name:     rel.Name,
			Version:  rel.Version,
			Release:  rel.Release,
			Dist:     rel.Dist,
			Arch:     rel.Arch,
			Manifest: entries,
		},
	)
	if err != nil {
		return err
	}

	if err := os.WriteFile(specPath, []byte(text), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStagingFailed.Error()), "path", specPath)
	}
	return nil
}

func (a *App) recordPackage(cfg *domain.Config, name, version, rpmPath string) error {
	digest, err := a.hasher.ComputeFileHash(rpmPath)
	if err != nil {
		return err
	}
	return a.store.Put(cfg.WorkDir, domain.PackageRecord{
		Name:      name,
		Version:   version,
		Path:      rpmPath,
		Digest:    digest,
		CreatedAt: a.now(),
	})
}
