package manifest

import (
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/rollout/internal/core/domain"
	"go.trai.ch/zerr"
)

// Layout locates the inputs of an enumeration on the local machine and on the
// target system.
type Layout struct {
	// ProjectRoot is the local project directory.
	ProjectRoot string
	// AssetsRoot is the local assets directory, inside ProjectRoot.
	AssetsRoot string
	// InstallDir is where the project installs on the target, e.g. /opt/trafficland/counter.
	InstallDir string
	// BinaryDir is where the release binary installs on the target.
	BinaryDir string
	// Excludes are doublestar patterns relative to AssetsRoot.
	Excludes []string
}

// Enumerator maps release outputs and the assets tree onto artifacts.
type Enumerator struct {
	cfg    domain.ManifestConfig
	layout Layout
}

// NewEnumerator validates the exclude patterns and returns an Enumerator.
func NewEnumerator(cfg domain.ManifestConfig, layout Layout) (*Enumerator, error) {
	for _, p := range layout.Excludes {
		if !doublestar.ValidatePattern(p) {
			return nil, zerr.With(domain.ErrInvalidExcludePattern, "pattern", p)
		}
	}
	return &Enumerator{cfg: cfg, layout: layout}, nil
}

// Explicit returns the release binary artifact followed by the configured extras.
// Extra sources are resolved against the project root.
func (e *Enumerator) Explicit(name, binarySrc string, extras []domain.ArtifactSpec) []domain.BuildArtifact {
	arts := make([]domain.BuildArtifact, 0, 1+len(extras))
	arts = append(arts, e.cfg.NewArtifact(path.Join(e.layout.BinaryDir, name), binarySrc, domain.KindFile))

	for _, spec := range extras {
		src := spec.Source
		if src != "" && !filepath.IsAbs(src) {
			src = filepath.Join(e.layout.ProjectRoot, src)
		}
		arts = append(arts, e.cfg.NewArtifact(spec.Destination, src, domain.NewKind(spec.Dir, spec.Config)))
	}
	return arts
}

// Assets maps a walk of the assets tree onto artifacts. Every subdirectory
// becomes a directory artifact and every file a plain file artifact, installed
// at InstallDir/<path relative to the project root>.
func (e *Enumerator) Assets(levels []domain.TreeLevel) []domain.BuildArtifact {
	var arts []domain.BuildArtifact
	for _, level := range levels {
		base, err := filepath.Rel(e.layout.ProjectRoot, level.Dir)
		if err != nil {
			base = level.Dir
		}
		base = filepath.ToSlash(base)

		for _, name := range level.Dirs {
			if e.excluded(filepath.Join(level.Dir, name)) {
				continue
			}
			arts = append(arts, e.cfg.NewArtifact(path.Join(e.layout.InstallDir, base, name), "", domain.KindDirectory))
		}
		for _, name := range level.Files {
			src := filepath.Join(level.Dir, name)
			if e.excluded(src) {
				continue
			}
			arts = append(arts, e.cfg.NewArtifact(path.Join(e.layout.InstallDir, base, name), src, domain.KindFile))
		}
	}
	return arts
}

// excluded reports whether p or any of its parents below AssetsRoot matches an
// exclude pattern.
func (e *Enumerator) excluded(p string) bool {
	if len(e.layout.Excludes) == 0 {
		return false
	}
	rel, err := filepath.Rel(e.layout.AssetsRoot, p)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)

	parts := strings.Split(rel, "/")
	for i := range parts {
		prefix := strings.Join(parts[:i+1], "/")
		for _, pattern := range e.layout.Excludes {
			if ok, _ := doublestar.Match(pattern, prefix); ok {
				return true
			}
		}
	}
	return false
}

// Enumerate combines explicit and asset artifacts. Duplicates are kept; the
// builder removes them.
func Enumerate(explicit, assets []domain.BuildArtifact) []domain.BuildArtifact {
	return slices.Concat(explicit, assets)
}
