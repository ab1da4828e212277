package fs

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/rollout/internal/core/domain"
	"go.trai.ch/rollout/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Stager = (*Stager)(nil)

// Stager materializes artifacts under an RPM build root.
type Stager struct{}

// NewStager creates a new Stager.
func NewStager() *Stager {
	return &Stager{}
}

// Reset removes root and recreates it with subdirs.
func (s *Stager) Reset(root string, subdirs []string) error {
	if err := os.RemoveAll(root); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStagingFailed.Error()), "path", root)
	}
	if err := os.MkdirAll(root, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStagingFailed.Error()), "path", root)
	}
	for _, sub := range subdirs {
		p := filepath.Join(root, sub)
		if err := os.MkdirAll(p, domain.DirPerm); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrStagingFailed.Error()), "path", p)
		}
	}
	return nil
}

// Verify reports every non-directory artifact whose source is not a regular file.
func (s *Stager) Verify(artifacts []domain.BuildArtifact) error {
	var missing []string
	for _, a := range artifacts {
		if a.IsDir() {
			continue
		}
		info, err := os.Stat(a.Source)
		if a.Source == "" || err != nil || info.IsDir() {
			missing = append(missing, a.Destination+" <- "+a.Source)
		}
	}
	if len(missing) > 0 {
		return zerr.With(domain.ErrArtifactSourceMissing, "artifacts", strings.Join(missing, ", "))
	}
	return nil
}

// Stage creates directory artifacts and copies each file artifact exactly once.
func (s *Stager) Stage(buildRoot string, artifacts []domain.BuildArtifact) error {
	for _, a := range artifacts {
		target := filepath.Join(buildRoot, filepath.FromSlash(a.Destination))

		if a.IsDir() {
			if err := os.MkdirAll(target, domain.DirPerm); err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrStagingFailed.Error()), "path", target)
			}
			continue
		}

		if err := copyFile(a.Source, target); err != nil {
			return zerr.With(zerr.With(err, "source", a.Source), "destination", target)
		}
	}
	return nil
}

// copyFile copies src to dst keeping the source permission bits.
func copyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // sources come from the project configuration
	if err != nil {
		return zerr.Wrap(err, domain.ErrStagingFailed.Error())
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return zerr.Wrap(err, domain.ErrStagingFailed.Error())
	}

	if err := os.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStagingFailed.Error())
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm()) //nolint:gosec // dst is under the build root
	if err != nil {
		return zerr.Wrap(err, domain.ErrStagingFailed.Error())
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.Wrap(err, domain.ErrStagingFailed.Error())
	}
	if err := out.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrStagingFailed.Error())
	}
	return nil
}
