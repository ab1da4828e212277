// Package version reads and rewrites the project version manifest.
package version

import (
	"bytes"
	"os"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/rollout/internal/core/domain"
	"go.trai.ch/rollout/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.VersionManifest = (*Manifest)(nil)

// packageFile is the part of a Cargo-style manifest rollout reads.
type packageFile struct {
	Package struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"package"`
}

var (
	tableHeader = regexp.MustCompile(`^\s*\[\s*([^\]]+?)\s*\]`)
	versionKey  = regexp.MustCompile(`^(\s*version\s*=\s*)(["'])[^"']*(["'])(.*)$`)
)

// Manifest implements ports.VersionManifest for TOML manifests.
type Manifest struct{}

// NewManifest creates a new Manifest.
func NewManifest() *Manifest {
	return &Manifest{}
}

// Read returns the [package] name and version.
func (m *Manifest) Read(path string) (domain.PackageInfo, error) {
	data, err := os.ReadFile(path) //nolint:gosec // manifest path comes from the project configuration
	if err != nil {
		return domain.PackageInfo{}, zerr.With(zerr.Wrap(err, domain.ErrVersionManifestRead.Error()), "path", path)
	}
	return parse(path, data)
}

func parse(path string, data []byte) (domain.PackageInfo, error) {
	var f packageFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return domain.PackageInfo{}, zerr.With(zerr.Wrap(err, domain.ErrVersionManifestParse.Error()), "path", path)
	}
	if f.Package.Name == "" || f.Package.Version == "" {
		return domain.PackageInfo{}, zerr.With(domain.ErrPackageSectionMissing, "path", path)
	}
	return domain.PackageInfo{Name: f.Package.Name, Version: f.Package.Version}, nil
}

// SetVersion rewrites the version key of the [package] table in place.
// Comments, ordering and the other tables are preserved.
func (m *Manifest) SetVersion(path, version string) error {
	data, err := os.ReadFile(path) //nolint:gosec // manifest path comes from the project configuration
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrVersionManifestRead.Error()), "path", path)
	}

	lines := strings.SplitAfter(string(data), "\n")
	table := ""
	replaced := false
	for i, line := range lines {
		if h := tableHeader.FindStringSubmatch(line); h != nil {
			table = h[1]
			continue
		}
		if table != "package" || replaced {
			continue
		}
		body, eol := strings.TrimRight(line, "\r\n"), line[len(strings.TrimRight(line, "\r\n")):]
		if sub := versionKey.FindStringSubmatch(body); sub != nil {
			lines[i] = sub[1] + sub[2] + version + sub[3] + sub[4] + eol
			replaced = true
		}
	}
	if !replaced {
		return zerr.With(domain.ErrPackageSectionMissing, "path", path)
	}

	out := []byte(strings.Join(lines, ""))
	info, err := parse(path, out)
	if err != nil {
		return err
	}
	if info.Version != version {
		return zerr.With(zerr.With(domain.ErrVersionManifestWrite, "path", path), "version", version)
	}

	if bytes.Equal(out, data) {
		return nil
	}
	if err := os.WriteFile(path, out, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrVersionManifestWrite.Error()), "path", path)
	}
	return nil
}

// ReadVersionFile returns the trimmed contents of a plain text version file.
func (m *Manifest) ReadVersionFile(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // version file path comes from the project configuration
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrVersionFileRead.Error()), "path", path)
	}
	return strings.TrimSpace(string(data)), nil
}
