package ports

import "go.trai.ch/rollout/internal/core/domain"

// VersionManifest reads and rewrites the project version.
//
//go:generate mockgen -source=version.go -destination=mocks/mock_version.go -package=mocks
type VersionManifest interface {
	// Read returns the [package] name and version of the manifest at path.
	Read(path string) (domain.PackageInfo, error)

	// SetVersion rewrites the [package] version, leaving the rest of the file untouched.
	SetVersion(path, version string) error

	// ReadVersionFile returns the trimmed contents of a plain version file.
	ReadVersionFile(path string) (string, error)
}
