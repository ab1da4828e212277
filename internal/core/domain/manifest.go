package domain

import (
	"path"
	"slices"
	"strings"
)

const (
	// DefaultInstallPrefix is the directory that holds every project install tree.
	DefaultInstallPrefix = "/opt/trafficland"

	// DefaultRootAccount owns everything outside the install prefix.
	DefaultRootAccount = "root"

	// DefaultFileMode is the permission mode written into every manifest entry.
	DefaultFileMode = "0755"
)

// DefaultBlacklist returns the system directories that never appear in a manifest.
func DefaultBlacklist() []string {
	return []string{"/", "/opt", "/etc", "/etc/init.d"}
}

// ManifestConfig holds the constants the manifest builder works from.
// It is passed by value and never mutated after loading.
type ManifestConfig struct {
	InstallPrefix  string
	ServiceAccount string
	RootAccount    string
	Mode           string
	Blacklist      []string
}

// DefaultManifestConfig returns the configuration used when rollout.yaml leaves
// the manifest section empty.
func DefaultManifestConfig() ManifestConfig {
	return ManifestConfig{
		InstallPrefix: DefaultInstallPrefix,
		RootAccount:   DefaultRootAccount,
		Mode:          DefaultFileMode,
		Blacklist:     DefaultBlacklist(),
	}
}

// OwnerOf returns the account owning dst: the service account for the install
// prefix and everything below it, the root account otherwise.
func (c ManifestConfig) OwnerOf(dst string) string {
	prefix := path.Clean(c.InstallPrefix)
	if dst == prefix || strings.HasPrefix(dst, strings.TrimSuffix(prefix, "/")+"/") {
		return c.ServiceAccount
	}
	return c.RootAccount
}

// IsBlacklisted reports whether dst must be left out of the manifest.
func (c ManifestConfig) IsBlacklisted(dst string) bool {
	return slices.Contains(c.Blacklist, dst)
}

// NewArtifact builds an artifact with a cleaned destination and the owner
// given by the ownership rule.
func (c ManifestConfig) NewArtifact(dst, src string, kind Kind) BuildArtifact {
	dst = path.Clean(dst)
	return BuildArtifact{
		Destination: dst,
		Source:      src,
		Owner:       c.OwnerOf(dst),
		Kind:        kind,
	}
}
