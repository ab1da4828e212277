package domain

import (
	"path/filepath"
	"strings"
)

// Config is the validated project configuration loaded from rollout.yaml.
// All relative paths are already resolved against Root.
type Config struct {
	// Root is the project root, the directory holding rollout.yaml.
	Root string
	// WorkDir holds the rpmbuild tree, rendered workspace files and package records.
	WorkDir string
	// TemplatesDir holds the spec and consul templates.
	TemplatesDir string

	Package  PackageConfig
	Manifest ManifestConfig
	Repo     RepoConfig
	Deploy   DeployConfig
	Release  ReleaseConfig
	Build    BuildConfig
	SSH      SSHConfig
}

// PackageConfig describes how the RPM is assembled.
type PackageConfig struct {
	// VersionManifest is the TOML file holding [package] name and version.
	VersionManifest string
	// VersionFile holds the version the release binary must report.
	VersionFile string
	// BinaryDir is where the release binary lands on the target system.
	BinaryDir string
	// ReleaseDir is the local directory holding the compiled release binary.
	ReleaseDir string
	// AssetsDir is walked and installed under the project install directory.
	// A missing directory contributes no artifacts.
	AssetsDir string
	// Excludes are doublestar patterns matched against paths relative to AssetsDir.
	Excludes []string
	// Artifacts are extra explicit artifacts.
	Artifacts []ArtifactSpec

	Release string
	Dist    string
	Arch    string

	// RPMBuild is the rpmbuild executable.
	RPMBuild string
}

// ArtifactSpec is an explicit artifact declared in configuration.
type ArtifactSpec struct {
	Destination string
	Source      string
	Dir         bool
	Config      bool
}

// RepoConfig locates the YUM repository.
type RepoConfig struct {
	Host string
	Path string
}

// DeployConfig drives remote installation.
type DeployConfig struct {
	// Service is the yum package and init service name.
	Service     string
	Hosts       []string
	Concurrency int
	Logos       LogosConfig
	Consul      ConsulConfig
}

// LogosConfig points at per-site logo directories.
type LogosConfig struct {
	// Root holds one directory per site. Empty disables logo deployment.
	Root   string
	Remote string
}

// Enabled reports whether logos are deployed.
func (c LogosConfig) Enabled() bool {
	return c.Root != "" && c.Remote != ""
}

// ConsulConfig describes the consul service definition.
type ConsulConfig struct {
	// Template is resolved against the templates directory. Empty disables the step.
	Template    string
	Destination string
	Filename    string
}

// Enabled reports whether a consul service definition is deployed.
func (c ConsulConfig) Enabled() bool {
	return c.Template != ""
}

// ReleaseConfig holds git settings for releases.
type ReleaseConfig struct {
	Remote string
}

// BuildConfig holds the local build and test commands.
type BuildConfig struct {
	Clean string
	Build string
	Test  string
	Env   map[string]string
}

// SSHConfig configures remote connections.
type SSHConfig struct {
	User       string
	Port       int
	KnownHosts string
	Identities []string
	// ConfigFile is an OpenSSH client config consulted for per-host settings.
	ConfigFile string
	// InsecureIgnoreHostKey skips known_hosts verification.
	InsecureIgnoreHostKey bool
	// Sudo is the prefix used for privileged commands.
	Sudo string
}

// ResolveTemplate resolves a template name against the templates directory
// unless it is absolute.
func (c *Config) ResolveTemplate(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.TemplatesDir, name)
}

// PackageInfo is the name and version read from the version manifest.
type PackageInfo struct {
	Name    string
	Version string
}

// InstallDir returns the directory assets are installed under.
func (c *Config) InstallDir(name string) string {
	return strings.TrimSuffix(c.Manifest.InstallPrefix, "/") + "/" + name
}
