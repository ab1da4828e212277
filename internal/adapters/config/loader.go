// Package config provides the rollout.yaml loader.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.trai.ch/rollout/internal/core/domain"
	"go.trai.ch/rollout/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Defaults applied to missing rollout.yaml values.
const (
	DefaultVersionManifest = "Cargo.toml"
	DefaultVersionFile     = "src/version.txt"
	DefaultBinaryDir       = "/usr/bin"
	DefaultReleaseDir      = "target/release"
	DefaultAssetsDir       = "assets"
	DefaultRelease         = "1"
	DefaultDist            = "el6"
	DefaultArch            = "x86_64"
	DefaultRPMBuild        = "rpmbuild"
	DefaultRepoPath        = "/opt/yumrepo"
	DefaultConcurrency     = 8
	DefaultConsulTemplate  = "consul_service_definition.json.template"
	DefaultConsulDest      = "/etc/consul/"
	DefaultSSHPort         = 22
	DefaultKnownHosts      = "~/.ssh/known_hosts"
	DefaultSSHConfigFile   = "~/.ssh/config"
	DefaultSudo            = "sudo"
	DefaultCleanCommand    = "cargo clean"
	DefaultBuildCommand    = "cargo build --release"
	DefaultTestCommand     = "cargo test --release"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load discovers rollout.yaml from cwd upwards and loads it.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	root, err := l.DiscoverRoot(cwd)
	if err != nil {
		return nil, err
	}
	return l.LoadFile(filepath.Join(root, domain.ConfigFileName))
}

// DiscoverRoot returns the closest directory at or above cwd holding rollout.yaml.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	current := filepath.Clean(cwd)
	for {
		if info, err := os.Stat(filepath.Join(current, domain.ConfigFileName)); err == nil && !info.IsDir() {
			return current, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
		}
		current = parent
	}
}

// LoadFile loads and validates the configuration at configPath.
func (l *Loader) LoadFile(configPath string) (*domain.Config, error) {
	var file Rolloutfile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	abs, err := filepath.Abs(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	cfg, err := l.toDomain(filepath.Dir(abs), &file)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	return cfg, nil
}

// readAndUnmarshalYAML decodes a YAML file, rejecting unknown keys.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath comes from discovery or the --config flag
	data, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return nil
}

//nolint:funlen // one block per section keeps the mapping readable
func (l *Loader) toDomain(root string, f *Rolloutfile) (*domain.Config, error) {
	cfg := &domain.Config{Root: root}

	cfg.WorkDir = resolve(root, or(f.WorkDir, domain.WorkDirName))
	cfg.TemplatesDir = resolve(root, or(f.TemplatesDir, domain.TemplatesDirName))

	p := f.Package
	cfg.Package = domain.PackageConfig{
		VersionManifest: resolve(root, or(p.VersionManifest, DefaultVersionManifest)),
		VersionFile:     resolve(root, or(p.VersionFile, DefaultVersionFile)),
		BinaryDir:       or(p.BinaryDir, DefaultBinaryDir),
		ReleaseDir:      resolve(root, or(p.ReleaseDir, DefaultReleaseDir)),
		AssetsDir:       resolve(root, or(p.AssetsDir, DefaultAssetsDir)),
		Excludes:        p.Excludes,
		Release:         or(p.Release, DefaultRelease),
		Dist:            or(p.Dist, DefaultDist),
		Arch:            or(p.Arch, DefaultArch),
		RPMBuild:        or(p.RPMBuild, DefaultRPMBuild),
	}
	if !path.IsAbs(cfg.Package.BinaryDir) {
		return nil, zerr.With(domain.ErrInvalidConfig, "package.binaryDir", cfg.Package.BinaryDir)
	}
	for i, a := range p.Artifacts {
		if a.Dir && a.Config {
			return nil, zerr.With(zerr.With(domain.ErrInvalidConfig, "artifact", a.Destination), "reason", "dir and config are exclusive")
		}
		if !path.IsAbs(a.Destination) {
			return nil, zerr.With(zerr.With(domain.ErrInvalidConfig, "artifact", i), "destination", a.Destination)
		}
		cfg.Package.Artifacts = append(cfg.Package.Artifacts, domain.ArtifactSpec(a))
	}

	m := f.Manifest
	cfg.Manifest = domain.DefaultManifestConfig()
	cfg.Manifest.InstallPrefix = or(m.InstallPrefix, cfg.Manifest.InstallPrefix)
	cfg.Manifest.ServiceAccount = m.ServiceAccount
	cfg.Manifest.RootAccount = or(m.RootAccount, cfg.Manifest.RootAccount)
	cfg.Manifest.Mode = or(m.Mode, cfg.Manifest.Mode)
	if m.Blacklist != nil {
		cfg.Manifest.Blacklist = make([]string, 0, len(m.Blacklist))
		for _, entry := range m.Blacklist {
			if !path.IsAbs(entry) {
				return nil, zerr.With(domain.ErrInvalidConfig, "manifest.blacklist", entry)
			}
			cfg.Manifest.Blacklist = append(cfg.Manifest.Blacklist, path.Clean(entry))
		}
	}
	if !path.IsAbs(cfg.Manifest.InstallPrefix) {
		return nil, zerr.With(domain.ErrInvalidConfig, "manifest.installPrefix", cfg.Manifest.InstallPrefix)
	}

	cfg.Repo = domain.RepoConfig{Host: f.Repo.Host, Path: or(f.Repo.Path, DefaultRepoPath)}

	d := f.Deploy
	if d.Concurrency < 0 {
		return nil, zerr.With(domain.ErrInvalidConfig, "deploy.concurrency", d.Concurrency)
	}
	cfg.Deploy = domain.DeployConfig{
		Service:     d.Service,
		Hosts:       d.Hosts,
		Concurrency: d.Concurrency,
		Logos:       domain.LogosConfig{Remote: d.Logos.Remote},
	}
	if cfg.Deploy.Concurrency == 0 {
		cfg.Deploy.Concurrency = DefaultConcurrency
	}
	if d.Logos.Root != "" {
		cfg.Deploy.Logos.Root = resolve(root, d.Logos.Root)
	}
	if !d.Consul.Disabled {
		cfg.Deploy.Consul = domain.ConsulConfig{
			Template:    or(d.Consul.Template, DefaultConsulTemplate),
			Destination: or(d.Consul.Destination, DefaultConsulDest),
			Filename:    d.Consul.Filename,
		}
	}

	cfg.Release = domain.ReleaseConfig{Remote: or(f.Release.Remote, domain.DefaultRemote)}

	cfg.Build = domain.BuildConfig{
		Clean: or(f.Build.Clean, DefaultCleanCommand),
		Build: or(f.Build.Build, DefaultBuildCommand),
		Test:  or(f.Build.Test, DefaultTestCommand),
		Env:   f.Build.Env,
	}
	if cfg.Build.Env == nil {
		cfg.Build.Env = map[string]string{"UPDATE_BUILD_INFO": "1"}
	}

	s := f.SSH
	cfg.SSH = domain.SSHConfig{
		User:                  s.User,
		Port:                  s.Port,
		KnownHosts:            expandHome(or(s.KnownHosts, DefaultKnownHosts)),
		ConfigFile:            expandHome(or(s.ConfigFile, DefaultSSHConfigFile)),
		InsecureIgnoreHostKey: s.InsecureIgnoreHostKey,
		Sudo:                  or(s.Sudo, DefaultSudo),
	}
	if cfg.SSH.Port == 0 {
		cfg.SSH.Port = DefaultSSHPort
	}
	for _, id := range s.Identities {
		cfg.SSH.Identities = append(cfg.SSH.Identities, resolve(root, expandHome(id)))
	}
	if s.InsecureIgnoreHostKey {
		l.Logger.Warn("ssh.insecureIgnoreHostKey is set: host keys will not be verified")
	}

	return cfg, nil
}

func or(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// resolve makes p absolute against root.
func resolve(root, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(root, p))
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
