package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rollout/internal/adapters/config"
	"go.trai.ch/rollout/internal/core/domain"
	"go.trai.ch/rollout/internal/core/ports/mocks"
	"go.trai.ch/rollout/internal/engine/manifest"
	"go.uber.org/mock/gomock"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	p := filepath.Join(dir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(p, []byte(content), domain.FilePerm))
	return p
}

func newLoader(t *testing.T) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	return config.NewLoader(log), log
}

func TestLoader_LoadFile_Defaults(t *testing.T) {
	loader, _ := newLoader(t)
	root := t.TempDir()
	p := writeConfig(t, root, "version: \"1\"\n")

	cfg, err := loader.LoadFile(p)
	require.NoError(t, err)

	assert.Equal(t, root, cfg.Root)
	assert.Equal(t, filepath.Join(root, ".rollout"), cfg.WorkDir)
	assert.Equal(t, filepath.Join(root, "templates"), cfg.TemplatesDir)
	assert.Equal(t, filepath.Join(root, "Cargo.toml"), cfg.Package.VersionManifest)
	assert.Equal(t, filepath.Join(root, "src", "version.txt"), cfg.Package.VersionFile)
	assert.Equal(t, filepath.Join(root, "target", "release"), cfg.Package.ReleaseDir)
	assert.Equal(t, "/usr/bin", cfg.Package.BinaryDir)
	assert.Equal(t, filepath.Join(root, "assets"), cfg.Package.AssetsDir)
	assert.Equal(t, "1", cfg.Package.Release)
	assert.Equal(t, "el6", cfg.Package.Dist)
	assert.Equal(t, "x86_64", cfg.Package.Arch)

	assert.Equal(t, "/opt/trafficland", cfg.Manifest.InstallPrefix)
	assert.Equal(t, "root", cfg.Manifest.RootAccount)
	assert.Equal(t, "0755", cfg.Manifest.Mode)
	assert.Equal(t, []string{"/", "/opt", "/etc", "/etc/init.d"}, cfg.Manifest.Blacklist)
	assert.Empty(t, cfg.Manifest.ServiceAccount)

	assert.Equal(t, "/opt/yumrepo", cfg.Repo.Path)
	assert.Equal(t, 8, cfg.Deploy.Concurrency)
	assert.True(t, cfg.Deploy.Consul.Enabled())
	assert.Equal(t, "/etc/consul/", cfg.Deploy.Consul.Destination)
	assert.False(t, cfg.Deploy.Logos.Enabled())

	assert.Equal(t, "origin", cfg.Release.Remote)
	assert.Equal(t, "cargo build --release", cfg.Build.Build)
	assert.Equal(t, map[string]string{"UPDATE_BUILD_INFO": "1"}, cfg.Build.Env)
	assert.Equal(t, 22, cfg.SSH.Port)
	assert.Equal(t, "sudo", cfg.SSH.Sudo)
}

func TestLoader_LoadFile_Overrides(t *testing.T) {
	loader, log := newLoader(t)
	log.EXPECT().Warn(gomock.Any()).Times(1)

	root := t.TempDir()
	p := writeConfig(t, root, `
workDir: build/rollout
package:
  assetsDir: web
  excludes: ["**/*.tmp"]
  artifacts:
    - destination: /etc/counter
      dir: true
    - destination: /etc/counter/counter.conf
      source: conf/counter.conf
      config: true
  dist: el7
manifest:
  installPrefix: /srv/apps
  serviceAccount: counter
  blacklist: ["/", "/srv"]
repo:
  host: repo.example.com
deploy:
  service: counter
  hosts: [web01.sfo.example.com]
  concurrency: 2
  logos:
    root: logos
    remote: /var/www/logos
  consul:
    disabled: true
ssh:
  user: deploy
  port: 2222
  identities: [keys/id_ed25519]
  insecureIgnoreHostKey: true
`)

	cfg, err := loader.LoadFile(p)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "build", "rollout"), cfg.WorkDir)
	assert.Equal(t, filepath.Join(root, "web"), cfg.Package.AssetsDir)
	assert.Equal(t, []string{"**/*.tmp"}, cfg.Package.Excludes)
	require.Len(t, cfg.Package.Artifacts, 2)
	assert.True(t, cfg.Package.Artifacts[0].Dir)
	assert.True(t, cfg.Package.Artifacts[1].Config)
	assert.Equal(t, "conf/counter.conf", cfg.Package.Artifacts[1].Source)
	assert.Equal(t, "el7", cfg.Package.Dist)

	assert.Equal(t, "/srv/apps", cfg.Manifest.InstallPrefix)
	assert.Equal(t, "counter", cfg.Manifest.ServiceAccount)
	assert.Equal(t, []string{"/", "/srv"}, cfg.Manifest.Blacklist)

	assert.Equal(t, "repo.example.com", cfg.Repo.Host)
	assert.Equal(t, 2, cfg.Deploy.Concurrency)
	assert.True(t, cfg.Deploy.Logos.Enabled())
	assert.Equal(t, filepath.Join(root, "logos"), cfg.Deploy.Logos.Root)
	assert.False(t, cfg.Deploy.Consul.Enabled())

	assert.Equal(t, "deploy", cfg.SSH.User)
	assert.Equal(t, 2222, cfg.SSH.Port)
	assert.Equal(t, []string{filepath.Join(root, "keys", "id_ed25519")}, cfg.SSH.Identities)
	assert.True(t, cfg.SSH.InsecureIgnoreHostKey)
}

func TestLoader_LoadFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "malformed yaml",
			content: "package: [",
			wantErr: domain.ErrConfigParseFailed,
		},
		{
			name:    "unknown key",
			content: "packge: {}\n",
			wantErr: domain.ErrConfigParseFailed,
		},
		{
			name: "dir and config",
			content: `
package:
  artifacts:
    - destination: /etc/counter
      dir: true
      config: true
`,
			wantErr: domain.ErrInvalidConfig,
		},
		{
			name: "relative destination",
			content: `
package:
  artifacts:
    - destination: etc/counter
`,
			wantErr: domain.ErrInvalidConfig,
		},
		{
			name:    "relative install prefix",
			content: "manifest:\n  installPrefix: opt\n",
			wantErr: domain.ErrInvalidConfig,
		},
		{
			name:    "relative blacklist entry",
			content: "manifest:\n  blacklist: [\"/\", \"opt\"]\n",
			wantErr: domain.ErrInvalidConfig,
		},
		{
			name:    "negative concurrency",
			content: "deploy:\n  concurrency: -1\n",
			wantErr: domain.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, _ := newLoader(t)
			p := writeConfig(t, t.TempDir(), tt.content)

			_, err := loader.LoadFile(p)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}

func TestLoader_LoadFile_BlacklistIsCleaned(t *testing.T) {
	loader, _ := newLoader(t)
	p := writeConfig(t, t.TempDir(), `
manifest:
  serviceAccount: counter
  blacklist: ["/", "/opt/", "/etc/", "/etc//init.d/"]
`)

	cfg, err := loader.LoadFile(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"/", "/opt", "/etc", "/etc/init.d"}, cfg.Manifest.Blacklist)

	out := manifest.NewBuilder(cfg.Manifest).Build([]domain.BuildArtifact{
		cfg.Manifest.NewArtifact("/opt/trafficland/counter/x", "x", domain.KindFile),
	})
	assert.Equal(t, "%dir %attr(0755,counter,counter) /opt/trafficland\n"+
		"%dir %attr(0755,counter,counter) /opt/trafficland/counter\n"+
		"%attr(0755,counter,counter) /opt/trafficland/counter/x\n", out)
}

func TestLoader_LoadFile_Missing(t *testing.T) {
	loader, _ := newLoader(t)

	_, err := loader.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
}
