package manifest_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rollout/internal/core/domain"
	"go.trai.ch/rollout/internal/engine/manifest"
)

func testConfig() domain.ManifestConfig {
	cfg := domain.DefaultManifestConfig()
	cfg.ServiceAccount = "widget"
	return cfg
}

func TestBuilder_SingleBinary(t *testing.T) {
	cfg := testConfig()
	b := manifest.NewBuilder(cfg)

	out := b.Build([]domain.BuildArtifact{
		cfg.NewArtifact("/usr/bin/widget", "target/release/widget", domain.KindFile),
	})

	assert.Equal(t, "%dir %attr(0755,root,root) /usr\n"+
		"%dir %attr(0755,root,root) /usr/bin\n"+
		"%attr(0755,root,root) /usr/bin/widget\n", out)
}

func TestBuilder_DeduplicatesByDestination(t *testing.T) {
	cfg := testConfig()
	b := manifest.NewBuilder(cfg)

	entries := b.Entries([]domain.BuildArtifact{
		cfg.NewArtifact("/opt/widget/assets/logo.png", "assets/logo.png", domain.KindFile),
		cfg.NewArtifact("/opt/widget/assets", "", domain.KindDirectory),
		{Destination: "/opt/widget/assets/logo.png", Owner: "someone", Kind: domain.KindConfig},
	})

	dsts := make([]string, 0, len(entries))
	for _, e := range entries {
		dsts = append(dsts, e.Destination)
	}
	assert.Equal(t, []string{"/opt/widget", "/opt/widget/assets", "/opt/widget/assets/logo.png"}, dsts)

	// First insert wins.
	assert.Equal(t, domain.KindFile, entries[2].Kind)
	assert.Equal(t, "root", entries[2].Owner)
}

func TestBuilder_ProjectOwnership(t *testing.T) {
	cfg := domain.DefaultManifestConfig()
	cfg.InstallPrefix = "/opt/widget"
	cfg.ServiceAccount = "widget"
	b := manifest.NewBuilder(cfg)

	out := b.Build([]domain.BuildArtifact{
		cfg.NewArtifact("/opt/widget/assets/logo.png", "assets/logo.png", domain.KindFile),
		cfg.NewArtifact("/opt/widget/assets", "", domain.KindDirectory),
	})

	assert.Equal(t, "%dir %attr(0755,widget,widget) /opt/widget\n"+
		"%dir %attr(0755,widget,widget) /opt/widget/assets\n"+
		"%attr(0755,widget,widget) /opt/widget/assets/logo.png\n", out)
}

func TestBuilder_Blacklist(t *testing.T) {
	cfg := testConfig()
	b := manifest.NewBuilder(cfg)

	entries := b.Entries([]domain.BuildArtifact{
		cfg.NewArtifact("/etc/init.d/widget", "deploy/widget.init", domain.KindFile),
		cfg.NewArtifact("/opt", "", domain.KindDirectory),
		cfg.NewArtifact("/", "", domain.KindDirectory),
		cfg.NewArtifact("/etc", "", domain.KindDirectory),
	})

	require.Len(t, entries, 1)
	assert.Equal(t, "/etc/init.d/widget", entries[0].Destination)
}

func TestBuilder_EmptyInput(t *testing.T) {
	b := manifest.NewBuilder(testConfig())
	assert.Empty(t, b.Build(nil))
}

func TestBuilder_KeepsInputOwner(t *testing.T) {
	cfg := testConfig()
	b := manifest.NewBuilder(cfg)

	entries := b.Entries([]domain.BuildArtifact{
		{Destination: "/var/lib/widget/state", Owner: "widget", Kind: domain.KindDirectory},
	})

	require.Len(t, entries, 4)
	assert.Equal(t, "/var", entries[0].Destination)
	assert.Equal(t, "root", entries[0].Owner)
	assert.Equal(t, "root", entries[2].Owner)
	assert.Equal(t, "/var/lib/widget/state", entries[3].Destination)
	assert.Equal(t, "widget", entries[3].Owner)
}

func TestBuilder_CleansDestinations(t *testing.T) {
	b := manifest.NewBuilder(testConfig())

	entries := b.Entries([]domain.BuildArtifact{
		{Destination: "/usr//bin/./widget/", Kind: domain.KindFile},
	})

	require.Len(t, entries, 3)
	assert.Equal(t, "/usr/bin/widget", entries[2].Destination)
}

func TestBuilder_InvalidKindPanics(t *testing.T) {
	b := manifest.NewBuilder(testConfig())

	assert.Panics(t, func() {
		b.Render([]domain.BuildArtifact{{Destination: "/usr/bin/widget", Owner: "root", Kind: domain.Kind(7)}})
	})
}

func TestBuilder_Properties(t *testing.T) {
	cfg := testConfig()
	cfg.InstallPrefix = "/opt/widget"
	b := manifest.NewBuilder(cfg)

	input := []domain.BuildArtifact{
		cfg.NewArtifact("/opt/widget/assets/img/a.png", "a.png", domain.KindFile),
		cfg.NewArtifact("/usr/share/widget/doc/README", "README", domain.KindFile),
		cfg.NewArtifact("/etc/widget/widget.conf", "widget.conf", domain.KindConfig),
		cfg.NewArtifact("/opt/widget/assets/img", "", domain.KindDirectory),
		cfg.NewArtifact("/opt/widget/bin/widget", "widget", domain.KindFile),
		cfg.NewArtifact("/etc/init.d/widget", "widget.init", domain.KindFile),
	}

	entries := b.Entries(input)

	t.Run("idempotent", func(t *testing.T) {
		assert.Equal(t, b.Build(input), b.Build(input))
	})

	t.Run("ordered by depth", func(t *testing.T) {
		for i := 1; i < len(entries); i++ {
			prev := strings.Count(entries[i-1].Destination, "/")
			cur := strings.Count(entries[i].Destination, "/")
			assert.LessOrEqual(t, prev, cur, "%s before %s", entries[i-1].Destination, entries[i].Destination)
		}
	})

	byDst := make(map[string]domain.BuildArtifact, len(entries))
	for _, e := range entries {
		_, dup := byDst[e.Destination]
		assert.False(t, dup, "duplicate entry %s", e.Destination)
		byDst[e.Destination] = e
	}

	t.Run("ancestor closure", func(t *testing.T) {
		for _, a := range input {
			for p := a.Destination; p != "/"; p = parentOf(p) {
				if cfg.IsBlacklisted(p) {
					break
				}
				_, ok := byDst[p]
				assert.True(t, ok, "missing ancestor %s of %s", p, a.Destination)
			}
		}
	})

	t.Run("blacklist excluded", func(t *testing.T) {
		for _, bl := range cfg.Blacklist {
			_, ok := byDst[bl]
			assert.False(t, ok, bl)
		}
	})

	t.Run("ownership", func(t *testing.T) {
		for _, e := range entries {
			if strings.HasPrefix(e.Destination, "/opt/widget/") || e.Destination == "/opt/widget" {
				assert.Equal(t, "widget", e.Owner, e.Destination)
			} else {
				assert.Equal(t, "root", e.Owner, e.Destination)
			}
		}
	})

	t.Run("inferred ancestors are directories", func(t *testing.T) {
		assert.Equal(t, domain.KindDirectory, byDst["/etc/widget"].Kind)
		assert.Equal(t, domain.KindConfig, byDst["/etc/widget/widget.conf"].Kind)
		assert.Equal(t, domain.KindDirectory, byDst["/usr/share/widget/doc"].Kind)
	})
}

func parentOf(p string) string {
	i := strings.LastIndex(p, "/")
	if i <= 0 {
		return "/"
	}
	return p[:i]
}
