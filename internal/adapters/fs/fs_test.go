package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rollout/internal/adapters/fs"
	"go.trai.ch/rollout/internal/core/domain"
)

func mkfile(t *testing.T, p, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(p), domain.DirPerm))
	require.NoError(t, os.WriteFile(p, []byte(content), domain.FilePerm))
}

func TestWalker_Walk(t *testing.T) {
	root := t.TempDir()
	mkfile(t, filepath.Join(root, "index.html"), "<html>")
	mkfile(t, filepath.Join(root, "css", "site.css"), "body{}")
	mkfile(t, filepath.Join(root, "img", "logo.png"), "png")
	mkfile(t, filepath.Join(root, "img", "a.png"), "png")
	mkfile(t, filepath.Join(root, ".git", "HEAD"), "ref")

	var levels []domain.TreeLevel
	for level, err := range fs.NewWalker().Walk(root) {
		require.NoError(t, err)
		levels = append(levels, level)
	}

	require.Len(t, levels, 3)
	assert.Equal(t, domain.TreeLevel{Dir: root, Dirs: []string{"css", "img"}, Files: []string{"index.html"}}, levels[0])
	assert.Equal(t, domain.TreeLevel{Dir: filepath.Join(root, "css"), Files: []string{"site.css"}}, levels[1])
	assert.Equal(t, domain.TreeLevel{Dir: filepath.Join(root, "img"), Files: []string{"a.png", "logo.png"}}, levels[2])
}

func TestWalker_Walk_StopsEarly(t *testing.T) {
	root := t.TempDir()
	mkfile(t, filepath.Join(root, "a", "x"), "")
	mkfile(t, filepath.Join(root, "b", "y"), "")

	count := 0
	for range fs.NewWalker().Walk(root) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestWalker_Walk_MissingRoot(t *testing.T) {
	var gotErr error
	for _, err := range fs.NewWalker().Walk(filepath.Join(t.TempDir(), "missing")) {
		gotErr = err
	}
	assert.ErrorContains(t, gotErr, domain.ErrAssetWalkFailed.Error())
}

func TestStager_Reset(t *testing.T) {
	root := filepath.Join(t.TempDir(), "rpmbuild")
	mkfile(t, filepath.Join(root, "BUILDROOT", "stale"), "old")

	require.NoError(t, fs.NewStager().Reset(root, domain.RPMBuildSubdirs()))

	for _, sub := range domain.RPMBuildSubdirs() {
		assert.DirExists(t, filepath.Join(root, sub))
	}
	assert.NoFileExists(t, filepath.Join(root, "BUILDROOT", "stale"))
}

func TestStager_Verify(t *testing.T) {
	src := t.TempDir()
	bin := filepath.Join(src, "counter")
	mkfile(t, bin, "ELF")

	stager := fs.NewStager()

	ok := []domain.BuildArtifact{
		{Destination: "/usr/bin", Kind: domain.KindDirectory},
		{Destination: "/usr/bin/counter", Source: bin, Kind: domain.KindFile},
	}
	require.NoError(t, stager.Verify(ok))

	bad := append(ok, domain.BuildArtifact{
		Destination: "/etc/counter/counter.conf",
		Source:      filepath.Join(src, "missing.conf"),
		Kind:        domain.KindConfig,
	})
	err := stager.Verify(bad)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrArtifactSourceMissing.Error())

	dirAsFile := []domain.BuildArtifact{{Destination: "/x", Source: src, Kind: domain.KindFile}}
	assert.Error(t, stager.Verify(dirAsFile))
}

func TestStager_Stage(t *testing.T) {
	src := t.TempDir()
	bin := filepath.Join(src, "counter")
	mkfile(t, bin, "ELF")
	require.NoError(t, os.Chmod(bin, 0o755))

	buildRoot := t.TempDir()
	artifacts := []domain.BuildArtifact{
		{Destination: "/opt/trafficland/counter/cache", Kind: domain.KindDirectory},
		{Destination: "/usr/bin/counter", Source: bin, Kind: domain.KindFile},
	}

	require.NoError(t, fs.NewStager().Stage(buildRoot, artifacts))

	assert.DirExists(t, filepath.Join(buildRoot, "opt", "trafficland", "counter", "cache"))
	staged := filepath.Join(buildRoot, "usr", "bin", "counter")
	data, err := os.ReadFile(staged)
	require.NoError(t, err)
	assert.Equal(t, "ELF", string(data))

	info, err := os.Stat(staged)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestStager_Stage_MissingSource(t *testing.T) {
	artifacts := []domain.BuildArtifact{
		{Destination: "/usr/bin/counter", Source: filepath.Join(t.TempDir(), "gone"), Kind: domain.KindFile},
	}

	err := fs.NewStager().Stage(t.TempDir(), artifacts)
	assert.ErrorContains(t, err, domain.ErrStagingFailed.Error())
}

func TestHasher_ComputeFileHash(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.rpm")
	b := filepath.Join(dir, "b.rpm")
	mkfile(t, a, "same content")
	mkfile(t, b, "same content")

	h := fs.NewHasher()
	ha, err := h.ComputeFileHash(a)
	require.NoError(t, err)
	hb, err := h.ComputeFileHash(b)
	require.NoError(t, err)

	assert.Len(t, ha, 16)
	assert.Equal(t, ha, hb)

	mkfile(t, b, "different")
	hb, err = h.ComputeFileHash(b)
	require.NoError(t, err)
	assert.NotEqual(t, ha, hb)

	_, err = h.ComputeFileHash(filepath.Join(dir, "none"))
	assert.ErrorContains(t, err, domain.ErrFileHashFailed.Error())
}
