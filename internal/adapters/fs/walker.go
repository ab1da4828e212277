// Package fs provides file system adapters for walking, staging and hashing files.
package fs

import (
	"iter"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/rollout/internal/core/domain"
	"go.trai.ch/rollout/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TreeWalker = (*Walker)(nil)

// Walker walks directory trees top-down, one level per directory.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Walk yields root and then each subdirectory depth-first, names sorted.
// Version control directories are skipped. Symlinks to directories are
// listed as directories but not descended into.
func (w *Walker) Walk(root string) iter.Seq2[domain.TreeLevel, error] {
	return func(yield func(domain.TreeLevel, error) bool) {
		w.walk(filepath.Clean(root), yield)
	}
}

func (w *Walker) walk(dir string, yield func(domain.TreeLevel, error) bool) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return yield(domain.TreeLevel{Dir: dir}, zerr.With(zerr.Wrap(err, domain.ErrAssetWalkFailed.Error()), "dir", dir))
	}

	level := domain.TreeLevel{Dir: dir}
	var descend []string

	for _, e := range entries {
		name := e.Name()
		switch {
		case e.IsDir():
			if skipDir(name) {
				continue
			}
			level.Dirs = append(level.Dirs, name)
			descend = append(descend, name)
		case e.Type()&os.ModeSymlink != 0 && isDirLink(filepath.Join(dir, name)):
			level.Dirs = append(level.Dirs, name)
		default:
			level.Files = append(level.Files, name)
		}
	}

	slices.Sort(level.Dirs)
	slices.Sort(level.Files)
	slices.Sort(descend)

	if !yield(level, nil) {
		return false
	}
	for _, name := range descend {
		if !w.walk(filepath.Join(dir, name), yield) {
			return false
		}
	}
	return true
}

func skipDir(name string) bool {
	return name == ".git" || name == ".jj"
}

func isDirLink(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}
