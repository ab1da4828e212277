package ports

import (
	"iter"

	"go.trai.ch/rollout/internal/core/domain"
)

// TreeWalker walks a directory tree level by level.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type TreeWalker interface {
	// Walk yields one level per directory, top-down, starting at root.
	// Names within a level are sorted.
	Walk(root string) iter.Seq2[domain.TreeLevel, error]
}

// Stager materializes artifacts into a staging root.
type Stager interface {
	// Reset wipes root and recreates it with the given subdirectories.
	Reset(root string, subdirs []string) error

	// Verify checks that every file artifact's source exists.
	Verify(artifacts []domain.BuildArtifact) error

	// Stage creates directory artifacts and copies file artifacts under buildRoot.
	Stage(buildRoot string, artifacts []domain.BuildArtifact) error
}

// Hasher computes content digests.
type Hasher interface {
	// ComputeFileHash returns the hex digest of the file's content.
	ComputeFileHash(path string) (string, error)
}
