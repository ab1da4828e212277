package ports

import "context"

// RepositoryOpener opens git repositories.
//
//go:generate mockgen -source=git.go -destination=mocks/mock_git.go -package=mocks
type RepositoryOpener interface {
	Open(path string) (Repository, error)
}

// Repository is the subset of git the release flow needs.
type Repository interface {
	// ActiveBranch returns the short name of the checked out branch.
	ActiveBranch() (string, error)

	// IsDirty reports whether the worktree has uncommitted changes.
	IsDirty() (bool, error)

	// ShortHead returns the abbreviated hash of HEAD.
	ShortHead() (string, error)

	// CommitAll stages modified and deleted tracked files and commits them.
	CommitAll(message string) error

	// Tag creates an annotated tag at HEAD.
	Tag(name, message string) error

	// Checkout switches to an existing branch.
	Checkout(branch string) error

	// RecreateBranch deletes branch if it exists, recreates it at HEAD and checks it out.
	RecreateBranch(branch string) error

	// Merge fast-forwards the current branch to branch.
	Merge(branch string) error

	// Push pushes every branch and tag to remote.
	Push(ctx context.Context, remote string) error
}
