// Package git implements the release flow's git operations with go-git.
package git

import (
	"context"
	"errors"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"go.trai.ch/rollout/internal/core/domain"
	"go.trai.ch/rollout/internal/core/ports"
	"go.trai.ch/zerr"
)

// shortHashLen matches git's default abbreviation.
const shortHashLen = 7

var (
	_ ports.RepositoryOpener = (*Opener)(nil)
	_ ports.Repository       = (*Repository)(nil)
)

// Opener opens repositories from the project directory upwards.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open opens the repository containing path.
func (o *Opener) Open(path string) (ports.Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRepositoryOpen.Error()), "path", path)
	}
	return &Repository{repo: repo}, nil
}

// Repository implements ports.Repository.
type Repository struct {
	repo *gogit.Repository
}

// ActiveBranch returns the short name of the checked out branch.
func (r *Repository) ActiveBranch() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", opErr(err, "head")
	}
	if !head.Name().IsBranch() {
		return "", domain.ErrDetachedHead
	}
	return head.Name().Short(), nil
}

// IsDirty reports staged or unstaged changes to tracked files. Untracked
// files do not count.
func (r *Repository) IsDirty() (bool, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return false, opErr(err, "worktree")
	}
	status, err := wt.Status()
	if err != nil {
		return false, opErr(err, "status")
	}
	for _, s := range status {
		if s.Staging == gogit.Untracked && s.Worktree == gogit.Untracked {
			continue
		}
		if s.Staging != gogit.Unmodified || s.Worktree != gogit.Unmodified {
			return true, nil
		}
	}
	return false, nil
}

// ShortHead returns the abbreviated hash of HEAD.
func (r *Repository) ShortHead() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", opErr(err, "head")
	}
	return head.Hash().String()[:shortHashLen], nil
}

// CommitAll commits every modified or deleted tracked file, like git commit -a.
func (r *Repository) CommitAll(message string) error {
	wt, err := r.repo.Worktree()
	if err != nil {
		return opErr(err, "worktree")
	}
	if _, err := wt.Commit(message, &gogit.CommitOptions{All: true}); err != nil {
		return zerr.With(opErr(err, "commit"), "message", message)
	}
	return nil
}

// Tag creates an annotated tag at HEAD.
func (r *Repository) Tag(name, message string) error {
	head, err := r.repo.Head()
	if err != nil {
		return opErr(err, "head")
	}
	if _, err := r.repo.CreateTag(name, head.Hash(), &gogit.CreateTagOptions{Message: message}); err != nil {
		return zerr.With(opErr(err, "tag"), "tag", name)
	}
	return nil
}

// Checkout switches to an existing local branch.
func (r *Repository) Checkout(branch string) error {
	wt, err := r.repo.Worktree()
	if err != nil {
		return opErr(err, "worktree")
	}
	if err := wt.Checkout(&gogit.CheckoutOptions{Branch: plumbing.NewBranchReferenceName(branch)}); err != nil {
		return zerr.With(opErr(err, "checkout"), "branch", branch)
	}
	return nil
}

// RecreateBranch force-deletes branch, recreates it at HEAD and checks it out.
func (r *Repository) RecreateBranch(branch string) error {
	head, err := r.repo.Head()
	if err != nil {
		return opErr(err, "head")
	}

	ref := plumbing.NewBranchReferenceName(branch)
	if head.Name() == ref {
		return nil
	}
	if err := r.repo.Storer.RemoveReference(ref); err != nil {
		return zerr.With(opErr(err, "delete branch"), "branch", branch)
	}

	wt, err := r.repo.Worktree()
	if err != nil {
		return opErr(err, "worktree")
	}
	if err := wt.Checkout(&gogit.CheckoutOptions{Branch: ref, Hash: head.Hash(), Create: true}); err != nil {
		return zerr.With(opErr(err, "checkout"), "branch", branch)
	}
	return nil
}

// Merge fast-forwards the current branch to branch. Diverged histories are
// rejected.
func (r *Repository) Merge(branch string) error {
	head, err := r.repo.Head()
	if err != nil {
		return opErr(err, "head")
	}
	if !head.Name().IsBranch() {
		return domain.ErrDetachedHead
	}

	target, err := r.repo.Reference(plumbing.NewBranchReferenceName(branch), true)
	if err != nil {
		return zerr.With(opErr(err, "merge"), "branch", branch)
	}
	if target.Hash() == head.Hash() {
		return nil
	}

	current, err := r.repo.CommitObject(head.Hash())
	if err != nil {
		return opErr(err, "merge")
	}
	incoming, err := r.repo.CommitObject(target.Hash())
	if err != nil {
		return opErr(err, "merge")
	}
	ff, err := current.IsAncestor(incoming)
	if err != nil {
		return opErr(err, "merge")
	}
	if !ff {
		return zerr.With(zerr.With(domain.ErrGitOperationFailed, "operation", "merge"), "reason", "not a fast-forward")
	}

	if err := r.repo.Storer.SetReference(plumbing.NewHashReference(head.Name(), target.Hash())); err != nil {
		return opErr(err, "merge")
	}
	wt, err := r.repo.Worktree()
	if err != nil {
		return opErr(err, "worktree")
	}
	if err := wt.Reset(&gogit.ResetOptions{Commit: target.Hash(), Mode: gogit.HardReset}); err != nil {
		return opErr(err, "merge")
	}
	return nil
}

// Push pushes all branches and tags to remote.
func (r *Repository) Push(ctx context.Context, remote string) error {
	err := r.repo.PushContext(ctx, &gogit.PushOptions{
		RemoteName: remote,
		RefSpecs: []config.RefSpec{
			"refs/heads/*:refs/heads/*",
			"refs/tags/*:refs/tags/*",
		},
	})
	if err != nil && !errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		return zerr.With(opErr(err, "push"), "remote", remote)
	}
	return nil
}

func opErr(err error, op string) error {
	return zerr.With(zerr.Wrap(err, domain.ErrGitOperationFailed.Error()), "operation", op)
}
