// Package manifest builds the RPM %files manifest from build artifacts.
package manifest

import (
	"cmp"
	"fmt"
	"path"
	"slices"
	"strings"

	"go.trai.ch/rollout/internal/core/domain"
)

// Builder expands artifacts into manifest entries and renders them.
type Builder struct {
	cfg domain.ManifestConfig
}

// NewBuilder creates a Builder working from cfg.
func NewBuilder(cfg domain.ManifestConfig) *Builder {
	return &Builder{cfg: cfg}
}

// Build expands and renders artifacts in one step.
func (b *Builder) Build(artifacts []domain.BuildArtifact) string {
	return b.Render(b.Entries(artifacts))
}

// Entries expands every artifact and its ancestor directories, drops
// duplicates and blacklisted paths, and orders the result by depth.
//
// The first artifact seen for a destination wins. Entries at the same depth
// keep the order in which they were first reached, so the output only depends
// on the input order.
func (b *Builder) Entries(artifacts []domain.BuildArtifact) []domain.BuildArtifact {
	seen := make(map[string]struct{}, 2*len(artifacts))
	entries := make([]domain.BuildArtifact, 0, 2*len(artifacts))

	for _, a := range artifacts {
		entry := a
		entry.Destination = path.Clean(a.Destination)
		if entry.Owner == "" {
			entry.Owner = b.cfg.OwnerOf(entry.Destination)
		}

		for {
			cur := entry.Destination
			if b.cfg.IsBlacklisted(cur) {
				break
			}
			// Ancestors of a seen path were expanded when it was inserted.
			if _, ok := seen[cur]; ok {
				break
			}
			seen[cur] = struct{}{}
			entries = append(entries, entry)

			parent := path.Dir(cur)
			if parent == cur || parent == "." {
				break
			}
			entry = domain.BuildArtifact{
				Destination: parent,
				Owner:       b.cfg.OwnerOf(parent),
				Kind:        domain.KindDirectory,
			}
		}
	}

	slices.SortStableFunc(entries, func(x, y domain.BuildArtifact) int {
		return cmp.Compare(depth(x.Destination), depth(y.Destination))
	})
	return entries
}

// Render writes one %files line per entry. It panics on an entry whose kind is
// not one of the declared kinds.
func (b *Builder) Render(entries []domain.BuildArtifact) string {
	var sb strings.Builder
	for _, e := range entries {
		switch e.Kind {
		case domain.KindDirectory:
			sb.WriteString("%dir ")
		case domain.KindConfig:
			sb.WriteString("%config ")
		case domain.KindFile:
		default:
			panic(fmt.Sprintf("invalid artifact kind %d for %s", e.Kind, e.Destination))
		}
		fmt.Fprintf(&sb, "%%attr(%s,%s,%s) %s\n", b.cfg.Mode, e.Owner, e.Owner, e.Destination)
	}
	return sb.String()
}

func depth(p string) int {
	return strings.Count(p, "/")
}
