package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// ReleaseType selects the release flow.
type ReleaseType string

const (
	// ReleaseSnapshot tags a snapshot build of develop.
	ReleaseSnapshot ReleaseType = "snapshot"
	// ReleaseFinal tags a final build and merges develop into master.
	ReleaseFinal ReleaseType = "final"
	// ReleaseTestFinal rehearses a final release on throwaway branches.
	ReleaseTestFinal ReleaseType = "testfinal"
)

// ParseReleaseType parses a release type case-insensitively.
func ParseReleaseType(s string) (ReleaseType, error) {
	switch t := ReleaseType(strings.ToLower(strings.TrimSpace(s))); t {
	case ReleaseSnapshot, ReleaseFinal, ReleaseTestFinal:
		return t, nil
	default:
		return "", zerr.With(ErrInvalidReleaseType, "release_type", s)
	}
}

// DeployMode selects whether deploy changes hosts.
type DeployMode string

const (
	// ModeDryRun checks hosts and reports what would run.
	ModeDryRun DeployMode = "dryrun"
	// ModeFull installs and restarts the service.
	ModeFull DeployMode = "full"
)

// ParseDeployMode parses a deploy mode.
func ParseDeployMode(s string) (DeployMode, error) {
	switch m := DeployMode(s); m {
	case ModeDryRun, ModeFull:
		return m, nil
	default:
		return "", zerr.With(ErrInvalidMode, "mode", s)
	}
}

// Branch names used by the release flow.
const (
	BranchDevelop     = "develop"
	BranchMaster      = "master"
	BranchTestMaster  = "testmaster"
	BranchTestDevelop = "testdevelop"
)

// DefaultRemote is the git remote releases are pushed to.
const DefaultRemote = "origin"

// ReleaseCommitMessage is the message of the commit carrying a release version.
func ReleaseCommitMessage(version string) string {
	return "Release commit for " + version + "."
}

// SnapshotCommitMessage is the message of the commit restoring the SNAPSHOT suffix.
const SnapshotCommitMessage = "Rewrite version to SNAPSHOT."

// BumpCommitMessage is the message of the commit moving to the next snapshot.
func BumpCommitMessage(version string) string {
	return "Bumped version to " + version + "."
}

// ReleaseTag is the tag name of a release.
func ReleaseTag(name, version string) string {
	return name + "-" + version
}

// RemoteResult is the outcome of a remote command.
type RemoteResult struct {
	Host     string
	Command  string
	ExitCode int
	Output   string
}

// Failed reports whether the command exited non-zero.
func (r RemoteResult) Failed() bool {
	return r.ExitCode != 0
}

// SiteOf returns the site label of a host: the second dot-separated label.
// Hosts with fewer than two labels have no site.
func SiteOf(host string) string {
	labels := strings.Split(host, ".")
	if len(labels) < 2 {
		return ""
	}
	return labels[1]
}
