package domain

import (
	"strings"

	"github.com/blang/semver/v4"
	"go.trai.ch/zerr"
)

// Snapshot is the prerelease label of development versions.
const Snapshot = "SNAPSHOT"

// TestFinalLabel is the prerelease label of rehearsal final releases.
const TestFinalLabel = "TESTFINALRELEASE"

// ParseVersion parses a semantic version.
func ParseVersion(s string) (semver.Version, error) {
	v, err := semver.Parse(strings.TrimSpace(s))
	if err != nil {
		return semver.Version{}, zerr.With(zerr.Wrap(err, ErrInvalidVersion.Error()), "version", s)
	}
	return v, nil
}

// WithLabel returns X.Y.Z-<label>, or X.Y.Z when label is empty.
func WithLabel(v semver.Version, label string) (semver.Version, error) {
	out := semver.Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch}
	if label == "" {
		return out, nil
	}
	pre, err := semver.NewPRVersion(label)
	if err != nil {
		return semver.Version{}, zerr.With(zerr.Wrap(err, ErrInvalidVersion.Error()), "prerelease", label)
	}
	out.Pre = []semver.PRVersion{pre}
	return out, nil
}

// FinalVersion drops any prerelease and build metadata.
func FinalVersion(v semver.Version) semver.Version {
	return semver.Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch}
}

// SnapshotVersion returns X.Y.Z-SNAPSHOT.
func SnapshotVersion(v semver.Version) semver.Version {
	out := FinalVersion(v)
	out.Pre = []semver.PRVersion{{VersionStr: Snapshot}}
	return out
}

// NextPatchSnapshot returns X.Y.(Z+1)-SNAPSHOT.
func NextPatchSnapshot(v semver.Version) semver.Version {
	out := SnapshotVersion(v)
	out.Patch++
	return out
}

// SnapshotReleaseVersion returns X.Y.Z-<sha>. A short sha made only of digits
// is not a valid prerelease when it starts with zero, so such shas get a "g" prefix.
func SnapshotReleaseVersion(v semver.Version, shortSHA string) (semver.Version, error) {
	label := shortSHA
	if len(label) > 1 && label[0] == '0' && strings.Trim(label, "0123456789") == "" {
		label = "g" + label
	}
	return WithLabel(v, label)
}

// TestFinalReleaseVersion returns X.Y.Z-TESTFINALRELEASE.
func TestFinalReleaseVersion(v semver.Version) semver.Version {
	out := FinalVersion(v)
	out.Pre = []semver.PRVersion{{VersionStr: TestFinalLabel}}
	return out
}

// PresentationVersion is the version offered as the default answer when
// confirming a release.
func PresentationVersion(t ReleaseType, v semver.Version) semver.Version {
	if t == ReleaseSnapshot {
		return SnapshotVersion(v)
	}
	return FinalVersion(v)
}

// ValidateProposedVersion checks a user supplied version against the release
// type: snapshot releases need a SNAPSHOT prerelease, the others none.
func ValidateProposedVersion(t ReleaseType, proposed string) (semver.Version, bool) {
	v, err := semver.Parse(strings.TrimSpace(proposed))
	if err != nil {
		return semver.Version{}, false
	}
	if t == ReleaseSnapshot {
		if len(v.Pre) == 0 || !strings.EqualFold(v.Pre[0].String(), Snapshot) {
			return semver.Version{}, false
		}
		return v, true
	}
	if len(v.Pre) != 0 {
		return semver.Version{}, false
	}
	return v, true
}

// ReleaseVersion maps a confirmed version to the version that gets tagged.
func ReleaseVersion(t ReleaseType, confirmed semver.Version, shortSHA string) (semver.Version, error) {
	switch t {
	case ReleaseSnapshot:
		return SnapshotReleaseVersion(confirmed, shortSHA)
	case ReleaseTestFinal:
		return TestFinalReleaseVersion(confirmed), nil
	default:
		return confirmed, nil
	}
}

// DeploymentVersion turns the version reported by the release binary into an
// RPM version: the first line with dashes replaced by dots.
func DeploymentVersion(reported string) string {
	first, _, _ := strings.Cut(reported, "\n")
	return strings.ReplaceAll(strings.TrimSpace(first), "-", ".")
}

// ReportedVersion strips the "<name> " prefix from the output of <binary> --version.
func ReportedVersion(name, output string) string {
	return strings.TrimSpace(strings.ReplaceAll(output, name+" ", ""))
}
