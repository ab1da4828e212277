package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rollout/internal/core/domain"
)

func TestVersionTransforms(t *testing.T) {
	v, err := domain.ParseVersion("1.4.2-SNAPSHOT")
	require.NoError(t, err)

	assert.Equal(t, "1.4.2", domain.FinalVersion(v).String())
	assert.Equal(t, "1.4.2-SNAPSHOT", domain.SnapshotVersion(v).String())
	assert.Equal(t, "1.4.3-SNAPSHOT", domain.NextPatchSnapshot(v).String())
	assert.Equal(t, "1.4.2-TESTFINALRELEASE", domain.TestFinalReleaseVersion(v).String())

	snap, err := domain.SnapshotReleaseVersion(v, "a1b2c3d")
	require.NoError(t, err)
	assert.Equal(t, "1.4.2-a1b2c3d", snap.String())

	numeric, err := domain.SnapshotReleaseVersion(v, "0123456")
	require.NoError(t, err)
	assert.Equal(t, "1.4.2-g0123456", numeric.String())

	digits, err := domain.SnapshotReleaseVersion(v, "1234567")
	require.NoError(t, err)
	assert.Equal(t, "1.4.2-1234567", digits.String())
}

func TestParseVersion_Invalid(t *testing.T) {
	_, err := domain.ParseVersion("one.two")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidVersion.Error())
}

func TestPresentationVersion(t *testing.T) {
	v, err := domain.ParseVersion("2.0.1-SNAPSHOT")
	require.NoError(t, err)

	assert.Equal(t, "2.0.1-SNAPSHOT", domain.PresentationVersion(domain.ReleaseSnapshot, v).String())
	assert.Equal(t, "2.0.1", domain.PresentationVersion(domain.ReleaseFinal, v).String())
	assert.Equal(t, "2.0.1", domain.PresentationVersion(domain.ReleaseTestFinal, v).String())
}

func TestValidateProposedVersion(t *testing.T) {
	tests := []struct {
		name     string
		typ      domain.ReleaseType
		proposed string
		valid    bool
	}{
		{name: "snapshot accepts SNAPSHOT", typ: domain.ReleaseSnapshot, proposed: "1.0.0-SNAPSHOT", valid: true},
		{name: "snapshot accepts lowercase", typ: domain.ReleaseSnapshot, proposed: "1.0.0-snapshot", valid: true},
		{name: "snapshot rejects final", typ: domain.ReleaseSnapshot, proposed: "1.0.0", valid: false},
		{name: "snapshot rejects other prerelease", typ: domain.ReleaseSnapshot, proposed: "1.0.0-rc1", valid: false},
		{name: "final accepts plain", typ: domain.ReleaseFinal, proposed: "1.0.0", valid: true},
		{name: "final rejects prerelease", typ: domain.ReleaseFinal, proposed: "1.0.0-SNAPSHOT", valid: false},
		{name: "testfinal accepts plain", typ: domain.ReleaseTestFinal, proposed: "3.1.4", valid: true},
		{name: "garbage", typ: domain.ReleaseFinal, proposed: "v1", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := domain.ValidateProposedVersion(tt.typ, tt.proposed)
			assert.Equal(t, tt.valid, ok)
		})
	}
}

func TestReleaseVersion(t *testing.T) {
	v, err := domain.ParseVersion("1.2.3")
	require.NoError(t, err)

	final, err := domain.ReleaseVersion(domain.ReleaseFinal, v, "abc1234")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", final.String())

	test, err := domain.ReleaseVersion(domain.ReleaseTestFinal, v, "abc1234")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3-TESTFINALRELEASE", test.String())

	snap, err := domain.ReleaseVersion(domain.ReleaseSnapshot, v, "abc1234")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3-abc1234", snap.String())
}

func TestDeploymentVersion(t *testing.T) {
	assert.Equal(t, "1.2.3.abc1234", domain.DeploymentVersion("1.2.3-abc1234\nbuilt 2017-01-01"))
	assert.Equal(t, "1.2.3", domain.DeploymentVersion("1.2.3"))
}

func TestReportedVersion(t *testing.T) {
	assert.Equal(t, "1.2.3", domain.ReportedVersion("counter", "counter 1.2.3\n"))
	assert.Equal(t, "1.2.3", domain.ReportedVersion("counter", "1.2.3"))
}
