package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when no rollout.yaml is found walking up from the working directory.
	ErrConfigNotFound = zerr.New("could not find rollout.yaml")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a config value fails validation.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrInvalidExcludePattern is returned when an assets exclude pattern is malformed.
	ErrInvalidExcludePattern = zerr.New("invalid exclude pattern")

	// ErrVersionManifestRead is returned when the version manifest cannot be read.
	ErrVersionManifestRead = zerr.New("failed to read version manifest")

	// ErrVersionManifestParse is returned when the version manifest is not valid TOML.
	ErrVersionManifestParse = zerr.New("failed to parse version manifest")

	// ErrVersionManifestWrite is returned when the version manifest cannot be rewritten.
	ErrVersionManifestWrite = zerr.New("failed to write version manifest")

	// ErrPackageSectionMissing is returned when the version manifest has no [package] name or version.
	ErrPackageSectionMissing = zerr.New("version manifest has no [package] name and version")

	// ErrVersionFileRead is returned when the version file cannot be read.
	ErrVersionFileRead = zerr.New("failed to read version file")

	// ErrInvalidVersion is returned when a version is not valid semver.
	ErrInvalidVersion = zerr.New("invalid semantic version")

	// ErrReleaseBinaryMissing is returned when the compiled release binary does not exist.
	ErrReleaseBinaryMissing = zerr.New("release binary does not exist")

	// ErrVersionMismatch is returned when the release binary reports a different version than the version file.
	ErrVersionMismatch = zerr.New("release binary version does not match the version file")

	// ErrArtifactSourceMissing is returned when a file artifact's source does not exist.
	ErrArtifactSourceMissing = zerr.New("artifact source file does not exist")

	// ErrStagingFailed is returned when the staging root cannot be prepared or populated.
	ErrStagingFailed = zerr.New("failed to stage artifacts")

	// ErrAssetWalkFailed is returned when the assets tree cannot be walked.
	ErrAssetWalkFailed = zerr.New("failed to walk assets directory")

	// ErrTemplateMissing is returned when neither a template file nor a built-in fallback exists.
	ErrTemplateMissing = zerr.New("template not found")

	// ErrTemplateRenderFailed is returned when a template fails to parse or execute.
	ErrTemplateRenderFailed = zerr.New("failed to render template")

	// ErrRPMBuildFailed is returned when rpmbuild exits with an error.
	ErrRPMBuildFailed = zerr.New("rpmbuild failed")

	// ErrRPMMissing is returned when the package to publish does not exist.
	ErrRPMMissing = zerr.New("rpm does not exist")

	// ErrRPMDigestMismatch is returned when a package changed since it was built.
	ErrRPMDigestMismatch = zerr.New("rpm digest does not match the package record")

	// ErrNoPackageRecord is returned when no package was built yet and no path was given.
	ErrNoPackageRecord = zerr.New("no package record found, run package first or pass an rpm path")

	// ErrStoreCreateFailed is returned when the record store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create package record directory")

	// ErrStoreReadFailed is returned when a package record cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read package record")

	// ErrStoreUnmarshalFailed is returned when a package record cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal package record")

	// ErrStoreMarshalFailed is returned when a package record cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to marshal package record")

	// ErrStoreWriteFailed is returned when a package record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write package record")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrPublishFailed is returned when the package cannot be uploaded to the repository host.
	ErrPublishFailed = zerr.New("failed to publish rpm")

	// ErrInvalidMode is returned for a deploy mode other than dryrun or full.
	ErrInvalidMode = zerr.New("invalid deploy mode, expected 'dryrun' or 'full'")

	// ErrNoHosts is returned when deploy has no target hosts.
	ErrNoHosts = zerr.New("no hosts specified")

	// ErrInvalidHosts is returned when one or more hosts fail the preflight check.
	ErrInvalidHosts = zerr.New("invalid hosts")

	// ErrRemoteConnectFailed is returned when an SSH connection cannot be established.
	ErrRemoteConnectFailed = zerr.New("failed to connect to host")

	// ErrRemoteCommandFailed is returned when a remote command exits non-zero.
	ErrRemoteCommandFailed = zerr.New("remote command failed")

	// ErrRemoteTransferFailed is returned when a file cannot be uploaded.
	ErrRemoteTransferFailed = zerr.New("failed to upload file")

	// ErrKnownHostsMissing is returned when host key verification is enabled without a known_hosts file.
	ErrKnownHostsMissing = zerr.New("known_hosts file not found")

	// ErrNoAuthMethods is returned when neither an ssh agent nor an identity file is available.
	ErrNoAuthMethods = zerr.New("no ssh authentication methods available")

	// ErrInvalidReleaseType is returned for a release type other than snapshot, final or testfinal.
	ErrInvalidReleaseType = zerr.New("invalid release type, expected 'snapshot', 'final' or 'testfinal'")

	// ErrReleaseAborted is returned when the release confirmation is declined.
	ErrReleaseAborted = zerr.New("release aborted")

	// ErrWrongBranch is returned when a release is started from a branch other than develop.
	ErrWrongBranch = zerr.New("releases must be started from the develop branch")

	// ErrDirtyWorktree is returned when the worktree has uncommitted changes.
	ErrDirtyWorktree = zerr.New("there are uncommitted changes in the worktree")

	// ErrNotInteractive is returned when a prompt cannot read an answer.
	ErrNotInteractive = zerr.New("no answer available on standard input")

	// ErrRepositoryOpen is returned when the git repository cannot be opened.
	ErrRepositoryOpen = zerr.New("failed to open git repository")

	// ErrDetachedHead is returned when HEAD does not point at a branch.
	ErrDetachedHead = zerr.New("HEAD is not on a branch")

	// ErrGitOperationFailed is returned when a git operation fails.
	ErrGitOperationFailed = zerr.New("git operation failed")

	// ErrBuildFailed is returned when the build command fails.
	ErrBuildFailed = zerr.New("the build failed, see build output for more information")

	// ErrTestsFailed is returned when the test command fails.
	ErrTestsFailed = zerr.New("tests failed, see test output for more information")

	// ErrCommandFailed is returned when a local command exits non-zero.
	ErrCommandFailed = zerr.New("command failed")

	// ErrEmptyCommand is returned when a command line is empty.
	ErrEmptyCommand = zerr.New("empty command")
)
