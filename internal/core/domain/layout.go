package domain

import (
	"fmt"
	"path/filepath"
)

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "rollout.yaml"

	// WorkDirName is the default working directory under the project root.
	WorkDirName = ".rollout"

	// RPMBuildDirName is the rpmbuild top directory inside the working directory.
	RPMBuildDirName = "rpmbuild"

	// WorkspaceDirName holds rendered files before they are uploaded.
	WorkspaceDirName = "workspace"

	// RecordsDirName holds package records.
	RecordsDirName = "records"

	// TemplatesDirName is the default templates directory under the project root.
	TemplatesDirName = "templates"

	// LatestRecordKey is the record key pointing at the most recent package.
	LatestRecordKey = "latest"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// ExecPerm is the permission for staged executables.
	ExecPerm = 0o755
)

// RPMBuildSubdirs returns the directories rpmbuild expects under its top directory.
func RPMBuildSubdirs() []string {
	return []string{"BUILD", "BUILDROOT", "RPMS", "SOURCES", "SPECS", "SRPMS", "TMP"}
}

// RPMBuildPath returns the rpmbuild top directory for a working directory.
func RPMBuildPath(workDir string) string {
	return filepath.Join(workDir, RPMBuildDirName)
}

// WorkspacePath returns the directory rendered deploy files are written to.
func WorkspacePath(workDir string) string {
	return filepath.Join(workDir, WorkspaceDirName)
}

// RecordsPath returns the package record directory.
func RecordsPath(workDir string) string {
	return filepath.Join(workDir, RecordsDirName)
}

// PackageRelease identifies one RPM build.
type PackageRelease struct {
	Name    string
	Version string
	Release string
	Dist    string
	Arch    string
}

// NVRA returns name-version-release.dist.arch, the rpm build root and file stem.
func (p PackageRelease) NVRA() string {
	return fmt.Sprintf("%s-%s-%s.%s.%s", p.Name, p.Version, p.Release, p.Dist, p.Arch)
}

// BuildRoot returns the staging root under the rpmbuild top directory.
func (p PackageRelease) BuildRoot(rpmbuild string) string {
	return filepath.Join(rpmbuild, "BUILDROOT", p.NVRA())
}

// SpecPath returns where the rendered spec file is written.
func (p PackageRelease) SpecPath(rpmbuild string) string {
	return filepath.Join(rpmbuild, "SPECS", p.Name+".spec")
}

// RPMPath returns where rpmbuild leaves the binary package.
func (p PackageRelease) RPMPath(rpmbuild string) string {
	return filepath.Join(rpmbuild, "RPMS", p.Arch, p.NVRA()+".rpm")
}
