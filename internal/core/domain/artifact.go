package domain

// Kind classifies how a manifest entry is declared to the package format.
type Kind uint8

const (
	// KindFile is a plain file copied into the package.
	KindFile Kind = iota
	// KindDirectory is a directory owned by the package.
	KindDirectory
	// KindConfig is a file the package manager treats as configuration.
	KindConfig
)

// NewKind maps the directory and config flags onto a Kind.
// An artifact cannot be both a directory and a config file; asking for one panics.
func NewKind(isDir, isConfig bool) Kind {
	switch {
	case isDir && isConfig:
		panic("a build artifact cannot be both a directory and a config file")
	case isDir:
		return KindDirectory
	case isConfig:
		return KindConfig
	default:
		return KindFile
	}
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k <= KindConfig
}

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	case KindConfig:
		return "config"
	default:
		return "invalid"
	}
}

// BuildArtifact is one filesystem path materialized by the package.
// Destination is the natural key: two artifacts with the same destination
// describe the same manifest entry.
type BuildArtifact struct {
	// Destination is the absolute, cleaned path on the target system.
	Destination string
	// Source is the local file copied into the staging root. Empty for directories.
	Source string
	// Owner is used as both user and group in the manifest.
	Owner string
	Kind  Kind
}

// IsDir reports whether the artifact is a directory entry.
func (a BuildArtifact) IsDir() bool {
	return a.Kind == KindDirectory
}

// TreeLevel is one level of a directory walk: a directory and its
// immediate subdirectory and file names.
type TreeLevel struct {
	Dir   string
	Dirs  []string
	Files []string
}
