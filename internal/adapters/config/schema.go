package config

// Rolloutfile is the structure of rollout.yaml.
type Rolloutfile struct {
	Version      string      `yaml:"version"`
	WorkDir      string      `yaml:"workDir"`
	TemplatesDir string      `yaml:"templatesDir"`
	Package      PackageDTO  `yaml:"package"`
	Manifest     ManifestDTO `yaml:"manifest"`
	Repo         RepoDTO     `yaml:"repo"`
	Deploy       DeployDTO   `yaml:"deploy"`
	Release      ReleaseDTO  `yaml:"release"`
	Build        BuildDTO    `yaml:"build"`
	SSH          SSHDTO      `yaml:"ssh"`
}

// PackageDTO describes the RPM contents.
type PackageDTO struct {
	VersionManifest string        `yaml:"versionManifest"`
	VersionFile     string        `yaml:"versionFile"`
	BinaryDir       string        `yaml:"binaryDir"`
	ReleaseDir      string        `yaml:"releaseDir"`
	AssetsDir       string        `yaml:"assetsDir"`
	Excludes        []string      `yaml:"excludes"`
	Artifacts       []ArtifactDTO `yaml:"artifacts"`
	Release         string        `yaml:"release"`
	Dist            string        `yaml:"dist"`
	Arch            string        `yaml:"arch"`
	RPMBuild        string        `yaml:"rpmbuild"`
}

// ArtifactDTO is an explicit artifact entry.
type ArtifactDTO struct {
	Destination string `yaml:"destination"`
	Source      string `yaml:"source"`
	Dir         bool   `yaml:"dir"`
	Config      bool   `yaml:"config"`
}

// ManifestDTO holds the ownership rules.
type ManifestDTO struct {
	InstallPrefix  string   `yaml:"installPrefix"`
	ServiceAccount string   `yaml:"serviceAccount"`
	RootAccount    string   `yaml:"rootAccount"`
	Mode           string   `yaml:"mode"`
	Blacklist      []string `yaml:"blacklist"`
}

// RepoDTO locates the YUM repository.
type RepoDTO struct {
	Host string `yaml:"host"`
	Path string `yaml:"path"`
}

// DeployDTO configures remote installation.
type DeployDTO struct {
	Service     string    `yaml:"service"`
	Hosts       []string  `yaml:"hosts"`
	Concurrency int       `yaml:"concurrency"`
	Logos       LogosDTO  `yaml:"logos"`
	Consul      ConsulDTO `yaml:"consul"`
}

// LogosDTO points at the per-site logo directories.
type LogosDTO struct {
	Root   string `yaml:"root"`
	Remote string `yaml:"remote"`
}

// ConsulDTO configures the consul service definition.
type ConsulDTO struct {
	Disabled    bool   `yaml:"disabled"`
	Template    string `yaml:"template"`
	Destination string `yaml:"destination"`
	Filename    string `yaml:"filename"`
}

// ReleaseDTO holds git settings.
type ReleaseDTO struct {
	Remote string `yaml:"remote"`
}

// BuildDTO holds the local build commands.
type BuildDTO struct {
	Clean string            `yaml:"clean"`
	Build string            `yaml:"build"`
	Test  string            `yaml:"test"`
	Env   map[string]string `yaml:"env"`
}

// SSHDTO configures remote connections.
type SSHDTO struct {
	User                  string   `yaml:"user"`
	Port                  int      `yaml:"port"`
	KnownHosts            string   `yaml:"knownHosts"`
	Identities            []string `yaml:"identities"`
	ConfigFile            string   `yaml:"configFile"`
	InsecureIgnoreHostKey bool     `yaml:"insecureIgnoreHostKey"`
	Sudo                  string   `yaml:"sudo"`
}
