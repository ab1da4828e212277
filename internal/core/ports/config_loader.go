package ports

import "go.trai.ch/rollout/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers rollout.yaml walking up from cwd and loads it.
	Load(cwd string) (*domain.Config, error)

	// LoadFile loads the configuration from an explicit path.
	LoadFile(path string) (*domain.Config, error)

	// DiscoverRoot walks up from cwd to find the directory containing rollout.yaml.
	DiscoverRoot(cwd string) (string, error)
}
