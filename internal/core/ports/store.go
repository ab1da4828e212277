package ports

import "go.trai.ch/rollout/internal/core/domain"

// PackageStore defines the interface for storing and retrieving package records.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type PackageStore interface {
	// Get retrieves the record stored under key.
	// Returns nil, nil if not found.
	Get(root, key string) (*domain.PackageRecord, error)

	// Put stores the record under its file name and as the latest record.
	Put(root string, record domain.PackageRecord) error
}
