// Package cas stores package records keyed by content-addressed file names.
package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/rollout/internal/core/domain"
	"go.trai.ch/rollout/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PackageStore = (*Store)(nil)

// Store implements ports.PackageStore using a file-per-key strategy.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the record stored under key. It returns nil, nil when absent.
func (s *Store) Get(root, key string) (*domain.PackageRecord, error) {
	filename := s.getFilename(root, key)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "key", key)
	}

	var record domain.PackageRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "key", key)
	}

	return &record, nil
}

// Put stores record under the RPM file name and as the latest record.
func (s *Store) Put(root string, record domain.PackageRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	for _, key := range []string{filepath.Base(record.Path), domain.LatestRecordKey} {
		if err := s.write(root, key, data); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) write(root, key string, data []byte) error {
	filename := s.getFilename(root, key)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "key", key)
	}
	return nil
}

func (s *Store) getFilename(root, key string) string {
	hash := sha256.Sum256([]byte(key))
	return filepath.Join(domain.RecordsPath(root), hex.EncodeToString(hash[:])+".json")
}
