package domain

import "time"

// PackageRecord remembers a built package so publish can find and verify it.
type PackageRecord struct {
	Name      string    `json:"name"`
	Version   string    `json:"version"`
	Path      string    `json:"path"`
	Digest    string    `json:"digest"`
	CreatedAt time.Time `json:"created_at"`
}
