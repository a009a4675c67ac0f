package ports

import "go.trai.ch/prosa/internal/core/domain"

// GenerationStore defines the interface for remembering what was generated.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type GenerationStore interface {
	// Get retrieves the record for an output path.
	// Returns nil, nil if not found.
	Get(path string) (*domain.GenerationRecord, error)

	// Put stores the record.
	Put(record domain.GenerationRecord) error
}

// StoreOpener opens the generation store kept at a path.
type StoreOpener interface {
	Open(path string) (GenerationStore, error)
}
