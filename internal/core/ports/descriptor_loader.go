package ports

import "go.trai.ch/prosa/internal/core/domain"

// DescriptorLoader defines the interface for loading project descriptors.
//
//go:generate mockgen -source=descriptor_loader.go -destination=mocks/mock_descriptor_loader.go -package=mocks
type DescriptorLoader interface {
	// Load reads the descriptor in dir and, for aggregates, every descendant module.
	Load(dir string) (*domain.ProjectDescriptor, error)
}
