package ports

import "github.com/novelreader/novelpack/internal/core/domain"

// ConfigLoader defines the interface for loading the packaging spec.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load returns the packaging spec, applying overrides from the file at
	// path when it exists. A missing file yields the default spec.
	Load(path string) (*domain.Spec, error)
}
