package ports

import "github.com/voltlab/strata/internal/core/domain"

//go:generate go run go.uber.org/mock/mockgen -source=config.go -destination=mocks/mock_config.go -package=mocks

// ConfigLoader reads and validates a simulation configuration.
type ConfigLoader interface {
	// Load parses the configuration at path, applies defaults and validates
	// it. The returned config is complete and internally consistent.
	Load(path string) (*domain.Config, error)
}
