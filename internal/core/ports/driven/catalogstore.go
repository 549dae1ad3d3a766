package driven

import (
	"context"

	"github.com/veldworks/boeka-cli/internal/core/domain"
)

// CatalogStore persists the service catalog.
// Implementations must preserve insertion order in List.
type CatalogStore interface {
	// Save stores or updates a service.
	Save(ctx context.Context, service domain.Service) error

	// Get retrieves a service by ID.
	Get(ctx context.Context, id string) (*domain.Service, error)

	// Delete removes a service.
	Delete(ctx context.Context, id string) error

	// List returns all services in catalog order.
	List(ctx context.Context) ([]domain.Service, error)

	// Replace swaps the entire catalog for the given services.
	// Used by catalog file reloads.
	Replace(ctx context.Context, services []domain.Service) error
}
