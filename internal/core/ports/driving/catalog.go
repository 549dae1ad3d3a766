package driving

import (
	"context"

	"github.com/veldworks/boeka-cli/internal/core/domain"
)

// CatalogService provides catalog management to external actors.
type CatalogService interface {
	// List returns all services in catalog order.
	List(ctx context.Context) ([]domain.Service, error)

	// Search returns the services whose name or description contains
	// the query as a case-insensitive substring, in catalog order.
	Search(ctx context.Context, query string) ([]domain.Service, error)

	// Get retrieves a service by ID.
	Get(ctx context.Context, id string) (*domain.Service, error)

	// Add creates a new service and returns it with its assigned ID.
	Add(ctx context.Context, name, description string, basePriceCents int64) (*domain.Service, error)

	// Remove deletes a service from the catalog.
	Remove(ctx context.Context, id string) error

	// ReplaceAll swaps the entire catalog, e.g. after a file reload.
	ReplaceAll(ctx context.Context, services []domain.Service) error
}
