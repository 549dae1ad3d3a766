package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/veldworks/boeka-cli/internal/core/domain"
	"github.com/veldworks/boeka-cli/internal/core/ports/driven"
	"github.com/veldworks/boeka-cli/internal/core/ports/driving"
	"github.com/veldworks/boeka-cli/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService manages the service catalog.
type CatalogService struct {
	catalogStore driven.CatalogStore
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(catalogStore driven.CatalogStore) *CatalogService {
	return &CatalogService{
		catalogStore: catalogStore,
	}
}

// List returns all services in catalog order.
func (s *CatalogService) List(ctx context.Context) ([]domain.Service, error) {
	if s.catalogStore == nil {
		return nil, domain.ErrCatalogUnavailable
	}
	return s.catalogStore.List(ctx)
}

// Search returns the services matching the query as a case-insensitive
// substring of name or description, in catalog order. An empty query
// returns the full catalog.
func (s *CatalogService) Search(ctx context.Context, query string) ([]domain.Service, error) {
	if s.catalogStore == nil {
		return nil, domain.ErrCatalogUnavailable
	}

	services, err := s.catalogStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}

	filtered := domain.FilterServices(services, query)
	logger.Debug("Catalog search: query=%q, %d of %d services matched", query, len(filtered), len(services))
	return filtered, nil
}

// Get retrieves a service by ID.
func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Service, error) {
	if s.catalogStore == nil {
		return nil, domain.ErrCatalogUnavailable
	}
	return s.catalogStore.Get(ctx, id)
}

// Add creates a new service and returns it with its assigned ID.
func (s *CatalogService) Add(
	ctx context.Context, name, description string, basePriceCents int64,
) (*domain.Service, error) {
	if s.catalogStore == nil {
		return nil, domain.ErrCatalogUnavailable
	}
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if basePriceCents < 0 {
		return nil, domain.ErrInvalidInput
	}

	service := domain.Service{
		ID:             uuid.New().String(),
		Name:           strings.TrimSpace(name),
		Description:    strings.TrimSpace(description),
		BasePriceCents: basePriceCents,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.catalogStore.Save(ctx, service); err != nil {
		return nil, fmt.Errorf("save service: %w", err)
	}

	logger.Info("Catalog: added service %q (%s)", service.Name, service.ID)
	return &service, nil
}

// Remove deletes a service from the catalog.
func (s *CatalogService) Remove(ctx context.Context, id string) error {
	if s.catalogStore == nil {
		return domain.ErrCatalogUnavailable
	}

	// Verify the service exists so removal of unknown IDs is reported.
	if _, err := s.catalogStore.Get(ctx, id); err != nil {
		return err
	}

	if err := s.catalogStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete service: %w", err)
	}

	logger.Info("Catalog: removed service %s", id)
	return nil
}

// ReplaceAll swaps the entire catalog, e.g. after a catalog file reload.
// Services without an ID are assigned one; invalid entries are rejected.
func (s *CatalogService) ReplaceAll(ctx context.Context, services []domain.Service) error {
	if s.catalogStore == nil {
		return domain.ErrCatalogUnavailable
	}

	seen := make(map[string]struct{}, len(services))
	for i := range services {
		if services[i].ID == "" {
			services[i].ID = uuid.New().String()
		}
		if err := services[i].Validate(); err != nil {
			return fmt.Errorf("service %d (%q): %w", i, services[i].Name, err)
		}
		// Catalog files can slug two same-named entries to one ID.
		if _, dup := seen[services[i].ID]; dup {
			return fmt.Errorf("service %d (%q): %w", i, services[i].Name, domain.ErrAlreadyExists)
		}
		seen[services[i].ID] = struct{}{}
	}

	if err := s.catalogStore.Replace(ctx, services); err != nil {
		return fmt.Errorf("replace catalog: %w", err)
	}

	logger.Info("Catalog: replaced with %d services", len(services))
	return nil
}
