// Package memory provides in-memory store implementations.
// They back tests and ephemeral runs where no database is configured.
package memory

import (
	"context"
	"sync"

	"github.com/veldworks/boeka-cli/internal/core/domain"
	"github.com/veldworks/boeka-cli/internal/core/ports/driven"
)

// Ensure CatalogStore implements the interface.
var _ driven.CatalogStore = (*CatalogStore)(nil)

// CatalogStore is an in-memory implementation of driven.CatalogStore.
// It preserves insertion order for List.
type CatalogStore struct {
	mu       sync.RWMutex
	services map[string]domain.Service
	order    []string
}

// NewCatalogStore creates a new in-memory catalog store.
func NewCatalogStore() *CatalogStore {
	return &CatalogStore{
		services: make(map[string]domain.Service),
	}
}

// Save stores or updates a service.
func (s *CatalogStore) Save(_ context.Context, service domain.Service) error {
	if err := service.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.services[service.ID]; !exists {
		s.order = append(s.order, service.ID)
	}
	s.services[service.ID] = service
	return nil
}

// Get retrieves a service by ID.
func (s *CatalogStore) Get(_ context.Context, id string) (*domain.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	service, ok := s.services[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &service, nil
}

// Delete removes a service.
func (s *CatalogStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.services[id]; !ok {
		return nil
	}
	delete(s.services, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns all services in insertion order.
func (s *CatalogStore) List(_ context.Context) ([]domain.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Service, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.services[id])
	}
	return result, nil
}

// Replace swaps the entire catalog for the given services.
func (s *CatalogStore) Replace(_ context.Context, services []domain.Service) error {
	for _, service := range services {
		if err := service.Validate(); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.services = make(map[string]domain.Service, len(services))
	s.order = make([]string, 0, len(services))
	for _, service := range services {
		if _, exists := s.services[service.ID]; !exists {
			s.order = append(s.order, service.ID)
		}
		s.services[service.ID] = service
	}
	return nil
}
