package domain

import (
	"strings"
	"time"
)

// Service represents a bookable catalog entry.
// It is immutable from the point of view of the UI components;
// the catalog store owns its lifecycle.
type Service struct {
	// ID is the unique identifier for the service.
	ID string

	// Name is the human-readable service name.
	Name string

	// Description is an optional longer description.
	Description string

	// BasePriceCents is the listed price in cents.
	// Zero means the service has no listed price.
	BasePriceCents int64

	// CreatedAt is when the service was added to the catalog.
	CreatedAt time.Time
}

// HasPrice returns true if the service carries a listed price.
func (s Service) HasPrice() bool {
	return s.BasePriceCents > 0
}

// Matches reports whether the service matches the query as a
// case-insensitive substring of its name or description.
// An absent description simply never matches; it is not an error.
// An empty query matches everything.
func (s Service) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(s.Name), q) {
		return true
	}
	return s.Description != "" && strings.Contains(strings.ToLower(s.Description), q)
}

// Validate checks that the service has the required fields.
func (s Service) Validate() error {
	if s.ID == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(s.Name) == "" {
		return ErrInvalidInput
	}
	if s.BasePriceCents < 0 {
		return ErrInvalidInput
	}
	return nil
}

// FilterServices returns the subset of services matching the query.
// The result preserves catalog order and is a pure function of the
// catalog and the query: repeated identical queries yield identical
// results, and selection state plays no part.
func FilterServices(services []Service, query string) []Service {
	filtered := make([]Service, 0, len(services))
	for _, svc := range services {
		if svc.Matches(query) {
			filtered = append(filtered, svc)
		}
	}
	return filtered
}
