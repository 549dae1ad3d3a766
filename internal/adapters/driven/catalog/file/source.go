// Package file provides a TOML catalog source.
//
// A catalog file holds the full service list as [[services]] tables.
// Entries without an explicit id get a deterministic slug derived from
// the name, so reloads keep IDs stable:
//
//	[[services]]
//	id = "haircut"
//	name = "Haircut"
//	description = "Wash, cut and style"
//	base_price_cents = 25000
package file

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/veldworks/boeka-cli/internal/core/domain"
	"github.com/veldworks/boeka-cli/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.CatalogSource = (*Source)(nil)

// serviceEntry is the TOML representation of one catalog service.
type serviceEntry struct {
	ID             string `toml:"id,omitempty"`
	Name           string `toml:"name"`
	Description    string `toml:"description,omitempty"`
	BasePriceCents int64  `toml:"base_price_cents,omitempty"`
}

// catalogFile is the TOML representation of the whole catalog.
type catalogFile struct {
	Services []serviceEntry `toml:"services"`
}

// Source loads the service catalog from a TOML file.
type Source struct {
	path string
}

// NewSource creates a catalog source for the given file path.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Path returns the catalog file path.
func (s *Source) Path() string {
	return s.path
}

// Load reads the full catalog from the file.
func (s *Source) Load(_ context.Context) ([]domain.Service, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var parsed catalogFile
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}

	now := time.Now().UTC()
	services := make([]domain.Service, 0, len(parsed.Services))
	for i, entry := range parsed.Services {
		id := entry.ID
		if id == "" {
			id = slugify(entry.Name)
		}

		service := domain.Service{
			ID:             id,
			Name:           strings.TrimSpace(entry.Name),
			Description:    strings.TrimSpace(entry.Description),
			BasePriceCents: entry.BasePriceCents,
			CreatedAt:      now,
		}
		if err := service.Validate(); err != nil {
			return nil, fmt.Errorf("catalog entry %d (%q): %w", i, entry.Name, err)
		}
		services = append(services, service)
	}

	return services, nil
}

// slugify derives a stable lowercase ID from a service name.
func slugify(name string) string {
	var b strings.Builder
	lastDash := true // Trim leading dashes
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
