package driven

import (
	"context"

	"github.com/veldworks/boeka-cli/internal/core/domain"
)

// CatalogSource supplies services from an external feed, such as a
// catalog file on disk. The source is read-only; the caller decides
// what to do with the loaded services.
type CatalogSource interface {
	// Load reads the full catalog from the source.
	Load(ctx context.Context) ([]domain.Service, error)
}

// CatalogWatcher notifies about changes to an external catalog source.
type CatalogWatcher interface {
	// Watch invokes onChange whenever the source content changes,
	// until ctx is cancelled. Watch blocks.
	Watch(ctx context.Context, onChange func([]domain.Service)) error
}
