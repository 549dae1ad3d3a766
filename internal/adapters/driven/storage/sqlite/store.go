// Package sqlite provides persistent catalog and booking storage
// backed by a single SQLite database with embedded migrations.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/veldworks/boeka-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/veldworks/boeka-cli/internal/core/domain"
	"github.com/veldworks/boeka-cli/internal/core/ports/driven"
)

// Store is a unified SQLite-based storage that provides access to
// the catalog and booking store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.boeka/data/boeka.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".boeka", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "boeka.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// CatalogStore returns a CatalogStore interface backed by this store.
func (s *Store) CatalogStore() driven.CatalogStore {
	return &catalogStore{store: s}
}

// BookingStore returns a BookingStore interface backed by this store.
func (s *Store) BookingStore() driven.BookingStore {
	return &bookingStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Catalog Store ====================

// catalogStore implements driven.CatalogStore.
type catalogStore struct {
	store *Store
}

var _ driven.CatalogStore = (*catalogStore)(nil)

// Save stores or updates a service. New services are appended to the
// end of the catalog order; updates keep their position.
func (c *catalogStore) Save(ctx context.Context, service domain.Service) error {
	if err := service.Validate(); err != nil {
		return err
	}

	_, err := c.store.db.ExecContext(ctx, `
		INSERT INTO services (id, name, description, base_price_cents, position, created_at)
		VALUES (?, ?, ?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM services), ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			base_price_cents = excluded.base_price_cents
	`, service.ID, service.Name, service.Description, service.BasePriceCents, service.CreatedAt)

	if err != nil {
		return fmt.Errorf("saving service: %w", err)
	}
	return nil
}

// Get retrieves a service by ID.
func (c *catalogStore) Get(ctx context.Context, id string) (*domain.Service, error) {
	row := c.store.db.QueryRowContext(ctx, `
		SELECT id, name, description, base_price_cents, created_at
		FROM services WHERE id = ?
	`, id)

	var service domain.Service
	var createdAt sql.NullTime
	if err := row.Scan(&service.ID, &service.Name, &service.Description,
		&service.BasePriceCents, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning service: %w", err)
	}
	if createdAt.Valid {
		service.CreatedAt = createdAt.Time
	}

	return &service, nil
}

// Delete removes a service.
func (c *catalogStore) Delete(ctx context.Context, id string) error {
	_, err := c.store.db.ExecContext(ctx, "DELETE FROM services WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting service: %w", err)
	}
	return nil
}

// List returns all services in catalog order.
func (c *catalogStore) List(ctx context.Context) ([]domain.Service, error) {
	rows, err := c.store.db.QueryContext(ctx, `
		SELECT id, name, description, base_price_cents, created_at
		FROM services ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("querying services: %w", err)
	}
	defer rows.Close()

	var services []domain.Service
	for rows.Next() {
		var service domain.Service
		var createdAt sql.NullTime
		if err := rows.Scan(&service.ID, &service.Name, &service.Description,
			&service.BasePriceCents, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning service: %w", err)
		}
		if createdAt.Valid {
			service.CreatedAt = createdAt.Time
		}
		services = append(services, service)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating services: %w", err)
	}

	return services, nil
}

// Replace swaps the entire catalog for the given services.
func (c *catalogStore) Replace(ctx context.Context, services []domain.Service) error {
	for _, service := range services {
		if err := service.Validate(); err != nil {
			return err
		}
	}

	tx, err := c.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.ExecContext(ctx, "DELETE FROM services"); err != nil {
		return fmt.Errorf("clearing services: %w", err)
	}

	for i, service := range services {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO services (id, name, description, base_price_cents, position, created_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, service.ID, service.Name, service.Description, service.BasePriceCents, i+1, service.CreatedAt)
		if err != nil {
			return fmt.Errorf("inserting service %s: %w", service.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing catalog replace: %w", err)
	}
	return nil
}

// ==================== Booking Store ====================

// bookingStore implements driven.BookingStore.
type bookingStore struct {
	store *Store
}

var _ driven.BookingStore = (*bookingStore)(nil)

// Save stores or updates a booking and its service selection.
func (b *bookingStore) Save(ctx context.Context, booking domain.Booking) error {
	if err := booking.Validate(); err != nil {
		return err
	}

	tx, err := b.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	_, err = tx.ExecContext(ctx, `
		INSERT INTO bookings (id, client_name, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			client_name = excluded.client_name
	`, booking.ID, booking.ClientName, booking.CreatedAt)
	if err != nil {
		return fmt.Errorf("saving booking: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM booking_services WHERE booking_id = ?", booking.ID); err != nil {
		return fmt.Errorf("clearing booking services: %w", err)
	}

	for i, serviceID := range booking.ServiceIDs {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO booking_services (booking_id, service_id, position)
			VALUES (?, ?, ?)
		`, booking.ID, serviceID, i+1)
		if err != nil {
			return fmt.Errorf("inserting booking service %s: %w", serviceID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing booking: %w", err)
	}
	return nil
}

// Get retrieves a booking by ID.
func (b *bookingStore) Get(ctx context.Context, id string) (*domain.Booking, error) {
	row := b.store.db.QueryRowContext(ctx, `
		SELECT id, client_name, created_at FROM bookings WHERE id = ?
	`, id)

	var booking domain.Booking
	var createdAt sql.NullTime
	if err := row.Scan(&booking.ID, &booking.ClientName, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning booking: %w", err)
	}
	if createdAt.Valid {
		booking.CreatedAt = createdAt.Time
	}

	serviceIDs, err := b.serviceIDs(ctx, booking.ID)
	if err != nil {
		return nil, err
	}
	booking.ServiceIDs = serviceIDs

	return &booking, nil
}

// Delete removes a booking. Its service rows cascade.
func (b *bookingStore) Delete(ctx context.Context, id string) error {
	_, err := b.store.db.ExecContext(ctx, "DELETE FROM bookings WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting booking: %w", err)
	}
	return nil
}

// List returns all bookings, most recent first.
func (b *bookingStore) List(ctx context.Context) ([]domain.Booking, error) {
	rows, err := b.store.db.QueryContext(ctx, `
		SELECT id, client_name, created_at FROM bookings ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying bookings: %w", err)
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var booking domain.Booking
		var createdAt sql.NullTime
		if err := rows.Scan(&booking.ID, &booking.ClientName, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning booking: %w", err)
		}
		if createdAt.Valid {
			booking.CreatedAt = createdAt.Time
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bookings: %w", err)
	}

	for i := range bookings {
		serviceIDs, err := b.serviceIDs(ctx, bookings[i].ID)
		if err != nil {
			return nil, err
		}
		bookings[i].ServiceIDs = serviceIDs
	}

	return bookings, nil
}

// serviceIDs loads the ordered service selection for a booking.
func (b *bookingStore) serviceIDs(ctx context.Context, bookingID string) ([]string, error) {
	rows, err := b.store.db.QueryContext(ctx, `
		SELECT service_id FROM booking_services WHERE booking_id = ? ORDER BY position
	`, bookingID)
	if err != nil {
		return nil, fmt.Errorf("querying booking services: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning booking service: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating booking services: %w", err)
	}

	return ids, nil
}
