// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - CatalogStore: Service catalog persistence
//   - BookingStore: Booking persistence
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - CatalogSource: External catalog feed (e.g. a TOML file). Without it,
//     the catalog is managed entirely through the store.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
