// Package interfaces documents the core abstractions used throughout the
// application and holds compile-time checks that the concrete types satisfy
// them.
//
// # Data Access Interfaces
//
//   - BookReader: lookups and listing (internal/services/interfaces.go)
//   - BookWriter: add, update, delete (internal/services/interfaces.go)
//   - CatalogStore: both, consumed by the console (internal/cli)
//
// The only implementation is books.Repository, which opens a connection per
// call through a database.Connector.
package interfaces
