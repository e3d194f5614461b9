// Package database provides the data access layer for the catalog.
//
// # Architecture
//
//	database/
//	├── database.go      # Connector, schema creation, seeding
//	└── books/           # Book CRUD and search (the catalog store)
//
// # Connections
//
// Nothing in this package holds a process-wide handle. A Connector opens a
// fresh connection per logical operation and WithConnection guarantees it is
// closed again, on error paths too:
//
//	connect := database.NewConnector("data/ebookstore.db", nil)
//
//	// Drop, recreate and seed the books table
//	inserted, err := database.Initialize(connect, database.InitOptions{Reset: true}, log)
//
//	// Domain operations go through the repository
//	repo := books.NewRepository(connect)
//	book, err := repo.FindByID(3001)
//
// # Adding a New Domain
//
//  1. Create a new sub-package: internal/database/<domain>/
//  2. Define a Repository struct holding a database.Connector
//  3. Add NewRepository(connect database.Connector) constructor
//  4. Implement the interface the caller needs (internal/services)
//  5. Add a compile-time check in internal/interfaces/checks.go
package database
