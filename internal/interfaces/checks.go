package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/ebookstore/inventory/internal/database/books"
	"github.com/ebookstore/inventory/internal/services"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ services.BookReader = (*books.Repository)(nil)
var _ services.BookWriter = (*books.Repository)(nil)
var _ services.CatalogStore = (*books.Repository)(nil)
