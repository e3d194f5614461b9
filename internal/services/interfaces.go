package services

import (
	"github.com/ebookstore/inventory/internal/database/books"
	"github.com/ebookstore/inventory/internal/entities"
)

// BookReader provides read-only access to the catalog.
// Use this interface when you only need to query books.
type BookReader interface {
	FindByID(id uint) (*entities.Book, error)
	FindByTitle(title string) ([]entities.Book, error)
	ListAll() ([]entities.Book, error)
	Count() (int64, error)
}

// BookWriter mutates the catalog.
type BookWriter interface {
	Add(title, author string, qty int) (*entities.Book, error)
	Update(id uint, req books.UpdateRequest) (*entities.Book, error)
	Delete(id uint, confirmed bool) (bool, error)
}

// CatalogStore is everything the console needs from storage.
type CatalogStore interface {
	BookReader
	BookWriter
}
