// Package books provides the catalog store: CRUD and search over the books
// table.
//
// Every operation opens its own connection through the injected
// database.Connector, runs a single transaction and closes the connection
// before returning.
//
// # Usage
//
//	repo := books.NewRepository(connect)
//	book, err := repo.Add("Dune", "Frank Herbert", 10)
package books

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/ebookstore/inventory/internal/database"
	"github.com/ebookstore/inventory/internal/entities"
)

var (
	ErrNotFound        = errors.New("book not found")
	ErrInvalidID       = errors.New("invalid book id")
	ErrInvalidQuantity = errors.New("invalid quantity")
)

// Repository handles all book database operations.
type Repository struct {
	connect database.Connector
}

// NewRepository creates a new books repository.
func NewRepository(connect database.Connector) *Repository {
	return &Repository{connect: connect}
}

// UpdateRequest carries raw replacement values. A field that is empty after
// trimming keeps the stored value.
type UpdateRequest struct {
	Title  string
	Author string
	Qty    string
}

// Add inserts a new book with an auto-assigned id.
func (r *Repository) Add(title, author string, qty int) (*entities.Book, error) {
	book := entities.Book{Title: title, Author: author, Qty: qty}
	err := database.WithConnection(r.connect, func(db *gorm.DB) error {
		return db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&book).Error
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add book: %w", err)
	}
	return &book, nil
}

// Update applies req to the book with the given id and returns the stored
// result. The quantity is validated before anything is written.
func (r *Repository) Update(id uint, req UpdateRequest) (*entities.Book, error) {
	var book entities.Book
	err := database.WithConnection(r.connect, func(db *gorm.DB) error {
		return db.Transaction(func(tx *gorm.DB) error {
			if err := findByID(tx, id, &book); err != nil {
				return err
			}

			title := strings.TrimSpace(req.Title)
			author := strings.TrimSpace(req.Author)
			qty := strings.TrimSpace(req.Qty)

			updated := book
			if title != "" {
				updated.Title = title
			}
			if author != "" {
				updated.Author = author
			}
			if qty != "" {
				n, err := ParseQuantity(qty)
				if err != nil {
					return err
				}
				updated.Qty = n
			}

			err := tx.Model(&entities.Book{}).Where("id = ?", id).Updates(map[string]interface{}{
				"title":  updated.Title,
				"author": updated.Author,
				"qty":    updated.Qty,
			}).Error
			if err != nil {
				return err
			}
			book = updated
			return nil
		})
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidQuantity) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update book %d: %w", id, err)
	}
	return &book, nil
}

// Delete removes the book with the given id when confirmed is true. It
// reports whether a row was removed; an unconfirmed delete of an existing
// book returns false and changes nothing.
func (r *Repository) Delete(id uint, confirmed bool) (bool, error) {
	deleted := false
	err := database.WithConnection(r.connect, func(db *gorm.DB) error {
		return db.Transaction(func(tx *gorm.DB) error {
			var book entities.Book
			if err := findByID(tx, id, &book); err != nil {
				return err
			}
			if !confirmed {
				return nil
			}

			result := tx.Delete(&entities.Book{}, id)
			if result.Error != nil {
				return result.Error
			}
			deleted = result.RowsAffected > 0
			return nil
		})
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, err
		}
		return false, fmt.Errorf("failed to delete book %d: %w", id, err)
	}
	return deleted, nil
}

// FindByTitle returns books whose title equals title exactly (case-sensitive).
func (r *Repository) FindByTitle(title string) ([]entities.Book, error) {
	var books []entities.Book
	err := database.WithConnection(r.connect, func(db *gorm.DB) error {
		return db.Where("title = ?", title).Order("id ASC").Find(&books).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search books by title: %w", err)
	}
	return books, nil
}

// FindByID retrieves a single book.
func (r *Repository) FindByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := database.WithConnection(r.connect, func(db *gorm.DB) error {
		return findByID(db, id, &book)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get book %d: %w", id, err)
	}
	return &book, nil
}

// ListAll returns every book ordered by id.
func (r *Repository) ListAll() ([]entities.Book, error) {
	var books []entities.Book
	err := database.WithConnection(r.connect, func(db *gorm.DB) error {
		return db.Order("id ASC").Find(&books).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return books, nil
}

// Count returns the number of books in the catalog.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := database.WithConnection(r.connect, func(db *gorm.DB) error {
		return db.Model(&entities.Book{}).Count(&count).Error
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count books: %w", err)
	}
	return count, nil
}

func findByID(db *gorm.DB, id uint, book *entities.Book) error {
	err := db.First(book, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return err
}
