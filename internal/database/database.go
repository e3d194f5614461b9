package database

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ebookstore/inventory/internal/entities"
)

const createBooksTable = `CREATE TABLE IF NOT EXISTS books(
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT,
	author TEXT,
	qty INTEGER)`

const insertSeedBook = `INSERT OR IGNORE INTO books(id, title, author, qty) VALUES(?, ?, ?, ?)`

// Connector opens a fresh connection to the catalog. Callers own the
// returned handle and must release it with Close.
type Connector func() (*gorm.DB, error)

// NewConnector returns a Connector for the SQLite file at dbPath. The parent
// directory is created on every call if it is missing.
func NewConnector(dbPath string, gormLogger logger.Interface) Connector {
	if gormLogger == nil {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}
	return func() (*gorm.DB, error) {
		if dir := filepath.Dir(dbPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
			}
		}

		db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
			Logger: gormLogger,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return db, nil
	}
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// WithConnection opens a connection, runs fn and closes the connection on
// every path. A close failure is reported only if fn succeeded.
func WithConnection(connect Connector, fn func(db *gorm.DB) error) (err error) {
	db, err := connect()
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := Close(db); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close database: %w", closeErr)
		}
	}()
	return fn(db)
}

// InitOptions controls how Initialize prepares the catalog.
type InitOptions struct {
	// Reset drops the books table before recreating it, discarding
	// everything from earlier sessions.
	Reset bool
}

// Initialize prepares the books table and inserts the seed catalog,
// ignoring seed rows whose id already exists. It returns the number of seed
// rows actually inserted.
func Initialize(connect Connector, opts InitOptions, log zerolog.Logger) (int, error) {
	var inserted int64
	err := WithConnection(connect, func(db *gorm.DB) error {
		return db.Transaction(func(tx *gorm.DB) error {
			if opts.Reset {
				if err := tx.Exec("DROP TABLE IF EXISTS books").Error; err != nil {
					return fmt.Errorf("failed to drop books table: %w", err)
				}
			} else if tx.Migrator().HasTable(&entities.Book{}) {
				log.Debug().Msg("Keeping existing books table")
			}

			if err := tx.Exec(createBooksTable).Error; err != nil {
				return fmt.Errorf("failed to create books table: %w", err)
			}

			for _, book := range entities.SeedBooks {
				result := tx.Exec(insertSeedBook, book.ID, book.Title, book.Author, book.Qty)
				if result.Error != nil {
					return fmt.Errorf("failed to seed book %d: %w", book.ID, result.Error)
				}
				inserted += result.RowsAffected
			}
			return nil
		})
	})
	if err != nil {
		return 0, err
	}

	log.Info().Int64("inserted", inserted).Bool("reset", opts.Reset).Msg("Catalog initialized")
	return int(inserted), nil
}

// StorageErrorHint describes SQLite failures an operator can act on. It
// returns an empty string for anything else.
func StorageErrorHint(err error) string {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return ""
	}

	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return "the catalog file is locked by another program"
	case sqlite3.ErrReadonly, sqlite3.ErrPerm:
		return "the catalog file is read-only"
	case sqlite3.ErrFull:
		return "the disk is full"
	case sqlite3.ErrCorrupt, sqlite3.ErrNotADB:
		return "the catalog file is damaged"
	case sqlite3.ErrCantOpen:
		return "the catalog file cannot be opened"
	default:
		return ""
	}
}
