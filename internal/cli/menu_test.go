package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ebookstore/inventory/internal/database"
	"github.com/ebookstore/inventory/internal/database/books"
	"github.com/ebookstore/inventory/internal/entities"
	"github.com/ebookstore/inventory/internal/services"
)

func setupTestRepo(t *testing.T) *books.Repository {
	t.Helper()
	connect := database.NewConnector(filepath.Join(t.TempDir(), "data", "test_cli.db"), nil)
	_, err := database.Initialize(connect, database.InitOptions{Reset: true}, zerolog.Nop())
	require.NoError(t, err)
	return books.NewRepository(connect)
}

// runScript drives the menu with the given input lines and returns its output.
func runScript(t *testing.T, store services.CatalogStore, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := NewMenuCommand(store, MenuOptions{
		In:  strings.NewReader(strings.Join(lines, "\n") + "\n"),
		Out: &out,
		Log: zerolog.Nop(),
	})
	require.NoError(t, cmd.Run())
	return out.String()
}

type countingScreen struct {
	clears int
}

func (s *countingScreen) Clear() { s.clears++ }

func TestMenuCommand_Exit(t *testing.T) {
	repo := setupTestRepo(t)

	out := runScript(t, repo, "0")

	assert.Contains(t, out, "eBookStore")
	assert.Contains(t, out, "1. Add book")
	assert.Contains(t, out, "5. View all books")
	assert.Contains(t, out, "0. Exit")
	assert.Contains(t, out, "Goodbye")
}

func TestMenuCommand_EndOfInputExits(t *testing.T) {
	repo := setupTestRepo(t)
	var out bytes.Buffer
	cmd := NewMenuCommand(repo, MenuOptions{In: strings.NewReader(""), Out: &out, Log: zerolog.Nop()})

	require.NoError(t, cmd.Run())
	assert.Contains(t, out.String(), "Goodbye")
}

func TestMenuCommand_EndOfInputMidOperation(t *testing.T) {
	repo := setupTestRepo(t)
	var out bytes.Buffer
	cmd := NewMenuCommand(repo, MenuOptions{In: strings.NewReader("1\nDune\n"), Out: &out, Log: zerolog.Nop()})

	require.NoError(t, cmd.Run())
	assert.Contains(t, out.String(), "Goodbye")

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
}

func TestMenuCommand_InvalidSelection(t *testing.T) {
	repo := setupTestRepo(t)

	out := runScript(t, repo, "9", "", "abc", "", "0")

	assert.Contains(t, out, "Invalid selection")
	assert.Contains(t, out, "Please enter a number only")
	assert.Contains(t, out, "Goodbye")
}

func TestMenuCommand_ClearsScreenEachIteration(t *testing.T) {
	repo := setupTestRepo(t)
	screen := &countingScreen{}
	var out bytes.Buffer
	cmd := NewMenuCommand(repo, MenuOptions{
		In:     strings.NewReader("5\n\n5\n\n0\n"),
		Out:    &out,
		Screen: screen,
		Log:    zerolog.Nop(),
	})

	require.NoError(t, cmd.Run())
	assert.Equal(t, 3, screen.clears)
}

func TestMenuCommand_AddBook(t *testing.T) {
	repo := setupTestRepo(t)

	out := runScript(t, repo, "1", "Dune", "Frank Herbert", "10", "", "0")

	assert.Contains(t, out, "10 units of Dune by Frank Herbert added to Books")
	found, err := repo.FindByTitle("Dune")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Frank Herbert", found[0].Author)
	assert.Equal(t, 10, found[0].Qty)
}

func TestMenuCommand_AddBook_LargeQuantityIsGrouped(t *testing.T) {
	repo := setupTestRepo(t)

	out := runScript(t, repo, "1", "Dune", "Frank Herbert", "1500", "", "0")

	assert.Contains(t, out, "1,500 units of Dune")
}

func TestMenuCommand_AddBook_InvalidQuantity(t *testing.T) {
	repo := setupTestRepo(t)

	out := runScript(t, repo, "1", "Dune", "Frank Herbert", "ten", "", "0")

	assert.Contains(t, out, "Invalid book data entered")
	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
}

func TestMenuCommand_UpdateBook(t *testing.T) {
	repo := setupTestRepo(t)

	out := runScript(t, repo, "2", "3002", "", "", "5", "", "0")

	assert.Contains(t, out, "Current details of book ID 3002")
	assert.Contains(t, out, "press Enter to keep 'J.K. Rowling'")
	assert.Contains(t, out, "Book with ID 3002 has been updated.")

	book, err := repo.FindByID(3002)
	require.NoError(t, err)
	assert.Equal(t, entities.Book{ID: 3002, Title: "Harry Potter and the Philosopher's Stone", Author: "J.K. Rowling", Qty: 5}, *book)
}

func TestMenuCommand_UpdateBook_InvalidQuantity(t *testing.T) {
	repo := setupTestRepo(t)

	out := runScript(t, repo, "2", "3002", "New Title", "", "abc", "", "0")

	assert.Contains(t, out, "Quantity must be a valid number.")
	book, err := repo.FindByID(3002)
	require.NoError(t, err)
	assert.Equal(t, "Harry Potter and the Philosopher's Stone", book.Title)
	assert.Equal(t, 40, book.Qty)
}

func TestMenuCommand_UpdateBook_NotFound(t *testing.T) {
	repo := setupTestRepo(t)

	out := runScript(t, repo, "2", "9999", "", "0")

	assert.Contains(t, out, "No book found with ID: 9999")
}

func TestMenuCommand_UpdateBook_InvalidID(t *testing.T) {
	repo := setupTestRepo(t)

	out := runScript(t, repo, "2", "abc", "", "0")

	assert.Contains(t, out, "Invalid ID entered. Please enter a valid number.")
}

func TestMenuCommand_DeleteBook(t *testing.T) {
	repo := setupTestRepo(t)

	t.Run("cancelled", func(t *testing.T) {
		out := runScript(t, repo, "3", "3001", "n", "", "0")

		assert.Contains(t, out, "Book found:")
		assert.Contains(t, out, "Deletion cancelled.")
		_, err := repo.FindByID(3001)
		assert.NoError(t, err)
	})

	t.Run("confirmed", func(t *testing.T) {
		out := runScript(t, repo, "3", "3001", "Y", "", "0")

		assert.Contains(t, out, "Book with ID 3001 has been deleted.")
		all, err := repo.ListAll()
		require.NoError(t, err)
		assert.Len(t, all, 4)
	})

	t.Run("missing", func(t *testing.T) {
		out := runScript(t, repo, "3", "3001", "", "0")

		assert.Contains(t, out, "No book found with ID: 3001")
	})
}

func TestMenuCommand_SearchByName(t *testing.T) {
	repo := setupTestRepo(t)

	out := runScript(t, repo, "4", "1", "Alice in Wonderland", "", "0")

	assert.Contains(t, out, "Books found with title 'Alice in Wonderland':")
	assert.Contains(t, out, "Lewis Carroll")
	assert.Contains(t, out, "3005")
}

func TestMenuCommand_SearchByName_ExactMatchOnly(t *testing.T) {
	repo := setupTestRepo(t)

	out := runScript(t, repo, "4", "1", "Alice", "", "0")

	assert.Contains(t, out, "No books found with title 'Alice'.")
}

func TestMenuCommand_SearchByID_RepromptsOnBadOption(t *testing.T) {
	repo := setupTestRepo(t)

	out := runScript(t, repo, "4", "7", "x", "2", "3004", "", "0")

	assert.Equal(t, 2, strings.Count(out, "Invalid option number entered"))
	assert.Contains(t, out, "Book found with ID '3004':")
	assert.Contains(t, out, "The Lord of the Rings")
}

func TestMenuCommand_SearchByID_NotFound(t *testing.T) {
	repo := setupTestRepo(t)

	out := runScript(t, repo, "4", "2", "1", "", "0")

	assert.Contains(t, out, "No books found with an ID: '1'.")
}

func TestMenuCommand_SearchCancel(t *testing.T) {
	repo := setupTestRepo(t)

	out := runScript(t, repo, "4", "0", "", "0")

	assert.NotContains(t, out, "found")
	assert.Contains(t, out, "Goodbye")
}

func TestMenuCommand_ViewAll(t *testing.T) {
	repo := setupTestRepo(t)

	out := runScript(t, repo, "5", "", "0")

	assert.Contains(t, out, "title")
	assert.Contains(t, out, "author")
	for _, b := range entities.SeedBooks {
		assert.Contains(t, out, b.Title)
		assert.Contains(t, out, b.Author)
	}
}

func TestMenuCommand_Colors(t *testing.T) {
	repo := setupTestRepo(t)

	t.Run("disabled", func(t *testing.T) {
		out := runScript(t, repo, "9", "", "0")
		assert.NotContains(t, out, "\033[")
	})

	t.Run("enabled", func(t *testing.T) {
		var out bytes.Buffer
		cmd := NewMenuCommand(repo, MenuOptions{
			In:    strings.NewReader("2\nabc\n\n0\n"),
			Out:   &out,
			Color: true,
			Log:   zerolog.Nop(),
		})
		require.NoError(t, cmd.Run())
		assert.Contains(t, out.String(), colorGreen+"╔")
		assert.Contains(t, out.String(), colorRed+"✘ Invalid ID entered")
	})
}

// failingStore returns err from every operation.
type failingStore struct {
	err error
}

func (s failingStore) FindByID(id uint) (*entities.Book, error)          { return nil, s.err }
func (s failingStore) FindByTitle(title string) ([]entities.Book, error) { return nil, s.err }
func (s failingStore) ListAll() ([]entities.Book, error)                 { return nil, s.err }
func (s failingStore) Count() (int64, error)                             { return 0, s.err }
func (s failingStore) Add(title, author string, qty int) (*entities.Book, error) {
	return nil, s.err
}
func (s failingStore) Update(id uint, req books.UpdateRequest) (*entities.Book, error) {
	return nil, s.err
}
func (s failingStore) Delete(id uint, confirmed bool) (bool, error) { return false, s.err }

func TestMenuCommand_StorageErrorsDoNotEndSession(t *testing.T) {
	store := failingStore{err: sqlite3.Error{Code: sqlite3.ErrBusy}}

	out := runScript(t, store,
		"5", "",
		"1", "Dune", "Frank Herbert", "10", "",
		"3", "3001", "",
		"0",
	)

	assert.Equal(t, 3, strings.Count(out, "An error occurred"))
	assert.Contains(t, out, "the catalog file is locked by another program")
	assert.Contains(t, out, "Goodbye")
}

func TestRenderBooks(t *testing.T) {
	out := renderBooks([]entities.Book{{ID: 1, Title: "Dune", Author: "Frank Herbert", Qty: 10}})

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.Contains(t, lines[1], "id")
	assert.Contains(t, lines[1], "qty")
	assert.Contains(t, lines[3], "Dune")
	assert.Contains(t, lines[3], "Frank Herbert")
}

func TestMenuChoice_String(t *testing.T) {
	assert.Equal(t, "Exit", ChoiceExit.String())
	assert.Equal(t, "Search books", ChoiceSearch.String())
	assert.Equal(t, "MenuChoice(9)", MenuChoice(9).String())
}
