package cli

import (
	"errors"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/ebookstore/inventory/internal/database"
	"github.com/ebookstore/inventory/internal/database/books"
)

// Search sub-menu options
const (
	searchCancel = 0
	searchByName = 1
	searchByID   = 2
)

func (cmd *MenuCommand) addBook() error {
	cmd.println("\nAdd Book")
	cmd.println("---------")

	title, err := cmd.prompt("Enter book title: ")
	if err != nil {
		return err
	}
	author, err := cmd.prompt("Enter book author: ")
	if err != nil {
		return err
	}
	rawQty, err := cmd.prompt("Enter book qty: ")
	if err != nil {
		return err
	}

	qty, err := books.ParseQuantity(rawQty)
	if err != nil {
		cmd.fail("Invalid book data entered")
		return nil
	}

	book, err := cmd.store.Add(strings.TrimSpace(title), strings.TrimSpace(author), qty)
	if err != nil {
		cmd.storageFailure("add", err)
		return nil
	}

	cmd.log.Info().Uint("id", book.ID).Str("title", book.Title).Int("qty", book.Qty).Msg("Book added")
	cmd.printf("\n%s units of %s by %s added to Books\n", humanize.Comma(int64(book.Qty)), book.Title, book.Author)
	return nil
}

func (cmd *MenuCommand) updateBook() error {
	cmd.println("\nUpdate Book")

	id, ok, err := cmd.promptID("Enter Book ID to update: ", "Invalid ID entered. Please enter a valid number.")
	if err != nil || !ok {
		return err
	}

	book, err := cmd.store.FindByID(id)
	if err != nil {
		cmd.lookupFailure(id, err)
		return nil
	}

	cmd.printf("\nCurrent details of book ID %d:\n", id)
	cmd.println(book.String())

	title, err := cmd.prompt("\nEnter new title (or press Enter to keep '" + book.Title + "'): ")
	if err != nil {
		return err
	}
	author, err := cmd.prompt("Enter new author (or press Enter to keep '" + book.Author + "'): ")
	if err != nil {
		return err
	}
	qty, err := cmd.prompt("Enter new quantity (or press Enter to keep '" + strconv.Itoa(book.Qty) + "'): ")
	if err != nil {
		return err
	}

	_, err = cmd.store.Update(id, books.UpdateRequest{Title: title, Author: author, Qty: qty})
	switch {
	case errors.Is(err, books.ErrInvalidQuantity):
		cmd.fail("Quantity must be a valid number.")
	case errors.Is(err, books.ErrNotFound):
		cmd.fail("No book found with ID: %d", id)
	case err != nil:
		cmd.storageFailure("update", err)
	default:
		cmd.log.Info().Uint("id", id).Msg("Book updated")
		cmd.succeed("Book with ID %d has been updated.", id)
	}
	return nil
}

func (cmd *MenuCommand) deleteBook() error {
	cmd.println("\nDelete Book")

	id, ok, err := cmd.promptID("Enter Book ID: ", "Invalid ID entered")
	if err != nil || !ok {
		return err
	}

	book, err := cmd.store.FindByID(id)
	if err != nil {
		cmd.lookupFailure(id, err)
		return nil
	}

	cmd.println("\nBook found: ")
	cmd.println(book.String())

	answer, err := cmd.prompt("\nAre you sure you want to delete this book? (y/n): ")
	if err != nil {
		return err
	}
	confirmed := strings.ToLower(strings.TrimSpace(answer)) == "y"

	deleted, err := cmd.store.Delete(id, confirmed)
	switch {
	case errors.Is(err, books.ErrNotFound):
		cmd.fail("No book found with ID: %d", id)
	case err != nil:
		cmd.storageFailure("delete", err)
	case deleted:
		cmd.log.Info().Uint("id", id).Msg("Book deleted")
		cmd.succeed("Book with ID %d has been deleted.", id)
	default:
		cmd.println("\nDeletion cancelled.")
	}
	return nil
}

func (cmd *MenuCommand) searchBooks() error {
	cmd.println("\nSearch Book")
	cmd.println("1. Search by name")
	cmd.println("2. Search by ID")
	cmd.println("0. Cancel")

	var option int
	for {
		line, err := cmd.prompt("\nEnter selection: ")
		if err != nil {
			return err
		}
		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil && n >= searchCancel && n <= searchByID {
			option = n
			break
		}
		cmd.fail("Invalid option number entered")
	}

	switch option {
	case searchByName:
		title, err := cmd.prompt("\nEnter book name: ")
		if err != nil {
			return err
		}
		title = strings.TrimSpace(title)

		found, err := cmd.store.FindByTitle(title)
		if err != nil {
			cmd.storageFailure("search", err)
			return nil
		}
		if len(found) == 0 {
			cmd.fail("No books found with title '%s'.", title)
			return nil
		}
		cmd.println(cmd.palette.success("\nBooks found with title '" + title + "':"))
		cmd.println(renderBooks(found))

	case searchByID:
		id, ok, err := cmd.promptID("Enter book ID: ", "Error: ID must be a number")
		if err != nil || !ok {
			return err
		}
		book, err := cmd.store.FindByID(id)
		if errors.Is(err, books.ErrNotFound) {
			cmd.fail("No books found with an ID: '%d'.", id)
			return nil
		}
		if err != nil {
			cmd.storageFailure("search", err)
			return nil
		}
		cmd.println(cmd.palette.success("\nBook found with ID '" + strconv.FormatUint(uint64(id), 10) + "':"))
		cmd.println(book.String())
	}
	return nil
}

func (cmd *MenuCommand) viewAll() error {
	all, err := cmd.store.ListAll()
	if err != nil {
		cmd.storageFailure("list", err)
		return nil
	}
	cmd.println(renderBooks(all))
	return nil
}

// promptID reads a book id. ok is false when the input was not a valid id;
// invalidMsg has then already been shown.
func (cmd *MenuCommand) promptID(msg, invalidMsg string) (id uint, ok bool, err error) {
	raw, err := cmd.prompt(msg)
	if err != nil {
		return 0, false, err
	}
	id, err = books.ParseID(raw)
	if err != nil {
		cmd.fail("%s", invalidMsg)
		return 0, false, nil
	}
	return id, true, nil
}

func (cmd *MenuCommand) lookupFailure(id uint, err error) {
	if errors.Is(err, books.ErrNotFound) {
		cmd.fail("No book found with ID: %d", id)
		return
	}
	cmd.storageFailure("lookup", err)
}

func (cmd *MenuCommand) storageFailure(op string, err error) {
	cmd.log.Error().Err(err).Str("operation", op).Msg("Storage operation failed")
	if hint := database.StorageErrorHint(err); hint != "" {
		cmd.fail("An error occurred: %v (%s)", err, hint)
		return
	}
	cmd.fail("An error occurred: %v", err)
}
