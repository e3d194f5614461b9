package cli

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/ebookstore/inventory/internal/entities"
)

const (
	colorRed   = "\033[31m"
	colorGreen = "\033[1;32m"
	colorReset = "\033[0m"
)

// palette wraps messages in ANSI colours when enabled.
type palette struct {
	enabled bool
}

func (p palette) success(s string) string {
	return p.paint(colorGreen, s)
}

func (p palette) failure(s string) string {
	return p.paint(colorRed, s)
}

func (p palette) paint(color, s string) string {
	if !p.enabled {
		return s
	}
	return color + s + colorReset
}

// renderBooks formats books as a bordered table with an id/title/author/qty
// header.
func renderBooks(books []entities.Book) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleDefault)
	t.Style().Format.Header = text.FormatDefault
	t.AppendHeader(table.Row{"id", "title", "author", "qty"})
	for _, b := range books {
		t.AppendRow(table.Row{b.ID, b.Title, b.Author, b.Qty})
	}
	return t.Render()
}
