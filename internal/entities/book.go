package entities

import "fmt"

// Book is a catalog entry. The id is assigned by the store unless a seed
// record supplies it, and never changes afterwards.
type Book struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title  string `gorm:"type:text" json:"title"`
	Author string `gorm:"type:text" json:"author"`
	Qty    int    `gorm:"type:integer" json:"qty"`
}

func (Book) TableName() string {
	return "books"
}

func (b Book) String() string {
	return fmt.Sprintf("ID: %d \nTitle: %s \nAuthor: %s \nQuantity: %d", b.ID, b.Title, b.Author, b.Qty)
}

// SeedBooks is the fixed catalog inserted on startup.
var SeedBooks = []Book{
	{ID: 3001, Title: "A tale of Two Cities", Author: "Charles Dickens", Qty: 30},
	{ID: 3002, Title: "Harry Potter and the Philosopher's Stone", Author: "J.K. Rowling", Qty: 40},
	{ID: 3003, Title: "The Lion, the Witch and the Wardrobe", Author: "C.S. Lewis", Qty: 25},
	{ID: 3004, Title: "The Lord of the Rings", Author: "J.R.R Tolkien", Qty: 37},
	{ID: 3005, Title: "Alice in Wonderland", Author: "Lewis Carroll", Qty: 12},
}
