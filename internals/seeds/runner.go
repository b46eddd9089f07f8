package seeds

import (
	books "perpusku_backend/internals/seeds/books"
	patrons "perpusku_backend/internals/seeds/patrons"

	"gorm.io/gorm"
)

// RunAllSeeds mengisi data awal, aman dijalankan berulang (entri yang sudah
// ada dilewati oleh masing-masing seeder).
func RunAllSeeds(db *gorm.DB) {
	patrons.SeedPatronsFromJSON(db, "internals/seeds/patrons/data_patrons.json")
	books.SeedBooksFromJSON(db, "internals/seeds/books/data_books.json")
}
