package books

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"perpusku_backend/internals/features/books/books/model"
)

type BookSeed struct {
	Title       string `json:"title"`
	AuthorName  string `json:"author_name"`
	Description string `json:"description"`
	CopyCount   int    `json:"copy_count"`
}

// SeedBooksFromJSON membuat buku + sejumlah eksemplar AVAILABLE.
// Judul yang sudah ada dilewati.
func SeedBooksFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file buku:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []BookSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.BookModel
		if err := db.Where("book_title = ?", data.Title).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Buku '%s' sudah ada, dilewati.", data.Title)
			continue
		}

		if data.CopyCount < 1 {
			data.CopyCount = 1
		}

		book := model.BookModel{
			BookTitle:       data.Title,
			BookAuthorName:  data.AuthorName,
			BookDescription: data.Description,
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&book).Error; err != nil {
				return err
			}
			copies := make([]model.BookCopyModel, data.CopyCount)
			for i := range copies {
				copies[i] = model.BookCopyModel{
					CopyBookID: book.BookID,
					CopyStatus: model.CopyStatusAvailable,
				}
			}
			return tx.Create(&copies).Error
		})
		if err != nil {
			log.Printf("❌ Gagal seed buku '%s': %v", data.Title, err)
			continue
		}

		log.Printf("✅ Buku '%s' dengan %d eksemplar berhasil dibuat", data.Title, data.CopyCount)
	}
}
