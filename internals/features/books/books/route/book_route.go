package route

import (
	controller "perpusku_backend/internals/features/books/books/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Base: /api/public — katalog bisa diakses tanpa login.
func BookPublicRoutes(public fiber.Router, db *gorm.DB) {
	bookController := controller.NewBookController(db)

	book := public.Group("/books")
	book.Get("/", bookController.GetBooks)
	book.Get("/:id", bookController.GetBookByID)
	book.Get("/:id/copies", bookController.GetBookCopiesByID)
	book.Get("/:id/available-copy", bookController.GetAvailableBookCopyByID)
}

// Base: /api/a — librarian mengelola katalog & eksemplar.
func BookAdminRoutes(admin fiber.Router, db *gorm.DB) {
	bookController := controller.NewBookController(db)

	book := admin.Group("/books")
	book.Post("/", bookController.AddBook)
	book.Put("/:id", bookController.UpdateBook)
	book.Post("/:id/copies", bookController.AddBookCopy)

	admin.Put("/copies/:id/status", bookController.SetCopyStatus)
}
