package details

import (
	bookRoute "perpusku_backend/internals/features/books/books/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func BookPublicRoutes(public fiber.Router, db *gorm.DB) {
	bookRoute.BookPublicRoutes(public, db)
}

func BookAdminRoutes(admin fiber.Router, db *gorm.DB) {
	bookRoute.BookAdminRoutes(admin, db)
}
