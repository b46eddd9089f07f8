package route

import (
	controller "perpusku_backend/internals/features/patrons/patron/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Base: /api/u — patron melihat profil & statusnya sendiri.
func PatronUserRoutes(user fiber.Router, db *gorm.DB) {
	patronController := controller.NewPatronController(db)

	patron := user.Group("/patrons")
	patron.Get("/me", patronController.Me)
}

// Base: /api/a — librarian mengelola data patron.
func PatronAdminRoutes(admin fiber.Router, db *gorm.DB) {
	patronController := controller.NewPatronController(db)

	patron := admin.Group("/patrons")
	patron.Get("/", patronController.GetAllPatrons)
	patron.Get("/:id", patronController.GetPatronByID)
	patron.Put("/:id/membership", patronController.UpdateMembership)
}
