package details

import (
	patronRoute "perpusku_backend/internals/features/patrons/patron/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func PatronUserRoutes(user fiber.Router, db *gorm.DB) {
	patronRoute.PatronUserRoutes(user, db)
}

func PatronAdminRoutes(admin fiber.Router, db *gorm.DB) {
	patronRoute.PatronAdminRoutes(admin, db)
}
