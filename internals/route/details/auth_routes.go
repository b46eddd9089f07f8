package details

import (
	authRoute "perpusku_backend/internals/features/patrons/auth/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authRoute.AuthRoutes(app, db)
}

func AuthUserRoutes(user fiber.Router, db *gorm.DB) {
	authRoute.AuthUserRoutes(user, db)
}
