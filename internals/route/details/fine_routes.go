package details

import (
	"perpusku_backend/internals/configs"
	fineRoute "perpusku_backend/internals/features/fines/fines/route"
	"perpusku_backend/internals/features/fines/fines/stream"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func FineWebhookRoutes(app *fiber.App, db *gorm.DB, policy configs.LendingPolicy, hub *stream.Hub) {
	fineRoute.FineWebhookRoutes(app, db, policy, hub)
}

func FineUserRoutes(user fiber.Router, db *gorm.DB, policy configs.LendingPolicy, hub *stream.Hub) {
	fineRoute.FineUserRoutes(user, db, policy, hub)
}

func FineAdminRoutes(admin fiber.Router, db *gorm.DB, policy configs.LendingPolicy, hub *stream.Hub) {
	fineRoute.FineAdminRoutes(admin, db, policy, hub)
}
