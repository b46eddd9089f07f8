package route

import (
	"perpusku_backend/internals/configs"
	controller "perpusku_backend/internals/features/fines/fines/controller"
	"perpusku_backend/internals/features/fines/fines/stream"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Base: app (tanpa auth) — webhook Midtrans, diamankan lewat signature.
func FineWebhookRoutes(app *fiber.App, db *gorm.DB, policy configs.LendingPolicy, hub *stream.Hub) {
	fineController := controller.NewFineController(db, policy, hub)

	app.Post("/api/fines/notification", fineController.HandleMidtransNotification)
}

// Base: /api/u — patron melihat & membayar dendanya, plus stream fineCreated.
func FineUserRoutes(user fiber.Router, db *gorm.DB, policy configs.LendingPolicy, hub *stream.Hub) {
	fineController := controller.NewFineController(db, policy, hub)

	fine := user.Group("/fines")
	fine.Get("/", fineController.MyFines)
	fine.Post("/:id/pay", fineController.PayFine)
	fine.Get("/stream", controller.UpgradeFineStream, controller.FineStreamHandler(hub))
}

// Base: /api/a — librarian membuat & menghapus denda.
func FineAdminRoutes(admin fiber.Router, db *gorm.DB, policy configs.LendingPolicy, hub *stream.Hub) {
	fineController := controller.NewFineController(db, policy, hub)

	fine := admin.Group("/fines")
	fine.Post("/", fineController.CreateFine)
	fine.Delete("/:id", fineController.DeleteFine)
	fine.Get("/patron/:patron_id", fineController.FinesByPatron)
}
