package routes

import (
	"log"

	"perpusku_backend/internals/configs"
	fineStream "perpusku_backend/internals/features/fines/fines/stream"
	authMiddleware "perpusku_backend/internals/middlewares/auth"
	routeDetails "perpusku_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, policy configs.LendingPolicy, hub *fineStream.Hub) {
	// ===================== AUTH BASE =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// webhook Midtrans tanpa JWT (diverifikasi signature)
	log.Println("[INFO] Setting up Fine webhook...")
	routeDetails.FineWebhookRoutes(app, db, policy, hub)

	// ===================== GROUPS =====================

	// PUBLIC → tanpa JWT
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// PRIVATE (patron login)
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware(db))

	// ADMIN (librarian)
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyLibrarian(),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Book routes...")
	routeDetails.BookPublicRoutes(public, db)
	routeDetails.BookAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Patron routes...")
	routeDetails.AuthUserRoutes(private, db)
	routeDetails.PatronUserRoutes(private, db)
	routeDetails.PatronAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Lending routes...")
	routeDetails.LendingUserRoutes(private, db, policy, hub)
	routeDetails.LendingAdminRoutes(admin, db, policy, hub)

	log.Println("[INFO] Mounting Fine routes...")
	routeDetails.FineUserRoutes(private, db, policy, hub)
	routeDetails.FineAdminRoutes(admin, db, policy, hub)
}
