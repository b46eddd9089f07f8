package route

import (
	controller "perpusku_backend/internals/features/patrons/auth/controller"
	rateLimiter "perpusku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Base: /api/auth — endpoint auth global, tanpa JWT kecuali yang butuh token.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	baseAuth := app.Group("/api/auth")

	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/login-google", rateLimiter.LoginRateLimiter(), authController.LoginGoogle)
	baseAuth.Post("/refresh-token", authController.RefreshToken)
	baseAuth.Post("/forgot-password/reset", authController.ResetPassword)

	// logout membaca bearer token langsung dari header, tidak butuh Locals
	baseAuth.Post("/logout", authController.Logout)
}

// Base: /api/u — endpoint auth yang butuh patron_id dari auth middleware.
func AuthUserRoutes(user fiber.Router, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	auth := user.Group("/auth")
	auth.Post("/change-password", authController.ChangePassword)
}
