package route

import (
	"perpusku_backend/internals/configs"
	controller "perpusku_backend/internals/features/lending/reservations/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Base: /api/u — reservasi milik patron sendiri.
func ReservationUserRoutes(user fiber.Router, db *gorm.DB, policy configs.LendingPolicy) {
	reservationController := controller.NewReservationController(db, policy)

	reservation := user.Group("/reservations")
	reservation.Post("/", reservationController.ReserveBook)
	reservation.Get("/", reservationController.MyReservations)
	reservation.Delete("/:id", reservationController.CancelReservation)
}

// Base: /api/a — librarian melihat antrean reservasi.
func ReservationAdminRoutes(admin fiber.Router, db *gorm.DB, policy configs.LendingPolicy) {
	reservationController := controller.NewReservationController(db, policy)

	admin.Get("/reservations", reservationController.ReservationsByBook)
}
