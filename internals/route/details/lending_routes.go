package details

import (
	"perpusku_backend/internals/configs"
	fineStream "perpusku_backend/internals/features/fines/fines/stream"
	borrowingRoute "perpusku_backend/internals/features/lending/borrowings/route"
	reservationRoute "perpusku_backend/internals/features/lending/reservations/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func LendingUserRoutes(user fiber.Router, db *gorm.DB, policy configs.LendingPolicy, hub *fineStream.Hub) {
	borrowingRoute.BorrowingUserRoutes(user, db, policy, hub)
	reservationRoute.ReservationUserRoutes(user, db, policy)
}

func LendingAdminRoutes(admin fiber.Router, db *gorm.DB, policy configs.LendingPolicy, hub *fineStream.Hub) {
	borrowingRoute.BorrowingAdminRoutes(admin, db, policy, hub)
	reservationRoute.ReservationAdminRoutes(admin, db, policy)
}
