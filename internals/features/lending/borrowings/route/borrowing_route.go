package route

import (
	"perpusku_backend/internals/configs"
	fineStream "perpusku_backend/internals/features/fines/fines/stream"
	controller "perpusku_backend/internals/features/lending/borrowings/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Base: /api/u — siklus pinjam-kembali-perpanjang milik patron sendiri.
func BorrowingUserRoutes(user fiber.Router, db *gorm.DB, policy configs.LendingPolicy, hub *fineStream.Hub) {
	borrowingController := controller.NewBorrowingController(db, policy, hub)

	borrowing := user.Group("/borrowings")
	borrowing.Post("/", borrowingController.BorrowBook)
	borrowing.Get("/history", borrowingController.PatronBorrowHistory)
	borrowing.Post("/:id/return", borrowingController.ReturnBook)
	borrowing.Post("/:id/renew", borrowingController.RenewLoan)
}

// Base: /api/a — librarian menelusuri semua record peminjaman.
func BorrowingAdminRoutes(admin fiber.Router, db *gorm.DB, policy configs.LendingPolicy, hub *fineStream.Hub) {
	borrowingController := controller.NewBorrowingController(db, policy, hub)

	admin.Get("/borrowings", borrowingController.BorrowRecords)
}
