package middlewares

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// RecoveryMiddleware menangkap panic handler dan mengubahnya jadi 500,
// bukan proses mati; transaksi peminjaman yang setengah jalan ikut di-rollback
// oleh GORM saat panic keluar dari closure Transaction.
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.Printf("🔥 [PANIC] %s %s: %v", c.Method(), c.Path(), e)
		},
	})
}
