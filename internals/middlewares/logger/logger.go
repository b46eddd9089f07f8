package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// LoggerMiddleware mencatat tiap request sirkulasi (pinjam/kembali/denda)
// dengan latency; melengkapi log [REQ] ber-request-id di main.
func LoggerMiddleware() fiber.Handler {
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Format:     "[CIRC] [${time}] ${ip} - ${method} ${path} - ${status} - ${latency}\n",
	})
}
