package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"perpusku_backend/internals/features/fines/fines/stream"
)

// UpgradeFineStream: gate sebelum upgrade websocket. patron_id dari auth
// middleware dititipkan ke Locals supaya handler ws masih bisa membacanya.
func UpgradeFineStream(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	c.Locals("ws_patron_id", c.Locals("patron_id"))
	return c.Next()
}

// FineStreamHandler: satu koneksi = satu subscriber; event denda baru milik
// patron ini didorong sebagai JSON sampai koneksi ditutup.
func FineStreamHandler(hub *stream.Hub) fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		idStr, _ := conn.Locals("ws_patron_id").(string)
		patronID, err := uuid.Parse(idStr)
		if err != nil {
			conn.WriteJSON(fiber.Map{"error": "unauthorized"})
			conn.Close()
			return
		}

		sub := hub.Subscribe(patronID)
		defer hub.Unsubscribe(sub)
		log.Printf("[INFO] Patron %s subscribe fineCreated", patronID)

		// reader hanya untuk mendeteksi close dari klien
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case fine, ok := <-sub.Events:
				if !ok {
					return
				}
				if err := conn.WriteJSON(fine); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	})
}
