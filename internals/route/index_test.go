package routes

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"perpusku_backend/internals/configs"
	fineStream "perpusku_backend/internals/features/fines/fines/stream"
)

// registrasi route tidak menyentuh DB, jadi cukup nil di sini
func registeredRoutes(t *testing.T) map[string]bool {
	t.Helper()

	app := fiber.New()
	SetupRoutes(app, nil, configs.LendingPolicy{}, fineStream.NewHub())

	got := make(map[string]bool)
	for _, r := range app.GetRoutes() {
		got[r.Method+" "+r.Path] = true
	}
	return got
}

// route di root group bisa terdaftar dengan atau tanpa trailing slash
func hasRoute(routes map[string]bool, method, path string) bool {
	return routes[method+" "+path] || routes[method+" "+path+"/"]
}

func TestChangePasswordButuhLogin(t *testing.T) {
	routes := registeredRoutes(t)

	// ganti password harus lewat group /api/u supaya Locals("patron_id") terisi
	assert.True(t, routes["POST /api/u/auth/change-password"])
	assert.False(t, routes["POST /api/auth/change-password"])
}

func TestRouteGroupPlacement(t *testing.T) {
	routes := registeredRoutes(t)

	t.Run("auth dasar tanpa JWT", func(t *testing.T) {
		assert.True(t, routes["POST /api/auth/login"])
		assert.True(t, routes["POST /api/auth/register"])
	})

	t.Run("webhook Midtrans di luar group", func(t *testing.T) {
		assert.True(t, routes["POST /api/fines/notification"])
	})

	t.Run("operasi patron di /api/u", func(t *testing.T) {
		assert.True(t, hasRoute(routes, "POST", "/api/u/borrowings"))
		assert.True(t, hasRoute(routes, "POST", "/api/u/reservations"))
	})
}
