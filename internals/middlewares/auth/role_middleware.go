package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"perpusku_backend/internals/constants"
)

// OnlyRoles menolak request kalau role di Locals tidak termasuk daftar yang diizinkan.
func OnlyRoles(allowed ...string) fiber.Handler {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, r := range allowed {
		allowedSet[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if role == "" {
			role = constants.RolePatron
		}
		if _, ok := allowedSet[role]; !ok {
			log.Printf("[WARNING] Akses ditolak, role=%s path=%s", role, c.Path())
			return fiber.NewError(fiber.StatusForbidden, "Anda tidak punya akses ke resource ini")
		}
		return c.Next()
	}
}

// OnlyLibrarian shortcut untuk grup /api/a.
func OnlyLibrarian() fiber.Handler {
	return OnlyRoles(constants.RoleLibrarian)
}
