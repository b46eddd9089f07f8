package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"perpusku_backend/internals/constants"
)

// ExtractBearerToken mengambil token dari header Authorization (fallback ke cookie access_token).
func ExtractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	if strings.HasPrefix(authHeader, "Bearer ") {
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if token != "" {
			return token, nil
		}
	}
	if cookie := strings.TrimSpace(c.Cookies("access_token")); cookie != "" {
		return cookie, nil
	}
	return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token tidak ditemukan")
}

// GetPatronUUID mengambil patron_id yang disimpan auth middleware di Locals.
func GetPatronUUID(c *fiber.Ctx) (uuid.UUID, error) {
	idStr, ok := c.Locals("patron_id").(string)
	if !ok || idStr == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid patron ID in context")
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid UUID format")
	}
	return id, nil
}

// GetRole membaca role dari Locals (diisi auth middleware). Default patron.
func GetRole(c *fiber.Ctx) string {
	if role, ok := c.Locals("role").(string); ok && role != "" {
		return role
	}
	return constants.RolePatron
}

// IsLibrarian cek apakah request datang dari petugas.
func IsLibrarian(c *fiber.Ctx) bool {
	return GetRole(c) == constants.RoleLibrarian
}

// EnsureOwnerOrLibrarian menolak akses data patron lain (403), kecuali librarian.
func EnsureOwnerOrLibrarian(c *fiber.Ctx, ownerID uuid.UUID) error {
	if IsLibrarian(c) {
		return nil
	}
	callerID, err := GetPatronUUID(c)
	if err != nil {
		return err
	}
	if callerID != ownerID {
		return fiber.NewError(fiber.StatusForbidden, "Tidak boleh mengakses data patron lain")
	}
	return nil
}
