package service

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "perpusku_backend/internals/features/patrons/auth/model"
	patronModel "perpusku_backend/internals/features/patrons/patron/model"
	helpers "perpusku_backend/internals/helpers"
)

// Validator instance untuk seluruh service auth
var validate = validator.New()

// ========================== REFRESH TOKEN ==========================
// POST /api/auth/refresh-token
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		return helpers.Error(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return err
	}

	// Parse & validate refresh JWT
	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (any, error) {
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helpers.Error(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	patronID, err := uuid.Parse(sub)
	if err != nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	// Pastikan hash refresh ada di DB
	h := computeRefreshHash(refreshCookie, refreshSecret)
	var exists bool
	if err := db.Raw(`SELECT EXISTS(SELECT 1 FROM refresh_tokens WHERE token_hash = ? AND revoked_at IS NULL)`, h).
		Scan(&exists).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "DB error")
	}
	if !exists {
		return helpers.Error(c, fiber.StatusUnauthorized, "Refresh token tidak dikenal")
	}

	var patron patronModel.PatronModel
	if err := db.First(&patron, "patron_id = ?", patronID).Error; err != nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Patron not found")
	}
	if !patron.IsActive {
		return helpers.Error(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	// ROTATE: hapus token lama sebelum terbit yang baru
	if err := db.Where("token_hash = ?", h).Delete(&authModel.RefreshTokenModel{}).Error; err != nil {
		log.Printf("[refresh] delete old hash failed: %v", err)
	}

	data, err := issueTokenPair(db, c, patron)
	if err != nil {
		return err
	}
	return helpers.Success(c, "Token diperbarui", data)
}
