package service

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	patronModel "perpusku_backend/internals/features/patrons/patron/model"
	helpers "perpusku_backend/internals/helpers"
)

// ========================== RESET PASSWORD ==========================
// POST /api/auth/reset-password
func ResetPassword(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Email       string `json:"email" validate:"required,email"`
		NewPassword string `json:"new_password" validate:"required,min=8"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(input); err != nil {
		return helpers.ValidationError(c, err)
	}

	// 🔹 Cari patron
	var patron patronModel.PatronModel
	if err := db.First(&patron, "patron_email = ?", input.Email).Error; err != nil {
		return helpers.Error(c, fiber.StatusNotFound, "Patron not found")
	}

	// 🔹 Hash password baru
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	if err := db.Model(&patronModel.PatronModel{}).
		Where("patron_id = ?", patron.PatronID).
		Update("patron_password", string(hashedPassword)).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	return helpers.Success(c, "Password reset successfully", nil)
}

// ========================== CHANGE PASSWORD ==========================
// POST /api/u/auth/change-password
func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		CurrentPassword string `json:"current_password" validate:"required"`
		NewPassword     string `json:"new_password" validate:"required,min=8"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(input); err != nil {
		return helpers.ValidationError(c, err)
	}

	patronID, err := helpers.GetPatronUUID(c)
	if err != nil {
		return err
	}

	var patron patronModel.PatronModel
	if err := db.First(&patron, "patron_id = ?", patronID).Error; err != nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Patron not found")
	}

	// Cek password lama
	if err := bcrypt.CompareHashAndPassword([]byte(patron.PatronPassword), []byte(input.CurrentPassword)); err != nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Current password incorrect")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	if err := db.Model(&patronModel.PatronModel{}).
		Where("patron_id = ?", patron.PatronID).
		Update("patron_password", string(hashedPassword)).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	return helpers.Success(c, "Password berhasil diubah", nil)
}
