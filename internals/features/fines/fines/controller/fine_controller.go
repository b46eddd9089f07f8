package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"perpusku_backend/internals/configs"
	"perpusku_backend/internals/features/fines/fines/dto"
	"perpusku_backend/internals/features/fines/fines/service"
	"perpusku_backend/internals/features/fines/fines/stream"
	helpers "perpusku_backend/internals/helpers"
)

type FineController struct {
	DB     *gorm.DB
	Policy configs.LendingPolicy
	Hub    *stream.Hub
}

func NewFineController(db *gorm.DB, policy configs.LendingPolicy, hub *stream.Hub) *FineController {
	return &FineController{DB: db, Policy: policy, Hub: hub}
}

var validate = validator.New()

// POST /api/a/fines — denda manual oleh librarian (buku rusak/hilang dsb)
func (fc *FineController) CreateFine(c *fiber.Ctx) error {
	var req dto.CreateFineRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	patronID, _ := uuid.Parse(req.PatronID)
	bookID, _ := uuid.Parse(req.BookID)

	fine, err := service.CreateFine(fc.DB, service.CreateFineInput{
		PatronID:      patronID,
		BookID:        bookID,
		RatePerDay:    req.RatePerDay,
		DaysLate:      req.DaysLate,
		ViolationType: req.ViolationType,
		ViolationInfo: req.ViolationInfo,
	}, fc.Policy)
	if err != nil {
		if errors.Is(err, service.ErrPatronNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "Patron tidak ditemukan")
		}
		if errors.Is(err, service.ErrBookNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "Buku tidak ditemukan")
		}
		log.Println("[ERROR] create fine:", err)
		return helpers.Error(c, fiber.StatusInternalServerError, "Gagal membuat denda")
	}

	fc.Hub.Publish(fine)
	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Denda berhasil dibuat", fine)
}

// DELETE /api/a/fines/:id — hapus denda (lunas manual / dibatalkan)
func (fc *FineController) DeleteFine(c *fiber.Ctx) error {
	fineID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "fine_id tidak valid")
	}

	if err := service.DeleteFine(fc.DB, fineID); err != nil {
		if errors.Is(err, service.ErrFineNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "Denda tidak ditemukan")
		}
		log.Println("[ERROR] delete fine:", err)
		return helpers.Error(c, fiber.StatusInternalServerError, "Gagal menghapus denda")
	}

	return helpers.Success(c, "Denda berhasil dihapus", nil)
}

// GET /api/u/fines — denda aktif milik patron yang login
func (fc *FineController) MyFines(c *fiber.Ctx) error {
	patronID, err := helpers.GetPatronUUID(c)
	if err != nil {
		return err
	}

	fines, err := service.ListFines(fc.DB, patronID)
	if err != nil {
		return helpers.Error(c, fiber.StatusServiceUnavailable, "DB error")
	}
	return helpers.Success(c, "OK", fines)
}

// GET /api/a/fines/patron/:patron_id — denda patron tertentu (librarian)
func (fc *FineController) FinesByPatron(c *fiber.Ctx) error {
	patronID, err := uuid.Parse(c.Params("patron_id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "patron_id tidak valid")
	}

	fines, err := service.ListFines(fc.DB, patronID)
	if err != nil {
		return helpers.Error(c, fiber.StatusServiceUnavailable, "DB error")
	}
	return helpers.Success(c, "OK", fines)
}
