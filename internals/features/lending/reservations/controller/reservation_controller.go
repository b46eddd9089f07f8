package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"perpusku_backend/internals/configs"
	"perpusku_backend/internals/features/lending/reservations/dto"
	"perpusku_backend/internals/features/lending/reservations/model"
	"perpusku_backend/internals/features/lending/reservations/service"
	helpers "perpusku_backend/internals/helpers"
)

type ReservationController struct {
	DB     *gorm.DB
	Policy configs.LendingPolicy
}

func NewReservationController(db *gorm.DB, policy configs.LendingPolicy) *ReservationController {
	return &ReservationController{DB: db, Policy: policy}
}

var validate = validator.New()

// POST /api/u/reservations — reservasi buku untuk patron yang login
func (rc *ReservationController) ReserveBook(c *fiber.Ctx) error {
	patronID, err := helpers.GetPatronUUID(c)
	if err != nil {
		return err
	}

	var req dto.ReserveBookRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}
	bookID, _ := uuid.Parse(req.BookID)

	reservation, err := service.ReserveBook(rc.DB, bookID, patronID, rc.Policy)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPatronSuspended):
			return helpers.Error(c, fiber.StatusForbidden, "Status keanggotaan Anda tidak aktif")
		case errors.Is(err, service.ErrBookNotFound):
			return helpers.Error(c, fiber.StatusNotFound, "Buku tidak ditemukan")
		case errors.Is(err, service.ErrDuplicateReservation):
			return helpers.Error(c, fiber.StatusConflict, "Anda sudah mereservasi buku ini")
		default:
			log.Println("[ERROR] reserve book:", err)
			return helpers.Error(c, fiber.StatusInternalServerError, "Terjadi kesalahan")
		}
	}

	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Reservasi berhasil",
		dto.ToReservationResponse(*reservation))
}

// GET /api/u/reservations — reservasi milik patron yang login
func (rc *ReservationController) MyReservations(c *fiber.Ctx) error {
	patronID, err := helpers.GetPatronUUID(c)
	if err != nil {
		return err
	}

	items, err := service.ListByPatron(rc.DB, patronID)
	if err != nil {
		return helpers.Error(c, fiber.StatusServiceUnavailable, "DB error")
	}

	resp := make([]dto.ReservationResponse, 0, len(items))
	for _, r := range items {
		resp = append(resp, dto.ToReservationResponse(r))
	}
	return helpers.Success(c, "OK", resp)
}

// DELETE /api/u/reservations/:id — batalkan reservasi sendiri
func (rc *ReservationController) CancelReservation(c *fiber.Ctx) error {
	reservationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "reservation_id tidak valid")
	}

	var reservation model.ReservationModel
	if err := rc.DB.First(&reservation, "reservation_id = ?", reservationID).Error; err != nil {
		return helpers.Error(c, fiber.StatusNotFound, "Reservasi tidak ditemukan")
	}
	if err := helpers.EnsureOwnerOrLibrarian(c, reservation.ReservationPatronID); err != nil {
		return err
	}

	if err := service.CancelReservation(rc.DB, reservationID); err != nil {
		if errors.Is(err, service.ErrReservationNotFound) {
			return helpers.Error(c, fiber.StatusConflict, "Reservasi sudah tidak PENDING")
		}
		return helpers.Error(c, fiber.StatusServiceUnavailable, "DB error")
	}
	return helpers.Success(c, "Reservasi dibatalkan", nil)
}

// GET /api/a/reservations?book_id= — librarian melihat antrean reservasi satu buku
func (rc *ReservationController) ReservationsByBook(c *fiber.Ctx) error {
	bookID, err := uuid.Parse(c.Query("book_id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "book_id tidak valid")
	}

	var items []model.ReservationModel
	if err := rc.DB.
		Where("reservation_book_id = ?", bookID).
		Order("reservation_reserved_at ASC").
		Find(&items).Error; err != nil {
		return helpers.Error(c, fiber.StatusServiceUnavailable, "DB error")
	}

	resp := make([]dto.ReservationResponse, 0, len(items))
	for _, r := range items {
		resp = append(resp, dto.ToReservationResponse(r))
	}
	return helpers.Success(c, "OK", resp)
}
