package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"perpusku_backend/internals/features/books/books/dto"
	"perpusku_backend/internals/features/books/books/model"
	helpers "perpusku_backend/internals/helpers"
)

// POST /api/a/books/:id/copies  (librarian) — tambah satu eksemplar
func (bc *BookController) AddBookCopy(c *fiber.Ctx) error {
	bookID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "book_id tidak valid")
	}

	var book model.BookModel
	if err := bc.DB.Select("book_id").First(&book, "book_id = ?", bookID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "Buku tidak ditemukan")
		}
		return helpers.Error(c, fiber.StatusServiceUnavailable, "DB error")
	}

	cp := model.BookCopyModel{
		CopyBookID: bookID,
		CopyStatus: model.CopyStatusAvailable,
	}
	if err := bc.DB.Create(&cp).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Gagal menambah eksemplar")
	}

	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Eksemplar ditambahkan", dto.ToBookCopyResponse(cp))
}

// PUT /api/a/copies/:id/status  (librarian) — tandai LOST/MAINTENANCE/AVAILABLE.
// Eksemplar yang sedang BORROWED tidak boleh diubah lewat sini; statusnya
// hanya boleh berubah lewat returnBook supaya invariant copy⟷record tetap jaga.
func (bc *BookController) SetCopyStatus(c *fiber.Ctx) error {
	copyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "copy_id tidak valid")
	}

	var req dto.SetCopyStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	res := bc.DB.Model(&model.BookCopyModel{}).
		Where("copy_id = ? AND copy_status <> ?", copyID, model.CopyStatusBorrowed).
		Update("copy_status", req.Status)
	if res.Error != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Gagal update status eksemplar")
	}
	if res.RowsAffected == 0 {
		var cp model.BookCopyModel
		if err := bc.DB.First(&cp, "copy_id = ?", copyID).Error; err != nil {
			return helpers.Error(c, fiber.StatusNotFound, "Eksemplar tidak ditemukan")
		}
		return helpers.Error(c, fiber.StatusConflict, "Eksemplar sedang dipinjam, kembalikan dulu")
	}

	return helpers.Success(c, "Status eksemplar diperbarui", fiber.Map{
		"copy_id": copyID,
		"status":  req.Status,
	})
}
