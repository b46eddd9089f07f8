package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"perpusku_backend/internals/features/books/books/dto"
	"perpusku_backend/internals/features/books/books/model"
	helpers "perpusku_backend/internals/helpers"
	storage "perpusku_backend/internals/helpers/storage"
)

type BookController struct {
	DB *gorm.DB
}

func NewBookController(db *gorm.DB) *BookController {
	return &BookController{DB: db}
}

var validate = validator.New()

// GET /api/public/books — seluruh katalog + jumlah eksemplar tersedia.
// ?q= untuk cari judul/penulis.
func (bc *BookController) GetBooks(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))

	tx := bc.DB.Model(&model.BookModel{})
	if q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("LOWER(book_title) LIKE ? OR LOWER(book_author_name) LIKE ?", like, like)
	}

	var books []model.BookModel
	if err := tx.Order("book_title ASC").Find(&books).Error; err != nil {
		log.Println("[ERROR] GetBooks:", err)
		return helpers.Error(c, fiber.StatusServiceUnavailable, "Katalog tidak dapat diakses")
	}

	// hitung ketersediaan per buku dalam satu query
	type availRow struct {
		BookID uuid.UUID `gorm:"column:copy_book_id"`
		N      int64     `gorm:"column:n"`
	}
	var rows []availRow
	if err := bc.DB.Model(&model.BookCopyModel{}).
		Select("copy_book_id, COUNT(*) AS n").
		Where("copy_status = ?", model.CopyStatusAvailable).
		Group("copy_book_id").
		Scan(&rows).Error; err != nil {
		log.Println("[ERROR] GetBooks avail count:", err)
		return helpers.Error(c, fiber.StatusServiceUnavailable, "Katalog tidak dapat diakses")
	}
	avail := make(map[uuid.UUID]int64, len(rows))
	for _, r := range rows {
		avail[r.BookID] = r.N
	}

	items := make([]dto.BookResponse, 0, len(books))
	for _, b := range books {
		resp := dto.ToBookResponse(b)
		n := avail[b.BookID]
		resp.AvailableCopies = &n
		items = append(items, resp)
	}

	return helpers.Success(c, "OK", items)
}

// GET /api/public/books/:id
func (bc *BookController) GetBookByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "book_id tidak valid")
	}

	var book model.BookModel
	if err := bc.DB.First(&book, "book_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "Buku tidak ditemukan")
		}
		return helpers.Error(c, fiber.StatusServiceUnavailable, "DB error")
	}

	return helpers.Success(c, "OK", dto.ToBookResponse(book))
}

// GET /api/public/books/:id/copies — boleh kosong (bukan error)
func (bc *BookController) GetBookCopiesByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "book_id tidak valid")
	}

	var copies []model.BookCopyModel
	if err := bc.DB.
		Where("copy_book_id = ?", id).
		Order("copy_id ASC").
		Find(&copies).Error; err != nil {
		return helpers.Error(c, fiber.StatusServiceUnavailable, "DB error")
	}

	items := make([]dto.BookCopyResponse, 0, len(copies))
	for _, cp := range copies {
		items = append(items, dto.ToBookCopyResponse(cp))
	}
	return helpers.Success(c, "OK", items)
}

// GET /api/public/books/:id/available-copy
// Nama field lama di skema yang digantikan: getAvailbleBookCopyByID (typo) — di sini dibetulkan.
// Deterministik: copy_id terkecil yang menang.
func (bc *BookController) GetAvailableBookCopyByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "book_id tidak valid")
	}

	var cp model.BookCopyModel
	if err := bc.DB.
		Where("copy_book_id = ? AND copy_status = ?", id, model.CopyStatusAvailable).
		Order("copy_id ASC").
		First(&cp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "Tidak ada eksemplar tersedia")
		}
		return helpers.Error(c, fiber.StatusServiceUnavailable, "DB error")
	}

	return helpers.Success(c, "OK", dto.ToBookCopyResponse(cp))
}

// POST /api/a/books  (librarian, multipart: field buku + file image opsional)
func (bc *BookController) AddBook(c *fiber.Ctx) error {
	var req dto.CreateBookRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	book := model.BookModel{
		BookTitle:       strings.TrimSpace(req.Title),
		BookAuthorName:  strings.TrimSpace(req.AuthorName),
		BookDescription: req.Description,
	}
	if req.DatePublished != "" {
		t, err := time.Parse("2006-01-02", req.DatePublished)
		if err != nil {
			return helpers.Error(c, fiber.StatusBadRequest, "date_published harus format YYYY-MM-DD")
		}
		book.BookDatePublished = &t
	}

	// cover opsional → webp → storage, yang disimpan hanya URL
	if fileHeader, err := c.FormFile("image"); err == nil && fileHeader != nil {
		publicURL, err := storage.UploadCoverImage(fileHeader)
		if err != nil {
			log.Println("[ERROR] upload cover:", err)
			return helpers.Error(c, fiber.StatusBadRequest, "Upload cover gagal: "+err.Error())
		}
		book.BookImageURL = &publicURL
	}

	copyCount := req.CopyCount
	if copyCount < 1 {
		copyCount = 1
	}

	if err := bc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&book).Error; err != nil {
			return err
		}
		copies := make([]model.BookCopyModel, copyCount)
		for i := range copies {
			copies[i] = model.BookCopyModel{
				CopyBookID: book.BookID,
				CopyStatus: model.CopyStatusAvailable,
			}
		}
		return tx.Create(&copies).Error
	}); err != nil {
		log.Println("[ERROR] AddBook:", err)
		return helpers.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan buku")
	}

	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Buku berhasil dikatalogkan", dto.ToBookResponse(book))
}

// PUT /api/a/books/:id  (librarian)
func (bc *BookController) UpdateBook(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "book_id tidak valid")
	}

	var req dto.UpdateBookRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	var book model.BookModel
	if err := bc.DB.First(&book, "book_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "Buku tidak ditemukan")
		}
		return helpers.Error(c, fiber.StatusServiceUnavailable, "DB error")
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["book_title"] = strings.TrimSpace(*req.Title)
	}
	if req.AuthorName != nil {
		updates["book_author_name"] = strings.TrimSpace(*req.AuthorName)
	}
	if req.Description != nil {
		updates["book_description"] = *req.Description
	}
	if req.DatePublished != nil {
		t, err := time.Parse("2006-01-02", *req.DatePublished)
		if err != nil {
			return helpers.Error(c, fiber.StatusBadRequest, "date_published harus format YYYY-MM-DD")
		}
		updates["book_date_published"] = t
	}

	// ganti cover: upload dulu yang baru, hapus yang lama kalau sukses
	if fileHeader, err := c.FormFile("image"); err == nil && fileHeader != nil {
		publicURL, err := storage.UploadCoverImage(fileHeader)
		if err != nil {
			return helpers.Error(c, fiber.StatusBadRequest, "Upload cover gagal: "+err.Error())
		}
		updates["book_image_url"] = publicURL
		if book.BookImageURL != nil {
			if bucket, path, err := storage.ExtractSupabasePath(*book.BookImageURL); err == nil {
				if err := storage.DeleteFromSupabase(bucket, path); err != nil {
					log.Println("[WARNING] hapus cover lama gagal:", err)
				}
			}
		}
	}

	if len(updates) == 0 {
		return helpers.Error(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	if err := bc.DB.Model(&book).Updates(updates).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Gagal update buku")
	}

	if err := bc.DB.First(&book, "book_id = ?", id).Error; err == nil {
		return helpers.Success(c, "Buku diperbarui", dto.ToBookResponse(book))
	}
	return helpers.Success(c, "Buku diperbarui", nil)
}
