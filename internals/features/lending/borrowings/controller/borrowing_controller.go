package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"perpusku_backend/internals/configs"
	fineService "perpusku_backend/internals/features/fines/fines/service"
	fineStream "perpusku_backend/internals/features/fines/fines/stream"
	"perpusku_backend/internals/features/lending/borrowings/dto"
	"perpusku_backend/internals/features/lending/borrowings/model"
	"perpusku_backend/internals/features/lending/borrowings/service"
	helpers "perpusku_backend/internals/helpers"
)

type BorrowingController struct {
	DB     *gorm.DB
	Policy configs.LendingPolicy
	Hub    *fineStream.Hub
}

func NewBorrowingController(db *gorm.DB, policy configs.LendingPolicy, hub *fineStream.Hub) *BorrowingController {
	return &BorrowingController{DB: db, Policy: policy, Hub: hub}
}

var validate = validator.New()

// mapping error domain → HTTP; race klaim copy keluar sebagai 409 domain error
func lendingError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNoCopyAvailable):
		return helpers.Error(c, fiber.StatusConflict, "Tidak ada eksemplar tersedia untuk buku ini")
	case errors.Is(err, service.ErrDuplicateBorrow):
		return helpers.Error(c, fiber.StatusConflict, "Anda masih meminjam buku ini")
	case errors.Is(err, service.ErrAlreadyReturned):
		return helpers.Error(c, fiber.StatusConflict, "Buku sudah dikembalikan")
	case errors.Is(err, service.ErrMaxRenewals):
		return helpers.Error(c, fiber.StatusConflict, "Batas perpanjangan tercapai")
	case errors.Is(err, service.ErrItemReserved):
		return helpers.Error(c, fiber.StatusConflict, "Buku sedang direservasi, tidak bisa diperpanjang")
	case errors.Is(err, service.ErrPatronSuspended):
		return helpers.Error(c, fiber.StatusForbidden, "Status keanggotaan Anda tidak aktif")
	case errors.Is(err, service.ErrRecordNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return helpers.Error(c, fiber.StatusNotFound, "Record tidak ditemukan")
	default:
		log.Println("[ERROR] lending:", err)
		return helpers.Error(c, fiber.StatusInternalServerError, "Terjadi kesalahan")
	}
}

// POST /api/u/borrowings — pinjam buku untuk patron yang login
func (bc *BorrowingController) BorrowBook(c *fiber.Ctx) error {
	patronID, err := helpers.GetPatronUUID(c)
	if err != nil {
		return err
	}

	var req dto.BorrowBookRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}
	bookID, _ := uuid.Parse(req.BookID)

	record, err := service.BorrowBook(bc.DB, bookID, patronID, bc.Policy)
	if err != nil {
		return lendingError(c, err)
	}

	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Peminjaman berhasil",
		dto.ToBorrowRecordResponse(*record, time.Now().UTC()))
}

// POST /api/u/borrowings/:id/return
// Pemilik record atau librarian. Telat → denda otomatis + push ke subscriber.
func (bc *BorrowingController) ReturnBook(c *fiber.Ctx) error {
	recordID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "record_id tidak valid")
	}

	// scope check sebelum mutasi
	var rec model.BorrowRecordModel
	if err := bc.DB.First(&rec, "borrow_id = ?", recordID).Error; err != nil {
		return lendingError(c, service.ErrRecordNotFound)
	}
	if err := helpers.EnsureOwnerOrLibrarian(c, rec.BorrowPatronID); err != nil {
		return err
	}

	result, err := service.ReturnBook(bc.DB, recordID)
	if err != nil {
		return lendingError(c, err)
	}

	resp := fiber.Map{
		"record": dto.ToBorrowRecordResponse(result.Record, time.Now().UTC()),
	}

	if result.DaysLate > 0 {
		fine, err := fineService.CreateFine(bc.DB, fineService.CreateFineInput{
			PatronID:      result.Record.BorrowPatronID,
			BookID:        result.Record.BorrowBookID,
			RatePerDay:    bc.Policy.FineRatePerDay,
			DaysLate:      result.DaysLate,
			ViolationType: fineService.ViolationLateReturn,
			ViolationInfo: "Pengembalian telat " + strconv.Itoa(result.DaysLate) + " hari",
		}, bc.Policy)
		if err != nil {
			// pengembalian sudah final; kegagalan denda dilog, tidak membatalkan return
			log.Println("[ERROR] auto fine on late return:", err)
		} else {
			bc.Hub.Publish(fine)
			resp["fine"] = fine
		}
	}

	return helpers.Success(c, "Pengembalian berhasil", resp)
}

// POST /api/u/borrowings/:id/renew — pemilik record
func (bc *BorrowingController) RenewLoan(c *fiber.Ctx) error {
	recordID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "record_id tidak valid")
	}

	var rec model.BorrowRecordModel
	if err := bc.DB.First(&rec, "borrow_id = ?", recordID).Error; err != nil {
		return lendingError(c, service.ErrRecordNotFound)
	}
	if err := helpers.EnsureOwnerOrLibrarian(c, rec.BorrowPatronID); err != nil {
		return err
	}

	record, err := service.RenewLoan(bc.DB, recordID, bc.Policy)
	if err != nil {
		return lendingError(c, err)
	}

	return helpers.Success(c, "Perpanjangan berhasil",
		dto.ToBorrowRecordResponse(*record, time.Now().UTC()))
}

// GET /api/u/borrowings/history — riwayat patron yang login, terbaru dulu
func (bc *BorrowingController) PatronBorrowHistory(c *fiber.Ctx) error {
	patronID, err := helpers.GetPatronUUID(c)
	if err != nil {
		return err
	}

	service.MarkOverdueRecords(bc.DB)

	var records []model.BorrowRecordModel
	if err := bc.DB.
		Where("borrow_patron_id = ?", patronID).
		Order("borrow_borrowed_at DESC").
		Find(&records).Error; err != nil {
		return helpers.Error(c, fiber.StatusServiceUnavailable, "DB error")
	}

	now := time.Now().UTC()
	items := make([]dto.BorrowRecordResponse, 0, len(records))
	for _, r := range records {
		items = append(items, dto.ToBorrowRecordResponse(r, now))
	}
	return helpers.Success(c, "OK", items)
}

// GET /api/a/borrowings?patron_id=&book_id=&status=  (librarian, filter opsional, paginated)
func (bc *BorrowingController) BorrowRecords(c *fiber.Ctx) error {
	p := helpers.ParseFiber(c, "borrowed_at", "desc", helpers.AdminOpts)

	tx := bc.DB.Model(&model.BorrowRecordModel{})
	if v := c.Query("patron_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helpers.Error(c, fiber.StatusBadRequest, "patron_id tidak valid")
		}
		tx = tx.Where("borrow_patron_id = ?", id)
	}
	if v := c.Query("book_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helpers.Error(c, fiber.StatusBadRequest, "book_id tidak valid")
		}
		tx = tx.Where("borrow_book_id = ?", id)
	}
	if v := c.Query("status"); v != "" {
		cond, args, err := service.StatusCondition(strings.ToUpper(v), time.Now().UTC())
		if err != nil {
			return helpers.Error(c, fiber.StatusBadRequest, "status harus ACTIVE, RETURNED, atau OVERDUE")
		}
		tx = tx.Where(cond, args...)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helpers.Error(c, fiber.StatusServiceUnavailable, "DB error")
	}

	orderExpr, err := p.SafeOrderExpr(map[string]string{
		"borrowed_at": "borrow_borrowed_at",
		"due_date":    "borrow_due_date",
	}, "borrowed_at")
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Sort error")
	}

	var records []model.BorrowRecordModel
	if err := tx.Order(orderExpr).Limit(p.Limit()).Offset(p.Offset()).Find(&records).Error; err != nil {
		return helpers.Error(c, fiber.StatusServiceUnavailable, "DB error")
	}

	now := time.Now().UTC()
	items := make([]dto.BorrowRecordResponse, 0, len(records))
	for _, r := range records {
		items = append(items, dto.ToBorrowRecordResponse(r, now))
	}

	return helpers.Success(c, "OK", fiber.Map{
		"items": items,
		"meta":  helpers.BuildMeta(total, p),
	})
}
