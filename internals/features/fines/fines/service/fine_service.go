package service

import (
	"errors"
	"log"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"perpusku_backend/internals/configs"
	bookModel "perpusku_backend/internals/features/books/books/model"
	"perpusku_backend/internals/features/fines/fines/dto"
	"perpusku_backend/internals/features/fines/fines/model"
)

const (
	ViolationLateReturn  = model.ViolationLateReturn
	ViolationDamagedItem = model.ViolationDamagedItem
	ViolationLostItem    = model.ViolationLostItem
)

var (
	ErrFineNotFound   = errors.New("fine not found")
	ErrPatronNotFound = errors.New("patron not found")
	ErrBookNotFound   = errors.New("book not found")
)

type CreateFineInput struct {
	PatronID      uuid.UUID
	BookID        uuid.UUID
	RatePerDay    float64
	DaysLate      int
	ViolationType string
	ViolationInfo string
}

// FineAmount: days_late × rate, dibulatkan 2 desimal (kolom numeric(12,2)).
func FineAmount(daysLate int, ratePerDay float64) float64 {
	return math.Round(float64(daysLate)*ratePerDay*100) / 100
}

// CreateFine membuat violation ONGOING + denda dalam satu transaksi, lalu
// menaikkan agregat patron_statuses lewat UPDATE atomik (bukan read-modify-write).
func CreateFine(db *gorm.DB, in CreateFineInput, policy configs.LendingPolicy) (*dto.FineResponse, error) {
	if in.RatePerDay <= 0 {
		in.RatePerDay = policy.FineRatePerDay
	}
	amount := FineAmount(in.DaysLate, in.RatePerDay)

	var resp dto.FineResponse
	err := db.Transaction(func(tx *gorm.DB) error {
		var bookCount int64
		if err := tx.Model(&bookModel.BookModel{}).
			Where("book_id = ?", in.BookID).
			Count(&bookCount).Error; err != nil {
			return err
		}
		if bookCount == 0 {
			return ErrBookNotFound
		}

		// per_violation_type butuh tahu apakah tipe ini pernah tercatat,
		// dicek sebelum violation baru masuk
		newType := false
		if policy.WarningPolicy == configs.WarningPerViolationType {
			var n int64
			if err := tx.Model(&model.ViolationRecordModel{}).
				Where("violation_patron_id = ? AND violation_type = ?", in.PatronID, in.ViolationType).
				Count(&n).Error; err != nil {
				return err
			}
			newType = n == 0
		}

		violation := model.ViolationRecordModel{
			ViolationPatronID: in.PatronID,
			ViolationType:     in.ViolationType,
			ViolationInfo:     in.ViolationInfo,
			ViolationStatus:   model.ViolationOngoing,
		}
		if err := tx.Create(&violation).Error; err != nil {
			return err
		}

		fine := model.FineModel{
			FinePatronID:    in.PatronID,
			FineBookID:      in.BookID,
			FineViolationID: violation.ViolationID,
			DaysLate:        in.DaysLate,
			RatePerDay:      in.RatePerDay,
			Amount:          amount,
		}
		if err := tx.Create(&fine).Error; err != nil {
			return err
		}

		if err := applyFineCounters(tx, in.PatronID, amount, in.ViolationType, newType, policy); err != nil {
			return err
		}

		resp = dto.ToFineResponse(fine, violation.ViolationType)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// applyFineCounters: unpaid_fees selalu naik sebesar amount; warning_count
// mengikuti kebijakan yang dipilih. Semua dalam satu UPDATE supaya aman konkuren.
// UPDATE yang tidak mengenai baris berarti patron tidak dikenal; transaksi
// harus gagal supaya denda tidak tercipta tanpa agregat yang ikut naik.
func applyFineCounters(tx *gorm.DB, patronID uuid.UUID, amount float64, violationType string, newType bool, policy configs.LendingPolicy) error {
	var res *gorm.DB

	switch policy.WarningPolicy {
	case configs.WarningThreshold:
		// warning bertambah setiap tunggakan melewati kelipatan threshold;
		// RHS UPDATE di Postgres membaca nilai lama, jadi FLOOR-nya konsisten
		res = tx.Exec(`
			UPDATE patron_statuses
			SET patron_status_warning_count = patron_status_warning_count
				+ (FLOOR((patron_status_unpaid_fees + ?) / ?) - FLOOR(patron_status_unpaid_fees / ?))::int,
			    patron_status_unpaid_fees = patron_status_unpaid_fees + ?,
			    updated_at = NOW()
			WHERE patron_status_patron_id = ?`,
			amount, policy.WarningThreshold, policy.WarningThreshold, amount, patronID)

	case configs.WarningPerViolationType:
		inc := 0
		if newType {
			inc = 1
		}
		res = tx.Exec(`
			UPDATE patron_statuses
			SET patron_status_unpaid_fees = patron_status_unpaid_fees + ?,
			    patron_status_warning_count = patron_status_warning_count + ?,
			    updated_at = NOW()
			WHERE patron_status_patron_id = ?`,
			amount, inc, patronID)

	default: // per_fine
		res = tx.Exec(`
			UPDATE patron_statuses
			SET patron_status_unpaid_fees = patron_status_unpaid_fees + ?,
			    patron_status_warning_count = patron_status_warning_count + 1,
			    updated_at = NOW()
			WHERE patron_status_patron_id = ?`,
			amount, patronID)
	}

	return ensureCounterRowTouched(res)
}

// ensureCounterRowTouched menerjemahkan hasil UPDATE agregat: nol baris
// berarti patron_statuses untuk patron itu tidak ada.
func ensureCounterRowTouched(res *gorm.DB) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPatronNotFound
	}
	return nil
}

// DeleteFine menghapus denda (lunas/dibatalkan), menurunkan unpaid_fees persis
// sebesar amount denda itu, dan me-resolve violation-nya. warning_count tidak
// pernah turun.
func DeleteFine(db *gorm.DB, fineID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var fine model.FineModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&fine, "fine_id = ?", fineID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFineNotFound
			}
			return err
		}

		if err := tx.Delete(&model.FineModel{}, "fine_id = ?", fineID).Error; err != nil {
			return err
		}

		if err := ensureCounterRowTouched(tx.Exec(`
			UPDATE patron_statuses
			SET patron_status_unpaid_fees = GREATEST(patron_status_unpaid_fees - ?, 0),
			    updated_at = NOW()
			WHERE patron_status_patron_id = ?`,
			fine.Amount, fine.FinePatronID)); err != nil {
			return err
		}

		now := time.Now().UTC()
		if err := tx.Model(&model.ViolationRecordModel{}).
			Where("violation_id = ?", fine.FineViolationID).
			Updates(map[string]interface{}{
				"violation_status": model.ViolationResolved,
				"resolved_at":      now,
			}).Error; err != nil {
			return err
		}

		log.Printf("[INFO] Denda %s dihapus, unpaid_fees patron %s turun %.2f", fineID, fine.FinePatronID, fine.Amount)
		return nil
	})
}

// ListFines: semua denda aktif milik satu patron, terbaru dulu, dengan tipe violation-nya.
func ListFines(db *gorm.DB, patronID uuid.UUID) ([]dto.FineResponse, error) {
	type row struct {
		model.FineModel
		ViolationType string `gorm:"column:violation_type"`
	}

	var rows []row
	if err := db.Table("fines").
		Select("fines.*, violations.violation_type").
		Joins("LEFT JOIN violations ON violations.violation_id = fines.fine_violation_id").
		Where("fines.fine_patron_id = ?", patronID).
		Order("fines.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]dto.FineResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.ToFineResponse(r.FineModel, r.ViolationType))
	}
	return items, nil
}

// GetFine mengambil satu denda beserta tipe violation-nya.
func GetFine(db *gorm.DB, fineID uuid.UUID) (*dto.FineResponse, error) {
	var fine model.FineModel
	if err := db.First(&fine, "fine_id = ?", fineID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFineNotFound
		}
		return nil, err
	}

	var violation model.ViolationRecordModel
	if err := db.First(&violation, "violation_id = ?", fine.FineViolationID).Error; err != nil {
		return nil, err
	}

	resp := dto.ToFineResponse(fine, violation.ViolationType)
	return &resp, nil
}
