package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"perpusku_backend/internals/configs"
	bookModel "perpusku_backend/internals/features/books/books/model"
	"perpusku_backend/internals/features/lending/reservations/model"
	patronModel "perpusku_backend/internals/features/patrons/patron/model"
)

var (
	ErrReservationNotFound  = errors.New("reservation not found")
	ErrDuplicateReservation = errors.New("patron already has a pending reservation for this book")
	ErrPatronSuspended      = errors.New("patron is not active")
	ErrBookNotFound         = errors.New("book not found")
)

// ExpiryFrom masa berlaku reservasi: reservedAt + periode reservasi.
func ExpiryFrom(reservedAt time.Time, p configs.LendingPolicy) time.Time {
	return reservedAt.AddDate(0, 0, p.ReservationDays)
}

// ReserveBook membuat reservasi PENDING. Hanya patron ACTIVE; satu reservasi
// PENDING per (patron, buku).
func ReserveBook(db *gorm.DB, bookID, patronID uuid.UUID, p configs.LendingPolicy) (*model.ReservationModel, error) {
	var reservation model.ReservationModel

	err := db.Transaction(func(tx *gorm.DB) error {
		var status patronModel.PatronStatusModel
		if err := tx.First(&status, "patron_status_patron_id = ?", patronID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPatronSuspended
			}
			return err
		}
		if status.Status != patronModel.PatronStatusActive {
			return ErrPatronSuspended
		}

		var bookCount int64
		if err := tx.Model(&bookModel.BookModel{}).
			Where("book_id = ?", bookID).
			Count(&bookCount).Error; err != nil {
			return err
		}
		if bookCount == 0 {
			return ErrBookNotFound
		}

		now := time.Now().UTC()
		var pending int64
		if err := tx.Model(&model.ReservationModel{}).
			Where("reservation_patron_id = ? AND reservation_book_id = ? AND reservation_status = ? AND reservation_expires_at > ?",
				patronID, bookID, model.ReservationStatusPending, now).
			Count(&pending).Error; err != nil {
			return err
		}
		if pending > 0 {
			return ErrDuplicateReservation
		}

		reservation = model.ReservationModel{
			ReservationBookID:   bookID,
			ReservationPatronID: patronID,
			ReservationStatus:   model.ReservationStatusPending,
			ReservedAt:          now,
			ExpiresAt:           ExpiryFrom(now, p),
		}
		return tx.Create(&reservation).Error
	})
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// CancelReservation membatalkan reservasi PENDING milik patron.
func CancelReservation(db *gorm.DB, reservationID uuid.UUID) error {
	res := db.Model(&model.ReservationModel{}).
		Where("reservation_id = ? AND reservation_status = ?", reservationID, model.ReservationStatusPending).
		Update("reservation_status", model.ReservationStatusCancelled)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrReservationNotFound
	}
	return nil
}

// HasActiveReservations: ada reservasi PENDING yang belum kedaluwarsa untuk
// buku ini. Dipakai sebagai guard perpanjangan pinjaman.
func HasActiveReservations(db *gorm.DB, bookID uuid.UUID) (bool, error) {
	var n int64
	err := db.Model(&model.ReservationModel{}).
		Where("reservation_book_id = ? AND reservation_status = ? AND reservation_expires_at > ?",
			bookID, model.ReservationStatusPending, time.Now().UTC()).
		Count(&n).Error
	return n > 0, err
}

// ListByPatron reservasi milik satu patron, terbaru dulu.
func ListByPatron(db *gorm.DB, patronID uuid.UUID) ([]model.ReservationModel, error) {
	var items []model.ReservationModel
	err := db.
		Where("reservation_patron_id = ?", patronID).
		Order("reservation_reserved_at DESC").
		Find(&items).Error
	return items, err
}
