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
	borrowModel "perpusku_backend/internals/features/lending/borrowings/model"
	reservationService "perpusku_backend/internals/features/lending/reservations/service"
	patronModel "perpusku_backend/internals/features/patrons/patron/model"
)

/* ==========================
   Domain errors
========================== */

var (
	ErrNoCopyAvailable = errors.New("tidak ada eksemplar tersedia")
	ErrDuplicateBorrow = errors.New("patron masih meminjam buku ini")
	ErrAlreadyReturned = errors.New("record sudah dikembalikan")
	ErrRecordNotFound  = errors.New("borrow record tidak ditemukan")
	ErrPatronSuspended = errors.New("status patron tidak aktif")
	ErrMaxRenewals     = errors.New("batas perpanjangan tercapai")
	ErrItemReserved    = errors.New("buku sedang direservasi patron lain")

	ErrInvalidStatusFilter = errors.New("filter status tidak dikenal")
)

/* ==========================
   Policy (pure)
========================== */

// DueDateFrom dueDate = borrowedAt + masa pinjam.
func DueDateFrom(borrowedAt time.Time, p configs.LendingPolicy) time.Time {
	return borrowedAt.Add(p.LoanPeriod())
}

// DaysLate ceil selisih hari; 0 kalau tidak telat.
func DaysLate(dueDate, returnedAt time.Time) int {
	if !returnedAt.After(dueDate) {
		return 0
	}
	return int(math.Ceil(returnedAt.Sub(dueDate).Hours() / 24))
}

// CanRenew validasi aturan perpanjangan tanpa menyentuh DB.
func CanRenew(r borrowModel.BorrowRecordModel, p configs.LendingPolicy) error {
	if r.ReturnedAt != nil {
		return ErrAlreadyReturned
	}
	if r.RenewalCount >= p.MaxRenewals {
		return ErrMaxRenewals
	}
	return nil
}

// StatusCondition menerjemahkan filter status listing ke kondisi SQL terhadap
// status EFEKTIF: OVERDUE dihitung dari returned_at + due_date, bukan dibaca
// dari kolom yang bisa basi.
func StatusCondition(status string, now time.Time) (string, []interface{}, error) {
	switch status {
	case borrowModel.BorrowStatusReturned:
		return "borrow_returned_at IS NOT NULL", nil, nil
	case borrowModel.BorrowStatusActive:
		return "borrow_returned_at IS NULL AND borrow_due_date >= ?", []interface{}{now}, nil
	case borrowModel.BorrowStatusOverdue:
		return "borrow_returned_at IS NULL AND borrow_due_date < ?", []interface{}{now}, nil
	default:
		return "", nil, ErrInvalidStatusFilter
	}
}

func gormLockingClause() clause.Locking {
	return clause.Locking{Strength: "UPDATE"}
}

/* ==========================
   Transaksi peminjaman
========================== */

// BorrowBook klaim satu eksemplar AVAILABLE dan buat record, semua dalam satu transaksi.
// Klaim copy adalah SATU statement UPDATE kondisional: dua request konkuren untuk
// copy terakhir tidak mungkin dua-duanya dapat baris; yang kalah menerima
// ErrNoCopyAvailable, bukan error transport.
func BorrowBook(db *gorm.DB, bookID, patronID uuid.UUID, p configs.LendingPolicy) (*borrowModel.BorrowRecordModel, error) {
	var record *borrowModel.BorrowRecordModel

	err := db.Transaction(func(tx *gorm.DB) error {
		// 1) patron harus ACTIVE
		var status patronModel.PatronStatusModel
		if err := tx.First(&status, "patron_status_patron_id = ?", patronID).Error; err != nil {
			return err
		}
		if status.Status != patronModel.PatronStatusActive {
			return ErrPatronSuspended
		}

		// 2) duplikat: maksimal satu pinjaman belum-kembali per (patron, buku)
		var n int64
		if err := tx.Model(&borrowModel.BorrowRecordModel{}).
			Where("borrow_patron_id = ? AND borrow_book_id = ? AND borrow_returned_at IS NULL", patronID, bookID).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrDuplicateBorrow
		}

		// 3) klaim atomik: AVAILABLE → BORROWED dalam satu statement
		var claimedID uuid.UUID
		res := tx.Raw(`
			UPDATE book_copies
			SET copy_status = ?, updated_at = NOW()
			WHERE copy_id = (
				SELECT copy_id FROM book_copies
				WHERE copy_book_id = ? AND copy_status = ?
				ORDER BY copy_id
				LIMIT 1
				FOR UPDATE SKIP LOCKED
			)
			RETURNING copy_id
		`, bookModel.CopyStatusBorrowed, bookID, bookModel.CopyStatusAvailable).Scan(&claimedID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 || claimedID == uuid.Nil {
			return ErrNoCopyAvailable
		}

		// 4) buat record
		now := time.Now().UTC()
		rec := borrowModel.BorrowRecordModel{
			BorrowBookID:   bookID,
			BorrowCopyID:   claimedID,
			BorrowPatronID: patronID,
			BorrowedAt:     now,
			DueDate:        DueDateFrom(now, p),
			BorrowStatus:   borrowModel.BorrowStatusActive,
		}
		if err := tx.Create(&rec).Error; err != nil {
			return err
		}
		record = &rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// ReturnResult hasil pengembalian; DaysLate > 0 berarti telat dan layak didenda.
type ReturnResult struct {
	Record   borrowModel.BorrowRecordModel
	DaysLate int
}

// ReturnBook kembalikan record + bebaskan eksemplar, satu transaksi.
// Pengembalian kedua atas record yang sama = ErrAlreadyReturned (pilihan
// eksplisit, konsisten, bukan no-op diam-diam).
func ReturnBook(db *gorm.DB, recordID uuid.UUID) (*ReturnResult, error) {
	var result *ReturnResult

	err := db.Transaction(func(tx *gorm.DB) error {
		var rec borrowModel.BorrowRecordModel
		if err := tx.
			Clauses(gormLockingClause()).
			First(&rec, "borrow_id = ?", recordID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRecordNotFound
			}
			return err
		}
		if rec.ReturnedAt != nil {
			return ErrAlreadyReturned
		}

		now := time.Now().UTC()
		if err := tx.Model(&rec).Updates(map[string]interface{}{
			"borrow_returned_at": now,
			"borrow_status":      borrowModel.BorrowStatusReturned,
		}).Error; err != nil {
			return err
		}

		// eksemplar kembali AVAILABLE; guard copy_status=BORROWED menjaga
		// supaya pengembalian tidak menimpa status LOST/MAINTENANCE
		if err := tx.Model(&bookModel.BookCopyModel{}).
			Where("copy_id = ? AND copy_status = ?", rec.BorrowCopyID, bookModel.CopyStatusBorrowed).
			Update("copy_status", bookModel.CopyStatusAvailable).Error; err != nil {
			return err
		}

		rec.ReturnedAt = &now
		rec.BorrowStatus = borrowModel.BorrowStatusReturned
		result = &ReturnResult{
			Record:   rec,
			DaysLate: DaysLate(rec.DueDate, now),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RenewLoan perpanjang masa pinjam (fitur layanan peminjaman lama).
func RenewLoan(db *gorm.DB, recordID uuid.UUID, p configs.LendingPolicy) (*borrowModel.BorrowRecordModel, error) {
	var record *borrowModel.BorrowRecordModel

	err := db.Transaction(func(tx *gorm.DB) error {
		var rec borrowModel.BorrowRecordModel
		if err := tx.
			Clauses(gormLockingClause()).
			First(&rec, "borrow_id = ?", recordID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRecordNotFound
			}
			return err
		}

		if err := CanRenew(rec, p); err != nil {
			return err
		}

		// buku yang sedang direservasi patron lain tidak boleh diperpanjang
		reserved, err := reservationService.HasActiveReservations(tx, rec.BorrowBookID)
		if err != nil {
			return err
		}
		if reserved {
			return ErrItemReserved
		}

		now := time.Now().UTC()
		prev := rec.DueDate
		newDue := now.Add(p.LoanPeriod())

		if err := tx.Model(&rec).Updates(map[string]interface{}{
			"borrow_due_date":          newDue,
			"borrow_previous_due_date": prev,
			"borrow_renewal_count":     rec.RenewalCount + 1,
			"borrow_status":            borrowModel.BorrowStatusActive,
		}).Error; err != nil {
			return err
		}

		rec.PreviousDueDate = &prev
		rec.DueDate = newDue
		rec.RenewalCount++
		rec.BorrowStatus = borrowModel.BorrowStatusActive
		record = &rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// MarkOverdueRecords materialisasi status OVERDUE untuk record yang lewat due date.
// Opsional (status efektif selalu dihitung saat read); dipanggil opportunistik
// dari query listing supaya kolom di DB tidak menyesatkan pembaca langsung.
func MarkOverdueRecords(db *gorm.DB) {
	res := db.Model(&borrowModel.BorrowRecordModel{}).
		Where("borrow_returned_at IS NULL AND borrow_due_date < NOW() AND borrow_status = ?", borrowModel.BorrowStatusActive).
		Update("borrow_status", borrowModel.BorrowStatusOverdue)
	if res.Error != nil {
		log.Println("[WARNING] MarkOverdueRecords:", res.Error)
	}
}
