package model

import (
	"time"

	"github.com/google/uuid"
)

/* Selaras dengan ENUM borrow_status di PostgreSQL */
const (
	BorrowStatusActive   = "ACTIVE"
	BorrowStatusReturned = "RETURNED"
	BorrowStatusOverdue  = "OVERDUE"
)

// BorrowRecordModel satu transaksi peminjaman, dari checkout sampai kembali.
// Tidak pernah dihapus (audit trail). OVERDUE diturunkan saat dibaca:
// record belum kembali + due_date lewat ⇒ OVERDUE, apa pun isi kolom status.
type BorrowRecordModel struct {
	BorrowID uuid.UUID `gorm:"column:borrow_id;type:uuid;default:gen_random_uuid();primaryKey" json:"borrow_id"`

	BorrowBookID   uuid.UUID `gorm:"column:borrow_book_id;type:uuid;not null;index" json:"book_id"`
	BorrowCopyID   uuid.UUID `gorm:"column:borrow_copy_id;type:uuid;not null;index" json:"copy_id"`
	BorrowPatronID uuid.UUID `gorm:"column:borrow_patron_id;type:uuid;not null;index" json:"patron_id"`

	BorrowedAt      time.Time  `gorm:"column:borrow_borrowed_at;type:timestamptz;not null" json:"borrowed_at"`
	DueDate         time.Time  `gorm:"column:borrow_due_date;type:timestamptz;not null" json:"due_date"`
	ReturnedAt      *time.Time `gorm:"column:borrow_returned_at;type:timestamptz" json:"returned_at,omitempty"`
	RenewalCount    int        `gorm:"column:borrow_renewal_count;not null;default:0" json:"renewal_count"`
	PreviousDueDate *time.Time `gorm:"column:borrow_previous_due_date;type:timestamptz" json:"previous_due_date,omitempty"`

	BorrowStatus string `gorm:"column:borrow_status;type:varchar(10);not null;default:'ACTIVE'" json:"status"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (BorrowRecordModel) TableName() string {
	return "borrow_records"
}

// EffectiveStatus status sebenarnya pada saat now (OVERDUE dihitung, tidak disimpan).
func (r BorrowRecordModel) EffectiveStatus(now time.Time) string {
	if r.ReturnedAt != nil {
		return BorrowStatusReturned
	}
	if now.After(r.DueDate) {
		return BorrowStatusOverdue
	}
	return BorrowStatusActive
}
