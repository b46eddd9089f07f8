package dto

import (
	"time"

	"github.com/google/uuid"

	"perpusku_backend/internals/features/lending/borrowings/model"
)

type BorrowBookRequest struct {
	BookID string `json:"book_id" validate:"required,uuid"`
}

type BorrowRecordResponse struct {
	BorrowID        uuid.UUID  `json:"borrow_id"`
	BookID          uuid.UUID  `json:"book_id"`
	CopyID          uuid.UUID  `json:"copy_id"`
	PatronID        uuid.UUID  `json:"patron_id"`
	BorrowedAt      time.Time  `json:"borrowed_at"`
	DueDate         time.Time  `json:"due_date"`
	ReturnedAt      *time.Time `json:"returned_at,omitempty"`
	RenewalCount    int        `json:"renewal_count"`
	PreviousDueDate *time.Time `json:"previous_due_date,omitempty"`

	// status efektif saat response dibuat (OVERDUE diturunkan, bukan dibaca mentah)
	Status string `json:"status"`
}

func ToBorrowRecordResponse(r model.BorrowRecordModel, now time.Time) BorrowRecordResponse {
	return BorrowRecordResponse{
		BorrowID:        r.BorrowID,
		BookID:          r.BorrowBookID,
		CopyID:          r.BorrowCopyID,
		PatronID:        r.BorrowPatronID,
		BorrowedAt:      r.BorrowedAt,
		DueDate:         r.DueDate,
		ReturnedAt:      r.ReturnedAt,
		RenewalCount:    r.RenewalCount,
		PreviousDueDate: r.PreviousDueDate,
		Status:          r.EffectiveStatus(now),
	}
}
