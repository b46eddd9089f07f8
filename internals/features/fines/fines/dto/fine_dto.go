package dto

import (
	"time"

	"github.com/google/uuid"

	"perpusku_backend/internals/features/fines/fines/model"
)

// CreateFineRequest: denda manual oleh librarian (mis. buku rusak/hilang).
type CreateFineRequest struct {
	PatronID      string  `json:"patron_id" validate:"required,uuid"`
	BookID        string  `json:"book_id" validate:"required,uuid"`
	DaysLate      int     `json:"days_late" validate:"required,min=1"`
	RatePerDay    float64 `json:"rate_per_day" validate:"omitempty,gt=0"`
	ViolationType string  `json:"violation_type" validate:"required,oneof=LATE_RETURN DAMAGED_ITEM LOST_ITEM"`
	ViolationInfo string  `json:"violation_info" validate:"omitempty,max=500"`
}

type FineResponse struct {
	FineID        uuid.UUID `json:"fine_id"`
	PatronID      uuid.UUID `json:"patron_id"`
	BookID        uuid.UUID `json:"book_id"`
	ViolationID   uuid.UUID `json:"violation_id"`
	ViolationType string    `json:"violation_type"`
	DaysLate      int       `json:"days_late"`
	RatePerDay    float64   `json:"rate_per_day"`
	Amount        float64   `json:"amount"`
	CreatedAt     time.Time `json:"created_at"`
}

func ToFineResponse(f model.FineModel, violationType string) FineResponse {
	return FineResponse{
		FineID:        f.FineID,
		PatronID:      f.FinePatronID,
		BookID:        f.FineBookID,
		ViolationID:   f.FineViolationID,
		ViolationType: violationType,
		DaysLate:      f.DaysLate,
		RatePerDay:    f.RatePerDay,
		Amount:        f.Amount,
		CreatedAt:     f.CreatedAt,
	}
}
