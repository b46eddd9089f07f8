package dto

import (
	"time"

	"github.com/google/uuid"

	"perpusku_backend/internals/features/lending/reservations/model"
)

type ReserveBookRequest struct {
	BookID string `json:"book_id" validate:"required,uuid"`
}

type ReservationResponse struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	BookID        uuid.UUID `json:"book_id"`
	PatronID      uuid.UUID `json:"patron_id"`
	Status        string    `json:"status"`
	ReservedAt    time.Time `json:"reserved_at"`
	ExpiresAt     time.Time `json:"expires_at"`
}

func ToReservationResponse(r model.ReservationModel) ReservationResponse {
	return ReservationResponse{
		ReservationID: r.ReservationID,
		BookID:        r.ReservationBookID,
		PatronID:      r.ReservationPatronID,
		Status:        r.ReservationStatus,
		ReservedAt:    r.ReservedAt,
		ExpiresAt:     r.ExpiresAt,
	}
}
