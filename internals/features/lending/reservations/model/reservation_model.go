package model

import (
	"time"

	"github.com/google/uuid"
)

/* Selaras dengan ENUM reservation_status di PostgreSQL */
const (
	ReservationStatusPending   = "PENDING"
	ReservationStatusFulfilled = "FULFILLED"
	ReservationStatusCancelled = "CANCELLED"
)

// ReservationModel antrean reservasi sebuah buku. Reservasi PENDING yang
// belum kedaluwarsa memblokir perpanjangan pinjaman buku itu.
type ReservationModel struct {
	ReservationID       uuid.UUID `gorm:"column:reservation_id;type:uuid;default:gen_random_uuid();primaryKey" json:"reservation_id"`
	ReservationBookID   uuid.UUID `gorm:"column:reservation_book_id;type:uuid;not null;index" json:"book_id"`
	ReservationPatronID uuid.UUID `gorm:"column:reservation_patron_id;type:uuid;not null;index" json:"patron_id"`

	ReservationStatus string    `gorm:"column:reservation_status;type:varchar(10);not null;default:'PENDING'" json:"status"`
	ReservedAt        time.Time `gorm:"column:reservation_reserved_at;type:timestamptz;not null" json:"reserved_at"`
	ExpiresAt         time.Time `gorm:"column:reservation_expires_at;type:timestamptz;not null" json:"expires_at"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ReservationModel) TableName() string {
	return "reservations"
}

// Active: PENDING dan belum lewat masa berlakunya.
func (r ReservationModel) Active(now time.Time) bool {
	return r.ReservationStatus == ReservationStatusPending && now.Before(r.ExpiresAt)
}
