package model

import (
	"time"

	"github.com/google/uuid"
)

// FineModel: denda keterlambatan. Amount dihitung sekali saat dibuat
// (days_late × rate_per_day) dan tidak pernah diubah; pelunasan = hapus baris.
type FineModel struct {
	FineID          uuid.UUID `gorm:"column:fine_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fine_id"`
	FinePatronID    uuid.UUID `gorm:"column:fine_patron_id;type:uuid;not null;index" json:"patron_id"`
	FineBookID      uuid.UUID `gorm:"column:fine_book_id;type:uuid;not null" json:"book_id"`
	FineViolationID uuid.UUID `gorm:"column:fine_violation_id;type:uuid;not null" json:"violation_id"`

	DaysLate   int     `gorm:"column:fine_days_late;not null" json:"days_late"`
	RatePerDay float64 `gorm:"column:fine_rate_per_day;type:numeric(12,2);not null" json:"rate_per_day"`
	Amount     float64 `gorm:"column:fine_amount;type:numeric(12,2);not null" json:"amount"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (FineModel) TableName() string {
	return "fines"
}
