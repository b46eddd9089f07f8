package model

import (
	"time"

	"github.com/google/uuid"
)

/* Selaras dengan ENUM patron_status di PostgreSQL */
const (
	PatronStatusActive    = "ACTIVE"
	PatronStatusSuspended = "SUSPENDED"
	PatronStatusBanned    = "BANNED"
)

// PatronStatusModel menyimpan agregat denda & peringatan per patron.
// unpaid_fees dan warning_count HANYA dimutasi lewat operasi denda
// (UPDATE atomik, bukan read-modify-write) supaya konsisten saat konkuren.
type PatronStatusModel struct {
	PatronStatusID       uuid.UUID `gorm:"column:patron_status_id;type:uuid;default:gen_random_uuid();primaryKey" json:"patron_status_id"`
	PatronStatusPatronID uuid.UUID `gorm:"column:patron_status_patron_id;type:uuid;not null;unique" json:"patron_id"`

	UnpaidFees   float64 `gorm:"column:patron_status_unpaid_fees;type:numeric(12,2);not null;default:0" json:"unpaid_fees"`
	WarningCount int     `gorm:"column:patron_status_warning_count;not null;default:0" json:"warning_count"`
	Status       string  `gorm:"column:patron_status_status;type:varchar(20);not null;default:'ACTIVE'" json:"status"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PatronStatusModel) TableName() string {
	return "patron_statuses"
}
