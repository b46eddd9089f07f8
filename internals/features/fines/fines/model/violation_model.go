package model

import (
	"time"

	"github.com/google/uuid"
)

/* Selaras dengan ENUM violation_type & violation_status di PostgreSQL */
const (
	ViolationLateReturn  = "LATE_RETURN"
	ViolationDamagedItem = "DAMAGED_ITEM"
	ViolationLostItem    = "LOST_ITEM"

	ViolationOngoing  = "ONGOING"
	ViolationResolved = "RESOLVED"
)

var AllowedViolationTypes = []string{ViolationLateReturn, ViolationDamagedItem, ViolationLostItem}

// ViolationRecordModel mencatat pelanggaran patron. Satu denda menunjuk tepat
// satu violation; violation di-resolve saat dendanya dihapus (lunas).
type ViolationRecordModel struct {
	ViolationID       uuid.UUID `gorm:"column:violation_id;type:uuid;default:gen_random_uuid();primaryKey" json:"violation_id"`
	ViolationPatronID uuid.UUID `gorm:"column:violation_patron_id;type:uuid;not null;index" json:"patron_id"`

	ViolationType   string `gorm:"column:violation_type;type:varchar(20);not null" json:"violation_type"`
	ViolationInfo   string `gorm:"column:violation_info;type:text" json:"violation_info"`
	ViolationStatus string `gorm:"column:violation_status;type:varchar(10);not null;default:'ONGOING'" json:"violation_status"`

	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	ResolvedAt *time.Time `gorm:"column:resolved_at" json:"resolved_at,omitempty"`
}

func (ViolationRecordModel) TableName() string {
	return "violations"
}
