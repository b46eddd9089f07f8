package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PaymentEventModel menyimpan setiap notifikasi webhook Midtrans apa adanya,
// supaya ada jejak audit walau status bukan settlement.
type PaymentEventModel struct {
	EventID      uuid.UUID      `gorm:"column:event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_id"`
	EventOrderID string         `gorm:"column:event_order_id;type:varchar(100);not null;index" json:"order_id"`
	EventFineID  uuid.UUID      `gorm:"column:event_fine_id;type:uuid;not null" json:"fine_id"`
	EventStatus  string         `gorm:"column:event_status;type:varchar(30);not null" json:"transaction_status"`
	EventPayload datatypes.JSON `gorm:"column:event_payload;type:jsonb" json:"payload"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PaymentEventModel) TableName() string {
	return "fine_payment_events"
}
