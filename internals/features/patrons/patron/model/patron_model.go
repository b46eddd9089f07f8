package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PatronModel merepresentasikan tabel patrons di database
type PatronModel struct {
	PatronID uuid.UUID `gorm:"column:patron_id;type:uuid;default:gen_random_uuid();primaryKey" json:"patron_id"`

	PatronFirstName   string  `gorm:"column:patron_first_name;size:50;not null" json:"first_name"`
	PatronLastName    string  `gorm:"column:patron_last_name;size:50;not null" json:"last_name"`
	PatronPhoneNumber string  `gorm:"column:patron_phone_number;size:20" json:"phone_number"`
	PatronEmail       string  `gorm:"column:patron_email;size:255;unique;not null" json:"email"`
	PatronPassword    string  `gorm:"column:patron_password;not null" json:"-"`
	PatronGoogleID    *string `gorm:"column:patron_google_id;size:255;unique" json:"google_id,omitempty"`

	PatronRole string `gorm:"column:patron_role;type:varchar(20);not null;default:'patron'" json:"-"`
	IsActive   bool   `gorm:"column:patron_is_active;not null;default:true" json:"is_active"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (PatronModel) TableName() string {
	return "patrons"
}

func (p *PatronModel) FullName() string {
	return p.PatronFirstName + " " + p.PatronLastName
}
