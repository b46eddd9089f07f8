package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	MembershipLevelBronze = "BRONZE"
	MembershipLevelSilver = "SILVER"
	MembershipLevelGold   = "GOLD"
)

type MembershipModel struct {
	MembershipID       uuid.UUID `gorm:"column:membership_id;type:uuid;default:gen_random_uuid();primaryKey" json:"membership_id"`
	MembershipPatronID uuid.UUID `gorm:"column:membership_patron_id;type:uuid;not null;unique" json:"patron_id"`

	MembershipLevel     string    `gorm:"column:membership_level;type:varchar(10);not null;default:'BRONZE'" json:"level"`
	MembershipStartedAt time.Time `gorm:"column:membership_started_at;type:timestamptz;not null" json:"started_at"`
	MembershipExpiresAt time.Time `gorm:"column:membership_expires_at;type:timestamptz;not null" json:"expires_at"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (MembershipModel) TableName() string {
	return "memberships"
}
