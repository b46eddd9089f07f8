package model

import (
	"time"

	"github.com/google/uuid"
)

/* Selaras dengan ENUM copy_status di PostgreSQL */
const (
	CopyStatusAvailable   = "AVAILABLE"
	CopyStatusBorrowed    = "BORROWED"
	CopyStatusLost        = "LOST"
	CopyStatusMaintenance = "MAINTENANCE"
)

var AllowedCopyStatuses = map[string]bool{
	CopyStatusAvailable:   true,
	CopyStatusBorrowed:    true,
	CopyStatusLost:        true,
	CopyStatusMaintenance: true,
}

// BookCopyModel satu eksemplar fisik dari sebuah buku.
// copy_status AVAILABLE ⟺ tidak ada borrow record aktif yang menunjuk copy ini;
// hanya borrowBook/returnBook yang boleh menulis BORROWED/AVAILABLE.
type BookCopyModel struct {
	CopyID     uuid.UUID `gorm:"column:copy_id;type:uuid;default:gen_random_uuid();primaryKey" json:"copy_id"`
	CopyBookID uuid.UUID `gorm:"column:copy_book_id;type:uuid;not null;index" json:"book_id"`
	CopyStatus string    `gorm:"column:copy_status;type:varchar(20);not null;default:'AVAILABLE'" json:"status"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (BookCopyModel) TableName() string {
	return "book_copies"
}
