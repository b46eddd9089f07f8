package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookModel merepresentasikan tabel books (judul katalog, bukan eksemplar fisik)
type BookModel struct {
	BookID uuid.UUID `gorm:"column:book_id;type:uuid;default:gen_random_uuid();primaryKey" json:"book_id"`

	BookTitle         string     `gorm:"column:book_title;type:varchar(255);not null" json:"title"`
	BookAuthorName    string     `gorm:"column:book_author_name;type:varchar(150);not null" json:"author_name"`
	BookDatePublished *time.Time `gorm:"column:book_date_published;type:date" json:"date_published,omitempty"`
	BookDescription   string     `gorm:"column:book_description;type:text" json:"description"`

	// URL publik di bucket storage; hanya string URL yang disimpan
	BookImageURL *string `gorm:"column:book_image_url;type:text" json:"image_url,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (BookModel) TableName() string {
	return "books"
}
