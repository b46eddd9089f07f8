package dto

import (
	"time"

	"github.com/google/uuid"

	"perpusku_backend/internals/features/books/books/model"
)

type CreateBookRequest struct {
	Title         string `json:"title" form:"title" validate:"required,min=1,max=255"`
	AuthorName    string `json:"author_name" form:"author_name" validate:"required,min=1,max=150"`
	DatePublished string `json:"date_published" form:"date_published" validate:"omitempty,datetime=2006-01-02"`
	Description   string `json:"description" form:"description"`

	// jumlah eksemplar awal yang langsung dikatalogkan
	CopyCount int `json:"copy_count" form:"copy_count" validate:"omitempty,gte=1,lte=100"`
}

type UpdateBookRequest struct {
	Title         *string `json:"title" form:"title" validate:"omitempty,min=1,max=255"`
	AuthorName    *string `json:"author_name" form:"author_name" validate:"omitempty,min=1,max=150"`
	DatePublished *string `json:"date_published" form:"date_published" validate:"omitempty,datetime=2006-01-02"`
	Description   *string `json:"description" form:"description"`
}

type SetCopyStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=AVAILABLE LOST MAINTENANCE"`
}

type BookResponse struct {
	BookID        uuid.UUID `json:"book_id"`
	Title         string    `json:"title"`
	AuthorName    string    `json:"author_name"`
	DatePublished *string   `json:"date_published,omitempty"`
	Description   string    `json:"description"`
	ImageURL      *string   `json:"image_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`

	// diisi di listing: jumlah eksemplar tersedia
	AvailableCopies *int64 `json:"available_copies,omitempty"`
}

type BookCopyResponse struct {
	CopyID uuid.UUID `json:"copy_id"`
	BookID uuid.UUID `json:"book_id"`
	Status string    `json:"status"`
}

func ToBookResponse(b model.BookModel) BookResponse {
	resp := BookResponse{
		BookID:      b.BookID,
		Title:       b.BookTitle,
		AuthorName:  b.BookAuthorName,
		Description: b.BookDescription,
		ImageURL:    b.BookImageURL,
		CreatedAt:   b.CreatedAt,
	}
	if b.BookDatePublished != nil {
		s := b.BookDatePublished.Format("2006-01-02")
		resp.DatePublished = &s
	}
	return resp
}

func ToBookCopyResponse(cp model.BookCopyModel) BookCopyResponse {
	return BookCopyResponse{
		CopyID: cp.CopyID,
		BookID: cp.CopyBookID,
		Status: cp.CopyStatus,
	}
}
