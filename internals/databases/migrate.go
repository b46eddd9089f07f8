package database

import (
	"log"

	"gorm.io/gorm"

	authModel "perpusku_backend/internals/features/patrons/auth/model"
	patronModel "perpusku_backend/internals/features/patrons/patron/model"

	bookModel "perpusku_backend/internals/features/books/books/model"
	fineModel "perpusku_backend/internals/features/fines/fines/model"
	borrowModel "perpusku_backend/internals/features/lending/borrowings/model"
	reservationModel "perpusku_backend/internals/features/lending/reservations/model"
)

// Migrate menjalankan AutoMigrate + index yang tidak bisa dideklarasikan lewat tag GORM.
func Migrate(db *gorm.DB) {
	log.Println("[INFO] Menjalankan migrasi skema...")

	if err := db.AutoMigrate(
		&patronModel.PatronModel{},
		&patronModel.PatronStatusModel{},
		&patronModel.MembershipModel{},
		&authModel.TokenBlacklistModel{},
		&authModel.RefreshTokenModel{},
		&bookModel.BookModel{},
		&bookModel.BookCopyModel{},
		&borrowModel.BorrowRecordModel{},
		&reservationModel.ReservationModel{},
		&fineModel.ViolationRecordModel{},
		&fineModel.FineModel{},
		&fineModel.PaymentEventModel{},
	); err != nil {
		log.Fatalf("❌ Gagal migrasi: %v", err)
	}

	// Satu pinjaman aktif per (patron, buku). Partial index, backstop untuk
	// pengecekan duplikat di transaksi borrowBook.
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uq_borrow_active_per_patron_book
		ON borrow_records (borrow_patron_id, borrow_book_id)
		WHERE borrow_returned_at IS NULL
	`).Error; err != nil {
		log.Printf("[ERROR] index uq_borrow_active_per_patron_book: %v", err)
	}

	// Satu reservasi PENDING per (patron, buku); guard perpanjangan membaca
	// reservasi PENDING per buku.
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uq_reservation_pending_per_patron_book
		ON reservations (reservation_patron_id, reservation_book_id)
		WHERE reservation_status = 'PENDING'
	`).Error; err != nil {
		log.Printf("[ERROR] index uq_reservation_pending_per_patron_book: %v", err)
	}
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_reservations_book_status
		ON reservations (reservation_book_id, reservation_status)
	`).Error; err != nil {
		log.Printf("[ERROR] index idx_reservations_book_status: %v", err)
	}

	// Hot path klaim copy: cari copy AVAILABLE per buku.
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_book_copies_book_status
		ON book_copies (copy_book_id, copy_status)
	`).Error; err != nil {
		log.Printf("[ERROR] index idx_book_copies_book_status: %v", err)
	}

	log.Println("✅ Migrasi selesai.")
}
