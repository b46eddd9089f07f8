package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveStatus(t *testing.T) {
	due := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	returned := due.Add(-24 * time.Hour)

	t.Run("aktif sebelum due date", func(t *testing.T) {
		r := BorrowRecordModel{DueDate: due, BorrowStatus: BorrowStatusActive}
		assert.Equal(t, BorrowStatusActive, r.EffectiveStatus(due.Add(-time.Hour)))
	})

	t.Run("overdue dihitung saat dibaca, bukan dari kolom", func(t *testing.T) {
		r := BorrowRecordModel{DueDate: due, BorrowStatus: BorrowStatusActive}
		assert.Equal(t, BorrowStatusOverdue, r.EffectiveStatus(due.Add(time.Hour)))
	})

	t.Run("returned menang atas overdue", func(t *testing.T) {
		r := BorrowRecordModel{DueDate: due, ReturnedAt: &returned, BorrowStatus: BorrowStatusReturned}
		assert.Equal(t, BorrowStatusReturned, r.EffectiveStatus(due.Add(48*time.Hour)))
	})

	t.Run("kolom status basi tidak dipercaya", func(t *testing.T) {
		r := BorrowRecordModel{DueDate: due, ReturnedAt: &returned, BorrowStatus: BorrowStatusActive}
		assert.Equal(t, BorrowStatusReturned, r.EffectiveStatus(due))
	})
}
