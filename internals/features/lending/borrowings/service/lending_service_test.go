package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"perpusku_backend/internals/configs"
	"perpusku_backend/internals/features/lending/borrowings/model"
)

var testPolicy = configs.LendingPolicy{
	LoanPeriodDays: 14,
	MaxRenewals:    2,
	FineRatePerDay: 5.0,
	WarningPolicy:  configs.WarningPerFine,
}

func TestDueDateFrom(t *testing.T) {
	borrowedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	due := DueDateFrom(borrowedAt, testPolicy)
	assert.Equal(t, time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC), due)
}

func TestDaysLate(t *testing.T) {
	due := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("tepat waktu", func(t *testing.T) {
		assert.Equal(t, 0, DaysLate(due, due.Add(-time.Hour)))
		assert.Equal(t, 0, DaysLate(due, due)) // pas di due date belum telat
	})

	t.Run("telat sebagian hari dibulatkan ke atas", func(t *testing.T) {
		assert.Equal(t, 1, DaysLate(due, due.Add(time.Minute)))
		assert.Equal(t, 1, DaysLate(due, due.Add(23*time.Hour)))
	})

	t.Run("telat penuh beberapa hari", func(t *testing.T) {
		assert.Equal(t, 1, DaysLate(due, due.Add(24*time.Hour)))
		assert.Equal(t, 3, DaysLate(due, due.Add(49*time.Hour)))
	})
}

func TestCanRenew(t *testing.T) {
	now := time.Now().UTC()

	t.Run("masih boleh", func(t *testing.T) {
		r := model.BorrowRecordModel{RenewalCount: 1}
		assert.NoError(t, CanRenew(r, testPolicy))
	})

	t.Run("sudah kembali", func(t *testing.T) {
		r := model.BorrowRecordModel{ReturnedAt: &now}
		assert.ErrorIs(t, CanRenew(r, testPolicy), ErrAlreadyReturned)
	})

	t.Run("batas perpanjangan", func(t *testing.T) {
		r := model.BorrowRecordModel{RenewalCount: 2}
		assert.ErrorIs(t, CanRenew(r, testPolicy), ErrMaxRenewals)
	})
}

func TestStatusCondition(t *testing.T) {
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

	t.Run("RETURNED", func(t *testing.T) {
		cond, args, err := StatusCondition(model.BorrowStatusReturned, now)
		assert.NoError(t, err)
		assert.Equal(t, "borrow_returned_at IS NOT NULL", cond)
		assert.Empty(t, args)
	})

	t.Run("ACTIVE", func(t *testing.T) {
		cond, args, err := StatusCondition(model.BorrowStatusActive, now)
		assert.NoError(t, err)
		assert.Equal(t, "borrow_returned_at IS NULL AND borrow_due_date >= ?", cond)
		assert.Equal(t, []interface{}{now}, args)
	})

	t.Run("OVERDUE", func(t *testing.T) {
		cond, args, err := StatusCondition(model.BorrowStatusOverdue, now)
		assert.NoError(t, err)
		assert.Equal(t, "borrow_returned_at IS NULL AND borrow_due_date < ?", cond)
		assert.Equal(t, []interface{}{now}, args)
	})

	t.Run("status asal-asalan ditolak", func(t *testing.T) {
		_, _, err := StatusCondition("LOST", now)
		assert.ErrorIs(t, err, ErrInvalidStatusFilter)
	})
}
