package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"perpusku_backend/internals/configs"
	"perpusku_backend/internals/features/lending/reservations/model"
)

func TestExpiryFrom(t *testing.T) {
	p := configs.LendingPolicy{ReservationDays: 7}
	reservedAt := time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 5, 17, 9, 0, 0, 0, time.UTC), ExpiryFrom(reservedAt, p))
}

func TestReservationActive(t *testing.T) {
	expires := time.Date(2026, 5, 17, 9, 0, 0, 0, time.UTC)

	t.Run("PENDING belum kedaluwarsa memblokir perpanjangan", func(t *testing.T) {
		r := model.ReservationModel{ReservationStatus: model.ReservationStatusPending, ExpiresAt: expires}
		assert.True(t, r.Active(expires.Add(-time.Hour)))
	})

	t.Run("PENDING kedaluwarsa tidak lagi aktif", func(t *testing.T) {
		r := model.ReservationModel{ReservationStatus: model.ReservationStatusPending, ExpiresAt: expires}
		assert.False(t, r.Active(expires))
		assert.False(t, r.Active(expires.Add(time.Hour)))
	})

	t.Run("CANCELLED dan FULFILLED tidak aktif", func(t *testing.T) {
		cancelled := model.ReservationModel{ReservationStatus: model.ReservationStatusCancelled, ExpiresAt: expires}
		fulfilled := model.ReservationModel{ReservationStatus: model.ReservationStatusFulfilled, ExpiresAt: expires}
		assert.False(t, cancelled.Active(expires.Add(-time.Hour)))
		assert.False(t, fulfilled.Active(expires.Add(-time.Hour)))
	})
}
