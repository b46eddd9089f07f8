package service

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"perpusku_backend/internals/configs"
)

func TestFineAmount(t *testing.T) {
	assert.Equal(t, 15.0, FineAmount(3, 5.0))
	assert.Equal(t, 0.0, FineAmount(0, 5.0))
	// pembulatan 2 desimal untuk kolom numeric(12,2)
	assert.Equal(t, 0.33, FineAmount(1, 0.333))
	assert.Equal(t, 7.5, FineAmount(3, 2.5))
}

func TestEnsureCounterRowTouched(t *testing.T) {
	t.Run("update mengenai baris", func(t *testing.T) {
		assert.NoError(t, ensureCounterRowTouched(&gorm.DB{RowsAffected: 1}))
	})

	// patron tanpa baris patron_statuses tidak boleh lolos diam-diam;
	// denda tanpa kenaikan unpaid_fees merusak kecocokan agregat
	t.Run("nol baris berarti patron tidak dikenal", func(t *testing.T) {
		err := ensureCounterRowTouched(&gorm.DB{RowsAffected: 0})
		assert.ErrorIs(t, err, ErrPatronNotFound)
	})

	t.Run("error DB diteruskan apa adanya", func(t *testing.T) {
		dbErr := errors.New("connection reset")
		err := ensureCounterRowTouched(&gorm.DB{Error: dbErr})
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestFineOrderIDRoundTrip(t *testing.T) {
	fineID := uuid.New()
	orderID := BuildFineOrderID(fineID)

	parsed, err := ParseFineOrderID(orderID)
	require.NoError(t, err)
	assert.Equal(t, fineID, parsed)
}

func TestParseFineOrderIDRejectsGarbage(t *testing.T) {
	for _, bad := range []string{
		"",
		"DONATION-123",
		"FINE-not-a-uuid-at-all-xx-1",
		"FINE-" + uuid.NewString(), // tanpa suffix nano
	} {
		_, err := ParseFineOrderID(bad)
		assert.Error(t, err, bad)
	}
}

func TestVerifyMidtransSignature(t *testing.T) {
	configs.MidtransKey = "test-server-key"

	orderID := "FINE-" + uuid.NewString() + "-123456"
	statusCode := "200"
	grossAmount := "15.00"

	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + "test-server-key"))
	valid := hex.EncodeToString(sum[:])

	assert.True(t, VerifyMidtransSignature(orderID, statusCode, grossAmount, valid))
	assert.False(t, VerifyMidtransSignature(orderID, statusCode, grossAmount, "deadbeef"))
	assert.False(t, VerifyMidtransSignature(orderID, "201", grossAmount, valid))
}
