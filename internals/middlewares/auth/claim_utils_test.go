package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPatronID(t *testing.T) {
	patronID := uuid.New()

	t.Run("dari klaim sub", func(t *testing.T) {
		got, err := ExtractPatronID(jwt.MapClaims{"sub": patronID.String()})
		require.NoError(t, err)
		assert.Equal(t, patronID, got)
	})

	t.Run("fallback klaim patron_id", func(t *testing.T) {
		got, err := ExtractPatronID(jwt.MapClaims{"patron_id": patronID.String()})
		require.NoError(t, err)
		assert.Equal(t, patronID, got)
	})

	t.Run("klaim kosong", func(t *testing.T) {
		_, err := ExtractPatronID(jwt.MapClaims{})
		assert.Error(t, err)
	})

	t.Run("sub bukan uuid", func(t *testing.T) {
		_, err := ExtractPatronID(jwt.MapClaims{"sub": "bukan-uuid"})
		assert.Error(t, err)
	})
}

func TestValidateTokenExpiry(t *testing.T) {
	leeway := 30 * time.Second

	t.Run("masih berlaku", func(t *testing.T) {
		claims := jwt.MapClaims{"exp": float64(time.Now().Add(time.Hour).Unix())}
		assert.NoError(t, ValidateTokenExpiry(claims, leeway))
	})

	t.Run("kedaluwarsa dalam leeway masih lolos", func(t *testing.T) {
		claims := jwt.MapClaims{"exp": float64(time.Now().Add(-10 * time.Second).Unix())}
		assert.NoError(t, ValidateTokenExpiry(claims, leeway))
	})

	t.Run("kedaluwarsa di luar leeway", func(t *testing.T) {
		claims := jwt.MapClaims{"exp": float64(time.Now().Add(-time.Minute).Unix())}
		assert.Error(t, ValidateTokenExpiry(claims, leeway))
	})

	t.Run("tanpa exp", func(t *testing.T) {
		assert.Error(t, ValidateTokenExpiry(jwt.MapClaims{}, leeway))
	})
}
