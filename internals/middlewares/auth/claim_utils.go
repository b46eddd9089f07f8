package auth

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// ExtractPatronID membaca klaim sub (uuid patron) dari token.
func ExtractPatronID(claims jwt.MapClaims) (uuid.UUID, error) {
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		// tolerate klaim lama
		sub, ok = claims["patron_id"].(string)
		if !ok || sub == "" {
			return uuid.Nil, errors.New("klaim sub tidak ada")
		}
	}
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, errors.New("klaim sub bukan UUID valid")
	}
	return id, nil
}

// ValidateTokenExpiry validasi exp dengan leeway kecil untuk clock skew.
func ValidateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("klaim exp tidak ada")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return errors.New("klaim exp bukan angka")
	}
	expTime := time.Unix(int64(expFloat), 0)
	if time.Now().After(expTime.Add(leeway)) {
		return errors.New("token kedaluwarsa")
	}
	return nil
}

// StoreBasicClaimsToLocals simpan role & nama patron ke Locals.
func StoreBasicClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if role, ok := claims["role"].(string); ok && role != "" {
		c.Locals("role", role)
	}
	if name, ok := claims["patron_name"].(string); ok && name != "" {
		c.Locals("patron_name", name)
	}
}
