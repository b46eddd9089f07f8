package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"perpusku_backend/internals/configs"
	"perpusku_backend/internals/constants"
	authModel "perpusku_backend/internals/features/patrons/auth/model"
	patronModel "perpusku_backend/internals/features/patrons/patron/model"
	helpers "perpusku_backend/internals/helpers"
)

/* ==========================
   Const & Types
========================== */

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET belum diset")
	}
	return secret, nil
}

// hash refresh token sebelum disimpan (bukan plaintext)
func computeRefreshHash(token, secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return mac.Sum(nil)
}

func buildAccessClaims(p patronModel.PatronModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":         p.PatronID.String(),
		"role":        p.PatronRole,
		"patron_name": p.FullName(),
		"typ":         "access",
		"iat":         now.Unix(),
		"exp":         now.Add(accessTTLDefault).Unix(),
	}
}

func buildRefreshClaims(patronID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": patronID.String(),
		"typ": "refresh",
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// issueTokenPair buat access+refresh, simpan hash refresh di DB, set cookie refresh.
func issueTokenPair(db *gorm.DB, c *fiber.Ctx, p patronModel.PatronModel) (fiber.Map, error) {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return nil, err
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return nil, err
	}

	now := nowUTC()
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(p, now)).SignedString([]byte(jwtSecret))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat access token")
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(p.PatronID, now)).SignedString([]byte(refreshSecret))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}

	if err := db.Create(&authModel.RefreshTokenModel{
		PatronID:  p.PatronID,
		TokenHash: computeRefreshHash(refresh, refreshSecret),
		ExpiresAt: now.Add(refreshTTLDefault),
		UserAgent: strptr(c.Get("User-Agent")),
		IP:        strptr(c.IP()),
	}).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan refresh token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		Expires:  now.Add(refreshTTLDefault),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})

	return fiber.Map{
		"access_token": access,
		"patron": fiber.Map{
			"patron_id": p.PatronID,
			"name":      p.FullName(),
			"email":     p.PatronEmail,
			"role":      p.PatronRole,
		},
	}, nil
}

/* ==========================
   REGISTER (createPatron)
========================== */
// POST /api/auth/register
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		FirstName   string `json:"first_name" validate:"required,min=2,max=50"`
		LastName    string `json:"last_name" validate:"required,min=2,max=50"`
		PhoneNumber string `json:"phone_number" validate:"omitempty,min=6,max=20"`
		Email       string `json:"email" validate:"required,email"`
		Password    string `json:"password" validate:"required,min=8"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(input); err != nil {
		return helpers.ValidationError(c, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Gagal hash password")
	}

	patron := patronModel.PatronModel{
		PatronFirstName:   input.FirstName,
		PatronLastName:    input.LastName,
		PatronPhoneNumber: input.PhoneNumber,
		PatronEmail:       strings.ToLower(strings.TrimSpace(input.Email)),
		PatronPassword:    string(hashed),
		PatronRole:        constants.RolePatron,
	}

	// patron + status + membership dibuat dalam satu transaksi
	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&patron).Error; err != nil {
			return err
		}
		if err := tx.Create(&patronModel.PatronStatusModel{
			PatronStatusPatronID: patron.PatronID,
			Status:               patronModel.PatronStatusActive,
		}).Error; err != nil {
			return err
		}
		now := nowUTC()
		return tx.Create(&patronModel.MembershipModel{
			MembershipPatronID:  patron.PatronID,
			MembershipLevel:     patronModel.MembershipLevelBronze,
			MembershipStartedAt: now,
			MembershipExpiresAt: now.AddDate(1, 0, 0),
		}).Error
	}); err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return helpers.Error(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		log.Println("[ERROR] Register:", err)
		return helpers.Error(c, fiber.StatusInternalServerError, "Gagal membuat patron")
	}

	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Pendaftaran berhasil", fiber.Map{
		"patron_id": patron.PatronID,
		"email":     patron.PatronEmail,
	})
}

/* ==========================
   LOGIN
========================== */
// POST /api/auth/login
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(input); err != nil {
		return helpers.ValidationError(c, err)
	}

	var patron patronModel.PatronModel
	if err := db.First(&patron, "patron_email = ?", strings.ToLower(strings.TrimSpace(input.Email))).Error; err != nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if !patron.IsActive {
		return helpers.Error(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(patron.PatronPassword), []byte(input.Password)); err != nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	data, err := issueTokenPair(db, c, patron)
	if err != nil {
		return err
	}
	return helpers.Success(c, "Login berhasil", data)
}

/* ==========================
   LOGIN GOOGLE
========================== */
// POST /api/auth/login-google  { "id_token": "..." }
func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(input); err != nil {
		return helpers.ValidationError(c, err)
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	aud := configs.GetEnv("GOOGLE_CLIENT_ID")
	if err := v.VerifyIDToken(input.IDToken, []string{aud}); err != nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "ID token Google tidak valid")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Gagal decode ID token")
	}

	email := strings.ToLower(strings.TrimSpace(claimSet.Email))
	googleID := claimSet.Sub

	var patron patronModel.PatronModel
	err = db.First(&patron, "patron_google_id = ? OR patron_email = ?", googleID, email).Error
	switch {
	case err == nil:
		if patron.PatronGoogleID == nil {
			_ = db.Model(&patron).Update("patron_google_id", googleID).Error
		}
	case err == gorm.ErrRecordNotFound:
		// first login via Google: buat patron baru + status + membership
		patron = patronModel.PatronModel{
			PatronFirstName: claimSet.GivenName,
			PatronLastName:  claimSet.FamilyName,
			PatronEmail:     email,
			PatronGoogleID:  &googleID,
			PatronPassword:  uuid.NewString(), // tidak dipakai; login selalu via Google
			PatronRole:      constants.RolePatron,
		}
		if err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&patron).Error; err != nil {
				return err
			}
			if err := tx.Create(&patronModel.PatronStatusModel{
				PatronStatusPatronID: patron.PatronID,
				Status:               patronModel.PatronStatusActive,
			}).Error; err != nil {
				return err
			}
			now := nowUTC()
			return tx.Create(&patronModel.MembershipModel{
				MembershipPatronID:  patron.PatronID,
				MembershipLevel:     patronModel.MembershipLevelBronze,
				MembershipStartedAt: now,
				MembershipExpiresAt: now.AddDate(1, 0, 0),
			}).Error
		}); err != nil {
			log.Println("[ERROR] LoginGoogle create:", err)
			return helpers.Error(c, fiber.StatusInternalServerError, "Gagal membuat patron")
		}
	default:
		return helpers.Error(c, fiber.StatusInternalServerError, "DB error")
	}

	if !patron.IsActive {
		return helpers.Error(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	data, err := issueTokenPair(db, c, patron)
	if err != nil {
		return err
	}
	return helpers.Success(c, "Login Google berhasil", data)
}

/* ==========================
   LOGOUT
========================== */
// POST /api/auth/logout — access token masuk blacklist sampai exp-nya lewat
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	tokenString, err := helpers.ExtractBearerToken(c)
	if err != nil {
		return err
	}

	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err != nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Token tidak valid")
	}

	expiredAt := nowUTC().Add(accessTTLDefault)
	if expFloat, ok := claims["exp"].(float64); ok {
		expiredAt = time.Unix(int64(expFloat), 0)
	}

	if err := db.Create(&authModel.TokenBlacklistModel{
		Token:     tokenString,
		ExpiredAt: expiredAt,
	}).Error; err != nil && !strings.Contains(err.Error(), "duplicate key") {
		return helpers.Error(c, fiber.StatusInternalServerError, "Gagal logout")
	}

	// revoke refresh token dari cookie kalau ada
	if refresh := strings.TrimSpace(c.Cookies("refresh_token")); refresh != "" {
		if secret, err := getRefreshSecret(); err == nil {
			db.Where("token_hash = ?", computeRefreshHash(refresh, secret)).
				Delete(&authModel.RefreshTokenModel{})
		}
	}
	c.ClearCookie("refresh_token")

	return helpers.Success(c, "Logout berhasil", nil)
}
