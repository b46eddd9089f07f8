package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret        string
	JWTRefreshSecret string
	SupabaseURL      string
	SupabaseAPIKey   string
	MidtransKey      string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")
	SupabaseURL = GetEnv("SUPABASE_PROJECT_URL")
	SupabaseAPIKey = GetEnv("SUPABASE_API_KEY")
	MidtransKey = GetEnv("MIDTRANS_SERVER_KEY")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	}
	if JWTRefreshSecret == "" {
		log.Println("❌ JWT_REFRESH_SECRET belum diset!")
	}
	if SupabaseURL == "" {
		log.Println("⚠️ SUPABASE_PROJECT_URL belum diset, upload cover buku akan gagal")
	}
}

func GetEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func GetEnvDefault(key, def string) string {
	if v := GetEnv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := GetEnv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := GetEnv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			return f
		}
	}
	return def
}

/* ==========================
   Kebijakan peminjaman
========================== */

// Kebijakan kenaikan warning_count saat denda dibuat.
const (
	WarningPerFine          = "per_fine"           // +1 setiap denda
	WarningPerViolationType = "per_violation_type" // +1 hanya saat tipe pelanggaran baru
	WarningThreshold        = "threshold"          // +1 setiap kelipatan nominal tunggakan
)

type LendingPolicy struct {
	LoanPeriodDays   int
	MaxRenewals      int
	FineRatePerDay   float64 // rate default kalau caller tidak mengirim
	WarningPolicy    string
	WarningThreshold float64 // dipakai saat WarningPolicy == threshold
	ReservationDays  int     // masa berlaku reservasi sebelum kedaluwarsa
}

// LoadLendingPolicy membaca kebijakan dari ENV dengan default yang aman.
func LoadLendingPolicy() LendingPolicy {
	p := LendingPolicy{
		LoanPeriodDays:   getEnvInt("LOAN_PERIOD_DAYS", 14),
		MaxRenewals:      getEnvInt("LOAN_MAX_RENEWALS", 2),
		FineRatePerDay:   getEnvFloat("FINE_RATE_PER_DAY", 5.0),
		WarningPolicy:    GetEnvDefault("FINE_WARNING_POLICY", WarningPerFine),
		WarningThreshold: getEnvFloat("FINE_WARNING_THRESHOLD", 50.0),
		ReservationDays:  getEnvInt("RESERVATION_PERIOD_DAYS", 7),
	}
	switch p.WarningPolicy {
	case WarningPerFine, WarningPerViolationType, WarningThreshold:
	default:
		log.Printf("⚠️ FINE_WARNING_POLICY tidak dikenal (%s), fallback ke %s", p.WarningPolicy, WarningPerFine)
		p.WarningPolicy = WarningPerFine
	}
	return p
}

func (p LendingPolicy) LoanPeriod() time.Duration {
	return time.Duration(p.LoanPeriodDays) * 24 * time.Hour
}
