package patrons

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"perpusku_backend/internals/features/patrons/patron/model"
)

type PatronSeed struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

// SeedPatronsFromJSON membuat patron + status + membership awal. Email yang
// sudah ada dilewati supaya seeding idempotent.
func SeedPatronsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file patron:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []PatronSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.PatronModel
		if err := db.Where("patron_email = ?", data.Email).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Patron dengan email '%s' sudah ada, dilewati.", data.Email)
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("❌ Gagal hash password untuk '%s': %v", data.Email, err)
			continue
		}

		patron := model.PatronModel{
			PatronID:        uuid.New(),
			PatronFirstName: data.FirstName,
			PatronLastName:  data.LastName,
			PatronEmail:     data.Email,
			PatronPassword:  string(hashed),
			PatronRole:      data.Role,
			IsActive:        true,
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&patron).Error; err != nil {
				return err
			}
			if err := tx.Create(&model.PatronStatusModel{
				PatronStatusPatronID: patron.PatronID,
				Status:               model.PatronStatusActive,
			}).Error; err != nil {
				return err
			}
			now := time.Now().UTC()
			return tx.Create(&model.MembershipModel{
				MembershipPatronID:  patron.PatronID,
				MembershipLevel:     model.MembershipLevelBronze,
				MembershipStartedAt: now,
				MembershipExpiresAt: now.AddDate(1, 0, 0),
			}).Error
		})
		if err != nil {
			log.Printf("❌ Gagal seed patron '%s': %v", data.Email, err)
			continue
		}

		log.Printf("✅ Patron '%s' (%s) berhasil dibuat", data.Email, data.Role)
	}
}
