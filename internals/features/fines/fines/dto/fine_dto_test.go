package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCreateFineRequestValidation(t *testing.T) {
	validate := validator.New()

	valid := CreateFineRequest{
		PatronID:      uuid.NewString(),
		BookID:        uuid.NewString(),
		DaysLate:      3,
		ViolationType: "DAMAGED_ITEM",
	}
	assert.NoError(t, validate.Struct(valid))

	t.Run("tipe pelanggaran liar ditolak", func(t *testing.T) {
		bad := valid
		bad.ViolationType = "SPILLED_COFFEE"
		assert.Error(t, validate.Struct(bad))
	})

	t.Run("days_late minimal 1", func(t *testing.T) {
		bad := valid
		bad.DaysLate = 0
		assert.Error(t, validate.Struct(bad))
	})

	t.Run("patron_id harus uuid", func(t *testing.T) {
		bad := valid
		bad.PatronID = "123"
		assert.Error(t, validate.Struct(bad))
	})
}
