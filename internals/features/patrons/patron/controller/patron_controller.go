package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"perpusku_backend/internals/features/patrons/patron/dto"
	"perpusku_backend/internals/features/patrons/patron/model"
	helpers "perpusku_backend/internals/helpers"
)

type PatronController struct {
	DB *gorm.DB
}

func NewPatronController(db *gorm.DB) *PatronController {
	return &PatronController{DB: db}
}

var validate = validator.New()

func (pc *PatronController) loadPatron(id uuid.UUID) (*dto.PatronResponse, error) {
	var patron model.PatronModel
	if err := pc.DB.First(&patron, "patron_id = ?", id).Error; err != nil {
		return nil, err
	}

	var status model.PatronStatusModel
	var statusPtr *model.PatronStatusModel
	if err := pc.DB.First(&status, "patron_status_patron_id = ?", id).Error; err == nil {
		statusPtr = &status
	}

	var membership model.MembershipModel
	var membershipPtr *model.MembershipModel
	if err := pc.DB.First(&membership, "membership_patron_id = ?", id).Error; err == nil {
		membershipPtr = &membership
	}

	resp := dto.ToPatronResponse(patron, statusPtr, membershipPtr)
	return &resp, nil
}

// GET /api/u/patrons/me
func (pc *PatronController) Me(c *fiber.Ctx) error {
	patronID, err := helpers.GetPatronUUID(c)
	if err != nil {
		return err
	}

	resp, err := pc.loadPatron(patronID)
	if err != nil {
		return helpers.Error(c, fiber.StatusNotFound, "Patron not found")
	}
	return helpers.Success(c, "OK", resp)
}

// GET /api/a/patrons/:id  (librarian)
func (pc *PatronController) GetPatronByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "patron_id tidak valid")
	}

	resp, err := pc.loadPatron(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "Patron not found")
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "DB error")
	}
	return helpers.Success(c, "OK", resp)
}

// GET /api/a/patrons  (librarian, paginated)
func (pc *PatronController) GetAllPatrons(c *fiber.Ctx) error {
	p := helpers.ParseFiber(c, "created_at", "desc", helpers.AdminOpts)

	var total int64
	if err := pc.DB.Model(&model.PatronModel{}).Count(&total).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "DB error")
	}

	orderExpr, err := p.SafeOrderExpr(map[string]string{
		"created_at": "created_at",
		"email":      "patron_email",
		"last_name":  "patron_last_name",
	}, "created_at")
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Sort error")
	}

	var patrons []model.PatronModel
	if err := pc.DB.
		Order(orderExpr).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&patrons).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "DB error")
	}

	items := make([]dto.PatronResponse, 0, len(patrons))
	for _, pt := range patrons {
		items = append(items, dto.ToPatronResponse(pt, nil, nil))
	}

	return helpers.Success(c, "OK", fiber.Map{
		"items": items,
		"meta":  helpers.BuildMeta(total, p),
	})
}

// PUT /api/a/patrons/:id/membership  (librarian)
func (pc *PatronController) UpdateMembership(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "patron_id tidak valid")
	}

	var req dto.UpdateMembershipRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	res := pc.DB.Model(&model.MembershipModel{}).
		Where("membership_patron_id = ?", id).
		Update("membership_level", req.Level)
	if res.Error != nil {
		log.Println("[ERROR] UpdateMembership:", res.Error)
		return helpers.Error(c, fiber.StatusInternalServerError, "Gagal update membership")
	}
	if res.RowsAffected == 0 {
		return helpers.Error(c, fiber.StatusNotFound, "Membership not found")
	}

	return helpers.Success(c, "Membership diperbarui", fiber.Map{
		"patron_id": id,
		"level":     req.Level,
	})
}
