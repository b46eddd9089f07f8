package dto

import (
	"time"

	"github.com/google/uuid"

	"perpusku_backend/internals/features/patrons/patron/model"
)

type PatronResponse struct {
	PatronID    uuid.UUID `json:"patron_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`

	Status     *PatronStatusResponse `json:"status,omitempty"`
	Membership *MembershipResponse   `json:"membership,omitempty"`
}

type PatronStatusResponse struct {
	UnpaidFees   float64 `json:"unpaid_fees"`
	WarningCount int     `json:"warning_count"`
	Status       string  `json:"status"`
}

type MembershipResponse struct {
	MembershipID uuid.UUID `json:"membership_id"`
	Level        string    `json:"level"`
	StartedAt    time.Time `json:"started_at"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type UpdateMembershipRequest struct {
	Level string `json:"level" validate:"required,oneof=BRONZE SILVER GOLD"`
}

func ToPatronResponse(p model.PatronModel, st *model.PatronStatusModel, m *model.MembershipModel) PatronResponse {
	resp := PatronResponse{
		PatronID:    p.PatronID,
		FirstName:   p.PatronFirstName,
		LastName:    p.PatronLastName,
		PhoneNumber: p.PatronPhoneNumber,
		Email:       p.PatronEmail,
		Role:        p.PatronRole,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
	}
	if st != nil {
		resp.Status = &PatronStatusResponse{
			UnpaidFees:   st.UnpaidFees,
			WarningCount: st.WarningCount,
			Status:       st.Status,
		}
	}
	if m != nil {
		resp.Membership = &MembershipResponse{
			MembershipID: m.MembershipID,
			Level:        m.MembershipLevel,
			StartedAt:    m.MembershipStartedAt,
			ExpiresAt:    m.MembershipExpiresAt,
		}
	}
	return resp
}
