package request

import (
	"time"

	"benefit-desk/internal/usecase/commands"
)

type CreateOfferingRequest struct {
	Label       string     `json:"label" binding:"required,max=200"`
	Description string     `json:"description" binding:"max=2000"`
	Open        bool       `json:"open"`
	OpensAt     *time.Time `json:"opens_at,omitempty"`
	ClosesAt    *time.Time `json:"closes_at,omitempty"`
	Quota       int32      `json:"quota" binding:"min=0"`
}

func (r *CreateOfferingRequest) ToCommand() commands.CreateOfferingRequest {
	return commands.CreateOfferingRequest{
		Label:       r.Label,
		Description: r.Description,
		Open:        r.Open,
		OpensAt:     r.OpensAt,
		ClosesAt:    r.ClosesAt,
		Quota:       r.Quota,
	}
}

type UpdateOfferingRequest struct {
	Label       string     `json:"label" binding:"required,max=200"`
	Description string     `json:"description" binding:"max=2000"`
	Open        bool       `json:"open"`
	OpensAt     *time.Time `json:"opens_at,omitempty"`
	ClosesAt    *time.Time `json:"closes_at,omitempty"`
	Quota       int32      `json:"quota" binding:"min=0"`
}

func (r *UpdateOfferingRequest) ToCommand() commands.UpdateOfferingRequest {
	return commands.UpdateOfferingRequest{
		Label:       r.Label,
		Description: r.Description,
		Open:        r.Open,
		OpensAt:     r.OpensAt,
		ClosesAt:    r.ClosesAt,
		Quota:       r.Quota,
	}
}

type SetOfferingOpenRequest struct {
	Open *bool `json:"open" binding:"required"`
}
