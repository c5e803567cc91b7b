package request

import (
	"encoding/json"

	"benefit-desk/internal/usecase/commands"

	"github.com/google/uuid"
)

type SubmitRequestRequest struct {
	OfferingID uuid.UUID       `json:"offering_id" binding:"required"`
	Answers    json.RawMessage `json:"answers" binding:"required"`
}

func (r *SubmitRequestRequest) ToCommand() commands.SubmitRequestRequest {
	return commands.SubmitRequestRequest{
		OfferingID: r.OfferingID,
		Answers:    r.Answers,
	}
}

type SetRequestStatusRequest struct {
	Status  string  `json:"status" binding:"required"`
	Comment *string `json:"comment,omitempty" binding:"omitempty,max=2000"`
}

func (r *SetRequestStatusRequest) ToCommand() commands.SetRequestStatusRequest {
	return commands.SetRequestStatusRequest{
		Status:  r.Status,
		Comment: r.Comment,
	}
}
