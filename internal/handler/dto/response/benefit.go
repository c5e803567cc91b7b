package response

import (
	"encoding/json"

	"benefit-desk/internal/usecase/queries"
)

type RequestResponse struct {
	ID            string          `json:"id"`
	OfferingID    string          `json:"offering_id"`
	OfferingLabel string          `json:"offering_label"`
	MemberID      string          `json:"member_id"`
	MemberName    string          `json:"member_name"`
	MemberNumber  string          `json:"member_number"`
	Status        string          `json:"status"`
	Comment       *string         `json:"comment,omitempty"`
	Answers       json.RawMessage `json:"answers,omitempty"`
	SubmittedAt   int64           `json:"submitted_at"`
	ProcessedAt   *int64          `json:"processed_at,omitempty"`
	FinalizedAt   *int64          `json:"finalized_at,omitempty"`
	ProcessedBy   *string         `json:"processed_by,omitempty"`
}

func FromRequestView(v *queries.RequestView) *RequestResponse {
	resp := &RequestResponse{
		ID:            v.ID.String(),
		OfferingID:    v.OfferingID.String(),
		OfferingLabel: v.OfferingLabel,
		MemberID:      v.MemberID.String(),
		MemberName:    v.MemberName,
		MemberNumber:  v.MemberNumber,
		Status:        v.Status,
		Comment:       v.Comment,
		Answers:       v.Answers,
		SubmittedAt:   v.SubmittedAt.Unix(),
	}
	if v.ProcessedAt != nil {
		ts := v.ProcessedAt.Unix()
		resp.ProcessedAt = &ts
	}
	if v.FinalizedAt != nil {
		ts := v.FinalizedAt.Unix()
		resp.FinalizedAt = &ts
	}
	if v.ProcessedBy != nil {
		id := v.ProcessedBy.String()
		resp.ProcessedBy = &id
	}
	return resp
}

type RequestListItemResponse struct {
	ID            string `json:"id"`
	OfferingID    string `json:"offering_id"`
	OfferingLabel string `json:"offering_label"`
	MemberID      string `json:"member_id"`
	MemberName    string `json:"member_name"`
	Status        string `json:"status"`
	SubmittedAt   int64  `json:"submitted_at"`
}

func FromRequestList(items []*queries.RequestListItem) []*RequestListItemResponse {
	res := make([]*RequestListItemResponse, len(items))
	for i, it := range items {
		res[i] = &RequestListItemResponse{
			ID:            it.ID.String(),
			OfferingID:    it.OfferingID.String(),
			OfferingLabel: it.OfferingLabel,
			MemberID:      it.MemberID.String(),
			MemberName:    it.MemberName,
			Status:        it.Status,
			SubmittedAt:   it.SubmittedAt.Unix(),
		}
	}
	return res
}
