package response

import (
	"benefit-desk/internal/usecase/queries"
)

type ProposalResponse struct {
	ID          string  `json:"id"`
	MemberID    string  `json:"member_id"`
	MemberName  string  `json:"member_name"`
	TargetKind  string  `json:"target_kind"`
	Action      string  `json:"action"`
	TargetID    *string `json:"target_id,omitempty"`
	TargetLabel string  `json:"target_label"`
	Status      string  `json:"status"`
	Comment     *string `json:"comment,omitempty"`
	CreatedAt   int64   `json:"created_at"`
	ProcessedAt *int64  `json:"processed_at,omitempty"`
	ProcessedBy *string `json:"processed_by,omitempty"`
}

func FromProposalView(v *queries.ProposalView) *ProposalResponse {
	resp := &ProposalResponse{
		ID:          v.ID.String(),
		MemberID:    v.MemberID.String(),
		MemberName:  v.MemberName,
		TargetKind:  v.TargetKind,
		Action:      v.Action,
		TargetLabel: v.TargetLabel,
		Status:      v.Status,
		Comment:     v.Comment,
		CreatedAt:   v.CreatedAt.Unix(),
	}
	if v.TargetID != nil {
		id := v.TargetID.String()
		resp.TargetID = &id
	}
	if v.ProcessedAt != nil {
		ts := v.ProcessedAt.Unix()
		resp.ProcessedAt = &ts
	}
	if v.ProcessedBy != nil {
		id := v.ProcessedBy.String()
		resp.ProcessedBy = &id
	}
	return resp
}

type ProposalListItemResponse struct {
	ID          string `json:"id"`
	MemberID    string `json:"member_id"`
	MemberName  string `json:"member_name"`
	TargetKind  string `json:"target_kind"`
	Action      string `json:"action"`
	TargetLabel string `json:"target_label"`
	Status      string `json:"status"`
	CreatedAt   int64  `json:"created_at"`
}

func FromProposalList(items []*queries.ProposalListItem) []*ProposalListItemResponse {
	res := make([]*ProposalListItemResponse, len(items))
	for i, it := range items {
		res[i] = &ProposalListItemResponse{
			ID:          it.ID.String(),
			MemberID:    it.MemberID.String(),
			MemberName:  it.MemberName,
			TargetKind:  it.TargetKind,
			Action:      it.Action,
			TargetLabel: it.TargetLabel,
			Status:      it.Status,
			CreatedAt:   it.CreatedAt.Unix(),
		}
	}
	return res
}

type ProposalChangeResponse struct {
	Key        string  `json:"key"`
	Label      string  `json:"label"`
	Old        *string `json:"old,omitempty"`
	New        *string `json:"new,omitempty"`
	IsDocument bool    `json:"is_document"`
}

func FromProposalChanges(changes []queries.ProposalChangeView) []ProposalChangeResponse {
	res := make([]ProposalChangeResponse, len(changes))
	for i, ch := range changes {
		res[i] = ProposalChangeResponse{
			Key:        ch.Key,
			Label:      ch.Label,
			Old:        ch.Old,
			New:        ch.New,
			IsDocument: ch.IsDocument,
		}
	}
	return res
}
