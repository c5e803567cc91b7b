//go:build unit || e2e

package builder

import (
	"encoding/json"
	"time"

	"benefit-desk/internal/domain/modification"
	reqdto "benefit-desk/internal/handler/dto/request"
	"benefit-desk/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProposalBuilder struct {
	MemberID     uuid.UUID
	MemberUserID uuid.UUID
	MemberName   string
	TargetKind   string
	Action       string
	TargetID     uuid.UUID
	TargetLabel  string
	Status       string
	OldValues    modification.Values
	NewValues    modification.Values
	Documents    []modification.Document
	CreatedAt    time.Time
}

func NewProposalBuilder() *ProposalBuilder {
	oldVals := modification.NewValues()
	oldVals.Set("phone", modification.String("0600000000"))
	newVals := modification.NewValues()
	newVals.Set("phone", modification.String("0611111111"))

	return &ProposalBuilder{
		MemberID:     uuid.New(),
		MemberUserID: uuid.New(),
		MemberName:   "Jane Cooper",
		TargetKind:   "member",
		Action:       "update",
		TargetID:     uuid.New(),
		TargetLabel:  "Jane Cooper",
		Status:       "pending",
		OldValues:    oldVals,
		NewValues:    newVals,
		CreatedAt:    time.Now(),
	}
}

func (b *ProposalBuilder) With(mutate func(*ProposalBuilder)) *ProposalBuilder {
	mutate(b)
	return b
}

func (b *ProposalBuilder) BuildUpdateDomain() (*modification.Proposal, error) {
	return modification.NewUpdateProposal(
		b.MemberID,
		modification.TargetKind(b.TargetKind),
		b.TargetID,
		b.TargetLabel,
		b.OldValues,
		b.NewValues,
		b.Documents,
		b.CreatedAt,
	)
}

func (b *ProposalBuilder) BuildCreationDomain() (*modification.Proposal, error) {
	return modification.NewCreationProposal(
		b.MemberID,
		modification.TargetKind(b.TargetKind),
		b.TargetLabel,
		b.NewValues,
		b.Documents,
		b.CreatedAt,
	)
}

func (b *ProposalBuilder) BuildView() *queries.ProposalView {
	targetID := b.TargetID
	return &queries.ProposalView{
		ID:           uuid.New(),
		MemberID:     b.MemberID,
		MemberUserID: b.MemberUserID,
		MemberName:   b.MemberName,
		TargetKind:   b.TargetKind,
		Action:       b.Action,
		TargetID:     &targetID,
		TargetLabel:  b.TargetLabel,
		Status:       b.Status,
		CreatedAt:    b.CreatedAt,
	}
}

func (b *ProposalBuilder) BuildListItem() *queries.ProposalListItem {
	return &queries.ProposalListItem{
		ID:          uuid.New(),
		MemberID:    b.MemberID,
		MemberName:  b.MemberName,
		TargetKind:  b.TargetKind,
		Action:      b.Action,
		TargetLabel: b.TargetLabel,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
	}
}

func (b *ProposalBuilder) BuildProposeUpdateDTO() reqdto.ProposeUpdateRequest {
	values, _ := json.Marshal(b.NewValues)
	return reqdto.ProposeUpdateRequest{
		TargetKind: b.TargetKind,
		TargetID:   b.TargetID,
		Values:     values,
	}
}

func (b *ProposalBuilder) BuildProposeCreationDTO() reqdto.ProposeCreationRequest {
	values, _ := json.Marshal(b.NewValues)
	return reqdto.ProposeCreationRequest{
		TargetKind: b.TargetKind,
		Values:     values,
	}
}
