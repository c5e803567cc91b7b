package modification

import (
	"time"

	"benefit-desk/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrAlreadyProcessed = errs.New("proposal has already been processed")

// Proposal is a pending or resolved change request against one target
// record. Old/new value maps and documents are stored serialized; after
// creation only the status and processing metadata change, except for the
// target-ID back-fill when a creation proposal is approved.
type Proposal struct {
	id          uuid.UUID
	memberID    uuid.UUID
	targetKind  TargetKind
	action      Action
	targetID    *uuid.UUID
	targetLabel string
	oldValues   []byte
	newValues   []byte
	documents   []byte
	status      Status
	comment     *string
	processedBy *uuid.UUID
	createdAt   time.Time
	processedAt *time.Time
}

// NewUpdateProposal builds a pending proposal to modify an existing record.
func NewUpdateProposal(
	memberID uuid.UUID,
	kind TargetKind,
	targetID uuid.UUID,
	targetLabel string,
	oldValues, newValues Values,
	documents []Document,
	now time.Time,
) (*Proposal, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidTargetKind
	}

	oldData, err := EncodeValues(oldValues)
	if err != nil {
		return nil, err
	}
	newData, err := EncodeValues(newValues)
	if err != nil {
		return nil, err
	}
	docData, err := EncodeDocuments(documents)
	if err != nil {
		return nil, err
	}

	id := targetID
	return &Proposal{
		id:          uuid.New(),
		memberID:    memberID,
		targetKind:  kind,
		action:      ActionUpdate,
		targetID:    &id,
		targetLabel: targetLabel,
		oldValues:   oldData,
		newValues:   newData,
		documents:   docData,
		status:      StatusPending,
		createdAt:   now,
	}, nil
}

// NewCreationProposal builds a pending proposal to create a new record.
// There is no target yet, so no old values and no target ID until approval
// back-fills it.
func NewCreationProposal(
	memberID uuid.UUID,
	kind TargetKind,
	targetLabel string,
	newValues Values,
	documents []Document,
	now time.Time,
) (*Proposal, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidTargetKind
	}

	newData, err := EncodeValues(newValues)
	if err != nil {
		return nil, err
	}
	docData, err := EncodeDocuments(documents)
	if err != nil {
		return nil, err
	}

	return &Proposal{
		id:          uuid.New(),
		memberID:    memberID,
		targetKind:  kind,
		action:      ActionCreate,
		targetLabel: targetLabel,
		newValues:   newData,
		documents:   docData,
		status:      StatusPending,
		createdAt:   now,
	}, nil
}

func ReconstructProposal(
	id, memberID uuid.UUID,
	kind TargetKind,
	action Action,
	targetID *uuid.UUID,
	targetLabel string,
	oldValues, newValues, documents []byte,
	status Status,
	comment *string,
	processedBy *uuid.UUID,
	createdAt time.Time,
	processedAt *time.Time,
) *Proposal {
	return &Proposal{
		id:          id,
		memberID:    memberID,
		targetKind:  kind,
		action:      action,
		targetID:    targetID,
		targetLabel: targetLabel,
		oldValues:   oldValues,
		newValues:   newValues,
		documents:   documents,
		status:      status,
		comment:     comment,
		processedBy: processedBy,
		createdAt:   createdAt,
		processedAt: processedAt,
	}
}

// Approve marks a pending proposal approved. The caller is responsible for
// having applied the proposed change first; both must commit together.
func (p *Proposal) Approve(processedBy uuid.UUID, comment *string, now time.Time) error {
	if p.status != StatusPending {
		return ErrAlreadyProcessed
	}
	p.status = StatusApproved
	p.processedBy = &processedBy
	p.comment = comment
	t := now
	p.processedAt = &t
	return nil
}

// Reject marks a pending proposal rejected without touching the target.
func (p *Proposal) Reject(processedBy uuid.UUID, reason *string, now time.Time) error {
	if p.status != StatusPending {
		return ErrAlreadyProcessed
	}
	p.status = StatusRejected
	p.processedBy = &processedBy
	p.comment = reason
	t := now
	p.processedAt = &t
	return nil
}

// SetTargetID back-fills the identifier of a record created on approval.
func (p *Proposal) SetTargetID(id uuid.UUID) {
	p.targetID = &id
}

func (p *Proposal) IsPending() bool {
	return p.status == StatusPending
}

// Changes decodes the stored value maps and diffs them for review.
func (p *Proposal) Changes() ([]FieldChange, error) {
	oldValues, err := DecodeValues(p.oldValues)
	if err != nil {
		return nil, err
	}
	newValues, err := DecodeValues(p.newValues)
	if err != nil {
		return nil, err
	}
	return Compare(oldValues, newValues), nil
}

// NewValuesDecoded decodes the proposed value map.
func (p *Proposal) NewValuesDecoded() (Values, error) {
	return DecodeValues(p.newValues)
}

// DocumentsDecoded decodes the attached document list.
func (p *Proposal) DocumentsDecoded() ([]Document, error) {
	return DecodeDocuments(p.documents)
}

func (p *Proposal) ID() uuid.UUID           { return p.id }
func (p *Proposal) MemberID() uuid.UUID     { return p.memberID }
func (p *Proposal) TargetKind() TargetKind  { return p.targetKind }
func (p *Proposal) Action() Action          { return p.action }
func (p *Proposal) TargetID() *uuid.UUID    { return p.targetID }
func (p *Proposal) TargetLabel() string     { return p.targetLabel }
func (p *Proposal) OldValues() []byte       { return p.oldValues }
func (p *Proposal) NewValues() []byte       { return p.newValues }
func (p *Proposal) Documents() []byte       { return p.documents }
func (p *Proposal) Status() Status          { return p.status }
func (p *Proposal) Comment() *string        { return p.comment }
func (p *Proposal) ProcessedBy() *uuid.UUID { return p.processedBy }
func (p *Proposal) CreatedAt() time.Time    { return p.createdAt }
func (p *Proposal) ProcessedAt() *time.Time { return p.processedAt }
