package commands

import (
	"context"
	"strings"
	"time"

	"benefit-desk/internal/domain/household"
	"benefit-desk/internal/domain/modification"
	"benefit-desk/internal/infra"
	"benefit-desk/internal/pkg/clock"
	"benefit-desk/internal/pkg/errs"
	"benefit-desk/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrProposalNotFoundWrite = errs.New("proposal not found")
	ErrTargetNotFound        = errs.New("proposal target not found")
	ErrTargetNotOwned        = errs.New("proposal target not owned by member")
	ErrDuplicatePending      = errs.New("a pending proposal already exists for this target")
	ErrCreationNotSupported  = errs.New("creation proposals are not supported for this kind")
)

type ProposeUpdateRequest struct {
	TargetKind string
	TargetID   uuid.UUID
	NewValues  modification.Values
	Documents  []modification.Document
}

type ProposeCreationRequest struct {
	TargetKind string
	NewValues  modification.Values
	Documents  []modification.Document
}

type ProposeResult struct {
	ProposalID uuid.UUID
}

type ProcessProposalRequest struct {
	Comment *string
}

type ModificationCommands interface {
	ProposeUpdate(ctx context.Context, req ProposeUpdateRequest, userID uuid.UUID) (*ProposeResult, error)
	ProposeCreation(ctx context.Context, req ProposeCreationRequest, userID uuid.UUID) (*ProposeResult, error)
	ApproveProposal(ctx context.Context, proposalID uuid.UUID, req ProcessProposalRequest, actorID uuid.UUID) error
	RejectProposal(ctx context.Context, proposalID uuid.UUID, req ProcessProposalRequest, actorID uuid.UUID) error
}

// targetHandler binds one target kind to its snapshot, apply and create
// behavior. Kinds without create support reject creation proposals.
type targetHandler struct {
	snapshot func(ctx context.Context, tx shared.Tx, memberID, targetID uuid.UUID) (modification.Values, string, error)
	apply    func(ctx context.Context, tx shared.Tx, p *modification.Proposal, now time.Time) error
	create   func(ctx context.Context, tx shared.Tx, p *modification.Proposal, now time.Time) (uuid.UUID, error)
}

type modificationUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	handlers map[modification.TargetKind]targetHandler
}

func NewModificationUseCase(uow shared.UnitOfWork, clk clock.Clock) ModificationCommands {
	uc := &modificationUseCaseImpl{uow: uow, clock: clk}
	uc.handlers = map[modification.TargetKind]targetHandler{
		modification.TargetMember: {
			snapshot: uc.memberSnapshot,
			apply:    uc.applyMember,
		},
		modification.TargetSpouse: {
			snapshot: uc.spouseSnapshot,
			apply:    uc.applySpouse,
			create:   uc.createSpouse,
		},
		modification.TargetDependent: {
			snapshot: uc.dependentSnapshot,
			apply:    uc.applyDependent,
			create:   uc.createDependent,
		},
	}
	return uc
}

func (uc *modificationUseCaseImpl) ProposeUpdate(ctx context.Context, req ProposeUpdateRequest, userID uuid.UUID) (*ProposeResult, error) {
	kind, err := modification.NewTargetKind(req.TargetKind)
	if err != nil {
		return nil, err
	}
	handler := uc.handlers[kind]

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		member, derr := tx.Reads().MemberByUserID(ctx, userID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrMemberNotFound
			}
			return derr
		}

		oldValues, targetLabel, derr := handler.snapshot(ctx, tx, member.ID, req.TargetID)
		if derr != nil {
			return derr
		}

		exists, derr := tx.Proposals().PendingExists(ctx, tx.DB(), member.ID, kind, req.TargetID)
		if derr != nil {
			return derr
		}
		if exists {
			return ErrDuplicatePending
		}

		proposal, derr := modification.NewUpdateProposal(
			member.ID,
			kind,
			req.TargetID,
			targetLabel,
			oldValues,
			req.NewValues,
			req.Documents,
			uc.clock.Now(),
		)
		if derr != nil {
			return derr
		}

		id, derr := tx.Proposals().Create(ctx, tx.DB(), proposal)
		if derr != nil {
			// Two concurrent proposals for the same target both pass the
			// pending check; the partial unique index catches the loser.
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrDuplicatePending
			}
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ProposeResult{ProposalID: createdID}, nil
}

// ProposeCreation files a proposal for a record that does not exist yet.
// There is no duplicate guard: a member may have several creations of the
// same kind pending at once.
func (uc *modificationUseCaseImpl) ProposeCreation(ctx context.Context, req ProposeCreationRequest, userID uuid.UUID) (*ProposeResult, error) {
	kind, err := modification.NewTargetKind(req.TargetKind)
	if err != nil {
		return nil, err
	}
	if uc.handlers[kind].create == nil {
		return nil, ErrCreationNotSupported
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		member, derr := tx.Reads().MemberByUserID(ctx, userID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrMemberNotFound
			}
			return derr
		}

		proposal, derr := modification.NewCreationProposal(
			member.ID,
			kind,
			labelFromValues(req.NewValues),
			req.NewValues,
			req.Documents,
			uc.clock.Now(),
		)
		if derr != nil {
			return derr
		}

		id, derr := tx.Proposals().Create(ctx, tx.DB(), proposal)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ProposeResult{ProposalID: createdID}, nil
}

// ApproveProposal applies the proposed change and marks the proposal
// approved in one transaction; if applying fails, the proposal stays
// pending.
func (uc *modificationUseCaseImpl) ApproveProposal(ctx context.Context, proposalID uuid.UUID, req ProcessProposalRequest, actorID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		proposal, derr := tx.Proposals().FindByIDForUpdate(ctx, tx.DB(), proposalID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrProposalNotFoundWrite
			}
			return derr
		}

		now := uc.clock.Now()
		if derr = proposal.Approve(actorID, req.Comment, now); derr != nil {
			return derr
		}

		handler := uc.handlers[proposal.TargetKind()]
		switch proposal.Action() {
		case modification.ActionUpdate:
			if derr = handler.apply(ctx, tx, proposal, now); derr != nil {
				return derr
			}
		case modification.ActionCreate:
			if handler.create == nil {
				return ErrCreationNotSupported
			}
			targetID, cerr := handler.create(ctx, tx, proposal, now)
			if cerr != nil {
				return cerr
			}
			proposal.SetTargetID(targetID)
		default:
			return modification.ErrInvalidAction
		}

		return tx.Proposals().Update(ctx, tx.DB(), proposal)
	})
}

func (uc *modificationUseCaseImpl) RejectProposal(ctx context.Context, proposalID uuid.UUID, req ProcessProposalRequest, actorID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		proposal, derr := tx.Proposals().FindByIDForUpdate(ctx, tx.DB(), proposalID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrProposalNotFoundWrite
			}
			return derr
		}

		if derr = proposal.Reject(actorID, req.Comment, uc.clock.Now()); derr != nil {
			return derr
		}
		return tx.Proposals().Update(ctx, tx.DB(), proposal)
	})
}

func (uc *modificationUseCaseImpl) memberSnapshot(ctx context.Context, tx shared.Tx, memberID, targetID uuid.UUID) (modification.Values, string, error) {
	if targetID != memberID {
		return modification.Values{}, "", ErrTargetNotOwned
	}
	m, err := tx.Household().MemberByID(ctx, tx.DB(), targetID)
	if err != nil {
		return modification.Values{}, "", mapTargetErr(err)
	}
	return m.ExtractValues(), m.Label(), nil
}

func (uc *modificationUseCaseImpl) spouseSnapshot(ctx context.Context, tx shared.Tx, memberID, targetID uuid.UUID) (modification.Values, string, error) {
	s, err := tx.Household().SpouseByID(ctx, tx.DB(), targetID)
	if err != nil {
		return modification.Values{}, "", mapTargetErr(err)
	}
	if s.MemberID() != memberID {
		return modification.Values{}, "", ErrTargetNotOwned
	}
	return s.ExtractValues(), s.Label(), nil
}

func (uc *modificationUseCaseImpl) dependentSnapshot(ctx context.Context, tx shared.Tx, memberID, targetID uuid.UUID) (modification.Values, string, error) {
	d, err := tx.Household().DependentByID(ctx, tx.DB(), targetID)
	if err != nil {
		return modification.Values{}, "", mapTargetErr(err)
	}
	if d.MemberID() != memberID {
		return modification.Values{}, "", ErrTargetNotOwned
	}
	return d.ExtractValues(), d.Label(), nil
}

func (uc *modificationUseCaseImpl) applyMember(ctx context.Context, tx shared.Tx, p *modification.Proposal, now time.Time) error {
	values, documents, err := decodeProposalPayload(p)
	if err != nil {
		return err
	}

	m, err := tx.Household().MemberByID(ctx, tx.DB(), *p.TargetID())
	if err != nil {
		return mapTargetErr(err)
	}
	m.ApplyValues(values, now)
	for _, doc := range documents {
		m.AttachDocument(doc, now)
	}
	return tx.Household().SaveMember(ctx, tx.DB(), m)
}

func (uc *modificationUseCaseImpl) applySpouse(ctx context.Context, tx shared.Tx, p *modification.Proposal, now time.Time) error {
	values, documents, err := decodeProposalPayload(p)
	if err != nil {
		return err
	}

	s, err := tx.Household().SpouseByID(ctx, tx.DB(), *p.TargetID())
	if err != nil {
		return mapTargetErr(err)
	}
	s.ApplyValues(values, now)
	for _, doc := range documents {
		s.AttachDocument(doc, now)
	}
	return tx.Household().SaveSpouse(ctx, tx.DB(), s)
}

func (uc *modificationUseCaseImpl) applyDependent(ctx context.Context, tx shared.Tx, p *modification.Proposal, now time.Time) error {
	values, documents, err := decodeProposalPayload(p)
	if err != nil {
		return err
	}

	d, err := tx.Household().DependentByID(ctx, tx.DB(), *p.TargetID())
	if err != nil {
		return mapTargetErr(err)
	}
	d.ApplyValues(values, now)
	for _, doc := range documents {
		d.AttachDocument(doc, now)
	}
	return tx.Household().SaveDependent(ctx, tx.DB(), d)
}

func (uc *modificationUseCaseImpl) createSpouse(ctx context.Context, tx shared.Tx, p *modification.Proposal, now time.Time) (uuid.UUID, error) {
	values, documents, err := decodeProposalPayload(p)
	if err != nil {
		return uuid.Nil, err
	}

	s := household.NewSpouseFromValues(p.MemberID(), values, now)
	for _, doc := range documents {
		s.AttachDocument(doc, now)
	}
	return tx.Household().InsertSpouse(ctx, tx.DB(), s)
}

func (uc *modificationUseCaseImpl) createDependent(ctx context.Context, tx shared.Tx, p *modification.Proposal, now time.Time) (uuid.UUID, error) {
	values, documents, err := decodeProposalPayload(p)
	if err != nil {
		return uuid.Nil, err
	}

	d := household.NewDependentFromValues(p.MemberID(), values, now)
	for _, doc := range documents {
		d.AttachDocument(doc, now)
	}
	return tx.Household().InsertDependent(ctx, tx.DB(), d)
}

func decodeProposalPayload(p *modification.Proposal) (modification.Values, []modification.Document, error) {
	values, err := p.NewValuesDecoded()
	if err != nil {
		return modification.Values{}, nil, err
	}
	documents, err := p.DocumentsDecoded()
	if err != nil {
		return modification.Values{}, nil, err
	}
	return values, documents, nil
}

func labelFromValues(vs modification.Values) string {
	first, _ := vs.Get("first_name")
	last, _ := vs.Get("last_name")
	return strings.TrimSpace(first.Text() + " " + last.Text())
}

func mapTargetErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrTargetNotFound
	}
	return err
}
