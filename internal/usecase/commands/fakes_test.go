//go:build unit

package commands_test

import (
	"context"

	"benefit-desk/internal/domain/benefit"
	"benefit-desk/internal/domain/household"
	"benefit-desk/internal/domain/modification"
	"benefit-desk/internal/domain/offering"
	"benefit-desk/internal/infra"
	"benefit-desk/internal/infra/db"
	"benefit-desk/internal/usecase/shared"

	"github.com/google/uuid"
)

// In-memory stand-ins for the persistence layer. Find-for-update methods
// hand out copies, like a row scan would, so mutations only become visible
// once Update is called.

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

type fakeUoW struct {
	tx *fakeTx
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{tx: &fakeTx{
		reads:      &fakeReads{},
		offerings:  &fakeOfferingRepo{},
		requests:   &fakeRequestRepo{},
		proposals:  &fakeProposalRepo{stored: map[uuid.UUID]*modification.Proposal{}},
		households: &fakeHouseholdRepo{},
	}}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return u.tx.reads
}

type fakeTx struct {
	reads      *fakeReads
	offerings  *fakeOfferingRepo
	requests   *fakeRequestRepo
	proposals  *fakeProposalRepo
	households *fakeHouseholdRepo
}

func (t *fakeTx) Offerings() shared.OfferingRepository { return t.offerings }
func (t *fakeTx) Requests() shared.RequestRepository   { return t.requests }
func (t *fakeTx) Proposals() shared.ProposalRepository { return t.proposals }
func (t *fakeTx) Household() shared.HouseholdRepository {
	return t.households
}
func (t *fakeTx) Users() shared.UserRepository { return nil }
func (t *fakeTx) Reads() shared.CommandReads   { return t.reads }
func (t *fakeTx) DB() db.DBTX                  { return nil }

type fakeReads struct {
	member *shared.MemberSnapshot
}

func (r *fakeReads) MemberByUserID(_ context.Context, userID uuid.UUID) (*shared.MemberSnapshot, error) {
	if r.member == nil || r.member.UserID != userID {
		return nil, notFound("member not found")
	}
	snapshot := *r.member
	return &snapshot, nil
}

type fakeOfferingRepo struct {
	entity  *offering.Offering
	updated []*offering.Offering
}

func (r *fakeOfferingRepo) Create(_ context.Context, _ db.DBTX, o *offering.Offering) (uuid.UUID, error) {
	r.entity = o
	return o.ID(), nil
}

func (r *fakeOfferingRepo) Update(_ context.Context, _ db.DBTX, o *offering.Offering) error {
	r.entity = o
	r.updated = append(r.updated, o)
	return nil
}

func (r *fakeOfferingRepo) FindByIDForUpdate(_ context.Context, _ db.DBTX, id uuid.UUID) (*offering.Offering, error) {
	if r.entity == nil || r.entity.ID() != id {
		return nil, notFound("offering not found")
	}
	return r.entity, nil
}

type fakeRequestRepo struct {
	stored            map[uuid.UUID]*benefit.Request
	created           []*benefit.Request
	updated           []*benefit.Request
	activeCount       int64
	memberActiveCount int64
}

func (r *fakeRequestRepo) Create(_ context.Context, _ db.DBTX, req *benefit.Request) (uuid.UUID, error) {
	r.created = append(r.created, req)
	return req.ID(), nil
}

func (r *fakeRequestRepo) Update(_ context.Context, _ db.DBTX, req *benefit.Request) error {
	r.updated = append(r.updated, req)
	if r.stored != nil {
		r.stored[req.ID()] = req
	}
	return nil
}

func (r *fakeRequestRepo) FindByIDForUpdate(_ context.Context, _ db.DBTX, id uuid.UUID) (*benefit.Request, error) {
	req, ok := r.stored[id]
	if !ok {
		return nil, notFound("request not found")
	}
	return benefit.ReconstructRequest(
		req.ID(), req.MemberID(), req.OfferingID(),
		req.Status(),
		req.Answers(), req.Documents(),
		req.Comment(), req.ProcessedBy(),
		req.SubmittedAt(), req.ProcessedAt(), req.FinalizedAt(),
	), nil
}

func (r *fakeRequestRepo) CountActive(_ context.Context, _ db.DBTX, _ uuid.UUID) (int64, error) {
	return r.activeCount, nil
}

func (r *fakeRequestRepo) CountActiveByMember(_ context.Context, _ db.DBTX, _, _ uuid.UUID) (int64, error) {
	return r.memberActiveCount, nil
}

type fakeProposalRepo struct {
	stored    map[uuid.UUID]*modification.Proposal
	created   []*modification.Proposal
	updated   []*modification.Proposal
	createErr error
}

func (r *fakeProposalRepo) Create(_ context.Context, _ db.DBTX, p *modification.Proposal) (uuid.UUID, error) {
	if r.createErr != nil {
		return uuid.Nil, r.createErr
	}
	r.created = append(r.created, p)
	r.stored[p.ID()] = p
	return p.ID(), nil
}

func (r *fakeProposalRepo) Update(_ context.Context, _ db.DBTX, p *modification.Proposal) error {
	r.updated = append(r.updated, p)
	r.stored[p.ID()] = p
	return nil
}

func (r *fakeProposalRepo) FindByIDForUpdate(_ context.Context, _ db.DBTX, id uuid.UUID) (*modification.Proposal, error) {
	p, ok := r.stored[id]
	if !ok {
		return nil, notFound("proposal not found")
	}
	return modification.ReconstructProposal(
		p.ID(), p.MemberID(),
		p.TargetKind(), p.Action(),
		p.TargetID(), p.TargetLabel(),
		p.OldValues(), p.NewValues(), p.Documents(),
		p.Status(), p.Comment(), p.ProcessedBy(),
		p.CreatedAt(), p.ProcessedAt(),
	), nil
}

// PendingExists scans the stored proposals with the same keying as the
// SQL it stands in for.
func (r *fakeProposalRepo) PendingExists(_ context.Context, _ db.DBTX, memberID uuid.UUID, kind modification.TargetKind, targetID uuid.UUID) (bool, error) {
	for _, p := range r.stored {
		if p.MemberID() != memberID || p.TargetKind() != kind || !p.IsPending() {
			continue
		}
		if p.TargetID() != nil && *p.TargetID() == targetID {
			return true, nil
		}
	}
	return false, nil
}

type fakeHouseholdRepo struct {
	member    *household.Member
	spouse    *household.Spouse
	dependent *household.Dependent

	savedMembers     []*household.Member
	savedSpouses     []*household.Spouse
	savedDependents  []*household.Dependent
	insertedSpouses  []*household.Spouse
	insertedChildren []*household.Dependent
}

func (r *fakeHouseholdRepo) MemberByID(_ context.Context, _ db.DBTX, id uuid.UUID) (*household.Member, error) {
	if r.member == nil || r.member.ID() != id {
		return nil, notFound("member not found")
	}
	return r.member, nil
}

func (r *fakeHouseholdRepo) SpouseByID(_ context.Context, _ db.DBTX, id uuid.UUID) (*household.Spouse, error) {
	if r.spouse == nil || r.spouse.ID() != id {
		return nil, notFound("spouse not found")
	}
	return r.spouse, nil
}

func (r *fakeHouseholdRepo) DependentByID(_ context.Context, _ db.DBTX, id uuid.UUID) (*household.Dependent, error) {
	if r.dependent == nil || r.dependent.ID() != id {
		return nil, notFound("dependent not found")
	}
	return r.dependent, nil
}

func (r *fakeHouseholdRepo) SaveMember(_ context.Context, _ db.DBTX, m *household.Member) error {
	r.savedMembers = append(r.savedMembers, m)
	return nil
}

func (r *fakeHouseholdRepo) SaveSpouse(_ context.Context, _ db.DBTX, s *household.Spouse) error {
	r.savedSpouses = append(r.savedSpouses, s)
	return nil
}

func (r *fakeHouseholdRepo) SaveDependent(_ context.Context, _ db.DBTX, d *household.Dependent) error {
	r.savedDependents = append(r.savedDependents, d)
	return nil
}

func (r *fakeHouseholdRepo) InsertSpouse(_ context.Context, _ db.DBTX, s *household.Spouse) (uuid.UUID, error) {
	r.insertedSpouses = append(r.insertedSpouses, s)
	return s.ID(), nil
}

func (r *fakeHouseholdRepo) InsertDependent(_ context.Context, _ db.DBTX, d *household.Dependent) (uuid.UUID, error) {
	r.insertedChildren = append(r.insertedChildren, d)
	return d.ID(), nil
}
