package shared

import (
	"context"

	"benefit-desk/internal/domain/benefit"
	"benefit-desk/internal/domain/household"
	"benefit-desk/internal/domain/modification"
	"benefit-desk/internal/domain/offering"
	"benefit-desk/internal/domain/user"
	"benefit-desk/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Offerings() OfferingRepository
	Requests() RequestRepository
	Proposals() ProposalRepository
	Household() HouseholdRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	MemberByUserID(ctx context.Context, userID uuid.UUID) (*MemberSnapshot, error)
}

// Minimal snapshot for command read operations
type MemberSnapshot struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	MemberNumber string
	FirstName    string
	LastName     string
}

type OfferingRepository interface {
	Create(ctx context.Context, tx db.DBTX, o *offering.Offering) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, o *offering.Offering) error
	// FindByIDForUpdate locks the offering row; submissions against one
	// offering serialize on it so quota checks stay exact.
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*offering.Offering, error)
}

type RequestRepository interface {
	Create(ctx context.Context, tx db.DBTX, r *benefit.Request) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, r *benefit.Request) error
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*benefit.Request, error)
	CountActive(ctx context.Context, tx db.DBTX, offeringID uuid.UUID) (int64, error)
	CountActiveByMember(ctx context.Context, tx db.DBTX, offeringID, memberID uuid.UUID) (int64, error)
}

type ProposalRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *modification.Proposal) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, p *modification.Proposal) error
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*modification.Proposal, error)
	// PendingExists checks for an unresolved update proposal by the same
	// member against the same target. Creation proposals are unguarded.
	PendingExists(ctx context.Context, tx db.DBTX, memberID uuid.UUID, kind modification.TargetKind, targetID uuid.UUID) (bool, error)
}

type HouseholdRepository interface {
	MemberByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*household.Member, error)
	SpouseByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*household.Spouse, error)
	DependentByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*household.Dependent, error)
	SaveMember(ctx context.Context, tx db.DBTX, m *household.Member) error
	SaveSpouse(ctx context.Context, tx db.DBTX, s *household.Spouse) error
	SaveDependent(ctx context.Context, tx db.DBTX, d *household.Dependent) error
	InsertSpouse(ctx context.Context, tx db.DBTX, s *household.Spouse) (uuid.UUID, error)
	InsertDependent(ctx context.Context, tx db.DBTX, d *household.Dependent) (uuid.UUID, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}
