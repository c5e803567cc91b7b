package queries

import (
	"context"
	"time"

	"benefit-desk/internal/domain/user"
	"benefit-desk/internal/infra"
	"benefit-desk/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRequestNotFound = errs.New("benefit request not found")
	ErrRequestAccess   = errs.New("benefit request access denied")
)

type RequestFilters struct {
	Status *string
}

type RequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	FindByMemberFirstPage(ctx context.Context, memberID uuid.UUID, limit int32) ([]*RequestListItem, error)
	FindByMemberKeyset(ctx context.Context, memberID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*RequestListItem, error)
	FindByOfferingFirstPage(ctx context.Context, offeringID uuid.UUID, status *string, limit int32) ([]*RequestListItem, error)
	FindByOfferingKeyset(ctx context.Context, offeringID uuid.UUID, status *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*RequestListItem, error)
}

type BenefitQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) (*RequestView, error)
	ListByMember(ctx context.Context, memberID uuid.UUID, cursor *Cursor, limit int) ([]*RequestListItem, *Cursor, error)
	ListByOffering(ctx context.Context, offeringID uuid.UUID, filters RequestFilters, cursor *Cursor, limit int) ([]*RequestListItem, *Cursor, error)
}

type benefitQueriesImpl struct {
	repo RequestReadStore
}

func NewBenefitQueries(repo RequestReadStore) BenefitQueries {
	return &benefitQueriesImpl{repo: repo}
}

// GetByID returns the full request. Members only see their own; staff see
// all.
func (q *benefitQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) (*RequestView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	if !user.Role(actorRole).IsStaff() && view.MemberUserID != actorID {
		return nil, ErrRequestAccess
	}
	return view, nil
}

func (q *benefitQueriesImpl) ListByMember(ctx context.Context, memberID uuid.UUID, cursor *Cursor, limit int) ([]*RequestListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*RequestListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindByMemberFirstPage(ctx, memberID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindByMemberKeyset(ctx, memberID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	return paginateRequests(rows, limit)
}

func (q *benefitQueriesImpl) ListByOffering(ctx context.Context, offeringID uuid.UUID, filters RequestFilters, cursor *Cursor, limit int) ([]*RequestListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*RequestListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindByOfferingFirstPage(ctx, offeringID, filters.Status, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindByOfferingKeyset(ctx, offeringID, filters.Status, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	return paginateRequests(rows, limit)
}

func paginateRequests(rows []*RequestListItem, limit int) ([]*RequestListItem, *Cursor, error) {
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.SubmittedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
