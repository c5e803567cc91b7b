package queries

import (
	"context"
	"time"

	"benefit-desk/internal/domain/modification"
	"benefit-desk/internal/domain/user"
	"benefit-desk/internal/infra"
	"benefit-desk/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrProposalNotFound = errs.New("proposal not found")
	ErrProposalAccess   = errs.New("proposal access denied")
)

// ProposalValues carries the stored value maps alongside the view so the
// diff can be computed without a second read.
type ProposalValues struct {
	OldValues []byte
	NewValues []byte
}

type ProposalReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProposalView, *ProposalValues, error)
	FindPendingFirstPage(ctx context.Context, limit int32) ([]*ProposalListItem, error)
	FindPendingKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ProposalListItem, error)
	FindByMember(ctx context.Context, memberID uuid.UUID) ([]*ProposalListItem, error)
	CountPending(ctx context.Context) (int64, error)
}

type ModificationQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) (*ProposalView, error)
	GetChanges(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) ([]ProposalChangeView, error)
	ListPending(ctx context.Context, cursor *Cursor, limit int) ([]*ProposalListItem, *Cursor, error)
	ListByMember(ctx context.Context, memberID uuid.UUID) ([]*ProposalListItem, error)
	PendingCount(ctx context.Context) (int64, error)
}

type modificationQueriesImpl struct {
	repo ProposalReadStore
}

func NewModificationQueries(repo ProposalReadStore) ModificationQueries {
	return &modificationQueriesImpl{repo: repo}
}

func (q *modificationQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) (*ProposalView, error) {
	view, _, err := q.find(ctx, actorID, actorRole, id)
	return view, err
}

// GetChanges diffs the stored old and new value maps field by field.
func (q *modificationQueriesImpl) GetChanges(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) ([]ProposalChangeView, error) {
	_, values, err := q.find(ctx, actorID, actorRole, id)
	if err != nil {
		return nil, err
	}

	oldValues, err := modification.DecodeValues(values.OldValues)
	if err != nil {
		return nil, err
	}
	newValues, err := modification.DecodeValues(values.NewValues)
	if err != nil {
		return nil, err
	}

	changes := modification.Compare(oldValues, newValues)
	views := make([]ProposalChangeView, 0, len(changes))
	for _, c := range changes {
		view := ProposalChangeView{
			Key:        c.Key,
			Label:      c.Label,
			IsDocument: c.IsDocument,
		}
		if c.Old != nil {
			text := c.Old.Text()
			view.Old = &text
		}
		if c.New != nil {
			text := c.New.Text()
			view.New = &text
		}
		views = append(views, view)
	}
	return views, nil
}

func (q *modificationQueriesImpl) ListPending(ctx context.Context, cursor *Cursor, limit int) ([]*ProposalListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*ProposalListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindPendingFirstPage(ctx, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindPendingKeyset(ctx, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *modificationQueriesImpl) ListByMember(ctx context.Context, memberID uuid.UUID) ([]*ProposalListItem, error) {
	return q.repo.FindByMember(ctx, memberID)
}

// PendingCount feeds the staff dashboard counter.
func (q *modificationQueriesImpl) PendingCount(ctx context.Context) (int64, error) {
	return q.repo.CountPending(ctx)
}

func (q *modificationQueriesImpl) find(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) (*ProposalView, *ProposalValues, error) {
	view, values, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrProposalNotFound
		}
		return nil, nil, err
	}
	if !user.Role(actorRole).IsStaff() && view.MemberUserID != actorID {
		return nil, nil, ErrProposalAccess
	}
	return view, values, nil
}
