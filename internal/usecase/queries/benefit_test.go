//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"benefit-desk/internal/infra"
	"benefit-desk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRequestReadStore struct {
	view *queries.RequestView
	rows []*queries.RequestListItem

	keysetCalled bool
	lastSeenAt   time.Time
	lastSeenID   uuid.UUID
}

func (f *fakeRequestReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.RequestView, error) {
	if f.view == nil || f.view.ID != id {
		return nil, infra.WrapRepoErr("request not found", nil, infra.KindNotFound)
	}
	return f.view, nil
}

func (f *fakeRequestReadStore) FindByMemberFirstPage(_ context.Context, _ uuid.UUID, limit int32) ([]*queries.RequestListItem, error) {
	return f.page(limit), nil
}

func (f *fakeRequestReadStore) FindByMemberKeyset(_ context.Context, _ uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.RequestListItem, error) {
	f.keysetCalled = true
	f.lastSeenAt = lastCreatedAt
	f.lastSeenID = lastID
	return f.page(limit), nil
}

func (f *fakeRequestReadStore) FindByOfferingFirstPage(_ context.Context, _ uuid.UUID, _ *string, limit int32) ([]*queries.RequestListItem, error) {
	return f.page(limit), nil
}

func (f *fakeRequestReadStore) FindByOfferingKeyset(_ context.Context, _ uuid.UUID, _ *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.RequestListItem, error) {
	f.keysetCalled = true
	f.lastSeenAt = lastCreatedAt
	f.lastSeenID = lastID
	return f.page(limit), nil
}

func (f *fakeRequestReadStore) page(limit int32) []*queries.RequestListItem {
	if int(limit) < len(f.rows) {
		return f.rows[:limit]
	}
	return f.rows
}

func listItems(n int, start time.Time) []*queries.RequestListItem {
	rows := make([]*queries.RequestListItem, n)
	for i := range rows {
		rows[i] = &queries.RequestListItem{
			ID:          uuid.New(),
			SubmittedAt: start.Add(-time.Duration(i) * time.Minute),
			Status:      "submitted",
		}
	}
	return rows
}

func TestBenefitGetByID(t *testing.T) {
	ownerUserID := uuid.New()
	view := &queries.RequestView{
		ID:           uuid.New(),
		MemberUserID: ownerUserID,
		Status:       "submitted",
		SubmittedAt:  time.Now(),
	}
	store := &fakeRequestReadStore{view: view}
	q := queries.NewBenefitQueries(store)

	t.Run("owner can read their own request", func(t *testing.T) {
		got, err := q.GetByID(context.Background(), ownerUserID, "member", view.ID)

		require.NoError(t, err)
		assert.Equal(t, view.ID, got.ID)
	})

	t.Run("staff can read any request", func(t *testing.T) {
		_, err := q.GetByID(context.Background(), uuid.New(), "staff", view.ID)
		assert.NoError(t, err)

		_, err = q.GetByID(context.Background(), uuid.New(), "admin", view.ID)
		assert.NoError(t, err)
	})

	t.Run("another member is denied", func(t *testing.T) {
		_, err := q.GetByID(context.Background(), uuid.New(), "member", view.ID)
		assert.ErrorIs(t, err, queries.ErrRequestAccess)
	})

	t.Run("missing request", func(t *testing.T) {
		_, err := q.GetByID(context.Background(), ownerUserID, "member", uuid.New())
		assert.ErrorIs(t, err, queries.ErrRequestNotFound)
	})
}

func TestBenefitListByMemberPagination(t *testing.T) {
	memberID := uuid.New()
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	t.Run("short page has no next cursor", func(t *testing.T) {
		store := &fakeRequestReadStore{rows: listItems(3, start)}
		q := queries.NewBenefitQueries(store)

		rows, next, err := q.ListByMember(context.Background(), memberID, nil, 5)

		require.NoError(t, err)
		assert.Len(t, rows, 3)
		assert.Nil(t, next)
	})

	t.Run("full page produces a cursor onto the last row", func(t *testing.T) {
		store := &fakeRequestReadStore{rows: listItems(6, start)}
		q := queries.NewBenefitQueries(store)

		rows, next, err := q.ListByMember(context.Background(), memberID, nil, 5)

		require.NoError(t, err)
		assert.Len(t, rows, 5)
		require.NotNil(t, next)

		cursorAt, cursorID, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		last := rows[len(rows)-1]
		assert.Equal(t, last.ID, cursorID)
		assert.True(t, last.SubmittedAt.Equal(cursorAt))
	})

	t.Run("a cursor routes to the keyset query", func(t *testing.T) {
		store := &fakeRequestReadStore{rows: listItems(1, start)}
		q := queries.NewBenefitQueries(store)

		lastID := uuid.New()
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(start, lastID)}

		_, _, err := q.ListByMember(context.Background(), memberID, cursor, 5)

		require.NoError(t, err)
		assert.True(t, store.keysetCalled)
		assert.Equal(t, lastID, store.lastSeenID)
		assert.True(t, start.Equal(store.lastSeenAt))
	})

	t.Run("a broken cursor is rejected", func(t *testing.T) {
		store := &fakeRequestReadStore{}
		q := queries.NewBenefitQueries(store)

		_, _, err := q.ListByMember(context.Background(), memberID, &queries.Cursor{After: "garbage"}, 5)

		assert.ErrorIs(t, err, queries.ErrInvalidCursor)
	})
}
