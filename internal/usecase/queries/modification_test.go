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

type fakeProposalReadStore struct {
	view    *queries.ProposalView
	values  *queries.ProposalValues
	pending int64
}

func (f *fakeProposalReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.ProposalView, *queries.ProposalValues, error) {
	if f.view == nil || f.view.ID != id {
		return nil, nil, infra.WrapRepoErr("proposal not found", nil, infra.KindNotFound)
	}
	return f.view, f.values, nil
}

func (f *fakeProposalReadStore) FindPendingFirstPage(_ context.Context, _ int32) ([]*queries.ProposalListItem, error) {
	return nil, nil
}

func (f *fakeProposalReadStore) FindPendingKeyset(_ context.Context, _ time.Time, _ uuid.UUID, _ int32) ([]*queries.ProposalListItem, error) {
	return nil, nil
}

func (f *fakeProposalReadStore) FindByMember(_ context.Context, _ uuid.UUID) ([]*queries.ProposalListItem, error) {
	return nil, nil
}

func (f *fakeProposalReadStore) CountPending(_ context.Context) (int64, error) {
	return f.pending, nil
}

func seedProposalStore() (*fakeProposalReadStore, uuid.UUID) {
	ownerUserID := uuid.New()
	store := &fakeProposalReadStore{
		view: &queries.ProposalView{
			ID:           uuid.New(),
			MemberUserID: ownerUserID,
			TargetKind:   "member",
			Action:       "update",
			Status:       "pending",
		},
		values: &queries.ProposalValues{
			OldValues: []byte(`{"phone":"0600000000","email":"jane@example.com"}`),
			NewValues: []byte(`{"phone":"0611111111","email":"jane@example.com","portrait_photo":{"$bytes":"iVBORw0="}}`),
		},
	}
	return store, ownerUserID
}

func TestModificationGetByID(t *testing.T) {
	store, ownerUserID := seedProposalStore()
	q := queries.NewModificationQueries(store)

	t.Run("owner can read their own proposal", func(t *testing.T) {
		got, err := q.GetByID(context.Background(), ownerUserID, "member", store.view.ID)

		require.NoError(t, err)
		assert.Equal(t, store.view.ID, got.ID)
	})

	t.Run("staff can read any proposal", func(t *testing.T) {
		_, err := q.GetByID(context.Background(), uuid.New(), "staff", store.view.ID)
		assert.NoError(t, err)
	})

	t.Run("another member is denied", func(t *testing.T) {
		_, err := q.GetByID(context.Background(), uuid.New(), "member", store.view.ID)
		assert.ErrorIs(t, err, queries.ErrProposalAccess)
	})

	t.Run("missing proposal", func(t *testing.T) {
		_, err := q.GetByID(context.Background(), ownerUserID, "member", uuid.New())
		assert.ErrorIs(t, err, queries.ErrProposalNotFound)
	})
}

func TestModificationGetChanges(t *testing.T) {
	store, ownerUserID := seedProposalStore()
	q := queries.NewModificationQueries(store)

	t.Run("renders changed fields only", func(t *testing.T) {
		changes, err := q.GetChanges(context.Background(), ownerUserID, "member", store.view.ID)

		require.NoError(t, err)
		require.Len(t, changes, 2)

		phone := changes[0]
		assert.Equal(t, "phone", phone.Key)
		assert.Equal(t, "Phone", phone.Label)
		assert.False(t, phone.IsDocument)
		require.NotNil(t, phone.Old)
		require.NotNil(t, phone.New)
		assert.Equal(t, "0600000000", *phone.Old)
		assert.Equal(t, "0611111111", *phone.New)

		photo := changes[1]
		assert.Equal(t, "portrait_photo", photo.Key)
		assert.True(t, photo.IsDocument)
		assert.Nil(t, photo.Old)
		require.NotNil(t, photo.New)
		assert.Equal(t, "(5 bytes)", *photo.New)
	})

	t.Run("access control applies before the diff", func(t *testing.T) {
		_, err := q.GetChanges(context.Background(), uuid.New(), "member", store.view.ID)
		assert.ErrorIs(t, err, queries.ErrProposalAccess)
	})
}
