//go:build unit

package benefit_test

import (
	"testing"
	"time"

	"benefit-desk/internal/domain/benefit"
	"benefit-desk/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	r := builder.NewRequestBuilder().BuildDomain()

	assert.NotEqual(t, uuid.Nil, r.ID())
	assert.Equal(t, benefit.StatusSubmitted, r.Status())
	assert.True(t, r.IsActive())
	assert.Nil(t, r.ProcessedAt())
	assert.Nil(t, r.FinalizedAt())
	assert.Nil(t, r.ProcessedBy())
}

func TestSetStatus(t *testing.T) {
	staffID := uuid.New()
	comment := "looks complete"
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Hour)
	t2 := t0.Add(2 * time.Hour)

	t.Run("rejects unknown status", func(t *testing.T) {
		r := builder.NewRequestBuilder().BuildDomain()
		err := r.SetStatus(benefit.Status("archived"), nil, &staffID, t0)
		assert.ErrorIs(t, err, benefit.ErrInvalidStatus)
		assert.Equal(t, benefit.StatusSubmitted, r.Status())
	})

	t.Run("processing timestamp is stamped once", func(t *testing.T) {
		r := builder.NewRequestBuilder().BuildDomain()

		require.NoError(t, r.SetStatus(benefit.StatusInReview, &comment, &staffID, t0))
		require.NotNil(t, r.ProcessedAt())
		first := *r.ProcessedAt()
		assert.Equal(t, t0, first)

		require.NoError(t, r.SetStatus(benefit.StatusSubmitted, nil, &staffID, t1))
		require.NoError(t, r.SetStatus(benefit.StatusInReview, nil, &staffID, t2))
		require.NotNil(t, r.ProcessedAt())
		assert.Equal(t, first, *r.ProcessedAt())
	})

	t.Run("finalization timestamp is restamped on every terminal transition", func(t *testing.T) {
		r := builder.NewRequestBuilder().BuildDomain()

		require.NoError(t, r.SetStatus(benefit.StatusAccepted, nil, &staffID, t0))
		require.NotNil(t, r.FinalizedAt())
		assert.Equal(t, t0, *r.FinalizedAt())
		assert.True(t, r.IsActive(), "accepted stays active")

		require.NoError(t, r.SetStatus(benefit.StatusCompleted, nil, &staffID, t1))
		require.NotNil(t, r.FinalizedAt())
		assert.Equal(t, t1, *r.FinalizedAt())
	})

	t.Run("non terminal transition keeps finalization timestamp", func(t *testing.T) {
		r := builder.NewRequestBuilder().BuildDomain()

		require.NoError(t, r.SetStatus(benefit.StatusRejected, &comment, &staffID, t0))
		require.NoError(t, r.SetStatus(benefit.StatusSubmitted, nil, &staffID, t1))
		require.NotNil(t, r.FinalizedAt())
		assert.Equal(t, t0, *r.FinalizedAt())
	})

	t.Run("comment and processor overwritten on every call", func(t *testing.T) {
		r := builder.NewRequestBuilder().BuildDomain()
		otherStaff := uuid.New()

		require.NoError(t, r.SetStatus(benefit.StatusInReview, &comment, &staffID, t0))
		require.NotNil(t, r.Comment())
		assert.Equal(t, comment, *r.Comment())
		assert.Equal(t, staffID, *r.ProcessedBy())

		require.NoError(t, r.SetStatus(benefit.StatusAccepted, nil, &otherStaff, t1))
		assert.Nil(t, r.Comment())
		assert.Equal(t, otherStaff, *r.ProcessedBy())
	})
}

func TestStatusSets(t *testing.T) {
	assert.Equal(t, []string{"submitted", "in_review", "accepted"}, benefit.ActiveStatuses())

	for _, s := range []benefit.Status{benefit.StatusAccepted, benefit.StatusRejected, benefit.StatusCompleted} {
		assert.True(t, s.IsTerminal(), s.String())
	}
	for _, s := range []benefit.Status{benefit.StatusSubmitted, benefit.StatusInReview} {
		assert.False(t, s.IsTerminal(), s.String())
	}

	assert.True(t, benefit.StatusAccepted.IsActive())
	assert.False(t, benefit.StatusRejected.IsActive())
	assert.False(t, benefit.StatusCompleted.IsActive())
}
