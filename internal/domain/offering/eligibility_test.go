//go:build unit

package offering_test

import (
	"testing"
	"time"

	"benefit-desk/internal/domain/offering"
	"benefit-desk/internal/pkg/errs"
	"benefit-desk/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckEligibility(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name              string
		mutate            func(*builder.OfferingBuilder)
		activeCount       int64
		memberActiveCount int64
		errIs             error
	}{
		{
			name: "open offering with room",
		},
		{
			name:   "closed offering",
			mutate: func(b *builder.OfferingBuilder) { b.WithOpen(false) },
			errIs:  offering.ErrClosed,
		},
		{
			name: "window not open yet",
			mutate: func(b *builder.OfferingBuilder) {
				b.WithWindow(now.Add(time.Hour), now.Add(48*time.Hour))
			},
			errIs: offering.ErrBeforeWindow,
		},
		{
			name: "window expired",
			mutate: func(b *builder.OfferingBuilder) {
				b.WithWindow(now.Add(-48*time.Hour), now.Add(-time.Hour))
			},
			errIs: offering.ErrAfterWindow,
		},
		{
			name: "inside window",
			mutate: func(b *builder.OfferingBuilder) {
				b.WithWindow(now.Add(-time.Hour), now.Add(time.Hour))
			},
		},
		{
			name:        "quota reached",
			mutate:      func(b *builder.OfferingBuilder) { b.WithQuota(3) },
			activeCount: 3,
			errIs:       offering.ErrQuotaExceeded,
		},
		{
			name:        "one slot left",
			mutate:      func(b *builder.OfferingBuilder) { b.WithQuota(3) },
			activeCount: 2,
		},
		{
			name:        "zero quota means unlimited",
			mutate:      func(b *builder.OfferingBuilder) { b.WithQuota(0) },
			activeCount: 1000,
		},
		{
			name:              "member already has an active request",
			memberActiveCount: 1,
			errIs:             offering.ErrDuplicateRequest,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := builder.NewOfferingBuilder()
			if c.mutate != nil {
				c.mutate(b)
			}
			o, err := b.BuildDomain()
			require.NoError(t, err)

			err = o.CheckEligibility(now, c.activeCount, c.memberActiveCount)
			if c.errIs == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, c.errIs)
			assert.True(t, errs.Is(err, offering.ErrNotEligible), "rule failures carry the not-eligible marker")
		})
	}
}

func TestCheckEligibilityRuleOrder(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	// A closed offering with an exhausted quota reports closed first.
	o, err := builder.NewOfferingBuilder().WithOpen(false).WithQuota(1).BuildDomain()
	require.NoError(t, err)

	err = o.CheckEligibility(now, 5, 2)
	assert.ErrorIs(t, err, offering.ErrClosed)
	assert.NotErrorIs(t, err, offering.ErrQuotaExceeded)
}

func TestNewOfferingValidation(t *testing.T) {
	now := time.Now()

	t.Run("empty label", func(t *testing.T) {
		b := builder.NewOfferingBuilder()
		b.Label = "   "
		_, err := b.BuildDomain()
		assert.ErrorIs(t, err, offering.ErrEmptyLabel)
	})

	t.Run("negative quota", func(t *testing.T) {
		_, err := builder.NewOfferingBuilder().WithQuota(-1).BuildDomain()
		assert.ErrorIs(t, err, offering.ErrNegativeQuota)
	})

	t.Run("window closes before it opens", func(t *testing.T) {
		_, err := builder.NewOfferingBuilder().WithWindow(now.Add(time.Hour), now).BuildDomain()
		assert.ErrorIs(t, err, offering.ErrWindowOrder)
	})
}
