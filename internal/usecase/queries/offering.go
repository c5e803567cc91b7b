package queries

import (
	"context"

	"benefit-desk/internal/infra"
	"benefit-desk/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrOfferingNotFound = errs.New("offering not found")

type OfferingFilters struct {
	// OnlyAvailable keeps offerings whose open flag is set.
	OnlyAvailable bool
}

type OfferingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OfferingView, error)
	FindAll(ctx context.Context, onlyAvailable bool) ([]*OfferingView, error)
	GetStats(ctx context.Context, offeringID uuid.UUID) (*OfferingStatsView, error)
}

type OfferingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*OfferingView, error)
	List(ctx context.Context, filters OfferingFilters) ([]*OfferingView, error)
	GetStats(ctx context.Context, offeringID uuid.UUID) (*OfferingStatsView, error)
}

type offeringQueriesImpl struct {
	repo OfferingReadStore
}

func NewOfferingQueries(repo OfferingReadStore) OfferingQueries {
	return &offeringQueriesImpl{repo: repo}
}

func (q *offeringQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*OfferingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfferingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *offeringQueriesImpl) List(ctx context.Context, filters OfferingFilters) ([]*OfferingView, error) {
	return q.repo.FindAll(ctx, filters.OnlyAvailable)
}

func (q *offeringQueriesImpl) GetStats(ctx context.Context, offeringID uuid.UUID) (*OfferingStatsView, error) {
	stats, err := q.repo.GetStats(ctx, offeringID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfferingNotFound
		}
		return nil, err
	}
	return stats, nil
}
