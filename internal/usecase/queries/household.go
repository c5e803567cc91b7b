package queries

import (
	"context"

	"benefit-desk/internal/infra"
	"benefit-desk/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrHouseholdNotFound = errs.New("household not found")

type HouseholdReadStore interface {
	FindHouseholdByUserID(ctx context.Context, userID uuid.UUID) (*HouseholdView, error)
}

type HouseholdQueries interface {
	GetMine(ctx context.Context, userID uuid.UUID) (*HouseholdView, error)
}

type householdQueriesImpl struct {
	repo HouseholdReadStore
}

func NewHouseholdQueries(repo HouseholdReadStore) HouseholdQueries {
	return &householdQueriesImpl{repo: repo}
}

// GetMine returns the acting member's record plus their spouses and
// dependents. Document bytes stay out of the view; only metadata is exposed.
func (q *householdQueriesImpl) GetMine(ctx context.Context, userID uuid.UUID) (*HouseholdView, error) {
	view, err := q.repo.FindHouseholdByUserID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHouseholdNotFound
		}
		return nil, err
	}
	return view, nil
}
