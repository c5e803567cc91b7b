package response

import (
	"time"

	"benefit-desk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type OfferingResponse struct {
	ID          uuid.UUID  `json:"id"`
	Label       string     `json:"label"`
	Description string     `json:"description"`
	Open        bool       `json:"open"`
	OpensAt     *time.Time `json:"opensAt,omitempty"`
	ClosesAt    *time.Time `json:"closesAt,omitempty"`
	Quota       int32      `json:"quota"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type OfferingStatsResponse struct {
	OfferingID uuid.UUID `json:"offeringId"`
	Submitted  int64     `json:"submitted"`
	InReview   int64     `json:"inReview"`
	Accepted   int64     `json:"accepted"`
	Rejected   int64     `json:"rejected"`
	Completed  int64     `json:"completed"`
	Active     int64     `json:"active"`
}

func FromOfferingView(v *queries.OfferingView) (*OfferingResponse, error) {
	var resp OfferingResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromOfferingList(views []*queries.OfferingView) ([]*OfferingResponse, error) {
	res := make([]*OfferingResponse, len(views))
	for i, v := range views {
		resp, err := FromOfferingView(v)
		if err != nil {
			return nil, err
		}
		res[i] = resp
	}
	return res, nil
}

func FromOfferingStats(s *queries.OfferingStatsView) (*OfferingStatsResponse, error) {
	var resp OfferingStatsResponse
	if err := copier.Copy(&resp, s); err != nil {
		return nil, err
	}
	return &resp, nil
}
