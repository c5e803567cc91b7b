//go:build unit || e2e

package builder

import (
	"time"

	domoffering "benefit-desk/internal/domain/offering"
	reqdto "benefit-desk/internal/handler/dto/request"
	"benefit-desk/internal/usecase/queries"

	"github.com/google/uuid"
)

type OfferingBuilder struct {
	Label       string
	Description string
	Open        bool
	OpensAt     *time.Time
	ClosesAt    *time.Time
	Quota       int32
	CreatedBy   uuid.UUID
	Now         time.Time
}

func NewOfferingBuilder() *OfferingBuilder {
	now := time.Now()
	return &OfferingBuilder{
		Label:       "Winter school allowance",
		Description: "One-off allowance for school supplies",
		Open:        true,
		Quota:       10,
		CreatedBy:   uuid.New(),
		Now:         now,
	}
}

func (b *OfferingBuilder) With(mutate func(*OfferingBuilder)) *OfferingBuilder {
	mutate(b)
	return b
}

func (b *OfferingBuilder) WithWindow(opensAt, closesAt time.Time) *OfferingBuilder {
	b.OpensAt = &opensAt
	b.ClosesAt = &closesAt
	return b
}

func (b *OfferingBuilder) WithQuota(quota int32) *OfferingBuilder {
	b.Quota = quota
	return b
}

func (b *OfferingBuilder) WithOpen(open bool) *OfferingBuilder {
	b.Open = open
	return b
}

func (b *OfferingBuilder) BuildDomain() (*domoffering.Offering, error) {
	return domoffering.NewOffering(b.Label, b.Description, b.Open, b.OpensAt, b.ClosesAt, b.Quota, b.CreatedBy, b.Now)
}

func (b *OfferingBuilder) BuildView() *queries.OfferingView {
	return &queries.OfferingView{
		ID:          uuid.New(),
		Label:       b.Label,
		Description: b.Description,
		Open:        b.Open,
		OpensAt:     b.OpensAt,
		ClosesAt:    b.ClosesAt,
		Quota:       b.Quota,
		CreatedAt:   b.Now,
		UpdatedAt:   b.Now,
	}
}

func (b *OfferingBuilder) BuildCreateRequestDTO() reqdto.CreateOfferingRequest {
	return reqdto.CreateOfferingRequest{
		Label:       b.Label,
		Description: b.Description,
		Open:        b.Open,
		OpensAt:     b.OpensAt,
		ClosesAt:    b.ClosesAt,
		Quota:       b.Quota,
	}
}
