//go:build unit || e2e

package builder

import (
	"encoding/json"
	"time"

	dombenefit "benefit-desk/internal/domain/benefit"
	reqdto "benefit-desk/internal/handler/dto/request"
	"benefit-desk/internal/usecase/queries"

	"github.com/google/uuid"
)

type RequestBuilder struct {
	MemberID      uuid.UUID
	MemberUserID  uuid.UUID
	MemberName    string
	MemberNumber  string
	OfferingID    uuid.UUID
	OfferingLabel string
	Status        string
	Answers       json.RawMessage
	SubmittedAt   time.Time
}

func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{
		MemberID:      uuid.New(),
		MemberUserID:  uuid.New(),
		MemberName:    "Jane Cooper",
		MemberNumber:  "M-10042",
		OfferingID:    uuid.New(),
		OfferingLabel: "Winter school allowance",
		Status:        "submitted",
		Answers:       json.RawMessage(`{"children":2,"school":"Lakeside Primary"}`),
		SubmittedAt:   time.Now(),
	}
}

func (b *RequestBuilder) With(mutate func(*RequestBuilder)) *RequestBuilder {
	mutate(b)
	return b
}

func (b *RequestBuilder) BuildDomain() *dombenefit.Request {
	return dombenefit.NewRequest(b.MemberID, b.OfferingID, b.Answers, nil, b.SubmittedAt)
}

func (b *RequestBuilder) BuildView() *queries.RequestView {
	return &queries.RequestView{
		ID:            uuid.New(),
		OfferingID:    b.OfferingID,
		OfferingLabel: b.OfferingLabel,
		MemberID:      b.MemberID,
		MemberUserID:  b.MemberUserID,
		MemberName:    b.MemberName,
		MemberNumber:  b.MemberNumber,
		Status:        b.Status,
		Answers:       b.Answers,
		SubmittedAt:   b.SubmittedAt,
	}
}

func (b *RequestBuilder) BuildListItem() *queries.RequestListItem {
	return &queries.RequestListItem{
		ID:            uuid.New(),
		OfferingID:    b.OfferingID,
		OfferingLabel: b.OfferingLabel,
		MemberID:      b.MemberID,
		MemberName:    b.MemberName,
		Status:        b.Status,
		SubmittedAt:   b.SubmittedAt,
	}
}

func (b *RequestBuilder) BuildSubmitRequestDTO() reqdto.SubmitRequestRequest {
	return reqdto.SubmitRequestRequest{
		OfferingID: b.OfferingID,
		Answers:    b.Answers,
	}
}
