package commands

import (
	"context"
	"encoding/json"

	"benefit-desk/internal/domain/benefit"
	"benefit-desk/internal/infra"
	"benefit-desk/internal/pkg/clock"
	"benefit-desk/internal/pkg/errs"
	"benefit-desk/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrMemberNotFound       = errs.New("member record not found for user")
	ErrRequestNotFoundWrite = errs.New("benefit request not found")
	ErrInvalidStatus        = errs.New("invalid request status")
)

type SubmitRequestRequest struct {
	OfferingID uuid.UUID
	Answers    json.RawMessage
}

type SubmitRequestResult struct {
	RequestID uuid.UUID
}

type SetRequestStatusRequest struct {
	Status  string
	Comment *string
}

type BenefitCommands interface {
	SubmitRequest(ctx context.Context, req SubmitRequestRequest, userID uuid.UUID) (*SubmitRequestResult, error)
	SetRequestStatus(ctx context.Context, requestID uuid.UUID, req SetRequestStatusRequest, actorID uuid.UUID) error
}

type benefitUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBenefitUseCase(uow shared.UnitOfWork, clk clock.Clock) BenefitCommands {
	return &benefitUseCaseImpl{uow: uow, clock: clk}
}

// SubmitRequest files a benefit request after re-checking eligibility under
// a lock on the offering row. Submissions against one offering serialize on
// that lock, so the quota can never be oversubscribed by concurrent
// submissions.
func (uc *benefitUseCaseImpl) SubmitRequest(ctx context.Context, req SubmitRequestRequest, userID uuid.UUID) (*SubmitRequestResult, error) {
	answers, documents, err := benefit.SplitAnswers(req.Answers)
	if err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		member, derr := tx.Reads().MemberByUserID(ctx, userID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrMemberNotFound
			}
			return derr
		}

		entity, derr := tx.Offerings().FindByIDForUpdate(ctx, tx.DB(), req.OfferingID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrOfferingNotFoundWrite
			}
			return derr
		}

		activeCount, derr := tx.Requests().CountActive(ctx, tx.DB(), req.OfferingID)
		if derr != nil {
			return derr
		}
		memberActiveCount, derr := tx.Requests().CountActiveByMember(ctx, tx.DB(), req.OfferingID, member.ID)
		if derr != nil {
			return derr
		}

		if derr = entity.CheckEligibility(uc.clock.Now(), activeCount, memberActiveCount); derr != nil {
			return derr
		}

		request := benefit.NewRequest(member.ID, req.OfferingID, answers, documents, uc.clock.Now())
		id, derr := tx.Requests().Create(ctx, tx.DB(), request)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &SubmitRequestResult{RequestID: createdID}, nil
}

func (uc *benefitUseCaseImpl) SetRequestStatus(ctx context.Context, requestID uuid.UUID, req SetRequestStatusRequest, actorID uuid.UUID) error {
	status, err := benefit.NewStatus(req.Status)
	if err != nil {
		return errs.Mark(err, ErrInvalidStatus)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		request, derr := tx.Requests().FindByIDForUpdate(ctx, tx.DB(), requestID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrRequestNotFoundWrite
			}
			return derr
		}

		if derr = request.SetStatus(status, req.Comment, &actorID, uc.clock.Now()); derr != nil {
			return derr
		}
		return tx.Requests().Update(ctx, tx.DB(), request)
	})
}
