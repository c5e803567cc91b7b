package commands

import (
	"context"
	"time"

	"benefit-desk/internal/domain/offering"
	"benefit-desk/internal/infra"
	"benefit-desk/internal/pkg/clock"
	"benefit-desk/internal/pkg/errs"
	"benefit-desk/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrOfferingNotFoundWrite = errs.New("offering not found")

type CreateOfferingRequest struct {
	Label       string
	Description string
	Open        bool
	OpensAt     *time.Time
	ClosesAt    *time.Time
	Quota       int32
}

type UpdateOfferingRequest struct {
	Label       string
	Description string
	Open        bool
	OpensAt     *time.Time
	ClosesAt    *time.Time
	Quota       int32
}

type CreateOfferingResult struct {
	OfferingID uuid.UUID
}

type OfferingCommands interface {
	CreateOffering(ctx context.Context, req CreateOfferingRequest, actorID uuid.UUID) (*CreateOfferingResult, error)
	UpdateOffering(ctx context.Context, offeringID uuid.UUID, req UpdateOfferingRequest) error
	SetOfferingOpen(ctx context.Context, offeringID uuid.UUID, open bool) error
}

type offeringUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewOfferingUseCase(uow shared.UnitOfWork, clk clock.Clock) OfferingCommands {
	return &offeringUseCaseImpl{uow: uow, clock: clk}
}

func (uc *offeringUseCaseImpl) CreateOffering(ctx context.Context, req CreateOfferingRequest, actorID uuid.UUID) (*CreateOfferingResult, error) {
	entity, err := offering.NewOffering(
		req.Label,
		req.Description,
		req.Open,
		req.OpensAt,
		req.ClosesAt,
		req.Quota,
		actorID,
		uc.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Offerings().Create(ctx, tx.DB(), entity)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateOfferingResult{OfferingID: createdID}, nil
}

func (uc *offeringUseCaseImpl) UpdateOffering(ctx context.Context, offeringID uuid.UUID, req UpdateOfferingRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Offerings().FindByIDForUpdate(ctx, tx.DB(), offeringID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrOfferingNotFoundWrite
			}
			return err
		}

		if err := entity.Edit(
			req.Label,
			req.Description,
			req.Open,
			req.OpensAt,
			req.ClosesAt,
			req.Quota,
			uc.clock.Now(),
		); err != nil {
			return err
		}
		return tx.Offerings().Update(ctx, tx.DB(), entity)
	})
}

func (uc *offeringUseCaseImpl) SetOfferingOpen(ctx context.Context, offeringID uuid.UUID, open bool) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Offerings().FindByIDForUpdate(ctx, tx.DB(), offeringID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrOfferingNotFoundWrite
			}
			return err
		}

		entity.SetOpen(open, uc.clock.Now())
		return tx.Offerings().Update(ctx, tx.DB(), entity)
	})
}
