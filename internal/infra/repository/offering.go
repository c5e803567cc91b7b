package repository

import (
	"context"

	"benefit-desk/internal/domain/offering"
	"benefit-desk/internal/infra"
	"benefit-desk/internal/infra/db"
	"benefit-desk/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OfferingRepository struct{}

func NewOfferingRepository() *OfferingRepository {
	return &OfferingRepository{}
}

func (r *OfferingRepository) Create(ctx context.Context, tx db.DBTX, o *offering.Offering) (uuid.UUID, error) {
	const query = `
		INSERT INTO offerings (id, label, description, open, opens_at, closes_at, quota, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	var id pgtype.UUID
	err := tx.QueryRow(ctx, query,
		pgconv.UUIDToPgtype(o.ID()),
		o.Label(),
		o.Description(),
		o.IsOpen(),
		pgconv.TimePtrToPgtype(o.OpensAt()),
		pgconv.TimePtrToPgtype(o.ClosesAt()),
		o.Quota(),
		pgconv.UUIDToPgtype(o.CreatedBy()),
		pgconv.TimeToPgtype(o.CreatedAt()),
		pgconv.TimeToPgtype(o.UpdatedAt()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create offering", err)
	}
	return pgconv.UUIDFromPgtype(id), nil
}

func (r *OfferingRepository) Update(ctx context.Context, tx db.DBTX, o *offering.Offering) error {
	const query = `
		UPDATE offerings
		SET label = $2, description = $3, open = $4, opens_at = $5, closes_at = $6, quota = $7, updated_at = $8
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query,
		pgconv.UUIDToPgtype(o.ID()),
		o.Label(),
		o.Description(),
		o.IsOpen(),
		pgconv.TimePtrToPgtype(o.OpensAt()),
		pgconv.TimePtrToPgtype(o.ClosesAt()),
		o.Quota(),
		pgconv.TimeToPgtype(o.UpdatedAt()),
	)
	if err != nil {
		return wrapWriteErr("failed to update offering", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("offering not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OfferingRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*offering.Offering, error) {
	const query = `
		SELECT id, label, description, open, opens_at, closes_at, quota, created_by, created_at, updated_at
		FROM offerings
		WHERE id = $1
		FOR UPDATE`

	var (
		rowID     pgtype.UUID
		label     string
		desc      string
		open      bool
		opensAt   pgtype.Timestamptz
		closesAt  pgtype.Timestamptz
		quota     int32
		createdBy pgtype.UUID
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := tx.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(
		&rowID, &label, &desc, &open, &opensAt, &closesAt, &quota, &createdBy, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offering not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find offering", err)
	}

	return offering.ReconstructOffering(
		pgconv.UUIDFromPgtype(rowID),
		label,
		desc,
		open,
		pgconv.TimePtrFromPgtype(opensAt),
		pgconv.TimePtrFromPgtype(closesAt),
		quota,
		pgconv.UUIDFromPgtype(createdBy),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}
