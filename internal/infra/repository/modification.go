package repository

import (
	"context"

	"benefit-desk/internal/domain/modification"
	"benefit-desk/internal/infra"
	"benefit-desk/internal/infra/db"
	"benefit-desk/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ProposalRepository struct{}

func NewProposalRepository() *ProposalRepository {
	return &ProposalRepository{}
}

func (r *ProposalRepository) Create(ctx context.Context, tx db.DBTX, p *modification.Proposal) (uuid.UUID, error) {
	const query = `
		INSERT INTO modification_proposals
			(id, member_id, target_kind, action, target_id, target_label, old_values, new_values, documents, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	var id pgtype.UUID
	err := tx.QueryRow(ctx, query,
		pgconv.UUIDToPgtype(p.ID()),
		pgconv.UUIDToPgtype(p.MemberID()),
		p.TargetKind().String(),
		p.Action().String(),
		pgconv.UUIDPtrToPgtype(p.TargetID()),
		p.TargetLabel(),
		p.OldValues(),
		p.NewValues(),
		p.Documents(),
		p.Status().String(),
		pgconv.TimeToPgtype(p.CreatedAt()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create proposal", err)
	}
	return pgconv.UUIDFromPgtype(id), nil
}

func (r *ProposalRepository) Update(ctx context.Context, tx db.DBTX, p *modification.Proposal) error {
	const query = `
		UPDATE modification_proposals
		SET status = $2, comment = $3, processed_by = $4, processed_at = $5, target_id = $6
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query,
		pgconv.UUIDToPgtype(p.ID()),
		p.Status().String(),
		pgconv.StringPtrToPgtype(p.Comment()),
		pgconv.UUIDPtrToPgtype(p.ProcessedBy()),
		pgconv.TimePtrToPgtype(p.ProcessedAt()),
		pgconv.UUIDPtrToPgtype(p.TargetID()),
	)
	if err != nil {
		return wrapWriteErr("failed to update proposal", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("proposal not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ProposalRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*modification.Proposal, error) {
	const query = `
		SELECT id, member_id, target_kind, action, target_id, target_label, old_values, new_values, documents,
		       status, comment, processed_by, created_at, processed_at
		FROM modification_proposals
		WHERE id = $1
		FOR UPDATE`

	var (
		rowID       pgtype.UUID
		memberID    pgtype.UUID
		targetKind  string
		action      string
		targetID    pgtype.UUID
		targetLabel string
		oldValues   []byte
		newValues   []byte
		documents   []byte
		status      string
		comment     pgtype.Text
		processedBy pgtype.UUID
		createdAt   pgtype.Timestamptz
		processedAt pgtype.Timestamptz
	)
	err := tx.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(
		&rowID, &memberID, &targetKind, &action, &targetID, &targetLabel,
		&oldValues, &newValues, &documents, &status, &comment, &processedBy,
		&createdAt, &processedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("proposal not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find proposal", err)
	}

	return modification.ReconstructProposal(
		pgconv.UUIDFromPgtype(rowID),
		pgconv.UUIDFromPgtype(memberID),
		modification.TargetKind(targetKind),
		modification.Action(action),
		pgconv.UUIDPtrFromPgtype(targetID),
		targetLabel,
		oldValues,
		newValues,
		documents,
		modification.Status(status),
		pgconv.StringPtrFromPgtype(comment),
		pgconv.UUIDPtrFromPgtype(processedBy),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimePtrFromPgtype(processedAt),
	), nil
}

// PendingExists matches update proposals by exact target. It is a
// fast-path check; the partial unique index on pending proposals is the
// authoritative guard under concurrency.
func (r *ProposalRepository) PendingExists(ctx context.Context, tx db.DBTX, memberID uuid.UUID, kind modification.TargetKind, targetID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1
			FROM modification_proposals
			WHERE member_id = $1
			  AND target_kind = $2
			  AND status = $3
			  AND target_id = $4
		)`

	var exists bool
	err := tx.QueryRow(ctx, query,
		pgconv.UUIDToPgtype(memberID),
		kind.String(),
		modification.StatusPending.String(),
		pgconv.UUIDToPgtype(targetID),
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check pending proposals", err)
	}
	return exists, nil
}
