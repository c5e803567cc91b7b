package repository

import (
	"context"

	"benefit-desk/internal/domain/benefit"
	"benefit-desk/internal/infra"
	"benefit-desk/internal/infra/db"
	"benefit-desk/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RequestRepository struct{}

func NewRequestRepository() *RequestRepository {
	return &RequestRepository{}
}

func (r *RequestRepository) Create(ctx context.Context, tx db.DBTX, req *benefit.Request) (uuid.UUID, error) {
	const query = `
		INSERT INTO benefit_requests (id, member_id, offering_id, status, answers, documents, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id pgtype.UUID
	err := tx.QueryRow(ctx, query,
		pgconv.UUIDToPgtype(req.ID()),
		pgconv.UUIDToPgtype(req.MemberID()),
		pgconv.UUIDToPgtype(req.OfferingID()),
		req.Status().String(),
		req.Answers(),
		req.Documents(),
		pgconv.TimeToPgtype(req.SubmittedAt()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create benefit request", err)
	}
	return pgconv.UUIDFromPgtype(id), nil
}

func (r *RequestRepository) Update(ctx context.Context, tx db.DBTX, req *benefit.Request) error {
	const query = `
		UPDATE benefit_requests
		SET status = $2, comment = $3, processed_by = $4, processed_at = $5, finalized_at = $6
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query,
		pgconv.UUIDToPgtype(req.ID()),
		req.Status().String(),
		pgconv.StringPtrToPgtype(req.Comment()),
		pgconv.UUIDPtrToPgtype(req.ProcessedBy()),
		pgconv.TimePtrToPgtype(req.ProcessedAt()),
		pgconv.TimePtrToPgtype(req.FinalizedAt()),
	)
	if err != nil {
		return wrapWriteErr("failed to update benefit request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("benefit request not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RequestRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*benefit.Request, error) {
	const query = `
		SELECT id, member_id, offering_id, status, answers, documents, comment, processed_by, submitted_at, processed_at, finalized_at
		FROM benefit_requests
		WHERE id = $1
		FOR UPDATE`

	var (
		rowID       pgtype.UUID
		memberID    pgtype.UUID
		offeringID  pgtype.UUID
		status      string
		answers     []byte
		documents   []byte
		comment     pgtype.Text
		processedBy pgtype.UUID
		submittedAt pgtype.Timestamptz
		processedAt pgtype.Timestamptz
		finalizedAt pgtype.Timestamptz
	)
	err := tx.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(
		&rowID, &memberID, &offeringID, &status, &answers, &documents,
		&comment, &processedBy, &submittedAt, &processedAt, &finalizedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("benefit request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find benefit request", err)
	}

	return benefit.ReconstructRequest(
		pgconv.UUIDFromPgtype(rowID),
		pgconv.UUIDFromPgtype(memberID),
		pgconv.UUIDFromPgtype(offeringID),
		benefit.Status(status),
		answers,
		documents,
		pgconv.StringPtrFromPgtype(comment),
		pgconv.UUIDPtrFromPgtype(processedBy),
		pgconv.TimeFromPgtype(submittedAt),
		pgconv.TimePtrFromPgtype(processedAt),
		pgconv.TimePtrFromPgtype(finalizedAt),
	), nil
}

func (r *RequestRepository) CountActive(ctx context.Context, tx db.DBTX, offeringID uuid.UUID) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM benefit_requests
		WHERE offering_id = $1 AND status = ANY($2)`

	var count int64
	err := tx.QueryRow(ctx, query, pgconv.UUIDToPgtype(offeringID), benefit.ActiveStatuses()).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count active requests", err)
	}
	return count, nil
}

func (r *RequestRepository) CountActiveByMember(ctx context.Context, tx db.DBTX, offeringID, memberID uuid.UUID) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM benefit_requests
		WHERE offering_id = $1 AND member_id = $2 AND status = ANY($3)`

	var count int64
	err := tx.QueryRow(ctx, query,
		pgconv.UUIDToPgtype(offeringID),
		pgconv.UUIDToPgtype(memberID),
		benefit.ActiveStatuses(),
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count member active requests", err)
	}
	return count, nil
}
