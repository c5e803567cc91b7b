package readstore

import (
	"context"
	"time"

	"benefit-desk/internal/infra"
	"benefit-desk/internal/infra/db"
	"benefit-desk/internal/pkg/pgconv"
	"benefit-desk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type RequestReadStore struct {
	dbtx db.DBTX
}

func NewRequestReadStore(dbtx db.DBTX) *RequestReadStore {
	return &RequestReadStore{dbtx: dbtx}
}

func (r *RequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	const query = `
		SELECT br.id, br.offering_id, o.label, br.member_id, m.user_id,
		       m.first_name || ' ' || m.last_name, m.member_number,
		       br.status, br.comment, br.answers,
		       br.submitted_at, br.processed_at, br.finalized_at, br.processed_by
		FROM benefit_requests br
		JOIN offerings o ON o.id = br.offering_id
		JOIN members m ON m.id = br.member_id
		WHERE br.id = $1`

	var (
		rowID       pgtype.UUID
		offeringID  pgtype.UUID
		memberID    pgtype.UUID
		userID      pgtype.UUID
		view        queries.RequestView
		comment     pgtype.Text
		submittedAt pgtype.Timestamptz
		processedAt pgtype.Timestamptz
		finalizedAt pgtype.Timestamptz
		processedBy pgtype.UUID
	)
	err := r.dbtx.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(
		&rowID, &offeringID, &view.OfferingLabel, &memberID, &userID,
		&view.MemberName, &view.MemberNumber,
		&view.Status, &comment, &view.Answers,
		&submittedAt, &processedAt, &finalizedAt, &processedBy,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("benefit request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find benefit request", err)
	}

	view.ID = pgconv.UUIDFromPgtype(rowID)
	view.OfferingID = pgconv.UUIDFromPgtype(offeringID)
	view.MemberID = pgconv.UUIDFromPgtype(memberID)
	view.MemberUserID = pgconv.UUIDFromPgtype(userID)
	view.Comment = pgconv.StringPtrFromPgtype(comment)
	view.SubmittedAt = pgconv.TimeFromPgtype(submittedAt)
	view.ProcessedAt = pgconv.TimePtrFromPgtype(processedAt)
	view.FinalizedAt = pgconv.TimePtrFromPgtype(finalizedAt)
	view.ProcessedBy = pgconv.UUIDPtrFromPgtype(processedBy)
	return &view, nil
}

const requestListSelect = `
	SELECT br.id, br.offering_id, o.label, br.member_id,
	       m.first_name || ' ' || m.last_name,
	       br.status, br.submitted_at
	FROM benefit_requests br
	JOIN offerings o ON o.id = br.offering_id
	JOIN members m ON m.id = br.member_id`

func (r *RequestReadStore) FindByMemberFirstPage(ctx context.Context, memberID uuid.UUID, limit int32) ([]*queries.RequestListItem, error) {
	query := requestListSelect + `
		WHERE br.member_id = $1
		ORDER BY br.submitted_at DESC, br.id DESC
		LIMIT $2`

	rows, err := r.dbtx.Query(ctx, query, pgconv.UUIDToPgtype(memberID), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list member requests", err)
	}
	return collectRequestItems(rows)
}

func (r *RequestReadStore) FindByMemberKeyset(ctx context.Context, memberID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.RequestListItem, error) {
	query := requestListSelect + `
		WHERE br.member_id = $1
		  AND (br.submitted_at, br.id) < ($2, $3)
		ORDER BY br.submitted_at DESC, br.id DESC
		LIMIT $4`

	rows, err := r.dbtx.Query(ctx, query,
		pgconv.UUIDToPgtype(memberID),
		pgconv.TimeToPgtype(lastCreatedAt),
		pgconv.UUIDToPgtype(lastID),
		limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list member requests", err)
	}
	return collectRequestItems(rows)
}

func (r *RequestReadStore) FindByOfferingFirstPage(ctx context.Context, offeringID uuid.UUID, status *string, limit int32) ([]*queries.RequestListItem, error) {
	query := requestListSelect + `
		WHERE br.offering_id = $1
		  AND ($2::text IS NULL OR br.status = $2)
		ORDER BY br.submitted_at DESC, br.id DESC
		LIMIT $3`

	rows, err := r.dbtx.Query(ctx, query,
		pgconv.UUIDToPgtype(offeringID),
		pgconv.StringPtrToPgtype(status),
		limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offering requests", err)
	}
	return collectRequestItems(rows)
}

func (r *RequestReadStore) FindByOfferingKeyset(ctx context.Context, offeringID uuid.UUID, status *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.RequestListItem, error) {
	query := requestListSelect + `
		WHERE br.offering_id = $1
		  AND ($2::text IS NULL OR br.status = $2)
		  AND (br.submitted_at, br.id) < ($3, $4)
		ORDER BY br.submitted_at DESC, br.id DESC
		LIMIT $5`

	rows, err := r.dbtx.Query(ctx, query,
		pgconv.UUIDToPgtype(offeringID),
		pgconv.StringPtrToPgtype(status),
		pgconv.TimeToPgtype(lastCreatedAt),
		pgconv.UUIDToPgtype(lastID),
		limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offering requests", err)
	}
	return collectRequestItems(rows)
}

func collectRequestItems(rows pgx.Rows) ([]*queries.RequestListItem, error) {
	defer rows.Close()

	var items []*queries.RequestListItem
	for rows.Next() {
		var (
			rowID       pgtype.UUID
			offeringID  pgtype.UUID
			memberID    pgtype.UUID
			item        queries.RequestListItem
			submittedAt pgtype.Timestamptz
		)
		err := rows.Scan(&rowID, &offeringID, &item.OfferingLabel, &memberID, &item.MemberName, &item.Status, &submittedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan request row", err)
		}
		item.ID = pgconv.UUIDFromPgtype(rowID)
		item.OfferingID = pgconv.UUIDFromPgtype(offeringID)
		item.MemberID = pgconv.UUIDFromPgtype(memberID)
		item.SubmittedAt = pgconv.TimeFromPgtype(submittedAt)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read request rows", err)
	}
	return items, nil
}
