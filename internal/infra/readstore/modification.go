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

type ProposalReadStore struct {
	dbtx db.DBTX
}

func NewProposalReadStore(dbtx db.DBTX) *ProposalReadStore {
	return &ProposalReadStore{dbtx: dbtx}
}

func (r *ProposalReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProposalView, *queries.ProposalValues, error) {
	const query = `
		SELECT p.id, p.member_id, m.user_id, m.first_name || ' ' || m.last_name,
		       p.target_kind, p.action, p.target_id, p.target_label,
		       p.status, p.comment, p.created_at, p.processed_at, p.processed_by,
		       p.old_values, p.new_values
		FROM modification_proposals p
		JOIN members m ON m.id = p.member_id
		WHERE p.id = $1`

	var (
		rowID       pgtype.UUID
		memberID    pgtype.UUID
		userID      pgtype.UUID
		view        queries.ProposalView
		targetID    pgtype.UUID
		comment     pgtype.Text
		createdAt   pgtype.Timestamptz
		processedAt pgtype.Timestamptz
		processedBy pgtype.UUID
		values      queries.ProposalValues
	)
	err := r.dbtx.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(
		&rowID, &memberID, &userID, &view.MemberName,
		&view.TargetKind, &view.Action, &targetID, &view.TargetLabel,
		&view.Status, &comment, &createdAt, &processedAt, &processedBy,
		&values.OldValues, &values.NewValues,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil, infra.WrapRepoErr("proposal not found", err, infra.KindNotFound)
		}
		return nil, nil, infra.WrapRepoErr("failed to find proposal", err)
	}

	view.ID = pgconv.UUIDFromPgtype(rowID)
	view.MemberID = pgconv.UUIDFromPgtype(memberID)
	view.MemberUserID = pgconv.UUIDFromPgtype(userID)
	view.TargetID = pgconv.UUIDPtrFromPgtype(targetID)
	view.Comment = pgconv.StringPtrFromPgtype(comment)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.ProcessedAt = pgconv.TimePtrFromPgtype(processedAt)
	view.ProcessedBy = pgconv.UUIDPtrFromPgtype(processedBy)
	return &view, &values, nil
}

const proposalListSelect = `
	SELECT p.id, p.member_id, m.first_name || ' ' || m.last_name,
	       p.target_kind, p.action, p.target_label, p.status, p.created_at
	FROM modification_proposals p
	JOIN members m ON m.id = p.member_id`

func (r *ProposalReadStore) FindPendingFirstPage(ctx context.Context, limit int32) ([]*queries.ProposalListItem, error) {
	query := proposalListSelect + `
		WHERE p.status = 'pending'
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $1`

	rows, err := r.dbtx.Query(ctx, query, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending proposals", err)
	}
	return collectProposalItems(rows)
}

func (r *ProposalReadStore) FindPendingKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ProposalListItem, error) {
	query := proposalListSelect + `
		WHERE p.status = 'pending'
		  AND (p.created_at, p.id) < ($1, $2)
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $3`

	rows, err := r.dbtx.Query(ctx, query,
		pgconv.TimeToPgtype(lastCreatedAt),
		pgconv.UUIDToPgtype(lastID),
		limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending proposals", err)
	}
	return collectProposalItems(rows)
}

func (r *ProposalReadStore) CountPending(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM modification_proposals WHERE status = 'pending'`

	var count int64
	if err := r.dbtx.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count pending proposals", err)
	}
	return count, nil
}

func (r *ProposalReadStore) FindByMember(ctx context.Context, memberID uuid.UUID) ([]*queries.ProposalListItem, error) {
	query := proposalListSelect + `
		WHERE p.member_id = $1
		ORDER BY p.created_at DESC, p.id DESC`

	rows, err := r.dbtx.Query(ctx, query, pgconv.UUIDToPgtype(memberID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list member proposals", err)
	}
	return collectProposalItems(rows)
}

func collectProposalItems(rows pgx.Rows) ([]*queries.ProposalListItem, error) {
	defer rows.Close()

	var items []*queries.ProposalListItem
	for rows.Next() {
		var (
			rowID     pgtype.UUID
			memberID  pgtype.UUID
			item      queries.ProposalListItem
			createdAt pgtype.Timestamptz
		)
		err := rows.Scan(&rowID, &memberID, &item.MemberName, &item.TargetKind, &item.Action, &item.TargetLabel, &item.Status, &createdAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan proposal row", err)
		}
		item.ID = pgconv.UUIDFromPgtype(rowID)
		item.MemberID = pgconv.UUIDFromPgtype(memberID)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read proposal rows", err)
	}
	return items, nil
}
