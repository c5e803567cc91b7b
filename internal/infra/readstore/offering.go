package readstore

import (
	"context"

	"benefit-desk/internal/domain/benefit"
	"benefit-desk/internal/infra"
	"benefit-desk/internal/infra/db"
	"benefit-desk/internal/pkg/pgconv"
	"benefit-desk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OfferingReadStore struct {
	dbtx db.DBTX
}

func NewOfferingReadStore(dbtx db.DBTX) *OfferingReadStore {
	return &OfferingReadStore{dbtx: dbtx}
}

const offeringViewColumns = `id, label, description, open, opens_at, closes_at, quota, created_at, updated_at`

func (r *OfferingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OfferingView, error) {
	query := `SELECT ` + offeringViewColumns + ` FROM offerings WHERE id = $1`

	view, err := scanOffering(r.dbtx.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offering not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find offering", err)
	}
	return view, nil
}

func (r *OfferingReadStore) FindAll(ctx context.Context, onlyAvailable bool) ([]*queries.OfferingView, error) {
	query := `SELECT ` + offeringViewColumns + ` FROM offerings`
	if onlyAvailable {
		query += ` WHERE open`
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.dbtx.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offerings", err)
	}
	defer rows.Close()

	var views []*queries.OfferingView
	for rows.Next() {
		view, scanErr := scanOffering(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan offering row", scanErr)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read offering rows", err)
	}
	return views, nil
}

// GetStats aggregates request counts per status for one offering. The
// offering row anchors the query so a missing offering is NOT_FOUND, not
// an all-zero result.
func (r *OfferingReadStore) GetStats(ctx context.Context, offeringID uuid.UUID) (*queries.OfferingStatsView, error) {
	const query = `
		SELECT o.id,
		       COUNT(br.id) FILTER (WHERE br.status = 'submitted'),
		       COUNT(br.id) FILTER (WHERE br.status = 'in_review'),
		       COUNT(br.id) FILTER (WHERE br.status = 'accepted'),
		       COUNT(br.id) FILTER (WHERE br.status = 'rejected'),
		       COUNT(br.id) FILTER (WHERE br.status = 'completed'),
		       COUNT(br.id) FILTER (WHERE br.status = ANY($2))
		FROM offerings o
		LEFT JOIN benefit_requests br ON br.offering_id = o.id
		WHERE o.id = $1
		GROUP BY o.id`

	var (
		rowID pgtype.UUID
		stats queries.OfferingStatsView
	)
	err := r.dbtx.QueryRow(ctx, query, pgconv.UUIDToPgtype(offeringID), benefit.ActiveStatuses()).Scan(
		&rowID,
		&stats.Submitted,
		&stats.InReview,
		&stats.Accepted,
		&stats.Rejected,
		&stats.Completed,
		&stats.Active,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offering not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to aggregate offering stats", err)
	}

	stats.OfferingID = pgconv.UUIDFromPgtype(rowID)
	return &stats, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOffering(row rowScanner) (*queries.OfferingView, error) {
	var (
		rowID     pgtype.UUID
		view      queries.OfferingView
		opensAt   pgtype.Timestamptz
		closesAt  pgtype.Timestamptz
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := row.Scan(&rowID, &view.Label, &view.Description, &view.Open, &opensAt, &closesAt, &view.Quota, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	view.ID = pgconv.UUIDFromPgtype(rowID)
	view.OpensAt = pgconv.TimePtrFromPgtype(opensAt)
	view.ClosesAt = pgconv.TimePtrFromPgtype(closesAt)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
