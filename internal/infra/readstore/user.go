package readstore

import (
	"context"

	"benefit-desk/internal/infra"
	"benefit-desk/internal/infra/db"
	"benefit-desk/internal/pkg/pgconv"
	"benefit-desk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserReadStore struct {
	dbtx db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{dbtx: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const query = `
		SELECT id, email, role, member_id, is_active
		FROM users
		WHERE id = $1`

	var (
		rowID    pgtype.UUID
		email    string
		role     string
		memberID pgtype.UUID
		isActive bool
	)
	err := r.dbtx.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(&rowID, &email, &role, &memberID, &isActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &queries.AuthorizedUserView{
		ID:       pgconv.UUIDFromPgtype(rowID),
		Email:    email,
		Role:     role,
		MemberID: pgconv.UUIDPtrFromPgtype(memberID),
		IsActive: isActive,
	}, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	const query = `
		SELECT id, email, role, member_id, is_active, password_hash
		FROM users
		WHERE email = $1`

	var (
		rowID    pgtype.UUID
		rowEmail string
		role     string
		memberID pgtype.UUID
		isActive bool
		hash     string
	)
	err := r.dbtx.QueryRow(ctx, query, email).Scan(&rowID, &rowEmail, &role, &memberID, &isActive, &hash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return &queries.AuthorizedUserView{
		ID:       pgconv.UUIDFromPgtype(rowID),
		Email:    rowEmail,
		Role:     role,
		MemberID: pgconv.UUIDPtrFromPgtype(memberID),
		IsActive: isActive,
	}, hash, nil
}
