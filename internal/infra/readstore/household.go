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

// MemberRecord is the slim member projection used to resolve the acting
// member from an authenticated user.
type MemberRecord struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	MemberNumber string
	FirstName    string
	LastName     string
}

type HouseholdReadStore struct {
	dbtx db.DBTX
}

func NewHouseholdReadStore(dbtx db.DBTX) *HouseholdReadStore {
	return &HouseholdReadStore{dbtx: dbtx}
}

func (r *HouseholdReadStore) FindMemberByUserID(ctx context.Context, userID uuid.UUID) (*MemberRecord, error) {
	const query = `
		SELECT id, user_id, member_number, first_name, last_name
		FROM members
		WHERE user_id = $1`

	var (
		rowID        pgtype.UUID
		rowUserID    pgtype.UUID
		memberNumber string
		firstName    string
		lastName     string
	)
	err := r.dbtx.QueryRow(ctx, query, pgconv.UUIDToPgtype(userID)).Scan(
		&rowID, &rowUserID, &memberNumber, &firstName, &lastName,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("member not found for user", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find member by user ID", err)
	}

	return &MemberRecord{
		ID:           pgconv.UUIDFromPgtype(rowID),
		UserID:       pgconv.UUIDFromPgtype(rowUserID),
		MemberNumber: memberNumber,
		FirstName:    firstName,
		LastName:     lastName,
	}, nil
}

func docMeta(name, contentType pgtype.Text) *queries.DocumentMetaView {
	if !name.Valid || name.String == "" {
		return nil
	}
	return &queries.DocumentMetaView{Filename: name.String, ContentType: contentType.String}
}

// FindHouseholdByUserID loads the member's profile with their spouses and
// dependents in one pass. Document columns are read as metadata only.
func (r *HouseholdReadStore) FindHouseholdByUserID(ctx context.Context, userID uuid.UUID) (*queries.HouseholdView, error) {
	const memberQuery = `
		SELECT id, member_number, first_name, last_name,
		       phone, email, address, city, postal_code, marital_status,
		       portrait_photo_name, portrait_photo_type,
		       identity_image_name, identity_image_type,
		       bank_reference_name, bank_reference_type,
		       updated_at
		FROM members
		WHERE user_id = $1`

	var (
		rowID                      pgtype.UUID
		member                     queries.MemberProfileView
		portraitName, portraitType pgtype.Text
		identityName, identityType pgtype.Text
		bankName, bankType         pgtype.Text
		updatedAt                  pgtype.Timestamptz
	)
	err := r.dbtx.QueryRow(ctx, memberQuery, pgconv.UUIDToPgtype(userID)).Scan(
		&rowID, &member.MemberNumber, &member.FirstName, &member.LastName,
		&member.Phone, &member.Email, &member.Address, &member.City, &member.PostalCode, &member.MaritalStatus,
		&portraitName, &portraitType,
		&identityName, &identityType,
		&bankName, &bankType,
		&updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("member not found for user", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load member profile", err)
	}
	member.ID = pgconv.UUIDFromPgtype(rowID)
	member.PortraitPhoto = docMeta(portraitName, portraitType)
	member.IdentityImage = docMeta(identityName, identityType)
	member.BankReference = docMeta(bankName, bankType)
	member.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	spouses, err := r.findSpouses(ctx, member.ID)
	if err != nil {
		return nil, err
	}
	dependents, err := r.findDependents(ctx, member.ID)
	if err != nil {
		return nil, err
	}

	return &queries.HouseholdView{
		Member:     member,
		Spouses:    spouses,
		Dependents: dependents,
	}, nil
}

func (r *HouseholdReadStore) findSpouses(ctx context.Context, memberID uuid.UUID) ([]queries.SpouseView, error) {
	const query = `
		SELECT id, first_name, last_name, identity_number, birth_date, gender,
		       phone, email, city,
		       portrait_photo_name, portrait_photo_type,
		       identity_image_name, identity_image_type,
		       marriage_certificate_name, marriage_certificate_type
		FROM spouses
		WHERE member_id = $1
		ORDER BY created_at`

	rows, err := r.dbtx.Query(ctx, query, pgconv.UUIDToPgtype(memberID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list spouses", err)
	}
	defer rows.Close()

	var spouses []queries.SpouseView
	for rows.Next() {
		var (
			rowID                      pgtype.UUID
			view                       queries.SpouseView
			birthDate                  pgtype.Timestamptz
			portraitName, portraitType pgtype.Text
			identityName, identityType pgtype.Text
			marriageName, marriageType pgtype.Text
		)
		err := rows.Scan(
			&rowID, &view.FirstName, &view.LastName, &view.IdentityNumber, &birthDate, &view.Gender,
			&view.Phone, &view.Email, &view.City,
			&portraitName, &portraitType,
			&identityName, &identityType,
			&marriageName, &marriageType,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan spouse row", err)
		}
		view.ID = pgconv.UUIDFromPgtype(rowID)
		view.BirthDate = pgconv.TimePtrFromPgtype(birthDate)
		view.PortraitPhoto = docMeta(portraitName, portraitType)
		view.IdentityImage = docMeta(identityName, identityType)
		view.MarriageCertificate = docMeta(marriageName, marriageType)
		spouses = append(spouses, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read spouse rows", err)
	}
	return spouses, nil
}

func (r *HouseholdReadStore) findDependents(ctx context.Context, memberID uuid.UUID) ([]queries.DependentView, error) {
	const query = `
		SELECT id, first_name, last_name, birth_date, gender,
		       identity_number, phone, email, education_level,
		       portrait_photo_name, portrait_photo_type,
		       identity_image_name, identity_image_type,
		       school_certificate_name, school_certificate_type
		FROM dependents
		WHERE member_id = $1
		ORDER BY created_at`

	rows, err := r.dbtx.Query(ctx, query, pgconv.UUIDToPgtype(memberID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list dependents", err)
	}
	defer rows.Close()

	var dependents []queries.DependentView
	for rows.Next() {
		var (
			rowID                      pgtype.UUID
			view                       queries.DependentView
			birthDate                  pgtype.Timestamptz
			portraitName, portraitType pgtype.Text
			identityName, identityType pgtype.Text
			certName, certType         pgtype.Text
		)
		err := rows.Scan(
			&rowID, &view.FirstName, &view.LastName, &birthDate, &view.Gender,
			&view.IdentityNumber, &view.Phone, &view.Email, &view.EducationLevel,
			&portraitName, &portraitType,
			&identityName, &identityType,
			&certName, &certType,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan dependent row", err)
		}
		view.ID = pgconv.UUIDFromPgtype(rowID)
		view.BirthDate = pgconv.TimePtrFromPgtype(birthDate)
		view.PortraitPhoto = docMeta(portraitName, portraitType)
		view.IdentityImage = docMeta(identityName, identityType)
		view.SchoolCertificate = docMeta(certName, certType)
		dependents = append(dependents, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read dependent rows", err)
	}
	return dependents, nil
}
