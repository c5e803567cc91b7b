package repository

import (
	"context"

	"benefit-desk/internal/domain/household"
	"benefit-desk/internal/infra"
	"benefit-desk/internal/infra/db"
	"benefit-desk/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type HouseholdRepository struct{}

func NewHouseholdRepository() *HouseholdRepository {
	return &HouseholdRepository{}
}

// Document slots are stored flattened as (data, filename, content_type)
// column triples; a NULL data column means the slot is empty.
func slotFromColumns(data []byte, filename, contentType pgtype.Text) *household.DocumentSlot {
	if data == nil {
		return nil
	}
	return &household.DocumentSlot{
		Data:        data,
		Filename:    filename.String,
		ContentType: contentType.String,
	}
}

func slotToColumns(slot *household.DocumentSlot) ([]byte, pgtype.Text, pgtype.Text) {
	if slot == nil {
		return nil, pgtype.Text{}, pgtype.Text{}
	}
	return slot.Data,
		pgtype.Text{String: slot.Filename, Valid: true},
		pgtype.Text{String: slot.ContentType, Valid: true}
}

func (r *HouseholdRepository) MemberByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*household.Member, error) {
	const query = `
		SELECT id, user_id, member_number, first_name, last_name,
		       phone, email, address, city, postal_code, marital_status,
		       portrait_photo, portrait_photo_name, portrait_photo_type,
		       identity_image, identity_image_name, identity_image_type,
		       bank_reference, bank_reference_name, bank_reference_type,
		       created_at, updated_at
		FROM members
		WHERE id = $1
		FOR UPDATE`

	var (
		rowID, userID                                pgtype.UUID
		memberNumber, firstName, lastName            string
		phone, email, address, city, postal, marital string
		portraitData, identityData, bankData         []byte
		portraitName, portraitType                   pgtype.Text
		identityName, identityType                   pgtype.Text
		bankName, bankType                           pgtype.Text
		createdAt, updatedAt                         pgtype.Timestamptz
	)
	err := tx.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(
		&rowID, &userID, &memberNumber, &firstName, &lastName,
		&phone, &email, &address, &city, &postal, &marital,
		&portraitData, &portraitName, &portraitType,
		&identityData, &identityName, &identityType,
		&bankData, &bankName, &bankType,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("member not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find member", err)
	}

	return household.ReconstructMember(
		pgconv.UUIDFromPgtype(rowID),
		pgconv.UUIDFromPgtype(userID),
		memberNumber, firstName, lastName,
		phone, email, address, city, postal, marital,
		slotFromColumns(portraitData, portraitName, portraitType),
		slotFromColumns(identityData, identityName, identityType),
		slotFromColumns(bankData, bankName, bankType),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *HouseholdRepository) SaveMember(ctx context.Context, tx db.DBTX, m *household.Member) error {
	const query = `
		UPDATE members
		SET phone = $2, email = $3, address = $4, city = $5, postal_code = $6, marital_status = $7,
		    portrait_photo = $8, portrait_photo_name = $9, portrait_photo_type = $10,
		    identity_image = $11, identity_image_name = $12, identity_image_type = $13,
		    bank_reference = $14, bank_reference_name = $15, bank_reference_type = $16,
		    updated_at = $17
		WHERE id = $1`

	portraitData, portraitName, portraitType := slotToColumns(m.PortraitPhoto())
	identityData, identityName, identityType := slotToColumns(m.IdentityImage())
	bankData, bankName, bankType := slotToColumns(m.BankReference())

	tag, err := tx.Exec(ctx, query,
		pgconv.UUIDToPgtype(m.ID()),
		m.Phone(), m.Email(), m.Address(), m.City(), m.PostalCode(), m.MaritalStatus(),
		portraitData, portraitName, portraitType,
		identityData, identityName, identityType,
		bankData, bankName, bankType,
		pgconv.TimeToPgtype(m.UpdatedAt()),
	)
	if err != nil {
		return wrapWriteErr("failed to save member", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("member not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *HouseholdRepository) SpouseByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*household.Spouse, error) {
	const query = `
		SELECT id, member_id, first_name, last_name, identity_number, birth_date, gender,
		       phone, email, city,
		       portrait_photo, portrait_photo_name, portrait_photo_type,
		       identity_image, identity_image_name, identity_image_type,
		       marriage_certificate, marriage_certificate_name, marriage_certificate_type,
		       created_at, updated_at
		FROM spouses
		WHERE id = $1
		FOR UPDATE`

	var (
		rowID, memberID            pgtype.UUID
		firstName, lastName        string
		identityNumber             string
		birthDate                  pgtype.Timestamptz
		gender, phone, email, city string
		portraitData               []byte
		marriageData, identityData []byte
		portraitName, portraitType pgtype.Text
		identityName, identityType pgtype.Text
		marriageName, marriageType pgtype.Text
		createdAt, updatedAt       pgtype.Timestamptz
	)
	err := tx.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(
		&rowID, &memberID, &firstName, &lastName, &identityNumber, &birthDate, &gender,
		&phone, &email, &city,
		&portraitData, &portraitName, &portraitType,
		&identityData, &identityName, &identityType,
		&marriageData, &marriageName, &marriageType,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("spouse not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find spouse", err)
	}

	return household.ReconstructSpouse(
		pgconv.UUIDFromPgtype(rowID),
		pgconv.UUIDFromPgtype(memberID),
		firstName, lastName, identityNumber,
		pgconv.TimePtrFromPgtype(birthDate),
		gender, phone, email, city,
		slotFromColumns(portraitData, portraitName, portraitType),
		slotFromColumns(identityData, identityName, identityType),
		slotFromColumns(marriageData, marriageName, marriageType),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *HouseholdRepository) SaveSpouse(ctx context.Context, tx db.DBTX, s *household.Spouse) error {
	const query = `
		UPDATE spouses
		SET first_name = $2, last_name = $3, identity_number = $4, birth_date = $5, gender = $6,
		    phone = $7, email = $8, city = $9,
		    portrait_photo = $10, portrait_photo_name = $11, portrait_photo_type = $12,
		    identity_image = $13, identity_image_name = $14, identity_image_type = $15,
		    marriage_certificate = $16, marriage_certificate_name = $17, marriage_certificate_type = $18,
		    updated_at = $19
		WHERE id = $1`

	portraitData, portraitName, portraitType := slotToColumns(s.PortraitPhoto())
	identityData, identityName, identityType := slotToColumns(s.IdentityImage())
	marriageData, marriageName, marriageType := slotToColumns(s.MarriageCertificate())

	tag, err := tx.Exec(ctx, query,
		pgconv.UUIDToPgtype(s.ID()),
		s.FirstName(), s.LastName(), s.IdentityNumber(),
		pgconv.TimePtrToPgtype(s.BirthDate()),
		s.Gender(), s.Phone(), s.Email(), s.City(),
		portraitData, portraitName, portraitType,
		identityData, identityName, identityType,
		marriageData, marriageName, marriageType,
		pgconv.TimeToPgtype(s.UpdatedAt()),
	)
	if err != nil {
		return wrapWriteErr("failed to save spouse", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("spouse not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *HouseholdRepository) InsertSpouse(ctx context.Context, tx db.DBTX, s *household.Spouse) (uuid.UUID, error) {
	const query = `
		INSERT INTO spouses
			(id, member_id, first_name, last_name, identity_number, birth_date, gender,
			 phone, email, city,
			 portrait_photo, portrait_photo_name, portrait_photo_type,
			 identity_image, identity_image_name, identity_image_type,
			 marriage_certificate, marriage_certificate_name, marriage_certificate_type,
			 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING id`

	portraitData, portraitName, portraitType := slotToColumns(s.PortraitPhoto())
	identityData, identityName, identityType := slotToColumns(s.IdentityImage())
	marriageData, marriageName, marriageType := slotToColumns(s.MarriageCertificate())

	var id pgtype.UUID
	err := tx.QueryRow(ctx, query,
		pgconv.UUIDToPgtype(s.ID()),
		pgconv.UUIDToPgtype(s.MemberID()),
		s.FirstName(), s.LastName(), s.IdentityNumber(),
		pgconv.TimePtrToPgtype(s.BirthDate()),
		s.Gender(), s.Phone(), s.Email(), s.City(),
		portraitData, portraitName, portraitType,
		identityData, identityName, identityType,
		marriageData, marriageName, marriageType,
		pgconv.TimeToPgtype(s.CreatedAt()),
		pgconv.TimeToPgtype(s.UpdatedAt()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to insert spouse", err)
	}
	return pgconv.UUIDFromPgtype(id), nil
}

func (r *HouseholdRepository) DependentByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*household.Dependent, error) {
	const query = `
		SELECT id, member_id, first_name, last_name, birth_date, gender,
		       identity_number, phone, email, education_level,
		       portrait_photo, portrait_photo_name, portrait_photo_type,
		       identity_image, identity_image_name, identity_image_type,
		       school_certificate, school_certificate_name, school_certificate_type,
		       created_at, updated_at
		FROM dependents
		WHERE id = $1
		FOR UPDATE`

	var (
		rowID, memberID               pgtype.UUID
		firstName, lastName           string
		birthDate                     pgtype.Timestamptz
		gender, identityNumber        string
		phone, email, educationLevel  string
		portraitData, identityImgData []byte
		schoolData                    []byte
		portraitName, portraitType    pgtype.Text
		identityName, identityType    pgtype.Text
		schoolName, schoolType        pgtype.Text
		createdAt, updatedAt          pgtype.Timestamptz
	)
	err := tx.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(
		&rowID, &memberID, &firstName, &lastName, &birthDate, &gender,
		&identityNumber, &phone, &email, &educationLevel,
		&portraitData, &portraitName, &portraitType,
		&identityImgData, &identityName, &identityType,
		&schoolData, &schoolName, &schoolType,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("dependent not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find dependent", err)
	}

	return household.ReconstructDependent(
		pgconv.UUIDFromPgtype(rowID),
		pgconv.UUIDFromPgtype(memberID),
		firstName, lastName,
		pgconv.TimePtrFromPgtype(birthDate),
		gender, identityNumber, phone, email, educationLevel,
		slotFromColumns(portraitData, portraitName, portraitType),
		slotFromColumns(identityImgData, identityName, identityType),
		slotFromColumns(schoolData, schoolName, schoolType),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *HouseholdRepository) SaveDependent(ctx context.Context, tx db.DBTX, d *household.Dependent) error {
	const query = `
		UPDATE dependents
		SET first_name = $2, last_name = $3, birth_date = $4, gender = $5,
		    identity_number = $6, phone = $7, email = $8, education_level = $9,
		    portrait_photo = $10, portrait_photo_name = $11, portrait_photo_type = $12,
		    identity_image = $13, identity_image_name = $14, identity_image_type = $15,
		    school_certificate = $16, school_certificate_name = $17, school_certificate_type = $18,
		    updated_at = $19
		WHERE id = $1`

	portraitData, portraitName, portraitType := slotToColumns(d.PortraitPhoto())
	identityData, identityName, identityType := slotToColumns(d.IdentityImage())
	schoolData, schoolName, schoolType := slotToColumns(d.SchoolCertificate())

	tag, err := tx.Exec(ctx, query,
		pgconv.UUIDToPgtype(d.ID()),
		d.FirstName(), d.LastName(),
		pgconv.TimePtrToPgtype(d.BirthDate()),
		d.Gender(), d.IdentityNumber(), d.Phone(), d.Email(), d.EducationLevel(),
		portraitData, portraitName, portraitType,
		identityData, identityName, identityType,
		schoolData, schoolName, schoolType,
		pgconv.TimeToPgtype(d.UpdatedAt()),
	)
	if err != nil {
		return wrapWriteErr("failed to save dependent", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("dependent not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *HouseholdRepository) InsertDependent(ctx context.Context, tx db.DBTX, d *household.Dependent) (uuid.UUID, error) {
	const query = `
		INSERT INTO dependents
			(id, member_id, first_name, last_name, birth_date, gender,
			 identity_number, phone, email, education_level,
			 portrait_photo, portrait_photo_name, portrait_photo_type,
			 identity_image, identity_image_name, identity_image_type,
			 school_certificate, school_certificate_name, school_certificate_type,
			 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING id`

	portraitData, portraitName, portraitType := slotToColumns(d.PortraitPhoto())
	identityData, identityName, identityType := slotToColumns(d.IdentityImage())
	schoolData, schoolName, schoolType := slotToColumns(d.SchoolCertificate())

	var id pgtype.UUID
	err := tx.QueryRow(ctx, query,
		pgconv.UUIDToPgtype(d.ID()),
		pgconv.UUIDToPgtype(d.MemberID()),
		d.FirstName(), d.LastName(),
		pgconv.TimePtrToPgtype(d.BirthDate()),
		d.Gender(), d.IdentityNumber(), d.Phone(), d.Email(), d.EducationLevel(),
		portraitData, portraitName, portraitType,
		identityData, identityName, identityType,
		schoolData, schoolName, schoolType,
		pgconv.TimeToPgtype(d.CreatedAt()),
		pgconv.TimeToPgtype(d.UpdatedAt()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to insert dependent", err)
	}
	return pgconv.UUIDFromPgtype(id), nil
}
