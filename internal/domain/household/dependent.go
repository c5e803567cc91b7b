package household

import (
	"strings"
	"time"

	"benefit-desk/internal/domain/modification"

	"github.com/google/uuid"
)

// Dependent is a child record attached to a member.
type Dependent struct {
	id             uuid.UUID
	memberID       uuid.UUID
	firstName      string
	lastName       string
	birthDate      *time.Time
	gender         string
	identityNumber string
	phone          string
	email          string
	educationLevel string

	portraitPhoto     *DocumentSlot
	identityImage     *DocumentSlot
	schoolCertificate *DocumentSlot

	createdAt time.Time
	updatedAt time.Time
}

// NewDependentFromValues builds a dependent record from a creation
// proposal's value map. Keys outside the dependent whitelist are ignored.
func NewDependentFromValues(memberID uuid.UUID, vs modification.Values, now time.Time) *Dependent {
	d := &Dependent{
		id:        uuid.New(),
		memberID:  memberID,
		createdAt: now,
		updatedAt: now,
	}
	d.applyValues(vs)
	return d
}

func ReconstructDependent(
	id, memberID uuid.UUID,
	firstName, lastName string,
	birthDate *time.Time,
	gender, identityNumber, phone, email, educationLevel string,
	portraitPhoto, identityImage, schoolCertificate *DocumentSlot,
	createdAt, updatedAt time.Time,
) *Dependent {
	return &Dependent{
		id:                id,
		memberID:          memberID,
		firstName:         firstName,
		lastName:          lastName,
		birthDate:         birthDate,
		gender:            gender,
		identityNumber:    identityNumber,
		phone:             phone,
		email:             email,
		educationLevel:    educationLevel,
		portraitPhoto:     portraitPhoto,
		identityImage:     identityImage,
		schoolCertificate: schoolCertificate,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

func (d *Dependent) ExtractValues() modification.Values {
	vs := modification.NewValues()
	vs.Set("last_name", stringValue(d.lastName))
	vs.Set("first_name", stringValue(d.firstName))
	vs.Set("birth_date", birthDateValue(d.birthDate))
	vs.Set("gender", stringValue(d.gender))
	vs.Set("identity_number", stringValue(d.identityNumber))
	vs.Set("phone", stringValue(d.phone))
	vs.Set("email", stringValue(d.email))
	vs.Set("education_level", stringValue(d.educationLevel))
	return vs
}

// ApplyValues overwrites the modifiable fields from a value map. Keys
// outside the dependent whitelist are ignored; an unparsable birth date
// leaves the stored date as is.
func (d *Dependent) ApplyValues(vs modification.Values, now time.Time) {
	d.applyValues(vs)
	d.updatedAt = now
}

func (d *Dependent) applyValues(vs modification.Values) {
	for _, key := range vs.Keys() {
		v, _ := vs.Get(key)
		switch key {
		case "last_name":
			d.lastName = valueText(v)
		case "first_name":
			d.firstName = valueText(v)
		case "birth_date":
			if t := parseBirthDate(v); t != nil {
				d.birthDate = t
			}
		case "gender":
			d.gender = valueText(v)
		case "identity_number":
			d.identityNumber = valueText(v)
		case "phone":
			d.phone = valueText(v)
		case "email":
			d.email = valueText(v)
		case "education_level":
			d.educationLevel = valueText(v)
		}
	}
}

func (d *Dependent) AttachDocument(doc modification.Document, now time.Time) {
	switch doc.FieldKey {
	case "portrait_photo":
		d.portraitPhoto = slotFromDocument(doc)
	case "identity_image":
		d.identityImage = slotFromDocument(doc)
	case "school_certificate":
		d.schoolCertificate = slotFromDocument(doc)
	default:
		return
	}
	d.updatedAt = now
}

func (d *Dependent) Label() string {
	return strings.TrimSpace(d.firstName + " " + d.lastName)
}

func (d *Dependent) ID() uuid.UUID                    { return d.id }
func (d *Dependent) MemberID() uuid.UUID              { return d.memberID }
func (d *Dependent) FirstName() string                { return d.firstName }
func (d *Dependent) LastName() string                 { return d.lastName }
func (d *Dependent) BirthDate() *time.Time            { return d.birthDate }
func (d *Dependent) Gender() string                   { return d.gender }
func (d *Dependent) IdentityNumber() string           { return d.identityNumber }
func (d *Dependent) Phone() string                    { return d.phone }
func (d *Dependent) Email() string                    { return d.email }
func (d *Dependent) EducationLevel() string           { return d.educationLevel }
func (d *Dependent) PortraitPhoto() *DocumentSlot     { return d.portraitPhoto }
func (d *Dependent) IdentityImage() *DocumentSlot     { return d.identityImage }
func (d *Dependent) SchoolCertificate() *DocumentSlot { return d.schoolCertificate }
func (d *Dependent) CreatedAt() time.Time             { return d.createdAt }
func (d *Dependent) UpdatedAt() time.Time             { return d.updatedAt }
