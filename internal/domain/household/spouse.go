package household

import (
	"strings"
	"time"

	"benefit-desk/internal/domain/modification"

	"github.com/google/uuid"
)

// Spouse is the partner record attached to a member.
type Spouse struct {
	id             uuid.UUID
	memberID       uuid.UUID
	firstName      string
	lastName       string
	identityNumber string
	birthDate      *time.Time
	gender         string
	phone          string
	email          string
	city           string

	portraitPhoto       *DocumentSlot
	identityImage       *DocumentSlot
	marriageCertificate *DocumentSlot

	createdAt time.Time
	updatedAt time.Time
}

// NewSpouseFromValues builds a spouse record from a creation proposal's
// value map. Keys outside the spouse whitelist are ignored.
func NewSpouseFromValues(memberID uuid.UUID, vs modification.Values, now time.Time) *Spouse {
	s := &Spouse{
		id:        uuid.New(),
		memberID:  memberID,
		createdAt: now,
		updatedAt: now,
	}
	s.applyValues(vs)
	return s
}

func ReconstructSpouse(
	id, memberID uuid.UUID,
	firstName, lastName, identityNumber string,
	birthDate *time.Time,
	gender, phone, email, city string,
	portraitPhoto, identityImage, marriageCertificate *DocumentSlot,
	createdAt, updatedAt time.Time,
) *Spouse {
	return &Spouse{
		id:                  id,
		memberID:            memberID,
		firstName:           firstName,
		lastName:            lastName,
		identityNumber:      identityNumber,
		birthDate:           birthDate,
		gender:              gender,
		phone:               phone,
		email:               email,
		city:                city,
		portraitPhoto:       portraitPhoto,
		identityImage:       identityImage,
		marriageCertificate: marriageCertificate,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}
}

func (s *Spouse) ExtractValues() modification.Values {
	vs := modification.NewValues()
	vs.Set("last_name", stringValue(s.lastName))
	vs.Set("first_name", stringValue(s.firstName))
	vs.Set("identity_number", stringValue(s.identityNumber))
	vs.Set("birth_date", birthDateValue(s.birthDate))
	vs.Set("gender", stringValue(s.gender))
	vs.Set("phone", stringValue(s.phone))
	vs.Set("email", stringValue(s.email))
	vs.Set("city", stringValue(s.city))
	return vs
}

// ApplyValues overwrites the modifiable fields from a value map. Keys
// outside the spouse whitelist are ignored; an unparsable birth date
// leaves the stored date as is.
func (s *Spouse) ApplyValues(vs modification.Values, now time.Time) {
	s.applyValues(vs)
	s.updatedAt = now
}

func (s *Spouse) applyValues(vs modification.Values) {
	for _, key := range vs.Keys() {
		v, _ := vs.Get(key)
		switch key {
		case "last_name":
			s.lastName = valueText(v)
		case "first_name":
			s.firstName = valueText(v)
		case "identity_number":
			s.identityNumber = valueText(v)
		case "birth_date":
			if t := parseBirthDate(v); t != nil {
				s.birthDate = t
			}
		case "gender":
			s.gender = valueText(v)
		case "phone":
			s.phone = valueText(v)
		case "email":
			s.email = valueText(v)
		case "city":
			s.city = valueText(v)
		}
	}
}

func (s *Spouse) AttachDocument(doc modification.Document, now time.Time) {
	switch doc.FieldKey {
	case "portrait_photo":
		s.portraitPhoto = slotFromDocument(doc)
	case "identity_image":
		s.identityImage = slotFromDocument(doc)
	case "marriage_certificate":
		s.marriageCertificate = slotFromDocument(doc)
	default:
		return
	}
	s.updatedAt = now
}

func (s *Spouse) Label() string {
	return strings.TrimSpace(s.firstName + " " + s.lastName)
}

func (s *Spouse) ID() uuid.UUID                      { return s.id }
func (s *Spouse) MemberID() uuid.UUID                { return s.memberID }
func (s *Spouse) FirstName() string                  { return s.firstName }
func (s *Spouse) LastName() string                   { return s.lastName }
func (s *Spouse) IdentityNumber() string             { return s.identityNumber }
func (s *Spouse) BirthDate() *time.Time              { return s.birthDate }
func (s *Spouse) Gender() string                     { return s.gender }
func (s *Spouse) Phone() string                      { return s.phone }
func (s *Spouse) Email() string                      { return s.email }
func (s *Spouse) City() string                       { return s.city }
func (s *Spouse) PortraitPhoto() *DocumentSlot       { return s.portraitPhoto }
func (s *Spouse) IdentityImage() *DocumentSlot       { return s.identityImage }
func (s *Spouse) MarriageCertificate() *DocumentSlot { return s.marriageCertificate }
func (s *Spouse) CreatedAt() time.Time               { return s.createdAt }
func (s *Spouse) UpdatedAt() time.Time               { return s.updatedAt }
