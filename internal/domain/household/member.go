package household

import (
	"strings"
	"time"

	"benefit-desk/internal/domain/modification"

	"github.com/google/uuid"
)

// Member is the primary record of an enrolled person. Identity fields are
// fixed at enrollment; only contact details and document attachments are
// open to modification proposals.
type Member struct {
	id            uuid.UUID
	userID        uuid.UUID
	memberNumber  string
	firstName     string
	lastName      string
	phone         string
	email         string
	address       string
	city          string
	postalCode    string
	maritalStatus string

	portraitPhoto *DocumentSlot
	identityImage *DocumentSlot
	bankReference *DocumentSlot

	createdAt time.Time
	updatedAt time.Time
}

func ReconstructMember(
	id, userID uuid.UUID,
	memberNumber, firstName, lastName string,
	phone, email, address, city, postalCode, maritalStatus string,
	portraitPhoto, identityImage, bankReference *DocumentSlot,
	createdAt, updatedAt time.Time,
) *Member {
	return &Member{
		id:            id,
		userID:        userID,
		memberNumber:  memberNumber,
		firstName:     firstName,
		lastName:      lastName,
		phone:         phone,
		email:         email,
		address:       address,
		city:          city,
		postalCode:    postalCode,
		maritalStatus: maritalStatus,
		portraitPhoto: portraitPhoto,
		identityImage: identityImage,
		bankReference: bankReference,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// ExtractValues snapshots the modifiable fields as a value map, in the
// order the review screen presents them.
func (m *Member) ExtractValues() modification.Values {
	vs := modification.NewValues()
	vs.Set("phone", stringValue(m.phone))
	vs.Set("email", stringValue(m.email))
	vs.Set("address", stringValue(m.address))
	vs.Set("city", stringValue(m.city))
	vs.Set("postal_code", stringValue(m.postalCode))
	vs.Set("marital_status", stringValue(m.maritalStatus))
	return vs
}

// ApplyValues overwrites the modifiable fields from a value map. Keys
// outside the member whitelist are ignored.
func (m *Member) ApplyValues(vs modification.Values, now time.Time) {
	for _, key := range vs.Keys() {
		v, _ := vs.Get(key)
		switch key {
		case "phone":
			m.phone = valueText(v)
		case "email":
			m.email = valueText(v)
		case "address":
			m.address = valueText(v)
		case "city":
			m.city = valueText(v)
		case "postal_code":
			m.postalCode = valueText(v)
		case "marital_status":
			m.maritalStatus = valueText(v)
		}
	}
	m.updatedAt = now
}

// AttachDocument stores a document in its member slot. Unknown slots are
// ignored.
func (m *Member) AttachDocument(doc modification.Document, now time.Time) {
	switch doc.FieldKey {
	case "portrait_photo":
		m.portraitPhoto = slotFromDocument(doc)
	case "identity_image":
		m.identityImage = slotFromDocument(doc)
	case "bank_reference":
		m.bankReference = slotFromDocument(doc)
	default:
		return
	}
	m.updatedAt = now
}

// Label names the member for proposal listings.
func (m *Member) Label() string {
	return strings.TrimSpace(m.firstName + " " + m.lastName)
}

func (m *Member) ID() uuid.UUID                { return m.id }
func (m *Member) UserID() uuid.UUID            { return m.userID }
func (m *Member) MemberNumber() string         { return m.memberNumber }
func (m *Member) FirstName() string            { return m.firstName }
func (m *Member) LastName() string             { return m.lastName }
func (m *Member) Phone() string                { return m.phone }
func (m *Member) Email() string                { return m.email }
func (m *Member) Address() string              { return m.address }
func (m *Member) City() string                 { return m.city }
func (m *Member) PostalCode() string           { return m.postalCode }
func (m *Member) MaritalStatus() string        { return m.maritalStatus }
func (m *Member) PortraitPhoto() *DocumentSlot { return m.portraitPhoto }
func (m *Member) IdentityImage() *DocumentSlot { return m.identityImage }
func (m *Member) BankReference() *DocumentSlot { return m.bankReference }
func (m *Member) CreatedAt() time.Time         { return m.createdAt }
func (m *Member) UpdatedAt() time.Time         { return m.updatedAt }
