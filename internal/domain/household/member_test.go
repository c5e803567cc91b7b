//go:build unit

package household_test

import (
	"testing"
	"time"

	"benefit-desk/internal/domain/household"
	"benefit-desk/internal/domain/modification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMember() *household.Member {
	created := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	return household.ReconstructMember(
		uuid.New(), uuid.New(),
		"M-10042", "Jane", "Cooper",
		"0600000000", "jane@example.com", "12 rue des Lilas", "Lyon", "69001", "married",
		nil, nil, nil,
		created, created,
	)
}

func TestMemberExtractValues(t *testing.T) {
	m := newMember()

	vs := m.ExtractValues()

	assert.Equal(t,
		[]string{"phone", "email", "address", "city", "postal_code", "marital_status"},
		vs.Keys(),
	)

	phone, ok := vs.Get("phone")
	require.True(t, ok)
	assert.Equal(t, "0600000000", phone.AsString())
}

func TestMemberExtractValuesEmptyFieldIsNull(t *testing.T) {
	created := time.Now()
	m := household.ReconstructMember(
		uuid.New(), uuid.New(),
		"M-10043", "Sam", "Cooper",
		"", "", "", "", "", "",
		nil, nil, nil,
		created, created,
	)

	vs := m.ExtractValues()

	phone, ok := vs.Get("phone")
	require.True(t, ok)
	assert.True(t, phone.IsNull())
}

func TestMemberApplyValues(t *testing.T) {
	t.Run("overwrites whitelisted fields", func(t *testing.T) {
		m := newMember()
		now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

		vs := modification.NewValues()
		vs.Set("phone", modification.String("0611111111"))
		vs.Set("city", modification.String("Marseille"))

		m.ApplyValues(vs, now)

		assert.Equal(t, "0611111111", m.Phone())
		assert.Equal(t, "Marseille", m.City())
		assert.Equal(t, "jane@example.com", m.Email(), "untouched fields keep their value")
		assert.Equal(t, now, m.UpdatedAt())
	})

	t.Run("ignores keys outside the whitelist", func(t *testing.T) {
		m := newMember()

		vs := modification.NewValues()
		vs.Set("member_number", modification.String("M-99999"))
		vs.Set("first_name", modification.String("Hacker"))

		m.ApplyValues(vs, time.Now())

		assert.Equal(t, "M-10042", m.MemberNumber())
		assert.Equal(t, "Jane", m.FirstName())
	})

	t.Run("null clears the field", func(t *testing.T) {
		m := newMember()

		vs := modification.NewValues()
		vs.Set("marital_status", modification.Null())

		m.ApplyValues(vs, time.Now())

		assert.Empty(t, m.MaritalStatus())
	})
}

func TestMemberAttachDocument(t *testing.T) {
	m := newMember()
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	m.AttachDocument(modification.Document{
		FieldKey:    "portrait_photo",
		Filename:    "photo.jpg",
		ContentType: "image/jpeg",
		Data:        []byte{0xff, 0xd8},
	}, now)

	require.NotNil(t, m.PortraitPhoto())
	assert.Equal(t, "photo.jpg", m.PortraitPhoto().Filename)
	assert.Equal(t, "image/jpeg", m.PortraitPhoto().ContentType)
	assert.Equal(t, []byte{0xff, 0xd8}, m.PortraitPhoto().Data)
	assert.Nil(t, m.IdentityImage())
	assert.Nil(t, m.BankReference())
	assert.Equal(t, now, m.UpdatedAt())
}

func TestMemberAttachDocumentUnknownSlot(t *testing.T) {
	m := newMember()
	before := m.UpdatedAt()

	m.AttachDocument(modification.Document{
		FieldKey: "school_certificate",
		Filename: "cert.pdf",
	}, before.Add(time.Hour))

	assert.Nil(t, m.PortraitPhoto())
	assert.Nil(t, m.IdentityImage())
	assert.Nil(t, m.BankReference())
	assert.Equal(t, before, m.UpdatedAt(), "ignored documents do not bump updatedAt")
}

func TestMemberLabel(t *testing.T) {
	assert.Equal(t, "Jane Cooper", newMember().Label())

	created := time.Now()
	noFirst := household.ReconstructMember(
		uuid.New(), uuid.New(),
		"M-10044", "", "Cooper",
		"", "", "", "", "", "",
		nil, nil, nil,
		created, created,
	)
	assert.Equal(t, "Cooper", noFirst.Label())
}
