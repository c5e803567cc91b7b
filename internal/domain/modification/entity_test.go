//go:build unit

package modification_test

import (
	"testing"
	"time"

	"benefit-desk/internal/domain/modification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUpdateProposal(t *testing.T) *modification.Proposal {
	t.Helper()

	oldValues := valuesOf("phone", modification.String("0600000000"))
	newValues := valuesOf("phone", modification.String("0611111111"))

	p, err := modification.NewUpdateProposal(
		uuid.New(),
		modification.TargetMember,
		uuid.New(),
		"Jane Cooper",
		oldValues,
		newValues,
		nil,
		time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return p
}

func TestNewUpdateProposal(t *testing.T) {
	p := newUpdateProposal(t)

	assert.Equal(t, modification.ActionUpdate, p.Action())
	assert.Equal(t, modification.StatusPending, p.Status())
	assert.True(t, p.IsPending())
	require.NotNil(t, p.TargetID())
	assert.Nil(t, p.ProcessedBy())
	assert.Nil(t, p.ProcessedAt())
	assert.Nil(t, p.Comment())
}

func TestNewUpdateProposalRejectsUnknownKind(t *testing.T) {
	_, err := modification.NewUpdateProposal(
		uuid.New(),
		modification.TargetKind("pet"),
		uuid.New(),
		"Rex",
		modification.NewValues(),
		modification.NewValues(),
		nil,
		time.Now(),
	)

	assert.ErrorIs(t, err, modification.ErrInvalidTargetKind)
}

func TestNewCreationProposal(t *testing.T) {
	newValues := valuesOf(
		"first_name", modification.String("Sam"),
		"last_name", modification.String("Cooper"),
	)

	p, err := modification.NewCreationProposal(
		uuid.New(),
		modification.TargetDependent,
		"Sam Cooper",
		newValues,
		nil,
		time.Now(),
	)

	require.NoError(t, err)
	assert.Equal(t, modification.ActionCreate, p.Action())
	assert.Nil(t, p.TargetID(), "no target exists before approval")
	assert.Nil(t, p.OldValues())

	created := uuid.New()
	p.SetTargetID(created)
	require.NotNil(t, p.TargetID())
	assert.Equal(t, created, *p.TargetID())
}

func TestProposalApprove(t *testing.T) {
	p := newUpdateProposal(t)
	staff := uuid.New()
	comment := "verified against the registry"
	now := time.Date(2026, 3, 2, 14, 30, 0, 0, time.UTC)

	require.NoError(t, p.Approve(staff, &comment, now))

	assert.Equal(t, modification.StatusApproved, p.Status())
	assert.False(t, p.IsPending())
	require.NotNil(t, p.ProcessedBy())
	assert.Equal(t, staff, *p.ProcessedBy())
	require.NotNil(t, p.ProcessedAt())
	assert.Equal(t, now, *p.ProcessedAt())
	require.NotNil(t, p.Comment())
	assert.Equal(t, comment, *p.Comment())
}

func TestProposalReject(t *testing.T) {
	p := newUpdateProposal(t)
	staff := uuid.New()
	reason := "document unreadable"

	require.NoError(t, p.Reject(staff, &reason, time.Now()))

	assert.Equal(t, modification.StatusRejected, p.Status())
	require.NotNil(t, p.Comment())
	assert.Equal(t, reason, *p.Comment())
}

func TestProposalProcessedOnlyOnce(t *testing.T) {
	p := newUpdateProposal(t)
	first := uuid.New()
	firstAt := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	require.NoError(t, p.Approve(first, nil, firstAt))

	err := p.Reject(uuid.New(), nil, firstAt.Add(time.Hour))
	assert.ErrorIs(t, err, modification.ErrAlreadyProcessed)

	err = p.Approve(uuid.New(), nil, firstAt.Add(time.Hour))
	assert.ErrorIs(t, err, modification.ErrAlreadyProcessed)

	// The first resolution stands untouched.
	assert.Equal(t, modification.StatusApproved, p.Status())
	assert.Equal(t, first, *p.ProcessedBy())
	assert.Equal(t, firstAt, *p.ProcessedAt())
}

func TestProposalChanges(t *testing.T) {
	p := newUpdateProposal(t)

	changes, err := p.Changes()

	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, "phone", changes[0].Key)
	assert.Equal(t, "0600000000", changes[0].Old.AsString())
	assert.Equal(t, "0611111111", changes[0].New.AsString())
}

func TestProposalDocumentsRoundTrip(t *testing.T) {
	docs := []modification.Document{{
		FieldKey:    "marriage_certificate",
		Filename:    "certificate.pdf",
		ContentType: "application/pdf",
		Data:        []byte("pdf-bytes"),
	}}

	p, err := modification.NewUpdateProposal(
		uuid.New(),
		modification.TargetSpouse,
		uuid.New(),
		"Alex Cooper",
		modification.NewValues(),
		valuesOf("marriage_certificate", modification.Bytes([]byte("pdf-bytes"))),
		docs,
		time.Now(),
	)
	require.NoError(t, err)

	decoded, err := p.DocumentsDecoded()
	require.NoError(t, err)
	assert.Equal(t, docs, decoded)
}
