//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"benefit-desk/internal/domain/household"
	"benefit-desk/internal/domain/modification"
	"benefit-desk/internal/infra"
	"benefit-desk/internal/pkg/clock"
	"benefit-desk/internal/pkg/errs"
	"benefit-desk/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedHouseholdMember(uow *fakeUoW, memberID, userID uuid.UUID) *household.Member {
	created := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	m := household.ReconstructMember(
		memberID, userID,
		"M-10042", "Jane", "Cooper",
		"0600000000", "jane@example.com", "12 rue des Lilas", "Lyon", "69001", "married",
		nil, nil, nil,
		created, created,
	)
	uow.tx.households.member = m
	return m
}

func phoneValues(phone string) modification.Values {
	vs := modification.NewValues()
	vs.Set("phone", modification.String(phone))
	return vs
}

func TestProposeUpdate(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	t.Run("snapshots the target and files a pending proposal", func(t *testing.T) {
		uow := newFakeUoW()
		memberID, userID := seedMember(uow)
		seedHouseholdMember(uow, memberID, userID)

		uc := commands.NewModificationUseCase(uow, clock.NewMockClock(now))

		result, err := uc.ProposeUpdate(context.Background(), commands.ProposeUpdateRequest{
			TargetKind: "member",
			TargetID:   memberID,
			NewValues:  phoneValues("0611111111"),
		}, userID)

		require.NoError(t, err)
		require.Len(t, uow.tx.proposals.created, 1)

		p := uow.tx.proposals.created[0]
		assert.Equal(t, p.ID(), result.ProposalID)
		assert.True(t, p.IsPending())
		assert.Equal(t, modification.ActionUpdate, p.Action())
		assert.Equal(t, "Jane Cooper", p.TargetLabel())

		// The old values are the target's state at proposal time.
		oldValues, err := modification.DecodeValues(p.OldValues())
		require.NoError(t, err)
		phone, ok := oldValues.Get("phone")
		require.True(t, ok)
		assert.Equal(t, "0600000000", phone.AsString())
	})

	t.Run("rejects a target owned by another member", func(t *testing.T) {
		uow := newFakeUoW()
		_, userID := seedMember(uow)
		otherSpouse := household.ReconstructSpouse(
			uuid.New(), uuid.New(),
			"Alex", "Stranger", "ID-99",
			nil, "male", "", "", "",
			nil, nil, nil,
			now, now,
		)
		uow.tx.households.spouse = otherSpouse

		uc := commands.NewModificationUseCase(uow, clock.NewMockClock(now))

		_, err := uc.ProposeUpdate(context.Background(), commands.ProposeUpdateRequest{
			TargetKind: "spouse",
			TargetID:   otherSpouse.ID(),
			NewValues:  modification.NewValues(),
		}, userID)

		assert.ErrorIs(t, err, commands.ErrTargetNotOwned)
		assert.Empty(t, uow.tx.proposals.created)
	})

	t.Run("rejects a second pending proposal for the same target", func(t *testing.T) {
		uow := newFakeUoW()
		memberID, userID := seedMember(uow)
		seedHouseholdMember(uow, memberID, userID)

		uc := commands.NewModificationUseCase(uow, clock.NewMockClock(now))

		req := commands.ProposeUpdateRequest{
			TargetKind: "member",
			TargetID:   memberID,
			NewValues:  phoneValues("0611111111"),
		}
		_, err := uc.ProposeUpdate(context.Background(), req, userID)
		require.NoError(t, err)

		_, err = uc.ProposeUpdate(context.Background(), req, userID)

		assert.ErrorIs(t, err, commands.ErrDuplicatePending)
		assert.Len(t, uow.tx.proposals.created, 1)
	})

	t.Run("race loser maps the unique violation to the duplicate error", func(t *testing.T) {
		uow := newFakeUoW()
		memberID, userID := seedMember(uow)
		seedHouseholdMember(uow, memberID, userID)
		uow.tx.proposals.createErr = infra.WrapRepoErr("failed to create proposal", errs.New("unique violation"), infra.KindDuplicateKey)

		uc := commands.NewModificationUseCase(uow, clock.NewMockClock(now))

		_, err := uc.ProposeUpdate(context.Background(), commands.ProposeUpdateRequest{
			TargetKind: "member",
			TargetID:   memberID,
			NewValues:  phoneValues("0611111111"),
		}, userID)

		assert.ErrorIs(t, err, commands.ErrDuplicatePending)
	})

	t.Run("unknown target kind", func(t *testing.T) {
		uow := newFakeUoW()
		_, userID := seedMember(uow)

		uc := commands.NewModificationUseCase(uow, clock.NewMockClock(now))

		_, err := uc.ProposeUpdate(context.Background(), commands.ProposeUpdateRequest{
			TargetKind: "pet",
			TargetID:   uuid.New(),
		}, userID)

		assert.ErrorIs(t, err, modification.ErrInvalidTargetKind)
	})

	t.Run("missing target", func(t *testing.T) {
		uow := newFakeUoW()
		_, userID := seedMember(uow)

		uc := commands.NewModificationUseCase(uow, clock.NewMockClock(now))

		_, err := uc.ProposeUpdate(context.Background(), commands.ProposeUpdateRequest{
			TargetKind: "dependent",
			TargetID:   uuid.New(),
		}, userID)

		assert.ErrorIs(t, err, commands.ErrTargetNotFound)
	})
}

func TestProposeCreation(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	t.Run("files a creation proposal without a target", func(t *testing.T) {
		uow := newFakeUoW()
		_, userID := seedMember(uow)

		vs := modification.NewValues()
		vs.Set("first_name", modification.String("Sam"))
		vs.Set("last_name", modification.String("Cooper"))
		vs.Set("birth_date", modification.String("20/11/2015"))

		uc := commands.NewModificationUseCase(uow, clock.NewMockClock(now))

		result, err := uc.ProposeCreation(context.Background(), commands.ProposeCreationRequest{
			TargetKind: "dependent",
			NewValues:  vs,
		}, userID)

		require.NoError(t, err)
		require.Len(t, uow.tx.proposals.created, 1)

		p := uow.tx.proposals.created[0]
		assert.Equal(t, p.ID(), result.ProposalID)
		assert.Equal(t, modification.ActionCreate, p.Action())
		assert.Nil(t, p.TargetID())
		assert.Equal(t, "Sam Cooper", p.TargetLabel())
	})

	t.Run("several creations of the same kind may be pending at once", func(t *testing.T) {
		uow := newFakeUoW()
		_, userID := seedMember(uow)

		uc := commands.NewModificationUseCase(uow, clock.NewMockClock(now))

		for _, name := range []string{"Sam", "Lou"} {
			vs := modification.NewValues()
			vs.Set("first_name", modification.String(name))
			vs.Set("last_name", modification.String("Cooper"))

			_, err := uc.ProposeCreation(context.Background(), commands.ProposeCreationRequest{
				TargetKind: "dependent",
				NewValues:  vs,
			}, userID)
			require.NoError(t, err)
		}

		assert.Len(t, uow.tx.proposals.created, 2)
	})

	t.Run("the primary member record cannot be created", func(t *testing.T) {
		uow := newFakeUoW()
		_, userID := seedMember(uow)

		uc := commands.NewModificationUseCase(uow, clock.NewMockClock(now))

		_, err := uc.ProposeCreation(context.Background(), commands.ProposeCreationRequest{
			TargetKind: "member",
			NewValues:  modification.NewValues(),
		}, userID)

		assert.ErrorIs(t, err, commands.ErrCreationNotSupported)
	})
}

func TestApproveProposal(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	staffID := uuid.New()

	seedUpdateProposal := func(t *testing.T, uow *fakeUoW, member *household.Member) *modification.Proposal {
		t.Helper()
		p, err := modification.NewUpdateProposal(
			member.ID(),
			modification.TargetMember,
			member.ID(),
			member.Label(),
			member.ExtractValues(),
			phoneValues("0611111111"),
			nil,
			now.Add(-time.Hour),
		)
		require.NoError(t, err)
		uow.tx.proposals.stored[p.ID()] = p
		return p
	}

	t.Run("applies the change and resolves the proposal", func(t *testing.T) {
		uow := newFakeUoW()
		memberID, userID := seedMember(uow)
		member := seedHouseholdMember(uow, memberID, userID)
		p := seedUpdateProposal(t, uow, member)
		comment := "verified"

		uc := commands.NewModificationUseCase(uow, clock.NewMockClock(now))

		err := uc.ApproveProposal(context.Background(), p.ID(), commands.ProcessProposalRequest{
			Comment: &comment,
		}, staffID)

		require.NoError(t, err)

		require.Len(t, uow.tx.households.savedMembers, 1)
		assert.Equal(t, "0611111111", uow.tx.households.savedMembers[0].Phone())

		require.Len(t, uow.tx.proposals.updated, 1)
		resolved := uow.tx.proposals.updated[0]
		assert.Equal(t, modification.StatusApproved, resolved.Status())
		require.NotNil(t, resolved.ProcessedBy())
		assert.Equal(t, staffID, *resolved.ProcessedBy())
		require.NotNil(t, resolved.ProcessedAt())
		assert.Equal(t, now, *resolved.ProcessedAt())
	})

	t.Run("creation approval inserts the record and back-fills the target", func(t *testing.T) {
		uow := newFakeUoW()
		memberID, _ := seedMember(uow)

		vs := modification.NewValues()
		vs.Set("first_name", modification.String("Sam"))
		vs.Set("last_name", modification.String("Cooper"))
		vs.Set("birth_date", modification.String("20/11/2015"))
		p, err := modification.NewCreationProposal(
			memberID,
			modification.TargetDependent,
			"Sam Cooper",
			vs,
			nil,
			now.Add(-time.Hour),
		)
		require.NoError(t, err)
		uow.tx.proposals.stored[p.ID()] = p

		uc := commands.NewModificationUseCase(uow, clock.NewMockClock(now))

		require.NoError(t, uc.ApproveProposal(context.Background(), p.ID(), commands.ProcessProposalRequest{}, staffID))

		require.Len(t, uow.tx.households.insertedChildren, 1)
		created := uow.tx.households.insertedChildren[0]
		assert.Equal(t, "Sam", created.FirstName())
		assert.Equal(t, memberID, created.MemberID())

		require.Len(t, uow.tx.proposals.updated, 1)
		resolved := uow.tx.proposals.updated[0]
		require.NotNil(t, resolved.TargetID())
		assert.Equal(t, created.ID(), *resolved.TargetID())
	})

	t.Run("already processed", func(t *testing.T) {
		uow := newFakeUoW()
		memberID, userID := seedMember(uow)
		member := seedHouseholdMember(uow, memberID, userID)
		p := seedUpdateProposal(t, uow, member)
		require.NoError(t, p.Reject(uuid.New(), nil, now.Add(-time.Minute)))

		uc := commands.NewModificationUseCase(uow, clock.NewMockClock(now))

		err := uc.ApproveProposal(context.Background(), p.ID(), commands.ProcessProposalRequest{}, staffID)

		assert.ErrorIs(t, err, modification.ErrAlreadyProcessed)
		assert.Empty(t, uow.tx.households.savedMembers)
	})

	t.Run("target gone leaves the proposal pending", func(t *testing.T) {
		uow := newFakeUoW()
		memberID, userID := seedMember(uow)
		member := seedHouseholdMember(uow, memberID, userID)
		p := seedUpdateProposal(t, uow, member)
		uow.tx.households.member = nil

		uc := commands.NewModificationUseCase(uow, clock.NewMockClock(now))

		err := uc.ApproveProposal(context.Background(), p.ID(), commands.ProcessProposalRequest{}, staffID)

		assert.ErrorIs(t, err, commands.ErrTargetNotFound)
		assert.Empty(t, uow.tx.proposals.updated)
		assert.True(t, uow.tx.proposals.stored[p.ID()].IsPending())
	})

	t.Run("unknown proposal", func(t *testing.T) {
		uow := newFakeUoW()

		uc := commands.NewModificationUseCase(uow, clock.NewMockClock(now))

		err := uc.ApproveProposal(context.Background(), uuid.New(), commands.ProcessProposalRequest{}, staffID)

		assert.ErrorIs(t, err, commands.ErrProposalNotFoundWrite)
	})
}

func TestRejectProposal(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	uow := newFakeUoW()
	memberID, userID := seedMember(uow)
	member := seedHouseholdMember(uow, memberID, userID)

	p, err := modification.NewUpdateProposal(
		member.ID(),
		modification.TargetMember,
		member.ID(),
		member.Label(),
		member.ExtractValues(),
		phoneValues("0611111111"),
		nil,
		now.Add(-time.Hour),
	)
	require.NoError(t, err)
	uow.tx.proposals.stored[p.ID()] = p

	staffID := uuid.New()
	reason := "document unreadable"
	uc := commands.NewModificationUseCase(uow, clock.NewMockClock(now))

	require.NoError(t, uc.RejectProposal(context.Background(), p.ID(), commands.ProcessProposalRequest{
		Comment: &reason,
	}, staffID))

	// The target is never touched on rejection.
	assert.Empty(t, uow.tx.households.savedMembers)
	assert.Equal(t, "0600000000", member.Phone())

	require.Len(t, uow.tx.proposals.updated, 1)
	resolved := uow.tx.proposals.updated[0]
	assert.Equal(t, modification.StatusRejected, resolved.Status())
	require.NotNil(t, resolved.Comment())
	assert.Equal(t, reason, *resolved.Comment())
}
