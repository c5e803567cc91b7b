package benefit

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidStatus = errors.New("invalid request status")

// Request is one member's application to an offering. The status machine is
// deliberately permissive: staff may move a request to any valid status,
// including backwards out of a terminal one.
type Request struct {
	id          uuid.UUID
	memberID    uuid.UUID
	offeringID  uuid.UUID
	status      Status
	answers     []byte
	documents   []byte
	comment     *string
	processedBy *uuid.UUID
	submittedAt time.Time
	processedAt *time.Time
	finalizedAt *time.Time
}

func NewRequest(memberID, offeringID uuid.UUID, answers, documents []byte, now time.Time) *Request {
	return &Request{
		id:          uuid.New(),
		memberID:    memberID,
		offeringID:  offeringID,
		status:      StatusSubmitted,
		answers:     answers,
		documents:   documents,
		submittedAt: now,
	}
}

func ReconstructRequest(
	id, memberID, offeringID uuid.UUID,
	status Status,
	answers, documents []byte,
	comment *string,
	processedBy *uuid.UUID,
	submittedAt time.Time,
	processedAt, finalizedAt *time.Time,
) *Request {
	return &Request{
		id:          id,
		memberID:    memberID,
		offeringID:  offeringID,
		status:      status,
		answers:     answers,
		documents:   documents,
		comment:     comment,
		processedBy: processedBy,
		submittedAt: submittedAt,
		processedAt: processedAt,
		finalizedAt: finalizedAt,
	}
}

// SetStatus overwrites status, comment and processor unconditionally. The
// processing timestamp is stamped once, on the first transition into
// in_review. The finalization timestamp is restamped on every transition
// into a terminal status, so re-finalizing resets it.
func (r *Request) SetStatus(status Status, comment *string, processedBy *uuid.UUID, now time.Time) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}

	r.status = status
	r.comment = comment
	r.processedBy = processedBy

	if status == StatusInReview && r.processedAt == nil {
		t := now
		r.processedAt = &t
	}
	if status.IsTerminal() {
		t := now
		r.finalizedAt = &t
	}
	return nil
}

func (r *Request) IsActive() bool {
	return r.status.IsActive()
}

func (r *Request) ID() uuid.UUID           { return r.id }
func (r *Request) MemberID() uuid.UUID     { return r.memberID }
func (r *Request) OfferingID() uuid.UUID   { return r.offeringID }
func (r *Request) Status() Status          { return r.status }
func (r *Request) Answers() []byte         { return r.answers }
func (r *Request) Documents() []byte       { return r.documents }
func (r *Request) Comment() *string        { return r.comment }
func (r *Request) ProcessedBy() *uuid.UUID { return r.processedBy }
func (r *Request) SubmittedAt() time.Time  { return r.submittedAt }
func (r *Request) ProcessedAt() *time.Time { return r.processedAt }
func (r *Request) FinalizedAt() *time.Time { return r.finalizedAt }
