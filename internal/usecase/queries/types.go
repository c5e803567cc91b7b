package queries

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// OfferingView represents read-optimized offering data
type OfferingView struct {
	ID          uuid.UUID  `json:"id"`
	Label       string     `json:"label"`
	Description string     `json:"description"`
	Open        bool       `json:"open"`
	OpensAt     *time.Time `json:"opens_at,omitempty"`
	ClosesAt    *time.Time `json:"closes_at,omitempty"`
	Quota       int32      `json:"quota"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// OfferingStatsView carries per-status request counts for one offering
type OfferingStatsView struct {
	OfferingID uuid.UUID `json:"offering_id"`
	Submitted  int64     `json:"submitted"`
	InReview   int64     `json:"in_review"`
	Accepted   int64     `json:"accepted"`
	Rejected   int64     `json:"rejected"`
	Completed  int64     `json:"completed"`
	Active     int64     `json:"active"`
}

// RequestView represents read-optimized benefit request data
type RequestView struct {
	ID            uuid.UUID       `json:"id"`
	OfferingID    uuid.UUID       `json:"offering_id"`
	OfferingLabel string          `json:"offering_label"`
	MemberID      uuid.UUID       `json:"member_id"`
	MemberUserID  uuid.UUID       `json:"-"`
	MemberName    string          `json:"member_name"`
	MemberNumber  string          `json:"member_number"`
	Status        string          `json:"status"`
	Comment       *string         `json:"comment,omitempty"`
	Answers       json.RawMessage `json:"answers,omitempty"`
	SubmittedAt   time.Time       `json:"submitted_at"`
	ProcessedAt   *time.Time      `json:"processed_at,omitempty"`
	FinalizedAt   *time.Time      `json:"finalized_at,omitempty"`
	ProcessedBy   *uuid.UUID      `json:"processed_by,omitempty"`
}

type RequestListItem struct {
	ID            uuid.UUID `json:"id"`
	OfferingID    uuid.UUID `json:"offering_id"`
	OfferingLabel string    `json:"offering_label"`
	MemberID      uuid.UUID `json:"member_id"`
	MemberName    string    `json:"member_name"`
	Status        string    `json:"status"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

// ProposalView represents read-optimized modification proposal data
type ProposalView struct {
	ID           uuid.UUID  `json:"id"`
	MemberID     uuid.UUID  `json:"member_id"`
	MemberUserID uuid.UUID  `json:"-"`
	MemberName   string     `json:"member_name"`
	TargetKind   string     `json:"target_kind"`
	Action       string     `json:"action"`
	TargetID     *uuid.UUID `json:"target_id,omitempty"`
	TargetLabel  string     `json:"target_label"`
	Status       string     `json:"status"`
	Comment      *string    `json:"comment,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	ProcessedAt  *time.Time `json:"processed_at,omitempty"`
	ProcessedBy  *uuid.UUID `json:"processed_by,omitempty"`
}

type ProposalListItem struct {
	ID          uuid.UUID `json:"id"`
	MemberID    uuid.UUID `json:"member_id"`
	MemberName  string    `json:"member_name"`
	TargetKind  string    `json:"target_kind"`
	Action      string    `json:"action"`
	TargetLabel string    `json:"target_label"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProposalChangeView is one row of a proposal's review diff
type ProposalChangeView struct {
	Key        string  `json:"key"`
	Label      string  `json:"label"`
	Old        *string `json:"old,omitempty"`
	New        *string `json:"new,omitempty"`
	IsDocument bool    `json:"is_document"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID  `json:"id"`
	Email    string     `json:"email"`
	Role     string     `json:"role"`
	MemberID *uuid.UUID `json:"member_id,omitempty"`
	IsActive bool       `json:"is_active"`
}

// DocumentMetaView exposes a stored document's metadata without its bytes
type DocumentMetaView struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
}

type MemberProfileView struct {
	ID            uuid.UUID         `json:"id"`
	MemberNumber  string            `json:"member_number"`
	FirstName     string            `json:"first_name"`
	LastName      string            `json:"last_name"`
	Phone         string            `json:"phone"`
	Email         string            `json:"email"`
	Address       string            `json:"address"`
	City          string            `json:"city"`
	PostalCode    string            `json:"postal_code"`
	MaritalStatus string            `json:"marital_status"`
	PortraitPhoto *DocumentMetaView `json:"portrait_photo,omitempty"`
	IdentityImage *DocumentMetaView `json:"identity_image,omitempty"`
	BankReference *DocumentMetaView `json:"bank_reference,omitempty"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

type SpouseView struct {
	ID                  uuid.UUID         `json:"id"`
	FirstName           string            `json:"first_name"`
	LastName            string            `json:"last_name"`
	IdentityNumber      string            `json:"identity_number"`
	BirthDate           *time.Time        `json:"birth_date,omitempty"`
	Gender              string            `json:"gender"`
	Phone               string            `json:"phone"`
	Email               string            `json:"email"`
	City                string            `json:"city"`
	PortraitPhoto       *DocumentMetaView `json:"portrait_photo,omitempty"`
	IdentityImage       *DocumentMetaView `json:"identity_image,omitempty"`
	MarriageCertificate *DocumentMetaView `json:"marriage_certificate,omitempty"`
}

type DependentView struct {
	ID                uuid.UUID         `json:"id"`
	FirstName         string            `json:"first_name"`
	LastName          string            `json:"last_name"`
	BirthDate         *time.Time        `json:"birth_date,omitempty"`
	Gender            string            `json:"gender"`
	IdentityNumber    string            `json:"identity_number"`
	Phone             string            `json:"phone"`
	Email             string            `json:"email"`
	EducationLevel    string            `json:"education_level"`
	PortraitPhoto     *DocumentMetaView `json:"portrait_photo,omitempty"`
	IdentityImage     *DocumentMetaView `json:"identity_image,omitempty"`
	SchoolCertificate *DocumentMetaView `json:"school_certificate,omitempty"`
}

// HouseholdView groups a member's own record with their spouses and
// dependents for the profile screen
type HouseholdView struct {
	Member     MemberProfileView `json:"member"`
	Spouses    []SpouseView      `json:"spouses"`
	Dependents []DependentView   `json:"dependents"`
}
