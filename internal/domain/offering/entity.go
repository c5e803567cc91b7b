package offering

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyLabel    = errors.New("offering label must not be empty")
	ErrNegativeQuota = errors.New("offering quota cannot be negative")
	ErrWindowOrder   = errors.New("offering window closes before it opens")
)

// Offering is a benefit catalog entry. quota == 0 means unlimited.
type Offering struct {
	id          uuid.UUID
	label       string
	description string
	open        bool
	opensAt     *time.Time
	closesAt    *time.Time
	quota       int32
	createdBy   uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
}

func NewOffering(
	label, description string,
	open bool,
	opensAt, closesAt *time.Time,
	quota int32,
	createdBy uuid.UUID,
	now time.Time,
) (*Offering, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, ErrEmptyLabel
	}
	if quota < 0 {
		return nil, ErrNegativeQuota
	}
	if opensAt != nil && closesAt != nil && closesAt.Before(*opensAt) {
		return nil, ErrWindowOrder
	}

	return &Offering{
		id:          uuid.New(),
		label:       label,
		description: description,
		open:        open,
		opensAt:     opensAt,
		closesAt:    closesAt,
		quota:       quota,
		createdBy:   createdBy,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructOffering(
	id uuid.UUID,
	label, description string,
	open bool,
	opensAt, closesAt *time.Time,
	quota int32,
	createdBy uuid.UUID,
	createdAt, updatedAt time.Time,
) *Offering {
	return &Offering{
		id:          id,
		label:       label,
		description: description,
		open:        open,
		opensAt:     opensAt,
		closesAt:    closesAt,
		quota:       quota,
		createdBy:   createdBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (o *Offering) Edit(
	label, description string,
	open bool,
	opensAt, closesAt *time.Time,
	quota int32,
	now time.Time,
) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return ErrEmptyLabel
	}
	if quota < 0 {
		return ErrNegativeQuota
	}
	if opensAt != nil && closesAt != nil && closesAt.Before(*opensAt) {
		return ErrWindowOrder
	}

	o.label = label
	o.description = description
	o.open = open
	o.opensAt = opensAt
	o.closesAt = closesAt
	o.quota = quota
	o.updatedAt = now
	return nil
}

func (o *Offering) SetOpen(open bool, now time.Time) {
	o.open = open
	o.updatedAt = now
}

func (o *Offering) ID() uuid.UUID        { return o.id }
func (o *Offering) Label() string        { return o.label }
func (o *Offering) Description() string  { return o.description }
func (o *Offering) IsOpen() bool         { return o.open }
func (o *Offering) OpensAt() *time.Time  { return o.opensAt }
func (o *Offering) ClosesAt() *time.Time { return o.closesAt }
func (o *Offering) Quota() int32         { return o.quota }
func (o *Offering) CreatedBy() uuid.UUID { return o.createdBy }
func (o *Offering) CreatedAt() time.Time { return o.createdAt }
func (o *Offering) UpdatedAt() time.Time { return o.updatedAt }
