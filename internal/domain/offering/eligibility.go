package offering

import (
	"time"

	"benefit-desk/internal/pkg/errs"
)

// ErrNotEligible marks every eligibility failure; the specific rule is the
// wrapped sentinel.
var (
	ErrNotEligible      = errs.New("member is not eligible for this offering")
	ErrClosed           = errs.New("offering is closed")
	ErrBeforeWindow     = errs.New("offering has not opened yet")
	ErrAfterWindow      = errs.New("offering window has expired")
	ErrQuotaExceeded    = errs.New("offering quota exhausted")
	ErrDuplicateRequest = errs.New("member already has an active request for this offering")
)

// CheckEligibility applies the submission rules in order and returns the
// first failure, marked with ErrNotEligible. activeCount is the number of
// active requests against the offering; memberActiveCount the number of
// active requests the submitting member already has for it.
func (o *Offering) CheckEligibility(now time.Time, activeCount, memberActiveCount int64) error {
	if !o.open {
		return errs.Mark(ErrClosed, ErrNotEligible)
	}
	if o.opensAt != nil && now.Before(*o.opensAt) {
		return errs.Mark(ErrBeforeWindow, ErrNotEligible)
	}
	if o.closesAt != nil && now.After(*o.closesAt) {
		return errs.Mark(ErrAfterWindow, ErrNotEligible)
	}
	if o.quota > 0 && activeCount >= int64(o.quota) {
		return errs.Mark(ErrQuotaExceeded, ErrNotEligible)
	}
	if memberActiveCount > 0 {
		return errs.Mark(ErrDuplicateRequest, ErrNotEligible)
	}
	return nil
}
