package benefit

type Status string

const (
	StatusSubmitted Status = "submitted"
	StatusInReview  Status = "in_review"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusSubmitted, StatusInReview, StatusAccepted, StatusRejected, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status finalizes a request.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusAccepted, StatusRejected, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsActive reports whether the request counts against offering quotas and
// the one-request-per-member rule.
func (s Status) IsActive() bool {
	switch s {
	case StatusSubmitted, StatusInReview, StatusAccepted:
		return true
	default:
		return false
	}
}

// ActiveStatuses is the status set used by quota and duplicate counting.
func ActiveStatuses() []string {
	return []string{
		StatusSubmitted.String(),
		StatusInReview.String(),
		StatusAccepted.String(),
	}
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}
