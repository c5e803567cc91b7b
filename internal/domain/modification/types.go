package modification

import "errors"

var (
	ErrInvalidTargetKind = errors.New("invalid target kind")
	ErrInvalidAction     = errors.New("invalid action")
	ErrInvalidStatus     = errors.New("invalid proposal status")
)

// TargetKind is the closed set of record kinds a proposal may affect.
type TargetKind string

const (
	TargetMember    TargetKind = "member"
	TargetSpouse    TargetKind = "spouse"
	TargetDependent TargetKind = "dependent"
)

func (k TargetKind) String() string {
	return string(k)
}

func (k TargetKind) IsValid() bool {
	switch k {
	case TargetMember, TargetSpouse, TargetDependent:
		return true
	default:
		return false
	}
}

func NewTargetKind(s string) (TargetKind, error) {
	kind := TargetKind(s)
	if !kind.IsValid() {
		return "", ErrInvalidTargetKind
	}
	return kind, nil
}

type Action string

const (
	ActionUpdate Action = "update"
	ActionCreate Action = "create"
)

func (a Action) String() string {
	return string(a)
}

func (a Action) IsValid() bool {
	switch a {
	case ActionUpdate, ActionCreate:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}
