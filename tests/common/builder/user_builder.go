//go:build unit || e2e

package builder

import (
	"benefit-desk/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID       uuid.UUID
	Email    string
	Role     string
	MemberID *uuid.UUID
	IsActive bool
}

func NewUserBuilder() *UserBuilder {
	memberID := uuid.New()
	return &UserBuilder{
		ID:       uuid.New(),
		Email:    "member@example.com",
		Role:     "member",
		MemberID: &memberID,
		IsActive: true,
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

func (b *UserBuilder) WithRole(role string) *UserBuilder {
	b.Role = role
	return b
}

func (b *UserBuilder) WithoutMember() *UserBuilder {
	b.MemberID = nil
	return b
}

func (b *UserBuilder) BuildAuthorizedView() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       b.ID,
		Email:    b.Email,
		Role:     b.Role,
		MemberID: b.MemberID,
		IsActive: b.IsActive,
	}
}
