//go:build unit || e2e

package builder

import (
	"time"

	"courtbook/internal/domain/user"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/id"
)

type UserBuilder struct {
	ID    id.ID
	Email string
	Name  string
	Phone string
	Role  string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:    7,
		Email: "test@example.com",
		Name:  "Test Player",
		Phone: "+34 600 000 000",
		Role:  "USER",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	usr := user.NewUser(u.ID, email, u.Name, role)
	usr.Phone = u.Phone
	return usr, nil
}

// Build skips validation; use it for fixtures that only need a record.
func (u *UserBuilder) Build() *user.User {
	created := clock.NewDateTime(time.Date(2025, 1, 10, 12, 0, 0, 0, time.Local))
	return &user.User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Phone:     u.Phone,
		Role:      user.Role(u.Role),
		CreatedAt: created,
		UpdatedAt: created,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(userID id.ID) *UserBuilder {
	u.ID = userID
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithoutPhone() *UserBuilder {
	u.Phone = ""
	return u
}
