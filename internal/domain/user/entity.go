package user

import (
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/id"
)

// User is the account record the backend returns from /auth endpoints.
// The client never mutates it outside of profile flows.
type User struct {
	ID        id.ID          `json:"id"`
	Email     string         `json:"email"`
	Name      string         `json:"name"`
	Phone     string         `json:"phone,omitempty"`
	Role      Role           `json:"role"`
	CreatedAt clock.DateTime `json:"createdAt"`
	UpdatedAt clock.DateTime `json:"updatedAt"`
}

func NewUser(userID id.ID, email Email, name string, role Role) *User {
	return &User{
		ID:    userID,
		Email: email.Value(),
		Name:  name,
		Role:  role,
	}
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) CanManageClubs() bool {
	return u.Role == RoleAdmin || u.Role == RoleClubOwner
}

// DisplayName falls back to the email when no name was registered.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
