package request

import (
	"courtbook/internal/domain/auth"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToDomain() (auth.Credentials, error) {
	return auth.NewCredentials(r.Email, r.Password)
}

// RegisterRequest accepts the role as either "role" or "userRole"; userRole wins.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	UserRole string `json:"userRole"`
}

func (r *RegisterRequest) ToDomain() (auth.Registration, error) {
	role := r.UserRole
	if role == "" {
		role = r.Role
	}
	return auth.NewRegistration(r.Email, r.Password, r.Name, r.Phone, role)
}

type ValidateTokenRequest struct {
	Token string `json:"token" binding:"required"`
}
