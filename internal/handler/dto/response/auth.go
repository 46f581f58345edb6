package response

import (
	"courtbook/internal/devserver"
	"courtbook/internal/domain/user"
)

type LoginResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"tokenType"`
	ExpiresIn int64     `json:"expiresIn"`
	User      user.User `json:"user"`
}

func FromLoginResult(r *devserver.LoginResult) LoginResponse {
	return LoginResponse{
		Token:     r.Token,
		TokenType: devserver.TokenType,
		ExpiresIn: r.ExpiresIn,
		User:      r.User,
	}
}

// UserResponse repeats the role as userRole for clients of the user service.
type UserResponse struct {
	user.User
	UserRole user.Role `json:"userRole"`
}

func FromUser(u *user.User) UserResponse {
	return UserResponse{User: *u, UserRole: u.Role}
}

type ValidateTokenResponse struct {
	IsValid bool `json:"isValid"`
}
