//go:build unit || e2e

package builder

import (
	"courtbook/internal/domain/auth"
	reqdto "courtbook/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
	Name     string
	Phone    string
	Role     string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "test@example.com",
		Password: "password123",
		Name:     "Test Player",
		Phone:    "+34 600 123 456",
		Role:     "USER",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:    a.Email,
		Password: a.Password,
		Name:     a.Name,
		Phone:    a.Phone,
		Role:     a.Role,
	}
}

func (a *AuthBuilder) BuildCredentials() auth.Credentials {
	c, err := auth.NewCredentials(a.Email, a.Password)
	if err != nil {
		panic(err)
	}
	return c
}

func (a *AuthBuilder) BuildRegistration() auth.Registration {
	r, err := auth.NewRegistration(a.Email, a.Password, a.Name, a.Phone, a.Role)
	if err != nil {
		panic(err)
	}
	return r
}
