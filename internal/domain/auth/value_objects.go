package auth

import (
	"errors"
	"strings"

	"courtbook/internal/domain/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNameRequired       = errors.New("name is required")
)

type Credentials struct {
	email    user.Email
	password string
}

// NewCredentials only checks shape; strength rules apply at registration.
func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}
	if passwordStr == "" {
		return Credentials{}, ErrInvalidCredentials
	}

	return Credentials{
		email:    email,
		password: passwordStr,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() string {
	return c.password
}

type Registration struct {
	email    user.Email
	password user.Password
	name     string
	phone    string
	role     user.Role
}

func NewRegistration(emailStr, passwordStr, name, phone, roleStr string) (Registration, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Registration{}, err
	}

	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Registration{}, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return Registration{}, ErrNameRequired
	}

	role := user.RoleUser
	if roleStr != "" {
		if role, err = user.NewRole(roleStr); err != nil {
			return Registration{}, err
		}
	}

	return Registration{
		email:    email,
		password: password,
		name:     name,
		phone:    user.NormalizePhone(phone),
		role:     role,
	}, nil
}

func (r Registration) Email() user.Email       { return r.email }
func (r Registration) Password() user.Password { return r.password }
func (r Registration) Name() string            { return r.name }
func (r Registration) Phone() string           { return r.phone }
func (r Registration) Role() user.Role         { return r.role }
