package user

import (
	"errors"
	"net/mail"
	"strings"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidRole     = errors.New("invalid role")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong = errors.New("password must be at most 72 bytes long")
)

const (
	MinPasswordLength = 8
	// bcrypt input limit
	MaxPasswordBytes = 72
)

// Email is stored lower-cased so lookups are case-insensitive.
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s || addr.Name != "" {
		return Email{}, ErrInvalidEmail
	}
	at := strings.LastIndexByte(s, '@')
	if at <= 0 || !strings.Contains(s[at+1:], ".") || strings.HasSuffix(s, ".") {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: strings.ToLower(s)}, nil
}

func (e Email) Value() string {
	return e.value
}

func (e Email) Domain() string {
	return e.value[strings.LastIndexByte(e.value, '@')+1:]
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len([]rune(s)) < MinPasswordLength {
		return Password{}, ErrPasswordTooWeak
	}
	if len(s) > MaxPasswordBytes {
		return Password{}, ErrPasswordTooLong
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

// NormalizePhone collapses runs of whitespace; the backend stores phones as
// free text.
func NormalizePhone(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
