package password

import (
	"courtbook/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmpty    = errs.New("password is empty")
	ErrMismatch = errs.New("password does not match")
)

// bcrypt ignores input beyond this many bytes.
const maxInputBytes = 72

func Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmpty
	}
	if len(plain) > maxInputBytes {
		return "", errs.Wrap(bcrypt.ErrPasswordTooLong, "hash password")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", errs.Wrap(err, "hash password")
	}
	return string(hashed), nil
}

// Verify returns ErrMismatch for a wrong password and a wrapped error when
// the stored hash itself is unusable.
func Verify(hashed, plain string) error {
	if hashed == "" || plain == "" {
		return ErrEmpty
	}
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errs.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return errs.Wrap(err, "verify password")
	}
}
