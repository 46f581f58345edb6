// Package credstore persists the two session entries the client keeps between runs.
package credstore

import (
	"encoding/json"

	"courtbook/internal/domain/user"
	"courtbook/internal/pkg/errs"
)

const (
	KeyAuthToken = "authToken"
	KeyUserData  = "userData"
)

var ErrCorruptUser = errs.New("stored user record is corrupt")

// Store is a synchronous key-value store. It knows nothing about expiry.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Remove(key string)
}

// Clear removes both session entries.
func Clear(s Store) {
	s.Remove(KeyAuthToken)
	s.Remove(KeyUserData)
}

func Token(s Store) (string, bool) {
	tok, ok := s.Get(KeyAuthToken)
	if !ok || tok == "" {
		return "", false
	}
	return tok, true
}

// LoadUser returns (nil, nil) when no user is stored.
func LoadUser(s Store) (*user.User, error) {
	raw, ok := s.Get(KeyUserData)
	if !ok || raw == "" {
		return nil, nil
	}
	var u user.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "decode stored user"), ErrCorruptUser)
	}
	if u.ID.IsZero() {
		return nil, ErrCorruptUser
	}
	return &u, nil
}

func SaveUser(s Store, u *user.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return errs.Wrap(err, "encode user")
	}
	s.Set(KeyUserData, string(raw))
	return nil
}
