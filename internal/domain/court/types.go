package court

import (
	"errors"
	"strings"
)

var ErrInvalidCourtType = errors.New("invalid court type")

type Type string

const (
	TypeOutdoor Type = "OUTDOOR"
	TypeIndoor  Type = "INDOOR"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeOutdoor, TypeIndoor:
		return true
	default:
		return false
	}
}

func NewType(s string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", ErrInvalidCourtType
	}
	return t, nil
}
