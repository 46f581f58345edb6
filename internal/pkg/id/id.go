// Package id implements the 64-bit identifiers the backend issues.
//
// Identifiers cross the JSON boundary as numbers but may exceed 2^53, so they
// are never decoded through float64. Quoted decimal strings are accepted as well.
package id

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"courtbook/internal/pkg/errs"
)

var ErrInvalidID = errs.New("invalid identifier")

type ID int64

const Zero ID = 0

func Parse(s string) (ID, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Zero, errs.Mark(errs.Wrap(err, "parse id "+strconv.Quote(s)), ErrInvalidID)
	}
	if v <= 0 {
		return Zero, ErrInvalidID
	}
	return ID(v), nil
}

func MustParse(s string) ID {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (i ID) String() string {
	return strconv.FormatInt(int64(i), 10)
}

func (i ID) IsZero() bool {
	return i == Zero
}

func (i ID) MarshalJSON() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*i = Zero
		return nil
	}

	var raw string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return errs.Mark(err, ErrInvalidID)
		}
	} else {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		var n json.Number
		if err := dec.Decode(&n); err != nil {
			return errs.Mark(err, ErrInvalidID)
		}
		raw = n.String()
	}

	if raw == "" {
		*i = Zero
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "decode id"), ErrInvalidID)
	}
	*i = ID(v)
	return nil
}
