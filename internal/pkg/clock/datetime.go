package clock

import (
	"bytes"
	"encoding/json"
	"time"

	"courtbook/internal/pkg/errs"
)

// LocalLayout is the wall-clock layout the backend uses for date-times.
const LocalLayout = "2006-01-02T15:04:05"

var ErrInvalidDateTime = errs.New("invalid date-time")

// DateTime is a wall-clock timestamp without zone, interpreted in time.Local.
type DateTime struct {
	time.Time
}

func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t.Truncate(time.Second)}
}

func ParseDateTime(s string) (DateTime, error) {
	if t, err := time.ParseInLocation(LocalLayout, s, time.Local); err == nil {
		return DateTime{Time: t}, nil
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05.999999999", s, time.Local); err == nil {
		return DateTime{Time: t}, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return DateTime{Time: t.In(time.Local)}, nil
	}
	return DateTime{}, errs.Wrapf(ErrInvalidDateTime, "parse date-time %q", s)
}

func (d DateTime) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time.In(time.Local).Format(LocalLayout)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*d = DateTime{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errs.Mark(err, ErrInvalidDateTime)
	}
	if s == "" {
		*d = DateTime{}
		return nil
	}
	v, err := ParseDateTime(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}
