package reservation

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"courtbook/internal/pkg/errs"
)

var (
	ErrInvalidTimeOfDay = errs.New("invalid time of day")
	ErrInvalidDate      = errs.New("invalid date")
	ErrInvalidAmount    = errs.New("invalid amount")
)

// TimeOfDay is a wall-clock time in minutes since midnight.
type TimeOfDay struct {
	minutes int
	valid   bool
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, errs.Wrapf(ErrInvalidTimeOfDay, "%02d:%02d", hour, minute)
	}
	return TimeOfDay{minutes: hour*60 + minute, valid: true}, nil
}

// ParseTimeOfDay accepts HH:MM and HH:MM:SS. Seconds are dropped.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return TimeOfDay{}, errs.Wrap(ErrInvalidTimeOfDay, strconv.Quote(s))
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeOfDay{}, errs.Wrap(ErrInvalidTimeOfDay, strconv.Quote(s))
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeOfDay{}, errs.Wrap(ErrInvalidTimeOfDay, strconv.Quote(s))
	}
	if len(parts) == 3 {
		if sec, err := strconv.Atoi(parts[2]); err != nil || sec < 0 || sec > 59 {
			return TimeOfDay{}, errs.Wrap(ErrInvalidTimeOfDay, strconv.Quote(s))
		}
	}
	return NewTimeOfDay(h, m)
}

func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute(), valid: true}
}

func (t TimeOfDay) IsZero() bool            { return !t.valid }
func (t TimeOfDay) Hour() int               { return t.minutes / 60 }
func (t TimeOfDay) Minute() int             { return t.minutes % 60 }
func (t TimeOfDay) Before(o TimeOfDay) bool { return t.minutes < o.minutes }
func (t TimeOfDay) After(o TimeOfDay) bool  { return t.minutes > o.minutes }
func (t TimeOfDay) Equal(o TimeOfDay) bool  { return t.valid == o.valid && t.minutes == o.minutes }

// Add saturates at 23:59 so a shifted time never wraps into the next day.
func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	m := t.minutes + int(d/time.Minute)
	if m < 0 {
		m = 0
	}
	if m > 24*60-1 {
		m = 24*60 - 1
	}
	return TimeOfDay{minutes: m, valid: true}
}

func (t TimeOfDay) Sub(o TimeOfDay) time.Duration {
	return time.Duration(t.minutes-o.minutes) * time.Minute
}

func (t TimeOfDay) On(d Date) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, time.Local)
}

func (t TimeOfDay) String() string {
	if !t.valid {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errs.Mark(err, ErrInvalidTimeOfDay)
	}
	if s == "" {
		*t = TimeOfDay{}
		return nil
	}
	v, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Date is a calendar day, formatted YYYY-MM-DD on the wire.
type Date struct {
	t time.Time
}

const DateLayout = "2006-01-02"

func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return Date{}, errs.Wrap(ErrInvalidDate, strconv.Quote(s))
	}
	return Date{t: t}, nil
}

func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.Local)}
}

func (d Date) IsZero() bool          { return d.t.IsZero() }
func (d Date) Year() int             { return d.t.Year() }
func (d Date) Month() time.Month     { return d.t.Month() }
func (d Date) Day() int              { return d.t.Day() }
func (d Date) AddDays(n int) Date    { return Date{t: d.t.AddDate(0, 0, n)} }
func (d Date) Before(o Date) bool    { return d.t.Before(o.t) }
func (d Date) Equal(o Date) bool     { return d.t.Equal(o.t) }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }
func (d Date) Time() time.Time       { return d.t }

func (d Date) String() string {
	if d.t.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// SlotSet is the server-declared list of open start times for one court and date.
// It keeps the server order, drops duplicates and rejects unparsable entries.
type SlotSet struct {
	slots []TimeOfDay
}

func NewSlotSet(raw []string) (SlotSet, error) {
	slots := make([]TimeOfDay, 0, len(raw))
	for _, s := range raw {
		t, err := ParseTimeOfDay(s)
		if err != nil {
			return SlotSet{}, err
		}
		if slices.ContainsFunc(slots, t.Equal) {
			continue
		}
		slots = append(slots, t)
	}
	return SlotSet{slots: slots}, nil
}

func (s SlotSet) Len() int           { return len(s.slots) }
func (s SlotSet) IsEmpty() bool      { return len(s.slots) == 0 }
func (s SlotSet) Slots() []TimeOfDay { return slices.Clone(s.slots) }

func (s SlotSet) Contains(t TimeOfDay) bool {
	return slices.ContainsFunc(s.slots, t.Equal)
}

func (s SlotSet) Strings() []string {
	out := make([]string, len(s.slots))
	for i, t := range s.slots {
		out[i] = t.String()
	}
	return out
}

// Money holds an amount in cents. The backend sends decimals as JSON numbers.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Units() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// ForDuration prorates an hourly amount, rounding to the nearest cent.
func (m Money) ForDuration(d time.Duration) Money {
	return Money{cents: int64(math.Round(float64(m.cents) * d.Hours()))}
}

func (m Money) String() string {
	sign := ""
	c := m.cents
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if raw == "" || raw == "null" {
		*m = Money{}
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return errs.Wrap(ErrInvalidAmount, strconv.Quote(raw))
	}
	*m = Money{cents: int64(math.Round(f * 100))}
	return nil
}
