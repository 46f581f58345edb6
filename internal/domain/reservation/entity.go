package reservation

import (
	"time"

	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/pkg/id"
)

var (
	ErrInvalidTimeSlot      = errs.New("end time must be after start time")
	ErrReservationCancelled = errs.New("reservation is already cancelled")
	ErrMissingClub          = errs.New("reservation requires a club")
	ErrMissingUser          = errs.New("reservation requires a user")
)

type Reservation struct {
	ID            id.ID          `json:"id,omitempty"`
	UserID        id.ID          `json:"userId"`
	CourtID       id.ID          `json:"courtId"`
	ClubID        id.ID          `json:"clubId"`
	StartTime     clock.DateTime `json:"startTime"`
	EndTime       clock.DateTime `json:"endTime"`
	Status        Status         `json:"status"`
	PaymentStatus PaymentStatus  `json:"paymentStatus"`
	CreatedAt     clock.DateTime `json:"createdAt"`
}

func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// IsUpcoming reports whether a live reservation has not started yet.
func (r *Reservation) IsUpcoming(now time.Time) bool {
	return !r.IsCancelled() && r.StartTime.After(now)
}

func (r *Reservation) IsPast(now time.Time) bool {
	return !r.IsCancelled() && !r.StartTime.After(now)
}

func (r *Reservation) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime.Time)
}

func (r *Reservation) Overlaps(start, end time.Time) bool {
	return r.StartTime.Before(end) && start.Before(r.EndTime.Time)
}

// Cancelled returns a copy that differs only in Status.
func (r Reservation) Cancelled() Reservation {
	r.Status = StatusCancelled
	return r
}
