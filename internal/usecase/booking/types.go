package booking

import (
	"context"
	"time"

	"courtbook/internal/domain/court"
	"courtbook/internal/domain/reservation"
	"courtbook/internal/domain/user"
	"courtbook/internal/pkg/config"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/pkg/id"
)

var (
	ErrCourtWithoutClub    = errs.New("court has no club; reservations are not possible")
	ErrNoCourt             = errs.New("no court loaded")
	ErrNotReady            = errs.New("booking is not ready for this action")
	ErrReservationNotFound = errs.New("reservation not found")
)

type CourtAPI interface {
	Get(ctx context.Context, courtID id.ID) (*court.Court, error)
	Available(ctx context.Context, courtID id.ID, date reservation.Date) (reservation.SlotSet, error)
}

type ReservationAPI interface {
	Create(ctx context.Context, r *reservation.Reservation, idempotencyKey string) (*reservation.Reservation, error)
	Mine(ctx context.Context) ([]reservation.Reservation, error)
	Cancel(ctx context.Context, reservationID id.ID) error
}

type SessionReader interface {
	CurrentUser() (*user.User, bool)
}

type Phase string

const (
	PhaseIdle         Phase = "idle"
	PhaseLoadingCourt Phase = "loading_court"
	PhaseLoadingSlots Phase = "loading_slots"
	PhaseReady        Phase = "ready"
	PhaseSubmitting   Phase = "submitting"
	PhaseSucceeded    Phase = "succeeded"
	PhaseFailed       Phase = "failed"
)

func (p Phase) String() string {
	return string(p)
}

// Availability separates "nothing free" from "could not find out".
type Availability string

const (
	AvailabilityNotLoaded Availability = "not_loaded"
	AvailabilityOpen      Availability = "open"
	AvailabilityNone      Availability = "none"
	AvailabilityUnknown   Availability = "unknown"
)

type Options struct {
	LatestEnd       reservation.TimeOfDay
	DefaultDuration time.Duration
}

func OptionsFromConfig(cfg config.BookingConfig) (Options, error) {
	latest, err := reservation.ParseTimeOfDay(cfg.LatestEnd)
	if err != nil {
		return Options{}, errs.Wrap(err, "BOOKING_LATEST_END")
	}
	d := cfg.DefaultDuration
	if d <= 0 {
		d = time.Hour
	}
	return Options{LatestEnd: latest, DefaultDuration: d}, nil
}

// Preset carries values the caller already knows, like a date picked on a previous screen.
type Preset struct {
	Date  reservation.Date
	Start reservation.TimeOfDay
}

// Outcome is what a successful submission hands to the next screen.
type Outcome struct {
	Reservation *reservation.Reservation
	Created     bool
}
