package reservation

import (
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/id"
)

// Request is what the booking flow knows when it submits.
type Request struct {
	UserID  id.ID
	CourtID id.ID
	ClubID  id.ID
	Date    Date
	Start   TimeOfDay
	End     TimeOfDay
}

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clock clock.Clock) *Factory {
	return &Factory{Clock: clock}
}

// NewPending builds a reservation in PENDING/PENDING state stamped with the current time.
// Confirmation and payment transitions belong to the server.
func (f *Factory) NewPending(req Request) (*Reservation, error) {
	if req.UserID.IsZero() {
		return nil, ErrMissingUser
	}
	if req.ClubID.IsZero() {
		return nil, ErrMissingClub
	}
	if req.Start.IsZero() || req.End.IsZero() || !req.End.After(req.Start) {
		return nil, ErrInvalidTimeSlot
	}

	return &Reservation{
		UserID:        req.UserID,
		CourtID:       req.CourtID,
		ClubID:        req.ClubID,
		StartTime:     clock.NewDateTime(req.Start.On(req.Date)),
		EndTime:       clock.NewDateTime(req.End.On(req.Date)),
		Status:        StatusPending,
		PaymentStatus: PaymentPending,
		CreatedAt:     clock.NewDateTime(f.Clock.Now()),
	}, nil
}
