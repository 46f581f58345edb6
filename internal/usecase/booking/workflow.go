// Package booking drives one reservation attempt and the user's reservation list.
package booking

import (
	"context"
	"log/slog"

	"courtbook/internal/domain/court"
	"courtbook/internal/domain/reservation"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/pkg/id"

	"github.com/google/uuid"
)

const msgCreateFailed = "could not create reservation"

// Workflow is the state of one booking attempt for one court. The available
// slot list from the last fetch is the only source of selectable start times.
// A Workflow is not safe for concurrent use.
type Workflow struct {
	courts       CourtAPI
	reservations ReservationAPI
	session      SessionReader
	clock        clock.Clock
	factory      *reservation.Factory
	pricing      reservation.PriceCalculator
	opts         Options
	logger       *slog.Logger

	phase        Phase
	court        *court.Court
	date         reservation.Date
	slots        reservation.SlotSet
	availability Availability
	slotsErr     error
	start        reservation.TimeOfDay
	end          reservation.TimeOfDay
	err          error
	outcome      *Outcome
	idemKey      string
}

func NewWorkflow(courts CourtAPI, reservations ReservationAPI, session SessionReader, clk clock.Clock, opts Options, logger *slog.Logger) *Workflow {
	if logger == nil {
		logger = slog.Default()
	}
	return &Workflow{
		courts:       courts,
		reservations: reservations,
		session:      session,
		clock:        clk,
		factory:      reservation.NewFactory(clk),
		pricing:      reservation.NewHourlyPriceCalculator(),
		opts:         opts,
		logger:       logger,
		phase:        PhaseIdle,
		availability: AvailabilityNotLoaded,
	}
}

// LoadCourt fetches the court and the slots for the preset date (tomorrow by
// default). A court without a club stops the workflow in PhaseFailed.
// A failed slot fetch does not; it leaves AvailabilityUnknown.
func (w *Workflow) LoadCourt(ctx context.Context, courtID id.ID, preset Preset) error {
	w.phase = PhaseLoadingCourt
	w.err = nil
	w.outcome = nil

	c, err := w.courts.Get(ctx, courtID)
	if err != nil {
		w.fail(err)
		return err
	}
	if !c.HasClub() {
		w.court = c
		w.fail(ErrCourtWithoutClub)
		return ErrCourtWithoutClub
	}
	w.court = c

	date := preset.Date
	if date.IsZero() {
		date = reservation.DateOf(clock.Today(w.clock)).AddDays(1)
	}
	if err := w.SetDate(ctx, date); err != nil {
		return err
	}
	if !preset.Start.IsZero() && w.slots.Contains(preset.Start) {
		return w.SelectStart(preset.Start)
	}
	return nil
}

func (w *Workflow) fail(err error) {
	w.phase = PhaseFailed
	w.err = err
}

// SetDate always refetches. A selected start time missing from the new list
// is cleared together with its end time.
func (w *Workflow) SetDate(ctx context.Context, date reservation.Date) error {
	if w.court == nil || !w.court.HasClub() {
		return ErrNoCourt
	}
	if date.IsZero() {
		return errs.Validation("date", "is required")
	}

	w.phase = PhaseLoadingSlots
	w.date = date
	w.outcome = nil
	w.err = nil
	w.idemKey = ""

	slots, err := w.courts.Available(ctx, w.court.ID, date)
	if err != nil {
		w.slots = reservation.SlotSet{}
		w.availability = AvailabilityUnknown
		w.slotsErr = err
		w.logger.WarnContext(ctx, "could not load availability",
			slog.String("court_id", w.court.ID.String()),
			slog.String("date", date.String()),
			slog.Any("error", err))
	} else {
		w.slots = slots
		w.slotsErr = nil
		w.availability = AvailabilityOpen
		if slots.IsEmpty() {
			w.availability = AvailabilityNone
		}
	}

	if !w.start.IsZero() && !w.slots.Contains(w.start) {
		w.start = reservation.TimeOfDay{}
		w.end = reservation.TimeOfDay{}
	}
	w.phase = PhaseReady
	return err
}

// SelectStart picks a start time from the slot list and derives a default end
// time, capped at the latest bookable time. The end stays editable.
func (w *Workflow) SelectStart(t reservation.TimeOfDay) error {
	if w.phase != PhaseReady {
		return ErrNotReady
	}
	if !w.slots.Contains(t) {
		return errs.Validation("startTime", t.String()+" is not available on "+w.date.String())
	}
	w.start = t
	w.idemKey = ""

	end := t.Add(w.opts.DefaultDuration)
	if end.After(w.opts.LatestEnd) {
		end = w.opts.LatestEnd
	}
	if end.After(t) {
		w.end = end
	} else {
		w.end = reservation.TimeOfDay{}
	}
	return nil
}

func (w *Workflow) SelectEnd(t reservation.TimeOfDay) error {
	if w.phase != PhaseReady {
		return ErrNotReady
	}
	if w.start.IsZero() {
		return errs.Validation("startTime", "select a start time first")
	}
	if err := w.checkEnd(t); err != nil {
		return err
	}
	w.end = t
	w.idemKey = ""
	return nil
}

func (w *Workflow) checkEnd(t reservation.TimeOfDay) error {
	if t.IsZero() || !t.After(w.start) {
		return errs.Validation("endTime", "must be after the start time")
	}
	if t.After(w.opts.LatestEnd) {
		return errs.Validation("endTime", "must not be after "+w.opts.LatestEnd.String())
	}
	return nil
}

// Submit checks every precondition locally and only then contacts the server.
// On failure the workflow returns to PhaseReady so the user can resubmit.
func (w *Workflow) Submit(ctx context.Context) (*Outcome, error) {
	if w.phase != PhaseReady {
		return nil, ErrNotReady
	}
	if err := w.checkSubmission(); err != nil {
		return nil, err
	}
	u, ok := w.session.CurrentUser()
	if !ok || u == nil {
		return nil, errs.Validation("session", "log in to make a reservation")
	}

	r, err := w.factory.NewPending(reservation.Request{
		UserID:  u.ID,
		CourtID: w.court.ID,
		ClubID:  w.court.ClubID,
		Date:    w.date,
		Start:   w.start,
		End:     w.end,
	})
	if err != nil {
		return nil, requestError(err)
	}

	if w.idemKey == "" {
		w.idemKey = uuid.NewString()
	}
	w.phase = PhaseSubmitting
	w.err = nil

	created, err := w.reservations.Create(ctx, r, w.idemKey)
	if err != nil {
		msg := msgCreateFailed
		if errs.IsKind(err, errs.KindServer) {
			msg = errs.Message(err, msgCreateFailed)
		}
		w.phase = PhaseReady
		w.err = errs.WithMessage(err, msg)
		return nil, w.err
	}
	if created == nil || created.ID.IsZero() {
		created = r
	}

	w.phase = PhaseSucceeded
	w.idemKey = ""
	w.outcome = &Outcome{Reservation: created, Created: true}
	w.logger.InfoContext(ctx, "reservation created",
		slog.String("reservation_id", created.ID.String()),
		slog.String("court_id", w.court.ID.String()))
	return w.outcome, nil
}

// requestError points a rejected reservation request at the field the user
// has to fix.
func requestError(err error) error {
	switch {
	case errs.Is(err, reservation.ErrMissingUser):
		return errs.Validation("session", "log in to make a reservation")
	case errs.Is(err, reservation.ErrMissingClub):
		return errs.Validation("court", ErrCourtWithoutClub.Error())
	case errs.Is(err, reservation.ErrInvalidTimeSlot):
		return errs.Validation("endTime", err.Error())
	default:
		return errs.Wrap(err, "build reservation")
	}
}

func (w *Workflow) checkSubmission() error {
	if w.date.IsZero() {
		return errs.Validation("date", "is required")
	}
	if w.start.IsZero() {
		return errs.Validation("startTime", "is required")
	}
	if !w.slots.Contains(w.start) {
		return errs.Validation("startTime", w.start.String()+" is not available on "+w.date.String())
	}
	return w.checkEnd(w.end)
}

func (w *Workflow) Phase() Phase                     { return w.phase }
func (w *Workflow) Court() *court.Court              { return w.court }
func (w *Workflow) Date() reservation.Date           { return w.date }
func (w *Workflow) Slots() reservation.SlotSet       { return w.slots }
func (w *Workflow) Availability() Availability       { return w.availability }
func (w *Workflow) SlotsErr() error                  { return w.slotsErr }
func (w *Workflow) Start() reservation.TimeOfDay     { return w.start }
func (w *Workflow) End() reservation.TimeOfDay       { return w.end }
func (w *Workflow) Err() error                       { return w.err }
func (w *Workflow) Outcome() *Outcome                { return w.outcome }
func (w *Workflow) LatestEnd() reservation.TimeOfDay { return w.opts.LatestEnd }

// TotalPrice is zero until both ends of the slot are chosen.
func (w *Workflow) TotalPrice() reservation.Money {
	if w.court == nil {
		return reservation.NewMoney(0)
	}
	return w.pricing.Price(w.court.PricePerHour, w.start, w.end)
}
