package booking

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"courtbook/internal/domain/reservation"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/pkg/id"
)

const msgCancelFailed = "could not cancel reservation"

// ReservationList holds the user's reservations. Changes are applied only
// after the server confirms them.
type ReservationList struct {
	api    ReservationAPI
	logger *slog.Logger

	items  []reservation.Reservation
	loaded bool
	err    error
}

func NewReservationList(api ReservationAPI, logger *slog.Logger) *ReservationList {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReservationList{api: api, logger: logger}
}

func (l *ReservationList) Load(ctx context.Context) error {
	items, err := l.api.Mine(ctx)
	if err != nil {
		l.err = err
		return err
	}
	l.items = slices.Clone(items)
	l.loaded = true
	l.err = nil
	return nil
}

func (l *ReservationList) Cancel(ctx context.Context, reservationID id.ID) error {
	i := l.index(reservationID)
	if i < 0 {
		return errs.Wrap(ErrReservationNotFound, "reservation "+reservationID.String())
	}
	if l.items[i].IsCancelled() {
		return reservation.ErrReservationCancelled
	}

	if err := l.api.Cancel(ctx, reservationID); err != nil {
		l.err = errs.WithMessage(err, errs.Message(err, msgCancelFailed))
		l.logger.WarnContext(ctx, "cancel failed",
			slog.String("reservation_id", reservationID.String()),
			slog.Any("error", err))
		return l.err
	}

	l.items[i] = l.items[i].Cancelled()
	l.err = nil
	return nil
}

// Append adds a reservation the server has already created.
func (l *ReservationList) Append(r reservation.Reservation) {
	if l.index(r.ID) >= 0 {
		return
	}
	l.items = append(l.items, r)
}

func (l *ReservationList) Find(reservationID id.ID) (reservation.Reservation, bool) {
	i := l.index(reservationID)
	if i < 0 {
		return reservation.Reservation{}, false
	}
	return l.items[i], true
}

func (l *ReservationList) index(reservationID id.ID) int {
	return slices.IndexFunc(l.items, func(r reservation.Reservation) bool {
		return r.ID == reservationID
	})
}

func (l *ReservationList) Items() []reservation.Reservation {
	return slices.Clone(l.items)
}

func (l *ReservationList) Loaded() bool { return l.loaded }
func (l *ReservationList) Err() error   { return l.err }

func (l *ReservationList) Upcoming(now time.Time) []reservation.Reservation {
	return l.filter(func(r *reservation.Reservation) bool { return r.IsUpcoming(now) })
}

func (l *ReservationList) Past(now time.Time) []reservation.Reservation {
	return l.filter(func(r *reservation.Reservation) bool { return r.IsPast(now) })
}

func (l *ReservationList) Cancelled() []reservation.Reservation {
	return l.filter(func(r *reservation.Reservation) bool { return r.IsCancelled() })
}

// filter returns matches newest first.
func (l *ReservationList) filter(keep func(*reservation.Reservation) bool) []reservation.Reservation {
	out := make([]reservation.Reservation, 0, len(l.items))
	for i := range l.items {
		if keep(&l.items[i]) {
			out = append(out, l.items[i])
		}
	}
	slices.SortStableFunc(out, func(a, b reservation.Reservation) int {
		return b.StartTime.Compare(a.StartTime.Time)
	})
	return out
}
