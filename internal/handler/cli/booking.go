package cli

import (
	"context"
	"fmt"

	"courtbook/internal/domain/reservation"
	"courtbook/internal/infra/httpclient"
	"courtbook/internal/pkg/id"
	"courtbook/internal/usecase/booking"
)

func (a *App) book(ctx context.Context, args []string) error {
	fs := a.flags("book")
	var (
		courtID    id.ID
		date       reservation.Date
		start, end reservation.TimeOfDay
	)
	fs.Var(&idFlag{&courtID}, "court", "court id")
	fs.Var(&dateFlag{&date}, "date", "YYYY-MM-DD, defaults to tomorrow")
	fs.Var(&timeFlag{&start}, "start", "start time HH:MM, one of the free slots")
	fs.Var(&timeFlag{&end}, "end", "end time HH:MM, defaults to start plus the usual booking length")
	if err := a.parse(fs, args); err != nil {
		return err
	}
	if err := a.requireFlag(fs, "court", !courtID.IsZero()); err != nil {
		return err
	}
	if err := a.requireSession(); err != nil {
		return err
	}

	ctx = httpclient.WithLocation(ctx, courtLocation(courtID, date))
	w := a.workflow
	if err := w.LoadCourt(ctx, courtID, booking.Preset{Date: date}); err != nil && w.Phase() == booking.PhaseFailed {
		return err
	}
	if start.IsZero() {
		a.printSlots()
		fmt.Fprintln(a.errOut, "Pick a start time with -start")
		return errUsage
	}
	if err := w.SelectStart(start); err != nil {
		a.printSlots()
		return err
	}
	if !end.IsZero() {
		if err := w.SelectEnd(end); err != nil {
			return err
		}
	}

	out, err := w.Submit(ctx)
	if err != nil {
		return err
	}
	a.reservations.Append(*out.Reservation)

	r := out.Reservation
	fmt.Fprintf(a.out, "Reservation #%s requested: %s, %s %s-%s, total %s (status %s)\n",
		r.ID, w.Court().Name, w.Date(), w.Start(), w.End(), w.TotalPrice(), r.Status)
	return nil
}

func (a *App) listReservations(ctx context.Context, args []string) error {
	fs := a.flags("reservations")
	view := fs.String("view", "upcoming", "upcoming, past, cancelled or all")
	if err := a.parse(fs, args); err != nil {
		return err
	}
	if err := a.requireSession(); err != nil {
		return err
	}

	ctx = httpclient.WithLocation(ctx, "/reservations")
	if err := a.reservations.Load(ctx); err != nil {
		return err
	}

	now := a.clock.Now()
	var items []reservation.Reservation
	switch *view {
	case "upcoming":
		items = a.reservations.Upcoming(now)
	case "past":
		items = a.reservations.Past(now)
	case "cancelled":
		items = a.reservations.Cancelled()
	case "all":
		items = a.reservations.Items()
	default:
		fmt.Fprintf(a.errOut, "unknown view %q\n", *view)
		fs.Usage()
		return errUsage
	}

	if len(items) == 0 {
		fmt.Fprintf(a.out, "No %s reservations\n", *view)
		return nil
	}
	tw := newTable(a.out, "ID", "COURT", "CLUB", "DATE", "TIME", "DURATION", "STATUS", "PAYMENT")
	for _, r := range items {
		row(tw, r.ID, r.CourtID, r.ClubID,
			r.StartTime.Format(reservation.DateLayout),
			reservation.TimeOfDayOf(r.StartTime.Time).String()+"-"+reservation.TimeOfDayOf(r.EndTime.Time).String(),
			r.Duration(), r.Status, r.PaymentStatus)
	}
	return tw.Flush()
}

func (a *App) cancel(ctx context.Context, args []string) error {
	fs := a.flags("cancel")
	var reservationID id.ID
	fs.Var(&idFlag{&reservationID}, "id", "reservation id")
	if err := a.parse(fs, args); err != nil {
		return err
	}
	if err := a.requireFlag(fs, "id", !reservationID.IsZero()); err != nil {
		return err
	}
	if err := a.requireSession(); err != nil {
		return err
	}

	ctx = httpclient.WithLocation(ctx, "/reservations")
	if err := a.reservations.Load(ctx); err != nil {
		return err
	}
	if err := a.reservations.Cancel(ctx, reservationID); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Reservation #%s cancelled\n", reservationID)
	return nil
}
