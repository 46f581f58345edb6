package cli

import (
	"context"
	"fmt"
	"strings"

	"courtbook/internal/domain/court"
	"courtbook/internal/domain/reservation"
	"courtbook/internal/infra/api"
	"courtbook/internal/infra/httpclient"
	"courtbook/internal/pkg/id"
	"courtbook/internal/usecase/booking"
)

func (a *App) listClubs(ctx context.Context, args []string) error {
	fs := a.flags("clubs")
	var clubID id.ID
	fs.Var(&idFlag{&clubID}, "id", "show a single club")
	if err := a.parse(fs, args); err != nil {
		return err
	}

	if !clubID.IsZero() {
		ctx = httpclient.WithLocation(ctx, "/clubs/"+clubID.String())
		c, err := a.clubs.Get(ctx, clubID)
		if err != nil {
			return err
		}
		a.printClub(c)
		return nil
	}

	ctx = httpclient.WithLocation(ctx, "/clubs")
	clubs, err := a.clubs.List(ctx)
	if err != nil {
		return err
	}
	if len(clubs) == 0 {
		fmt.Fprintln(a.out, "No clubs found")
		return nil
	}
	tw := newTable(a.out, "ID", "NAME", "ADDRESS", "HOURS", "PHONE")
	for _, c := range clubs {
		row(tw, c.ID, c.Name, orDash(c.Address), hours(c.OpeningTime, c.ClosingTime), orDash(c.Phone))
	}
	return tw.Flush()
}

func (a *App) printClub(c *court.Club) {
	fmt.Fprintf(a.out, "%s (#%s)\n", c.Name, c.ID)
	fmt.Fprintf(a.out, "address: %s\n", orDash(c.Address))
	fmt.Fprintf(a.out, "phone:   %s\n", orDash(c.Phone))
	fmt.Fprintf(a.out, "hours:   %s\n", hours(c.OpeningTime, c.ClosingTime))
	if c.Admin != nil {
		fmt.Fprintf(a.out, "admin:   %s %s <%s>\n", c.Admin.FirstName, c.Admin.LastName, c.Admin.Email)
	}
}

func (a *App) listCourts(ctx context.Context, args []string) error {
	fs := a.flags("courts")
	var f api.CourtFilter
	fs.Var(&idFlag{&f.ClubID}, "club", "only courts of this club")
	courtType := fs.String("type", "", "INDOOR or OUTDOOR")
	fs.IntVar(&f.Limit, "limit", 0, "maximum number of courts")
	if err := a.parse(fs, args); err != nil {
		return err
	}
	if *courtType != "" {
		t, err := court.NewType(*courtType)
		if err != nil {
			return err
		}
		f.Type = t
	}

	ctx = httpclient.WithLocation(ctx, "/courts")
	courts, err := a.courts.List(ctx, f)
	if err != nil {
		return err
	}
	if len(courts) == 0 {
		fmt.Fprintln(a.out, "No courts found")
		return nil
	}
	tw := newTable(a.out, "ID", "NAME", "CLUB", "TYPE", "PRICE/H", "ACTIVE")
	for _, c := range courts {
		row(tw, c.ID, c.Name, orDash(c.ClubName), c.Type, c.PricePerHour, yesNo(c.IsActive))
	}
	return tw.Flush()
}

func (a *App) slots(ctx context.Context, args []string) error {
	fs := a.flags("slots")
	var courtID id.ID
	var date reservation.Date
	fs.Var(&idFlag{&courtID}, "court", "court id")
	fs.Var(&dateFlag{&date}, "date", "YYYY-MM-DD, defaults to tomorrow")
	if err := a.parse(fs, args); err != nil {
		return err
	}
	if err := a.requireFlag(fs, "court", !courtID.IsZero()); err != nil {
		return err
	}

	ctx = httpclient.WithLocation(ctx, courtLocation(courtID, date))
	if err := a.workflow.LoadCourt(ctx, courtID, booking.Preset{Date: date}); err != nil {
		if a.workflow.Phase() == booking.PhaseFailed {
			return err
		}
	}
	a.printSlots()
	if a.workflow.Availability() == booking.AvailabilityUnknown {
		return a.workflow.SlotsErr()
	}
	return nil
}

func (a *App) printSlots() {
	w := a.workflow
	c := w.Court()
	fmt.Fprintf(a.out, "%s at %s on %s (%s per hour)\n", c.Name, orDash(c.ClubName), w.Date(), c.PricePerHour)
	switch w.Availability() {
	case booking.AvailabilityNone:
		fmt.Fprintln(a.out, "No free slots on this date")
	case booking.AvailabilityUnknown:
		fmt.Fprintln(a.out, "Availability could not be loaded")
	default:
		fmt.Fprintf(a.out, "Free start times: %s\n", strings.Join(w.Slots().Strings(), " "))
	}
}

func courtLocation(courtID id.ID, date reservation.Date) string {
	loc := "/courts/" + courtID.String() + "/book"
	if !date.IsZero() {
		loc += "?date=" + date.String()
	}
	return loc
}

type idFlag struct{ v *id.ID }

func (f *idFlag) String() string {
	if f.v == nil || f.v.IsZero() {
		return ""
	}
	return f.v.String()
}

func (f *idFlag) Set(s string) error {
	v, err := id.Parse(s)
	if err != nil {
		return err
	}
	*f.v = v
	return nil
}

type dateFlag struct{ v *reservation.Date }

func (f *dateFlag) String() string {
	if f.v == nil {
		return ""
	}
	return f.v.String()
}

func (f *dateFlag) Set(s string) error {
	d, err := reservation.ParseDate(s)
	if err != nil {
		return err
	}
	*f.v = d
	return nil
}

type timeFlag struct{ v *reservation.TimeOfDay }

func (f *timeFlag) String() string {
	if f.v == nil {
		return ""
	}
	return f.v.String()
}

func (f *timeFlag) Set(s string) error {
	t, err := reservation.ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*f.v = t
	return nil
}
