package devserver

import (
	"context"
	"time"

	"courtbook/internal/domain/court"
	"courtbook/internal/domain/reservation"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/id"
)

// SlotStep is the spacing of generated start times.
const SlotStep = 30 * time.Minute

var (
	defaultOpening = reservation.MustTimeOfDay("08:00")
	defaultClosing = reservation.MustTimeOfDay("22:00")
)

type CatalogUseCase interface {
	ListClubs(ctx context.Context) []court.Club
	GetClub(ctx context.Context, clubID id.ID) (*court.Club, error)
	GetClubWithAdmin(ctx context.Context, clubID id.ID) (*court.Club, error)
	CreateClub(ctx context.Context, c court.Club) (*court.Club, error)
	UpdateClub(ctx context.Context, c court.Club) (*court.Club, error)
	DeleteClub(ctx context.Context, clubID id.ID) error
	ClubNameExists(ctx context.Context, name string) bool
	ClubExists(ctx context.Context, clubID id.ID) bool
	IsClubOpen(ctx context.Context, clubID id.ID, at time.Time) (bool, error)

	ListCourts(ctx context.Context, q CourtQuery) []court.Court
	GetCourt(ctx context.Context, courtID id.ID) (*court.Court, error)
	CreateCourt(ctx context.Context, c court.Court) (*court.Court, error)
	UpdateCourt(ctx context.Context, c court.Court) (*court.Court, error)
	DeleteCourt(ctx context.Context, courtID id.ID) error
	AvailableSlots(ctx context.Context, courtID id.ID, date reservation.Date) ([]string, error)
}

type catalogUseCaseImpl struct {
	store *Store
	clock clock.Clock
}

func NewCatalogUseCase(store *Store, clk clock.Clock) CatalogUseCase {
	return &catalogUseCaseImpl{store: store, clock: clk}
}

func (u *catalogUseCaseImpl) ListClubs(_ context.Context) []court.Club {
	return u.store.ListClubs()
}

func (u *catalogUseCaseImpl) GetClub(_ context.Context, clubID id.ID) (*court.Club, error) {
	c, err := u.store.FindClub(clubID)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (u *catalogUseCaseImpl) GetClubWithAdmin(ctx context.Context, clubID id.ID) (*court.Club, error) {
	c, err := u.GetClub(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if admin, err := u.store.FindUser(c.AdminID); err == nil {
		c.Admin = &court.ClubAdmin{
			ID:          admin.ID,
			Email:       admin.Email,
			FirstName:   admin.Name,
			PhoneNumber: admin.Phone,
		}
	}
	return c, nil
}

func (u *catalogUseCaseImpl) CreateClub(_ context.Context, c court.Club) (*court.Club, error) {
	created, err := u.store.InsertClub(c)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (u *catalogUseCaseImpl) UpdateClub(_ context.Context, c court.Club) (*court.Club, error) {
	updated, err := u.store.UpdateClub(c)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (u *catalogUseCaseImpl) DeleteClub(_ context.Context, clubID id.ID) error {
	return u.store.DeleteClub(clubID)
}

func (u *catalogUseCaseImpl) ClubNameExists(_ context.Context, name string) bool {
	return u.store.ClubNameExists(name)
}

func (u *catalogUseCaseImpl) ClubExists(_ context.Context, clubID id.ID) bool {
	_, err := u.store.FindClub(clubID)
	return err == nil
}

func (u *catalogUseCaseImpl) IsClubOpen(ctx context.Context, clubID id.ID, at time.Time) (bool, error) {
	c, err := u.GetClub(ctx, clubID)
	if err != nil {
		return false, err
	}
	return c.IsOpenAt(reservation.TimeOfDayOf(at)), nil
}

func (u *catalogUseCaseImpl) ListCourts(_ context.Context, q CourtQuery) []court.Court {
	return u.store.ListCourts(q)
}

func (u *catalogUseCaseImpl) GetCourt(_ context.Context, courtID id.ID) (*court.Court, error) {
	c, err := u.store.FindCourt(courtID)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (u *catalogUseCaseImpl) CreateCourt(_ context.Context, c court.Court) (*court.Court, error) {
	created, err := u.store.InsertCourt(c)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (u *catalogUseCaseImpl) UpdateCourt(_ context.Context, c court.Court) (*court.Court, error) {
	updated, err := u.store.UpdateCourt(c)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (u *catalogUseCaseImpl) DeleteCourt(_ context.Context, courtID id.ID) error {
	return u.store.DeleteCourt(courtID)
}

// AvailableSlots lists start times within the club's opening hours, every
// SlotStep, whose step does not overlap a live reservation and has not started yet.
// Inactive courts and courts without a club have no slots.
func (u *catalogUseCaseImpl) AvailableSlots(_ context.Context, courtID id.ID, date reservation.Date) ([]string, error) {
	c, err := u.store.FindCourt(courtID)
	if err != nil {
		return nil, err
	}
	slots := []string{}
	if !c.IsActive || !c.HasClub() {
		return slots, nil
	}

	opening, closing := defaultOpening, defaultClosing
	if club, err := u.store.FindClub(c.ClubID); err == nil && !club.OpeningTime.IsZero() && !club.ClosingTime.IsZero() {
		opening, closing = club.OpeningTime, club.ClosingTime
	}

	now := u.clock.Now()
	for t := opening; t.Before(closing); t = t.Add(SlotStep) {
		start := t.On(date)
		end := start.Add(SlotStep)
		if start.Before(now) {
			continue
		}
		if !u.store.HasConflict(courtID, start, end) {
			slots = append(slots, t.String())
		}
		if t.Add(SlotStep).Equal(t) {
			break
		}
	}
	return slots, nil
}
