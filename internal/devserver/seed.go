package devserver

import (
	"context"
	"log/slog"

	"courtbook/internal/domain/auth"
	"courtbook/internal/domain/court"
	"courtbook/internal/domain/reservation"
	"courtbook/internal/domain/user"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/pkg/id"
)

type seedUser struct {
	email, password, name, phone, role string
}

var seedUsers = []seedUser{
	{"admin@courtbook.dev", "admin-pass-123", "Club Admin", "+34 600 000 001", "ADMIN"},
	{"owner@courtbook.dev", "owner-pass-123", "Norte Owner", "+34 600 000 002", "CLUB_OWNER"},
	{"player@courtbook.dev", "player-pass-123", "Demo Player", "", "USER"},
}

// Seed fills an empty store with demo users, two clubs and their courts,
// plus one court that belongs to no club.
func Seed(ctx context.Context, authUC AuthUseCase, catalog CatalogUseCase, logger *slog.Logger) error {
	var owner id.ID
	for _, su := range seedUsers {
		reg, err := auth.NewRegistration(su.email, su.password, su.name, su.phone, su.role)
		if err != nil {
			return errs.Wrap(err, "seed user "+su.email)
		}
		u, err := authUC.Register(ctx, reg)
		if err != nil {
			return errs.Wrap(err, "seed user "+su.email)
		}
		if u.Role == user.RoleClubOwner && owner.IsZero() {
			owner = u.ID
		}
	}

	clubs := []court.Club{
		{
			Name:        "Club Norte",
			Address:     "Av. del Norte 120",
			Phone:       "+34 910 000 100",
			OpeningTime: reservation.MustTimeOfDay("08:00"),
			ClosingTime: reservation.MustTimeOfDay("22:00"),
			AdminID:     owner,
		},
		{
			Name:        "Padel Sur",
			Address:     "Calle Sur 7",
			OpeningTime: reservation.MustTimeOfDay("09:00"),
			ClosingTime: reservation.MustTimeOfDay("23:00"),
			AdminID:     owner,
		},
	}
	courtsByClub := [][]court.Court{
		{
			{Name: "Pista 1", Type: court.TypeIndoor, PricePerHour: reservation.NewMoney(2400), IsActive: true},
			{Name: "Pista 2", Type: court.TypeOutdoor, PricePerHour: reservation.NewMoney(1800), IsActive: true},
			{Name: "Pista 3", Type: court.TypeOutdoor, PricePerHour: reservation.NewMoney(1800), IsActive: false},
		},
		{
			{Name: "Central", Type: court.TypeIndoor, PricePerHour: reservation.NewMoney(3000), IsActive: true},
			{Name: "Terraza", Type: court.TypeOutdoor, PricePerHour: reservation.NewMoney(2050), IsActive: true},
		},
	}

	for i, c := range clubs {
		club, err := catalog.CreateClub(ctx, c)
		if err != nil {
			return errs.Wrap(err, "seed club "+c.Name)
		}
		for _, ct := range courtsByClub[i] {
			ct.ClubID = club.ID
			if _, err := catalog.CreateCourt(ctx, ct); err != nil {
				return errs.Wrap(err, "seed court "+ct.Name)
			}
		}
	}

	orphan := court.Court{Name: "Pista Libre", Type: court.TypeOutdoor, PricePerHour: reservation.NewMoney(1500), IsActive: true}
	if _, err := catalog.CreateCourt(ctx, orphan); err != nil {
		return errs.Wrap(err, "seed court "+orphan.Name)
	}

	logger.InfoContext(ctx, "seed data loaded",
		slog.Int("users", len(seedUsers)),
		slog.Int("clubs", len(clubs)))
	return nil
}
