//go:build unit || e2e

package builder

import (
	"courtbook/internal/domain/court"
	"courtbook/internal/domain/reservation"
	"courtbook/internal/pkg/id"
)

type CourtBuilder struct {
	ID           id.ID
	ClubID       id.ID
	Name         string
	ClubName     string
	Type         court.Type
	PricePerHour int64
	IsActive     bool
}

func NewCourtBuilder() *CourtBuilder {
	return &CourtBuilder{
		ID:           3,
		ClubID:       1,
		Name:         "Pista Central",
		ClubName:     "Club Norte",
		Type:         court.TypeOutdoor,
		PricePerHour: 2000,
		IsActive:     true,
	}
}

func (b *CourtBuilder) Build() *court.Court {
	return &court.Court{
		ID:           b.ID,
		ClubID:       b.ClubID,
		Name:         b.Name,
		ClubName:     b.ClubName,
		Type:         b.Type,
		PricePerHour: reservation.NewMoney(b.PricePerHour),
		IsActive:     b.IsActive,
	}
}

func (b *CourtBuilder) WithID(cid id.ID) *CourtBuilder {
	b.ID = cid
	return b
}

func (b *CourtBuilder) WithoutClub() *CourtBuilder {
	b.ClubID = id.Zero
	b.ClubName = ""
	return b
}

func (b *CourtBuilder) WithPriceCents(cents int64) *CourtBuilder {
	b.PricePerHour = cents
	return b
}

type ClubBuilder struct {
	ID      id.ID
	Name    string
	Address string
	Opening string
	Closing string
	AdminID id.ID
}

func NewClubBuilder() *ClubBuilder {
	return &ClubBuilder{
		ID:      1,
		Name:    "Club Norte",
		Address: "Av. Siempre Viva 742",
		Opening: "08:00",
		Closing: "22:00",
		AdminID: 2,
	}
}

func (b *ClubBuilder) Build() *court.Club {
	return &court.Club{
		ID:          b.ID,
		Name:        b.Name,
		Address:     b.Address,
		OpeningTime: reservation.MustTimeOfDay(b.Opening),
		ClosingTime: reservation.MustTimeOfDay(b.Closing),
		AdminID:     b.AdminID,
	}
}

func (b *ClubBuilder) WithHours(opening, closing string) *ClubBuilder {
	b.Opening = opening
	b.Closing = closing
	return b
}
