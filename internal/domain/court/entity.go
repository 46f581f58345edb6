package court

import (
	"time"

	"courtbook/internal/domain/reservation"
	"courtbook/internal/pkg/id"
)

type Court struct {
	ID           id.ID             `json:"id"`
	ClubID       id.ID             `json:"clubId"`
	Name         string            `json:"name"`
	ClubName     string            `json:"clubName,omitempty"`
	Type         Type              `json:"type"`
	PricePerHour reservation.Money `json:"pricePerHour"`
	IsActive     bool              `json:"isActive"`
}

// HasClub reports whether the court can be booked at all.
func (c *Court) HasClub() bool {
	return !c.ClubID.IsZero()
}

func (c *Court) PriceFor(d time.Duration) reservation.Money {
	return c.PricePerHour.ForDuration(d)
}

type Club struct {
	ID          id.ID                 `json:"id"`
	Name        string                `json:"name"`
	Address     string                `json:"address"`
	Phone       string                `json:"phone,omitempty"`
	OpeningTime reservation.TimeOfDay `json:"openingTime"`
	ClosingTime reservation.TimeOfDay `json:"closingTime"`
	AdminID     id.ID                 `json:"adminId"`
	Admin       *ClubAdmin            `json:"admin,omitempty"`
}

// ClubAdmin is only present on /clubs/:id/with-user responses.
type ClubAdmin struct {
	ID          id.ID  `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// IsOpenAt compares wall-clock times; clubs never close after midnight.
func (c *Club) IsOpenAt(t reservation.TimeOfDay) bool {
	if c.OpeningTime.IsZero() || c.ClosingTime.IsZero() {
		return false
	}
	return !t.Before(c.OpeningTime) && t.Before(c.ClosingTime)
}

func (c *Club) OpeningHours() string {
	return c.OpeningTime.String() + " - " + c.ClosingTime.String()
}
