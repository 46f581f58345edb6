package request

import (
	"courtbook/internal/domain/court"
	"courtbook/internal/domain/reservation"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/pkg/id"

	"github.com/jinzhu/copier"
)

type CourtRequest struct {
	ClubID       id.ID             `json:"clubId"`
	Name         string            `json:"name" binding:"required,max=80"`
	Type         string            `json:"type" binding:"required"`
	PricePerHour reservation.Money `json:"pricePerHour"`
	Active       *bool             `json:"isActive"`
}

// ToDomain treats a missing isActive as true.
func (r *CourtRequest) ToDomain() (court.Court, error) {
	t, err := court.NewType(r.Type)
	if err != nil {
		return court.Court{}, err
	}
	if r.PricePerHour.Cents() < 0 {
		return court.Court{}, reservation.ErrInvalidAmount
	}

	var c court.Court
	if err := copier.CopyWithOption(&c, r, copier.Option{IgnoreEmpty: true}); err != nil {
		return court.Court{}, errs.Wrap(err, "copy court request")
	}
	c.Type = t
	c.IsActive = r.Active == nil || *r.Active
	return c, nil
}
