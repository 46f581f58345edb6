package request

import (
	"courtbook/internal/domain/court"
	"courtbook/internal/domain/reservation"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/pkg/id"

	"github.com/jinzhu/copier"
)

var ErrInvalidOpeningHours = errs.New("opening time must be before closing time")

type ClubRequest struct {
	Name        string                `json:"name" binding:"required,max=120"`
	Address     string                `json:"address" binding:"required"`
	Phone       string                `json:"phone"`
	OpeningTime reservation.TimeOfDay `json:"openingTime"`
	ClosingTime reservation.TimeOfDay `json:"closingTime"`
	AdminID     id.ID                 `json:"adminId"`
}

func (r *ClubRequest) ToDomain() (court.Club, error) {
	if r.OpeningTime.IsZero() || r.ClosingTime.IsZero() || !r.OpeningTime.Before(r.ClosingTime) {
		return court.Club{}, ErrInvalidOpeningHours
	}
	var c court.Club
	if err := copier.Copy(&c, r); err != nil {
		return court.Club{}, errs.Wrap(err, "copy club request")
	}
	return c, nil
}
