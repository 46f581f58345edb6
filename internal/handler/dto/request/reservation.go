package request

import (
	"courtbook/internal/devserver"
	"courtbook/internal/domain/reservation"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/id"
)

// ReservationRequest is the reservation record the client sends. Id, status,
// payment status and createdAt are accepted but owned by the server.
type ReservationRequest struct {
	ID            id.ID                     `json:"id"`
	UserID        id.ID                     `json:"userId"`
	CourtID       id.ID                     `json:"courtId" binding:"required"`
	ClubID        id.ID                     `json:"clubId"`
	StartTime     clock.DateTime            `json:"startTime"`
	EndTime       clock.DateTime            `json:"endTime"`
	Status        reservation.Status        `json:"status"`
	PaymentStatus reservation.PaymentStatus `json:"paymentStatus"`
	CreatedAt     clock.DateTime            `json:"createdAt"`
}

func (r *ReservationRequest) ToParams() devserver.CreateReservationParams {
	return devserver.CreateReservationParams{
		UserID:    r.UserID,
		CourtID:   r.CourtID,
		ClubID:    r.ClubID,
		StartTime: r.StartTime.Time,
		EndTime:   r.EndTime.Time,
	}
}
