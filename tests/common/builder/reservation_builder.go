//go:build unit || e2e

package builder

import (
	"time"

	"courtbook/internal/domain/reservation"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/id"
)

type ReservationBuilder struct {
	ID            id.ID
	UserID        id.ID
	CourtID       id.ID
	ClubID        id.ID
	Start         time.Time
	End           time.Time
	Status        reservation.Status
	PaymentStatus reservation.PaymentStatus
	CreatedAt     time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	start := time.Date(2025, 3, 2, 9, 0, 0, 0, time.Local)
	return &ReservationBuilder{
		ID:            100,
		UserID:        7,
		CourtID:       3,
		ClubID:        1,
		Start:         start,
		End:           start.Add(time.Hour),
		Status:        reservation.StatusPending,
		PaymentStatus: reservation.PaymentPending,
		CreatedAt:     time.Date(2025, 3, 1, 8, 0, 0, 0, time.Local),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) Build() *reservation.Reservation {
	return &reservation.Reservation{
		ID:            b.ID,
		UserID:        b.UserID,
		CourtID:       b.CourtID,
		ClubID:        b.ClubID,
		StartTime:     clock.NewDateTime(b.Start),
		EndTime:       clock.NewDateTime(b.End),
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		CreatedAt:     clock.NewDateTime(b.CreatedAt),
	}
}

// Fluent builder methods
func (b *ReservationBuilder) WithID(rid id.ID) *ReservationBuilder {
	b.ID = rid
	return b
}

func (b *ReservationBuilder) WithUserID(uid id.ID) *ReservationBuilder {
	b.UserID = uid
	return b
}

func (b *ReservationBuilder) At(start time.Time, d time.Duration) *ReservationBuilder {
	b.Start = start
	b.End = start.Add(d)
	return b
}

func (b *ReservationBuilder) WithStatus(s reservation.Status) *ReservationBuilder {
	b.Status = s
	return b
}

func (b *ReservationBuilder) WithPaymentStatus(s reservation.PaymentStatus) *ReservationBuilder {
	b.PaymentStatus = s
	return b
}
