package api

import (
	"context"
	"net/http"
	"net/url"

	"courtbook/internal/domain/reservation"
	"courtbook/internal/infra/httpclient"
	"courtbook/internal/pkg/id"
)

type ReservationFilter struct {
	UserID    id.ID
	CourtID   id.ID
	ClubID    id.ID
	Status    reservation.Status
	StartDate reservation.Date
	EndDate   reservation.Date
}

func (f ReservationFilter) values() url.Values {
	q := url.Values{}
	setID(q, "userId", f.UserID)
	setID(q, "courtId", f.CourtID)
	setID(q, "clubId", f.ClubID)
	setString(q, "status", f.Status.String())
	setString(q, "startDate", f.StartDate.String())
	setString(q, "endDate", f.EndDate.String())
	return q
}

type ReservationAPI struct {
	client Requester
}

func NewReservationAPI(client Requester) *ReservationAPI {
	return &ReservationAPI{client: client}
}

func (a *ReservationAPI) List(ctx context.Context, f ReservationFilter) ([]reservation.Reservation, error) {
	var out []reservation.Reservation
	if err := a.client.Do(ctx, http.MethodGet, "/reservations", f.values(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *ReservationAPI) Mine(ctx context.Context) ([]reservation.Reservation, error) {
	var out []reservation.Reservation
	if err := a.client.Do(ctx, http.MethodGet, "/reservations/my-reservations", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *ReservationAPI) Get(ctx context.Context, reservationID id.ID) (*reservation.Reservation, error) {
	var out reservation.Reservation
	if err := a.client.Do(ctx, http.MethodGet, idPath("/reservations", reservationID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create sends the reservation once. idempotencyKey lets the server drop a resubmission.
func (a *ReservationAPI) Create(ctx context.Context, r *reservation.Reservation, idempotencyKey string) (*reservation.Reservation, error) {
	var out reservation.Reservation
	var opts []httpclient.RequestOption
	if idempotencyKey != "" {
		opts = append(opts, httpclient.WithIdempotencyKey(idempotencyKey))
	}
	if err := a.client.Do(ctx, http.MethodPost, "/reservations", nil, r, &out, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *ReservationAPI) Update(ctx context.Context, reservationID id.ID, r *reservation.Reservation) (*reservation.Reservation, error) {
	var out reservation.Reservation
	if err := a.client.Do(ctx, http.MethodPut, idPath("/reservations", reservationID), nil, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *ReservationAPI) Cancel(ctx context.Context, reservationID id.ID) error {
	return a.client.Do(ctx, http.MethodDelete, idPath("/reservations", reservationID, "cancel"), nil, nil, nil)
}
