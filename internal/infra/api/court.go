package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"courtbook/internal/domain/court"
	"courtbook/internal/domain/reservation"
	"courtbook/internal/pkg/id"
)

type CourtFilter struct {
	ClubID id.ID
	Type   court.Type
	Limit  int
	Date   reservation.Date
}

func (f CourtFilter) values() url.Values {
	q := url.Values{}
	setID(q, "clubId", f.ClubID)
	setString(q, "type", f.Type.String())
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	setString(q, "date", f.Date.String())
	return q
}

type CourtRequest struct {
	ClubID       id.ID             `json:"clubId"`
	Name         string            `json:"name"`
	Type         court.Type        `json:"type"`
	PricePerHour reservation.Money `json:"pricePerHour"`
	IsActive     bool              `json:"isActive"`
}

type CourtAPI struct {
	client Requester
}

func NewCourtAPI(client Requester) *CourtAPI {
	return &CourtAPI{client: client}
}

func (a *CourtAPI) List(ctx context.Context, f CourtFilter) ([]court.Court, error) {
	var out []court.Court
	if err := a.client.Do(ctx, http.MethodGet, "/courts", f.values(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *CourtAPI) Get(ctx context.Context, courtID id.ID) (*court.Court, error) {
	var out court.Court
	if err := a.client.Do(ctx, http.MethodGet, idPath("/courts", courtID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Available returns the open start times for one court and date, in server order.
func (a *CourtAPI) Available(ctx context.Context, courtID id.ID, date reservation.Date) (reservation.SlotSet, error) {
	var raw []string
	q := url.Values{"date": {date.String()}}
	if err := a.client.Do(ctx, http.MethodGet, idPath("/courts", courtID, "available"), q, nil, &raw); err != nil {
		return reservation.SlotSet{}, err
	}
	return reservation.NewSlotSet(raw)
}

func (a *CourtAPI) Create(ctx context.Context, req CourtRequest) (*court.Court, error) {
	var out court.Court
	if err := a.client.Do(ctx, http.MethodPost, "/courts", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *CourtAPI) Update(ctx context.Context, courtID id.ID, req CourtRequest) (*court.Court, error) {
	var out court.Court
	if err := a.client.Do(ctx, http.MethodPut, idPath("/courts", courtID), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *CourtAPI) Delete(ctx context.Context, courtID id.ID) error {
	return a.client.Do(ctx, http.MethodDelete, idPath("/courts", courtID), nil, nil, nil)
}
