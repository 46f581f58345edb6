package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"courtbook/internal/domain/court"
	"courtbook/internal/domain/reservation"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/id"
)

type ClubRequest struct {
	Name        string                `json:"name"`
	Address     string                `json:"address"`
	Phone       string                `json:"phone,omitempty"`
	OpeningTime reservation.TimeOfDay `json:"openingTime"`
	ClosingTime reservation.TimeOfDay `json:"closingTime"`
	AdminID     id.ID                 `json:"adminId"`
}

type ClubAPI struct {
	client Requester
}

func NewClubAPI(client Requester) *ClubAPI {
	return &ClubAPI{client: client}
}

func (a *ClubAPI) List(ctx context.Context) ([]court.Club, error) {
	var out []court.Club
	if err := a.client.Do(ctx, http.MethodGet, "/clubs", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *ClubAPI) Get(ctx context.Context, clubID id.ID) (*court.Club, error) {
	var out court.Club
	if err := a.client.Do(ctx, http.MethodGet, idPath("/clubs", clubID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *ClubAPI) GetWithUser(ctx context.Context, clubID id.ID) (*court.Club, error) {
	var out court.Club
	if err := a.client.Do(ctx, http.MethodGet, idPath("/clubs", clubID, "with-user"), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *ClubAPI) Create(ctx context.Context, req ClubRequest) (*court.Club, error) {
	var out court.Club
	if err := a.client.Do(ctx, http.MethodPost, "/clubs", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *ClubAPI) Update(ctx context.Context, clubID id.ID, req ClubRequest) (*court.Club, error) {
	var out court.Club
	if err := a.client.Do(ctx, http.MethodPut, idPath("/clubs", clubID), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *ClubAPI) Delete(ctx context.Context, clubID id.ID) error {
	return a.client.Do(ctx, http.MethodDelete, idPath("/clubs", clubID), nil, nil, nil)
}

func (a *ClubAPI) ExistsByName(ctx context.Context, name string) (bool, error) {
	var out bool
	q := url.Values{"name": {name}}
	if err := a.client.Do(ctx, http.MethodGet, "/clubs/exists", q, nil, &out); err != nil {
		return false, err
	}
	return out, nil
}

// ExistsByID treats any failure as "does not exist".
func (a *ClubAPI) ExistsByID(ctx context.Context, clubID id.ID) bool {
	var out bool
	if err := a.client.Do(ctx, http.MethodGet, idPath("/clubs", clubID, "exists"), nil, nil, &out); err != nil {
		return false
	}
	return out
}

func (a *ClubAPI) IsOpenAt(ctx context.Context, clubID id.ID, at time.Time) (bool, error) {
	var out bool
	q := url.Values{"dateTime": {clock.NewDateTime(at).String()}}
	if err := a.client.Do(ctx, http.MethodGet, idPath("/clubs", clubID, "is-open"), q, nil, &out); err != nil {
		return false, err
	}
	return out, nil
}
