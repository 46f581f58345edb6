package cli

import (
	"context"

	"courtbook/internal/domain/court"
	"courtbook/internal/domain/user"
	"courtbook/internal/infra/api"
	"courtbook/internal/pkg/id"
	"courtbook/internal/usecase/session"
)

type SessionService interface {
	Initialize(ctx context.Context)
	Login(ctx context.Context, email, password string) (*user.User, error)
	Logout()
	Register(ctx context.Context, in session.RegisterInput) (*user.User, error)
	Snapshot() session.Snapshot
}

type ClubCatalog interface {
	List(ctx context.Context) ([]court.Club, error)
	Get(ctx context.Context, clubID id.ID) (*court.Club, error)
}

type CourtCatalog interface {
	List(ctx context.Context, f api.CourtFilter) ([]court.Court, error)
}
