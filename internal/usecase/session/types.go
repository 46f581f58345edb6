package session

import (
	"context"

	"courtbook/internal/domain/user"
	"courtbook/internal/infra/api"
	"courtbook/internal/pkg/errs"
)

var (
	ErrEmptyToken  = errs.New("server returned an empty token")
	ErrMissingUser = errs.New("server returned no user")
)

type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*api.LoginResponse, error)
	Register(ctx context.Context, req api.RegisterRequest) (*user.User, error)
	Validate(ctx context.Context, token string) (bool, error)
}

type State string

const (
	StateUninitialized  State = "uninitialized"
	StateInitializing   State = "initializing"
	StateAuthenticating State = "authenticating"
	StateAuthenticated  State = "authenticated"
	StateAnonymous      State = "anonymous"
)

func (s State) String() string {
	return string(s)
}

// Snapshot is a copy of the session the view layer can read without locking.
type Snapshot struct {
	User            *user.User
	Token           string
	IsAuthenticated bool
	IsLoading       bool
	Error           string
	State           State
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterInput struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	Name            string `json:"name" validate:"required"`
	Phone           string `json:"phone"`
	Role            string `json:"role" validate:"omitempty,oneof=USER ADMIN CLUB_OWNER"`
}
