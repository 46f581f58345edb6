package devserver

import (
	"context"
	"errors"

	"courtbook/internal/domain/auth"
	"courtbook/internal/domain/user"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/pkg/id"
	"courtbook/internal/pkg/jwt"
	"courtbook/internal/pkg/password"
)

const TokenType = "Bearer"

type LoginResult struct {
	Token     string
	ExpiresIn int64
	User      user.User
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (id.ID, user.Role, error)
}

type AuthUseCase interface {
	TokenValidator
	Login(ctx context.Context, credentials auth.Credentials) (*LoginResult, error)
	Register(ctx context.Context, registration auth.Registration) (*user.User, error)
	IsValid(tokenString string) bool
	GetCurrentUser(ctx context.Context, userID id.ID) (*user.User, error)
}

type authUseCaseImpl struct {
	store      *Store
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthUseCase(store *Store, jwtService *jwt.Service, clk clock.Clock) AuthUseCase {
	return &authUseCaseImpl{
		store:      store,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authUseCaseImpl) Login(_ context.Context, credentials auth.Credentials) (*LoginResult, error) {
	u, hash, err := a.store.FindAccountByEmail(credentials.Email().Value())
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := password.Verify(hash, credentials.Password()); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(u.ID, u.Email, u.Role)
	if err != nil {
		return nil, errs.Wrap(err, "generate token")
	}

	return &LoginResult{
		Token:     token,
		ExpiresIn: int64(a.jwtService.TokenDuration().Seconds()),
		User:      u,
	}, nil
}

func (a *authUseCaseImpl) Register(_ context.Context, registration auth.Registration) (*user.User, error) {
	hash, err := password.Hash(registration.Password().Value())
	if err != nil {
		return nil, errs.Wrap(err, "hash password")
	}

	now := clock.NewDateTime(a.clock.Now())
	u := user.NewUser(id.Zero, registration.Email(), registration.Name(), registration.Role())
	u.Phone = registration.Phone()
	u.CreatedAt = now
	u.UpdatedAt = now

	created, err := a.store.InsertUser(*u, hash)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (a *authUseCaseImpl) GetCurrentUser(_ context.Context, userID id.ID) (*user.User, error) {
	u, err := a.store.FindUser(userID)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (a *authUseCaseImpl) IsValid(tokenString string) bool {
	_, _, err := a.ValidateToken(tokenString)
	return err == nil
}

// ValidateToken also rejects tokens of users that no longer exist.
func (a *authUseCaseImpl) ValidateToken(tokenString string) (id.ID, user.Role, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return id.Zero, "", errs.Mark(err, ErrTokenValidation)
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return id.Zero, "", errs.Mark(err, ErrTokenValidation)
	}

	if _, err := a.store.FindUser(claims.UserID); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return id.Zero, "", errs.Mark(err, ErrTokenValidation)
		}
		return id.Zero, "", err
	}

	return claims.UserID, role, nil
}
