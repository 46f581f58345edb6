//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"courtbook/internal/domain/user"
	"courtbook/internal/pkg/config"
	"courtbook/internal/pkg/id"
	"courtbook/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID id.ID, email string, role user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(userID, email, role)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken signs a token whose exp is an hour in the past.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID id.ID, email string, role user.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, -time.Hour).GenerateToken(userID, email, role)
	require.NoError(t, err)
	return token
}
