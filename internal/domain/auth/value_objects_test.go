//go:build unit

package auth_test

import (
	"testing"

	"courtbook/internal/domain/auth"
	"courtbook/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCredentials(t *testing.T) {
	c, err := auth.NewCredentials(" Ana@Example.com ", "x")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", c.Email().Value())

	_, err = auth.NewCredentials("ana@example.com", "")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = auth.NewCredentials("ana", "password123")
	assert.ErrorIs(t, err, user.ErrInvalidEmail)
}

func TestNewRegistration(t *testing.T) {
	cases := []struct {
		name     string
		email    string
		password string
		userName string
		role     string
		errIs    error
		wantRole user.Role
	}{
		{name: "ロール省略時はUSER", email: "a@b.io", password: "password123", userName: "Ana", wantRole: user.RoleUser},
		{name: "CLUB_OWNER指定", email: "a@b.io", password: "password123", userName: "Ana", role: "CLUB_OWNER", wantRole: user.RoleClubOwner},
		{name: "短いパスワードNG", email: "a@b.io", password: "short", userName: "Ana", errIs: user.ErrPasswordTooWeak},
		{name: "名前なしNG", email: "a@b.io", password: "password123", userName: "  ", errIs: auth.ErrNameRequired},
		{name: "不明なロールNG", email: "a@b.io", password: "password123", userName: "Ana", role: "ROOT", errIs: user.ErrInvalidRole},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reg, err := auth.NewRegistration(tc.email, tc.password, tc.userName, "", tc.role)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantRole, reg.Role())
		})
	}
}
