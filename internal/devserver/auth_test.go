//go:build unit

package devserver_test

import (
	"context"
	"testing"
	"time"

	"courtbook/internal/devserver"
	"courtbook/internal/domain/auth"
	"courtbook/internal/domain/user"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("ログインでトークンと有効期限を返す", func(t *testing.T) {
		f := newFixture(t)
		creds, err := auth.NewCredentials("player@courtbook.dev", "player-pass-123")
		require.NoError(t, err)

		res, err := f.auth.Login(ctx, creds)
		require.NoError(t, err)
		assert.NotEmpty(t, res.Token)
		assert.Equal(t, int64(86400), res.ExpiresIn)
		assert.Equal(t, user.RoleUser, res.User.Role)

		userID, role, err := f.auth.ValidateToken(res.Token)
		require.NoError(t, err)
		assert.Equal(t, res.User.ID, userID)
		assert.Equal(t, user.RoleUser, role)
	})

	t.Run("パスワード違いと未登録メールは同じエラー", func(t *testing.T) {
		f := newFixture(t)
		for _, c := range [][2]string{
			{"player@courtbook.dev", "wrong-password"},
			{"nobody@courtbook.dev", "player-pass-123"},
		} {
			creds, err := auth.NewCredentials(c[0], c[1])
			require.NoError(t, err)
			_, err = f.auth.Login(ctx, creds)
			assert.ErrorIs(t, err, devserver.ErrInvalidCredentials)
		}
	})

	t.Run("登録済みメールは拒否", func(t *testing.T) {
		f := newFixture(t)
		reg, err := auth.NewRegistration("Player@Courtbook.dev", "another-pass", "Dup", "", "")
		require.NoError(t, err)
		_, err = f.auth.Register(ctx, reg)
		assert.ErrorIs(t, err, devserver.ErrEmailTaken)
	})

	t.Run("不正なトークンは検証エラー", func(t *testing.T) {
		f := newFixture(t)
		_, _, err := f.auth.ValidateToken("not-a-jwt")
		assert.True(t, errs.Is(err, devserver.ErrTokenValidation))
		assert.False(t, f.auth.IsValid("not-a-jwt"))
	})

	t.Run("期限切れトークンは無効", func(t *testing.T) {
		f := newFixture(t)
		expired, err := jwt.NewService("test-secret", -time.Hour).GenerateToken(3, "player@courtbook.dev", user.RoleUser)
		require.NoError(t, err)
		assert.False(t, f.auth.IsValid(expired))
	})

	t.Run("存在しないユーザーのトークンは無効", func(t *testing.T) {
		f := newFixture(t)
		orphan, err := jwt.NewService("test-secret", time.Hour).GenerateToken(404, "ghost@courtbook.dev", user.RoleUser)
		require.NoError(t, err)
		_, _, err = f.auth.ValidateToken(orphan)
		assert.True(t, errs.Is(err, devserver.ErrTokenValidation))
	})
}
