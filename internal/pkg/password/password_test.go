//go:build unit

package password_test

import (
	"strings"
	"testing"

	"courtbook/internal/pkg/errs"
	"courtbook/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hashed, err := password.Hash("player-pass-123")
	require.NoError(t, err)
	assert.NotEqual(t, "player-pass-123", hashed)

	assert.NoError(t, password.Verify(hashed, "player-pass-123"))
	assert.True(t, errs.Is(password.Verify(hashed, "wrong-pass"), password.ErrMismatch))
}

func TestRejectsUnusableInput(t *testing.T) {
	_, err := password.Hash("")
	assert.True(t, errs.Is(err, password.ErrEmpty))

	_, err = password.Hash(strings.Repeat("x", 73))
	assert.Error(t, err)

	assert.True(t, errs.Is(password.Verify("", "secret"), password.ErrEmpty))

	err = password.Verify("not-a-bcrypt-hash", "secret")
	require.Error(t, err)
	assert.False(t, errs.Is(err, password.ErrMismatch))
}
