//go:build unit

package errs_test

import (
	"errors"
	"net/http"
	"testing"

	"courtbook/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSentinel = errs.New("sentinel")

func TestMark(t *testing.T) {
	cause := errs.New("boom")
	marked := errs.Mark(cause, errSentinel)

	assert.True(t, errs.Is(marked, errSentinel))
	assert.Equal(t, "boom", marked.Error())
	assert.Equal(t, errSentinel, errs.Mark(nil, errSentinel))
}

func TestWrap(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "ignored"))
	assert.NoError(t, errs.Wrapf(nil, "ignored %d", 1))

	wrapped := errs.Wrapf(errSentinel, "load %s", "user")
	assert.True(t, errors.Is(wrapped, errSentinel))
	assert.Equal(t, "load user: sentinel", wrapped.Error())
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 3))

	lines := errs.ExtractStackLines(errs.Wrap(errSentinel, "outer"), 2)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "outer")
}

func TestKinds(t *testing.T) {
	cause := errs.New("connection refused")
	cases := []struct {
		name   string
		err    error
		kind   errs.Kind
		status int
		msg    string
	}{
		{name: "validation", err: errs.Validation("email", "invalid email"), kind: errs.KindValidation, msg: "invalid email"},
		{name: "auth", err: errs.Auth(http.StatusUnauthorized, "invalid credentials", nil), kind: errs.KindAuth, status: 401, msg: "invalid credentials"},
		{name: "transport", err: errs.Transport("cannot connect to server", cause), kind: errs.KindTransport, msg: "cannot connect to server"},
		{name: "server", err: errs.Server(http.StatusConflict, "", nil), kind: errs.KindServer, status: 409, msg: "fallback"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := errs.Wrap(tc.err, "context")
			assert.True(t, errs.IsKind(wrapped, tc.kind))
			assert.Equal(t, tc.status, errs.StatusOf(wrapped))
			assert.Equal(t, tc.msg, errs.Message(wrapped, "fallback"))
		})
	}

	assert.True(t, errors.Is(errs.Transport("x", cause), cause))
	assert.Equal(t, errs.Kind(""), errs.KindOf(cause))
	assert.Equal(t, "fallback", errs.Message(cause, "fallback"))
	assert.Equal(t, "", errs.Message(nil, "fallback"))
}

func TestWithMessage(t *testing.T) {
	base := errs.Server(http.StatusBadRequest, "bad", nil)
	replaced := errs.WithMessage(base, "invalid input")

	assert.Equal(t, errs.KindServer, errs.KindOf(replaced))
	assert.Equal(t, http.StatusBadRequest, errs.StatusOf(replaced))
	assert.Equal(t, "invalid input", errs.Message(replaced, ""))
	assert.Equal(t, "email: invalid email", errs.Validation("email", "invalid email").Error())
}
