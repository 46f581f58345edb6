// Package session owns the client's belief about who is logged in.
//
// The manager is the only writer of the in-memory session. It keeps the
// credential store and memory in agreement after every completed Initialize,
// Login and Logout. Network calls are made without holding the lock, because
// the HTTP client may call Expire while a request is in flight.
package session

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"courtbook/internal/domain/user"
	"courtbook/internal/infra/api"
	"courtbook/internal/infra/credstore"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/pkg/jwt"
	"courtbook/internal/pkg/patch"
	"courtbook/internal/pkg/validate"
)

const (
	msgInvalidCredentials = "invalid credentials"
	msgInvalidInput       = "invalid input"
	msgCannotConnect      = "cannot connect to server"
	msgLoginFailed        = "login failed"
	msgEmailTaken         = "email already registered"
	msgRegisterFailed     = "registration failed"
	msgSessionExpired     = "session expired, please log in again"
)

type Manager struct {
	auth      AuthAPI
	store     credstore.Store
	clock     clock.Clock
	validator *validate.Validator
	logger    *slog.Logger

	mu      sync.RWMutex
	state   State
	user    *user.User
	token   string
	loading bool
	errMsg  string
}

func NewManager(auth AuthAPI, store credstore.Store, clk clock.Clock, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		auth:      auth,
		store:     store,
		clock:     clk,
		validator: validate.New(),
		logger:    logger,
		state:     StateUninitialized,
		loading:   true,
	}
}

// Initialize hydrates the session from the credential store. It runs once;
// later calls return immediately.
func (m *Manager) Initialize(ctx context.Context) {
	m.mu.Lock()
	if m.state != StateUninitialized {
		m.mu.Unlock()
		return
	}
	m.state = StateInitializing
	m.loading = true
	m.mu.Unlock()

	m.initialize(ctx)

	m.mu.Lock()
	m.loading = false
	m.mu.Unlock()
}

func (m *Manager) initialize(ctx context.Context) {
	token, hasToken := credstore.Token(m.store)
	stored, err := credstore.LoadUser(m.store)
	if err != nil {
		m.logger.WarnContext(ctx, "discarding corrupt stored session", slog.Any("error", err))
		m.settleAnonymous(true)
		return
	}
	if !hasToken || stored == nil {
		m.settleAnonymous(hasToken || stored != nil)
		return
	}

	if exp, ok := jwt.ExpiresAt(token); ok && !exp.After(m.clock.Now()) {
		m.logger.InfoContext(ctx, "stored token expired", slog.Time("expired_at", exp))
		m.settleAnonymous(true)
		return
	}

	valid, err := m.auth.Validate(ctx, token)
	switch {
	case err != nil && errs.IsKind(err, errs.KindAuth):
		// the server rejected the token outright
		m.settleAnonymous(true)
	case err != nil:
		m.logger.WarnContext(ctx, "token validation unavailable, trusting stored session", slog.Any("error", err))
		m.settleAuthenticated(token, stored)
	case !valid:
		m.settleAnonymous(true)
	default:
		m.settleAuthenticated(token, stored)
	}
}

func (m *Manager) settleAnonymous(clearStore bool) {
	if clearStore {
		credstore.Clear(m.store)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetLocked()
}

func (m *Manager) settleAuthenticated(token string, u *user.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = StateAuthenticated
	m.token = token
	m.user = u
	m.errMsg = ""
}

func (m *Manager) resetLocked() {
	m.state = StateAnonymous
	m.token = ""
	m.user = nil
}

// Login exchanges credentials for a token. The store is written before the
// in-memory transition, so a reload never sees memory ahead of disk. On failure
// the store is untouched, memory is cleared and the returned error carries a
// user-facing message.
func (m *Manager) Login(ctx context.Context, email, password string) (*user.User, error) {
	in := LoginInput{Email: strings.TrimSpace(email), Password: password}
	if err := m.validator.Struct(in); err != nil {
		m.setError(errs.Message(err, msgInvalidInput))
		return nil, err
	}

	m.mu.Lock()
	m.state = StateAuthenticating
	m.loading = true
	m.errMsg = ""
	m.mu.Unlock()

	resp, err := m.auth.Login(ctx, in.Email, in.Password)
	if err == nil {
		err = checkLoginResponse(resp)
	}
	if err != nil {
		msg := loginMessage(err)
		m.mu.Lock()
		m.resetLocked()
		m.loading = false
		m.errMsg = msg
		m.mu.Unlock()
		return nil, errs.WithMessage(err, msg)
	}

	m.store.Set(credstore.KeyAuthToken, resp.Token)
	if err := credstore.SaveUser(m.store, resp.User); err != nil {
		credstore.Clear(m.store)
		m.mu.Lock()
		m.resetLocked()
		m.loading = false
		m.errMsg = msgLoginFailed
		m.mu.Unlock()
		return nil, errs.WithMessage(err, msgLoginFailed)
	}

	m.mu.Lock()
	m.state = StateAuthenticated
	m.token = resp.Token
	m.user = resp.User
	m.loading = false
	m.errMsg = ""
	m.mu.Unlock()

	m.logger.InfoContext(ctx, "logged in", slog.String("user_id", resp.User.ID.String()))
	return resp.User, nil
}

func checkLoginResponse(resp *api.LoginResponse) error {
	if resp == nil || strings.TrimSpace(resp.Token) == "" {
		return errs.Server(http.StatusOK, msgLoginFailed, ErrEmptyToken)
	}
	if resp.User == nil || resp.User.ID.IsZero() {
		return errs.Server(http.StatusOK, msgLoginFailed, ErrMissingUser)
	}
	return nil
}

func loginMessage(err error) string {
	switch {
	case errs.IsKind(err, errs.KindTransport):
		return msgCannotConnect
	case errs.StatusOf(err) == http.StatusUnauthorized:
		return msgInvalidCredentials
	case errs.StatusOf(err) == http.StatusBadRequest:
		return msgInvalidInput
	default:
		return errs.Message(err, msgLoginFailed)
	}
}

// Logout clears the store and memory. It never fails.
func (m *Manager) Logout() {
	credstore.Clear(m.store)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetLocked()
	m.loading = false
	m.errMsg = ""
}

// Register creates the account and then tries to log in with the same
// credentials. A failed automatic login is logged and otherwise ignored: the
// account exists either way.
func (m *Manager) Register(ctx context.Context, in RegisterInput) (*user.User, error) {
	in.Email = strings.TrimSpace(in.Email)
	in.Name = strings.TrimSpace(in.Name)
	in.Role = strings.ToUpper(strings.TrimSpace(in.Role))
	if err := m.validator.Struct(in); err != nil {
		m.setError(errs.Message(err, msgInvalidInput))
		return nil, err
	}
	role := user.Role(patch.OrDefault(in.Role, user.RoleUser.String()))

	m.mu.Lock()
	m.loading = true
	m.errMsg = ""
	m.mu.Unlock()

	created, err := m.auth.Register(ctx, api.RegisterRequest{
		Email:    in.Email,
		Password: in.Password,
		Role:     role,
		Name:     in.Name,
		Phone:    strings.TrimSpace(in.Phone),
	})
	if err != nil {
		msg := registerMessage(err)
		m.mu.Lock()
		m.loading = false
		m.errMsg = msg
		m.mu.Unlock()
		return nil, errs.WithMessage(err, msg)
	}

	if _, err := m.Login(ctx, in.Email, in.Password); err != nil {
		m.logger.WarnContext(ctx, "account created but automatic login failed", slog.Any("error", err))
		m.setError("")
	}
	return created, nil
}

func registerMessage(err error) string {
	switch {
	case errs.IsKind(err, errs.KindTransport):
		return msgCannotConnect
	case errs.StatusOf(err) == http.StatusConflict:
		return msgEmailTaken
	case errs.StatusOf(err) == http.StatusBadRequest:
		return errs.Message(err, msgInvalidInput)
	default:
		return errs.Message(err, msgRegisterFailed)
	}
}

// ValidateToken probes the server. A missing stored token is reported as
// (false, nil); an error means "unknown", never "invalid".
func (m *Manager) ValidateToken(ctx context.Context) (bool, error) {
	token, ok := credstore.Token(m.store)
	if !ok {
		return false, nil
	}
	return m.auth.Validate(ctx, token)
}

// Expire is called by the HTTP client after it cleared the store on a 401.
func (m *Manager) Expire() {
	m.mu.Lock()
	defer m.mu.Unlock()
	wasAuthenticated := m.state == StateAuthenticated
	m.resetLocked()
	m.loading = false
	if wasAuthenticated {
		m.errMsg = msgSessionExpired
	}
}

func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var u *user.User
	if m.user != nil {
		cp := *m.user
		u = &cp
	}
	return Snapshot{
		User:            u,
		Token:           m.token,
		IsAuthenticated: m.state == StateAuthenticated,
		IsLoading:       m.loading,
		Error:           m.errMsg,
		State:           m.state,
	}
}

func (m *Manager) CurrentUser() (*user.User, bool) {
	snap := m.Snapshot()
	return snap.User, snap.IsAuthenticated
}

func (m *Manager) setError(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errMsg = msg
}
