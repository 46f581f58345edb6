package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"courtbook/internal/domain/user"
	"courtbook/internal/pkg/errs"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string     `json:"token"`
	TokenType string     `json:"tokenType,omitempty"`
	ExpiresIn int64      `json:"expiresIn,omitempty"`
	User      *user.User `json:"user"`
}

// RegisterRequest mirrors role into userRole, the field name the user service binds.
type RegisterRequest struct {
	Email    string    `json:"email"`
	Password string    `json:"password"`
	Role     user.Role `json:"role"`
	UserRole user.Role `json:"userRole"`
	Name     string    `json:"name"`
	Phone    string    `json:"phone,omitempty"`
}

type AuthAPI struct {
	client Requester
}

func NewAuthAPI(client Requester) *AuthAPI {
	return &AuthAPI{client: client}
}

func (a *AuthAPI) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var out LoginResponse
	err := a.client.Do(ctx, http.MethodPost, "/auth/login", nil, LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AuthAPI) Register(ctx context.Context, req RegisterRequest) (*user.User, error) {
	if req.UserRole == "" {
		req.UserRole = req.Role
	}
	var out struct {
		user.User
		UserRole user.Role `json:"userRole"`
	}
	if err := a.client.Do(ctx, http.MethodPost, "/auth/register", nil, req, &out); err != nil {
		return nil, err
	}
	u := out.User
	if u.Role == "" {
		u.Role = out.UserRole
	}
	return &u, nil
}

// Validate asks the server whether token is still good. The endpoint answers
// either a bare boolean or {"isValid": bool}.
func (a *AuthAPI) Validate(ctx context.Context, token string) (bool, error) {
	var raw json.RawMessage
	if err := a.client.Do(ctx, http.MethodPost, "/auth/validate", nil, map[string]string{"token": token}, &raw); err != nil {
		return false, err
	}
	return parseValidity(raw)
}

func parseValidity(raw json.RawMessage) (bool, error) {
	raw = bytes.TrimSpace(raw)
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b, nil
	}
	var obj struct {
		IsValid *bool `json:"isValid"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && obj.IsValid != nil {
		return *obj.IsValid, nil
	}
	return false, errs.Server(http.StatusOK, "unexpected validation response", nil)
}
