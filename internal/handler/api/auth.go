package api

import (
	"net/http"

	"courtbook/internal/devserver"
	reqdto "courtbook/internal/handler/dto/request"
	resdto "courtbook/internal/handler/dto/response"
	"courtbook/internal/handler/httperr"
	"courtbook/internal/handler/middleware"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase devserver.AuthUseCase
}

func NewAuthHandler(authUseCase devserver.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

// Login answers with a bearer token valid for expiresIn seconds.
//
// @Summary Login
// @Description Exchange credentials for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	credentials, err := req.ToDomain()
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.authUseCase.Login(c.Request.Context(), credentials)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary Register
// @Description Create a user account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	registration, err := req.ToDomain()
	if err != nil {
		respondError(c, err)
		return
	}

	created, err := h.authUseCase.Register(c.Request.Context(), registration)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromUser(created))
}

// Validate answers 200 with isValid=false for a bad token; it never returns 401.
//
// @Summary Validate token
// @Description Report whether a token is still valid
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.ValidateTokenRequest true "Token"
// @Success 200 {object} resdto.ValidateTokenResponse
// @Failure 400 {object} httperr.Response
// @Router /auth/validate [post]
func (h *AuthHandler) Validate(c *gin.Context) {
	var req reqdto.ValidateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ValidateTokenResponse{IsValid: h.authUseCase.IsValid(req.Token)})
}

// Logout is stateless; the client forgets the token.
//
// @Summary Logout
// @Description Tokens are stateless; the call only confirms the token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} httperr.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// @Summary Current user
// @Description Get the authenticated user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoIdentity, "User not authenticated", nil)
		return
	}

	u, err := h.authUseCase.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromUser(u))
}
