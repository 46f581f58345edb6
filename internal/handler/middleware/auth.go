package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"courtbook/internal/devserver"
	"courtbook/internal/domain/user"
	"courtbook/internal/handler/httperr"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/pkg/id"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator devserver.TokenValidator
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

var roleHierarchy = map[user.Role]int{
	user.RoleUser:      1,
	user.RoleClubOwner: 2,
	user.RoleAdmin:     3,
}

var (
	errTokenRequired = errs.New("access token required")
	errTokenInvalid  = errs.New("invalid or expired token")
	errNoIdentity    = errs.New("role check without authentication")
	errRoleTooLow    = errs.New("insufficient permissions")
)

func NewAuthMiddleware(tokenValidator devserver.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errTokenRequired, "Access token required", nil)
			return
		}

		userID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, errTokenInvalid, "Invalid or expired token", nil)
			return
		}

		setIdentity(c, userID, role)
		c.Next()
	}
}

// OptionalAuth authenticates the request if a token is present, but does not abort on failure.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		userID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		setIdentity(c, userID, role)
		c.Next()
	}
}

// Public guards catalog reads. In strict mode they need a token like any other route.
func (m *AuthMiddleware) Public(strict bool) gin.HandlerFunc {
	if strict {
		return m.RequireAuth()
	}
	return m.OptionalAuth()
}

func setIdentity(c *gin.Context, userID id.ID, role user.Role) {
	c.Set(ctxUserIDKey, userID)
	c.Set(ctxUserRoleKey, role)
	c.Set("jwt_claims", map[string]any{
		"user_id": userID.String(),
		"role":    string(role),
	})
}

func hasMinimumRole(userRole, minRole user.Role) bool {
	userLevel, userExists := roleHierarchy[userRole]
	minLevel, minExists := roleHierarchy[minRole]
	return userExists && minExists && userLevel >= minLevel
}

// RequireRoleAtLeast must run after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errNoIdentity, "Internal server error", nil)
			return
		}

		if !hasMinimumRole(role, minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, errRoleTooLow, "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

func GetUserID(c *gin.Context) (id.ID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return id.Zero, false
	}

	uid, ok := userID.(id.ID)
	return uid, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}

// GetActor combines the identity set by RequireAuth.
func GetActor(c *gin.Context) (devserver.Actor, bool) {
	userID, ok := GetUserID(c)
	if !ok {
		return devserver.Actor{}, false
	}
	role, _ := GetUserRole(c)
	return devserver.Actor{UserID: userID, Role: role}, true
}
