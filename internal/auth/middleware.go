package auth

import (
	"net/http"
	"strings"

	apperrors "depth-chart-backend/internal/errors"
	"depth-chart-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const callerKey = "auth_caller"

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates the bearer token and stores the caller on the context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, http.StatusUnauthorized, "Authorization header is required")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			abort(c, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			logger.WithContext(c.Request.Context()).WithError(err).Debug("Rejected bearer token")
			abort(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		SetCaller(c, claims.Caller())

		c.Next()
	}
}

// RequireCapability rejects callers whose role does not grant the capability
func RequireCapability(authz Authorizer, capability Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := GetCaller(c)
		if !ok {
			abort(c, http.StatusUnauthorized, apperrors.ErrMissingCaller.Error())
			return
		}

		if !authz.Allowed(caller, capability) {
			logger.WithContext(c.Request.Context()).
				WithFields(map[string]interface{}{"role": caller.Role, "capability": string(capability)}).
				Warn("Capability denied")
			abort(c, http.StatusForbidden, apperrors.ErrInsufficientScope.Error())
			return
		}

		c.Next()
	}
}

// SetCaller stores the caller on the gin context and on the request context for logging
func SetCaller(c *gin.Context, caller Caller) {
	c.Set(callerKey, caller)
	c.Request = c.Request.WithContext(logger.ContextWithCaller(c.Request.Context(), caller.UserID, caller.TeamID))
}

// GetCaller is a helper function to extract the authenticated caller from context
func GetCaller(c *gin.Context) (Caller, bool) {
	value, exists := c.Get(callerKey)
	if !exists {
		return Caller{}, false
	}

	caller, ok := value.(Caller)
	return caller, ok
}

func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "message": message})
}
