package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *AuthConfig {
	return &AuthConfig{
		JWTSecret: "test-signing-key",
		Issuer:    "depth-chart-backend",
		TokenTTL:  time.Hour,
		Roles: map[string][]string{
			"head_coach": {"view_chart", "create_chart", "edit_chart"},
			"player":     {"view_chart"},
		},
	}
}

func TestAuthConfig(t *testing.T) {
	t.Run("valid config structure", func(t *testing.T) {
		assert.NoError(t, testConfig().ValidateConfig())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		config := testConfig()
		config.JWTSecret = ""

		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("missing roles", func(t *testing.T) {
		config := testConfig()
		config.Roles = nil

		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "at least one role")
	})

	t.Run("unknown capability", func(t *testing.T) {
		config := testConfig()
		config.Roles["player"] = []string{"fire_coach"}

		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unknown capability 'fire_coach'")
	})
}

func TestLoadAuthConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.yaml")
	content := `
jwt_secret: "file-secret"
token_ttl: "30m"
roles:
  head_coach: [view_chart, delete_chart]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Run("reads yaml with defaults", func(t *testing.T) {
		config, err := LoadAuthConfig(path, "")
		require.NoError(t, err)
		assert.Equal(t, "file-secret", config.JWTSecret)
		assert.Equal(t, "depth-chart-backend", config.Issuer)
		assert.Equal(t, 30*time.Minute, config.TokenTTL)
		assert.ElementsMatch(t, []string{"view_chart", "delete_chart"}, config.Roles["head_coach"])
	})

	t.Run("explicit secret wins", func(t *testing.T) {
		config, err := LoadAuthConfig(path, "env-secret")
		require.NoError(t, err)
		assert.Equal(t, "env-secret", config.JWTSecret)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadAuthConfig(filepath.Join(t.TempDir(), "absent.yaml"), "secret")
		assert.Error(t, err)
	})
}

func TestJWTOperations(t *testing.T) {
	service, err := NewAuthService(testConfig())
	require.NoError(t, err)

	caller := Caller{UserID: 12345, TeamID: 7, Username: "coach", Role: "head_coach"}

	token, err := service.GenerateJWT(caller)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, caller, claims.Caller())
	assert.Equal(t, "12345", claims.Subject)

	t.Run("invalid token", func(t *testing.T) {
		_, err := service.ValidateJWT("invalid-token")
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := testConfig()
		other.JWTSecret = "another-key"
		otherService, err := NewAuthService(other)
		require.NoError(t, err)

		_, err = otherService.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		service.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		expired, err := service.GenerateJWT(caller)
		service.now = time.Now
		require.NoError(t, err)

		_, err = service.ValidateJWT(expired)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("missing team", func(t *testing.T) {
		noTeam, err := service.GenerateJWT(Caller{UserID: 1, Role: "player"})
		require.NoError(t, err)

		_, err = service.ValidateJWT(noTeam)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "missing user or team")
	})
}

func TestRoleAuthorizer(t *testing.T) {
	authz := NewRoleAuthorizer(testConfig().Roles)

	assert.True(t, authz.Allowed(Caller{Role: "head_coach"}, CapEditChart))
	assert.True(t, authz.Allowed(Caller{Role: "player"}, CapViewChart))
	assert.False(t, authz.Allowed(Caller{Role: "player"}, CapEditChart))
	assert.False(t, authz.Allowed(Caller{Role: "scout"}, CapViewChart))
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service, err := NewAuthService(testConfig())
	require.NoError(t, err)
	middleware := NewAuthMiddleware(service)
	authz := NewRoleAuthorizer(testConfig().Roles)

	router := gin.New()
	router.GET("/charts", middleware.RequireAuth(), RequireCapability(authz, CapViewChart), func(c *gin.Context) {
		caller, ok := GetCaller(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, caller)
	})
	router.DELETE("/charts", middleware.RequireAuth(), RequireCapability(authz, CapDeleteChart), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	do := func(method, header string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(method, "/charts", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		router.ServeHTTP(w, req)
		return w
	}

	coachToken, err := service.GenerateJWT(Caller{UserID: 1, TeamID: 2, Username: "coach", Role: "head_coach"})
	require.NoError(t, err)

	t.Run("missing header", func(t *testing.T) {
		w := do(http.MethodGet, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Authorization header is required", body["message"])
	})

	t.Run("malformed header", func(t *testing.T) {
		w := do(http.MethodGet, "Token "+coachToken)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("bad token", func(t *testing.T) {
		w := do(http.MethodGet, "Bearer nope")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("caller reaches handler", func(t *testing.T) {
		w := do(http.MethodGet, "Bearer "+coachToken)
		require.Equal(t, http.StatusOK, w.Code)

		var caller Caller
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &caller))
		assert.Equal(t, uint(1), caller.UserID)
		assert.Equal(t, uint(2), caller.TeamID)
	})

	t.Run("capability denied", func(t *testing.T) {
		w := do(http.MethodDelete, "Bearer "+coachToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("capability without auth", func(t *testing.T) {
		r := gin.New()
		r.GET("/open", RequireCapability(authz, CapViewChart), func(c *gin.Context) { c.Status(http.StatusOK) })
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/open", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
