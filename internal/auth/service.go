package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Caller identifies the authenticated user behind a request
type Caller struct {
	UserID   uint   `json:"user_id"`
	TeamID   uint   `json:"team_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID               uint   `json:"user_id" example:"12345"`
	TeamID               uint   `json:"team_id" example:"7"`
	Username             string `json:"username" example:"coach.smith"`
	Role                 string `json:"role" example:"head_coach"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// Caller returns the caller the claims describe
func (c *AuthClaims) Caller() Caller {
	return Caller{
		UserID:   c.UserID,
		TeamID:   c.TeamID,
		Username: c.Username,
		Role:     c.Role,
	}
}

// AuthService issues and verifies bearer tokens
type AuthService struct {
	config *AuthConfig
	now    func() time.Time
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	return &AuthService{
		config: config,
		now:    time.Now,
	}, nil
}

// GenerateJWT creates a signed token for the caller
func (s *AuthService) GenerateJWT(caller Caller) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		UserID:   caller.UserID,
		TeamID:   caller.TeamID,
		Username: caller.Username,
		Role:     caller.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   strconv.FormatUint(uint64(caller.UserID), 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token. A token without a user or team is rejected.
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithIssuer(s.config.Issuer), jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.UserID == 0 || claims.TeamID == 0 {
		return nil, fmt.Errorf("token is missing user or team")
	}

	return claims, nil
}
