package auth

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// AuthConfig holds token verification settings and the role to capability table
type AuthConfig struct {
	JWTSecret string              `yaml:"jwt_secret" json:"jwt_secret" mapstructure:"jwt_secret"`
	Issuer    string              `yaml:"issuer" json:"issuer" mapstructure:"issuer"`
	TokenTTL  time.Duration       `yaml:"token_ttl" json:"token_ttl" mapstructure:"token_ttl"`
	Roles     map[string][]string `yaml:"roles" json:"roles" mapstructure:"roles"`
}

// LoadAuthConfig loads and validates authentication configuration.
// A non-empty jwtSecret replaces any secret found in the file.
func LoadAuthConfig(configPath, jwtSecret string) (*AuthConfig, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("auth")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setAuthDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading auth config file: %w", err)
		}
	}

	var config AuthConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling auth config: %w", err)
	}

	if jwtSecret != "" {
		config.JWTSecret = jwtSecret
	}

	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("auth config validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if c.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}

	if len(c.Roles) == 0 {
		return fmt.Errorf("at least one role must be configured")
	}

	for role, caps := range c.Roles {
		for _, capability := range caps {
			if !Capability(capability).IsValid() {
				return fmt.Errorf("unknown capability '%s' for role '%s'", capability, role)
			}
		}
	}

	return nil
}

// setAuthDefaults sets default values for auth configuration
func setAuthDefaults(v *viper.Viper) {
	v.SetDefault("issuer", "depth-chart-backend")
	v.SetDefault("token_ttl", "1h")
}
