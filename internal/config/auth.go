package config

import (
	"fmt"
	"os"
	"time"
)

const (
	EnvAuthScheme     = "PRICER_AUTH_SCHEME"
	EnvAuthJWTSecret  = "PRICER_AUTH_JWT_SECRET"
	EnvAuthTokenTTL   = "PRICER_AUTH_TOKEN_TTL"
	EnvAuthAccessCode = "PRICER_AUTH_ACCESS_CODE"
	EnvAuthIssuer     = "PRICER_AUTH_ISSUER"
)

// Auth scheme identifiers.
const (
	AuthSchemePassword   = "password"
	AuthSchemeAccessCode = "access_code"
)

// AuthConfig holds authentication settings. Scheme selects between database
// backed password login and shared access code login. Both schemes issue JWTs
// signed with JWTSecret.
type AuthConfig struct {
	Scheme     string `toml:"scheme"`
	JWTSecret  string `toml:"jwt_secret"`
	TokenTTL   string `toml:"token_ttl"`
	AccessCode string `toml:"access_code"`
	Issuer     string `toml:"issuer"`
}

// TokenTTLDuration returns TokenTTL as a time.Duration.
func (c *AuthConfig) TokenTTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.TokenTTL)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *AuthConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *AuthConfig) Merge(overlay *AuthConfig) {
	if overlay.Scheme != "" {
		c.Scheme = overlay.Scheme
	}
	if overlay.JWTSecret != "" {
		c.JWTSecret = overlay.JWTSecret
	}
	if overlay.TokenTTL != "" {
		c.TokenTTL = overlay.TokenTTL
	}
	if overlay.AccessCode != "" {
		c.AccessCode = overlay.AccessCode
	}
	if overlay.Issuer != "" {
		c.Issuer = overlay.Issuer
	}
}

func (c *AuthConfig) loadDefaults() {
	if c.Scheme == "" {
		c.Scheme = AuthSchemePassword
	}
	if c.TokenTTL == "" {
		c.TokenTTL = "24h"
	}
	if c.Issuer == "" {
		c.Issuer = "pricer"
	}
}

func (c *AuthConfig) loadEnv() {
	if v := os.Getenv(EnvAuthScheme); v != "" {
		c.Scheme = v
	}
	if v := os.Getenv(EnvAuthJWTSecret); v != "" {
		c.JWTSecret = v
	}
	if v := os.Getenv(EnvAuthTokenTTL); v != "" {
		c.TokenTTL = v
	}
	if v := os.Getenv(EnvAuthAccessCode); v != "" {
		c.AccessCode = v
	}
	if v := os.Getenv(EnvAuthIssuer); v != "" {
		c.Issuer = v
	}
}

func (c *AuthConfig) validate() error {
	switch c.Scheme {
	case AuthSchemePassword, AuthSchemeAccessCode:
	default:
		return fmt.Errorf("invalid scheme: %s", c.Scheme)
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("jwt_secret required")
	}
	if c.Scheme == AuthSchemeAccessCode && c.AccessCode == "" {
		return fmt.Errorf("access_code required for access_code scheme")
	}
	if _, err := time.ParseDuration(c.TokenTTL); err != nil {
		return fmt.Errorf("invalid token_ttl: %w", err)
	}
	return nil
}
