package config

import (
	"fmt"
	"strings"
	"time"
)

// AuthConfig holds session token and one-time code configuration.
type AuthConfig struct {
	// JWTSecret signs session tokens (HS256).
	JWTSecret string
	// TokenTTL is the lifetime of issued session tokens.
	TokenTTL time.Duration
	// OTPTTL is the lifetime of emailed one-time codes.
	OTPTTL time.Duration
	// AllowedEmailSuffixes restricts sign-up to campus addresses.
	AllowedEmailSuffixes []string

	// Google OAuth settings.
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
}

// LoadAuthConfigFromEnv loads auth configuration from environment variables.
func LoadAuthConfigFromEnv() AuthConfig {
	suffixes := strings.Split(GetEnv("AUTH_ALLOWED_EMAIL_SUFFIXES", ".edu"), ",")
	for i := range suffixes {
		suffixes[i] = strings.TrimSpace(suffixes[i])
	}

	return AuthConfig{
		JWTSecret:            GetEnv("JWT_SECRET", ""),
		TokenTTL:             GetEnvDuration("JWT_TTL", 24*time.Hour),
		OTPTTL:               GetEnvDuration("OTP_TTL", 5*time.Minute),
		AllowedEmailSuffixes: suffixes,
		GoogleClientID:       GetEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret:   GetEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURL:    GetEnv("GOOGLE_REDIRECT_URL", ""),
	}
}

// Validate validates auth configuration.
func (c AuthConfig) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TokenTTL must be greater than 0")
	}
	if c.OTPTTL <= 0 {
		return fmt.Errorf("OTPTTL must be greater than 0")
	}
	return nil
}

// EmailAllowed reports whether the address matches an allowed suffix.
func (c AuthConfig) EmailAllowed(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := strings.ToLower(email[at+1:])
	for _, suffix := range c.AllowedEmailSuffixes {
		s := strings.ToLower(strings.TrimPrefix(suffix, "@"))
		if s == "" {
			continue
		}
		if domain == strings.TrimPrefix(s, ".") || strings.HasSuffix(domain, s) {
			return true
		}
	}
	return false
}
