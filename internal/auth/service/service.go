// Package service provides business logic for the auth module.
package service

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	authModel "github.com/fireteam/teamfinder/internal/auth/model"
	"github.com/fireteam/teamfinder/internal/auth/repository"
	"github.com/fireteam/teamfinder/internal/config"
)

// ProfileChecker reports whether a user has completed onboarding.
// Implemented by the profile repository; kept as an interface to avoid a
// package cycle.
type ProfileChecker interface {
	HasProfile(ctx context.Context, userID string) (bool, error)
}

// Service defines the interface for auth business logic operations.
type Service interface {
	// RequestCode emails a one-time login code.
	RequestCode(ctx context.Context, email string) error

	// VerifyCode exchanges a one-time code for a session token.
	VerifyCode(ctx context.Context, email, code string) (*authModel.SessionResponse, error)

	// GoogleAuthURL returns the Google consent page URL.
	GoogleAuthURL(state string) string

	// GoogleCallback completes the OAuth handshake and establishes a session.
	GoogleCallback(ctx context.Context, code string) (*authModel.SessionResponse, error)

	// Logout ends the session identified by the token's session ID.
	Logout(ctx context.Context, sessionID string) error
}

type service struct {
	users    repository.UserRepository
	codes    repository.CodeStore
	profiles ProfileChecker
	sender   CodeSender
	cfg      config.AuthConfig
	oauth    *oauth2.Config
	logger   *zap.SugaredLogger
}

// New creates a new auth service instance.
func New(
	users repository.UserRepository,
	codes repository.CodeStore,
	profiles ProfileChecker,
	sender CodeSender,
	cfg config.AuthConfig,
	logger *zap.SugaredLogger,
) Service {
	oauth := &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	return &service{
		users:    users,
		codes:    codes,
		profiles: profiles,
		sender:   sender,
		cfg:      cfg,
		oauth:    oauth,
		logger:   logger,
	}
}

// RequestCode emails a one-time login code.
func (s *service) RequestCode(ctx context.Context, email string) error {
	if !s.cfg.EmailAllowed(email) {
		return authModel.ErrEmailNotAllowed
	}

	code, err := generateCode()
	if err != nil {
		return err
	}

	if err := s.codes.SaveCode(ctx, email, code, s.cfg.OTPTTL); err != nil {
		return err
	}

	if err := s.sender.Send(ctx, email, code); err != nil {
		return err
	}

	s.logger.Infow("login code requested", "email", email)
	return nil
}

// VerifyCode exchanges a one-time code for a session token.
func (s *service) VerifyCode(ctx context.Context, email, code string) (*authModel.SessionResponse, error) {
	stored, err := s.codes.GetCode(ctx, email)
	if err != nil {
		return nil, err
	}
	if stored != code {
		return nil, authModel.ErrCodeMismatch
	}

	// Single use: drop the code only after a successful match.
	if err := s.codes.DeleteCode(ctx, email); err != nil {
		return nil, err
	}

	user, err := s.users.GetOrCreate(ctx, email)
	if err != nil {
		return nil, err
	}

	return s.establishSession(ctx, user)
}

// GoogleAuthURL returns the Google consent page URL.
func (s *service) GoogleAuthURL(state string) string {
	return s.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// GoogleCallback completes the OAuth handshake and establishes a session.
func (s *service) GoogleCallback(ctx context.Context, code string) (*authModel.SessionResponse, error) {
	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", authModel.ErrOAuthExchange, err)
	}

	email, err := s.fetchGoogleEmail(ctx, token)
	if err != nil {
		return nil, err
	}

	if !s.cfg.EmailAllowed(email) {
		return nil, authModel.ErrEmailNotAllowed
	}

	user, err := s.users.GetOrCreate(ctx, email)
	if err != nil {
		return nil, err
	}

	return s.establishSession(ctx, user)
}

// Logout ends the session identified by the token's session ID.
func (s *service) Logout(ctx context.Context, sessionID string) error {
	return s.codes.DeleteSession(ctx, sessionID)
}

func (s *service) fetchGoogleEmail(ctx context.Context, token *oauth2.Token) (string, error) {
	client := s.oauth.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return "", fmt.Errorf("%w: %v", authModel.ErrOAuthExchange, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: userinfo returned status %d", authModel.ErrOAuthExchange, resp.StatusCode)
	}

	var info struct {
		Email         string `json:"email"`
		VerifiedEmail bool   `json:"verified_email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return "", fmt.Errorf("%w: %v", authModel.ErrOAuthExchange, err)
	}
	if info.Email == "" {
		return "", fmt.Errorf("%w: userinfo has no email", authModel.ErrOAuthExchange)
	}

	return info.Email, nil
}

func (s *service) establishSession(ctx context.Context, user *authModel.User) (*authModel.SessionResponse, error) {
	sessionID := uuid.NewString()
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   user.ID,
		ID:        sessionID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	if err := s.codes.CreateSession(ctx, sessionID, user.ID, s.cfg.TokenTTL); err != nil {
		return nil, err
	}

	if err := s.users.TouchLastLogin(ctx, user.ID); err != nil {
		s.logger.Warnw("failed to record last login", "user_id", user.ID, "error", err)
	}

	hasProfile, err := s.profiles.HasProfile(ctx, user.ID)
	if err != nil {
		s.logger.Warnw("failed to check profile", "user_id", user.ID, "error", err)
		hasProfile = false
	}

	return &authModel.SessionResponse{
		Token:      token,
		UserID:     user.ID,
		Email:      user.Email,
		HasProfile: hasProfile,
	}, nil
}

// generateCode returns a 6-digit numeric one-time code.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
