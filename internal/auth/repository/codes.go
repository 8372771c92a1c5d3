package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	authModel "github.com/fireteam/teamfinder/internal/auth/model"
)

const (
	otpKeyPrefix     = "otp:"
	sessionKeyPrefix = "session:"
)

// CodeStore keeps one-time codes and session records in Redis.
// Codes expire via TTL, so an expired code is indistinguishable from one
// that was never requested.
type CodeStore interface {
	// SaveCode stores a one-time code for the email, replacing any previous one.
	SaveCode(ctx context.Context, email, code string, ttl time.Duration) error

	// GetCode retrieves the active code for the email.
	GetCode(ctx context.Context, email string) (string, error)

	// DeleteCode removes the code once it has been used.
	DeleteCode(ctx context.Context, email string) error

	// CreateSession records an active session under its token ID.
	CreateSession(ctx context.Context, sessionID, userID string, ttl time.Duration) error

	// SessionExists reports whether a session record is still active.
	SessionExists(ctx context.Context, sessionID string) (bool, error)

	// DeleteSession ends a session; tokens carrying its ID stop verifying.
	DeleteSession(ctx context.Context, sessionID string) error
}

type codeStore struct {
	rdb *redis.Client
}

// NewCodeStore creates a Redis-backed code and session store.
func NewCodeStore(rdb *redis.Client) CodeStore {
	return &codeStore{rdb: rdb}
}

func (s *codeStore) SaveCode(ctx context.Context, email, code string, ttl time.Duration) error {
	if err := s.rdb.Set(ctx, otpKeyPrefix+email, code, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", authModel.ErrUnavailable, err)
	}
	return nil
}

func (s *codeStore) GetCode(ctx context.Context, email string) (string, error) {
	code, err := s.rdb.Get(ctx, otpKeyPrefix+email).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", authModel.ErrNoCodeRequested
		}
		return "", fmt.Errorf("%w: %v", authModel.ErrUnavailable, err)
	}
	return code, nil
}

func (s *codeStore) DeleteCode(ctx context.Context, email string) error {
	if err := s.rdb.Del(ctx, otpKeyPrefix+email).Err(); err != nil {
		return fmt.Errorf("%w: %v", authModel.ErrUnavailable, err)
	}
	return nil
}

func (s *codeStore) CreateSession(ctx context.Context, sessionID, userID string, ttl time.Duration) error {
	if err := s.rdb.Set(ctx, sessionKeyPrefix+sessionID, userID, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", authModel.ErrUnavailable, err)
	}
	return nil
}

func (s *codeStore) SessionExists(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.rdb.Exists(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %v", authModel.ErrUnavailable, err)
	}
	return n > 0, nil
}

func (s *codeStore) DeleteSession(ctx context.Context, sessionID string) error {
	if err := s.rdb.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("%w: %v", authModel.ErrUnavailable, err)
	}
	return nil
}
