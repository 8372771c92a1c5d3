// Package repository provides data access for the auth module: user rows in
// PostgreSQL, one-time codes and sessions in Redis.
package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	authModel "github.com/fireteam/teamfinder/internal/auth/model"
)

// UserRepository defines user identity persistence operations.
type UserRepository interface {
	// GetByEmail finds a user by email address.
	GetByEmail(ctx context.Context, email string) (*authModel.User, error)

	// GetByID finds a user by identifier.
	GetByID(ctx context.Context, id string) (*authModel.User, error)

	// GetOrCreate returns the user for the email, creating the row on first login.
	GetOrCreate(ctx context.Context, email string) (*authModel.User, error)

	// TouchLastLogin records a successful login.
	TouchLastLogin(ctx context.Context, id string) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*authModel.User, error) {
	var user authModel.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, authModel.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*authModel.User, error) {
	var user authModel.User
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, authModel.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetOrCreate(ctx context.Context, email string) (*authModel.User, error) {
	user, err := r.GetByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, authModel.ErrUserNotFound) {
		return nil, err
	}

	created := &authModel.User{Email: email, CreatedAt: time.Now()}
	if err := r.db.WithContext(ctx).Create(created).Error; err != nil {
		// Concurrent first login can race the insert; fall back to the winner's row.
		if existing, getErr := r.GetByEmail(ctx, email); getErr == nil {
			return existing, nil
		}
		return nil, err
	}
	return created, nil
}

func (r *userRepository) TouchLastLogin(ctx context.Context, id string) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&authModel.User{}).
		Where("id = ?", id).
		Update("last_login_at", now).Error
}
