// Package repository provides data access for the profile module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	profileModel "github.com/fireteam/teamfinder/internal/profile/model"
)

// Repository defines profile persistence operations.
type Repository interface {
	// GetByUserID finds the profile belonging to a user.
	GetByUserID(ctx context.Context, userID string) (*profileModel.Profile, error)

	// Upsert creates the user's profile or replaces its editable fields.
	Upsert(ctx context.Context, profile *profileModel.Profile) (*profileModel.Profile, error)

	// HasProfile reports whether the user has completed onboarding.
	HasProfile(ctx context.Context, userID string) (bool, error)

	// SetAvatarURL stores the uploaded avatar location.
	SetAvatarURL(ctx context.Context, userID, url string) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new profile repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func (r *repository) GetByUserID(ctx context.Context, userID string) (*profileModel.Profile, error) {
	var profile profileModel.Profile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, profileModel.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *repository) Upsert(ctx context.Context, profile *profileModel.Profile) (*profileModel.Profile, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"display_name", "university", "interests",
				"experience_level", "is_mentor", "updated_at",
			}),
		}).
		Create(profile).Error
	if err != nil {
		return nil, err
	}

	// Re-read so the caller sees the row as stored, including the ID of a
	// pre-existing profile the conflict clause updated.
	return r.GetByUserID(ctx, profile.UserID)
}

func (r *repository) HasProfile(ctx context.Context, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&profileModel.Profile{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) SetAvatarURL(ctx context.Context, userID, url string) error {
	res := r.db.WithContext(ctx).
		Model(&profileModel.Profile{}).
		Where("user_id = ?", userID).
		Update("avatar_url", url)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return profileModel.ErrProfileNotFound
	}
	return nil
}
