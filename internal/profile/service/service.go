// Package service provides business logic for the profile module.
package service

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	profileModel "github.com/fireteam/teamfinder/internal/profile/model"
	"github.com/fireteam/teamfinder/internal/profile/repository"
	"github.com/fireteam/teamfinder/pkg/sqltypes"
	"github.com/fireteam/teamfinder/pkg/storage"
)

const avatarFolder = "avatars"

// Service defines the interface for profile business logic operations.
type Service interface {
	// Get returns a user's profile.
	Get(ctx context.Context, userID string) (*profileModel.Profile, error)

	// Upsert creates or updates the caller's profile.
	Upsert(ctx context.Context, userID string, req *profileModel.UpsertProfileRequest) (*profileModel.Profile, error)

	// UploadAvatar stores the image and records its URL on the caller's profile.
	UploadAvatar(ctx context.Context, userID string, file io.Reader, fileName string) (string, error)
}

type service struct {
	repo   repository.Repository
	store  storage.ImageStorage
	logger *zap.SugaredLogger
}

// New creates a new profile service instance.
func New(repo repository.Repository, store storage.ImageStorage, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, store: store, logger: logger}
}

// Get returns a user's profile.
func (s *service) Get(ctx context.Context, userID string) (*profileModel.Profile, error) {
	return s.repo.GetByUserID(ctx, userID)
}

// Upsert creates or updates the caller's profile.
func (s *service) Upsert(
	ctx context.Context,
	userID string,
	req *profileModel.UpsertProfileRequest,
) (*profileModel.Profile, error) {
	now := time.Now()
	profile := &profileModel.Profile{
		UserID:          userID,
		DisplayName:     req.DisplayName,
		University:      req.University,
		Interests:       sqltypes.StringList(req.Interests),
		ExperienceLevel: req.ExperienceLevel,
		IsMentor:        req.IsMentor,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	saved, err := s.repo.Upsert(ctx, profile)
	if err != nil {
		s.logger.Errorw("failed to upsert profile", "user_id", userID, "error", err)
		return nil, err
	}

	s.logger.Infow("profile saved", "user_id", userID)
	return saved, nil
}

// UploadAvatar stores the image and records its URL on the caller's profile.
func (s *service) UploadAvatar(ctx context.Context, userID string, file io.Reader, fileName string) (string, error) {
	// The profile must exist before an avatar can hang off it.
	profile, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return "", err
	}

	url, err := s.store.Upload(ctx, file, avatarFolder, fileName)
	if err != nil {
		s.logger.Errorw("failed to upload avatar", "user_id", userID, "error", err)
		return "", err
	}

	if err := s.repo.SetAvatarURL(ctx, userID, url); err != nil {
		return "", err
	}

	// The replaced image is orphaned once the new URL is recorded. Failing
	// to remove it leaks a blob, not a broken profile, so log and move on.
	if profile.AvatarURL != nil && *profile.AvatarURL != "" {
		if err := s.store.Delete(ctx, *profile.AvatarURL); err != nil {
			s.logger.Warnw("failed to delete replaced avatar",
				"user_id", userID, "url", *profile.AvatarURL, "error", err)
		}
	}

	return url, nil
}
