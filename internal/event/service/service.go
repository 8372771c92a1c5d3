// Package service provides business logic for the event module.
package service

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	eventModel "github.com/fireteam/teamfinder/internal/event/model"
	"github.com/fireteam/teamfinder/internal/event/repository"
	"github.com/fireteam/teamfinder/pkg/storage"
)

const (
	brochureFolder = "events"
	defaultLimit   = 10
	maxLimit       = 100
)

// Brochure is an optional image attached to a new event.
type Brochure struct {
	Reader   io.Reader
	FileName string
}

// Service defines the interface for event business logic operations.
type Service interface {
	// Create publishes an announcement, uploading the brochure first when given.
	Create(ctx context.Context, userID string, req *eventModel.CreateEventRequest, brochure *Brochure) (*eventModel.Event, error)

	// List returns the newest events. limit <= 0 falls back to the default.
	List(ctx context.Context, limit int) ([]eventModel.Event, error)
}

type service struct {
	repo   repository.Repository
	store  storage.ImageStorage
	logger *zap.SugaredLogger
}

// New creates a new event service instance.
func New(repo repository.Repository, store storage.ImageStorage, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, store: store, logger: logger}
}

// Create publishes an announcement, uploading the brochure first when given.
func (s *service) Create(
	ctx context.Context,
	userID string,
	req *eventModel.CreateEventRequest,
	brochure *Brochure,
) (*eventModel.Event, error) {
	event := &eventModel.Event{
		Title:       req.Title,
		Description: req.Description,
		CreatedBy:   userID,
		CreatedAt:   time.Now(),
	}

	if req.EventDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.EventDate)
		if err != nil {
			return nil, eventModel.ErrInvalidEventDate
		}
		event.EventDate = &parsed
	}
	if req.EventType != "" {
		event.EventType = &req.EventType
	}
	if req.Venue != "" {
		event.Venue = &req.Venue
	}
	if req.MaxSize > 0 {
		event.MaxSize = &req.MaxSize
	}
	if req.RegistrationLink != "" {
		event.RegistrationLink = &req.RegistrationLink
	}

	if brochure != nil {
		url, err := s.store.Upload(ctx, brochure.Reader, brochureFolder, brochure.FileName)
		if err != nil {
			s.logger.Errorw("failed to upload brochure", "error", err)
			return nil, err
		}
		event.BrochureURL = &url
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}

	s.logger.Infow("event published", "event_id", event.ID, "user_id", userID)
	return event, nil
}

// List returns the newest events. limit <= 0 falls back to the default.
func (s *service) List(ctx context.Context, limit int) ([]eventModel.Event, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return s.repo.List(ctx, limit)
}
