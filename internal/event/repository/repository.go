// Package repository provides data access for the event module.
package repository

import (
	"context"

	"gorm.io/gorm"

	eventModel "github.com/fireteam/teamfinder/internal/event/model"
)

// Repository defines event persistence operations.
type Repository interface {
	// Create inserts a new event.
	Create(ctx context.Context, event *eventModel.Event) error

	// List returns events newest first, at most limit rows.
	List(ctx context.Context, limit int) ([]eventModel.Event, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new event repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, event *eventModel.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *repository) List(ctx context.Context, limit int) ([]eventModel.Event, error) {
	var events []eventModel.Event
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []eventModel.Event{}
	}
	return events, nil
}
