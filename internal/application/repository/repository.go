// Package repository provides data access for the application module.
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	appModel "github.com/fireteam/teamfinder/internal/application/model"
)

// Repository defines application persistence operations.
type Repository interface {
	// Create inserts a new pending application.
	Create(ctx context.Context, app *appModel.Application) error

	// GetByID finds an application by identifier.
	GetByID(ctx context.Context, id string) (*appModel.Application, error)

	// GetByIDForUpdate finds an application and row-locks it where the
	// database supports it.
	GetByIDForUpdate(ctx context.Context, id string) (*appModel.Application, error)

	// HasPending reports whether the user has a pending application to the team.
	HasPending(ctx context.Context, teamID, userID string) (bool, error)

	// ListForTeam returns applications for a team joined with applicant
	// profiles, newest first. status narrows the list when non-empty.
	ListForTeam(ctx context.Context, teamID, status string) ([]appModel.ApplicantView, error)

	// ListForUser returns the user's own applications with team names,
	// newest first.
	ListForUser(ctx context.Context, userID string) ([]appModel.MineView, error)

	// UpdateStatus moves the application to a terminal state.
	UpdateStatus(ctx context.Context, id, status string) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new application repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, app *appModel.Application) error {
	err := r.db.WithContext(ctx).Create(app).Error
	if err != nil {
		if isDuplicateError(err) {
			return appModel.ErrAlreadyApplied
		}
		return err
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*appModel.Application, error) {
	var app appModel.Application
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appModel.ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *repository) GetByIDForUpdate(ctx context.Context, id string) (*appModel.Application, error) {
	q := r.db.WithContext(ctx)
	// SQLite has no row locks; its single-writer model covers the test path.
	if r.db.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var app appModel.Application
	err := q.Where("id = ?", id).First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appModel.ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *repository) HasPending(ctx context.Context, teamID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&appModel.Application{}).
		Where("team_id = ? AND user_id = ? AND status = ?", teamID, userID, appModel.StatusPending).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) ListForTeam(ctx context.Context, teamID, status string) ([]appModel.ApplicantView, error) {
	q := r.db.WithContext(ctx).
		Table("team_applications a").
		Select("a.id, a.user_id, a.preferred_role, a.experience, a.message, "+
			"a.contact_info, a.status, a.created_at, "+
			"COALESCE(p.display_name, '') AS display_name, "+
			"COALESCE(p.university, '') AS university, "+
			"COALESCE(p.interests, '[]') AS interests, "+
			"COALESCE(p.experience_level, '') AS experience_level, "+
			"p.avatar_url").
		Joins("LEFT JOIN profiles p ON p.user_id = a.user_id").
		Where("a.team_id = ?", teamID)
	if status != "" {
		q = q.Where("a.status = ?", status)
	}

	var apps []appModel.ApplicantView
	if err := q.Order("a.created_at DESC").Scan(&apps).Error; err != nil {
		return nil, err
	}
	if apps == nil {
		apps = []appModel.ApplicantView{}
	}
	return apps, nil
}

func (r *repository) ListForUser(ctx context.Context, userID string) ([]appModel.MineView, error) {
	var apps []appModel.MineView
	err := r.db.WithContext(ctx).
		Table("team_applications a").
		Select("a.id, a.team_id, COALESCE(t.name, '') AS team_name, "+
			"a.preferred_role, a.status, a.created_at").
		Joins("LEFT JOIN teams t ON t.id = a.team_id").
		Where("a.user_id = ?", userID).
		Order("a.created_at DESC").
		Scan(&apps).Error
	if err != nil {
		return nil, err
	}
	if apps == nil {
		apps = []appModel.MineView{}
	}
	return apps, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id, status string) error {
	return r.db.WithContext(ctx).
		Model(&appModel.Application{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}

// isDuplicateError checks if error is a unique constraint violation.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "UNIQUE constraint")
}
