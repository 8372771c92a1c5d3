// Package repository provides aggregate reads for the dashboard module.
package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fireteam/teamfinder/internal/dashboard/model"
)

// Repository defines dashboard read operations.
type Repository interface {
	// GetOwnedTeams returns the user's teams with member and pending
	// application counts, one query, newest first.
	GetOwnedTeams(ctx context.Context, userID string) ([]model.OwnedTeam, error)

	// GetJoinedTeams returns teams the user belongs to but does not own,
	// most recently joined first.
	GetJoinedTeams(ctx context.Context, userID string) ([]model.JoinedTeam, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new dashboard repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{
		db:     db,
		logger: logger,
	}
}

// GetOwnedTeams returns the user's teams with member and pending application
// counts. The counts ride the same query as the teams; no per-team round trips.
func (r *repository) GetOwnedTeams(ctx context.Context, userID string) ([]model.OwnedTeam, error) {
	var teams []model.OwnedTeam

	err := r.db.WithContext(ctx).
		Table("teams t").
		Select(`
			t.id,
			t.name,
			t.event_type,
			t.max_members,
			t.invite_code,
			t.created_at,
			COALESCE(m.member_count, 0) as member_count,
			COALESCE(a.pending_count, 0) as pending_count
		`).
		Joins(`
			LEFT JOIN (
				SELECT team_id, COUNT(*) as member_count
				FROM team_members
				GROUP BY team_id
			) m ON m.team_id = t.id
		`).
		Joins(`
			LEFT JOIN (
				SELECT team_id, COUNT(*) as pending_count
				FROM team_applications
				WHERE status = 'pending'
				GROUP BY team_id
			) a ON a.team_id = t.id
		`).
		Where("t.created_by = ?", userID).
		Order("t.created_at DESC").
		Scan(&teams).Error

	if err != nil {
		r.logger.Errorw("GetOwnedTeams database error", "user_id", userID, "error", err)
		return nil, err
	}

	if teams == nil {
		teams = []model.OwnedTeam{}
	}
	return teams, nil
}

// GetJoinedTeams returns teams the user belongs to but does not own.
func (r *repository) GetJoinedTeams(ctx context.Context, userID string) ([]model.JoinedTeam, error) {
	var teams []model.JoinedTeam

	err := r.db.WithContext(ctx).
		Table("teams t").
		Select("t.id, t.name, t.event_type, tm.joined_at").
		Joins("JOIN team_members tm ON tm.team_id = t.id").
		Where("tm.user_id = ? AND t.created_by <> ?", userID, userID).
		Order("tm.joined_at DESC").
		Scan(&teams).Error

	if err != nil {
		r.logger.Errorw("GetJoinedTeams database error", "user_id", userID, "error", err)
		return nil, err
	}

	if teams == nil {
		teams = []model.JoinedTeam{}
	}
	return teams, nil
}
