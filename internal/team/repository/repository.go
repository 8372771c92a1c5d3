// Package repository provides data access for the team module.
package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	teamModel "github.com/fireteam/teamfinder/internal/team/model"
)

// Repository defines team and membership persistence operations.
type Repository interface {
	// Create inserts a new team. A colliding invite code returns ErrInviteCodeTaken.
	Create(ctx context.Context, team *teamModel.Team) error

	// GetByID finds a team by identifier.
	GetByID(ctx context.Context, id string) (*teamModel.Team, error)

	// GetByInviteCode resolves an invite code to its team.
	GetByInviteCode(ctx context.Context, code string) (*teamModel.Team, error)

	// List returns teams matching the SQL-level filters, newest first.
	List(ctx context.Context, eventType string, beginnerFriendly *bool) ([]teamModel.Team, error)

	// Delete removes the team row.
	Delete(ctx context.Context, id string) error

	// DeleteApplications removes every application row for the team.
	DeleteApplications(ctx context.Context, teamID string) error

	// DeleteMembers removes every membership row for the team.
	DeleteMembers(ctx context.Context, teamID string) error

	// AddMember inserts a membership row.
	AddMember(ctx context.Context, member *teamModel.TeamMember) error

	// GetMember finds the membership of a user in a team.
	GetMember(ctx context.Context, teamID, userID string) (*teamModel.TeamMember, error)

	// RemoveMember deletes the membership of a user in a team.
	RemoveMember(ctx context.Context, teamID, userID string) error

	// CountMembers returns the number of membership rows for the team.
	CountMembers(ctx context.Context, teamID string) (int64, error)

	// ListMembers returns the member list joined with profile fields,
	// admin first, then by join time.
	ListMembers(ctx context.Context, teamID string) ([]teamModel.MemberResponse, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new team repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, team *teamModel.Team) error {
	err := r.db.WithContext(ctx).Create(team).Error
	if err != nil {
		if isDuplicateError(err) {
			return teamModel.ErrInviteCodeTaken
		}
		return err
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

func (r *repository) GetByInviteCode(ctx context.Context, code string) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).
		Where("invite_code = ?", code).
		First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

func (r *repository) List(ctx context.Context, eventType string, beginnerFriendly *bool) ([]teamModel.Team, error) {
	q := r.db.WithContext(ctx).Model(&teamModel.Team{})
	if eventType != "" {
		q = q.Where("event_type = ?", eventType)
	}
	if beginnerFriendly != nil {
		q = q.Where("is_beginner_friendly = ?", *beginnerFriendly)
	}

	var teams []teamModel.Team
	if err := q.Order("created_at DESC").Find(&teams).Error; err != nil {
		return nil, err
	}
	if teams == nil {
		teams = []teamModel.Team{}
	}
	return teams, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&teamModel.Team{}).Error
}

// DeleteApplications works on the applications table directly; the application
// package depends on this one, so the model cannot be imported here.
func (r *repository) DeleteApplications(ctx context.Context, teamID string) error {
	return r.db.WithContext(ctx).
		Exec("DELETE FROM team_applications WHERE team_id = ?", teamID).Error
}

func (r *repository) DeleteMembers(ctx context.Context, teamID string) error {
	return r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Delete(&teamModel.TeamMember{}).Error
}

func (r *repository) AddMember(ctx context.Context, member *teamModel.TeamMember) error {
	err := r.db.WithContext(ctx).Create(member).Error
	if err != nil {
		if isDuplicateError(err) {
			return teamModel.ErrAlreadyMember
		}
		return err
	}
	return nil
}

func (r *repository) GetMember(ctx context.Context, teamID, userID string) (*teamModel.TeamMember, error) {
	var member teamModel.TeamMember
	err := r.db.WithContext(ctx).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrNotMember
		}
		return nil, err
	}
	return &member, nil
}

func (r *repository) RemoveMember(ctx context.Context, teamID, userID string) error {
	res := r.db.WithContext(ctx).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Delete(&teamModel.TeamMember{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return teamModel.ErrNotMember
	}
	return nil
}

func (r *repository) CountMembers(ctx context.Context, teamID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&teamModel.TeamMember{}).
		Where("team_id = ?", teamID).
		Count(&count).Error
	return count, err
}

func (r *repository) ListMembers(ctx context.Context, teamID string) ([]teamModel.MemberResponse, error) {
	var members []teamModel.MemberResponse
	err := r.db.WithContext(ctx).
		Table("team_members tm").
		Select("tm.user_id, tm.role, tm.joined_at, "+
			"COALESCE(p.display_name, '') AS display_name, "+
			"COALESCE(p.experience_level, '') AS experience_level, "+
			"p.avatar_url").
		Joins("LEFT JOIN profiles p ON p.user_id = tm.user_id").
		Where("tm.team_id = ?", teamID).
		Order("CASE WHEN tm.role = 'admin' THEN 0 ELSE 1 END, tm.joined_at ASC").
		Scan(&members).Error
	if err != nil {
		return nil, err
	}
	if members == nil {
		members = []teamModel.MemberResponse{}
	}
	return members, nil
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
