// Package service provides business logic for the team module.
package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	teamModel "github.com/fireteam/teamfinder/internal/team/model"
	"github.com/fireteam/teamfinder/internal/team/repository"
	"github.com/fireteam/teamfinder/pkg/invitecode"
	"github.com/fireteam/teamfinder/pkg/sqltypes"
)

// inviteCodeAttempts bounds retries when a generated code collides.
const inviteCodeAttempts = 5

// Service defines the interface for team business logic operations.
type Service interface {
	// CreateTeam opens a team and makes the creator its admin.
	CreateTeam(ctx context.Context, userID string, req *teamModel.CreateTeamRequest) (*teamModel.Team, error)

	// GetTeam returns a team by identifier.
	GetTeam(ctx context.Context, id string) (*teamModel.Team, error)

	// GetByInviteCode resolves an invite code to its team.
	GetByInviteCode(ctx context.Context, code string) (*teamModel.Team, error)

	// ListTeams returns open teams matching the filter, newest first.
	ListTeams(ctx context.Context, filter *teamModel.ListFilter) ([]teamModel.Team, error)

	// DeleteTeam removes the team, its memberships and its applications.
	DeleteTeam(ctx context.Context, userID, teamID string) error

	// GetMembers returns the team's member list, admin first.
	GetMembers(ctx context.Context, teamID string) ([]teamModel.MemberResponse, error)

	// LeaveTeam removes the caller's membership. Owners cannot leave.
	LeaveTeam(ctx context.Context, userID, teamID string) error
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo repository.Repository, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		db:     db,
		logger: logger,
	}
}

// CreateTeam opens a team and makes the creator its admin. The team row and
// the admin membership land in one transaction; no partial state survives.
func (s *service) CreateTeam(
	ctx context.Context,
	userID string,
	req *teamModel.CreateTeamRequest,
) (*teamModel.Team, error) {
	now := time.Now()
	team := &teamModel.Team{
		Name:               req.Name,
		Description:        req.Description,
		EventType:          req.EventType,
		TechStack:          sqltypes.StringList(req.TechStack),
		RolesNeeded:        sqltypes.StringList(req.RolesNeeded),
		MaxMembers:         req.MaxMembers,
		IsBeginnerFriendly: req.IsBeginnerFriendly,
		HasMentor:          req.HasMentor,
		CreatedBy:          userID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if req.GroupLink != "" {
		team.GroupLink = &req.GroupLink
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		if err := createWithFreshCode(ctx, txRepo, team); err != nil {
			return err
		}

		return txRepo.AddMember(ctx, &teamModel.TeamMember{
			TeamID:   team.ID,
			UserID:   userID,
			Role:     teamModel.RoleAdmin,
			JoinedAt: now,
		})
	})
	if err != nil {
		s.logger.Errorw("failed to create team", "user_id", userID, "error", err)
		return nil, err
	}

	s.logger.Infow("team created", "team_id", team.ID, "user_id", userID)
	return team, nil
}

// createWithFreshCode inserts the team, regenerating the invite code on the
// rare collision.
func createWithFreshCode(ctx context.Context, repo repository.Repository, team *teamModel.Team) error {
	for attempt := 0; attempt < inviteCodeAttempts; attempt++ {
		code, err := invitecode.New()
		if err != nil {
			return err
		}
		team.InviteCode = code

		err = repo.Create(ctx, team)
		if err == nil {
			return nil
		}
		if !errors.Is(err, teamModel.ErrInviteCodeTaken) {
			return err
		}
	}
	return teamModel.ErrInviteCodeTaken
}

// GetTeam returns a team by identifier.
func (s *service) GetTeam(ctx context.Context, id string) (*teamModel.Team, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByInviteCode resolves an invite code to its team.
func (s *service) GetByInviteCode(ctx context.Context, code string) (*teamModel.Team, error) {
	if !invitecode.Valid(code) {
		return nil, teamModel.ErrTeamNotFound
	}
	return s.repo.GetByInviteCode(ctx, code)
}

// ListTeams returns open teams matching the filter, newest first. Event type
// and beginner-friendliness filter in SQL; tag filters intersect in memory
// over the result.
func (s *service) ListTeams(ctx context.Context, filter *teamModel.ListFilter) ([]teamModel.Team, error) {
	teams, err := s.repo.List(ctx, filter.EventType, filter.BeginnerFriendly)
	if err != nil {
		return nil, err
	}

	if len(filter.TechStack) == 0 && len(filter.RolesNeeded) == 0 {
		return teams, nil
	}

	filtered := make([]teamModel.Team, 0, len(teams))
	for _, team := range teams {
		if len(filter.TechStack) > 0 && !team.TechStack.Intersects(filter.TechStack) {
			continue
		}
		if len(filter.RolesNeeded) > 0 && !team.RolesNeeded.Intersects(filter.RolesNeeded) {
			continue
		}
		filtered = append(filtered, team)
	}
	return filtered, nil
}

// DeleteTeam removes the team, its memberships and its applications in one
// transaction. Owner only.
func (s *service) DeleteTeam(ctx context.Context, userID, teamID string) error {
	team, err := s.repo.GetByID(ctx, teamID)
	if err != nil {
		return err
	}
	if team.CreatedBy != userID {
		return teamModel.ErrNotTeamOwner
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		if err := txRepo.DeleteApplications(ctx, teamID); err != nil {
			return err
		}
		if err := txRepo.DeleteMembers(ctx, teamID); err != nil {
			return err
		}
		return txRepo.Delete(ctx, teamID)
	})
	if err != nil {
		s.logger.Errorw("failed to delete team", "team_id", teamID, "error", err)
		return err
	}

	s.logger.Infow("team deleted", "team_id", teamID, "user_id", userID)
	return nil
}

// GetMembers returns the team's member list, admin first.
func (s *service) GetMembers(ctx context.Context, teamID string) ([]teamModel.MemberResponse, error) {
	if _, err := s.repo.GetByID(ctx, teamID); err != nil {
		return nil, err
	}
	return s.repo.ListMembers(ctx, teamID)
}

// LeaveTeam removes the caller's membership. Owners cannot leave.
func (s *service) LeaveTeam(ctx context.Context, userID, teamID string) error {
	team, err := s.repo.GetByID(ctx, teamID)
	if err != nil {
		return err
	}
	if team.CreatedBy == userID {
		return teamModel.ErrOwnerCannotLeave
	}

	if err := s.repo.RemoveMember(ctx, teamID, userID); err != nil {
		return err
	}

	s.logger.Infow("member left team", "team_id", teamID, "user_id", userID)
	return nil
}
