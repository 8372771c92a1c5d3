// Package service provides business logic for the application module.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	appModel "github.com/fireteam/teamfinder/internal/application/model"
	"github.com/fireteam/teamfinder/internal/application/repository"
	teamModel "github.com/fireteam/teamfinder/internal/team/model"
	teamRepository "github.com/fireteam/teamfinder/internal/team/repository"
)

// Service defines the interface for application business logic operations.
type Service interface {
	// Apply submits a pending application to a team.
	Apply(ctx context.Context, userID, teamID string, req *appModel.ApplyRequest) (*appModel.Application, error)

	// ListForTeam returns a team's applications. Team owner only.
	ListForTeam(ctx context.Context, userID, teamID, status string) ([]appModel.ApplicantView, error)

	// ListMine returns the caller's own applications.
	ListMine(ctx context.Context, userID string) ([]appModel.MineView, error)

	// Approve accepts a pending application and adds the applicant to the team.
	Approve(ctx context.Context, userID, applicationID string) (*appModel.Application, error)

	// Reject declines a pending application.
	Reject(ctx context.Context, userID, applicationID string) (*appModel.Application, error)
}

type service struct {
	repo   repository.Repository
	teams  teamRepository.Repository
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new application service instance.
func New(
	repo repository.Repository,
	teams teamRepository.Repository,
	db *gorm.DB,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:   repo,
		teams:  teams,
		db:     db,
		logger: logger,
	}
}

// Apply submits a pending application. Preconditions run before the insert:
// the team must exist and have an open slot, the caller must not already be a
// member or have a pending application.
func (s *service) Apply(
	ctx context.Context,
	userID, teamID string,
	req *appModel.ApplyRequest,
) (*appModel.Application, error) {
	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	if _, err := s.teams.GetMember(ctx, teamID, userID); err == nil {
		return nil, teamModel.ErrAlreadyMember
	}

	pending, err := s.repo.HasPending(ctx, teamID, userID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, appModel.ErrAlreadyApplied
	}

	count, err := s.teams.CountMembers(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if count >= int64(team.MaxMembers) {
		return nil, teamModel.ErrTeamFull
	}

	now := time.Now()
	app := &appModel.Application{
		TeamID:        teamID,
		UserID:        userID,
		PreferredRole: req.PreferredRole,
		Experience:    req.Experience,
		Message:       req.Message,
		ContactInfo:   req.ContactInfo,
		Status:        appModel.StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Create(ctx, app); err != nil {
		return nil, err
	}

	s.logger.Infow("application submitted", "application_id", app.ID, "team_id", teamID, "user_id", userID)
	return app, nil
}

// ListForTeam returns a team's applications joined with applicant profiles.
// Team owner only.
func (s *service) ListForTeam(ctx context.Context, userID, teamID, status string) ([]appModel.ApplicantView, error) {
	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team.CreatedBy != userID {
		return nil, teamModel.ErrNotTeamOwner
	}

	return s.repo.ListForTeam(ctx, teamID, status)
}

// ListMine returns the caller's own applications.
func (s *service) ListMine(ctx context.Context, userID string) ([]appModel.MineView, error) {
	return s.repo.ListForUser(ctx, userID)
}

// Approve accepts a pending application and adds the applicant as a member.
// One transaction: the application is row-locked, capacity is re-checked, and
// the membership insert rides the same commit. A racing approval that would
// overfill the team loses with ErrTeamFull.
func (s *service) Approve(ctx context.Context, userID, applicationID string) (*appModel.Application, error) {
	var approved *appModel.Application
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txApps := repository.New(tx)
		txTeams := teamRepository.New(tx)

		app, err := txApps.GetByIDForUpdate(ctx, applicationID)
		if err != nil {
			return err
		}

		team, err := txTeams.GetByID(ctx, app.TeamID)
		if err != nil {
			return err
		}
		if team.CreatedBy != userID {
			return teamModel.ErrNotTeamOwner
		}
		if app.Status != appModel.StatusPending {
			return appModel.ErrNotPending
		}

		count, err := txTeams.CountMembers(ctx, app.TeamID)
		if err != nil {
			return err
		}
		if count >= int64(team.MaxMembers) {
			return teamModel.ErrTeamFull
		}

		if err := txApps.UpdateStatus(ctx, app.ID, appModel.StatusApproved); err != nil {
			return err
		}
		if err := txTeams.AddMember(ctx, &teamModel.TeamMember{
			TeamID:   app.TeamID,
			UserID:   app.UserID,
			Role:     teamModel.RoleMember,
			JoinedAt: time.Now(),
		}); err != nil {
			return err
		}

		app.Status = appModel.StatusApproved
		approved = app
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("application approved", "application_id", applicationID, "by", userID)
	return approved, nil
}

// Reject declines a pending application. No membership side effect.
func (s *service) Reject(ctx context.Context, userID, applicationID string) (*appModel.Application, error) {
	var rejected *appModel.Application
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txApps := repository.New(tx)
		txTeams := teamRepository.New(tx)

		app, err := txApps.GetByIDForUpdate(ctx, applicationID)
		if err != nil {
			return err
		}

		team, err := txTeams.GetByID(ctx, app.TeamID)
		if err != nil {
			return err
		}
		if team.CreatedBy != userID {
			return teamModel.ErrNotTeamOwner
		}
		if app.Status != appModel.StatusPending {
			return appModel.ErrNotPending
		}

		if err := txApps.UpdateStatus(ctx, app.ID, appModel.StatusRejected); err != nil {
			return err
		}

		app.Status = appModel.StatusRejected
		rejected = app
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("application rejected", "application_id", applicationID, "by", userID)
	return rejected, nil
}
