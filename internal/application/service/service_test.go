package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	appModel "github.com/fireteam/teamfinder/internal/application/model"
	"github.com/fireteam/teamfinder/internal/application/repository"
	profileModel "github.com/fireteam/teamfinder/internal/profile/model"
	teamModel "github.com/fireteam/teamfinder/internal/team/model"
	teamRepository "github.com/fireteam/teamfinder/internal/team/repository"
	"github.com/fireteam/teamfinder/pkg/sqltypes"
)

type fixture struct {
	svc   Service
	teams teamRepository.Repository
	apps  repository.Repository
	db    *gorm.DB
}

func setup(t *testing.T) *fixture {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&teamModel.Team{},
		&teamModel.TeamMember{},
		&appModel.Application{},
		&profileModel.Profile{},
	))

	apps := repository.New(db)
	teams := teamRepository.New(db)
	return &fixture{
		svc:   New(apps, teams, db, zaptest.NewLogger(t).Sugar()),
		teams: teams,
		apps:  apps,
		db:    db,
	}
}

// newTeam seeds a team with its admin membership, the way team creation does.
func (f *fixture) newTeam(t *testing.T, owner string, maxMembers int) *teamModel.Team {
	t.Helper()
	now := time.Now()
	team := &teamModel.Team{
		Name:        "ctf squad",
		Description: "weekend grind",
		EventType:   teamModel.EventCTF,
		MaxMembers:  maxMembers,
		InviteCode:  "CODE" + owner[len(owner)-4:],
		CreatedBy:   owner,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, f.teams.Create(context.Background(), team))
	require.NoError(t, f.teams.AddMember(context.Background(), &teamModel.TeamMember{
		TeamID: team.ID, UserID: owner,
		Role: teamModel.RoleAdmin, JoinedAt: now,
	}))
	return team
}

func applyReq() *appModel.ApplyRequest {
	return &appModel.ApplyRequest{
		PreferredRole: "web",
		Experience:    "two ctfs",
		Message:       "let me in",
		ContactInfo:   "9876543210",
	}
}

func TestService_Apply(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := setup(t)
		team := f.newTeam(t, "owner-01", 4)

		app, err := f.svc.Apply(ctx, "user-2", team.ID, applyReq())

		require.NoError(t, err)
		assert.Equal(t, appModel.StatusPending, app.Status)
		assert.Equal(t, "user-2", app.UserID)
	})

	t.Run("team not found", func(t *testing.T) {
		f := setup(t)

		_, err := f.svc.Apply(ctx, "user-2", "missing", applyReq())
		assert.ErrorIs(t, err, teamModel.ErrTeamNotFound)
	})

	t.Run("member cannot apply", func(t *testing.T) {
		f := setup(t)
		team := f.newTeam(t, "owner-01", 4)

		_, err := f.svc.Apply(ctx, "owner-01", team.ID, applyReq())
		assert.ErrorIs(t, err, teamModel.ErrAlreadyMember)
	})

	t.Run("one pending application at a time", func(t *testing.T) {
		f := setup(t)
		team := f.newTeam(t, "owner-01", 4)

		_, err := f.svc.Apply(ctx, "user-2", team.ID, applyReq())
		require.NoError(t, err)

		_, err = f.svc.Apply(ctx, "user-2", team.ID, applyReq())
		assert.ErrorIs(t, err, appModel.ErrAlreadyApplied)
	})

	t.Run("rejected applicant may apply again", func(t *testing.T) {
		f := setup(t)
		team := f.newTeam(t, "owner-01", 4)

		first, err := f.svc.Apply(ctx, "user-2", team.ID, applyReq())
		require.NoError(t, err)
		_, err = f.svc.Reject(ctx, "owner-01", first.ID)
		require.NoError(t, err)

		second, err := f.svc.Apply(ctx, "user-2", team.ID, applyReq())
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("full team rejects applications", func(t *testing.T) {
		f := setup(t)
		team := f.newTeam(t, "owner-01", 1)

		_, err := f.svc.Apply(ctx, "user-2", team.ID, applyReq())
		assert.ErrorIs(t, err, teamModel.ErrTeamFull)
	})
}

func TestService_Approve(t *testing.T) {
	ctx := context.Background()

	t.Run("approval creates exactly one membership", func(t *testing.T) {
		f := setup(t)
		team := f.newTeam(t, "owner-01", 4)

		app, err := f.svc.Apply(ctx, "user-2", team.ID, applyReq())
		require.NoError(t, err)

		approved, err := f.svc.Approve(ctx, "owner-01", app.ID)
		require.NoError(t, err)
		assert.Equal(t, appModel.StatusApproved, approved.Status)

		member, err := f.teams.GetMember(ctx, team.ID, "user-2")
		require.NoError(t, err)
		assert.Equal(t, teamModel.RoleMember, member.Role)
	})

	t.Run("second approval fails and leaves one membership", func(t *testing.T) {
		f := setup(t)
		team := f.newTeam(t, "owner-01", 4)

		app, err := f.svc.Apply(ctx, "user-2", team.ID, applyReq())
		require.NoError(t, err)

		_, err = f.svc.Approve(ctx, "owner-01", app.ID)
		require.NoError(t, err)

		_, err = f.svc.Approve(ctx, "owner-01", app.ID)
		assert.ErrorIs(t, err, appModel.ErrNotPending)

		var memberships int64
		f.db.Model(&teamModel.TeamMember{}).
			Where("team_id = ? AND user_id = ?", team.ID, "user-2").
			Count(&memberships)
		assert.Equal(t, int64(1), memberships)
	})

	t.Run("only the owner approves", func(t *testing.T) {
		f := setup(t)
		team := f.newTeam(t, "owner-01", 4)

		app, err := f.svc.Apply(ctx, "user-2", team.ID, applyReq())
		require.NoError(t, err)

		_, err = f.svc.Approve(ctx, "user-3", app.ID)
		assert.ErrorIs(t, err, teamModel.ErrNotTeamOwner)
	})

	t.Run("capacity race loser gets conflict", func(t *testing.T) {
		// maxMembers=2: owner holds one slot, B's approval takes the last
		// one, C's approval must fail even though C applied while a slot
		// was still open.
		f := setup(t)
		team := f.newTeam(t, "owner-01", 2)

		appB, err := f.svc.Apply(ctx, "user-b", team.ID, applyReq())
		require.NoError(t, err)
		appC, err := f.svc.Apply(ctx, "user-c", team.ID, applyReq())
		require.NoError(t, err)

		_, err = f.svc.Approve(ctx, "owner-01", appB.ID)
		require.NoError(t, err)

		_, err = f.svc.Approve(ctx, "owner-01", appC.ID)
		assert.ErrorIs(t, err, teamModel.ErrTeamFull)

		// C's application stays pending; no membership was created.
		stored, err := f.apps.GetByID(ctx, appC.ID)
		require.NoError(t, err)
		assert.Equal(t, appModel.StatusPending, stored.Status)

		_, err = f.teams.GetMember(ctx, team.ID, "user-c")
		assert.ErrorIs(t, err, teamModel.ErrNotMember)
	})

	t.Run("missing application", func(t *testing.T) {
		f := setup(t)

		_, err := f.svc.Approve(ctx, "owner-01", "missing")
		assert.ErrorIs(t, err, appModel.ErrApplicationNotFound)
	})
}

func TestService_Reject(t *testing.T) {
	ctx := context.Background()

	t.Run("rejection is terminal and adds no membership", func(t *testing.T) {
		f := setup(t)
		team := f.newTeam(t, "owner-01", 4)

		app, err := f.svc.Apply(ctx, "user-2", team.ID, applyReq())
		require.NoError(t, err)

		rejected, err := f.svc.Reject(ctx, "owner-01", app.ID)
		require.NoError(t, err)
		assert.Equal(t, appModel.StatusRejected, rejected.Status)

		_, err = f.teams.GetMember(ctx, team.ID, "user-2")
		assert.ErrorIs(t, err, teamModel.ErrNotMember)

		_, err = f.svc.Reject(ctx, "owner-01", app.ID)
		assert.ErrorIs(t, err, appModel.ErrNotPending)

		_, err = f.svc.Approve(ctx, "owner-01", app.ID)
		assert.ErrorIs(t, err, appModel.ErrNotPending)
	})

	t.Run("only the owner rejects", func(t *testing.T) {
		f := setup(t)
		team := f.newTeam(t, "owner-01", 4)

		app, err := f.svc.Apply(ctx, "user-2", team.ID, applyReq())
		require.NoError(t, err)

		_, err = f.svc.Reject(ctx, "user-3", app.ID)
		assert.ErrorIs(t, err, teamModel.ErrNotTeamOwner)
	})
}

func TestService_ListForTeam(t *testing.T) {
	ctx := context.Background()

	t.Run("owner sees applications with profile fields", func(t *testing.T) {
		f := setup(t)
		team := f.newTeam(t, "owner-01", 4)

		avatar := "https://img.example/ada.png"
		require.NoError(t, f.db.Create(&profileModel.Profile{
			UserID: "user-2", DisplayName: "Ada",
			University: "Campus Tech", ExperienceLevel: profileModel.ExperienceBeginner,
			Interests: sqltypes.StringList{"ctf", "web"}, AvatarURL: &avatar,
		}).Error)

		_, err := f.svc.Apply(ctx, "user-2", team.ID, applyReq())
		require.NoError(t, err)

		apps, err := f.svc.ListForTeam(ctx, "owner-01", team.ID, "")
		require.NoError(t, err)
		require.Len(t, apps, 1)
		assert.Equal(t, "Ada", apps[0].DisplayName)
		assert.Equal(t, "Campus Tech", apps[0].University)
		assert.Equal(t, sqltypes.StringList{"ctf", "web"}, apps[0].Interests)
		assert.Equal(t, profileModel.ExperienceBeginner, apps[0].ExperienceLevel)
		require.NotNil(t, apps[0].AvatarURL)
		assert.Equal(t, avatar, *apps[0].AvatarURL)
		assert.Equal(t, appModel.StatusPending, apps[0].Status)
	})

	t.Run("status filter", func(t *testing.T) {
		f := setup(t)
		team := f.newTeam(t, "owner-01", 4)

		app, err := f.svc.Apply(ctx, "user-2", team.ID, applyReq())
		require.NoError(t, err)
		_, err = f.svc.Apply(ctx, "user-3", team.ID, applyReq())
		require.NoError(t, err)
		_, err = f.svc.Reject(ctx, "owner-01", app.ID)
		require.NoError(t, err)

		pending, err := f.svc.ListForTeam(ctx, "owner-01", team.ID, appModel.StatusPending)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, "user-3", pending[0].UserID)
	})

	t.Run("non-owner forbidden", func(t *testing.T) {
		f := setup(t)
		team := f.newTeam(t, "owner-01", 4)

		_, err := f.svc.ListForTeam(ctx, "user-2", team.ID, "")
		assert.ErrorIs(t, err, teamModel.ErrNotTeamOwner)
	})
}

func TestService_ListMine(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	team := f.newTeam(t, "owner-01", 4)

	_, err := f.svc.Apply(ctx, "user-2", team.ID, applyReq())
	require.NoError(t, err)

	mine, err := f.svc.ListMine(ctx, "user-2")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, team.ID, mine[0].TeamID)
	assert.Equal(t, "ctf squad", mine[0].TeamName)

	empty, err := f.svc.ListMine(ctx, "user-3")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
