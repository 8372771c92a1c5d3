package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Membership roles. Exactly one admin per team, assigned at creation.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// TeamMember links a user to a team. At most one row per (team, user).
type TeamMember struct {
	ID       string    `gorm:"primaryKey;column:id;type:uuid"         json:"id"`
	TeamID   string    `gorm:"column:team_id;type:uuid;not null;uniqueIndex:uq_team_members_team_user" json:"team_id"`
	UserID   string    `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_team_members_team_user" json:"user_id"`
	Role     string    `gorm:"column:role;type:varchar(10);not null"  json:"role"`
	JoinedAt time.Time `gorm:"column:joined_at;not null"              json:"joined_at"`
}

// TableName specifies the table name for GORM.
func (TeamMember) TableName() string {
	return "team_members"
}

// BeforeCreate assigns the identifier so the same model works on SQLite in tests.
func (m *TeamMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
