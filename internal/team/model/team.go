// Package model provides domain models and DTOs for the team module.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fireteam/teamfinder/pkg/sqltypes"
)

// Event types a team can recruit for.
const (
	EventHackathon   = "hackathon"
	EventCTF         = "ctf"
	EventCompetition = "competition"
	EventProject     = "project"
)

// Team is a recruiting post plus its membership anchor.
type Team struct {
	ID                 string              `gorm:"primaryKey;column:id;type:uuid"                json:"id"`
	Name               string              `gorm:"column:name;type:varchar(100);not null"        json:"name"`
	Description        string              `gorm:"column:description;type:text;not null"         json:"description"`
	EventType          string              `gorm:"column:event_type;type:varchar(20);not null"   json:"event_type"`
	TechStack          sqltypes.StringList `gorm:"column:tech_stack;type:text"                   json:"tech_stack"`
	RolesNeeded        sqltypes.StringList `gorm:"column:roles_needed;type:text"                 json:"roles_needed"`
	MaxMembers         int                 `gorm:"column:max_members;not null"                   json:"max_members"`
	IsBeginnerFriendly bool                `gorm:"column:is_beginner_friendly;not null;default:false" json:"is_beginner_friendly"`
	HasMentor          bool                `gorm:"column:has_mentor;not null;default:false"      json:"has_mentor"`
	GroupLink          *string             `gorm:"column:group_link"                             json:"group_link,omitempty"`
	InviteCode         string              `gorm:"column:invite_code;type:varchar(8);not null;uniqueIndex" json:"invite_code"`
	CreatedBy          string              `gorm:"column:created_by;type:uuid;not null"          json:"created_by"`
	CreatedAt          time.Time           `gorm:"column:created_at;not null"                    json:"created_at"`
	UpdatedAt          time.Time           `gorm:"column:updated_at;not null"                    json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// BeforeCreate assigns the identifier so the same model works on SQLite in tests.
func (t *Team) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
